package runner

import (
	"fmt"
	"strings"
)

// Recovery selects what the loop does with a frame that fails to decode or parse.
type Recovery string

const (
	// RecoverSkip drops the frame, writes nothing and waits for the next line.
	RecoverSkip Recovery = "skip"
	// RecoverTerminate stops the loop and returns the decode error.
	RecoverTerminate Recovery = "terminate"
	// RecoverFallback answers the frame with the configured fallback command.
	RecoverFallback Recovery = "fallback"
)

// ParseRecovery converts a configuration string into a Recovery.
func ParseRecovery(s string) (Recovery, error) {
	switch r := Recovery(strings.ToLower(strings.TrimSpace(s))); r {
	case RecoverSkip, RecoverTerminate, RecoverFallback:
		return r, nil
	case "":
		return RecoverSkip, nil
	default:
		return "", fmt.Errorf("unknown recovery policy %q (want skip, terminate or fallback)", s)
	}
}
