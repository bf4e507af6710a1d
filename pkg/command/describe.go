package command

import (
	"fmt"
	"strings"

	"github.com/aretw0/helmsman/pkg/domain"
)

var fieldDocs = map[string]string{
	domain.KeyName:        "display name for the ship",
	domain.KeyThrust:      "forward acceleration control",
	domain.KeyTorque:      "rotational acceleration control",
	domain.KeyMetalBullet: "fire a metal projectile this turn",
	domain.KeyLaserBullet: "fire a laser projectile this turn",
}

// Describe renders the command schema as a markdown document.
func Describe() string {
	var b strings.Builder
	b.WriteString("# Command schema\n\n")
	b.WriteString("Each output line is the base64 encoding of one JSON object with these fields.\n")
	b.WriteString("All five are required; extra fields are passed through.\n\n")
	b.WriteString("| field | type | meaning |\n")
	b.WriteString("|---|---|---|\n")
	for _, key := range Fields {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", key, Schema[key].Name(), fieldDocs[key])
	}
	return b.String()
}
