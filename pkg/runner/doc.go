/*
Package runner implements the turn loop that connects a decision policy to the game controller.

Each iteration reads exactly one frame, decodes it into an observation, asks the policy for a
candidate command, validates it, and writes exactly one encoded frame back, flushing before the
next read. The loop has two states, Awaiting Input and Terminated, and stops normally when the
input is exhausted.

# Key Components

  - Runner: the loop itself, configured with functional options.
  - LineHandler: decouples how lines are read and written (streams, tests, pipes).
  - StreamHandler: the standard implementation over an io.Reader and io.Writer.
  - Recovery: what to do with a frame that cannot be decoded.

# Usage

	r := runner.NewRunner(
		runner.WithPolicy(policy.NewStatic(cmd)),
		runner.WithHandler(runner.NewStreamHandler(os.Stdin, os.Stdout)),
	)

	if _, err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
