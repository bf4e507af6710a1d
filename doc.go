/*
Package helmsman is the decision loop of an autonomous ship bot for a turn-based space game.

The game controller talks to the bot over a line protocol: every line on stdin is one
observation, standard base64 around a JSON document, and every line the bot writes to
stdout is one command in the same envelope. The bot is a transducer over that stream:
read one frame, ask a Policy for a command, validate it against the five-field command
schema, answer with one frame, repeat until the input ends.

# Architecture

  - pkg/codec frames and unframes messages.
  - pkg/command validates whatever a policy returns into a domain.Command.
  - pkg/runner owns the loop, its recovery policy for bad frames, and its turn hooks.
  - pkg/policy holds the decision strategies. The loop does not care which one is used.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/helmsman"
		"github.com/aretw0/helmsman/pkg/domain"
		"github.com/aretw0/helmsman/pkg/policy"
	)

	func main() {
		bot := helmsman.New(policy.NewStatic(domain.Command{Name: "hi", Thrust: 1.9, Torque: 2.0}))

		// Reads stdin and answers on stdout until the controller closes the stream.
		if _, err := bot.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package helmsman
