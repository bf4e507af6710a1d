/*
Package domain contains the core domain models of the helmsman turn protocol.

It defines what travels through one turn of the loop: the opaque Observation received
from the game controller, the fixed-shape Command sent back, the loop states and the
error taxonomy shared by the codec, the command validator and the runner. The package
does no I/O.

# Key Entities

  - Observation: the decoded game state, kept opaque for the core.
  - Command: the five-field ship control record emitted every turn.
  - Kinematics: a typed view of the observation as emitted by the game server.
  - LoopState: Awaiting Input or Terminated.
  - DecodeError, ParseError, SchemaError: failures of the three turn stages.
*/
package domain
