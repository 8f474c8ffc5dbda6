// Package session provides the quote session aggregate and its state machine.
//
// The package includes:
//   - State: a tagged enumeration of the session stages
//   - Event: what happened in the current stage
//   - State.Transition: the pure transition function over (State, Event)
//   - Session: the aggregate root owning the package record and current state
//
// Key business rules:
//   - Every session starts in Start and ends in Complete or Error
//   - Complete and Error accept no further events
//   - The package record can only change in the stage that collects it
package session
