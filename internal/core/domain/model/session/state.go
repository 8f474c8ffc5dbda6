package session

import (
	"errors"
	"fmt"

	"packexpress/internal/pkg/errs"
)

// ErrTransitionIsInvalid is wrapped by every rejected state transition.
var ErrTransitionIsInvalid = errors.New("state transition is invalid")

// State is the stage a quote session is in.
//
// State transitions:
//
//	Start ──> WeightInput ──> DimensionsInput ──> QuoteCalculation ──> Complete
//	               │                 │
//	               └──── Rejected ───┴──────> Error
//
// Any non-terminal state also moves to Error when the input closes.
// Complete and Error are terminal.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Start is the initial state of every session. It reads no input.
	Start

	// WeightInput waits for the package weight.
	WeightInput

	// DimensionsInput waits for width, height and length, read in one pass.
	DimensionsInput

	// QuoteCalculation computes and reports the quote.
	QuoteCalculation

	// Complete means a quote was reported. Terminal.
	Complete

	// Error means the package was rejected or the input ended. Terminal.
	Error
)

// Event is what happened in the current state; it drives Transition.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// Begin leaves Start.
	Begin

	// WeightAccepted means a weight was parsed and passed validation.
	WeightAccepted

	// DimensionsAccepted means all three dimensions were parsed in one pass and passed validation.
	DimensionsAccepted

	// QuoteReported means the quote was printed.
	QuoteReported

	// Rejected means a business rule refused the package.
	Rejected

	// InputClosed means no more input can be read.
	InputClosed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:          "Unknown",
		Start:            "Start",
		WeightInput:      "WeightInput",
		DimensionsInput:  "DimensionsInput",
		QuoteCalculation: "QuoteCalculation",
		Complete:         "Complete",
		Error:            "Error",
	}
}

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:       "Unknown",
		Begin:              "Begin",
		WeightAccepted:     "WeightAccepted",
		DimensionsAccepted: "DimensionsAccepted",
		QuoteReported:      "QuoteReported",
		Rejected:           "Rejected",
		InputClosed:        "InputClosed",
	}
}

// getTransitions returns the transition table. States missing from the
// outer map, and events missing from an inner map, have no transition.
func getTransitions() map[State]map[Event]State {
	return map[State]map[Event]State{
		Start: {
			Begin:       WeightInput,
			InputClosed: Error,
		},
		WeightInput: {
			WeightAccepted: DimensionsInput,
			Rejected:       Error,
			InputClosed:    Error,
		},
		DimensionsInput: {
			DimensionsAccepted: QuoteCalculation,
			Rejected:           Error,
			InputClosed:        Error,
		},
		QuoteCalculation: {
			QuoteReported: Complete,
			InputClosed:   Error,
		},
	}
}

// String returns the state name, or "Unknown" for values outside the enum.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate returns an error for Unknown and any value outside the enum.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// IsTerminal reports whether the session loop must stop in this state.
func (s State) IsTerminal() bool {
	return s == Complete || s == Error
}

// String returns the event name, or "Unknown" for values outside the enum.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "Unknown"
}

// Transition is the state machine's transition function. It returns the
// state reached from s on event e.
//
// Returns:
//   - (next, nil) when the table allows the transition
//   - (s, error wrapping ErrTransitionIsInvalid) otherwise; s is returned unchanged
//
// Example:
//
//	next, err := session.WeightInput.Transition(session.WeightAccepted)
//	// next == session.DimensionsInput
func (s State) Transition(e Event) (State, error) {
	if next, ok := getTransitions()[s][e]; ok {
		return next, nil
	}

	return s, errs.NewValueIsInvalidErrorWithCause(
		"state transition",
		fmt.Errorf("%w: %s cannot handle %s", ErrTransitionIsInvalid, s, e),
	)
}
