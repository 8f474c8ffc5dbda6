package session

import (
	"errors"
	"fmt"

	"packexpress/internal/core/domain/model/kernel"
	"packexpress/internal/core/domain/model/parcel"
	"packexpress/internal/pkg/errs"
	"packexpress/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created through NewSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// Session is the aggregate root of one quote run. It owns the package record
// and the current State, and only lets the record change in the stage that
// collects the corresponding measures.
//
// Session invariants:
//   - Must have a valid identifier
//   - Starts in Start with an empty package record
//   - Weight can only be recorded in WeightInput
//   - Dimensions can only be recorded in DimensionsInput
//   - QuoteCalculation is only reachable with a complete package record
type Session struct {
	id    kernel.UUID
	state State
	pkg   *parcel.Package

	guard guard.ConstructorGuard
}

// NewSession creates a session in the Start state.
//
// Parameters:
//   - id: session identifier (must be a valid UUID)
//
// Returns:
//   - *Session: the new session
//   - error: validation error if id is invalid
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:    id,
		state: Start,
		pkg:   parcel.NewPackage(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Session was created through NewSession.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// IsFinished reports whether the session reached a terminal state.
func (s *Session) IsFinished() bool {
	return s.state.IsTerminal()
}

// Package returns a copy of the package record. Changes to the copy do not
// affect the session.
func (s *Session) Package() *parcel.Package {
	pkg := *s.pkg
	return &pkg
}

// RecordWeight stores the weight. Only allowed in WeightInput.
func (s *Session) RecordWeight(weight float64) error {
	if err := s.requireState(WeightInput); err != nil {
		return err
	}
	return s.pkg.SetWeight(weight)
}

// RecordDimensions stores width, height and length together. Only allowed in DimensionsInput.
func (s *Session) RecordDimensions(width, height, length float64) error {
	if err := s.requireState(DimensionsInput); err != nil {
		return err
	}
	return s.pkg.SetDimensions(width, height, length)
}

// Fire applies event e. On error the state is unchanged.
//
// DimensionsAccepted additionally requires a complete package record, so a
// quote can never be computed from unset fields.
func (s *Session) Fire(e Event) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if e == DimensionsAccepted && !s.pkg.IsComplete() {
		return parcel.ErrPackageIsIncomplete
	}

	next, err := s.state.Transition(e)
	if err != nil {
		return err
	}

	s.state = next
	return nil
}

func (s *Session) requireState(expected State) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.state != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%w: expected %s, session is in %s", ErrTransitionIsInvalid, expected, s.state),
		)
	}
	return nil
}
