package commands

import (
	"errors"

	"packexpress/internal/core/domain/model/kernel"
	"packexpress/internal/pkg/guard"
)

var (
	ErrRunQuoteSessionCommandIsNotConstructed = errors.New(
		"RunQuoteSessionCommand must be created via NewRunQuoteSessionCommand constructor",
	)
)

// RunQuoteSessionCommand requests one interactive quote session.
//
// Example:
//
//	cmd, err := NewRunQuoteSessionCommand(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRunQuoteSessionCommandHandler(console, validator, calculator, logger)
//	state, err := handler.Handle(ctx, cmd)
type RunQuoteSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRunQuoteSessionCommand creates a command for a session with the given identifier.
func NewRunQuoteSessionCommand(sessionID kernel.UUID) (RunQuoteSessionCommand, error) {
	cmd := RunQuoteSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return RunQuoteSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RunQuoteSessionCommand) Validate() error {
	return c.guard.Validate(ErrRunQuoteSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session to run.
func (c RunQuoteSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *RunQuoteSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
