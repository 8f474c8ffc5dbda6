package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"packexpress/internal/core/domain/model/kernel"
	"packexpress/internal/core/domain/model/session"
	"packexpress/internal/core/ports"
)

// RunQuoteSessionCommandHandler is the state controller of a quote session.
// It loops over the session state machine until it reaches Complete or Error,
// reading measures from the console, recording them in the session's package
// record, asking the validator and finally the calculator.
//
// Input that does not parse as a measure is recovered locally: a retry
// message is printed and the same stage runs again. A validator rejection is
// terminal.
//
// Example:
//
//	handler := NewRunQuoteSessionCommandHandler(console, services.NewPackageValidator(),
//	    services.NewQuoteCalculator(), logger)
//	cmd, _ := NewRunQuoteSessionCommand(kernel.NewUUID())
//
//	state, err := handler.Handle(ctx, cmd)
//	// state is session.Complete or session.Error
type RunQuoteSessionCommandHandler struct {
	console    ports.Console
	validator  PackageValidator
	calculator QuoteCalculator
	logger     *slog.Logger
}

// NewRunQuoteSessionCommandHandler creates the session controller.
func NewRunQuoteSessionCommandHandler(
	console ports.Console,
	validator PackageValidator,
	calculator QuoteCalculator,
	logger *slog.Logger,
) RunQuoteSessionCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return RunQuoteSessionCommandHandler{
		console:    console,
		validator:  validator,
		calculator: calculator,
		logger:     logger.With("component", "quote_session"),
	}
}

// Handle runs one session to completion and returns its final state.
//
// Returns:
//   - (session.Complete, nil) after a quote was printed
//   - (session.Error, nil) after a business rule rejection
//   - (session.Error, ports.ErrInputClosed) when input ended mid-session
//   - (current state, err) for console failures or context cancellation
func (h *RunQuoteSessionCommandHandler) Handle(ctx context.Context, cmd RunQuoteSessionCommand) (session.State, error) {
	if err := cmd.Validate(); err != nil {
		return session.Unknown, err
	}

	s, err := session.NewSession(cmd.SessionID())
	if err != nil {
		return session.Unknown, err
	}

	logger := h.logger.With("session_id", s.ID().String())
	logger.InfoContext(ctx, "Quote session started")

	if err = h.console.WriteLine(ctx, MessageWelcome); err != nil {
		return s.State(), err
	}

	for !s.IsFinished() {
		if err = ctx.Err(); err != nil {
			return s.State(), err
		}

		if err = h.step(ctx, s, logger); err != nil {
			if errors.Is(err, ports.ErrInputClosed) {
				if fireErr := s.Fire(session.InputClosed); fireErr != nil {
					return s.State(), errors.Join(err, fireErr)
				}
				logger.WarnContext(ctx, "Input closed before the session finished")
			}
			return s.State(), err
		}
	}

	logger.InfoContext(ctx, "Quote session finished", "state", s.State().String())
	return s.State(), nil
}

func (h *RunQuoteSessionCommandHandler) step(ctx context.Context, s *session.Session, logger *slog.Logger) error {
	switch s.State() {
	case session.Start:
		return s.Fire(session.Begin)
	case session.WeightInput:
		return h.handleWeightInput(ctx, s, logger)
	case session.DimensionsInput:
		return h.handleDimensionsInput(ctx, s, logger)
	case session.QuoteCalculation:
		return h.handleQuoteCalculation(ctx, s, logger)
	case session.Unknown, session.Complete, session.Error:
		return fmt.Errorf("no step for state %s", s.State())
	default:
		return s.State().Validate()
	}
}

func (h *RunQuoteSessionCommandHandler) handleWeightInput(
	ctx context.Context,
	s *session.Session,
	logger *slog.Logger,
) error {
	weight, err := h.readMeasure(ctx, PromptWeight, "weight")
	if err != nil {
		return h.retryOnInvalidInput(ctx, err, MessageInvalidNumber, logger)
	}

	if err = s.RecordWeight(weight); err != nil {
		return err
	}

	if err = h.validator.ValidateWeight(weight); err != nil {
		logger.InfoContext(ctx, "Package rejected", "reason", err.Error())
		return h.reject(ctx, s, MessageTooHeavy)
	}

	return s.Fire(session.WeightAccepted)
}

// handleDimensionsInput reads width, height and length in one pass. A parse
// failure abandons the whole pass; nothing read in it is kept.
func (h *RunQuoteSessionCommandHandler) handleDimensionsInput(
	ctx context.Context,
	s *session.Session,
	logger *slog.Logger,
) error {
	width, err := h.readMeasure(ctx, PromptWidth, "width")
	if err != nil {
		return h.retryOnInvalidInput(ctx, err, MessageInvalidNumbers, logger)
	}

	height, err := h.readMeasure(ctx, PromptHeight, "height")
	if err != nil {
		return h.retryOnInvalidInput(ctx, err, MessageInvalidNumbers, logger)
	}

	length, err := h.readMeasure(ctx, PromptLength, "length")
	if err != nil {
		return h.retryOnInvalidInput(ctx, err, MessageInvalidNumbers, logger)
	}

	if err = s.RecordDimensions(width, height, length); err != nil {
		return err
	}

	if err = h.validator.ValidateDimensions(s.Package()); err != nil {
		logger.InfoContext(ctx, "Package rejected", "reason", err.Error())
		return h.reject(ctx, s, MessageTooBig)
	}

	return s.Fire(session.DimensionsAccepted)
}

func (h *RunQuoteSessionCommandHandler) handleQuoteCalculation(
	ctx context.Context,
	s *session.Session,
	logger *slog.Logger,
) error {
	pkg := s.Package()

	q, err := h.calculator.CalculateQuote(pkg)
	if err != nil {
		return fmt.Errorf("calculate quote: %w", err)
	}

	logger.InfoContext(ctx, "Quote calculated", "package", pkg.String(), "amount", q.Amount())

	if err = h.console.WriteLine(ctx, fmt.Sprintf(MessageQuote, q.String())); err != nil {
		return err
	}

	if err = h.console.WriteLine(ctx, MessageThankYou); err != nil {
		return err
	}

	return s.Fire(session.QuoteReported)
}

// readMeasure prints prompt, reads one line and parses it. Parse failures
// wrap kernel.ErrMeasureIsInvalid; anything else is a console error.
func (h *RunQuoteSessionCommandHandler) readMeasure(ctx context.Context, prompt, name string) (float64, error) {
	if err := h.console.WriteLine(ctx, prompt); err != nil {
		return 0, err
	}

	line, err := h.console.ReadLine(ctx)
	if err != nil {
		return 0, err
	}

	return kernel.ParseMeasure(name, line)
}

// retryOnInvalidInput turns a parse failure into a retry message and keeps the
// session in its current state. Other errors are returned unchanged.
func (h *RunQuoteSessionCommandHandler) retryOnInvalidInput(
	ctx context.Context,
	err error,
	message string,
	logger *slog.Logger,
) error {
	if !errors.Is(err, kernel.ErrMeasureIsInvalid) {
		return err
	}

	logger.DebugContext(ctx, "Invalid input, asking again", "error", err.Error())
	return h.console.WriteLine(ctx, message)
}

func (h *RunQuoteSessionCommandHandler) reject(ctx context.Context, s *session.Session, message string) error {
	if err := h.console.WriteLine(ctx, message); err != nil {
		return err
	}
	return s.Fire(session.Rejected)
}
