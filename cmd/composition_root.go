package cmd

import (
	"io"
	"log/slog"

	"packexpress/internal/adapters/in/console"
	"packexpress/internal/core/application/usecases/commands"
	"packexpress/internal/core/domain/services"
)

// CompositionRoot wires adapters and domain services into command handlers.
type CompositionRoot struct {
	console *console.Console
	logger  *slog.Logger
}

// NewCompositionRoot creates the root for a process reading from in and
// printing to out.
func NewCompositionRoot(in io.Reader, out io.Writer, logger *slog.Logger) (CompositionRoot, error) {
	c, err := console.NewConsole(in, out, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		console: c,
		logger:  logger,
	}, nil
}

func (c *CompositionRoot) CreateRunQuoteSessionCommandHandler() commands.RunQuoteSessionCommandHandler {
	return commands.NewRunQuoteSessionCommandHandler(
		c.console,
		services.NewPackageValidator(),
		services.NewQuoteCalculator(),
		c.logger,
	)
}
