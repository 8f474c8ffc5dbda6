package main

import (
	"context"
	"io"
	"os"

	"packexpress/cmd"
	"packexpress/internal/core/application/usecases/commands"
	"packexpress/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err = run(context.Background(), config, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Error starting application: %v", err)
	}
}

// run wires the application and executes one quote session. Only wiring
// failures are returned. Once the session has started, its outcome is reported
// on the console and in the logs, and the process exits with status 0.
func run(ctx context.Context, config cmd.Config, in io.Reader, out, logW io.Writer) error {
	logger := cmd.NewLogger(config, logW)

	app, err := cmd.NewCompositionRoot(in, out, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build application", "error", err)
		return err
	}

	command, err := commands.NewRunQuoteSessionCommand(kernel.NewUUID())
	if err != nil {
		return err
	}

	handler := app.CreateRunQuoteSessionCommandHandler()
	state, err := handler.Handle(ctx, command)
	if err != nil {
		logger.ErrorContext(ctx, "Quote session failed", "state", state.String(), "error", err)
	}

	return nil
}
