package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"packexpress/internal/core/ports"
	"packexpress/internal/pkg/errs"
)

var _ ports.Console = (*Console)(nil)

// Console implements ports.Console over a reader and a writer, normally the
// process's standard input and output.
type Console struct {
	reader  *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
}

// NewConsole creates a console adapter. in and out must not be nil.
func NewConsole(in io.Reader, out io.Writer, logger *slog.Logger) (*Console, error) {
	if in == nil {
		return nil, errs.NewValueIsRequiredError("in")
	}
	if out == nil {
		return nil, errs.NewValueIsRequiredError("out")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Console{
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  logger.With("component", "console"),
	}, nil
}

// ReadLine returns the next line without its terminator. Lines have no
// length limit. A final line that is not newline-terminated is still
// returned; after it, ReadLine returns ports.ErrInputClosed.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if err != nil && line == "" {
		return "", ports.ErrInputClosed
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	c.logger.DebugContext(ctx, "Line read", "bytes", len(line))
	return line, nil
}

// WriteLine writes line and a newline.
func (c *Console) WriteLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
