package ports

import (
	"context"
	"errors"
)

// ErrInputClosed is returned by Console.ReadLine when no more input can be read.
var ErrInputClosed = errors.New("input closed")

// Console is the line-oriented user interface of a quote session.
type Console interface {
	// ReadLine blocks until the user submits a line and returns it without
	// the line terminator. It returns ErrInputClosed at end of input.
	ReadLine(ctx context.Context) (string, error)

	// WriteLine prints line followed by a newline.
	WriteLine(ctx context.Context, line string) error
}
