package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"packexpress/internal/adapters/in/console"
	"packexpress/internal/core/ports"
	"packexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestNewConsole(t *testing.T) {
	t.Run("should require reader", func(t *testing.T) {
		c, err := console.NewConsole(nil, io.Discard, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should require writer", func(t *testing.T) {
		c, err := console.NewConsole(strings.NewReader(""), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})
}

func TestConsole_ReadLine(t *testing.T) {
	t.Run("should return lines without terminators", func(t *testing.T) {
		c, err := console.NewConsole(strings.NewReader("10\r\nabc\n 2.5 \nlast"), io.Discard, nil)
		require.NoError(t, err)

		for _, expected := range []string{"10", "abc", " 2.5 ", "last"} {
			line, err := c.ReadLine(context.Background())
			require.NoError(t, err)
			assert.Equal(t, expected, line)
		}

		_, err = c.ReadLine(context.Background())
		require.ErrorIs(t, err, ports.ErrInputClosed)
	})

	t.Run("should return long lines whole", func(t *testing.T) {
		long := strings.Repeat("x", 70000)
		c, err := console.NewConsole(strings.NewReader(long+"\n10\n"), io.Discard, nil)
		require.NoError(t, err)

		line, err := c.ReadLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, long, line)

		line, err = c.ReadLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "10", line)
	})

	t.Run("should return empty line", func(t *testing.T) {
		c, err := console.NewConsole(strings.NewReader("\n"), io.Discard, nil)
		require.NoError(t, err)

		line, err := c.ReadLine(context.Background())

		require.NoError(t, err)
		assert.Empty(t, line)
	})

	t.Run("should wrap read failures", func(t *testing.T) {
		c, err := console.NewConsole(failingReader{}, io.Discard, nil)
		require.NoError(t, err)

		_, err = c.ReadLine(context.Background())

		require.Error(t, err)
		assert.NotErrorIs(t, err, ports.ErrInputClosed)
		assert.Contains(t, err.Error(), "read input: device gone")
	})

	t.Run("should honor cancelled context", func(t *testing.T) {
		c, err := console.NewConsole(strings.NewReader("10\n"), io.Discard, nil)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = c.ReadLine(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_WriteLine(t *testing.T) {
	t.Run("should append newline", func(t *testing.T) {
		out := &bytes.Buffer{}
		c, err := console.NewConsole(strings.NewReader(""), out, nil)
		require.NoError(t, err)

		require.NoError(t, c.WriteLine(context.Background(), "Thank you!"))
		require.NoError(t, c.WriteLine(context.Background(), ""))

		assert.Equal(t, "Thank you!\n\n", out.String())
	})

	t.Run("should wrap write failures", func(t *testing.T) {
		c, err := console.NewConsole(strings.NewReader(""), failingWriter{}, nil)
		require.NoError(t, err)

		err = c.WriteLine(context.Background(), "hello")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "write output: disk full")
	})
}
