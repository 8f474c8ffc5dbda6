package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"packexpress/cmd"
	"packexpress/internal/core/application/usecases/commands"
	"packexpress/internal/core/domain/model/kernel"
	"packexpress/internal/core/domain/model/session"
	"packexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should use defaults", func(t *testing.T) {
		t.Setenv("PACKEXPRESS_LOG_LEVEL", "")
		os.Unsetenv("PACKEXPRESS_LOG_LEVEL")
		t.Setenv("PACKEXPRESS_LOG_FORMAT", "")
		os.Unsetenv("PACKEXPRESS_LOG_FORMAT")

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("should read environment", func(t *testing.T) {
		t.Setenv("PACKEXPRESS_LOG_LEVEL", " DEBUG ")
		t.Setenv("PACKEXPRESS_LOG_FORMAT", "json")

		cfg, err := cmd.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("should read env file without overriding environment", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		content := "PACKEXPRESS_LOG_LEVEL=info\nPACKEXPRESS_LOG_FORMAT=json\n"
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
		t.Setenv("PACKEXPRESS_LOG_LEVEL", "error")
		t.Setenv("PACKEXPRESS_LOG_FORMAT", "")
		os.Unsetenv("PACKEXPRESS_LOG_FORMAT")

		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("should reject unsupported values", func(t *testing.T) {
		t.Setenv("PACKEXPRESS_LOG_LEVEL", "verbose")
		t.Setenv("PACKEXPRESS_LOG_FORMAT", "xml")

		_, err := cmd.LoadConfig("")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "log level")
		assert.Contains(t, err.Error(), "log format")
	})

	t.Run("should report unreadable env file", func(t *testing.T) {
		_, err := cmd.LoadConfig(t.TempDir())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load ")
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("should filter below configured level", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := cmd.NewLogger(cmd.Config{LogLevel: "warn", LogFormat: "text"}, out)

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "msg=shown")
	})

	t.Run("should write json", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := cmd.NewLogger(cmd.Config{LogLevel: "debug", LogFormat: "json"}, out)

		logger.Debug("quote", "amount", 2.4)

		line := strings.TrimSpace(out.String())
		assert.True(t, strings.HasPrefix(line, "{"))
		assert.Contains(t, line, `"msg":"quote"`)
		assert.Contains(t, line, `"amount":2.4`)
	})
}

func TestCompositionRoot(t *testing.T) {
	t.Run("should require console streams", func(t *testing.T) {
		_, err := cmd.NewCompositionRoot(nil, &bytes.Buffer{}, cmd.NewLogger(cmd.Config{}, &bytes.Buffer{}))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should wire a working handler", func(t *testing.T) {
		out := &bytes.Buffer{}
		root, err := cmd.NewCompositionRoot(strings.NewReader("60\n"), out, cmd.NewLogger(cmd.Config{}, &bytes.Buffer{}))
		require.NoError(t, err)

		handler := root.CreateRunQuoteSessionCommandHandler()
		command, err := commands.NewRunQuoteSessionCommand(kernel.NewUUID())
		require.NoError(t, err)

		state, err := handler.Handle(context.Background(), command)

		require.NoError(t, err)
		assert.Equal(t, session.Error, state)
		assert.Contains(t, out.String(), commands.MessageTooHeavy)
	})
}
