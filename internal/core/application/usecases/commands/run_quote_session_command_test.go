package commands_test

import (
	"testing"

	"packexpress/internal/core/application/usecases/commands"
	"packexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunQuoteSessionCommand(t *testing.T) {
	t.Run("should create command with valid session id", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewRunQuoteSessionCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.SessionID().IsEqual(id))
	})

	t.Run("should reject invalid session id", func(t *testing.T) {
		var id kernel.UUID

		cmd, err := commands.NewRunQuoteSessionCommand(id)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, commands.ErrRunQuoteSessionCommandIsNotConstructed, cmd.Validate())
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.RunQuoteSessionCommand

		assert.Equal(t, commands.ErrRunQuoteSessionCommandIsNotConstructed, cmd.Validate())
	})
}
