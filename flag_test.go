package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFlag(t *testing.T) {
	t.Run("should accept known levels case insensitively", func(t *testing.T) {
		var f logLevelFlag
		require.NoError(t, f.Set("debug"))
		assert.Equal(t, slog.LevelDebug, f.value)
		require.NoError(t, f.Set("ERROR"))
		assert.Equal(t, slog.LevelError, f.value)
	})
	t.Run("should reject unknown levels", func(t *testing.T) {
		var f logLevelFlag
		assert.Error(t, f.Set("verbose"))
	})
}

func TestVersionFlags(t *testing.T) {
	t.Run("should define the short and the long version flag", func(t *testing.T) {
		assert.NotNil(t, flag.Lookup("v"))
		assert.NotNil(t, flag.Lookup("version"))
	})
}
