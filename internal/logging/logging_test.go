package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), Prefix)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}

func TestNewFile_AppendsLogfmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "envmodules.log")

	logger, closer, err := NewFile(path, "debug")
	require.NoError(t, err)
	logger.Debug("ran", "action", "load")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "action=load")
}
