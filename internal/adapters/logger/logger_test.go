package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	lgr, err := New("debug", OutputPath(path))
	require.NoError(t, err)
	assert.True(t, lgr.Core().Enabled(zapcore.DebugLevel))

	lgr.Info("written to file")
	_ = lgr.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}
