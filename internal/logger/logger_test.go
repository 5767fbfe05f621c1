package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reset(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		Logger = zap.NewNop().Sugar()
	})
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Logger.Infow("ignored", "k", "v") })
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
	}{
		{name: "console", opts: Options{}},
		{name: "json", opts: Options{JSON: true}},
		{name: "verbose", opts: Options{Verbose: true}, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset(t)

			require.NoError(t, Initialize(tt.opts))
			require.NotNil(t, Logger)

			assert.Equal(t, tt.wantDebug, Logger.Desugar().Core().Enabled(zap.DebugLevel))
			assert.True(t, Logger.Desugar().Core().Enabled(zap.InfoLevel))
		})
	}
}

func TestInitialize_File(t *testing.T) {
	reset(t)

	path := filepath.Join(t.TempDir(), "run.log")

	require.NoError(t, Initialize(Options{JSON: true, File: path}))
	Logger.Infow("generated", "files", 3)
	Cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"generated"`)
	assert.Contains(t, string(data), `"files":3`)
}

func TestInitialize_BadFile(t *testing.T) {
	reset(t)

	err := Initialize(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "run.log")})
	assert.Error(t, err)
}
