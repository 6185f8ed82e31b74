package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger())
	assert.NotNil(t, Logger)
}

func TestInitLoggerRespectsLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	require.NoError(t, InitLogger())
	assert.True(t, Logger.Core().Enabled(-1)) // zapcore.DebugLevel
}

func TestSafeLoggerNilTolerance(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	var s *SafeLogger
	assert.NotPanics(t, func() {
		s.Info("nil receiver")
		NewSafeLogger("test").Debug("nil global")
	})
}
