package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		expected  zerolog.Level
	}{
		{"default is warn", 0, zerolog.WarnLevel},
		{"one v is info", 1, zerolog.InfoLevel},
		{"two v is debug", 2, zerolog.DebugLevel},
		{"three v is trace", 3, zerolog.TraceLevel},
		{"more v stays trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("engine")
	assert.NotNil(t, logger)
}
