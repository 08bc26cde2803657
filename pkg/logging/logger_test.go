package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{level: "", want: zapcore.InfoLevel},
		{level: "debug", want: zapcore.DebugLevel},
		{level: "info", want: zapcore.InfoLevel},
		{level: "WARN", want: zapcore.WarnLevel},
		{level: "error", want: zapcore.ErrorLevel},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), `invalid log level "verbose"`)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}
