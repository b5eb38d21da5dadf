package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/rebuzzle-bot/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		debugging bool
	}{
		{env: "production", debugging: false},
		{env: "local", debugging: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			l, err := New(&config.Config{Env: tt.env})
			require.NoError(t, err)
			assert.Equal(t, tt.debugging, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
