package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		want    bool
	}{
		{level: "debug", want: true},
		{level: "info", want: false},
		{level: "", want: false},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("LOG_ENCODING", "console")

			logger, err := New()
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.Core().Enabled(zap.DebugLevel))
		})
	}
}
