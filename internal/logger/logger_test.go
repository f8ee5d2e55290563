package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"sessionId", "abc", "password", "hunter2", "Authorization", "Bearer x", "dangling"})
	assert.Equal(t, []interface{}{"sessionId", "abc", "password", "[REDACTED]", "Authorization", "[REDACTED]", "dangling"}, out)
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		log, err := New(mode)
		require.NoError(t, err, mode)
		log.With("component", "test").Debug("hello", "k", 1)
	}
	Nop().Info("discarded")
}
