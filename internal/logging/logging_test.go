package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"", "console", "json"} {
		l, err := NewLogger(Options{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l.Zap())
	}

	_, err := NewLogger(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(Options{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestKeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := New(zap.New(core)).With("component", "test")

	l.Info("page rendered", "path", "/agents", "status", 200)
	l.Warn("slow")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "page rendered", entries[0].Message)
	assert.Equal(t, "/agents", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
	assert.Equal(t, "test", fields["component"])
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	l.Error("ignored", "k", "v")
	l.Debug("ignored")
}
