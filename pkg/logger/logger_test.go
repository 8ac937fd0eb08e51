package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestZapLogger_KeysAndValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	log.Info("Seeded kind", "kind", "airports", "inserted", 2)
	log.With("store", "relational").Error("Insert failed", "kind", "seats")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "Seeded kind", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "airports", entries[0].ContextMap()["kind"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["inserted"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "relational", entries[1].ContextMap()["store"])
	assert.Equal(t, "seats", entries[1].ContextMap()["kind"])
}

func TestNewNopLogger(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Debug("ignored")
		log.With("k", "v").Warn("ignored")
	})
}
