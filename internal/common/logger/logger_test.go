package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriters(zerolog.DebugLevel, &buf)

	log.Info("route found", "from", "Saket~Y", "cost", 26)

	entry := decode(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "route found", entry["message"])
	assert.Equal(t, "Saket~Y", entry["from"])
	assert.Equal(t, float64(26), entry["cost"])
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriters(zerolog.DebugLevel, &buf)

	log.Warn("lookup failed", "error", errors.New("boom"))

	assert.Equal(t, "boom", decode(t, &buf)["error"])
}

func TestMapFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriters(zerolog.DebugLevel, &buf)

	log.Debug("loaded", map[string]interface{}{"stations": 20})

	assert.Equal(t, float64(20), decode(t, &buf)["stations"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriters(zerolog.WarnLevel, &buf)

	log.Info("hidden")
	log.Debug("hidden")

	assert.Zero(t, buf.Len())
}

func TestWithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriters(zerolog.InfoLevel, &buf).With("component", "topology")

	log.Info("built")

	assert.Equal(t, "topology", decode(t, &buf)["component"])
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLogLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLogLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLogLevel("chatty"))
	assert.Equal(t, zerolog.InfoLevel, ParseLogLevel(""))
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info("nothing", "k", "v")
	log.With("a", 1).Error("still nothing")
}
