package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, parseLevel("warning"))
	assert.Equal(t, ErrorLevel, parseLevel("error"))
	assert.Equal(t, InfoLevel, parseLevel("nonsense"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden")
	log.Warn("Sheet source degraded", "source", "csv")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Sheet source degraded")
	assert.Contains(t, out, "source=csv")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug").With("component", "web")

	log.Debug("Request handled", "status", 200)

	assert.Contains(t, buf.String(), "component=web")
	assert.Contains(t, buf.String(), "status=200")
}
