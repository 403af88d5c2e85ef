package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "json", &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "route_id", "route1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "route1", line["route_id"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "text", &buf)
	require.NoError(t, err)

	log.Debug("store changed", "kind", "routes")
	assert.Contains(t, buf.String(), "msg=\"store changed\" kind=routes")
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := New("chatty", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "yaml", &bytes.Buffer{})
	assert.Error(t, err)
}
