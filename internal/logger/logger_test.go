package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*3600)
	l := New(&buf, loc, "debug")

	l.WithFields(logrus.Fields{"component": "database", "event": "db_migration_start"}).Info("starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "starting", entry["msg"])
	assert.Equal(t, "database", entry["component"])
	assert.Equal(t, "db_migration_start", entry["event"])

	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestNew_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil, "not-a-level")

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() { l.Error("dropped") })
}
