package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	require.NotNil(t, logger.entry)
	assert.Same(t, logger.base, logger.entry.Logger)
	assert.Empty(t, logger.entry.Data)
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger := New()

	assert.NotPanics(t, func() {
		logger.Info("Info 1")
		logger.Error("Error 1")
		logger.Warn("Warn 1")
		logger.Debug("Debug 1")
	})
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()
	buf := &bytes.Buffer{}
	logger.Logrus().SetOutput(buf)

	logger.Info("User %s logged in with ID %d", "maria", 123)

	assert.Contains(t, buf.String(), "User maria logged in with ID 123")
}

func TestNewWithEnv_ProductionUsesJSON(t *testing.T) {
	logger := NewWithEnv("atlas", "production")
	buf := &bytes.Buffer{}
	logger.Logrus().SetOutput(buf)

	logger.Warn("Slot %s is corrupt", "users")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "atlas", line["app"])
	assert.Equal(t, "Slot users is corrupt", line["msg"])
	assert.Equal(t, "warning", line["level"])
}

func TestNewWithEnv_DevelopmentLogsDebug(t *testing.T) {
	logger := NewWithEnv("atlas", "development")
	buf := &bytes.Buffer{}
	logger.Logrus().SetOutput(buf)

	logger.Debug("latch %s released", "course:1")

	assert.Contains(t, buf.String(), "latch course:1 released")
}

func TestNewWithEnv_EveryLevelSharesAppField(t *testing.T) {
	logger := NewWithEnv("atlas", "staging")
	buf := &bytes.Buffer{}
	logger.Logrus().SetOutput(buf)

	logger.Debug("hidden below info")
	logger.Info("slot %s loaded", "courses")
	logger.Error("slot %s failed", "posts")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for i, want := range []string{"info", "error"} {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(lines[i], &line))
		assert.Equal(t, "atlas", line["app"])
		assert.Equal(t, want, line["level"])
	}
}
