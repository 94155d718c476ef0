package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-tui/internal/config"
)

func TestForComponent_UsesSinkInstalledLater(t *testing.T) {
	log := ForComponent(CompPanel)

	var buf bytes.Buffer
	InitWriter(&buf, config.LoggingConfig{Level: "debug", Format: "json"})
	t.Cleanup(func() { Init(config.LoggingConfig{}) })

	log.Info("import_failed", "error", "boom")

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "import_failed", record["msg"])
	assert.Equal(t, CompPanel, record["component"])
	assert.Equal(t, "boom", record["error"])
}

func TestInit_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init(config.LoggingConfig{FilePath: path, Level: "info", Format: "text", MaxSizeMB: 1})
	t.Cleanup(Shutdown)

	Logger().Info("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "k=v")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, config.LoggingConfig{Level: "warn", Format: "text"})
	t.Cleanup(func() { Init(config.LoggingConfig{}) })

	Logger().Info("dropped")
	Logger().Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestForComponent_GroupsAndAttrsKeepCallOrder(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"})
	t.Cleanup(func() { Init(config.LoggingConfig{}) })

	log := ForComponent(CompWatch).With("outer", 1).WithGroup("event").With("path", "/tmp/x").WithGroup("op")
	log.Info("data_file_event", "name", "write")

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, CompWatch, record["component"])
	assert.EqualValues(t, 1, record["outer"])

	event, ok := record["event"].(map[string]any)
	require.True(t, ok, "attrs added after WithGroup live inside the group")
	assert.Equal(t, "/tmp/x", event["path"])
	op, ok := event["op"].(map[string]any)
	require.True(t, ok, "nested groups are kept")
	assert.Equal(t, "write", op["name"])
}
