package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar-tui", "config.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.FileExists(t, path)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, DefaultTimestampFormat, cfg.Data.TimestampFormat)
	assert.Equal(t, "a", cfg.Keybindings["panel"])
	assert.Equal(t, filepath.Dir(cfg.Data.File), cfg.Data.ExportDir)
	assert.Equal(t, filepath.Join(cfg.Data.ExportDir, "import.json"), cfg.Data.ImportFile)
}

func TestLoadFrom_MergesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `theme: sepia
data:
  file: ` + filepath.Join(dir, "cal.json") + `
  timestamp_format: ""
keybindings:
  quit: ctrl+x
  panel: ""
logging:
  level: loud
  format: xml
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme, "unknown themes fall back to dark")
	assert.Equal(t, DefaultTimestampFormat, cfg.Data.TimestampFormat)
	assert.Equal(t, "ctrl+x", cfg.Keybindings["quit"])
	assert.Equal(t, "a", cfg.Keybindings["panel"], "blank bindings take the default")
	assert.Equal(t, "ctrl+p", cfg.Keybindings["palette"])
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, dir, cfg.Data.ExportDir)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))

	cfg, err := LoadFrom(path)
	assert.Error(t, err)
	require.NotNil(t, cfg, "defaults are returned alongside the error")
	assert.Equal(t, "dark", cfg.Theme)
}

func TestSaveDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.Theme = "contrast"
	require.NoError(t, cfg.SaveDefault())

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "contrast", again.Theme)
}

func TestIsScheme(t *testing.T) {
	for _, s := range Schemes {
		assert.True(t, IsScheme(s))
	}
	assert.False(t, IsScheme("Dark"))
	assert.False(t, IsScheme(""))
}

func TestResolveTheme_System(t *testing.T) {
	orig := detectDarkMode
	t.Cleanup(func() { detectDarkMode = orig })

	cfg := DefaultConfig()
	cfg.Theme = ThemeSystem
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ThemeSystem, cfg.Theme, "system survives validation")

	detectDarkMode = func() (bool, error) { return false, nil }
	assert.Equal(t, "light", cfg.ResolveTheme())

	detectDarkMode = func() (bool, error) { return true, nil }
	assert.Equal(t, "dark", cfg.ResolveTheme())

	detectDarkMode = func() (bool, error) { return false, errors.New("no dbus") }
	assert.Equal(t, "dark", cfg.ResolveTheme())

	cfg.Theme = "contrast"
	assert.Equal(t, "contrast", cfg.ResolveTheme())
}
