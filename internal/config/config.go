package config

import (
	"os"
	"path/filepath"
	"strings"

	dark "github.com/thiagokokada/dark-mode-go"
	"gopkg.in/yaml.v3"
)

const appDirName = "calendar-tui"

// Config конфигурация приложения
type Config struct {
	// Внешний вид: "dark", "light", "contrast" или "system"
	Theme string `yaml:"theme"`

	// Данные календаря
	Data DataConfig `yaml:"data"`

	// Горячие клавиши
	Keybindings map[string]string `yaml:"keybindings"`

	// Логирование
	Logging LoggingConfig `yaml:"logging"`

	path string
}

// DataConfig describes where calendar data lives and where exports go.
type DataConfig struct {
	File            string `yaml:"file"`             // JSON-файл хранилища
	ImportFile      string `yaml:"import_file"`      // файл, который читает "upload .json"
	ExportDir       string `yaml:"export_dir"`       // каталог для "download .json"
	TimestampFormat string `yaml:"timestamp_format"` // strftime-формат для имени экспорта
	WatchFile       bool   `yaml:"watch_file"`       // перечитывать файл при внешних изменениях
}

// LoggingConfig настройки логирования
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json или text
	FilePath   string `yaml:"file_path"`   // Путь к файлу логов
	MaxSizeMB  int    `yaml:"max_size_mb"` // Размер файла до ротации
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Schemes lists accepted theme names in radio order.
var Schemes = []string{"dark", "light", "contrast"}

// ThemeSystem follows the OS dark mode setting at startup.
const ThemeSystem = "system"

// detectDarkMode подменяется в тестах
var detectDarkMode = dark.IsDarkMode

// DefaultTimestampFormat is used for export file names when none is configured.
const DefaultTimestampFormat = "%Y-%m-%d_%H-%M-%S"

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Theme: "dark",

		Data: DataConfig{
			File:            getDefaultDataPath(),
			ImportFile:      "",
			ExportDir:       "",
			TimestampFormat: DefaultTimestampFormat,
			WatchFile:       true,
		},

		Keybindings: map[string]string{
			"quit":      "ctrl+q",
			"settings":  "ctrl+comma",
			"panel":     "a",
			"shortcuts": "?",
			"palette":   "ctrl+p",
			"back":      "esc",
		},

		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			FilePath:   "", // Будет определен автоматически
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Load загружает конфигурацию из файла
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), err // Возвращаем конфиг по умолчанию
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, creating it with defaults when absent.
func LoadFrom(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = configPath

	// Если файл не существует, создаем его с настройками по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg.fillPaths()
		if err := cfg.Save(configPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	cfg.fillPaths()

	// Заполняем отсутствующие привязки клавиш значениями по умолчанию
	defaults := DefaultConfig()
	cfg.applyKeybindingDefaults(defaults.Keybindings)

	_ = cfg.Validate()

	return cfg, nil
}

func (c *Config) fillPaths() {
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = getDefaultLogPath()
	}
	if c.Data.File == "" {
		c.Data.File = getDefaultDataPath()
	}
	if c.Data.ExportDir == "" {
		c.Data.ExportDir = filepath.Dir(c.Data.File)
	}
	if c.Data.ImportFile == "" {
		c.Data.ImportFile = filepath.Join(c.Data.ExportDir, "import.json")
	}
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if defaults == nil {
		return
	}
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for key, value := range defaults {
		current, ok := c.Keybindings[key]
		if !ok || strings.TrimSpace(current) == "" {
			c.Keybindings[key] = value
		}
	}
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	c.path = path
	return nil
}

// SaveDefault сохраняет конфигурацию туда, откуда она была загружена
func (c *Config) SaveDefault() error {
	if c.path != "" {
		return c.Save(c.path)
	}
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.Save(configPath)
}

// getConfigPath возвращает путь к конфигурационному файлу
func getConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, appDirName, "config.yaml"), nil
}

// getDefaultDataPath возвращает путь к файлу данных календаря
func getDefaultDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, appDirName, "calendar.json")
}

// getDefaultLogPath возвращает путь к файлу логов по умолчанию
func getDefaultLogPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, appDirName, "app.log")
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if !IsScheme(c.Theme) && c.Theme != ThemeSystem {
		c.Theme = "dark"
	}

	if strings.TrimSpace(c.Data.TimestampFormat) == "" {
		c.Data.TimestampFormat = DefaultTimestampFormat
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		c.Logging.Level = "info"
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}
	if c.Logging.MaxSizeMB < 1 {
		c.Logging.MaxSizeMB = 10
	}

	return nil
}

// ResolveTheme returns the concrete scheme name for the configured theme.
// "system" asks the OS and falls back to dark when detection fails.
func (c *Config) ResolveTheme() string {
	if c.Theme != ThemeSystem {
		return c.Theme
	}
	isDark, err := detectDarkMode()
	if err != nil || isDark {
		return "dark"
	}
	return "light"
}

// IsScheme reports whether name is one of the supported color schemes.
func IsScheme(name string) bool {
	for _, s := range Schemes {
		if s == name {
			return true
		}
	}
	return false
}
