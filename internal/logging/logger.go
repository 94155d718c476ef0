package logging

import (
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"calendar-tui/internal/config"
)

// Component names used as the "component" attribute.
const (
	CompApp    = "app"
	CompPanel  = "panel"
	CompStore  = "store"
	CompWatch  = "watch"
	CompImport = "import"
	CompExport = "export"
)

var (
	globalLogger *slog.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	globalMu     sync.RWMutex
	rotator      *lumberjack.Logger
)

// Init installs the global logger described by cfg.
// An empty file path discards all output.
func Init(cfg config.LoggingConfig) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}

	if cfg.FilePath == "" {
		globalLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return
	}

	rotator = &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	globalLogger = slog.New(newHandler(rotator, cfg))
}

// InitWriter routes logs to w. Used by tests and by callers that already own a sink.
func InitWriter(w io.Writer, cfg config.LoggingConfig) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = slog.New(newHandler(w, cfg))
}

func newHandler(w io.Writer, cfg config.LoggingConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// ForComponent returns a logger tagged with the component name.
// The logger resolves the global sink lazily so it can be created at package init.
func ForComponent(name string) *slog.Logger {
	return slog.New(&componentHandler{component: name})
}

// Shutdown flushes and closes the rotating file, if any.
func Shutdown() {
	globalMu.Lock()
	defer globalMu.Unlock()
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
}
