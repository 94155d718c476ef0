package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/app"
	"calendar-tui/internal/config"
	"calendar-tui/internal/fs"
	"calendar-tui/internal/logging"
	"calendar-tui/internal/store"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
	}

	logging.Init(cfg.Logging)
	defer logging.Shutdown()
	logger := logging.ForComponent(logging.CompApp)

	st, err := store.Open(cfg.Data.File)
	if err != nil {
		logger.Error("store_open_failed", slog.String("path", cfg.Data.File), slog.String("error", err.Error()))
		log.Fatalf("Failed to open calendar %s: %v", cfg.Data.File, err)
	}

	// Создаем контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обрабатываем сигналы для graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	if err := os.MkdirAll(filepath.Dir(cfg.Data.File), 0o755); err != nil {
		logger.Warn("data_dir_failed", slog.String("error", err.Error()))
	}

	opts := app.Options{}
	if cfg.Data.WatchFile {
		watcher, err := fs.NewFileWatcher(ctx, cfg.Data.File)
		if err != nil {
			logger.Warn("watcher_disabled", slog.String("error", err.Error()))
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	// Создаем и запускаем приложение
	application := app.New(cfg, st, opts)

	program := tea.NewProgram(
		application,
		tea.WithAltScreen(),       // Используем альтернативный экран
		tea.WithMouseCellMotion(), // Поддержка мыши
	)

	// Запускаем в отдельной горутине для обработки контекста
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	logger.Info("started", slog.String("data", cfg.Data.File), slog.String("theme", cfg.Theme))
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
