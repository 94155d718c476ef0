package fs

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"calendar-tui/internal/logging"
)

var watchLog = logging.ForComponent(logging.CompWatch)

// FileWatcher следит за изменениями одного файла.
// Наблюдаем за каталогом: сохранение через rename заменяет inode файла.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	changes chan FileChangeEvent
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

// FileChangeEvent событие изменения файла
type FileChangeEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation тип операции с файлом
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
	FileRenamed
)

// NewFileWatcher начинает наблюдение за path.
func NewFileWatcher(ctx context.Context, path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	fw := &FileWatcher{
		watcher: watcher,
		target:  abs,
		changes: make(chan FileChangeEvent, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	go fw.watchLoop()

	return fw, nil
}

// Changes delivers coalesced change notifications for the watched file.
// The channel is closed once the watcher stops.
func (fw *FileWatcher) Changes() <-chan FileChangeEvent {
	return fw.changes
}

// Close закрывает наблюдатель
func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		fw.cancel()
		err = fw.watcher.Close()
	})
	return err
}

// watchLoop is the only sender on changes and closes it on exit.
func (fw *FileWatcher) watchLoop() {
	defer close(fw.changes)
	for {
		select {
		case <-fw.ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.target {
				continue
			}
			fw.publish(convertEvent(event))
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			watchLog.Warn("watch_error", slog.String("path", fw.target), slog.String("error", err.Error()))
		}
	}
}

// publish drops the event when the consumer has not drained the previous one;
// a single pending notification is enough to trigger a reload.
func (fw *FileWatcher) publish(ev FileChangeEvent) {
	select {
	case fw.changes <- ev:
	default:
	}
}

func convertEvent(event fsnotify.Event) FileChangeEvent {
	var operation FileOperation

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		operation = FileCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		operation = FileModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		operation = FileDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		operation = FileRenamed
	default:
		operation = FileModified
	}

	return FileChangeEvent{Path: event.Name, Operation: operation}
}

// String возвращает строковое представление операции
func (op FileOperation) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileModified:
		return "modified"
	case FileDeleted:
		return "deleted"
	case FileRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}
