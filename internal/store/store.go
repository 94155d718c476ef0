package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"calendar-tui/internal/logging"
)

var storeLog = logging.ForComponent(logging.CompStore)

// Store holds calendar data, user preferences and the active-overlay ledger.
// Methods are safe for concurrent use: imports and the file watcher touch it
// from outside the UI loop.
type Store struct {
	mu   sync.RWMutex
	path string
	data Data

	overlays []string

	syncedModTime time.Time
	lastImport    time.Time
}

// New creates an in-memory store. An empty path disables persistence.
func New(path string) *Store {
	return &Store{path: path, data: NewData()}
}

// Open creates a store backed by path and loads it if the file exists.
func Open(path string) (*Store, error) {
	s := New(path)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Path returns the backing file, if any.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory data with the file contents.
// A missing file leaves the defaults in place.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() error {
	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	d := NewData() // отсутствующие preferences остаются включенными
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	d.Normalize()
	s.data = d

	if info, err := os.Stat(s.path); err == nil {
		s.syncedModTime = info.ModTime()
	}
	return nil
}

// Reload re-reads the file when it was modified by someone else.
// It reports whether the in-memory data changed.
func (s *Store) Reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return false, nil
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", s.path, err)
	}
	if info.ModTime().Equal(s.syncedModTime) {
		return false, nil
	}
	if err := s.loadLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the document atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	if info, err := os.Stat(s.path); err == nil {
		s.syncedModTime = info.ModTime()
	}
	return nil
}

// persistLocked saves and logs on failure; preference setters have no error path.
func (s *Store) persistLocked(what string) {
	if err := s.saveLocked(); err != nil {
		storeLog.Error("persist_failed", slog.String("what", what), slog.String("error", err.Error()))
	}
}

// StoreStats returns the number of entries and categories.
// The default category is included in the category count.
func (s *Store) StoreStats() (entries, categories int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Entries), len(s.data.Categories)
}

// AllData returns a copy of the whole document.
func (s *Store) AllData() any {
	return s.Snapshot()
}

// Snapshot returns a typed copy of the whole document.
func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

// Replace swaps in a new document and persists it.
func (s *Store) Replace(d Data) error {
	d = d.clone()
	d.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
	s.lastImport = time.Now()
	return s.saveLocked()
}

// LastImport reports when Replace last succeeded in this process.
func (s *Store) LastImport() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastImport
}

// AddEntry appends e, assigning an id when missing, and persists.
func (s *Store) AddEntry(e Entry) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCategoryLocked(e.Category) {
		e.Category = DefaultCategory
	}
	s.data.Entries = append(s.data.Entries, e)
	s.persistLocked("entry")
	return e
}

// AddCategory adds c unless a category with the same name exists.
func (s *Store) AddCategory(c Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Name == "" || s.hasCategoryLocked(c.Name) {
		return false
	}
	s.data.Categories = append(s.data.Categories, c)
	s.persistLocked("category")
	return true
}

func (s *Store) hasCategoryLocked(name string) bool {
	for _, c := range s.data.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Entries returns a copy of all entries.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry(nil), s.data.Entries...)
}

// AddActiveOverlay registers token; duplicates are ignored.
func (s *Store) AddActiveOverlay(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.overlays {
		if t == token {
			return
		}
	}
	s.overlays = append(s.overlays, token)
}

// RemoveActiveOverlay deregisters token.
func (s *Store) RemoveActiveOverlay(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.overlays {
		if t == token {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			return
		}
	}
}

// HasActiveOverlay reports whether any overlay is registered.
func (s *Store) HasActiveOverlay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.overlays) > 0
}

// ActiveOverlays lists registered tokens in registration order.
func (s *Store) ActiveOverlays() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.overlays...)
}

// ShortcutsStatus reports whether keyboard shortcuts are enabled.
func (s *Store) ShortcutsStatus() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Preferences.ShortcutsEnabled
}

// SetShortcutsStatus persists the keyboard-shortcut preference.
func (s *Store) SetShortcutsStatus(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Preferences.ShortcutsEnabled = enabled
	s.persistLocked("shortcuts")
}

// AnimationStatus reports whether UI animations are enabled.
func (s *Store) AnimationStatus() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Preferences.AnimationsEnabled
}

// SetAnimationStatus persists the animation preference.
func (s *Store) SetAnimationStatus(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Preferences.AnimationsEnabled = enabled
	s.persistLocked("animations")
}
