package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/itchyny/timefmt-go"

	"calendar-tui/internal/fs"
)

// Extension is appended to every export file name.
const Extension = ".json"

// Timestamp returns a generator formatting the current time with a strftime layout.
func Timestamp(layout string) func() string {
	return TimestampAt(layout, time.Now)
}

// TimestampAt is Timestamp with an injectable clock.
func TimestampAt(layout string, now func() time.Time) func() string {
	return func() string {
		return timefmt.Format(now(), layout)
	}
}

// ExportName builds the file name for a full-data export, without extension.
func ExportName(entries, categories int, timestamp string) string {
	return fmt.Sprintf("ENT_%d_CAT_%d_%s", entries, categories, timestamp)
}

var exportNamePattern = regexp.MustCompile(`^ENT_\d+_CAT_\d+_.+\.json$`)

// IsExportName reports whether name looks like a file written by an export.
func IsExportName(name string) bool {
	return exportNamePattern.MatchString(name)
}

// RecentExports lists up to limit export files in dir, newest first.
// A limit of zero or less returns all of them.
func RecentExports(dir string, limit int) ([]fs.FileEntry, error) {
	files, err := fs.ListFiles(dir, IsExportName)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

// Encode serializes data as indented JSON.
func Encode(data any) ([]byte, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return raw, nil
}

// DirSaver writes exports into a directory.
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/name and returns the full path.
func (d DirSaver) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(d.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
