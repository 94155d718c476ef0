package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileEntry describes a regular file found by ListFiles.
type FileEntry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// ListFiles returns the regular files of dir accepted by match, newest first.
// Hidden files are skipped. A missing directory yields an empty list.
func ListFiles(dir string, match func(name string) bool) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []FileEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if match != nil && !match(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // файл мог исчезнуть между ReadDir и Info
		}
		files = append(files, FileEntry{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Name > files[j].Name
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}
