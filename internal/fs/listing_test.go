package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles_NewestFirstAndFiltered(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"old.json", "new.json", "notes.txt", ".hidden.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, ts, ts))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	files, err := ListFiles(dir, func(name string) bool { return strings.HasSuffix(name, ".json") })
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "new.json", files[0].Name)
	assert.Equal(t, "old.json", files[1].Name)
	assert.Equal(t, int64(len("new.json")), files[0].Size)
	assert.Equal(t, filepath.Join(dir, "new.json"), files[0].Path)
}

func TestListFiles_MissingDir(t *testing.T) {
	files, err := ListFiles(filepath.Join(t.TempDir(), "nope"), nil)
	assert.NoError(t, err)
	assert.Empty(t, files)
}
