package transfer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-tui/internal/store"
)

func TestExportName(t *testing.T) {
	assert.Equal(t, "ENT_5_CAT_3_2026-10-19_08-30-00", ExportName(5, 3, "2026-10-19_08-30-00"))
	assert.Equal(t, "ENT_0_CAT_1_x", ExportName(0, 1, "x"))
}

func TestTimestampAt(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 8, 30, 5, 0, time.UTC)
	gen := TimestampAt("%Y-%m-%d_%H-%M-%S", func() time.Time { return fixed })
	assert.Equal(t, "2026-10-19_08-30-05", gen())
}

func TestEncode_Indented(t *testing.T) {
	raw, err := Encode(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(raw))
}

func TestDirSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := DirSaver{Dir: dir}.Save("ENT_0_CAT_1_x.json", []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ENT_0_CAT_1_x.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"entries":[{"title":"a"}],"categories":[{"name":"work"}]}`, false},
		{"missing categories", `{"entries":[]}`, true},
		{"missing entries", `{"categories":[]}`, true},
		{"not json", `nope`, true},
		{"array", `[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Decode([]byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			require.NoError(t, err)
			assert.Len(t, data.Entries, 1)
			assert.NotEmpty(t, data.Entries[0].ID)
			assert.Len(t, data.Categories, 2, "default category is added")
			assert.True(t, data.Preferences.ShortcutsEnabled, "absent preferences keep defaults")
		})
	}
}

type fakeReplacer struct {
	got store.Data
	err error
}

func (f *fakeReplacer) Replace(d store.Data) error {
	f.got = d
	return f.err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestFileImporter_Success(t *testing.T) {
	path := writeFile(t, `{"entries":[{"title":"a"},{"title":"b"}],"categories":[]}`)
	target := &fakeReplacer{}

	data, err := FileImporter{Path: path}.Import(context.Background(), target)
	require.NoError(t, err)
	assert.Len(t, data.Entries, 2)
	assert.Len(t, target.got.Entries, 2)
}

func TestFileImporter_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := FileImporter{Path: filepath.Join(t.TempDir(), "none.json")}.Import(context.Background(), &fakeReplacer{})
		assert.Error(t, err)
	})
	t.Run("invalid document leaves target untouched", func(t *testing.T) {
		target := &fakeReplacer{}
		_, err := FileImporter{Path: writeFile(t, `{"foo":1}`)}.Import(context.Background(), target)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Nil(t, target.got.Entries)
	})
	t.Run("replace error is wrapped", func(t *testing.T) {
		boom := errors.New("disk full")
		_, err := FileImporter{Path: writeFile(t, `{"entries":[],"categories":[]}`)}.Import(context.Background(), &fakeReplacer{err: boom})
		assert.ErrorIs(t, err, boom)
	})
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := FileImporter{Path: writeFile(t, `{"entries":[],"categories":[]}`)}.Import(ctx, &fakeReplacer{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecentExports(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"ENT_1_CAT_1_2024-01-01_00-00-00.json",
		"ENT_2_CAT_1_2024-01-02_00-00-00.json",
		"ENT_3_CAT_2_2024-01-03_00-00-00.json",
		"calendar.json",
		"ENT_x_CAT_1_bad.json",
	}
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, ts, ts))
	}

	files, err := RecentExports(dir, 2)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, names[2], files[0].Name)
	assert.Equal(t, names[1], files[1].Name)

	all, err := RecentExports(dir, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.True(t, IsExportName(ExportName(4, 2, "ts")+Extension))
	assert.False(t, IsExportName("ENT_4_CAT_2_ts.txt"))
}
