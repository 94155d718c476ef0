package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New("")

	entries, categories := s.StoreStats()
	assert.Equal(t, 0, entries)
	assert.Equal(t, 1, categories, "default category is always present")
	assert.True(t, s.ShortcutsStatus())
	assert.True(t, s.AnimationStatus())
	assert.False(t, s.HasActiveOverlay())
}

func TestOverlayLedger(t *testing.T) {
	s := New("")

	s.AddActiveOverlay("hide-sidebar-sub-menu")
	s.AddActiveOverlay("hide-sidebar-sub-menu")
	s.AddActiveOverlay("other")
	assert.Equal(t, []string{"hide-sidebar-sub-menu", "other"}, s.ActiveOverlays())

	s.RemoveActiveOverlay("hide-sidebar-sub-menu")
	assert.Equal(t, []string{"other"}, s.ActiveOverlays())

	s.RemoveActiveOverlay("missing")
	s.RemoveActiveOverlay("other")
	assert.False(t, s.HasActiveOverlay())
}

func TestAddEntry_AssignsIDAndDefaultCategory(t *testing.T) {
	s := New("")

	e := s.AddEntry(Entry{Title: "standup", Category: "nope"})
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, DefaultCategory, e.Category)

	require.True(t, s.AddCategory(Category{Name: "work"}))
	assert.False(t, s.AddCategory(Category{Name: "work"}))
	e = s.AddEntry(Entry{ID: "fixed", Title: "review", Category: "work"})
	assert.Equal(t, "fixed", e.ID)
	assert.Equal(t, "work", e.Category)

	entries, categories := s.StoreStats()
	assert.Equal(t, 2, entries)
	assert.Equal(t, 2, categories)
}

func TestPreferencesPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	s := New(path)

	s.SetShortcutsStatus(false)
	s.SetAnimationStatus(false)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.ShortcutsStatus())
	assert.False(t, reopened.AnimationStatus())
}

func TestOpen_MissingFileKeepsDefaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	_, categories := s.StoreStats()
	assert.Equal(t, 1, categories)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestReplace_NormalizesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	s := New(path)

	err := s.Replace(Data{
		Entries: []Entry{
			{Title: "a", Category: "home"},
			{Title: "b", Category: "ghost"},
		},
		Categories: []Category{{Name: "home"}, {Name: "home"}},
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Categories, 2)
	assert.Equal(t, DefaultCategory, snap.Categories[0].Name)
	assert.Equal(t, "home", snap.Entries[0].Category)
	assert.Equal(t, DefaultCategory, snap.Entries[1].Category)
	assert.NotEmpty(t, snap.Entries[0].ID)
	assert.False(t, s.LastImport().IsZero())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Data
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Len(t, onDisk.Entries, 2)
}

func TestReload_IgnoresOwnWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	s := New(path)
	s.AddEntry(Entry{Title: "mine"})

	changed, err := s.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	external := NewData()
	external.Entries = append(external.Entries, Entry{ID: "x", Title: "a"}, Entry{ID: "y", Title: "b"})
	raw, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	changed, err = s.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	entries, _ := s.StoreStats()
	assert.Equal(t, 2, entries)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := New("")
	s.AddEntry(Entry{Title: "one"})

	snap := s.Snapshot()
	snap.Entries[0].Title = "changed"

	assert.Equal(t, "one", s.Entries()[0].Title)
}
