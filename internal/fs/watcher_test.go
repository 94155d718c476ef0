package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_ReportsTargetOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "calendar.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))

	fw, err := NewFileWatcher(context.Background(), target)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(target, []byte(`{"entries":[]}`), 0644))

	select {
	case ev := <-fw.Changes():
		assert.Equal(t, target, filepath.Clean(ev.Path))
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for watched file")
	}
}

func TestFileWatcher_CloseIsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "calendar.json")
	fw, err := NewFileWatcher(context.Background(), target)
	require.NoError(t, err)

	assert.NoError(t, fw.Close())
	assert.NoError(t, fw.Close())
}

func TestFileWatcher_CloseClosesChanges(t *testing.T) {
	target := filepath.Join(t.TempDir(), "calendar.json")
	fw, err := NewFileWatcher(context.Background(), target)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-fw.Changes():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("changes channel still open after Close")
		}
	}
}

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want FileOperation
	}{
		{fsnotify.Create, FileCreated},
		{fsnotify.Write, FileModified},
		{fsnotify.Remove, FileDeleted},
		{fsnotify.Rename, FileRenamed},
		{fsnotify.Chmod, FileModified},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			ev := convertEvent(fsnotify.Event{Name: "x", Op: tt.op})
			assert.Equal(t, tt.want, ev.Operation)
		})
	}
	assert.Equal(t, "renamed", FileRenamed.String())
}
