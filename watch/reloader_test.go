package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/labelkit/abbrev"
)

const tableV1 = `
abbreviations: {}
directions: {}
classifications:
  boulevard: Blvd
`

const tableV2 = `
abbreviations: {}
directions: {}
classifications:
  boulevard: Bd
`

func writeTable(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func lookup(src abbrev.Source) string {
	v, _ := src.Table().Lookup(abbrev.Classification, "boulevard")
	return v
}

func TestNewReloader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	writeTable(t, path, tableV1)

	r, err := NewReloader(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.Path())
	assert.Equal(t, "Blvd", lookup(r))
}

func TestNewReloader_MissingFile(t *testing.T) {
	_, err := NewReloader(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReloader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	writeTable(t, path, tableV1)

	var reloads atomic.Int32
	r, err := NewReloader(path, WithOnReload(func(*abbrev.Table) { reloads.Add(1) }))
	require.NoError(t, err)

	before := r.Table()
	writeTable(t, path, tableV2)
	require.NoError(t, r.Reload())
	assert.Equal(t, "Bd", lookup(r))
	assert.Equal(t, int32(1), reloads.Load())

	// Snapshots already handed out are unaffected.
	v, _ := before.Lookup(abbrev.Classification, "boulevard")
	assert.Equal(t, "Blvd", v)
}

func TestReloader_ReloadKeepsTableOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	writeTable(t, path, tableV1)

	r, err := NewReloader(path)
	require.NoError(t, err)

	writeTable(t, path, "abbreviations: {}\n")
	assert.ErrorIs(t, r.Reload(), abbrev.ErrMissingCategory)
	assert.Equal(t, "Blvd", lookup(r))
}

func TestReloader_RunWatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	writeTable(t, path, tableV1)

	r, err := NewReloader(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()

	ab := abbrev.New(r)
	require.Eventually(t, func() bool {
		// Rewrite until the watcher is up and sees a change.
		writeTable(t, path, tableV2)
		return ab.Abbreviate("Main Boulevard", abbrev.AllCategories) == "Main Bd"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestReloader_Poll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	writeTable(t, path, tableV1)

	r, err := NewReloader(path, WithPollInterval(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.poll(ctx)

	writeTable(t, path, tableV2)
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	assert.Eventually(t, func() bool {
		return lookup(r) == "Bd"
	}, 2*time.Second, 10*time.Millisecond)
}
