package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

type recordingRecorder struct {
	metrics.NoopRecorder
	mu      sync.Mutex
	reloads []metrics.ReloadResult
}

func (r *recordingRecorder) IncConfigReload(result metrics.ReloadResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads = append(r.reloads, result)
}

func (r *recordingRecorder) results() []metrics.ReloadResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]metrics.ReloadResult(nil), r.reloads...)
}

func setup(t *testing.T, debounce time.Duration) (string, *site.Current, *Watcher, *recordingRecorder) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.Init(path, false))

	s, cfg, err := config.LoadSite(path)
	require.NoError(t, err)
	current := site.NewCurrent(s)
	rec := &recordingRecorder{}

	w, err := New(path, current, Options{Debounce: debounce, Recorder: rec, Snapshot: cfg.Snapshot()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return path, current, w, rec
}

func rewrite(t *testing.T, path, old, replacement string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), old)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(data), old, replacement, 1)), 0o644))
}

func TestReload(t *testing.T) {
	path, current, w, rec := setup(t, time.Hour)
	before := current.Load()

	result, err := w.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, metrics.ReloadUnchanged, result)
	assert.Same(t, before, current.Load())

	rewrite(t, path, "title: My Project", "title: Renamed")
	result, err = w.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, metrics.ReloadSuccess, result)
	assert.Equal(t, "Renamed", current.Load().Title)
	assert.Equal(t, "My Project", before.Title, "old snapshot must not change")

	rewrite(t, path, "prefix: /\n", "prefix: /other/\n")
	result, err = w.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, metrics.ReloadFailed, result)
	assert.Equal(t, "Renamed", current.Load().Title)

	assert.Equal(t, []metrics.ReloadResult{
		metrics.ReloadUnchanged, metrics.ReloadSuccess, metrics.ReloadFailed,
	}, rec.results())
}

func TestReloadCanceled(t *testing.T) {
	_, _, w, rec := setup(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := w.Reload(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, metrics.ReloadFailed, result)
	assert.Empty(t, rec.results())
}

func TestWatcherPicksUpWrites(t *testing.T) {
	path, current, w, rec := setup(t, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	rewrite(t, path, "title: My Project", "title: Watched")

	assert.Eventually(t, func() bool {
		return current.Load().Title == "Watched"
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, rec.results(), metrics.ReloadSuccess)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path, current, w, rec := setup(t, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	other := filepath.Join(filepath.Dir(path), "notes.md")
	require.NoError(t, os.WriteFile(other, []byte("# notes\n"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, rec.results())
	assert.Equal(t, "My Project", current.Load().Title)
}
