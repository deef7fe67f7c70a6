// Package watch reloads the served site when its configuration file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	Recorder metrics.Recorder
	// Snapshot is the hash of the configuration already held by current.
	Snapshot string
}

// Watcher monitors a configuration file and swaps a freshly built site into
// current after each change. A file that fails to load leaves the previous
// site in place.
type Watcher struct {
	configPath string
	current    *site.Current
	recorder   metrics.Recorder
	debounce   time.Duration

	fsw      *fsnotify.Watcher
	reloadCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu       sync.Mutex // serializes reloads
	snapshot string
}

// New creates a watcher for configPath. Call Start to begin watching.
func New(configPath string, current *site.Current, opts Options) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	return &Watcher{
		configPath: absPath,
		current:    current,
		recorder:   opts.Recorder,
		debounce:   opts.Debounce,
		fsw:        fsw,
		reloadCh:   make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
		snapshot:   opts.Snapshot,
	}, nil
}

// Start watches the directory holding the file, which survives editors that
// replace the file by rename.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.configPath)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}
	slog.Info("Starting configuration watcher", logfields.File(w.configPath))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends both loops and closes the file watcher. It is safe to call more
// than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.fsw.Close()
		w.wg.Wait()
		slog.Info("Stopped configuration watcher")
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.configPath)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				w.trigger()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed; keeping current site", logfields.File(event.Name))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadCh <- struct{}{}:
	default:
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-w.reloadCh:
			timer.Reset(w.debounce)
		case <-timer.C:
			if _, err := w.Reload(ctx); err != nil {
				slog.Error("Failed to reload configuration", logfields.Error(err))
			}
		}
	}
}

// Reload loads the file now. An unchanged configuration keeps the current
// site; an invalid one keeps it too and returns the load error.
func (w *Watcher) Reload(ctx context.Context) (metrics.ReloadResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return metrics.ReloadFailed, err
	}

	s, cfg, err := config.LoadSite(w.configPath)
	if err != nil {
		w.recorder.IncConfigReload(metrics.ReloadFailed)
		return metrics.ReloadFailed, err
	}

	snap := cfg.Snapshot()
	if snap != "" && snap == w.snapshot {
		slog.Debug("Configuration unchanged", logfields.File(w.configPath))
		w.recorder.IncConfigReload(metrics.ReloadUnchanged)
		return metrics.ReloadUnchanged, nil
	}

	w.current.Store(s)
	w.snapshot = snap
	w.recorder.IncConfigReload(metrics.ReloadSuccess)
	slog.Info("Configuration reloaded",
		logfields.File(w.configPath),
		logfields.Count(s.Sidebar.Len()))
	return metrics.ReloadSuccess, nil
}
