// Package watch keeps an abbreviation table in sync with its file.
//
// A Reloader is an abbrev.Source. Every reload builds a complete new table
// and publishes it atomically; tables themselves are never mutated, so a
// caller that already holds one keeps a consistent view.
//
//	r, err := watch.NewReloader("abbreviations.yaml")
//	if err != nil {
//	    log.Fatal(err) // the table is required
//	}
//	go r.Run(ctx)
//	ab := abbrev.New(r)
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/labelkit/abbrev"
)

// DefaultPollInterval is how often the file is checked when fsnotify is not
// available.
const DefaultPollInterval = 2 * time.Second

// Option configures a Reloader.
type Option func(*Reloader)

// WithPollInterval sets the polling fallback interval.
func WithPollInterval(d time.Duration) Option {
	return func(r *Reloader) {
		if d > 0 {
			r.pollInterval = d
		}
	}
}

// WithLogger sets the logger for reload events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reloader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOnReload registers a callback invoked after each successful reload.
func WithOnReload(fn func(*abbrev.Table)) Option {
	return func(r *Reloader) {
		r.onReload = fn
	}
}

// Reloader serves the most recently loaded table from a file.
type Reloader struct {
	path         string
	table        atomic.Pointer[abbrev.Table]
	modTime      time.Time
	pollInterval time.Duration
	logger       *slog.Logger
	onReload     func(*abbrev.Table)
}

// NewReloader loads path and returns a reloader serving it. The initial load
// must succeed.
func NewReloader(path string, opts ...Option) (*Reloader, error) {
	r := &Reloader{
		path:         path,
		pollInterval: DefaultPollInterval,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	t, err := abbrev.LoadFile(path)
	if err != nil {
		return nil, err
	}
	r.table.Store(t)
	if info, err := os.Stat(path); err == nil {
		r.modTime = info.ModTime()
	}

	return r, nil
}

// Path returns the watched file path.
func (r *Reloader) Path() string {
	return r.path
}

// Table returns the current table.
func (r *Reloader) Table() *abbrev.Table {
	return r.table.Load()
}

// Reload loads the file now. On failure the current table is kept.
func (r *Reloader) Reload() error {
	t, err := abbrev.LoadFile(r.path)
	if err != nil {
		r.logger.Warn("abbreviation table reload failed, keeping previous table",
			slog.String("path", r.path),
			slog.Any("error", err))
		return err
	}

	r.table.Store(t)
	r.logger.Debug("abbreviation table reloaded", slog.String("path", r.path))
	if r.onReload != nil {
		r.onReload(t)
	}
	return nil
}

// Run watches the file until ctx is cancelled. It uses fsnotify and falls
// back to polling the modification time when a watcher cannot be set up.
func (r *Reloader) Run(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.logger.Debug("fsnotify unavailable, polling", slog.Any("error", err))
		r.poll(ctx)
		return
	}
	defer watcher.Close()

	// Watch the directory; editors often replace files rather than write them.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		r.logger.Debug("cannot watch table directory, polling", slog.Any("error", err))
		r.poll(ctx)
		return
	}

	r.watch(ctx, watcher)
}

func (r *Reloader) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(r.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			_ = r.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("table watcher error", slog.Any("error", err))
		}
	}
}

func (r *Reloader) poll(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(r.path)
			if err != nil || !info.ModTime().After(r.modTime) {
				continue
			}
			r.modTime = info.ModTime()
			_ = r.Reload()
		}
	}
}
