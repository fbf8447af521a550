package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of fsnotify events an editor save
// produces into a single reload.
const watchDebounce = 200 * time.Millisecond

// Watcher reloads the library when its YAML files change on disk.
type Watcher struct {
	dir      string
	onReload func(*Library)
	log      *slog.Logger
}

// NewWatcher creates a watcher for the library at dir. onReload runs on the
// watcher goroutine with each successfully reloaded library; the callback
// must hand the value over to the UI thread itself (a channel send or an
// atomic pointer swap).
func NewWatcher(dir string, onReload func(*Library)) *Watcher {
	return &Watcher{
		dir:      dir,
		onReload: onReload,
		log:      slog.With("component", "content-watcher"),
	}
}

// Run watches until ctx is cancelled. Parse errors during reload are logged
// and skipped; the previously loaded library stays in use.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Info("watching library", "dir", w.dir)

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(ev) {
				continue
			}
			w.log.Debug("library file changed", "file", ev.Name, "op", ev.Op.String())
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(watchDebounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

// relevantEvent filters for YAML writes; chmod-only events and temp files
// from atomic editor saves are ignored.
func relevantEvent(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	ext := filepath.Ext(ev.Name)
	return ext == ".yaml" || ext == ".yml"
}

func (w *Watcher) reload() {
	lib, err := Load(w.dir)
	if err != nil {
		w.log.Warn("reload failed, keeping previous library", "err", err)
		return
	}
	w.log.Info("library reloaded", "items", len(lib.Items))
	if w.onReload != nil {
		w.onReload(lib)
	}
}
