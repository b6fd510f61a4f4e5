package companion

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"garden-planner-backend/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change before reloading.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a Store when its dataset file changes on disk.
type Watcher struct {
	store    *Store
	target   string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      *logger.Logger

	// OnReload, if set, is called after every reload attempt.
	OnReload func(LoadStats, error)
}

// NewWatcher watches the directory holding path. Editors often replace files
// by rename, so the directory is watched rather than the file itself.
func NewWatcher(store *Store, path string, debounce time.Duration) (*Watcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	return &Watcher{
		store:    store,
		target:   target,
		debounce: debounce,
		watcher:  fw,
		log:      logger.New().WithField("dataset", target),
	}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("dataset watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	stats, err := w.store.Reload(ctx)
	if err != nil {
		w.log.WithError(err).Error("dataset reload failed, keeping previous snapshot")
	} else {
		w.log.WithFields(map[string]interface{}{
			"edges":   stats.Edges,
			"skipped": stats.Skipped,
			"plants":  stats.Plants,
		}).Info("dataset reloaded")
	}
	if w.OnReload != nil {
		w.OnReload(stats, err)
	}
}
