// Package watch reloads page content when its file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/muv-academia/muv/pkg/content"
	muverrors "github.com/muv-academia/muv/pkg/errors"
	"github.com/muv-academia/muv/pkg/log"
)

// DefaultDelay is how long the watcher waits after the last change before
// reloading.
const DefaultDelay = 100 * time.Millisecond

// ContentWatcher monitors one content file via fsnotify and delivers each
// successfully parsed version.
type ContentWatcher struct {
	path   string
	delay  time.Duration
	logger zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// New returns a watcher for the content file at path.
func New(path string) *ContentWatcher {
	return &ContentWatcher{
		path:   path,
		delay:  DefaultDelay,
		logger: log.Component("watch"),
	}
}

// SetDelay changes the debounce delay. Call before Run.
func (w *ContentWatcher) SetDelay(d time.Duration) {
	if d > 0 {
		w.delay = d
	}
}

// Run watches the file's directory until ctx is done, sending reloaded
// pages on out. Files that fail to parse are reported and skipped.
func (w *ContentWatcher) Run(ctx context.Context, out chan<- *content.Page) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return muverrors.E("watch.Run", muverrors.KindContent, err)
	}
	defer watcher.Close()

	// Editors often replace the file by renaming, so watch the directory.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return &muverrors.Error{Op: "watch.Run", Kind: muverrors.KindContent, Path: dir, Err: err}
	}
	defer w.stop()

	name := filepath.Base(w.path)
	w.logger.Info().Str("path", w.path).Msg("watching content")
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload(ctx, out)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *ContentWatcher) debounceReload(ctx context.Context, out chan<- *content.Page) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		w.reload(ctx, out)
	})
}

func (w *ContentWatcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *ContentWatcher) reload(ctx context.Context, out chan<- *content.Page) {
	defer muverrors.Recover("watch.reload")
	page, err := content.Load(w.path)
	if err != nil {
		muverrors.ReportError("watch.reload", muverrors.KindContent, err)
		return
	}
	w.logger.Debug().Str("path", w.path).Msg("content changed")
	select {
	case out <- page:
	case <-ctx.Done():
	}
}
