package content

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates the store's read cache when content files change on
// disk, so documents edited outside the API (deploys, manual fixes) are
// picked up without a restart. Events are debounced because editors and sync
// tools emit bursts of writes per save.
type Watcher struct {
	store    *Store
	logger   *slog.Logger
	debounce time.Duration

	fsw *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]struct{}
	timer     *time.Timer

	wg   sync.WaitGroup
	done chan struct{}
}

// NewWatcher creates a watcher over the store's root and all existing
// subdirectories.
func NewWatcher(store *Store, logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		store:    store,
		logger:   logger,
		debounce: debounce,
		fsw:      fsw,
		pending:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}

	err = filepath.WalkDir(store.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Start launches the event loop. It returns immediately; call Stop to shut
// the watcher down.
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.loop(ctx)
}

// Stop terminates the event loop and closes the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("content watcher error", slog.Any("err", err))
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	base := filepath.Base(ev.Name)
	// ignore our own temp files
	if strings.HasPrefix(base, ".tmp-") {
		return
	}

	// watch directories created after startup
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if err := w.fsw.Add(ev.Name); err != nil {
				w.logger.Error("watch new dir", slog.String("dir", ev.Name), slog.Any("err", err))
			}
			return
		}
	}

	if !strings.HasSuffix(base, ".json") {
		return
	}

	rel, err := filepath.Rel(w.store.Root(), ev.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	w.pendingMu.Lock()
	w.pending[rel] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
	} else {
		w.timer.Reset(w.debounce)
	}
	w.pendingMu.Unlock()
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	paths := w.pending
	w.pending = make(map[string]struct{})
	w.timer = nil
	w.pendingMu.Unlock()

	for rel := range paths {
		w.store.Invalidate(rel)
		w.logger.Info("content changed on disk, cache invalidated", slog.String("path", rel))
	}
}
