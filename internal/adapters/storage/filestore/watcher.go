package filestore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of file events into one invalidation.
const DefaultDebounce = 250 * time.Millisecond

// Watcher invalidates a Store when its data file or any asset changes.
type Watcher struct {
	store    *Store
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	dataFile  string
	assetsDir string

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts watching the store's data file and asset tree. Call Close
// to stop.
func (s *Store) Watch(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		store:     s,
		fsw:       fsw,
		debounce:  debounce,
		logger:    s.logger.With(slog.String("component", "catalog-watcher")),
		dataFile:  filepath.Clean(s.cfg.DataFile),
		assetsDir: filepath.Clean(s.cfg.AssetsDir),
		done:      make(chan struct{}),
	}

	// Editors replace files by rename, so the directory is watched
	// rather than the file itself.
	if err := fsw.Add(filepath.Dir(w.dataFile)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.dataFile), err)
	}

	w.addAssetDirs()

	w.wg.Add(1)

	go w.loop()

	w.logger.Info("watching catalog", slog.String("data_file", w.dataFile), slog.String("assets_dir", w.assetsDir))

	return w, nil
}

// addAssetDirs watches the asset root and every slug directory below it.
// Failures are logged and skipped.
func (w *Watcher) addAssetDirs() {
	if err := w.fsw.Add(w.assetsDir); err != nil {
		w.logger.Warn("asset directory not watched", slog.String("path", w.assetsDir), slog.String("error", err.Error()))
		return
	}

	entries, err := os.ReadDir(w.assetsDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			w.addDir(filepath.Join(w.assetsDir, entry.Name()))
		}
	}
}

func (w *Watcher) addDir(path string) {
	if err := w.fsw.Add(path); err != nil {
		w.logger.Warn("asset directory not watched", slog.String("path", path), slog.String("error", err.Error()))
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			w.logger.Error("file watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Clean(event.Name)

	switch {
	case name == w.dataFile:
	case w.underAssets(name):
		if event.Has(fsnotify.Create) && filepath.Dir(name) == w.assetsDir {
			if info, err := os.Stat(name); err == nil && info.IsDir() {
				w.addDir(name)
			}
		}
	default:
		return
	}

	w.logger.Debug("catalog file event", slog.String("op", event.Op.String()), slog.String("path", name))
	w.schedule()
}

func (w *Watcher) underAssets(name string) bool {
	return strings.HasPrefix(name, w.assetsDir+string(filepath.Separator))
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()

	if stopped {
		return
	}

	w.store.Invalidate()
	w.logger.Info("catalog changed on disk")

	if w.store.cfg.OnChange != nil {
		w.store.cfg.OnChange()
	}
}

// Close stops the watcher and waits for its goroutine. It is idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}

	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()

	if err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		return err
	}

	return nil
}
