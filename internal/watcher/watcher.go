// Package watcher re-reads a markdown file whenever it changes on disk.
// Events are debounced so editors that write in bursts trigger a single
// re-render with the final content.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last write event
// before reading the file.
const DefaultDebounce = 50 * time.Millisecond

// settleDelay gives the editor a moment to finish writing before the read.
const settleDelay = 10 * time.Millisecond

// Watcher watches a single file and invokes a callback with its content.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(content string)

	fsw  *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New prepares a watcher for the given file. A non-positive debounce uses
// the default.
func New(path string, debounce time.Duration, onChange func(string)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

// Start reads the file once, fires the callback with its content, and then
// begins watching for changes. The initial read failing is the only error
// this surfaces; later read failures are treated as transient and skipped.
func (w *Watcher) Start() error {
	content, err := os.ReadFile(w.path)
	if err != nil {
		return errors.WatchOpenFailed(w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WatchOpenFailed(w.path, err)
	}

	// Watch the directory rather than the file itself. Editors that save
	// via rename replace the inode, which would silently detach a watch
	// on the file.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return errors.WatchOpenFailed(w.path, err)
	}
	w.fsw = fsw

	w.onChange(string(content))

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	log := logger.ComponentLogger("watcher")
	base := filepath.Base(w.path)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("file event", "op", event.Op.String(), "path", event.Name)
			w.scheduleRead()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Debug("watch error", "error", err)
		}
	}
}

// scheduleRead arms the debounce timer, restarting it if already pending.
func (w *Watcher) scheduleRead() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.read)
}

func (w *Watcher) read() {
	time.Sleep(settleDelay)

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	content, err := os.ReadFile(w.path)
	if err != nil {
		// The file may be mid-rename. The next event will retry.
		logger.ComponentLogger("watcher").Debug("transient read failure", "path", w.path, "error", err)
		return
	}
	w.onChange(string(content))
}

// Stop halts watching and releases the underlying watcher. Safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	if w.fsw != nil {
		w.fsw.Close()
	}
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}
