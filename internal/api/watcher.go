package api

import (
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileChangeType indicates what type of change occurred.
type FileChangeType string

const (
	FileChangeCreated  FileChangeType = "created"
	FileChangeModified FileChangeType = "modified"
	FileChangeDeleted  FileChangeType = "deleted"
)

// FileChange represents a change to the watched palette file.
type FileChange struct {
	Type FileChangeType `json:"type"`
	Path string         `json:"path"`
}

// debounceDelay coalesces the burst of events a single save produces.
const debounceDelay = 100 * time.Millisecond

type watcherState int

const (
	watcherIdle watcherState = iota
	watcherRunning
	watcherStopped
)

// FileWatcher reports changes to one palette file. The parent directory is
// watched rather than the file, so editors that save by renaming a temp
// file over it are still seen. A watcher runs at most once.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	mu       sync.Mutex
	handlers []func(FileChange)
	state    watcherState
	done     chan struct{}
}

// NewFileWatcher creates a watcher for the palette file at path. The file
// need not exist yet.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{watcher: watcher, path: abs, done: make(chan struct{})}, nil
}

// OnChange registers fn to run, on the watcher goroutine, after each
// debounced change.
func (fw *FileWatcher) OnChange(fn func(FileChange)) {
	fw.mu.Lock()
	fw.handlers = append(fw.handlers, fn)
	fw.mu.Unlock()
}

// Start begins watching. Starting a running watcher is a no-op.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	switch fw.state {
	case watcherRunning:
		return nil
	case watcherStopped:
		return fmt.Errorf("file watcher cannot be restarted after stop")
	}

	dir := filepath.Dir(fw.path)
	if err := fw.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	fw.state = watcherRunning
	go fw.run()
	return nil
}

// Stop ends watching. A pending debounced change is dropped.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if fw.state != watcherRunning {
		fw.state = watcherStopped
		fw.mu.Unlock()
		return nil
	}
	fw.state = watcherStopped
	fw.mu.Unlock()

	close(fw.done)
	return fw.watcher.Close()
}

// run owns the debounce timer; only the latest change of a burst is
// delivered.
func (fw *FileWatcher) run() {
	var (
		timer  *time.Timer
		fire   <-chan time.Time
		latest FileChange
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			change, relevant := fw.classifyChange(event)
			if !relevant {
				continue
			}
			latest = change
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			fw.notify(latest)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) notify(change FileChange) {
	fw.mu.Lock()
	if fw.state != watcherRunning {
		fw.mu.Unlock()
		return
	}
	handlers := slices.Clone(fw.handlers)
	fw.mu.Unlock()

	for _, fn := range handlers {
		fn(change)
	}
}

// classifyChange reports whether event concerns the palette file and, if so,
// what happened to it. A rename away from the path counts as a delete.
func (fw *FileWatcher) classifyChange(event fsnotify.Event) (FileChange, bool) {
	if filepath.Clean(event.Name) != fw.path {
		return FileChange{}, false
	}

	var kind FileChangeType
	switch {
	case event.Has(fsnotify.Create):
		kind = FileChangeCreated
	case event.Has(fsnotify.Write):
		kind = FileChangeModified
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		kind = FileChangeDeleted
	default:
		return FileChange{}, false
	}
	return FileChange{Type: kind, Path: fw.path}, true
}
