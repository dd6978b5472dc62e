// Package watch provides file watching for reformat-on-change runs.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/hashbang/shebangfmt/internal/filekind"
)

// Event represents a script file change.
type Event struct {
	// Path is the file that changed, as an absolute path.
	Path string

	// Op is the operation (write, create, etc.).
	Op fsnotify.Op
}

// Watcher watches script files and directories for changes.
//
// Files added explicitly are always reported. For watched directories, only
// changes to recognized script files are reported, and non-hidden
// subdirectories created after watching starts are watched as well.
type Watcher struct {
	mu sync.RWMutex

	// fsWatcher is the underlying file watcher.
	fsWatcher *fsnotify.Watcher

	// files is the set of explicitly watched files.
	files map[string]bool

	// dirs is the set of watched directories.
	dirs map[string]bool

	// Events channel receives file change notifications.
	Events chan Event

	// Errors channel receives watcher errors.
	Errors chan error

	// done signals the watcher to stop.
	done chan struct{}
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
		Events:    make(chan Event, 100),
		Errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}

	go w.run()

	return w, nil
}

// Add watches a file or directory. Directories are walked recursively with
// hidden directories skipped, and each subdirectory is watched.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return w.addFile(absPath)
	}

	return filepath.WalkDir(absPath, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != absPath {
			return filepath.SkipDir
		}
		return w.addDir(p)
	})
}

func (w *Watcher) addFile(absPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[absPath] {
		return nil
	}
	if err := w.fsWatcher.Add(absPath); err != nil {
		return fmt.Errorf("watching %s: %w", absPath, err)
	}
	w.files[absPath] = true
	return nil
}

func (w *Watcher) addDir(absPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dirs[absPath] {
		return nil
	}
	if err := w.fsWatcher.Add(absPath); err != nil {
		return fmt.Errorf("watching %s: %w", absPath, err)
	}
	w.dirs[absPath] = true
	return nil
}

// WatchedFiles returns the explicitly watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var files []string
	for f := range w.files {
		files = append(files, f)
	}
	return files
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// run processes filesystem events.
func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		}
	}
}

// handleEvent filters a file change event and forwards it on Events.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	absPath, _ := filepath.Abs(event.Name)

	w.mu.RLock()
	explicit := w.files[absPath]
	inDir := w.dirs[filepath.Dir(absPath)]
	w.mu.RUnlock()

	if !explicit && !inDir {
		return
	}

	// A directory created under a watched directory is watched too, so
	// scripts added inside it later are picked up.
	if !explicit && event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(absPath); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(absPath), ".") {
				if err := w.addDir(absPath); err != nil {
					w.Errors <- err
				}
			}
			return
		}
	}

	if !explicit && !filekind.IsScriptFile(filepath.Base(absPath)) {
		return
	}

	select {
	case w.Events <- Event{Path: absPath, Op: event.Op}:
	case <-w.done:
	}
}
