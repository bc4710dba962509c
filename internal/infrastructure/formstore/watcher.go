// Package formstore watches the form storage tree for changes.
package formstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/formbridge/internal/logging"
)

const (
	defaultDebounce = 300 * time.Millisecond
	mediaDir        = "media"
)

// Watcher calls onChange, debounced, whenever something under root is
// created, written, removed or renamed. fsnotify is not recursive, so every
// directory is registered and new ones are added as they appear. media
// directories are ignored.
type Watcher struct {
	root     string
	debounce time.Duration
	onChange func()
	fsw      *fsnotify.Watcher
}

// NewWatcher registers root and its subdirectories.
func NewWatcher(root string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("formstore: onChange cannot be nil")
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	w := &Watcher{root: root, debounce: debounce, onChange: onChange, fsw: fsw}
	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path != w.root {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == mediaDir {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run delivers change notifications until ctx is done. It closes the
// underlying watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	defer func() { _ = w.fsw.Close() }()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						log.Warn().Err(err).Str("path", event.Name).Msg("failed to watch new directory")
					}
				}
			}
			log.Debug().Str("op", event.Op.String()).Str("path", event.Name).Msg("form tree changed")
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("form tree watcher error")

		case <-timer.C:
			w.onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return true
	}
	for p := rel; p != "." && p != string(filepath.Separator); p = filepath.Dir(p) {
		if filepath.Base(p) == mediaDir {
			return false
		}
	}
	return true
}
