package folio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 300 * time.Millisecond

// watchContent reloads the content cache shortly after any YAML file under
// dir changes. fsnotify is not recursive, so every directory is added and
// new ones are picked up as they appear.
func (a *App) watchContent(dir string) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := addDirs(w, dir); err != nil {
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			if err := a.reloadContent(); err != nil {
				a.Echo.Logger.Warnf("content reload: %v", err)
				return
			}
			a.Echo.Logger.Infof("content reloaded from %s", dir)
		})
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Create) && isDir(ev.Name) {
					if err := addDirs(w, ev.Name); err != nil {
						a.Echo.Logger.Warnf("watch %s: %v", ev.Name, err)
					}
					schedule()
					continue
				}
				if !isContentFile(ev.Name) {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
					schedule()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				a.Echo.Logger.Warnf("content watcher: %v", err)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			w.Close()
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		})
	}, nil
}

func addDirs(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
