package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadQuiet is how long the watcher waits after the last write event
// before reloading. Editors fire several events per save.
const reloadQuiet = 200 * time.Millisecond

// Watch reloads the config file whenever it changes and hands the result to
// onChange. It returns a stop function. The TUI uses this to apply theme
// and language edits to a running session; parse failures are logged and
// the previous configuration stays active.
func Watch(path string, logger *zap.Logger, onChange func(*Config)) (func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace the file, which drops a watch
	// registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	deb := newDebouncer(reloadQuiet)
	reload := func() {
		cfg, err := Load(path)
		if err != nil {
			logger.Warn("config reload failed", zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("path", path))
		onChange(cfg)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				deb.debounce(reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	// The stop function must survive being called twice: the TUI closes on
	// quit keys and again when the program unwinds.
	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			close(done)
			deb.cancel()
			watcher.Close()
		})
	}, nil
}
