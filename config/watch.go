package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SettingsWatcher re-parses the settings file whenever it changes on disk.
// Parsed settings arrive on Updates; they must be applied on the game
// goroutine, never from the watcher itself.
type SettingsWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *Settings
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

const watchDebounce = 100 * time.Millisecond

// WatchSettings starts watching the directory that holds path.
func WatchSettings(path string) (*SettingsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	// Watch the directory so editors that replace the file are still seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	sw := &SettingsWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan *Settings, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher and closes its channels.
func (sw *SettingsWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.closeCh)
		err = sw.watcher.Close()
		<-sw.done
		close(sw.Updates)
		close(sw.Errors)
	})
	return err
}

func (sw *SettingsWatcher) run() {
	defer close(sw.done)

	// Reload only after the file has been quiet for watchDebounce so a
	// half-written file is never parsed.
	var timer *time.Timer
	var reload <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != sw.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			reload = timer.C
		case <-reload:
			reload = nil
			s, err := LoadSettings(sw.path)
			if err != nil {
				sw.sendError(err)
				continue
			}
			if s == nil {
				continue
			}
			select {
			case sw.Updates <- s:
			case <-sw.closeCh:
				return
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.sendError(err)
		case <-sw.closeCh:
			return
		}
	}
}

// sendError drops the error if the previous one has not been read yet.
func (sw *SettingsWatcher) sendError(err error) {
	select {
	case sw.Errors <- err:
	default:
	}
}
