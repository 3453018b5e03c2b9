package filedialog

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/milk9111/filedialog/ecs"
)

// debounceWindow collapses the bursts of write events editors produce when
// rewriting a file.
const debounceWindow = 100 * time.Millisecond

// watchSet re-reads files loaded under a WithChangeWatch marker whenever
// they change on disk and completes a Changed event through the owning
// marker's channel. Directories are watched rather than the files
// themselves so atomic save-and-rename editors don't drop the watch.
type watchSet struct {
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	dirs    map[string]struct{}
	targets map[string]*markerState

	closeCh chan struct{}
	once    sync.Once
}

func newWatchSet() (*watchSet, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ws := &watchSet{
		watcher: fw,
		dirs:    make(map[string]struct{}),
		targets: make(map[string]*markerState),
		closeCh: make(chan struct{}),
	}
	go ws.run()
	return ws, nil
}

// watchLoadedFile registers a freshly loaded path with the watch set. Called
// from runner goroutines; the watch set is created lazily on first use.
func (p *Plugin) watchLoadedFile(st *markerState, path string) {
	if st.caps&capWatch == 0 {
		return
	}
	p.watchMu.Lock()
	if p.watch == nil {
		ws, err := newWatchSet()
		if err != nil {
			p.watchMu.Unlock()
			log.Printf("filedialog: change watch unavailable: %v", err)
			return
		}
		p.watch = ws
	}
	ws := p.watch
	p.watchMu.Unlock()

	if err := ws.add(path, st); err != nil {
		log.Printf("filedialog: watching %s for marker %s: %v", path, st.marker, err)
	}
}

func (ws *watchSet) add(path string, st *markerState) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.targets[abs] = st
	if _, ok := ws.dirs[dir]; ok {
		return nil
	}
	if err := ws.watcher.Add(dir); err != nil {
		return err
	}
	ws.dirs[dir] = struct{}{}
	return nil
}

func (ws *watchSet) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-ws.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			ws.mu.Lock()
			st := ws.targets[abs]
			ws.mu.Unlock()
			if st == nil {
				continue
			}
			now := time.Now()
			if t, ok := last[abs]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[abs] = now
			ws.emit(st, abs)
		case err, ok := <-ws.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("filedialog: change watch: %v", err)
		case <-ws.closeCh:
			return
		}
	}
}

func (ws *watchSet) emit(st *markerState, path string) {
	contents, err := os.ReadFile(path)
	if err != nil {
		log.Printf("filedialog: re-reading %s for marker %s: %v", path, st.marker, err)
		return
	}
	ev := Changed{FileName: filepath.Base(path), Contents: contents}
	st.complete(func(w *ecs.World) {
		ecs.Publish(w, st.changed, ev)
	})
}

func (ws *watchSet) close() error {
	var err error
	ws.once.Do(func() {
		close(ws.closeCh)
		err = ws.watcher.Close()
	})
	return err
}
