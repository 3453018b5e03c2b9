package filedialog

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/milk9111/filedialog/ecs"
)

// Each accepted request runs on its own goroutine: show the blocking native
// dialog, do the file I/O, then send exactly one completion back through the
// marker's channel. A dismissed dialog completes as a canceled event, never
// as an outcome. Load I/O errors after a chosen path are terminal for the
// request: logged and completed as canceled. Save I/O errors are data,
// delivered inside Saved.Result.

func (p *Plugin) loadFile(o PickerOptions, m Marker) {
	st := p.state(m, capLoad, "load")
	if st == nil {
		return
	}
	go func() {
		path, err := p.picker.PickFile(o)
		if err != nil {
			p.cancelLoad(st, m, err)
			return
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			log.Printf("filedialog: reading %s for marker %s: %v", path, m, err)
			st.complete(func(w *ecs.World) {
				ecs.Publish(w, st.loadCanceled, LoadCanceled{})
			})
			return
		}
		ev := Loaded{FileName: filepath.Base(path), Contents: contents}
		p.watchLoadedFile(st, path)
		st.complete(func(w *ecs.World) {
			ecs.Publish(w, st.loaded, ev)
		})
	}()
}

func (p *Plugin) loadMultipleFiles(o PickerOptions, m Marker) {
	st := p.state(m, capLoad, "load-multiple")
	if st == nil {
		return
	}
	go func() {
		paths, err := p.picker.PickFiles(o)
		if err != nil {
			p.cancelLoad(st, m, err)
			return
		}
		events := make([]Loaded, 0, len(paths))
		for _, path := range paths {
			contents, err := os.ReadFile(path)
			if err != nil {
				log.Printf("filedialog: reading %s for marker %s: %v", path, m, err)
				st.complete(func(w *ecs.World) {
					ecs.Publish(w, st.loadCanceled, LoadCanceled{})
				})
				return
			}
			events = append(events, Loaded{FileName: filepath.Base(path), Contents: contents})
			p.watchLoadedFile(st, path)
		}
		st.complete(func(w *ecs.World) {
			for _, ev := range events {
				ecs.Publish(w, st.loaded, ev)
			}
		})
	}()
}

func (p *Plugin) saveFile(o PickerOptions, m Marker, contents []byte) {
	st := p.state(m, capSave, "save")
	if st == nil {
		return
	}
	go func() {
		path, err := p.picker.SaveFile(o)
		if err != nil {
			if !errors.Is(err, ErrCanceled) {
				log.Printf("filedialog: save dialog for marker %s: %v", m, err)
			}
			st.complete(func(w *ecs.World) {
				ecs.Publish(w, st.saveCanceled, SaveCanceled{})
			})
			return
		}
		ev := Saved{
			FileName: filepath.Base(path),
			Result:   atomic.WriteFile(path, bytes.NewReader(contents)),
		}
		st.complete(func(w *ecs.World) {
			ecs.Publish(w, st.saved, ev)
		})
	}()
}

func (p *Plugin) pickFilePath(o PickerOptions, m Marker) {
	st := p.state(m, capPickFile, "pick-file")
	if st == nil {
		return
	}
	go func() {
		path, err := p.picker.PickFile(o)
		if err != nil {
			p.cancelPick(st, m, err)
			return
		}
		st.complete(func(w *ecs.World) {
			ecs.Publish(w, st.filePicked, FilePicked{Path: path})
		})
	}()
}

func (p *Plugin) pickMultipleFilePaths(o PickerOptions, m Marker) {
	st := p.state(m, capPickFile, "pick-multiple-files")
	if st == nil {
		return
	}
	go func() {
		paths, err := p.picker.PickFiles(o)
		if err != nil {
			p.cancelPick(st, m, err)
			return
		}
		st.complete(func(w *ecs.World) {
			for _, path := range paths {
				ecs.Publish(w, st.filePicked, FilePicked{Path: path})
			}
		})
	}()
}

func (p *Plugin) pickDirectoryPath(o PickerOptions, m Marker) {
	st := p.state(m, capPickDir, "pick-directory")
	if st == nil {
		return
	}
	go func() {
		path, err := p.picker.PickFolder(o)
		if err != nil {
			p.cancelPick(st, m, err)
			return
		}
		st.complete(func(w *ecs.World) {
			ecs.Publish(w, st.dirPicked, DirectoryPicked{Path: path})
		})
	}()
}

func (p *Plugin) pickMultipleDirectoryPaths(o PickerOptions, m Marker) {
	st := p.state(m, capPickDir, "pick-multiple-directories")
	if st == nil {
		return
	}
	go func() {
		paths, err := p.picker.PickFolders(o)
		if err != nil {
			p.cancelPick(st, m, err)
			return
		}
		st.complete(func(w *ecs.World) {
			for _, path := range paths {
				ecs.Publish(w, st.dirPicked, DirectoryPicked{Path: path})
			}
		})
	}()
}

func (p *Plugin) cancelLoad(st *markerState, m Marker, err error) {
	if !errors.Is(err, ErrCanceled) {
		log.Printf("filedialog: load dialog for marker %s: %v", m, err)
	}
	st.complete(func(w *ecs.World) {
		ecs.Publish(w, st.loadCanceled, LoadCanceled{})
	})
}

func (p *Plugin) cancelPick(st *markerState, m Marker, err error) {
	if !errors.Is(err, ErrCanceled) {
		log.Printf("filedialog: pick dialog for marker %s: %v", m, err)
	}
	st.complete(func(w *ecs.World) {
		ecs.Publish(w, st.pickCanceled, PickCanceled{})
	})
}
