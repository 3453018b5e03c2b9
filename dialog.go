package filedialog

import (
	"log"

	"github.com/milk9111/filedialog/ecs"
)

// Builder accumulates dialog options for one request. Create it with Dialog,
// chain option calls, and finish with exactly one terminal method. Terminal
// methods never block; the outcome arrives as an event on a later tick.
type Builder struct {
	plugin   *Plugin
	title    string
	startDir string
	fileName string
	filters  []Filter
}

// Dialog creates a request builder against the plugin installed in the
// world. With no plugin installed every terminal call is logged and dropped.
func Dialog(w *ecs.World) *Builder {
	p, ok := ecs.Resource(w, pluginResource)
	if !ok {
		log.Printf("filedialog: no plugin installed in world, requests will be dropped")
	}
	return &Builder{plugin: p}
}

// AddFilter adds a file extension filter: a display label plus allowed
// extensions without the leading dot. May be called multiple times; filters
// only affect the next terminal call.
func (b *Builder) AddFilter(label string, extensions ...string) *Builder {
	b.filters = append(b.filters, Filter{Label: label, Extensions: extensions})
	return b
}

// SetDirectory sets the directory the dialog starts in. An empty path
// clears it.
func (b *Builder) SetDirectory(dir string) *Builder {
	b.startDir = dir
	return b
}

// SetFileName sets the file name the dialog suggests.
func (b *Builder) SetFileName(name string) *Builder {
	b.fileName = name
	return b
}

// SetTitle sets the dialog window title.
func (b *Builder) SetTitle(title string) *Builder {
	b.title = title
	return b
}

// LoadFile opens a pick-file dialog and reads the chosen file. The result
// arrives as one Loaded event for the marker, or one LoadCanceled event if
// the dialog is dismissed or the read fails. The marker must be registered
// with WithLoadFile.
func (b *Builder) LoadFile(m Marker) {
	if b.plugin == nil {
		return
	}
	b.plugin.loadFile(b.options(), m)
}

// LoadMultipleFiles opens a multi-select pick-file dialog and reads every
// chosen file. The results arrive as one Loaded event per file, all on the
// same tick. The marker must be registered with WithLoadFile, and the
// picker backend must support multi selection.
func (b *Builder) LoadMultipleFiles(m Marker) {
	if b.plugin == nil {
		return
	}
	b.plugin.loadMultipleFiles(b.options(), m)
}

// SaveFile opens a save dialog and writes contents to the chosen file. The
// result arrives as one Saved event for the marker; a failed write rides in
// Saved.Result. A dismissed dialog yields one SaveCanceled event. The
// marker must be registered with WithSaveFile.
func (b *Builder) SaveFile(m Marker, contents []byte) {
	if b.plugin == nil {
		return
	}
	b.plugin.saveFile(b.options(), m, contents)
}

// PickFilePath opens a pick-file dialog and reports the chosen path without
// touching the file. The result arrives as one FilePicked event. The marker
// must be registered with WithPickFile.
func (b *Builder) PickFilePath(m Marker) {
	if b.plugin == nil {
		return
	}
	b.plugin.pickFilePath(b.options(), m)
}

// PickMultipleFilePaths opens a multi-select pick-file dialog and reports
// every chosen path, one FilePicked event per path on the same tick.
func (b *Builder) PickMultipleFilePaths(m Marker) {
	if b.plugin == nil {
		return
	}
	b.plugin.pickMultipleFilePaths(b.options(), m)
}

// PickDirectoryPath opens a directory chooser and reports the chosen path
// as one DirectoryPicked event. The marker must be registered with
// WithPickDirectory.
func (b *Builder) PickDirectoryPath(m Marker) {
	if b.plugin == nil {
		return
	}
	b.plugin.pickDirectoryPath(b.options(), m)
}

// PickMultipleDirectoryPaths opens a multi-select directory chooser and
// reports every chosen path, one DirectoryPicked event per path on the
// same tick.
func (b *Builder) PickMultipleDirectoryPaths(m Marker) {
	if b.plugin == nil {
		return
	}
	b.plugin.pickMultipleDirectoryPaths(b.options(), m)
}

func (b *Builder) options() PickerOptions {
	return PickerOptions{
		Title:    b.title,
		StartDir: b.startDir,
		FileName: b.fileName,
		Filters:  b.filters,
	}
}
