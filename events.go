package filedialog

import (
	"github.com/milk9111/filedialog/ecs"
)

// Loaded is delivered once per loaded file after a load dialog completes.
type Loaded struct {
	// FileName is the base name of the loaded file.
	FileName string

	// Contents holds the full byte contents of the file.
	Contents []byte
}

// Saved is delivered after a save dialog completes and the write finished.
type Saved struct {
	// FileName is the base name of the saved file.
	FileName string

	// Result is nil on success, otherwise the write error. Save failures
	// are delivered here and never crash the process.
	Result error
}

// FilePicked is delivered once per selected path after a pick-file dialog.
// No file I/O happens for pick requests.
type FilePicked struct {
	Path string
}

// DirectoryPicked is delivered once per selected path after a pick-directory
// dialog.
type DirectoryPicked struct {
	Path string
}

// LoadCanceled is delivered when a load dialog is dismissed without a
// choice, or when reading a chosen file fails.
type LoadCanceled struct{}

// SaveCanceled is delivered when a save dialog is dismissed without a choice.
type SaveCanceled struct{}

// PickCanceled is delivered when a pick dialog is dismissed without a choice.
type PickCanceled struct{}

// Changed is delivered when a previously loaded file changes on disk and the
// marker was registered with WithChangeWatch.
type Changed struct {
	FileName string
	Contents []byte
}

// LoadedEvents returns this tick's Loaded events for the marker.
func LoadedEvents(w *ecs.World, m Marker) []Loaded {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.loaded)
	}
	return nil
}

// SavedEvents returns this tick's Saved events for the marker.
func SavedEvents(w *ecs.World, m Marker) []Saved {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.saved)
	}
	return nil
}

// FilePickedEvents returns this tick's FilePicked events for the marker.
func FilePickedEvents(w *ecs.World, m Marker) []FilePicked {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.filePicked)
	}
	return nil
}

// DirectoryPickedEvents returns this tick's DirectoryPicked events for the marker.
func DirectoryPickedEvents(w *ecs.World, m Marker) []DirectoryPicked {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.dirPicked)
	}
	return nil
}

// LoadCanceledEvents returns this tick's LoadCanceled events for the marker.
func LoadCanceledEvents(w *ecs.World, m Marker) []LoadCanceled {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.loadCanceled)
	}
	return nil
}

// SaveCanceledEvents returns this tick's SaveCanceled events for the marker.
func SaveCanceledEvents(w *ecs.World, m Marker) []SaveCanceled {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.saveCanceled)
	}
	return nil
}

// PickCanceledEvents returns this tick's PickCanceled events for the marker.
func PickCanceledEvents(w *ecs.World, m Marker) []PickCanceled {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.pickCanceled)
	}
	return nil
}

// ChangedEvents returns this tick's Changed events for the marker.
func ChangedEvents(w *ecs.World, m Marker) []Changed {
	if st := lookup(w, m); st != nil {
		return ecs.Read(w, st.changed)
	}
	return nil
}

func lookup(w *ecs.World, m Marker) *markerState {
	p, ok := ecs.Resource(w, pluginResource)
	if !ok {
		return nil
	}
	return p.markers[m.id]
}
