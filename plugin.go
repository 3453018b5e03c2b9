// Package filedialog exposes native file-open/file-save dialogs as
// asynchronous, marker-scoped events inside a tick-driven ecs.World.
//
// Register a plugin with the marker flows you need:
//
//	var SaveSlot = filedialog.NewMarker("save-slot")
//
//	w := ecs.NewWorld()
//	w.AddPlugin(filedialog.New().
//		WithSaveFile(SaveSlot).
//		WithLoadFile(SaveSlot))
//
// Issue requests from anywhere on the main loop; they never block:
//
//	filedialog.Dialog(w).
//		AddFilter("Text", "txt").
//		SaveFile(SaveSlot, []byte("hello"))
//
// And consume completion events from a system on a later tick:
//
//	for _, ev := range filedialog.SavedEvents(w, SaveSlot) { ... }
//
// The dialog prompt and the file I/O run on a background goroutine per
// request; completions are handed back to the world through a per-marker
// channel that the plugin drains at the start of each tick.
package filedialog

import (
	"log"
	"sync"

	"github.com/milk9111/filedialog/ecs"
)

type capability uint8

const (
	capSave capability = 1 << iota
	capLoad
	capPickFile
	capPickDir
	capWatch
)

var pluginResource = ecs.NewResource[*Plugin]()

// markerState is everything the plugin keeps per registered marker: the
// registered capabilities, the completion channel fed by runner goroutines,
// and the event kinds completions are published under.
type markerState struct {
	marker Marker
	caps   capability

	// completions is the only cross-goroutine handoff. Runner goroutines
	// send, the marker's poll system drains on the main loop.
	completions chan completion

	loaded       ecs.EventKind[Loaded]
	saved        ecs.EventKind[Saved]
	filePicked   ecs.EventKind[FilePicked]
	dirPicked    ecs.EventKind[DirectoryPicked]
	loadCanceled ecs.EventKind[LoadCanceled]
	saveCanceled ecs.EventKind[SaveCanceled]
	pickCanceled ecs.EventKind[PickCanceled]
	changed      ecs.EventKind[Changed]
}

// completion carries one finished request from its runner goroutine back to
// the world. deliver publishes the outcome (or cancellation) into the
// originating marker's event buffers; it runs on the main loop.
type completion struct {
	deliver func(w *ecs.World)
}

// Plugin bridges native file dialogs into a world. Configure it with the
// With* methods, then install it with ecs.World.AddPlugin. All registration
// must happen before Build; the plugin is not safe to reconfigure afterwards.
type Plugin struct {
	picker  Picker
	markers map[uint32]*markerState
	order   []uint32
	built   bool

	// watch is created lazily by the first watched load; runner goroutines
	// race to create it, hence the lock.
	watchMu sync.Mutex
	watch   *watchSet
}

// New creates an empty plugin. Register at least one marker with
// WithSaveFile, WithLoadFile, WithPickFile, or WithPickDirectory before
// adding it to a world.
func New() *Plugin {
	return &Plugin{
		picker:  NativePicker{},
		markers: make(map[uint32]*markerState),
	}
}

// WithSaveFile allows SaveFile requests for the marker. Completions arrive
// as Saved events, dismissals as SaveCanceled events.
func (p *Plugin) WithSaveFile(m Marker) *Plugin {
	p.register(m, capSave)
	return p
}

// WithLoadFile allows LoadFile and LoadMultipleFiles requests for the
// marker. Completions arrive as Loaded events, dismissals as LoadCanceled
// events.
func (p *Plugin) WithLoadFile(m Marker) *Plugin {
	p.register(m, capLoad)
	return p
}

// WithPickFile allows PickFilePath and PickMultipleFilePaths requests for
// the marker. Completions arrive as FilePicked events, dismissals as
// PickCanceled events.
func (p *Plugin) WithPickFile(m Marker) *Plugin {
	p.register(m, capPickFile)
	return p
}

// WithPickDirectory allows PickDirectoryPath and PickMultipleDirectoryPaths
// requests for the marker. Completions arrive as DirectoryPicked events,
// dismissals as PickCanceled events.
func (p *Plugin) WithPickDirectory(m Marker) *Plugin {
	p.register(m, capPickDir)
	return p
}

// WithChangeWatch keeps watching files loaded under the marker and delivers
// a Changed event with the fresh contents whenever one is modified on disk.
// Only meaningful together with WithLoadFile. Call Close to release the
// underlying watcher.
func (p *Plugin) WithChangeWatch(m Marker) *Plugin {
	p.register(m, capWatch)
	return p
}

// WithPicker replaces the native picker backend. Useful for SqweekPicker or
// a fake in tests.
func (p *Plugin) WithPicker(picker Picker) *Plugin {
	if picker != nil {
		p.picker = picker
	}
	return p
}

func (p *Plugin) register(m Marker, need capability) {
	if p.built {
		panic("filedialog: plugin already built, register markers before AddPlugin")
	}
	if !m.Valid() {
		panic("filedialog: invalid marker, create markers with NewMarker")
	}
	st, ok := p.markers[m.id]
	if !ok {
		st = &markerState{
			marker:       m,
			completions:  make(chan completion, 8),
			loaded:       ecs.NewEvent[Loaded](),
			saved:        ecs.NewEvent[Saved](),
			filePicked:   ecs.NewEvent[FilePicked](),
			dirPicked:    ecs.NewEvent[DirectoryPicked](),
			loadCanceled: ecs.NewEvent[LoadCanceled](),
			saveCanceled: ecs.NewEvent[SaveCanceled](),
			pickCanceled: ecs.NewEvent[PickCanceled](),
			changed:      ecs.NewEvent[Changed](),
		}
		p.markers[m.id] = st
		p.order = append(p.order, m.id)
	}
	st.caps |= need
}

// Build implements ecs.Plugin. It installs one poll system per registered
// marker; each drains that marker's finished background work into the
// world's event buffers at the start of every tick.
func (p *Plugin) Build(w *ecs.World) {
	if len(p.markers) == 0 {
		panic("filedialog: no markers registered, use at least one Plugin.With*")
	}
	p.built = true
	ecs.AddResource(w, pluginResource, p)
	for _, id := range p.order {
		w.AddSystem(&pollSystem{st: p.markers[id]})
	}
}

// Close releases the file watcher, if WithChangeWatch was used. The plugin
// must not be used afterwards.
func (p *Plugin) Close() error {
	p.watchMu.Lock()
	ws := p.watch
	p.watch = nil
	p.watchMu.Unlock()
	if ws == nil {
		return nil
	}
	return ws.close()
}

// state validates a request against the registration table. A nil return
// means the request was rejected; per the registration rules no event is
// delivered for it.
func (p *Plugin) state(m Marker, need capability, op string) *markerState {
	st := p.markers[m.id]
	if st == nil || st.caps&need == 0 {
		log.Printf("filedialog: dropping %s request for unregistered marker %s", op, m)
		return nil
	}
	return st
}

// complete hands one finished request to the poll system. Blocks the runner
// goroutine, never the main loop, if the channel is momentarily full.
func (st *markerState) complete(deliver func(w *ecs.World)) {
	st.completions <- completion{deliver: deliver}
}

// pollSystem converts one marker's completed background tasks into
// ECS-visible events. It runs before application systems, so outcomes become
// visible no earlier than the tick after their task finished.
type pollSystem struct {
	st *markerState
}

func (s *pollSystem) Update(w *ecs.World) {
	for {
		select {
		case c := <-s.st.completions:
			c.deliver(w)
		default:
			return
		}
	}
}
