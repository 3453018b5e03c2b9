package ecs

// Plugin installs systems, events, and resources into a world.
type Plugin interface {
	Build(w *World)
}

// World owns entities, systems, per-tick event buffers, and resources.
// A world is single-threaded: all of its state is mutated only from the
// loop that calls Update.
type World struct {
	entities  entityStore
	scheduler Scheduler
	buffers   map[eventID]eventBuffer
	resources map[resourceID]any
	tick      uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.create()
}

// DestroyEntity marks an entity as dead. Returns false for stale handles.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// AddPlugin builds a plugin into this world immediately. Systems a plugin
// adds run before systems added afterwards.
func (w *World) AddPlugin(p Plugin) {
	if w == nil || p == nil {
		return
	}
	p.Build(w)
}

// Update runs one tick: every system in order, then event buffer flush.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.tick++
	w.scheduler.Update(w)
	for _, b := range w.buffers {
		b.flush()
	}
}

// Tick returns the number of completed and in-progress Update calls.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}
