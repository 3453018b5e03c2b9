package ecs

import "sync/atomic"

type resourceID uint32

var nextResourceID atomic.Uint32

// ResourceKind is a typed handle naming one world-global value.
type ResourceKind[T any] struct {
	id resourceID
}

// NewResource allocates a new resource kind.
func NewResource[T any]() ResourceKind[T] {
	return ResourceKind[T]{id: resourceID(nextResourceID.Add(1))}
}

func (k ResourceKind[T]) Valid() bool {
	return k.id != 0
}

// AddResource stores a value in the world under the kind, replacing any
// previous value.
func AddResource[T any](w *World, k ResourceKind[T], value T) {
	if w == nil || !k.Valid() {
		return
	}
	if w.resources == nil {
		w.resources = make(map[resourceID]any)
	}
	w.resources[k.id] = value
}

// Resource fetches the value stored under the kind, if any.
func Resource[T any](w *World, k ResourceKind[T]) (T, bool) {
	var zero T
	if w == nil || !k.Valid() || w.resources == nil {
		return zero, false
	}
	value, ok := w.resources[k.id]
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// RemoveResource drops the value stored under the kind.
func RemoveResource[T any](w *World, k ResourceKind[T]) bool {
	if w == nil || !k.Valid() || w.resources == nil {
		return false
	}
	if _, ok := w.resources[k.id]; !ok {
		return false
	}
	delete(w.resources, k.id)
	return true
}
