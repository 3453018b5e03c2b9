package ecs

import "sync/atomic"

type eventID uint32

var nextEventID atomic.Uint32

// EventKind is a typed handle naming one event channel in a world. Handles
// are allocated process-wide so the same kind can address any world.
type EventKind[T any] struct {
	id eventID
}

// NewEvent allocates a new event kind.
func NewEvent[T any]() EventKind[T] {
	return EventKind[T]{id: eventID(nextEventID.Add(1))}
}

func (k EventKind[T]) Valid() bool {
	return k.id != 0
}

type eventBuffer interface {
	flush()
}

// typedBuffer is a per-kind FIFO that lives for one tick. Events published
// during a tick are visible to systems that run after the publisher and are
// discarded when the tick ends.
type typedBuffer[T any] struct {
	items []T
}

func (b *typedBuffer[T]) flush() {
	b.items = nil
}

func bufferFor[T any](w *World, k EventKind[T]) *typedBuffer[T] {
	if w.buffers == nil {
		w.buffers = make(map[eventID]eventBuffer)
	}
	if b, ok := w.buffers[k.id]; ok {
		return b.(*typedBuffer[T])
	}
	b := &typedBuffer[T]{}
	w.buffers[k.id] = b
	return b
}

// Publish appends an event to the kind's buffer for the current tick.
// Buffers are not synchronized; publish only from the world's own loop.
func Publish[T any](w *World, k EventKind[T], ev T) {
	if w == nil || !k.Valid() {
		return
	}
	b := bufferFor(w, k)
	b.items = append(b.items, ev)
}

// Read returns the events of a kind published during the current tick.
// The returned slice is owned by the world and only valid until the tick ends.
func Read[T any](w *World, k EventKind[T]) []T {
	if w == nil || !k.Valid() || w.buffers == nil {
		return nil
	}
	b, ok := w.buffers[k.id]
	if !ok {
		return nil
	}
	return b.(*typedBuffer[T]).items
}
