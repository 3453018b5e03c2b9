package filedialog

import (
	"strconv"
	"sync/atomic"
)

var nextMarkerID atomic.Uint32

// Marker scopes dialog requests and their completion events to one logical
// dialog flow. Create one per flow at startup, register it on the plugin,
// and pass the same value when issuing requests and reading events. Events
// are never delivered across markers. The zero Marker is invalid.
type Marker struct {
	id   uint32
	name string
}

// NewMarker allocates a new marker. The name is diagnostic only and shows
// up in logs.
func NewMarker(name string) Marker {
	return Marker{id: nextMarkerID.Add(1), name: name}
}

func (m Marker) Valid() bool {
	return m.id != 0
}

func (m Marker) String() string {
	if m.name != "" {
		return m.name
	}
	return "marker#" + strconv.FormatUint(uint64(m.id), 10)
}
