package runtime

import (
	"sync"

	"booking-lab/contract"
)

// Registry tracks every connected display client. There is a single
// room, so this is a flat map from connection id to its sink.
type Registry struct {
	mu       sync.RWMutex
	Sessions map[string]contract.DisplaySink
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions: make(map[string]contract.DisplaySink),
	}
}

// Subscribe registers a display connection. A reconnecting client
// reusing its id simply replaces the old sink.
func (r *Registry) Subscribe(connID string, sink contract.DisplaySink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[connID] = sink
}

// Unsubscribe removes a display connection. Removing an unknown id is
// a no-op, so transports can clean up unconditionally on disconnect.
func (r *Registry) Unsubscribe(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Sessions, connID)
}

// Sinks returns a copy of the current connections. The broadcaster
// iterates the copy, so a client disconnecting mid-push never
// invalidates the iteration.
func (r *Registry) Sinks() map[string]contract.DisplaySink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]contract.DisplaySink, len(r.Sessions))
	for id, sink := range r.Sessions {
		out[id] = sink
	}
	return out
}
