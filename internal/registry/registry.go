package registry

import (
	"sort"
	"sync"

	"github.com/robgonnella/sockchat/internal/stream"
)

// Registry maps a device identity to its single live stream. Entries are
// created once and are never overwritten while present.
type Registry struct {
	streams map[string]*stream.Stream
	mux     sync.RWMutex
}

// New returns an empty Registry
func New() *Registry {
	return &Registry{
		streams: map[string]*stream.Stream{},
		mux:     sync.RWMutex{},
	}
}

// LoadOrStore returns the stream already registered for id if one exists,
// otherwise it stores s. The loaded result is true if s was not stored.
func (r *Registry) LoadOrStore(id string, s *stream.Stream) (*stream.Stream, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if existing, ok := r.streams[id]; ok {
		return existing, true
	}

	r.streams[id] = s

	return s, false
}

// Get returns the stream registered for id
func (r *Registry) Get(id string) (*stream.Stream, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	s, ok := r.streams[id]

	return s, ok
}

// Remove deletes the entry for id and returns the removed stream
func (r *Registry) Remove(id string) (*stream.Stream, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()

	s, ok := r.streams[id]

	if ok {
		delete(r.streams, id)
	}

	return s, ok
}

// All returns every registered stream ordered by device identity
func (r *Registry) All() []*stream.Stream {
	r.mux.RLock()
	defer r.mux.RUnlock()

	ids := make([]string, 0, len(r.streams))

	for id := range r.streams {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	result := make([]*stream.Stream, 0, len(ids))

	for _, id := range ids {
		result = append(result, r.streams[id])
	}

	return result
}

// Len returns the number of registered streams
func (r *Registry) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()

	return len(r.streams)
}

// Clear empties the registry and returns the streams it held
func (r *Registry) Clear() []*stream.Stream {
	r.mux.Lock()
	defer r.mux.Unlock()

	result := make([]*stream.Stream, 0, len(r.streams))

	for _, s := range r.streams {
		result = append(result, s)
	}

	r.streams = map[string]*stream.Stream{}

	return result
}
