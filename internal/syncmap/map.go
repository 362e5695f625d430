package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, T any] struct {
	mux sync.RWMutex
	m   map[K]T
}

// New creates a new instance of Map
func New[K comparable, T any]() *Map[K, T] {
	return &Map[K, T]{
		m: make(map[K]T),
	}
}

// Get retrieves an item by key
func (r *Map[K, T]) Get(key K) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or updates an item by key
func (r *Map[K, T]) Set(key K, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// GetOrSet returns the stored item for key, building and storing it with
// build when absent. build runs outside the lock, so two goroutines may both
// build; the first stored value wins and is returned to both.
func (r *Map[K, T]) GetOrSet(key K, build func() T) T {
	if v, ok := r.Get(key); ok {
		return v
	}
	built := build()
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok := r.m[key]; ok {
		return v
	}
	r.m[key] = built
	return built
}

// Delete removes an item by key
func (r *Map[K, T]) Delete(key K) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}

// Len returns the number of stored items
func (r *Map[K, T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns a slice of all keys
func (r *Map[K, T]) Keys() []K {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]K, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	return ret
}

// List returns a slice of all items
func (r *Map[K, T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
