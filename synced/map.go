package synced

import (
	"iter"
	"reflect"
)

// Pair is one persisted key/value row of the mirror.
type Pair[K any, V any] struct {
	Key   K `yaml:"key" json:"key"`
	Value V `yaml:"value" json:"value"`
}

// Map keeps a unique-key runtime hash map and an ordered, persistable
// mirror of its entries in step. The zero value is an empty map using the
// default comparer.
type Map[K comparable, V any] struct {
	runtime  *table[K, V]
	mirror   []Pair[K, V]
	comparer Comparer[K]
	// comparerName is the persisted comparer name. It survives loads that
	// name a comparer this process does not know.
	comparerName string
}

// New creates an empty map using the default comparer.
func New[K comparable, V any]() *Map[K, V] {
	return NewWithComparer[K, V](nil)
}

// NewWithComparer creates an empty map using comparer; nil selects Default.
func NewWithComparer[K comparable, V any](comparer Comparer[K]) *Map[K, V] {
	return FromMap[K, V](nil, comparer)
}

// FromMap creates a map holding a copy of seed; nil comparer selects
// Default. Entries are inserted in seed's iteration order.
func FromMap[K comparable, V any](seed map[K]V, comparer Comparer[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.init(comparer, len(seed))
	for key, value := range seed {
		m.runtime.upsert(key, value)
	}
	m.rebuild()
	return m
}

// FromPairs creates a map as if pairs had just been loaded from storage:
// the mirror holds a copy of pairs, duplicates included, and the runtime map
// keeps the first occurrence of every key.
func FromPairs[K comparable, V any](pairs []Pair[K, V], comparer Comparer[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.init(comparer, len(pairs))
	m.mirror = append(make([]Pair[K, V], 0, len(pairs)), pairs...)
	m.AfterDeserialize()
	return m
}

func (m *Map[K, V]) init(comparer Comparer[K], capacity int) {
	if comparer == nil {
		comparer = Default[K]()
	}
	m.comparer = comparer
	m.comparerName = comparerName(comparer)
	m.runtime = newTable[K, V](comparer, capacity)
}

// ensure makes the zero value usable.
func (m *Map[K, V]) ensure() {
	if m.runtime == nil {
		m.init(m.comparer, len(m.mirror))
	}
}

// rebuild regenerates the mirror from the runtime entries.
func (m *Map[K, V]) rebuild() {
	mirror := make([]Pair[K, V], 0, m.runtime.len())
	mirror = append(mirror, m.runtime.entries...)
	m.mirror = mirror
}

// Get returns the value stored for key, or the zero value when absent.
func (m *Map[K, V]) Get(key K) V {
	value, _ := m.TryGet(key)
	return value
}

// TryGet returns the value stored for key and whether it was present.
func (m *Map[K, V]) TryGet(key K) (V, bool) {
	m.ensure()
	if pos := m.runtime.find(key); pos >= 0 {
		return m.runtime.entries[pos].Value, true
	}
	var zero V
	return zero, false
}

// Add inserts key with value. It fails with a *DuplicateKeyError, leaving
// the map unchanged, when key is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	m.ensure()
	if m.runtime.find(key) >= 0 {
		return &DuplicateKeyError{Key: key}
	}
	m.runtime.insert(key, value)
	m.rebuild()
	return nil
}

// AddPair is Add for a Pair.
func (m *Map[K, V]) AddPair(pair Pair[K, V]) error {
	return m.Add(pair.Key, pair.Value)
}

// Set inserts or overwrites key. An overwritten key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	m.ensure()
	m.runtime.upsert(key, value)
	m.rebuild()
}

// Remove deletes key and reports whether it was present. The mirror is only
// rebuilt when something was removed.
func (m *Map[K, V]) Remove(key K) bool {
	m.ensure()
	pos := m.runtime.find(key)
	if pos < 0 {
		return false
	}
	m.runtime.removeAt(pos)
	m.rebuild()
	return true
}

// RemovePair deletes pair.Key only when its stored value deeply equals
// pair.Value.
func (m *Map[K, V]) RemovePair(pair Pair[K, V]) bool {
	m.ensure()
	pos := m.runtime.find(pair.Key)
	if pos < 0 || !reflect.DeepEqual(m.runtime.entries[pos].Value, pair.Value) {
		return false
	}
	m.runtime.removeAt(pos)
	m.rebuild()
	return true
}

// Clear empties the runtime map and the mirror.
func (m *Map[K, V]) Clear() {
	m.ensure()
	m.runtime.clear()
	m.mirror = nil
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	m.ensure()
	return m.runtime.find(key) >= 0
}

// ContainsValue reports whether any entry's value deeply equals value.
func (m *Map[K, V]) ContainsValue(value V) bool {
	m.ensure()
	for _, entry := range m.runtime.entries {
		if reflect.DeepEqual(entry.Value, value) {
			return true
		}
	}
	return false
}

// ContainsPair reports whether pair.Key is present with a value deeply equal
// to pair.Value.
func (m *Map[K, V]) ContainsPair(pair Pair[K, V]) bool {
	value, ok := m.TryGet(pair.Key)
	return ok && reflect.DeepEqual(value, pair.Value)
}

// Len returns the number of runtime entries.
func (m *Map[K, V]) Len() int {
	if m.runtime == nil {
		return 0
	}
	return m.runtime.len()
}

// Comparer returns the active key comparer.
func (m *Map[K, V]) Comparer() Comparer[K] {
	m.ensure()
	return m.comparer
}

// keyComparer is Comparer without initializing the zero value.
func (m *Map[K, V]) keyComparer() Comparer[K] {
	if m.comparer != nil {
		return m.comparer
	}
	return Default[K]()
}

// ComparerName returns the persisted comparer name.
func (m *Map[K, V]) ComparerName() string {
	if m.comparerName != "" {
		return m.comparerName
	}
	return comparerName(m.keyComparer())
}

// Keys returns the runtime keys in enumeration order.
func (m *Map[K, V]) Keys() []K {
	m.ensure()
	keys := make([]K, 0, m.runtime.len())
	for _, entry := range m.runtime.entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Values returns the runtime values in enumeration order.
func (m *Map[K, V]) Values() []V {
	m.ensure()
	values := make([]V, 0, m.runtime.len())
	for _, entry := range m.runtime.entries {
		values = append(values, entry.Value)
	}
	return values
}

// All iterates the runtime entries in enumeration order. The map must not
// be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.runtime == nil {
			return
		}
		for _, entry := range m.runtime.entries {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// ToMap copies the runtime entries into a Go map.
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for key, value := range m.All() {
		out[key] = value
	}
	return out
}
