package synced

import "iter"

// Pairs returns a copy of the mirror.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	return append([]Pair[K, V]{}, m.mirror...)
}

// MirrorLen returns the number of mirror rows, duplicates included.
func (m *Map[K, V]) MirrorLen() int {
	return len(m.mirror)
}

// PairAt returns the mirror row at index.
func (m *Map[K, V]) PairAt(index int) (Pair[K, V], bool) {
	if index < 0 || index >= len(m.mirror) {
		return Pair[K, V]{}, false
	}
	return m.mirror[index], true
}

// SetPairs replaces the mirror with a copy of pairs, the way a structural
// editor writes rows. The runtime map is stale until AfterDeserialize runs.
func (m *Map[K, V]) SetPairs(pairs []Pair[K, V]) {
	m.mirror = append(make([]Pair[K, V], 0, len(pairs)), pairs...)
}

// Apply replaces the mirror and reconstructs the runtime map from it.
func (m *Map[K, V]) Apply(pairs []Pair[K, V]) {
	m.SetPairs(pairs)
	m.AfterDeserialize()
}

// Enumerate yields the mirror rows as Pair[K, V] values, in order.
func (m *Map[K, V]) Enumerate() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, pair := range m.mirror {
			if !yield(pair) {
				return
			}
		}
	}
}
