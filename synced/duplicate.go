package synced

// IsFirstOccurrence reports whether no mirror row before index holds a key
// equal to the key at index. Rows for which it is false are the ones
// AfterDeserialize drops. Out-of-range indexes report false.
//
// It only reads the mirror, so it is safe to call from concurrent readers
// and always reflects the rows as they are now, however they were edited.
func (m *Map[K, V]) IsFirstOccurrence(index int) bool {
	if index < 0 || index >= len(m.mirror) {
		return false
	}
	comparer := m.keyComparer()
	key := m.mirror[index].Key
	hash := comparer.Hash(key)
	for _, pair := range m.mirror[:index] {
		if comparer.Hash(pair.Key) == hash && comparer.Equal(pair.Key, key) {
			return false
		}
	}
	return true
}

// IndexOfKey returns the first mirror row whose key equals key, or -1.
func (m *Map[K, V]) IndexOfKey(key K) int {
	comparer := m.keyComparer()
	for i, pair := range m.mirror {
		if comparer.Equal(pair.Key, key) {
			return i
		}
	}
	return -1
}

// Duplicates returns the mirror rows that are not first occurrences, in one
// pass over the mirror.
func (m *Map[K, V]) Duplicates() []int {
	seen := newTable[K, struct{}](m.keyComparer(), len(m.mirror))
	var rows []int
	for i, pair := range m.mirror {
		if seen.find(pair.Key) >= 0 {
			rows = append(rows, i)
			continue
		}
		seen.insert(pair.Key, struct{}{})
	}
	return rows
}

// Normalize reconstructs the runtime map from the mirror and re-derives the
// mirror from it, which removes duplicate rows. It returns how many rows
// were dropped.
func (m *Map[K, V]) Normalize() int {
	before := len(m.mirror)
	m.AfterDeserialize()
	m.rebuild()
	return before - len(m.mirror)
}
