package synced

// table is the runtime representation: entries in insertion order plus a
// hash index into them. It enforces key uniqueness under its comparer.
type table[K comparable, V any] struct {
	comparer Comparer[K]
	entries  []Pair[K, V]
	index    map[uint64][]int
}

func newTable[K comparable, V any](comparer Comparer[K], capacity int) *table[K, V] {
	return &table[K, V]{
		comparer: comparer,
		entries:  make([]Pair[K, V], 0, capacity),
		index:    make(map[uint64][]int, capacity),
	}
}

func (t *table[K, V]) len() int {
	return len(t.entries)
}

// find returns the entry position of key or -1.
func (t *table[K, V]) find(key K) int {
	for _, pos := range t.index[t.comparer.Hash(key)] {
		if t.comparer.Equal(t.entries[pos].Key, key) {
			return pos
		}
	}
	return -1
}

// insert appends a new entry; the caller guarantees key is absent.
func (t *table[K, V]) insert(key K, value V) {
	hash := t.comparer.Hash(key)
	t.index[hash] = append(t.index[hash], len(t.entries))
	t.entries = append(t.entries, Pair[K, V]{Key: key, Value: value})
}

// upsert overwrites the value of an existing key in place or inserts it.
func (t *table[K, V]) upsert(key K, value V) {
	if pos := t.find(key); pos >= 0 {
		t.entries[pos].Value = value
		return
	}
	t.insert(key, value)
}

// removeAt deletes the entry at pos and closes the gap, keeping order.
func (t *table[K, V]) removeAt(pos int) {
	copy(t.entries[pos:], t.entries[pos+1:])
	var zero Pair[K, V]
	t.entries[len(t.entries)-1] = zero
	t.entries = t.entries[:len(t.entries)-1]
	t.reindex()
}

func (t *table[K, V]) reindex() {
	clear(t.index)
	for pos, entry := range t.entries {
		hash := t.comparer.Hash(entry.Key)
		t.index[hash] = append(t.index[hash], pos)
	}
}

func (t *table[K, V]) clear() {
	clear(t.entries)
	t.entries = t.entries[:0]
	clear(t.index)
}
