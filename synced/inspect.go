package synced

import (
	"fmt"

	"github.com/viant/syncdict/internal/conv"
)

// Inspectable is the key-type-erased view of a Map used by tooling that
// reaches a map through a resolved path and does not know K and V.
type Inspectable interface {
	Len() int
	MirrorLen() int
	EntryAt(index int) (key, value any, ok bool)
	IsFirstOccurrence(index int) bool
	IndexOfAnyKey(key any) (int, error)
	Duplicates() []int
	Normalize() int
	Persistable() error
}

var _ Inspectable = (*Map[string, int])(nil)

// EntryAt returns the key and value of the mirror row at index.
func (m *Map[K, V]) EntryAt(index int) (any, any, bool) {
	pair, ok := m.PairAt(index)
	if !ok {
		return nil, nil, false
	}
	return pair.Key, pair.Value, true
}

// IndexOfAnyKey converts key to K and returns IndexOfKey for it.
func (m *Map[K, V]) IndexOfAnyKey(key any) (int, error) {
	var typed K
	if err := conv.Convert(key, &typed); err != nil {
		return -1, fmt.Errorf("synced: key %v: %w", key, err)
	}
	return m.IndexOfKey(typed), nil
}

// Member exposes the read-only properties path resolution may address:
// Len and Count (runtime entries), MirrorLen and Comparer (its name).
func (m *Map[K, V]) Member(name string) (any, bool) {
	switch name {
	case "Len", "Count":
		return m.Len(), true
	case "MirrorLen":
		return len(m.mirror), true
	case "Comparer":
		return m.ComparerName(), true
	}
	return nil, false
}
