package synced

import "github.com/viant/syncdict/persist"

var _ persist.Receiver = (*Map[string, int])(nil)

// BeforeSerialize has nothing to do: every mutator already rebuilt the
// mirror. It is the call site a host invokes before reading Pairs.
func (m *Map[K, V]) BeforeSerialize() {}

// AfterDeserialize rebuilds the runtime map from the mirror. Rows are taken
// in order; a row whose key equals an earlier row's key is dropped. The
// mirror itself is left as loaded. A persisted comparer name known to
// LookupComparer replaces the current comparer first.
func (m *Map[K, V]) AfterDeserialize() {
	m.resolveComparer()
	m.runtime = newTable[K, V](m.comparer, len(m.mirror))
	for _, pair := range m.mirror {
		if m.runtime.find(pair.Key) >= 0 {
			continue
		}
		m.runtime.insert(pair.Key, pair.Value)
	}
}

func (m *Map[K, V]) resolveComparer() {
	if m.comparer == nil || m.comparerName != comparerName(m.comparer) {
		if comparer, ok := LookupComparer[K](m.comparerName); ok {
			m.comparer = comparer
		}
	}
	if m.comparer == nil {
		m.comparer = Default[K]()
	}
	if m.comparerName == "" {
		m.comparerName = comparerName(m.comparer)
	}
}

// Persistable reports whether K and V can be persisted by the host
// serializer. A map failing the check still works at runtime but is inert
// for persistence: it marshals as null and ignores persisted input.
func (m *Map[K, V]) Persistable() error {
	if err := persist.CheckOf[K](); err != nil {
		return err
	}
	return persist.CheckOf[V]()
}
