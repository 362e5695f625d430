package synced

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the persisted form of a Map.
type document[K any, V any] struct {
	Comparer string       `yaml:"comparer,omitempty" json:"comparer,omitempty"`
	Pairs    []Pair[K, V] `yaml:"pairs" json:"pairs"`
}

func (m *Map[K, V]) document() document[K, V] {
	m.BeforeSerialize()
	pairs := m.mirror
	if pairs == nil {
		pairs = []Pair[K, V]{}
	}
	return document[K, V]{Comparer: m.comparerName, Pairs: pairs}
}

func (m *Map[K, V]) load(doc document[K, V]) {
	if doc.Comparer != "" {
		m.comparerName = doc.Comparer
	}
	m.mirror = doc.Pairs
	m.AfterDeserialize()
}

// MarshalYAML implements yaml.Marshaler. It has a value receiver, unlike
// the rest of Map, so a Map held by value where the encoder cannot take its
// address (a map value, a field of a struct passed by value) still marshals
// as its document rather than as an empty struct.
func (m Map[K, V]) MarshalYAML() (interface{}, error) {
	if m.Persistable() != nil {
		return nil, nil
	}
	return m.document(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Map[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if m.Persistable() != nil {
		return nil
	}
	var doc document[K, V]
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("synced: decode mirror: %w", err)
	}
	m.load(doc)
	return nil
}

// MarshalJSON implements json.Marshaler. It has a value receiver for the
// same reason as MarshalYAML.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	if m.Persistable() != nil {
		return []byte("null"), nil
	}
	return json.Marshal(m.document())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.Persistable() != nil || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var doc document[K, V]
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("synced: decode mirror: %w", err)
	}
	m.load(doc)
	return nil
}
