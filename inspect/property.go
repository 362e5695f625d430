package inspect

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/viant/syncdict/inspect/config"
	"github.com/viant/syncdict/synced"
)

// Row is one mirror row as a host editor would list it.
type Row struct {
	Index  int
	Key    any
	Value  any
	Unique bool
}

// Property is a synced map reached through a path.
type Property struct {
	Path string

	view       synced.Inspectable
	tree       *synced.Map[any, any]
	node       map[string]any
	pairsField string
}

// Count returns the number of distinct keys.
func (p *Property) Count() int { return p.view.Len() }

// MirrorLen returns the number of persisted rows, duplicates included.
func (p *Property) MirrorLen() int { return p.view.MirrorLen() }

// IsUniqueKey reports whether row index is the first row with its key.
func (p *Property) IsUniqueKey(index int) bool { return p.view.IsFirstOccurrence(index) }

// IndexOfKey returns the first row holding key, or -1.
func (p *Property) IndexOfKey(key any) (int, error) { return p.view.IndexOfAnyKey(key) }

// Duplicates returns the rows dropped at load.
func (p *Property) Duplicates() []int { return p.view.Duplicates() }

// View returns the underlying map.
func (p *Property) View() synced.Inspectable { return p.view }

// Map returns the map built from a document node, or nil when the property
// wraps a typed value.
func (p *Property) Map() *synced.Map[any, any] { return p.tree }

// Rows returns all mirror rows in order.
func (p *Property) Rows() []Row {
	dropped := map[int]bool{}
	for _, index := range p.view.Duplicates() {
		dropped[index] = true
	}
	rows := make([]Row, 0, p.view.MirrorLen())
	for i := 0; i < p.view.MirrorLen(); i++ {
		key, value, _ := p.view.EntryAt(i)
		rows = append(rows, Row{Index: i, Key: key, Value: value, Unique: !dropped[i]})
	}
	return rows
}

// Normalize removes duplicate rows and returns how many were dropped. For
// document nodes the rows are written back into the tree.
func (p *Property) Normalize() int {
	dropped := p.view.Normalize()
	if p.node != nil {
		pairs := p.tree.Pairs()
		rows := make([]any, 0, len(pairs))
		for _, pair := range pairs {
			rows = append(rows, map[string]any{"key": pair.Key, "value": pair.Value})
		}
		p.node[p.pairsField] = rows
	}
	return dropped
}

func (p *Property) logDuplicates(logger *slog.Logger) {
	for _, index := range p.view.Duplicates() {
		key, _, _ := p.view.EntryAt(index)
		first, _ := p.view.IndexOfAnyKey(key)
		logger.Warn("duplicate key dropped", "path", p.Path, "row", index, "key", key, "first", first)
	}
}

// isNode reports whether value is shaped like a persisted synced map.
func isNode(value any, cfg *config.Config) (map[string]any, bool) {
	node, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	rows, ok := node[cfg.PairsField].([]any)
	if !ok {
		return nil, false
	}
	for _, row := range rows {
		entry, ok := row.(map[string]any)
		if !ok {
			return nil, false
		}
		if _, ok = entry["key"]; !ok {
			return nil, false
		}
	}
	return node, true
}

func newNodeProperty(path string, value any, cfg *config.Config, logger *slog.Logger) (*Property, error) {
	node, ok := isNode(value, cfg)
	if !ok {
		return nil, &NodeError{Path: path, Reason: fmt.Sprintf("expected a mapping with %q rows of key and value", cfg.PairsField)}
	}
	rows := node[cfg.PairsField].([]any)
	pairs := make([]synced.Pair[any, any], 0, len(rows))
	for _, row := range rows {
		entry := row.(map[string]any)
		pairs = append(pairs, synced.Pair[any, any]{Key: entry["key"], Value: entry["value"]})
	}
	name, _ := node[cfg.ComparerField].(string)
	if name == "" {
		name = cfg.Comparer
	}
	tree := synced.FromPairs(pairs, treeComparer(name, logger))
	ret := &Property{Path: path, view: tree, tree: tree, node: node, pairsField: cfg.PairsField}
	ret.logDuplicates(logger)
	return ret, nil
}

// treeComparer selects the comparer for decoded keys. Decoded keys may hold
// mappings or sequences, so == is replaced by deep equality, which agrees
// with it on scalars.
func treeComparer(name string, logger *slog.Logger) synced.Comparer[any] {
	if name == synced.DefaultComparerName {
		return synced.Deep[any]()
	}
	if comparer, ok := synced.LookupComparer[any](name); ok {
		return comparer
	}
	logger.Warn("unknown comparer, using deep equality", "comparer", name)
	return synced.Deep[any]()
}

func newValueProperty(path string, value reflect.Value, logger *slog.Logger) (*Property, error) {
	view, ok := inspectable(value)
	if !ok {
		typ := "nil"
		if value.IsValid() {
			typ = value.Type().String()
		}
		return nil, &NodeError{Path: path, Reason: typ + " does not expose mirror rows"}
	}
	ret := &Property{Path: path, view: view}
	ret.logDuplicates(logger)
	return ret, nil
}

func inspectable(value reflect.Value) (synced.Inspectable, bool) {
	if !value.IsValid() {
		return nil, false
	}
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return nil, false
		}
	}
	if value.CanInterface() {
		if view, ok := value.Interface().(synced.Inspectable); ok {
			return view, true
		}
	}
	if value.CanAddr() {
		if view, ok := value.Addr().Interface().(synced.Inspectable); ok {
			return view, true
		}
	}
	return nil, false
}
