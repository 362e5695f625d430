package synced

import (
	"encoding/json"
	"fmt"
	"hash/maphash"
	"reflect"
	"strings"

	"github.com/viant/syncdict/internal/syncmap"
)

// Comparer defines key equality for a Map. Equal keys must hash equally.
type Comparer[K any] interface {
	Equal(a, b K) bool
	Hash(key K) uint64
}

// NamedComparer is a Comparer that can be persisted by name.
type NamedComparer interface {
	Name() string
}

const (
	// DefaultComparerName names the == based comparer.
	DefaultComparerName = "default"
	// FoldComparerName names the case-insensitive string comparer.
	FoldComparerName = "fold"
	// DeepComparerName names the structural comparer.
	DeepComparerName = "deep"
)

var (
	seed      = maphash.MakeSeed()
	comparers = syncmap.New[string, any]()
)

type defaultComparer[K comparable] struct{}

func (defaultComparer[K]) Name() string { return DefaultComparerName }

func (defaultComparer[K]) Equal(a, b K) bool { return a == b }

func (defaultComparer[K]) Hash(key K) uint64 { return maphash.Comparable(seed, key) }

// Default returns the comparer based on Go's == operator. Like ==, it panics
// for interface keys holding uncomparable values.
func Default[K comparable]() Comparer[K] {
	return defaultComparer[K]{}
}

type foldComparer[K any] struct{}

func (foldComparer[K]) Name() string { return FoldComparerName }

func (foldComparer[K]) Equal(a, b K) bool {
	as, aok := any(a).(string)
	bs, bok := any(b).(string)
	switch {
	case aok && bok:
		return foldKey(as) == foldKey(bs)
	case aok != bok:
		return false
	}
	return reflect.DeepEqual(a, b)
}

func (foldComparer[K]) Hash(key K) uint64 {
	if s, ok := any(key).(string); ok {
		return maphash.String(seed, foldKey(s))
	}
	return deepHash(key)
}

func foldKey(s string) string {
	return strings.ToLower(strings.ToUpper(s))
}

// Fold returns a case-insensitive comparer for string keys. Keys whose value
// is not a string (K being an interface type) compare structurally.
func Fold[K any]() Comparer[K] {
	return foldComparer[K]{}
}

// FoldString returns Fold for string keys.
func FoldString() Comparer[string] {
	return Fold[string]()
}

type deepComparer[K any] struct{}

func (deepComparer[K]) Name() string { return DeepComparerName }

func (deepComparer[K]) Equal(a, b K) bool { return reflect.DeepEqual(a, b) }

func (deepComparer[K]) Hash(key K) uint64 { return deepHash(key) }

// Deep returns a structural comparer: keys are equal when reflect.DeepEqual
// says so. It accepts keys that == cannot compare, such as decoded YAML
// mappings held in an interface.
func Deep[K any]() Comparer[K] {
	return deepComparer[K]{}
}

func deepHash(key any) uint64 {
	if data, err := json.Marshal(key); err == nil {
		return maphash.Bytes(seed, data)
	}
	return maphash.String(seed, fmt.Sprintf("%#v", key))
}

// RegisterComparer makes comparer available to LookupComparer under name,
// which is what a Map persists when comparer implements NamedComparer.
// Built-in names cannot be overridden.
func RegisterComparer[K any](name string, comparer Comparer[K]) error {
	switch name {
	case "", DefaultComparerName, FoldComparerName, DeepComparerName:
		return fmt.Errorf("synced: comparer name %q is reserved", name)
	}
	if comparer == nil {
		return fmt.Errorf("synced: comparer %q is nil", name)
	}
	comparers.Set(name, comparer)
	return nil
}

// LookupComparer returns the comparer persisted under name for key type K.
// The second result is false when the name is unknown or registered for a
// different key type.
func LookupComparer[K comparable](name string) (Comparer[K], bool) {
	switch name {
	case "", DefaultComparerName:
		return Default[K](), true
	case FoldComparerName:
		return Fold[K](), true
	case DeepComparerName:
		return Deep[K](), true
	}
	registered, ok := comparers.Get(name)
	if !ok {
		return nil, false
	}
	comparer, ok := registered.(Comparer[K])
	return comparer, ok
}

func comparerName[K any](comparer Comparer[K]) string {
	if named, ok := comparer.(NamedComparer); ok {
		return named.Name()
	}
	return ""
}
