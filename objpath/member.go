package objpath

import (
	"reflect"

	"github.com/viant/syncdict/internal/syncmap"
)

// MemberAccessor is implemented by values that resolve their own members.
// Returning false defers to reflective lookup.
type MemberAccessor interface {
	Member(name string) (any, bool)
}

// member locates a field by its full index path from the described type.
type member struct {
	name  string
	index []int
}

type descriptor struct {
	members []member
	byName  map[string]int
}

func (d *descriptor) lookup(name string) (member, bool) {
	pos, ok := d.byName[name]
	if !ok {
		return member{}, false
	}
	return d.members[pos], true
}

// Registry caches member descriptors per type. It is safe for concurrent use.
type Registry struct {
	descriptors *syncmap.Map[reflect.Type, *descriptor]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: syncmap.New[reflect.Type, *descriptor]()}
}

var defaultRegistry = NewRegistry()

// Register prebuilds descriptors for types. Pointer types register their
// element type.
func (r *Registry) Register(types ...reflect.Type) {
	for _, t := range types {
		r.describe(t)
	}
}

// Members returns member names of t in lookup order. Shadowed names appear
// once, at their winning position.
func (r *Registry) Members(t reflect.Type) []string {
	d := r.describe(t)
	names := make([]string, len(d.members))
	for i, m := range d.members {
		names[i] = m.name
	}
	return names
}

func (r *Registry) describe(t reflect.Type) *descriptor {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return r.descriptors.GetOrSet(t, func() *descriptor {
		return describe(t)
	})
}

type level struct {
	typ   reflect.Type
	index []int
}

// describe walks the fields of t and its embedded structs breadth first;
// the first occurrence of a name wins. Methods are never members: a path
// only runs code through MemberAccessor or Enumerable.
func describe(t reflect.Type) *descriptor {
	d := &descriptor{byName: map[string]int{}}
	add := func(m member) {
		if _, ok := d.byName[m.name]; ok {
			return
		}
		d.byName[m.name] = len(d.members)
		d.members = append(d.members, m)
	}
	visited := map[reflect.Type]bool{t: true}
	current := []level{{typ: t}}
	for len(current) > 0 {
		var next []level
		for _, lv := range current {
			if lv.typ.Kind() == reflect.Struct {
				for i := 0; i < lv.typ.NumField(); i++ {
					field := lv.typ.Field(i)
					index := append(append(make([]int, 0, len(lv.index)+1), lv.index...), i)
					add(member{name: field.Name, index: index})
					if !field.Anonymous {
						continue
					}
					embedded := field.Type
					if embedded.Kind() == reflect.Pointer {
						embedded = embedded.Elem()
					}
					if embedded.Kind() != reflect.Struct || visited[embedded] {
						continue
					}
					visited[embedded] = true
					next = append(next, level{typ: embedded, index: index})
				}
			}
		}
		current = next
	}
	return d
}
