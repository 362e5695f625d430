package objpath

import (
	"reflect"
	"unsafe"
)

// Resolver resolves paths against object graphs.
type Resolver struct {
	marker   string
	registry *Registry
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMarker sets the host array-element marker. An empty marker disables
// normalization.
func WithMarker(marker string) Option {
	return func(r *Resolver) {
		r.marker = marker
	}
}

// WithRegistry sets the descriptor registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Resolver) {
		r.registry = registry
	}
}

// New creates a resolver.
func New(opts ...Option) *Resolver {
	ret := &Resolver{marker: DefaultMarker, registry: defaultRegistry}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.registry == nil {
		ret.registry = defaultRegistry
	}
	return ret
}

var defaultResolver = New()

// Resolve resolves path against root with the default resolver.
func Resolve(root any, path string) (any, error) {
	return defaultResolver.Resolve(root, path)
}

// Parse parses path with the resolver's marker.
func (r *Resolver) Parse(path string) (Path, error) {
	return parse(path, r.marker)
}

// Resolve returns the value reachable from root at path, or nil when root
// or any intermediate value is nil.
func (r *Resolver) Resolve(root any, path string) (any, error) {
	p, err := r.Parse(path)
	if err != nil {
		return nil, err
	}
	return r.ResolvePath(root, p)
}

// ResolvePath is Resolve for a parsed path.
func (r *Resolver) ResolvePath(root any, path Path) (any, error) {
	v, err := r.ResolveValue(root, path)
	if err != nil {
		return nil, err
	}
	return interfaceOf(v), nil
}

// ResolveValue returns the reflect.Value at path. Values reached through
// exported pointers, slices and struct fields stay addressable, so callers
// can use pointer receiver methods or mutate in place. A value reached
// through an unexported field is a detached copy that cannot be set. An
// invalid Value stands for nil.
func (r *Resolver) ResolveValue(root any, path Path) (reflect.Value, error) {
	current := reflect.ValueOf(root)
	detached := false
	for i, seg := range path {
		current = addressable(indirect(current))
		if !current.IsValid() {
			return reflect.Value{}, nil
		}
		var err error
		if seg.IsIndex() {
			current, err = r.index(current, *seg.Index, path[:i+1])
		} else {
			current, err = r.member(current, seg.Name, path[:i+1])
		}
		if err != nil {
			return reflect.Value{}, err
		}
		if current.IsValid() && !current.CanInterface() {
			detached = true
			current = exported(current)
		}
	}
	if detached {
		return detach(current), nil
	}
	return current, nil
}

func (r *Resolver) index(v reflect.Value, index int, at Path) (reflect.Value, error) {
	result, length, found, ok := element(v, index)
	if !ok {
		return reflect.Value{}, &NotEnumerableError{Path: at.String(), Type: v.Type()}
	}
	if !found || index < 0 {
		return reflect.Value{}, &IndexOutOfRangeError{Path: at.String(), Index: index, Length: length}
	}
	return result, nil
}

func (r *Resolver) member(v reflect.Value, name string, at Path) (reflect.Value, error) {
	if accessor, ok := capability[MemberAccessor](v, "Member"); ok {
		if value, found := accessor.Member(name); found {
			return reflect.ValueOf(value), nil
		}
	}
	if m, ok := r.registry.describe(v.Type()).lookup(name); ok {
		field, err := v.FieldByIndexErr(m.index)
		if err != nil {
			// nil embedded pointer on the way
			return reflect.Value{}, nil
		}
		return field, nil
	}
	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String {
		value := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if value.IsValid() {
			return value, nil
		}
	}
	return reflect.Value{}, &MemberNotFoundError{Path: at.String(), Type: v.Type(), Name: name}
}

// promotedThroughNil reports whether name would be promoted from a nil
// embedded pointer or interface of v.
func promotedThroughNil(v reflect.Value, name string, visited map[reflect.Type]bool) bool {
	if v.Kind() != reflect.Struct || visited[v.Type()] {
		return false
	}
	visited[v.Type()] = true
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if !field.Anonymous {
			continue
		}
		value := v.Field(i)
		switch field.Type.Kind() {
		case reflect.Pointer, reflect.Interface:
			if value.IsNil() {
				if _, ok := field.Type.MethodByName(name); ok {
					return true
				}
				continue
			}
			value = value.Elem()
		}
		if promotedThroughNil(value, name, visited) {
			return true
		}
	}
	return false
}

// indirect follows pointers and interfaces, returning an invalid Value on nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// addressable returns v, or an addressable copy when v is not addressable.
func addressable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanAddr() {
		return v
	}
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	return tmp
}

// exported lifts the read-only flag that reflect sets on values obtained
// through unexported fields. It is only used to read; ResolveValue never
// hands a lifted value out.
func exported(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// detach returns a non-addressable copy of v.
func detach(v reflect.Value) reflect.Value {
	if !v.IsValid() || !v.CanInterface() {
		return v
	}
	return reflect.ValueOf(v.Interface())
}

// capability returns v, or its address, as T. method names the method T
// requires; a method promoted through a nil embedded pointer does not count.
// The type check runs before anything is boxed.
func capability[T any](v reflect.Value, method string) (T, bool) {
	var zero T
	if !v.IsValid() {
		return zero, false
	}
	iface := reflect.TypeFor[T]()
	var target reflect.Value
	switch {
	case v.Type().Implements(iface):
		target = v
	case v.CanAddr() && reflect.PointerTo(v.Type()).Implements(iface):
		target = v.Addr()
	default:
		return zero, false
	}
	if !target.CanInterface() || promotedThroughNil(indirect(target), method, map[reflect.Type]bool{}) {
		return zero, false
	}
	if target.Kind() == reflect.Pointer && target.IsNil() {
		return zero, false
	}
	c, ok := target.Interface().(T)
	return c, ok
}

func interfaceOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	v = exported(v)
	if !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
