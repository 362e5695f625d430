package persist

import (
	"encoding"
	"reflect"
	"strings"

	"github.com/viant/syncdict/internal/syncmap"
)

var (
	receiverType      = reflect.TypeOf((*Receiver)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

	verdicts = syncmap.New[reflect.Type, error]()
)

// Check reports whether values of t can be persisted by the host serializer.
// It returns nil for persistable types and an *UnsupportedElementTypeError
// otherwise. Verdicts are cached per type.
func Check(t reflect.Type) error {
	if t == nil {
		return &UnsupportedElementTypeError{Cause: "nil type"}
	}
	return verdicts.GetOrSet(t, func() error {
		return check(t, t.String(), map[reflect.Type]bool{})
	})
}

// CheckOf is Check for the static type parameter T.
func CheckOf[T any]() error {
	return Check(reflect.TypeOf((*T)(nil)).Elem())
}

func check(t reflect.Type, path string, visiting map[reflect.Type]bool) error {
	if visiting[t] {
		return nil
	}
	if implements(t, receiverType) || implements(t, textMarshalerType) {
		return nil
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Pointer, reflect.Slice, reflect.Array:
		visiting[t] = true
		defer delete(visiting, t)
		return check(t.Elem(), path+elemSuffix(t.Kind()), visiting)
	case reflect.Struct:
		visiting[t] = true
		defer delete(visiting, t)
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || skipped(field) {
				continue
			}
			if err := check(field.Type, path+"."+field.Name, visiting); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return unsupported(t, path, "maps have no ordered persisted form")
	case reflect.Interface:
		return unsupported(t, path, "interface values are not homogeneous")
	case reflect.Complex64, reflect.Complex128:
		return unsupported(t, path, "complex numbers are not persisted")
	default:
		return unsupported(t, path, t.Kind().String()+" values are not persisted")
	}
}

func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface))
}

func skipped(field reflect.StructField) bool {
	for _, key := range []string{"yaml", "json"} {
		tag := field.Tag.Get(key)
		if tag == "-" {
			return true
		}
	}
	return false
}

func elemSuffix(kind reflect.Kind) string {
	if kind == reflect.Pointer {
		return ""
	}
	return "[]"
}

func unsupported(t reflect.Type, path, cause string) error {
	if path == t.String() {
		path = ""
	}
	return &UnsupportedElementTypeError{Type: t, Path: strings.TrimPrefix(path, "."), Cause: cause}
}
