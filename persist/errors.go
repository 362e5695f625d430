package persist

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedElementType indicates a type outside the persisted subset.
	ErrUnsupportedElementType = errors.New("persist: unsupported element type")
	// ErrUnknownFormat indicates a codec name that is not registered.
	ErrUnknownFormat = errors.New("persist: unknown format")
)

// UnsupportedElementTypeError names the offending type and where it was found
// inside the checked type.
type UnsupportedElementTypeError struct {
	Type  reflect.Type
	Path  string
	Cause string
}

func (e *UnsupportedElementTypeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	where := ""
	if e.Path != "" {
		where = " at " + e.Path
	}
	typeName := "<nil>"
	if e.Type != nil {
		typeName = e.Type.String()
	}
	return fmt.Sprintf("persist: unsupported element type %s%s: %s", typeName, where, e.Cause)
}

// Is reports ErrUnsupportedElementType equivalence.
func (e *UnsupportedElementTypeError) Is(target error) bool {
	return target == ErrUnsupportedElementType
}
