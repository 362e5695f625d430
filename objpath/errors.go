package objpath

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrSyntax is matched by *SyntaxError.
	ErrSyntax = errors.New("objpath: invalid path")
	// ErrMemberNotFound is matched by *MemberNotFoundError.
	ErrMemberNotFound = errors.New("objpath: member not found")
	// ErrNotEnumerable is matched by *NotEnumerableError.
	ErrNotEnumerable = errors.New("objpath: value is not enumerable")
	// ErrIndexOutOfRange is matched by *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("objpath: index out of range")
)

// SyntaxError reports a malformed path.
type SyntaxError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("objpath: invalid path %q at segment %q: %s", e.Path, e.Segment, e.Reason)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// MemberNotFoundError reports a field segment with no matching accessor
// member, field or map key anywhere in the type's embedding chain.
type MemberNotFoundError struct {
	Path string
	Type reflect.Type
	Name string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("objpath: %s: no member %q on %v", e.Path, e.Name, e.Type)
}

func (e *MemberNotFoundError) Is(target error) bool { return target == ErrMemberNotFound }

// NotEnumerableError reports an index segment applied to a value without
// forward enumeration.
type NotEnumerableError struct {
	Path string
	Type reflect.Type
}

func (e *NotEnumerableError) Error() string {
	return fmt.Sprintf("objpath: %s: %v is not enumerable", e.Path, e.Type)
}

func (e *NotEnumerableError) Is(target error) bool { return target == ErrNotEnumerable }

// IndexOutOfRangeError reports enumeration ending before Index was reached.
// Length is the number of elements produced.
type IndexOutOfRangeError struct {
	Path   string
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("objpath: %s: index %d out of range [0:%d]", e.Path, e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }
