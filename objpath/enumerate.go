package objpath

import (
	"iter"
	"reflect"
)

// Enumerable is implemented by values that expose forward-only enumeration
// for index segments.
type Enumerable interface {
	Enumerate() iter.Seq[any]
}

// Entry is the element produced by an iter.Seq2 for index segments.
type Entry struct {
	Key   any
	Value any
}

// element advances v index+1 times. ok is false when v cannot be enumerated;
// length is the number of elements produced when index was not reached. A
// negative index is never reached.
func element(v reflect.Value, index int) (result reflect.Value, length int, found, ok bool) {
	if e, has := capability[Enumerable](v, "Enumerate"); has {
		n := 0
		for item := range e.Enumerate() {
			if n == index {
				return reflect.ValueOf(item), n, true, true
			}
			n++
		}
		return reflect.Value{}, n, false, true
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if index >= 0 && index < v.Len() {
			return v.Index(index), v.Len(), true, true
		}
		return reflect.Value{}, v.Len(), false, true
	case reflect.String:
		n := 0
		for _, r := range v.String() {
			if n == index {
				return reflect.ValueOf(r), n, true, true
			}
			n++
		}
		return reflect.Value{}, n, false, true
	case reflect.Func:
		if arity := seqArity(v.Type()); arity > 0 {
			result, length, found = callSeq(v, arity, index)
			return result, length, found, true
		}
	}
	return reflect.Value{}, 0, false, false
}

// seqArity returns 1 for iter.Seq shaped functions, 2 for iter.Seq2, 0
// otherwise.
func seqArity(t reflect.Type) int {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0
	}
	switch yield.NumIn() {
	case 1, 2:
		return yield.NumIn()
	}
	return 0
}

func callSeq(fn reflect.Value, arity, index int) (reflect.Value, int, bool) {
	if fn.IsNil() {
		return reflect.Value{}, 0, false
	}
	yieldType := fn.Type().In(0)
	proceed := reflect.ValueOf(true).Convert(yieldType.Out(0))
	stop := reflect.ValueOf(false).Convert(yieldType.Out(0))
	var result reflect.Value
	n := 0
	found := false
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		if index < 0 || n < index {
			n++
			return []reflect.Value{proceed}
		}
		found = true
		if arity == 1 {
			result = args[0]
		} else {
			result = reflect.ValueOf(Entry{Key: args[0].Interface(), Value: args[1].Interface()})
		}
		return []reflect.Value{stop}
	})
	fn.Call([]reflect.Value{yield})
	return result, n, found
}
