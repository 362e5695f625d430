package conv

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrInvalidTarget is returned when the destination is not a non-nil pointer.
var ErrInvalidTarget = errors.New("conv: destination must be a non-nil pointer")

// Convert stores in into the value target points to. It tries, in order:
// assignment, numeric conversion, parsing of a string into a number or
// bool, and a JSON round trip. A nil in leaves the destination untouched.
func Convert(in any, target any) error {
	dest := reflect.ValueOf(target)
	if target == nil || dest.Kind() != reflect.Pointer || dest.IsNil() {
		return ErrInvalidTarget
	}
	if in == nil {
		return nil
	}
	src := reflect.ValueOf(in)
	elem := dest.Elem()
	switch {
	case src.Type().AssignableTo(elem.Type()):
		elem.Set(src)
		return nil
	case isNumeric(src.Kind()) && isNumeric(elem.Kind()):
		elem.Set(src.Convert(elem.Type()))
		return nil
	case src.Kind() == reflect.String:
		if ok, err := parseInto(src.String(), elem); ok || err != nil {
			return err
		}
	}
	data, err := json.Marshal(in)
	if err == nil {
		err = json.Unmarshal(data, target)
	}
	if err != nil {
		return fmt.Errorf("conv: %T to %s: %w", in, elem.Type(), err)
	}
	return nil
}

// parseInto handles string to scalar conversion; ok is false when elem is not
// a scalar the string could be parsed into.
func parseInto(text string, elem reflect.Value) (bool, error) {
	var err error
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(text, 10, elem.Type().Bits()); err == nil {
			elem.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		if n, err = strconv.ParseUint(text, 10, elem.Type().Bits()); err == nil {
			elem.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(text, elem.Type().Bits()); err == nil {
			elem.SetFloat(f)
		}
	case reflect.Bool:
		var b bool
		if b, err = strconv.ParseBool(text); err == nil {
			elem.SetBool(b)
		}
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("conv: %q to %s: %w", text, elem.Type(), err)
	}
	return true, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
