package offsetarray

import "reflect"

// isNil reports whether v is the absent value of a nilable kind.
func isNil[T any](v T) bool {
	// Nil interface values arrive here as a nil any.
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
