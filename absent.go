package cachekit

import "reflect"

// isAbsent reports whether v is nil or a nil value of a nillable kind.
// Zero values of other kinds (0, "", false, empty structs) are present.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
