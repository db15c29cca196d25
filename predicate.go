package known

import "reflect"

// Is reports whether v is recognized as build-time-known: it exposes a
// constant through the Constant interface and that constant is liftable.
func Is(v any) bool {
	c, ok := v.(Constant)
	if !ok {
		return false
	}
	return Liftable(c.ConstValue())
}

// IsOf reports whether v is recognized and its constant's type is
// convertible to T.
func IsOf[T any](v any) bool {
	_, ok := As[T](v)
	return ok
}

// As returns v's constant converted to T.
func As[T any](v any) (T, bool) {
	var zero T
	c, ok := v.(Constant)
	if !ok {
		return zero, false
	}
	cv := c.ConstValue()
	if !Liftable(cv) {
		return zero, false
	}
	want := reflect.TypeOf(&zero).Elem()
	if !reflect.TypeOf(cv).ConvertibleTo(want) {
		return zero, false
	}
	return reflect.ValueOf(cv).Convert(want).Interface().(T), true
}
