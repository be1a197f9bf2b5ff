package core

import "reflect"

// Arg pairs an argument name with the value supplied for it.
type Arg struct {
	Name  string
	Value any
}

// IsEmpty reports whether v counts as missing for a required argument:
// nil, the empty string, a nil pointer or interface, or an empty slice,
// array or map. Zero numbers and false are not empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []byte:
		return len(t) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	}
	return false
}

// CheckRequired returns a ValidationError for the first argument whose value is empty.
func CheckRequired(args ...Arg) error {
	for _, a := range args {
		if IsEmpty(a.Value) {
			return NewMissingArgumentError(a.Name)
		}
	}
	return nil
}
