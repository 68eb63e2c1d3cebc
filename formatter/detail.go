package formatter

import (
	"fmt"
	"reflect"
)

// MessageString renders the primary message the way it appears in the
// header line. A nil error or fmt.Stringer renders as <nil> instead of
// calling its method on a nil receiver.
func MessageString(msg any) string {
	if msg == nil {
		return "<nil>"
	}
	switch v := msg.(type) {
	case string:
		return v
	case error:
		if isNil(v) {
			return "<nil>"
		}
		return v.Error()
	case fmt.Stringer:
		if isNil(v) {
			return "<nil>"
		}
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsStructured reports whether msg gets a detail dump after the header:
// any non-nil error, or a non-nil struct, map, slice, array, pointer or
// interface value. Scalars never do, and neither does a typed nil.
func IsStructured(msg any) bool {
	if isNil(msg) {
		return false
	}
	if _, ok := msg.(error); ok {
		return true
	}
	switch reflect.ValueOf(msg).Kind() {
	case reflect.Struct, reflect.Array, reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface:
		return true
	default:
		return false
	}
}

// isNil reports whether msg is nil or a nil value of a nillable kind
func isNil(msg any) bool {
	if msg == nil {
		return true
	}
	v := reflect.ValueOf(msg)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// DetailFormatter renders the detail dump of a structured message
type DetailFormatter interface {
	// Detail returns the dump and true, or false when msg is not structured
	Detail(msg any) (string, bool)
}

// VerboseDetail renders errors with %+v, which for errors created by
// github.com/pkg/errors includes the recorded stack trace, and every other
// structured value with %+v as well so struct field names are kept.
type VerboseDetail struct{}

// Detail implements DetailFormatter
func (VerboseDetail) Detail(msg any) (string, bool) {
	if !IsStructured(msg) {
		return "", false
	}
	if err, ok := msg.(error); ok {
		return fmt.Sprintf("%+v", err), true
	}
	return fmt.Sprintf("%+v", msg), true
}
