package collection

import (
	"errors"
	"fmt"
	"reflect"
)

// Collection operation errors. These are the only two error kinds this
// package produces; every other operation is total and reports absence
// through a zero value and a boolean.
var (
	// ErrInvalidElement is returned when a value fails the declared-type
	// predicate on Add, Set or construction.
	ErrInvalidElement = errors.New("invalid element")

	// ErrIncompatibleTypes is returned when Merge or Replace is attempted
	// across collections whose declared element types are not compatible.
	ErrIncompatibleTypes = errors.New("incompatible collection types")
)

// invalidElement wraps ErrInvalidElement naming the owning collection, its
// declared element type, and the actual type of the rejected value.
func invalidElement(collection, declared string, value any) error {
	return fmt.Errorf("%w: %s declares element type %s, got %s",
		ErrInvalidElement, collection, declared, typeName(value))
}

// incompatibleTypes wraps ErrIncompatibleTypes naming both collections and
// both declared element types.
func incompatibleTypes(dst, src View) error {
	return fmt.Errorf("%w: cannot combine %s (element type %s) with %s (element type %s)",
		ErrIncompatibleTypes,
		dst.Name(), dst.Descriptor().Name(),
		src.Name(), src.Descriptor().Name())
}

// typeName returns the display name of a value's runtime type.
func typeName(v any) string {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return "nil"
	}
	return rt.String()
}
