package collection

import (
	"reflect"
	"sort"
)

// Primitive kind names accepted by Primitive. Each names a predicate over a
// value's runtime kind.
const (
	KindInteger = "integer"
	KindString  = "string"
	KindBoolean = "boolean"
	KindFloat   = "float"
	// KindArray accepts slices, arrays and maps; the source notion of an
	// array covers both list and map shapes.
	KindArray = "array"
)

// kindPredicates maps each recognized primitive kind name to its membership
// test. An unrecognized name has no predicate and therefore matches nothing.
var kindPredicates = map[string]func(any) bool{
	KindInteger: func(v any) bool {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	},
	KindString: func(v any) bool {
		return reflect.ValueOf(v).Kind() == reflect.String
	},
	KindBoolean: func(v any) bool {
		return reflect.ValueOf(v).Kind() == reflect.Bool
	},
	KindFloat: func(v any) bool {
		k := reflect.ValueOf(v).Kind()
		return k == reflect.Float32 || k == reflect.Float64
	},
	KindArray: func(v any) bool {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return true
		}
		return false
	},
}

// Kinds returns the recognized primitive kind names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kindPredicates))
	for name := range kindPredicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// descClass distinguishes the four declared-type shapes.
type descClass int

const (
	classUntyped descClass = iota
	classPrimitive
	classObject
	classInterface
)

// untypedName is the display name of the untyped descriptor.
const untypedName = "untyped"

// Descriptor names the element type a Collection enforces: a primitive kind,
// an object (struct or other concrete) type, an interface type, or the
// untyped sentinel. Descriptors are immutable; object and interface
// descriptors capture their reflect.Type once at construction.
type Descriptor struct {
	name  string
	class descClass
	rt    reflect.Type
}

// Untyped returns the descriptor that disables all type checking.
func Untyped() Descriptor {
	return Descriptor{name: untypedName, class: classUntyped}
}

// Primitive returns a descriptor for the named primitive kind. The name is
// not required to be one of the Kind constants; an unrecognized name simply
// never matches any value.
func Primitive(name string) Descriptor {
	return Descriptor{name: name, class: classPrimitive}
}

// Of returns the descriptor for the Go type T. Interface types produce an
// interface descriptor, everything else an object descriptor.
func Of[T any]() Descriptor {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	class := classObject
	if rt.Kind() == reflect.Interface {
		class = classInterface
	}
	return Descriptor{name: rt.String(), class: class, rt: rt}
}

// Name returns the declared type name used in error messages.
func (d Descriptor) Name() string {
	return d.name
}

// IsUntyped reports whether the descriptor is the untyped sentinel.
func (d Descriptor) IsUntyped() bool {
	return d.class == classUntyped
}

// IsObject reports whether the descriptor names a concrete object type.
func (d Descriptor) IsObject() bool {
	return d.class == classObject
}

// IsInterface reports whether the descriptor names an interface type.
func (d Descriptor) IsInterface() bool {
	return d.class == classInterface
}

// allows is the type-membership predicate applied by every mutation.
func (d Descriptor) allows(v any) bool {
	switch d.class {
	case classUntyped:
		return true
	case classPrimitive:
		pred, ok := kindPredicates[d.name]
		return ok && pred(v)
	default:
		rt := reflect.TypeOf(v)
		if rt == nil {
			return false
		}
		return rt == d.rt || rt.AssignableTo(d.rt)
	}
}

// compatibleWith reports whether a collection declared as other may be merged
// into a collection declared as d. The test runs at the declared-type level
// only; it never inspects actual elements:
//
//  1. an untyped destination accepts anything;
//  2. between object/interface descriptors: an interface destination accepts
//     sources implementing it, an interface source is accepted by
//     destinations implementing it, and a source assignable to the
//     destination type is accepted;
//  3. otherwise the declared names must be exactly equal.
func (d Descriptor) compatibleWith(other Descriptor) bool {
	if d.class == classUntyped {
		return true
	}
	if d.isObjectClass() && other.isObjectClass() {
		if d.class == classInterface && other.rt.Implements(d.rt) {
			return true
		}
		if other.class == classInterface && d.rt.Implements(other.rt) {
			return true
		}
		return other.rt == d.rt || other.rt.AssignableTo(d.rt)
	}
	return d.class == other.class && d.name == other.name
}

func (d Descriptor) isObjectClass() bool {
	return d.class == classObject || d.class == classInterface
}
