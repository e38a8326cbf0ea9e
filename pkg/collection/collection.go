package collection

import (
	"fmt"
	"iter"
	"reflect"
)

// Pair is a (key, value) seed for FromPairs.
type Pair[T any] struct {
	Key   Key
	Value T
}

// entry is one stored key/value pair.
type entry[T any] struct {
	key   Key
	value T
}

// Collection is an ordered container mapping keys to values of type T,
// validated against a declared element Descriptor. Insertion order is
// preserved for keys and iteration. Collections are not safe for concurrent
// use; callers needing shared access must synchronize externally.
type Collection[T any] struct {
	desc    Descriptor
	entries []entry[T]
	index   map[Key]int
	next    int
}

// New returns an empty collection enforcing the given descriptor.
func New[T any](desc Descriptor) *Collection[T] {
	return &Collection[T]{
		desc:  desc,
		index: make(map[Key]int),
	}
}

// NewUntyped returns the explicitly unchecked collection variant: it accepts
// any value and merges from any source.
func NewUntyped() *Collection[any] {
	return New[any](Untyped())
}

// From builds a collection from a sequence of values, auto-keyed in order.
// Each value passes through the same validated Add path as later mutation,
// so a seed value that violates the descriptor fails identically.
func From[T any](desc Descriptor, values ...T) (*Collection[T], error) {
	c := New[T](desc)
	for _, v := range values {
		if err := c.Add(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FromPairs builds a collection from ordered (key, value) pairs, each
// inserted through the validated Set path.
func FromPairs[T any](desc Descriptor, pairs []Pair[T]) (*Collection[T], error) {
	c := New[T](desc)
	for _, p := range pairs {
		if err := c.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Name returns the concrete collection name used in error messages.
func (c *Collection[T]) Name() string {
	return fmt.Sprintf("Collection[%s]", c.desc.Name())
}

// Descriptor returns the declared element type descriptor.
func (c *Collection[T]) Descriptor() Descriptor {
	return c.desc
}

// Len returns the number of stored elements.
func (c *Collection[T]) Len() int {
	return len(c.entries)
}

// Add validates the value against the descriptor and appends it at the next
// auto-assigned index. Indexes are monotonic and never reused after removal.
// Returns an error wrapping ErrInvalidElement when validation fails.
func (c *Collection[T]) Add(v T) error {
	if err := c.check(v); err != nil {
		return err
	}
	c.store(IndexKey(c.next), v)
	c.next++
	return nil
}

// Set validates the value and inserts or overwrites the entry at key. An
// explicit integer key at or beyond the auto-index counter advances the
// counter past it, so Add never collides with a caller-chosen index.
func (c *Collection[T]) Set(key Key, v T) error {
	if err := c.check(v); err != nil {
		return err
	}
	c.store(key, v)
	if i, ok := key.Index(); ok && i >= c.next {
		c.next = i + 1
	}
	return nil
}

// Remove deletes the entry at key and returns its value. An absent key is a
// no-op reported as (zero, false); Remove never errors.
func (c *Collection[T]) Remove(key Key) (T, bool) {
	pos, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	v := c.entries[pos].value
	c.entries = append(c.entries[:pos], c.entries[pos+1:]...)
	delete(c.index, key)
	for i := pos; i < len(c.entries); i++ {
		c.index[c.entries[i].key] = i
	}
	return v, true
}

// RemoveElement removes the first entry whose value is identical to v (see
// Contains for the identity rules) and reports whether a match was found.
// At most one entry is removed; no match leaves the collection unchanged.
func (c *Collection[T]) RemoveElement(v T) bool {
	for _, e := range c.entries {
		if identical(e.value, v) {
			c.Remove(e.key)
			return true
		}
	}
	return false
}

// Get returns the value at key, or (zero, false) when the key is absent.
func (c *Collection[T]) Get(key Key) (T, bool) {
	pos, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.entries[pos].value, true
}

// ContainsKey reports whether an entry exists at key.
func (c *Collection[T]) ContainsKey(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Contains reports whether the collection holds a value identical to v.
// Identity is strict: comparable values match by equality on the same
// dynamic type; pointers, maps, slices, channels and functions match by
// reference, never by structural equality.
func (c *Collection[T]) Contains(v T) bool {
	for _, e := range c.entries {
		if identical(e.value, v) {
			return true
		}
	}
	return false
}

// All iterates the collection's (key, value) pairs in insertion order.
func (c *Collection[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for _, e := range c.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (c *Collection[T]) Keys() []Key {
	keys := make([]Key, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

// Values returns the values in insertion order.
func (c *Collection[T]) Values() []T {
	values := make([]T, len(c.entries))
	for i, e := range c.entries {
		values[i] = e.value
	}
	return values
}

// check applies the type-membership predicate to v.
func (c *Collection[T]) check(v T) error {
	if c.desc.allows(v) {
		return nil
	}
	return invalidElement(c.Name(), c.desc.Name(), v)
}

// store inserts or overwrites without validation or counter bookkeeping.
func (c *Collection[T]) store(key Key, v T) {
	if pos, ok := c.index[key]; ok {
		c.entries[pos].value = v
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry[T]{key: key, value: v})
}

// identical implements strict equality: same dynamic type, then value
// equality for comparable kinds and reference identity for pointer-shaped
// kinds. Non-comparable values of value kinds (e.g. structs containing
// slices) never match.
func identical(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Len() == vb.Len() && (va.Len() == 0 || va.Pointer() == vb.Pointer())
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
