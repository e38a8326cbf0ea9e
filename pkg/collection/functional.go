package collection

import "sort"

// Filter returns a new collection with the same descriptor containing only
// the entries for which pred holds, preserving their original keys and
// order. The source collection is never mutated. Values were validated on
// insertion, so the copy bypasses re-validation.
func (c *Collection[T]) Filter(pred func(value T, key Key) bool) *Collection[T] {
	out := New[T](c.desc)
	for _, e := range c.entries {
		if pred(e.value, e.key) {
			out.store(e.key, e.value)
			if i, ok := e.key.Index(); ok && i >= out.next {
				out.next = i + 1
			}
		}
	}
	return out
}

// Sort reorders the collection in place under the given less function and
// returns the same collection. The sort is stable, so elements that compare
// equal keep their insertion order. Keys travel with their values.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	sort.SliceStable(c.entries, func(i, j int) bool {
		return less(c.entries[i].value, c.entries[j].value)
	})
	for i, e := range c.entries {
		c.index[e.key] = i
	}
	return c
}

// Map returns a plain ordered slice of transform applied to each value in
// insertion order. The result is untyped because the transform may change
// the element shape.
func (c *Collection[T]) Map(transform func(T) any) []any {
	out := make([]any, len(c.entries))
	for i, e := range c.entries {
		out[i] = transform(e.value)
	}
	return out
}

// First returns the first element in iteration order, or (zero, false) when
// the collection is empty.
func (c *Collection[T]) First() (T, bool) {
	if len(c.entries) == 0 {
		var zero T
		return zero, false
	}
	return c.entries[0].value, true
}

// FindFirst returns the first element for which pred holds, or (zero, false)
// when nothing matches. Equivalent to First on Filter(pred) without building
// the intermediate collection.
func (c *Collection[T]) FindFirst(pred func(value T, key Key) bool) (T, bool) {
	for _, e := range c.entries {
		if pred(e.value, e.key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}
