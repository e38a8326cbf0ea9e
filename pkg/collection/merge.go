package collection

// View is the non-generic surface a collection presents to Merge and Replace
// on another collection, independent of its element type parameter.
type View interface {
	// Name returns the concrete collection name for error messages.
	Name() string

	// Descriptor returns the declared element type.
	Descriptor() Descriptor

	// Each calls fn for every (key, value) pair in insertion order until fn
	// returns false. Values are presented as any.
	Each(fn func(Key, any) bool)
}

// Each implements View. Mutating the collection during iteration is allowed;
// entries appended while iterating are not visited.
func (c *Collection[T]) Each(fn func(Key, any) bool) {
	for _, e := range c.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Merge appends every element of other to this collection, ignoring other's
// keys: each element is auto-indexed through the normal Add validation path.
// Before any element moves, the declared element types are checked for
// compatibility (Descriptor.compatibleWith); an incompatible pair returns an
// error wrapping ErrIncompatibleTypes and leaves both collections unchanged.
//
// Compatibility is decided from the declared types alone, never from other's
// actual elements. A source whose declared type is broader than its contents
// guarantee can therefore pass the check and still fail element validation
// mid-merge, leaving the elements accepted so far in place.
func (c *Collection[T]) Merge(other View) error {
	if !c.desc.compatibleWith(other.Descriptor()) {
		return incompatibleTypes(c, other)
	}
	var err error
	other.Each(func(_ Key, v any) bool {
		tv, ok := v.(T)
		if !ok {
			err = invalidElement(c.Name(), c.desc.Name(), v)
			return false
		}
		err = c.Add(tv)
		return err == nil
	})
	return err
}

// Replace combines other into this collection preserving other's keys:
// string-keyed entries overwrite matching keys via Set, integer-indexed
// entries are appended via Add. The same declared-type compatibility check
// as Merge applies.
func (c *Collection[T]) Replace(other View) error {
	if !c.desc.compatibleWith(other.Descriptor()) {
		return incompatibleTypes(c, other)
	}
	var err error
	other.Each(func(k Key, v any) bool {
		tv, ok := v.(T)
		if !ok {
			err = invalidElement(c.Name(), c.desc.Name(), v)
			return false
		}
		if k.IsIndex() {
			err = c.Add(tv)
		} else {
			err = c.Set(k, tv)
		}
		return err == nil
	})
	return err
}
