package collection

import "strconv"

// Key identifies an entry in a Collection. A key is either an explicit string
// or an integer index. Integer keys are produced automatically by Add but can
// also be chosen by the caller through Set.
//
// The zero Key is the empty string key.
type Key struct {
	str     string
	idx     int
	isIndex bool
}

// StringKey returns the key for the given string.
func StringKey(s string) Key {
	return Key{str: s}
}

// IndexKey returns the key for the given integer index.
func IndexKey(i int) Key {
	return Key{idx: i, isIndex: true}
}

// IsIndex reports whether the key is an integer index.
func (k Key) IsIndex() bool {
	return k.isIndex
}

// Index returns the integer index and true when the key is an index key.
func (k Key) Index() (int, bool) {
	return k.idx, k.isIndex
}

// String returns the string form of the key. Index keys render as their
// decimal representation.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.idx)
	}
	return k.str
}
