// Package collection provides Collection, a generic ordered container that
// maps string or integer keys to values of a declared element type, preserving
// insertion order. Every mutation validates the value against the collection's
// Descriptor; two collections can be combined with Merge or Replace only when
// their declared element types are compatible under the subsumption rules
// documented on Descriptor.
//
// The untyped variant (NewUntyped) performs no validation at all and accepts
// merges from any source.
package collection
