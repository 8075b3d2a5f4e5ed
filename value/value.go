// Package value defines the polymorphic Value contract stored by the maps in
// this module, together with a small set of concrete variants.
package value

import (
	"hash/fnv"
	"reflect"
)

// Value is a dynamically-typed unit of data that can be used as a map key or
// map value.
//
// Implementations must keep Hash and Equals consistent: a.Equals(b) implies
// a.Hash() == b.Hash(). Both must depend only on content. Destroy releases
// whatever the value holds; an owner calls it exactly once.
type Value interface {
	Hash() uint32
	Equals(other Value) bool
	Destroy()
	String() string
}

// Identical reports whether a and b are the same object, as opposed to two
// equal objects. Uncomparable dynamic types are never identical.
func Identical(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func hashBytes(b []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(b)
	return h.Sum32()
}
