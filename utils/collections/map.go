package collections

import (
	"strings"

	"github.com/tuannh982/valmap/value"
)

// ForeachCallback is called for every entry visited by Map.Foreach. Returning
// false stops the walk. Key and value are borrowed and must not be destroyed
// or retained past the next mutation of the map.
type ForeachCallback func(key, val value.Value) bool

// Map is an associative container over values. Implementations own the keys
// and values handed to Set and destroy them on replace, remove, clear and
// destroy. A Map is itself a Value, so maps nest.
//
// Implementations are not safe for concurrent use.
type Map interface {
	value.Value
	Get(key value.Value) (value.Value, bool)
	Contains(key value.Value) bool
	Set(key, val value.Value) error
	Remove(key value.Value) (bool, error)
	Clear() error
	Size() uint32
	Hashcode() uint32
	Foreach(cb ForeachCallback) bool
	Keys() []value.Value
	Values() []value.Value
}

// PairHash is the contribution of one entry to a map's hashcode.
func PairHash(key, val value.Value) uint32 {
	return 31*key.Hash() ^ val.Hash()
}

// HashEntries combines every entry visited by foreach so that the result
// depends only on the content, not on insertion order, bucket layout or
// backing strategy.
func HashEntries(foreach func(cb ForeachCallback) bool) uint32 {
	var h uint32
	foreach(func(k, v value.Value) bool {
		h += PairHash(k, v)
		return true
	})
	return h
}

// Hashcode is HashEntries over m.
func Hashcode(m Map) uint32 {
	return HashEntries(m.Foreach)
}

// Equal reports whether a and b hold equal keys mapped to equal values.
func Equal(a, b Map) bool {
	if a.Size() != b.Size() {
		return false
	}
	return a.Foreach(func(k, v value.Value) bool {
		ov, ok := b.Get(k)
		return ok && v.Equals(ov)
	})
}

// Keys returns borrowed references to every key of m, in iteration order.
func Keys(m Map) []value.Value {
	arr := make([]value.Value, 0, m.Size())
	m.Foreach(func(k, _ value.Value) bool {
		arr = append(arr, k)
		return true
	})
	return arr
}

// Values returns borrowed references to every value of m, in iteration order.
func Values(m Map) []value.Value {
	arr := make([]value.Value, 0, m.Size())
	m.Foreach(func(_, v value.Value) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}

// Format renders m as {k:v, ...} in iteration order.
func Format(m Map) string {
	s := make([]string, 0, m.Size())
	m.Foreach(func(k, v value.Value) bool {
		s = append(s, k.String()+":"+v.String())
		return true
	})
	return "{" + strings.Join(s, ", ") + "}"
}
