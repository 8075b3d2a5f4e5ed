// Package hashmap implements collections.Map as a hash table with separate
// chaining over value.Value keys and values.
//
// The bucket count is chosen by the caller and stays fixed unless Resize is
// called or growth is enabled with WithMaxLoad. A HashMap owns every key and
// value it adopts through Set and destroys each exactly once: on replace
// (old value and the caller's duplicate key), on Remove, Clear and Destroy.
// Values returned by Get and passed to Foreach callbacks are borrowed and are
// only valid until the next mutating call.
//
// A HashMap is not safe for concurrent use; callers must synchronize access.
package hashmap

import (
	"github.com/tuannh982/valmap/utils/collections"
	"github.com/tuannh982/valmap/value"
)

// HashMap is created with New or NewWithConfig. The zero value holds no table
// and behaves like a destroyed map.
type HashMap struct {
	table *hashTable
}

var destroyedTable = &hashTable{destroyed: true}

func (m *HashMap) tbl() *hashTable {
	if m.table == nil {
		return destroyedTable
	}
	return m.table
}

var _ collections.Map = (*HashMap)(nil)

// New creates a map with bucketCount buckets. A zero bucket count fails with
// ErrInvalidConfiguration.
func New(bucketCount uint32, opts ...Option) (*HashMap, error) {
	cfg := Config{BucketCount: bucketCount}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg Config) (*HashMap, error) {
	table, err := newHashTable(cfg)
	if err != nil {
		return nil, err
	}
	return &HashMap{table: table}, nil
}

// Get returns a borrowed reference to the value stored under key.
func (m *HashMap) Get(key value.Value) (value.Value, bool) {
	return m.tbl().get(key)
}

func (m *HashMap) Contains(key value.Value) bool {
	_, ok := m.tbl().get(key)
	return ok
}

// Set stores val under key and takes ownership of both. If an equal key is
// already present, the stored key is kept, key is destroyed and the previous
// value is destroyed. On error neither key nor val is adopted.
func (m *HashMap) Set(key, val value.Value) error {
	return m.tbl().set(key, val)
}

// Remove deletes the entry for key, destroying its key and value. It reports
// false, with a nil error, when key is absent.
func (m *HashMap) Remove(key value.Value) (bool, error) {
	return m.tbl().remove(key)
}

func (m *HashMap) Clear() error {
	return m.tbl().clear()
}

func (m *HashMap) Size() uint32 {
	return m.tbl().size()
}

// Hashcode is derived from content only, so maps with equal content hash
// alike regardless of bucket count or insertion order.
func (m *HashMap) Hashcode() uint32 {
	return m.tbl().hashcode()
}

// Foreach calls cb for each entry until cb returns false, and reports whether
// every entry was visited. cb must not modify the map.
func (m *HashMap) Foreach(cb collections.ForeachCallback) bool {
	return m.tbl().foreach(cb)
}

func (m *HashMap) Keys() []value.Value {
	return collections.Keys(m)
}

func (m *HashMap) Values() []value.Value {
	return collections.Values(m)
}

// Resize rehashes every entry into bucketCount buckets. Like any mutation it
// invalidates references obtained from Get or Foreach before the call, and it
// changes iteration order. On error the map is unchanged.
func (m *HashMap) Resize(bucketCount uint32) error {
	return m.tbl().resize(bucketCount)
}

func (m *HashMap) BucketCount() uint32 {
	return uint32(len(m.tbl().buckets))
}

// LoadFactor is the average number of entries per bucket.
func (m *HashMap) LoadFactor() float64 {
	t := m.tbl()
	if len(t.buckets) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.buckets))
}

func (m *HashMap) Stats() Stats {
	return m.tbl().stats()
}

// Destroy releases every entry and the bucket array. The map must not be used
// afterwards; mutating calls return ErrDestroyed.
func (m *HashMap) Destroy() {
	m.tbl().destroy()
}

func (m *HashMap) Hash() uint32 {
	return m.Hashcode()
}

// Equals reports whether other is a map with equal content, whatever its
// backing strategy.
func (m *HashMap) Equals(other value.Value) bool {
	o, ok := other.(collections.Map)
	if !ok {
		return false
	}
	if value.Identical(m, o) {
		return true
	}
	return collections.Equal(m, o)
}

func (m *HashMap) String() string {
	return collections.Format(m)
}
