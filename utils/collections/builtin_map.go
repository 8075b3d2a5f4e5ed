package collections

import (
	"github.com/pkg/errors"
	"github.com/tuannh982/valmap/value"
)

type builtinEntry struct {
	key  value.Value
	val  value.Value
	next *builtinEntry
}

// builtinMap keys Go's built-in map by the full 32-bit hash and chains the
// entries whose hashes collide.
type builtinMap struct {
	entries   map[uint32]*builtinEntry
	size      uint32
	destroyed bool
}

// NewBuiltinMap returns a Map backed by Go's built-in map. It follows the same
// ownership rules as the hashtable backed map, but its iteration order is
// randomized by the runtime.
func NewBuiltinMap() Map {
	return &builtinMap{
		entries: make(map[uint32]*builtinEntry),
	}
}

func (m *builtinMap) lookup(key value.Value) *builtinEntry {
	if key == nil {
		return nil
	}
	for e := m.entries[key.Hash()]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

func (m *builtinMap) Get(key value.Value) (value.Value, bool) {
	if e := m.lookup(key); e != nil {
		return e.val, true
	}
	return nil, false
}

func (m *builtinMap) Contains(key value.Value) bool {
	return m.lookup(key) != nil
}

func (m *builtinMap) Set(key, val value.Value) error {
	if m.destroyed {
		return ErrDestroyed
	}
	if key == nil || val == nil {
		return errors.Wrap(ErrNilValue, "set")
	}
	if e := m.lookup(key); e != nil {
		if !value.Identical(e.val, val) {
			e.val.Destroy()
		}
		e.val = val
		if !value.Identical(e.key, key) {
			key.Destroy()
		}
		return nil
	}
	h := key.Hash()
	m.entries[h] = &builtinEntry{
		key:  key,
		val:  val,
		next: m.entries[h],
	}
	m.size++
	return nil
}

func (m *builtinMap) Remove(key value.Value) (bool, error) {
	if m.destroyed {
		return false, ErrDestroyed
	}
	if key == nil {
		return false, nil
	}
	h := key.Hash()
	var prev *builtinEntry
	for e := m.entries[h]; e != nil; prev, e = e, e.next {
		if !e.key.Equals(key) {
			continue
		}
		if prev == nil {
			if e.next == nil {
				delete(m.entries, h)
			} else {
				m.entries[h] = e.next
			}
		} else {
			prev.next = e.next
		}
		e.key.Destroy()
		e.val.Destroy()
		m.size--
		return true, nil
	}
	return false, nil
}

func (m *builtinMap) Clear() error {
	if m.destroyed {
		return ErrDestroyed
	}
	for h, head := range m.entries {
		for e := head; e != nil; e = e.next {
			e.key.Destroy()
			e.val.Destroy()
		}
		delete(m.entries, h)
	}
	m.size = 0
	return nil
}

func (m *builtinMap) Size() uint32 {
	return m.size
}

func (m *builtinMap) Hashcode() uint32 {
	return Hashcode(m)
}

func (m *builtinMap) Foreach(cb ForeachCallback) bool {
	for _, head := range m.entries {
		for e := head; e != nil; e = e.next {
			if !cb(e.key, e.val) {
				return false
			}
		}
	}
	return true
}

func (m *builtinMap) Keys() []value.Value {
	return Keys(m)
}

func (m *builtinMap) Values() []value.Value {
	return Values(m)
}

func (m *builtinMap) Hash() uint32 {
	return m.Hashcode()
}

func (m *builtinMap) Equals(other value.Value) bool {
	o, ok := other.(Map)
	return ok && Equal(m, o)
}

func (m *builtinMap) Destroy() {
	if m.destroyed {
		return
	}
	_ = m.Clear()
	m.entries = nil
	m.destroyed = true
}

func (m *builtinMap) String() string {
	return Format(m)
}
