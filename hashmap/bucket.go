package hashmap

import "github.com/tuannh982/valmap/value"

type entry struct {
	key  value.Value
	val  value.Value
	next *entry
}

// bucket is a chain of entries whose keys share a bucket index. No two
// entries of a bucket have equal keys.
type bucket struct {
	head *entry
}

// entryAllocator hands out a new entry for key and val, or fails without
// side effects.
type entryAllocator func(key, val value.Value) (*entry, error)

func (b *bucket) find(key value.Value) *entry {
	for e := b.head; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// insertOrReplace stores val under key. When an equal key is already stored,
// the stored key is kept and the caller's key is destroyed, and the old value
// is destroyed and replaced. Otherwise a new entry is linked at the head.
// If alloc fails nothing is linked and nothing is destroyed.
func (b *bucket) insertOrReplace(key, val value.Value, alloc entryAllocator) (bool, error) {
	if e := b.find(key); e != nil {
		if !value.Identical(e.val, val) {
			e.val.Destroy()
		}
		e.val = val
		if !value.Identical(e.key, key) {
			key.Destroy()
		}
		return false, nil
	}
	e, err := alloc(key, val)
	if err != nil {
		return false, err
	}
	b.push(e)
	return true, nil
}

func (b *bucket) remove(key value.Value) bool {
	var prev *entry
	for e := b.head; e != nil; prev, e = e, e.next {
		if !e.key.Equals(key) {
			continue
		}
		if prev == nil {
			b.head = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		e.key.Destroy()
		e.val.Destroy()
		return true
	}
	return false
}

// clear destroys every entry and returns how many were destroyed.
func (b *bucket) clear() uint32 {
	var n uint32
	for e := b.head; e != nil; {
		next := e.next
		e.key.Destroy()
		e.val.Destroy()
		e.next = nil
		e = next
		n++
	}
	b.head = nil
	return n
}

// pop unlinks the head entry without destroying it.
func (b *bucket) pop() *entry {
	e := b.head
	if e != nil {
		b.head = e.next
		e.next = nil
	}
	return e
}

func (b *bucket) push(e *entry) {
	e.next = b.head
	b.head = e
}

func (b *bucket) len() uint32 {
	var n uint32
	for e := b.head; e != nil; e = e.next {
		n++
	}
	return n
}

// each calls fn for every entry in chain order until fn returns false.
func (b *bucket) each(fn func(e *entry) bool) bool {
	for e := b.head; e != nil; e = e.next {
		if !fn(e) {
			return false
		}
	}
	return true
}
