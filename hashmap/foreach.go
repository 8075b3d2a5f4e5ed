package hashmap

import "github.com/tuannh982/valmap/utils/collections"

// foreach walks the buckets in index order and each chain from its head.
// It returns false if cb stopped the walk.
func (t *hashTable) foreach(cb collections.ForeachCallback) bool {
	for i := range t.buckets {
		complete := t.buckets[i].each(func(e *entry) bool {
			return cb(e.key, e.val)
		})
		if !complete {
			return false
		}
	}
	return true
}
