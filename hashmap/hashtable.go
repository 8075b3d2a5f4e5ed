package hashmap

import (
	"github.com/pkg/errors"
	"github.com/tuannh982/valmap/utils/collections"
	"github.com/tuannh982/valmap/utils/math"
	"github.com/tuannh982/valmap/value"

	log "github.com/sirupsen/logrus"
)

// Stats describes the layout of a hash table.
type Stats struct {
	Buckets     uint32
	Entries     uint32
	UsedBuckets uint32
	MaxChain    uint32
}

type hashTable struct {
	buckets    []bucket
	count      uint32
	maxLoad    uint32
	maxEntries uint32
	destroyed  bool
	log        *log.Entry
}

func allocBuckets(n uint32) ([]bucket, error) {
	if n == 0 {
		return nil, errors.Wrap(collections.ErrInvalidConfiguration, "bucket count must be positive")
	}
	if n > MaxBucketCount {
		return nil, errors.Wrapf(collections.ErrAllocationFailure, "bucket count %d exceeds %d", n, MaxBucketCount)
	}
	return make([]bucket, n), nil
}

func newHashTable(cfg Config) (*hashTable, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	buckets, err := allocBuckets(cfg.BucketCount)
	if err != nil {
		logger.WithError(err).Warn("could not create hash table")
		return nil, err
	}
	logger.WithField("buckets", cfg.BucketCount).Debug("hash table created")
	return &hashTable{
		buckets:    buckets,
		maxLoad:    cfg.MaxLoad,
		maxEntries: cfg.MaxEntries,
		log:        logger,
	}, nil
}

func (t *hashTable) bucketFor(key value.Value) *bucket {
	return &t.buckets[key.Hash()%uint32(len(t.buckets))]
}

func (t *hashTable) newEntry(key, val value.Value) (*entry, error) {
	if t.maxEntries > 0 && t.count >= t.maxEntries {
		t.log.WithField("limit", t.maxEntries).Warn("entry limit reached")
		return nil, errors.Wrapf(collections.ErrAllocationFailure, "entry limit %d reached", t.maxEntries)
	}
	return &entry{key: key, val: val}, nil
}

func (t *hashTable) get(key value.Value) (value.Value, bool) {
	if key == nil || t.destroyed {
		return nil, false
	}
	if e := t.bucketFor(key).find(key); e != nil {
		return e.val, true
	}
	return nil, false
}

func (t *hashTable) set(key, val value.Value) error {
	if t.destroyed {
		return collections.ErrDestroyed
	}
	if key == nil || val == nil {
		return errors.Wrap(collections.ErrNilValue, "set")
	}
	inserted, err := t.bucketFor(key).insertOrReplace(key, val, t.newEntry)
	if err != nil {
		return err
	}
	if inserted {
		t.count++
		t.maybeGrow()
	}
	return nil
}

func (t *hashTable) remove(key value.Value) (bool, error) {
	if t.destroyed {
		return false, collections.ErrDestroyed
	}
	if key == nil {
		return false, nil
	}
	if !t.bucketFor(key).remove(key) {
		return false, nil
	}
	t.count--
	return true, nil
}

func (t *hashTable) clear() error {
	if t.destroyed {
		return collections.ErrDestroyed
	}
	var n uint32
	for i := range t.buckets {
		n += t.buckets[i].clear()
	}
	t.count = 0
	t.log.WithField("entries", n).Debug("hash table cleared")
	return nil
}

func (t *hashTable) size() uint32 {
	return t.count
}

func (t *hashTable) hashcode() uint32 {
	return collections.HashEntries(t.foreach)
}

// resize relinks every entry into a new array of n buckets. On failure the
// table is left untouched.
func (t *hashTable) resize(n uint32) error {
	if t.destroyed {
		return collections.ErrDestroyed
	}
	buckets, err := allocBuckets(n)
	if err != nil {
		t.log.WithError(err).Warn("could not resize hash table")
		return err
	}
	for i := range t.buckets {
		for e := t.buckets[i].pop(); e != nil; e = t.buckets[i].pop() {
			buckets[e.key.Hash()%n].push(e)
		}
	}
	t.log.WithFields(log.Fields{"from": len(t.buckets), "to": n}).Debug("hash table resized")
	t.buckets = buckets
	return nil
}

func (t *hashTable) maybeGrow() {
	if t.maxLoad == 0 || uint64(t.count) <= uint64(t.maxLoad)*uint64(len(t.buckets)) {
		return
	}
	current := uint32(len(t.buckets))
	if current >= MaxBucketCount {
		return
	}
	target := uint64(2) * uint64(math.DivCeil(t.count, t.maxLoad))
	n := uint32(math.MinOf(target, uint64(MaxBucketCount)))
	if n <= current {
		return
	}
	_ = t.resize(n)
}

func (t *hashTable) stats() Stats {
	s := Stats{
		Buckets: uint32(len(t.buckets)),
		Entries: t.count,
	}
	for i := range t.buckets {
		l := t.buckets[i].len()
		if l > 0 {
			s.UsedBuckets++
		}
		if l > s.MaxChain {
			s.MaxChain = l
		}
	}
	return s
}

func (t *hashTable) destroy() {
	if t.destroyed {
		return
	}
	_ = t.clear()
	t.buckets = nil
	t.destroyed = true
	t.log.Debug("hash table destroyed")
}
