package hashmap

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/valmap/value"
	"github.com/tuannh982/valmap/value/valuetest"
)

func plainAlloc(key, val value.Value) (*entry, error) {
	return &entry{key: key, val: val}, nil
}

func chainKeys(b *bucket) []value.Value {
	arr := make([]value.Value, 0)
	b.each(func(e *entry) bool {
		arr = append(arr, e.key)
		return true
	})
	return arr
}

func TestBucketInsertAtHead(t *testing.T) {
	b := &bucket{}
	for _, k := range []string{"a", "b", "c"} {
		inserted, err := b.insertOrReplace(valuetest.Collider(k), value.String(k), plainAlloc)
		require.Nil(t, err)
		require.True(t, inserted)
	}
	require.Equal(t, uint32(3), b.len())
	require.Equal(t, []value.Value{
		valuetest.Collider("c"),
		valuetest.Collider("b"),
		valuetest.Collider("a"),
	}, chainKeys(b))
	e := b.find(valuetest.Collider("b"))
	require.NotNil(t, e)
	require.Equal(t, value.String("b"), e.val)
	require.Nil(t, b.find(valuetest.Collider("d")))
}

func TestBucketReplaceKeepsStoredKey(t *testing.T) {
	tr := valuetest.NewTracker()
	b := &bucket{}
	k1, v1 := tr.Int(1), tr.Int(100)
	k2, v2 := tr.Int(1), tr.Int(200)
	_, err := b.insertOrReplace(k1, v1, plainAlloc)
	require.Nil(t, err)
	inserted, err := b.insertOrReplace(k2, v2, plainAlloc)
	require.Nil(t, err)
	require.False(t, inserted)
	require.Equal(t, uint32(1), b.len())
	require.Same(t, k1, b.head.key)
	require.Same(t, v2, b.head.val)
	require.True(t, k2.IsDestroyed())
	require.True(t, v1.IsDestroyed())
	require.Equal(t, 2, tr.Destroyed())
}

func TestBucketReplaceWithIdenticalObjects(t *testing.T) {
	tr := valuetest.NewTracker()
	b := &bucket{}
	k, v := tr.Int(1), tr.Int(2)
	_, err := b.insertOrReplace(k, v, plainAlloc)
	require.Nil(t, err)
	_, err = b.insertOrReplace(k, v, plainAlloc)
	require.Nil(t, err)
	require.Equal(t, 0, tr.Destroyed())
	require.Equal(t, uint32(1), b.clear())
	require.Equal(t, 2, tr.Destroyed())
}

func TestBucketAllocFailureLeavesChain(t *testing.T) {
	tr := valuetest.NewTracker()
	b := &bucket{}
	_, err := b.insertOrReplace(tr.Int(1), tr.Int(1), plainAlloc)
	require.Nil(t, err)
	failing := func(key, val value.Value) (*entry, error) {
		return nil, errors.New("no memory")
	}
	k, v := tr.Int(2), tr.Int(2)
	inserted, err := b.insertOrReplace(k, v, failing)
	require.NotNil(t, err)
	require.False(t, inserted)
	require.Equal(t, uint32(1), b.len())
	require.False(t, k.IsDestroyed())
	require.False(t, v.IsDestroyed())
	require.Equal(t, 0, tr.Destroyed())
}

func TestBucketRemove(t *testing.T) {
	tr := valuetest.NewTracker()
	b := &bucket{}
	vals := make([]*valuetest.Counted, 0)
	for i := int64(0); i < 4; i++ {
		v := tr.Int(i * 10)
		vals = append(vals, v)
		_, err := b.insertOrReplace(tr.Int(i), v, plainAlloc)
		require.Nil(t, err)
	}
	// chain order is 3, 2, 1, 0
	require.True(t, b.remove(tr.Int(2)))
	require.True(t, vals[2].IsDestroyed())
	require.True(t, b.remove(tr.Int(3)))
	require.True(t, b.remove(tr.Int(0)))
	require.False(t, b.remove(tr.Int(0)))
	require.False(t, b.remove(tr.Int(7)))
	require.Equal(t, uint32(1), b.len())
	require.Equal(t, 6, tr.Destroyed())
	require.Same(t, vals[1], b.head.val)
}

func TestBucketClear(t *testing.T) {
	tr := valuetest.NewTracker()
	b := &bucket{}
	for i := int64(0); i < 5; i++ {
		_, err := b.insertOrReplace(tr.Int(i), tr.Int(i), plainAlloc)
		require.Nil(t, err)
	}
	require.Equal(t, uint32(5), b.clear())
	require.Nil(t, b.head)
	require.Equal(t, 10, tr.Destroyed())
	require.Equal(t, uint32(0), b.clear())
}

func TestBucketEachStops(t *testing.T) {
	b := &bucket{}
	for _, k := range []string{"a", "b", "c"} {
		_, err := b.insertOrReplace(valuetest.Collider(k), value.Nil{}, plainAlloc)
		require.Nil(t, err)
	}
	visited := 0
	complete := b.each(func(e *entry) bool {
		visited++
		return visited < 2
	})
	require.False(t, complete)
	require.Equal(t, 2, visited)
}
