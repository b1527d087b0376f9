package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekv/schemakv/pkg/db"
	"github.com/edgekv/schemakv/pkg/db/pebble"
	"github.com/edgekv/schemakv/pkg/schema"
)

func newEngine(t *testing.T) db.KVStore {
	t.Helper()

	kv, err := pebble.NewKVStore(pebble.Options{})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})
	return kv
}

func TestPutGet(t *testing.T) {
	storage := NewStorage(newEngine(t))

	data := []byte("node payload")
	hash, err := storage.Put(data)
	require.NoError(t, err)
	assert.Equal(t, schema.HashData(data), hash)

	stored, found, err := storage.Get(hash)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, data, stored)

	found, err = storage.Has(hash)
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = storage.Get(schema.HashData([]byte("other")))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCommit(t *testing.T) {
	storage := NewStorage(newEngine(t))

	assert.True(t, storage.Root().IsZero())

	pairs := [][2][]byte{
		{[]byte("k1"), []byte("v1")},
		{[]byte("k2"), []byte("v2")},
		{[]byte("k3"), []byte("v3")},
	}

	root, err := storage.Commit(pairs)
	require.NoError(t, err)
	assert.False(t, root.IsZero())
	assert.Equal(t, root, storage.Root())

	// Every leaf is retrievable under its hash
	for _, pair := range pairs {
		leaf := encodeLeaf(pair[0], pair[1])
		found, err := storage.Has(schema.HashData(leaf))
		require.NoError(t, err)
		assert.True(t, found)
	}

	// The root node itself is stored
	found, err := storage.Has(root)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCommitDeterministic(t *testing.T) {
	pairs := [][2][]byte{
		{[]byte("a"), []byte("1")},
		{[]byte("b"), []byte("2")},
	}

	first := NewStorage(newEngine(t))
	second := NewStorage(newEngine(t))

	root1, err := first.Commit(pairs)
	require.NoError(t, err)
	root2, err := second.Commit(pairs)
	require.NoError(t, err)

	assert.Equal(t, root1, root2)

	// Different content, different root
	root3, err := second.Commit([][2][]byte{{[]byte("a"), []byte("changed")}})
	require.NoError(t, err)
	assert.NotEqual(t, root1, root3)
}

func TestCommitEmpty(t *testing.T) {
	storage := NewStorage(newEngine(t))

	pairs := [][2][]byte{{[]byte("k"), []byte("v")}}
	root, err := storage.Commit(pairs)
	require.NoError(t, err)

	// An empty commit leaves the root unchanged
	unchanged, err := storage.Commit(nil)
	require.NoError(t, err)
	assert.Equal(t, root, unchanged)
	assert.Equal(t, root, storage.Root())
}

func TestEncodeLeafFraming(t *testing.T) {
	// ("a", "bc") and ("ab", "c") must not collide
	assert.NotEqual(t,
		schema.HashData(encodeLeaf([]byte("a"), []byte("bc"))),
		schema.HashData(encodeLeaf([]byte("ab"), []byte("c"))),
	)
}
