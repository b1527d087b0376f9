package pebble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekv/schemakv/pkg/db"
)

func TestIterator(t *testing.T) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store db.KVStore)
	}{
		{
			name: "full_range_iteration",
			fn:   testFullRangeIteration,
		},
		{
			name: "reverse_iteration",
			fn:   testReverseIteration,
		},
		{
			name: "bounded_range_iteration",
			fn:   testBoundedRangeIteration,
		},
		{
			name: "bounded_reverse_iteration",
			fn:   testBoundedReverseIteration,
		},
		{
			name: "iterator_validity",
			fn:   testIteratorValidity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := NewKVStore(Options{})
			require.NoError(t, err)
			defer store.Close() //nolint:errcheck

			tc.fn(t, store)
		})
	}
}

func collectKeys(t *testing.T, iter db.Iterator) []string {
	t.Helper()

	var keys []string
	for iter.Next() {
		_, err := iter.Value()
		require.NoError(t, err)
		keys = append(keys, string(iter.Key()))
	}
	require.NoError(t, iter.Err())
	return keys
}

func testFullRangeIteration(t *testing.T, store db.KVStore) {
	for _, k := range []string{"d", "a", "c", "b"} {
		err := store.Put([]byte(k), []byte("value-"+k))
		require.NoError(t, err)
	}

	iter, err := store.NewIterator(nil, nil, db.Forward)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	// Keys come back in ascending byte order, not insertion order
	assert.Equal(t, []string{"a", "b", "c", "d"}, collectKeys(t, iter))
}

func testReverseIteration(t *testing.T, store db.KVStore) {
	for _, k := range []string{"a", "c", "b"} {
		err := store.Put([]byte(k), []byte("value-"+k))
		require.NoError(t, err)
	}

	iter, err := store.NewIterator(nil, nil, db.Reverse)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	assert.Equal(t, []string{"c", "b", "a"}, collectKeys(t, iter))
}

func testBoundedRangeIteration(t *testing.T, store db.KVStore) {
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		err := store.Put([]byte(k), []byte("value-"+k))
		require.NoError(t, err)
	}

	// [b, e) excludes the upper bound
	iter, err := store.NewIterator([]byte("b"), []byte("e"), db.Forward)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	assert.Equal(t, []string{"b", "c", "d"}, collectKeys(t, iter))
}

func testBoundedReverseIteration(t *testing.T, store db.KVStore) {
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		err := store.Put([]byte(k), []byte("value-"+k))
		require.NoError(t, err)
	}

	iter, err := store.NewIterator([]byte("b"), []byte("e"), db.Reverse)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	assert.Equal(t, []string{"d", "c", "b"}, collectKeys(t, iter))
}

func testIteratorValidity(t *testing.T, store db.KVStore) {
	testData := map[string]string{
		"key1": "value1",
		"key2": "value2",
	}

	for k, v := range testData {
		err := store.Put([]byte(k), []byte(v))
		require.NoError(t, err)
	}

	iter, err := store.NewIterator(nil, nil, db.Forward)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	// Initial state - iterator is not positioned
	assert.False(t, iter.Valid())

	// First Next() should position at first element
	assert.True(t, iter.Next())
	assert.True(t, iter.Valid())

	val, err := iter.Value()
	require.NoError(t, err)
	assert.Contains(t, testData, string(iter.Key()))
	assert.Equal(t, testData[string(iter.Key())], string(val))

	// Should be able to move to second element
	assert.True(t, iter.Next())
	assert.True(t, iter.Valid())

	// No more elements
	assert.False(t, iter.Next())
	assert.False(t, iter.Valid())
	assert.NoError(t, iter.Err())

	// Value() should error when invalid
	_, err = iter.Value()
	assert.ErrorIs(t, err, ErrIteratorInvalid)
}
