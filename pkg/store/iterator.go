package store

import (
	"github.com/edgekv/schemakv/pkg/db"
	"github.com/edgekv/schemakv/pkg/schema"
)

// Iterator is a lazy, single-pass traversal of a store in the order fixed
// at construction. It observes a snapshot of the engine taken when the
// iterator was created.
//
// Decoding is per item: a key or value that no longer decodes under the
// schema yields its error from Key or Value while Next keeps advancing, so
// one corrupt entry never hides the rest of the stream. An engine failure
// ends the stream instead; Err reports it once Next returns false.
//
// The iterator holds the engine directly, not the store; it must be closed
// and must not be used after the engine is closed.
type Iterator[K, V any] struct {
	iter   db.Iterator
	schema schema.Schema[K, V]
}

// Next advances to the next entry, returning false when the stream is
// exhausted or the engine failed.
func (it *Iterator[K, V]) Next() bool {
	return it.iter.Next()
}

// Key decodes the current key. A failure is a schema.Error for this entry
// only.
func (it *Iterator[K, V]) Key() (K, error) {
	key, err := it.schema.DecodeKey(it.iter.Key())
	if err != nil {
		var zero K
		return zero, err
	}
	return key, nil
}

// Value decodes the current value. A failure is a schema.Error for this
// entry only.
func (it *Iterator[K, V]) Value() (V, error) {
	var zero V
	raw, err := it.iter.Value()
	if err != nil {
		return zero, newEngineError(it.schema.Name(), err)
	}
	value, err := it.schema.DecodeValue(raw)
	if err != nil {
		return zero, err
	}
	return value, nil
}

// Err returns the engine failure that terminated the stream, if any.
func (it *Iterator[K, V]) Err() error {
	if err := it.iter.Err(); err != nil {
		return newEngineError(it.schema.Name(), err)
	}
	return nil
}

// Close releases the engine-side iterator resources.
func (it *Iterator[K, V]) Close() error {
	return it.iter.Close()
}
