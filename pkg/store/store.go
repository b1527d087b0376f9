// Package store is the typed facade over an ordered byte key-value engine.
// A Store binds one schema to a shared engine handle: every operation
// encodes its inputs through the schema's codecs, delegates to the engine
// and decodes outputs on the way back, so each byte sequence that reaches
// the engine is the output of some codec and each value handed back to the
// caller round-tripped through the same schema.
package store

import (
	"errors"

	"github.com/edgekv/schemakv/pkg/db"
	"github.com/edgekv/schemakv/pkg/schema"
)

// DBStats carries engine statistics exposed through the facade.
type DBStats struct {
	// SizeOnDisk is the engine's disk footprint in bytes, best effort;
	// 0 when the engine cannot report it.
	SizeOnDisk uint64
}

// Store is a typed view of one schema over an engine. The engine handle is
// shared: multiple stores over different schemas may hold the same engine,
// coordinated only by the engine's own guarantees. Store keeps no locks and
// no state beyond the binding, so it is safe for concurrent use whenever
// the engine is.
type Store[K, V any] struct {
	db     db.KVStore
	schema schema.Schema[K, V]
}

func New[K, V any](kv db.KVStore, s schema.Schema[K, V]) *Store[K, V] {
	return &Store[K, V]{db: kv, schema: s}
}

// Schema returns the schema this store is bound to.
func (s *Store[K, V]) Schema() schema.Schema[K, V] {
	return s.schema
}

// Put writes value under key, overwriting any existing value.
func (s *Store[K, V]) Put(key K, value V) error {
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	v, err := s.schema.EncodeValue(value)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	if err := s.db.Put(k, v); err != nil {
		return newEngineError(s.schema.Name(), err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an
// error.
func (s *Store[K, V]) Delete(key K) error {
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	if err := s.db.Delete(k); err != nil {
		return newEngineError(s.schema.Name(), err)
	}
	return nil
}

// Merge submits value to the engine's merge combiner for key. The combiner
// is a property of the engine; the store only encodes and forwards.
func (s *Store[K, V]) Merge(key K, value V) error {
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	v, err := s.schema.EncodeValue(value)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	if err := s.db.Merge(k, v); err != nil {
		return newEngineError(s.schema.Name(), err)
	}
	return nil
}

// Get reads the value stored under key. found is false when the key is
// absent; absence is not an error. A value that no longer decodes under
// the schema is an error, not an absence.
func (s *Store[K, V]) Get(key K) (value V, found bool, err error) {
	var zero V
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return zero, false, newSchemaError(s.schema.Name(), err)
	}

	raw, err := s.db.Get(k)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return zero, false, nil
		}
		return zero, false, newEngineError(s.schema.Name(), err)
	}

	value, err = s.schema.DecodeValue(raw)
	if err != nil {
		return zero, false, newSchemaError(s.schema.Name(), err)
	}
	return value, true, nil
}

// Contains reports whether key exists, without decoding the value.
func (s *Store[K, V]) Contains(key K) (bool, error) {
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return false, newSchemaError(s.schema.Name(), err)
	}
	found, err := s.db.Has(k)
	if err != nil {
		return false, newEngineError(s.schema.Name(), err)
	}
	return found, nil
}

// Iterator traverses the store in the order fixed by mode. The seek key,
// when the mode carries one, is encoded once here; iteration holds only
// encoded bytes afterwards.
func (s *Store[K, V]) Iterator(mode IteratorMode[K]) (*Iterator[K, V], error) {
	var (
		start, end []byte
		direction  db.Direction
	)

	switch mode.kind {
	case modeStart:
		direction = db.Forward
	case modeEnd:
		direction = db.Reverse
	case modeFrom:
		k, err := s.schema.EncodeKey(mode.key)
		if err != nil {
			return nil, newSchemaError(s.schema.Name(), err)
		}
		if mode.direction == Reverse {
			// Reverse-from admits the seek key itself: bound just past it
			end = keySuccessor(k)
			direction = db.Reverse
		} else {
			start = k
			direction = db.Forward
		}
	}

	iter, err := s.db.NewIterator(start, end, direction)
	if err != nil {
		return nil, newEngineError(s.schema.Name(), err)
	}
	return &Iterator[K, V]{iter: iter, schema: s.schema}, nil
}

// PrefixIterator traverses every entry whose encoded key starts with the
// encoding of prefix, in ascending order.
func (s *Store[K, V]) PrefixIterator(prefix K) (*Iterator[K, V], error) {
	p, err := s.schema.EncodeKey(prefix)
	if err != nil {
		return nil, newSchemaError(s.schema.Name(), err)
	}

	iter, err := s.db.NewIterator(p, prefixSuccessor(p), db.Forward)
	if err != nil {
		return nil, newEngineError(s.schema.Name(), err)
	}
	return &Iterator[K, V]{iter: iter, schema: s.schema}, nil
}

// Stats returns engine statistics.
func (s *Store[K, V]) Stats() (DBStats, error) {
	size, err := s.db.SizeOnDisk()
	if err != nil {
		return DBStats{}, newEngineError(s.schema.Name(), err)
	}
	return DBStats{SizeOnDisk: size}, nil
}

// keySuccessor returns the immediate lexicographic successor of key, the
// smallest byte string greater than it.
func keySuccessor(key []byte) []byte {
	out := make([]byte, len(key)+1)
	copy(out, key)
	return out
}

// prefixSuccessor returns the smallest key greater than every key starting
// with prefix, or nil when no finite bound exists (prefix is all 0xff).
func prefixSuccessor(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			out := make([]byte, i+1)
			copy(out, prefix[:i+1])
			out[i]++
			return out
		}
	}
	return nil
}
