package store

import "github.com/edgekv/schemakv/pkg/db"

// Batch accumulates encoded writes and deletes, applied atomically by
// WriteBatch. It carries only encoded bytes, so one batch may mix
// operations from stores of different schemas over the same engine.
// A batch is single-use: it is consumed by WriteBatch and must not be
// reused afterwards.
type Batch struct {
	inner db.Batch
}

// NewBatch starts an empty batch against this store's engine.
func (s *Store[K, V]) NewBatch() *Batch {
	return &Batch{inner: s.db.NewBatch()}
}

// Close discards a batch that will not be written.
func (b *Batch) Close() error {
	return b.inner.Close()
}

// PutBatch encodes (key, value) and appends the write to batch without
// touching the engine. An encode failure leaves the batch unchanged.
func (s *Store[K, V]) PutBatch(batch *Batch, key K, value V) error {
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	v, err := s.schema.EncodeValue(value)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	if err := batch.inner.Put(k, v); err != nil {
		return newEngineError(s.schema.Name(), err)
	}
	return nil
}

// DeleteBatch encodes key and appends the delete to batch without touching
// the engine.
func (s *Store[K, V]) DeleteBatch(batch *Batch, key K) error {
	k, err := s.schema.EncodeKey(key)
	if err != nil {
		return newSchemaError(s.schema.Name(), err)
	}
	if err := batch.inner.Delete(k); err != nil {
		return newEngineError(s.schema.Name(), err)
	}
	return nil
}

// WriteBatch applies every accumulated operation atomically: no reader
// observes a partial prefix of the batch. The batch is consumed whether or
// not the engine accepts it.
func (s *Store[K, V]) WriteBatch(batch *Batch) error {
	defer batch.inner.Close()
	if err := batch.inner.Commit(); err != nil {
		return newEngineError(s.schema.Name(), err)
	}
	return nil
}
