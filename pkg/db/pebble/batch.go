package pebble

import (
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/edgekv/schemakv/pkg/db"
)

type Batch struct {
	batch *pebble.Batch
	write *pebble.WriteOptions
	done  atomic.Bool
}

func (p *KVStore) NewBatch() db.Batch {
	return &Batch{
		batch: p.db.NewBatch(),
		write: p.write,
	}
}

func (b *Batch) Put(key, value []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Set(key, value, nil)
}

func (b *Batch) Delete(key []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Delete(key, nil)
}

func (b *Batch) Merge(key, value []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Merge(key, value, nil)
}

func (b *Batch) Commit() error {
	if b.done.Load() {
		return ErrBatchDone
	}
	if err := b.batch.Commit(b.write); err != nil {
		return err
	}
	b.done.Store(true)
	return nil
}

func (b *Batch) Close() error {
	if !b.done.CompareAndSwap(false, true) {
		return nil
	}
	return b.batch.Close()
}
