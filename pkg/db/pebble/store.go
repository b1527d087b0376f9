package pebble

import (
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// MergeFn combines the value already stored under key with an update
// submitted through Merge. existing is nil when the key is absent.
type MergeFn func(key, existing, update []byte) []byte

// LastWriteWins is the default merge combiner: the most recent update
// replaces whatever was there before.
func LastWriteWins(_, _, update []byte) []byte {
	return update
}

// Options configure a KVStore.
type Options struct {
	// Path of the database directory. An empty path runs the store on an
	// in-memory filesystem, intended for tests.
	Path string
	// Merge is the combiner applied by the engine's merge operator.
	// Defaults to LastWriteWins.
	Merge MergeFn
	// Sync makes every write durable before returning.
	Sync bool
}

// KVStore implements db.KVStore on top of a pebble database.
type KVStore struct {
	db     *pebble.DB
	write  *pebble.WriteOptions
	closed bool
	mu     sync.RWMutex
}

func NewKVStore(opts Options) (*KVStore, error) {
	mergeFn := opts.Merge
	if mergeFn == nil {
		mergeFn = LastWriteWins
	}

	pebbleOpts := &pebble.Options{
		Cache:        pebble.NewCache(64 * 1024 * 1024), // 64MB
		MemTableSize: 32 * 1024 * 1024,                  // 32MB
		Merger: &pebble.Merger{
			Name: "schemakv.merge",
			Merge: func(key, value []byte) (pebble.ValueMerger, error) {
				return newValueMerger(mergeFn, key, value), nil
			},
		},
	}

	path := opts.Path
	if path == "" {
		path = "schemakv"
		pebbleOpts.FS = vfs.NewMem()
	}

	database, err := pebble.Open(path, pebbleOpts)
	if err != nil {
		return nil, err
	}

	write := pebble.NoSync
	if opts.Sync {
		write = pebble.Sync
	}

	return &KVStore{db: database, write: write}, nil
}

func (p *KVStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *KVStore) Has(key []byte) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false, ErrClosed
	}

	_, closer, err := p.db.Get(key)
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (p *KVStore) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Set(key, value, p.write)
}

func (p *KVStore) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Delete(key, p.write)
}

func (p *KVStore) Merge(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Merge(key, value, p.write)
}

func (p *KVStore) SizeOnDisk() (uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrClosed
	}

	return p.db.Metrics().DiskSpaceUsage(), nil
}

func (p *KVStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}
