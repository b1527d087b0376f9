package db

// Direction selects the traversal order of an iterator.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

// KVStore represents an ordered byte key-value storage engine providing
// point operations, merge, atomic batches and bounded iteration.
// Keys are ordered lexicographically on their byte representation.
type KVStore interface {
	Writer
	// Get returns the value stored under key. Implementations report a
	// missing key with their ErrNotFound sentinel.
	Get(key []byte) ([]byte, error)
	// Has reports whether key exists without materializing the value.
	Has(key []byte) (bool, error)
	NewBatch() Batch
	// NewIterator returns an iterator over [start, end). A nil start or end
	// leaves that side unbounded. With Reverse the iterator yields the same
	// range in descending key order.
	NewIterator(start, end []byte, direction Direction) (Iterator, error)
	// SizeOnDisk returns the engine's disk footprint in bytes, best effort;
	// 0 when unknown.
	SizeOnDisk() (uint64, error)
	Close() error
}

type Writer interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	// Merge hands value to the engine's pre-registered combiner for key.
	Merge(key []byte, value []byte) error
}

// Batch represents an atomic batch of operations.
// All operations in a batch are performed atomically on Commit.
// A batch is single-use; it must not be reused after Commit or Close.
type Batch interface {
	Writer
	Commit() error
	Close() error
}

// Iterator provides sequential access over a range of key-value pairs.
// The first call to Next positions the iterator; it returns false once the
// range is exhausted or the engine reported an error, which Err then
// exposes. Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Err() error
	Close() error
}
