// Package merkle provides content-addressed node storage built on the
// typed store facade. Every node is keyed by the blake2b-256 hash of its
// bytes; Commit writes a set of pairs as leaves in one atomic batch and
// folds their hashes pairwise into a root.
package merkle

import (
	"encoding/binary"
	"sync"

	"github.com/edgekv/schemakv/pkg/db"
	"github.com/edgekv/schemakv/pkg/schema"
	"github.com/edgekv/schemakv/pkg/store"
)

var nodeSchema = schema.New[schema.Hash, []byte]("merkleNode", schema.HashCodec{}, schema.Bytes{})

// Storage is a content-addressed store over a shared engine. It does not
// own the engine; closing the engine is the caller's responsibility.
type Storage struct {
	nodes    *store.Store[schema.Hash, []byte]
	root     schema.Hash
	rootLock sync.RWMutex
}

func NewStorage(kv db.KVStore) *Storage {
	return &Storage{nodes: store.New(kv, nodeSchema)}
}

// Put stores data under its blake2b hash and returns the hash. Storing the
// same data twice is a no-op with the same hash.
func (s *Storage) Put(data []byte) (schema.Hash, error) {
	hash := schema.HashData(data)
	if err := s.nodes.Put(hash, data); err != nil {
		return schema.Hash{}, err
	}
	return hash, nil
}

// Get reads the node stored under hash.
func (s *Storage) Get(hash schema.Hash) ([]byte, bool, error) {
	return s.nodes.Get(hash)
}

func (s *Storage) Has(hash schema.Hash) (bool, error) {
	return s.nodes.Contains(hash)
}

// Commit writes every pair as a leaf node and all interior nodes of the
// pairwise hash fold in one atomic batch, then records the resulting root.
// The root is deterministic in the order of pairs. An empty commit leaves
// the root unchanged.
func (s *Storage) Commit(pairs [][2][]byte) (schema.Hash, error) {
	s.rootLock.Lock()
	defer s.rootLock.Unlock()

	if len(pairs) == 0 {
		return s.root, nil
	}

	batch := s.nodes.NewBatch()
	defer batch.Close()

	level := make([]schema.Hash, 0, len(pairs))
	for _, pair := range pairs {
		node := encodeLeaf(pair[0], pair[1])
		hash := schema.HashData(node)
		if err := s.nodes.PutBatch(batch, hash, node); err != nil {
			return schema.Hash{}, err
		}
		level = append(level, hash)
	}

	for len(level) > 1 {
		next := make([]schema.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// Odd node is promoted unchanged
				next = append(next, level[i])
				continue
			}
			node := make([]byte, 0, 2*schema.HashSize)
			node = append(node, level[i][:]...)
			node = append(node, level[i+1][:]...)
			hash := schema.HashData(node)
			if err := s.nodes.PutBatch(batch, hash, node); err != nil {
				return schema.Hash{}, err
			}
			next = append(next, hash)
		}
		level = next
	}

	if err := s.nodes.WriteBatch(batch); err != nil {
		return schema.Hash{}, err
	}

	s.root = level[0]
	return s.root, nil
}

// Root returns the root recorded by the last Commit.
func (s *Storage) Root() schema.Hash {
	s.rootLock.RLock()
	defer s.rootLock.RUnlock()
	return s.root
}

// encodeLeaf frames a key-value pair so that distinct pairs never encode
// to the same node bytes.
func encodeLeaf(key, value []byte) []byte {
	node := make([]byte, 4+len(key)+len(value))
	binary.BigEndian.PutUint32(node, uint32(len(key)))
	copy(node[4:], key)
	copy(node[4+len(key):], value)
	return node
}
