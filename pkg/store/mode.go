package store

import "github.com/edgekv/schemakv/pkg/db"

// Direction selects the traversal order of an iterator.
type Direction = db.Direction

const (
	Forward = db.Forward
	Reverse = db.Reverse
)

type modeKind uint8

const (
	modeStart modeKind = iota
	modeEnd
	modeFrom
)

// IteratorMode fixes the start position and direction of a traversal:
// from the least key forward, from the greatest key backward, or from an
// arbitrary key in either direction.
type IteratorMode[K any] struct {
	kind      modeKind
	key       K
	direction Direction
}

// Start iterates forward from the least key.
func Start[K any]() IteratorMode[K] {
	return IteratorMode[K]{kind: modeStart}
}

// End iterates backward from the greatest key.
func End[K any]() IteratorMode[K] {
	return IteratorMode[K]{kind: modeEnd}
}

// From iterates from key in the given direction. Forward starts at the
// first key >= key, Reverse at the last key <= key; an exact match is
// included either way.
func From[K any](key K, direction Direction) IteratorMode[K] {
	return IteratorMode[K]{kind: modeFrom, key: key, direction: direction}
}
