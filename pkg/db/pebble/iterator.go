package pebble

import (
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/edgekv/schemakv/pkg/db"
)

type Iterator struct {
	iter       *pebble.Iterator
	direction  db.Direction
	positioned bool
	err        error
}

func (p *KVStore) NewIterator(start, end []byte, direction db.Direction) (db.Iterator, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrInIteratorCreation, err)
	}
	return &Iterator{iter: iter, direction: direction}, nil
}

func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}

	var ok bool
	switch {
	// The first Next positions the iterator at the start of the range
	case !it.positioned:
		it.positioned = true
		if it.direction == db.Reverse {
			ok = it.iter.Last()
		} else {
			ok = it.iter.First()
		}
	case it.direction == db.Reverse:
		ok = it.iter.Prev()
	default:
		ok = it.iter.Next()
	}

	if !ok {
		// Clean exhaustion leaves Error nil; an I/O failure parks here
		it.err = it.iter.Error()
	}
	return ok
}

func (it *Iterator) Key() []byte {
	key := it.iter.Key()
	result := make([]byte, len(key))
	copy(result, key)
	return result
}

func (it *Iterator) Value() ([]byte, error) {
	if !it.iter.Valid() {
		return nil, ErrIteratorInvalid
	}

	val, err := it.iter.ValueAndErr()
	if err != nil {
		return nil, fmt.Errorf(ErrIteratorValue, err)
	}

	result := make([]byte, len(val))
	copy(result, val)
	return result, nil
}

func (it *Iterator) Valid() bool {
	return it.iter.Valid()
}

func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) Close() error {
	return it.iter.Close()
}
