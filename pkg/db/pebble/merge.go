package pebble

import "io"

// valueMerger folds merge operands through a MergeFn. Pebble feeds operands
// in either direction depending on where the merge is resolved, so both
// MergeNewer and MergeOlder keep the accumulator oriented oldest-to-newest.
type valueMerger struct {
	merge MergeFn
	key   []byte
	value []byte
}

func newValueMerger(merge MergeFn, key, operand []byte) *valueMerger {
	return &valueMerger{
		merge: merge,
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), operand...),
	}
}

func (m *valueMerger) MergeNewer(value []byte) error {
	m.value = append([]byte(nil), m.merge(m.key, m.value, value)...)
	return nil
}

func (m *valueMerger) MergeOlder(value []byte) error {
	m.value = append([]byte(nil), m.merge(m.key, value, m.value)...)
	return nil
}

func (m *valueMerger) Finish(_ bool) ([]byte, io.Closer, error) {
	return m.value, nil, nil
}
