package schema

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Uint32BE encodes a uint32 as 4 big-endian bytes. Big-endian keeps numeric
// order and lexicographic byte order aligned, so range scans over numeric
// keys behave as expected.
type Uint32BE struct{}

func (Uint32BE) Encode(value uint32) ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, value)
	return buf, nil
}

func (Uint32BE) Decode(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, newError[uint32](fmt.Errorf("%w: want 4 bytes, got %d", ErrInvalidLength, len(data)))
	}
	return binary.BigEndian.Uint32(data), nil
}

// Uint64BE encodes a uint64 as 8 big-endian bytes.
type Uint64BE struct{}

func (Uint64BE) Encode(value uint64) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, value)
	return buf, nil
}

func (Uint64BE) Decode(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, newError[uint64](fmt.Errorf("%w: want 8 bytes, got %d", ErrInvalidLength, len(data)))
	}
	return binary.BigEndian.Uint64(data), nil
}

// String stores the raw UTF-8 bytes of a string. Decode rejects byte
// sequences that are not valid UTF-8.
type String struct{}

func (String) Encode(value string) ([]byte, error) {
	return []byte(value), nil
}

func (String) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", newError[string](ErrInvalidUTF8)
	}
	return string(data), nil
}

// Bytes is the identity codec for raw byte values.
type Bytes struct{}

func (Bytes) Encode(value []byte) ([]byte, error) {
	return value, nil
}

func (Bytes) Decode(data []byte) ([]byte, error) {
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}
