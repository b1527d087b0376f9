package schema

import (
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const HashSize = 32

// Hash is a blake2b-256 digest, used as the key of content-addressed
// schemas.
type Hash [HashSize]byte

// HashData hashes the input data using blake2b-256.
func HashData(data []byte) Hash {
	return blake2b.Sum256(data)
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// String renders the hash in base58 for logs and tooling.
func (h Hash) String() string {
	return base58.Encode(h[:])
}

// HashFromString parses a base58-rendered hash.
func HashFromString(s string) (Hash, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Hash{}, newError[Hash](fmt.Errorf("%w: %v", ErrInvalidTag, err))
	}
	if len(raw) != HashSize {
		return Hash{}, newError[Hash](fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, HashSize, len(raw)))
	}
	var h Hash
	copy(h[:], raw)
	return h, nil
}

// HashCodec stores a Hash as its raw 32 bytes.
type HashCodec struct{}

func (HashCodec) Encode(value Hash) ([]byte, error) {
	result := make([]byte, HashSize)
	copy(result, value[:])
	return result, nil
}

func (HashCodec) Decode(data []byte) (Hash, error) {
	if len(data) != HashSize {
		return Hash{}, newError[Hash](fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, HashSize, len(data)))
	}
	var h Hash
	copy(h[:], data)
	return h, nil
}
