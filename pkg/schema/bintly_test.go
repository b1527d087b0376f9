package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bintly"
)

type account struct {
	ID      uint64
	Name    string
	Balance int
}

func (a *account) EncodeBinary(stream *bintly.Writer) error {
	stream.Uint64(a.ID)
	stream.String(a.Name)
	stream.Int(a.Balance)
	return nil
}

func (a *account) DecodeBinary(stream *bintly.Reader) error {
	stream.Uint64(&a.ID)
	stream.String(&a.Name)
	stream.Int(&a.Balance)
	return nil
}

func TestBintlyCodec(t *testing.T) {
	codec := Bintly[account, *account]{}

	original := account{ID: 42, Name: "alice", Balance: -7}
	encoded, err := codec.Encode(original)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestBintlyCodecInSchema(t *testing.T) {
	s := New[uint64, account]("accounts", Uint64BE{}, Bintly[account, *account]{})

	assert.Equal(t, "accounts", s.Name())

	value := account{ID: 1, Name: "bob", Balance: 100}
	encoded, err := s.EncodeValue(value)
	require.NoError(t, err)

	decoded, err := s.DecodeValue(encoded)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}
