package schema

import (
	"github.com/viant/bintly"
)

var (
	bintlyWriters = bintly.NewWriters()
	bintlyReaders = bintly.NewReaders()
)

// Coder is implemented by struct types that carry their own bintly binary
// layout.
type Coder interface {
	EncodeBinary(stream *bintly.Writer) error
	DecodeBinary(stream *bintly.Reader) error
}

// Bintly adapts a bintly-coded struct type to the Codec contract, so
// application structs can be stored as schema values without a bespoke
// codec. Instantiate as Bintly[T, *T].
type Bintly[T any, PT interface {
	*T
	Coder
}] struct{}

func (Bintly[T, PT]) Encode(value T) ([]byte, error) {
	writer := bintlyWriters.Get()
	defer bintlyWriters.Put(writer)

	if err := PT(&value).EncodeBinary(writer); err != nil {
		return nil, newError[T](err)
	}
	data := writer.Bytes()
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

func (Bintly[T, PT]) Decode(data []byte) (T, error) {
	var value T
	reader := bintlyReaders.Get()
	defer bintlyReaders.Put(reader)

	if err := reader.FromBytes(data); err != nil {
		return value, newError[T](err)
	}
	if err := PT(&value).DecodeBinary(reader); err != nil {
		var zero T
		return zero, newError[T](err)
	}
	return value, nil
}
