// Package schema defines the codec contract and the binding between a
// logical store name and its key and value types. A schema is immutable
// over a store's lifetime; changing an encoding is a migration and gets a
// new schema.
package schema

// Schema binds a stable name to a (Key, Value) type pair, each carried by
// its codec. The typed store resolves the binding once at construction.
type Schema[K, V any] struct {
	name  string
	key   Codec[K]
	value Codec[V]
}

func New[K, V any](name string, key Codec[K], value Codec[V]) Schema[K, V] {
	return Schema[K, V]{name: name, key: key, value: value}
}

// Name returns the schema's logical name, used for diagnostics.
func (s Schema[K, V]) Name() string {
	return s.name
}

func (s Schema[K, V]) EncodeKey(key K) ([]byte, error) {
	return s.key.Encode(key)
}

func (s Schema[K, V]) DecodeKey(data []byte) (K, error) {
	return s.key.Decode(data)
}

func (s Schema[K, V]) EncodeValue(value V) ([]byte, error) {
	return s.value.Encode(value)
}

func (s Schema[K, V]) DecodeValue(data []byte) (V, error) {
	return s.value.Decode(data)
}
