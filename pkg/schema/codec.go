package schema

import (
	"errors"
	"fmt"
)

// Codec converts values of type T to and from their byte representation.
// Decode must be the inverse of Encode on every output of Encode and must
// fail cleanly, never panic, on any other input. When range or prefix
// semantics matter, Encode must be order-preserving under lexicographic
// byte comparison.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidTag    = errors.New("invalid tag")
	ErrInvalidUTF8   = errors.New("invalid utf-8")
)

// Error reports an encode or decode failure together with the type the
// codec was operating on.
type Error struct {
	Type string
	Err  error
}

func newError[T any](err error) *Error {
	var zero T
	return &Error{Type: fmt.Sprintf("%T", zero), Err: err}
}

// Errorf builds a custom codec error for type T.
func Errorf[T any](format string, args ...any) *Error {
	return newError[T](fmt.Errorf(format, args...))
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema: %s: %v", e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
