package store

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edgekv/schemakv/pkg/schema"
)

// Kind classifies a DBError by its origin.
type Kind uint8

const (
	KindEngine Kind = iota + 1
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindEngine:
		return "engine"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// DBError is the unified failure type of the typed store: engine failures
// (I/O, corruption, internal errors) and codec failures both surface as a
// DBError carrying the originating schema's name.
type DBError struct {
	kind   Kind
	schema string
	err    error
}

func newEngineError(schemaName string, err error) *DBError {
	return &DBError{kind: KindEngine, schema: schemaName, err: err}
}

func newSchemaError(schemaName string, err error) *DBError {
	return &DBError{kind: KindSchema, schema: schemaName, err: err}
}

func (e *DBError) Kind() Kind {
	return e.kind
}

// Schema returns the name of the schema the failing operation ran under.
func (e *DBError) Schema() string {
	return e.schema
}

func (e *DBError) Error() string {
	return fmt.Sprintf("%s error (schema %s): %v", e.kind, e.schema, e.err)
}

func (e *DBError) Unwrap() error {
	return e.err
}

// MarshalZerologObject lets a DBError be logged as a structured field.
func (e *DBError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("kind", e.kind.String()).
		Str("schema", e.schema).
		Str("error", e.err.Error())
	var schemaErr *schema.Error
	if errors.As(e.err, &schemaErr) {
		ev.Str("type", schemaErr.Type)
	}
}
