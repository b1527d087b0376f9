package pebble

import (
	"errors"
	"fmt"

	"github.com/edgekv/schemakv/pkg/db"
)

var (
	ErrClosed          = errors.New("pebble: store is closed")
	ErrNotFound        = fmt.Errorf("pebble: %w", db.ErrNotFound)
	ErrBatchDone       = errors.New("pebble: batch already committed or closed")
	ErrIteratorInvalid = errors.New("pebble: iterator is not positioned")
)

const (
	ErrInIteratorCreation = "create pebble iterator: %w"
	ErrIteratorValue      = "read iterator value: %w"
)
