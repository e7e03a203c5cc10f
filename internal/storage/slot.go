// Package storage holds the durable key-value slot the recipe collection is
// mirrored to. Every backend stores one opaque value per key and replaces it
// whole on Set; readers never observe a partially written value.
package storage

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Get when nothing has been stored under the key.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Slot is a named-value store.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
