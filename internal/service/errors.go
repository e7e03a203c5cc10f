package service

import (
	"fmt"
	"strings"
)

// ValidationError reports which required recipe fields were left empty.
// Nothing is changed when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// StorageWriteError means the collection could not be written to the slot.
// The in-memory collection keeps its previous contents.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to persist recipes to %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
