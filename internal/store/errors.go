package store

import (
	"errors"
	"fmt"
)

// ErrEmptyDescription rejects blank or whitespace-only task descriptions.
var ErrEmptyDescription = errors.New("description cannot be empty")

// NotFoundError reports a task id that does not exist in the store.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// StorageError reports a failure reading or writing the store file.
// A corrupt file is fatal: the store never attempts repair, since
// silently dropping tasks would be worse than failing loudly.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
