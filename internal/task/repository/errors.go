package repository

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToCreate = errors.New("failed to create task upstream")
	ErrFailedToGet    = errors.New("failed to get task upstream")
	ErrFailedToList   = errors.New("failed to list tasks upstream")
	ErrFailedToUpdate = errors.New("failed to update task upstream")
	ErrFailedToDelete = errors.New("failed to delete task upstream")
)

// UpstreamError is a non-success connector response, translated out of the
// wire-level client error so callers never need the implementation package.
// The upstream message travels intact.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}
