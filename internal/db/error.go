package db

import (
	"fmt"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	_, ok := err.(*DuplicateKeyError)
	return ok
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// InvalidTransitionError reports an attempt to move a transfer to a status
// that does not follow from its current one. The store is the single point
// enforcing the forward-only lifecycle, so this error always indicates a
// defect in the caller or in the stored data, never a transient condition.
type InvalidTransitionError struct {
	Key  string
	From types.TransferStatus
	To   types.TransferStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transfer status transition %s -> %s for %s", e.From, e.To, e.Key)
}

func IsInvalidTransitionError(err error) bool {
	_, ok := err.(*InvalidTransitionError)
	return ok
}
