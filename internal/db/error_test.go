package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

func TestErrorHelpers(t *testing.T) {
	duplicate := &DuplicateKeyError{Key: "0xabc", Message: "transfer already exists"}
	notFound := &NotFoundError{Key: "0xabc", Message: "transfer not found"}
	invalid := &InvalidTransitionError{Key: "0xabc", From: types.Confirmed, To: types.Collecting}

	assert.True(t, IsDuplicateKeyError(duplicate))
	assert.True(t, IsNotFoundError(notFound))
	assert.True(t, IsInvalidTransitionError(invalid))

	// The helpers never cross-match.
	assert.False(t, IsDuplicateKeyError(notFound))
	assert.False(t, IsNotFoundError(invalid))
	assert.False(t, IsInvalidTransitionError(duplicate))
	assert.False(t, IsDuplicateKeyError(errors.New("some other error")))
	assert.False(t, IsNotFoundError(nil))
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := &InvalidTransitionError{Key: "0xabc", From: types.Confirmed, To: types.Collecting}
	assert.Contains(t, err.Error(), "CONFIRMED")
	assert.Contains(t, err.Error(), "COLLECTING")
}
