package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains(QualifiedStatesToCollecting(), types.Redeemable))
	assert.False(t, Contains(QualifiedStatesToCollecting(), types.Pending))
	assert.False(t, Contains([]types.TransferStatus{}, types.Pending))
	assert.True(t, Contains([]uint64{100, 56}, uint64(56)))
	assert.False(t, Contains([]uint64{100, 56}, uint64(1)))
}
