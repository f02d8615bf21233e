package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

func TestQualifiedStates(t *testing.T) {
	assert.ElementsMatch(t, []types.TransferStatus{types.Pending, types.Collecting}, QualifiedStatesToRedeemable())
	assert.ElementsMatch(t, []types.TransferStatus{types.Redeemable}, QualifiedStatesToCollecting())
	assert.ElementsMatch(t, []types.TransferStatus{types.Redeemable, types.Collecting}, QualifiedStatesToConfirmed())
	assert.ElementsMatch(t, []types.TransferStatus{types.Pending, types.Redeemable, types.Collecting}, QualifiedStatesToFailed())
}

// Terminal states must never be eligible as a previous state; a confirmed
// or failed transfer is frozen forever.
func TestTerminalStatesAreNeverEligible(t *testing.T) {
	tables := [][]types.TransferStatus{
		QualifiedStatesToRedeemable(),
		QualifiedStatesToCollecting(),
		QualifiedStatesToConfirmed(),
		QualifiedStatesToFailed(),
	}
	for _, table := range tables {
		assert.NotContains(t, table, types.Confirmed)
		assert.NotContains(t, table, types.Failed)
	}
}

func TestNonTerminalStatuses(t *testing.T) {
	statuses := NonTerminalStatuses()
	assert.Len(t, statuses, 3)
	for _, s := range statuses {
		assert.False(t, s.IsTerminal())
	}
}
