package utils

import (
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// QualifiedStatesToRedeemable returns the existing states allowed to
// transition to "REDEEMABLE". Collecting is included for exactly one
// reason: a failed claim retreats the transfer back to collectable,
// since a claim attempt is not destructive and may be retried.
func QualifiedStatesToRedeemable() []types.TransferStatus {
	return []types.TransferStatus{types.Pending, types.Collecting}
}

// QualifiedStatesToCollecting returns the existing states allowed to
// transition to "COLLECTING".
func QualifiedStatesToCollecting() []types.TransferStatus {
	return []types.TransferStatus{types.Redeemable}
}

// QualifiedStatesToConfirmed returns the existing states allowed to
// transition to "CONFIRMED". Redeemable is eligible because a claim may
// land out-of-band (another client performed it) and is only observed by
// the reconciler afterwards.
func QualifiedStatesToConfirmed() []types.TransferStatus {
	return []types.TransferStatus{types.Redeemable, types.Collecting}
}

// QualifiedStatesToFailed returns the existing states allowed to
// transition to "FAILED". Any non-terminal state fails when the provider
// reports the source transaction reverted.
func QualifiedStatesToFailed() []types.TransferStatus {
	return []types.TransferStatus{types.Pending, types.Redeemable, types.Collecting}
}

// NonTerminalStatuses returns the statuses the reconciler keeps polling.
// Confirmed and failed transfers are excluded permanently.
func NonTerminalStatuses() []types.TransferStatus {
	return []types.TransferStatus{types.Pending, types.Redeemable, types.Collecting}
}
