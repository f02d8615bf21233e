package types

// RemoteStatus is what a chain status provider reports for a transfer.
// It is the provider's view of the world; the reconciler maps it onto
// local TransferStatus transitions.
type RemoteStatus string

const (
	// RemotePending: the source chain transaction is not yet finalized.
	RemotePending RemoteStatus = "PENDING"
	// RemoteRedeemable: finalized on the source chain, claim window open.
	RemoteRedeemable RemoteStatus = "REDEEMABLE"
	// RemoteConfirmed: already claimed on the destination chain.
	RemoteConfirmed RemoteStatus = "CONFIRMED"
	// RemoteReverted: the source chain transaction was reverted or dropped.
	RemoteReverted RemoteStatus = "REVERTED"
)

func (s RemoteStatus) ToString() string {
	return string(s)
}
