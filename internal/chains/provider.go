package chains

import (
	"context"
	"math/big"

	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// BroadcastRequest carries everything a provider needs to broadcast the
// source chain side of a transfer.
type BroadcastRequest struct {
	OwnerAddress string
	FromChainId  uint64
	ToChainId    uint64
	AssetAddress string // empty for the native asset
	Value        *big.Int
}

// RemoteStatusResult is a provider's view of a transfer, queried from the
// chain the provider is bound to.
type RemoteStatusResult struct {
	Status types.RemoteStatus
	// DestinationTxHash is set when Status is CONFIRMED and the claim was
	// observed on the destination chain.
	DestinationTxHash string
	// PendingReason carries human-readable detail while Status is PENDING.
	PendingReason string
}

// StatusProvider is the per-network capability boundary. Everything that
// touches a chain (broadcast, claim, status queries, connectivity) lives
// behind it; the lifecycle engine never talks to an RPC endpoint directly.
type StatusProvider interface {
	// ActiveNetwork returns the chain id the provider's endpoint serves.
	ActiveNetwork(ctx context.Context) (uint64, error)
	// BroadcastTransfer submits the source chain transaction and returns
	// its hash. No local state is touched; a failure here leaves nothing
	// behind.
	BroadcastTransfer(ctx context.Context, req *BroadcastRequest) (string, error)
	// Claim broadcasts the destination chain claim for a redeemable
	// transfer and returns the destination tx hash.
	Claim(ctx context.Context, transfer *model.TransferDocument) (string, error)
	// QueryStatus reports the remote status of a transfer as observable
	// from this provider's chain: source-side finality and reverts when
	// bound to the transfer's source chain, claim detection when bound to
	// its destination chain.
	QueryStatus(ctx context.Context, transfer *model.TransferDocument) (*RemoteStatusResult, error)
}
