package model

import (
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

const TransferCollection = "transfers"

// TransferDocument is one cross-chain transfer attempt. The document id is
// the source chain transaction hash; a transfer exists from the moment its
// source transaction is broadcast and is never deleted, only advanced.
type TransferDocument struct {
	SourceTxHash      string               `bson:"_id"` // Primary key of db collection
	OwnerAddress      string               `bson:"owner_address"`
	FromChainId       uint64               `bson:"from_chain_id"`
	ToChainId         uint64               `bson:"to_chain_id"`
	AssetAddress      string               `bson:"asset_address"` // empty for the native asset
	AssetName         string               `bson:"asset_name"`
	AssetDecimals     uint8                `bson:"asset_decimals"`
	Value             string               `bson:"value"` // base units, decimal string
	Status            types.TransferStatus `bson:"status"`
	PendingReason     string               `bson:"pending_reason,omitempty"`
	SubmittedAt       int64                `bson:"submitted_at"`
	ResolvedAt        int64                `bson:"resolved_at,omitempty"` // zero until terminal
	DestinationTxHash string               `bson:"destination_tx_hash,omitempty"`
}
