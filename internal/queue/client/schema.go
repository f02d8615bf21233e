package client

const (
	TransferEventsQueueName string = "transfer_status_queue"
)

type EventType int

const (
	TransferStatusEventType EventType = 1
)

// TransferStatusEvent is published on every transfer status change. It is
// the subscription point consumers (the UI gateway) use for reactive
// refresh of transfer lists.
type TransferStatusEvent struct {
	EventType         EventType `json:"event_type"` // always 1
	SourceTxHash      string    `json:"source_tx_hash"`
	OwnerAddress      string    `json:"owner_address"`
	FromChainId       uint64    `json:"from_chain_id"`
	ToChainId         uint64    `json:"to_chain_id"`
	NewStatus         string    `json:"new_status"`
	DestinationTxHash string    `json:"destination_tx_hash,omitempty"`
}

func NewTransferStatusEvent(
	sourceTxHash, ownerAddress string, fromChainId, toChainId uint64,
	newStatus, destinationTxHash string,
) TransferStatusEvent {
	return TransferStatusEvent{
		EventType:         TransferStatusEventType,
		SourceTxHash:      sourceTxHash,
		OwnerAddress:      ownerAddress,
		FromChainId:       fromChainId,
		ToChainId:         toChainId,
		NewStatus:         newStatus,
		DestinationTxHash: destinationTxHash,
	}
}
