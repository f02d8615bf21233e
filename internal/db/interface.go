package db

import (
	"context"

	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

type DBClient interface {
	Ping(ctx context.Context) error
	SaveTransfer(ctx context.Context, transfer *model.TransferDocument) error
	FindTransferByTxHash(ctx context.Context, sourceTxHash string) (*model.TransferDocument, error)
	FindTransfersByOwner(ctx context.Context, ownerAddress string) ([]model.TransferDocument, error)
	FindNonTerminalTransfers(ctx context.Context, statuses []types.TransferStatus) ([]model.TransferDocument, error)
	TransitionState(
		ctx context.Context, sourceTxHash string, newStatus types.TransferStatus,
		eligiblePreviousStates []types.TransferStatus, additionalFields map[string]interface{},
	) error
	SaveUnprocessableEvent(ctx context.Context, eventBody string, storedAt int64) error
	FindUnprocessableEvents(ctx context.Context) ([]model.UnprocessableEventDocument, error)
	DeleteUnprocessableEvent(ctx context.Context, id interface{}) error
}
