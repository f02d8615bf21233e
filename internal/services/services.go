package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/queue"
	"github.com/beemeeupnow/bridge-api-service/internal/queue/client"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// Service layer contains the business logic: the bridge step machine, the
// transfer registry operations, and the reconciliation transitions. It is
// the only writer to the transfer store.
type Services struct {
	DbClient  db.DBClient
	Registry  *chains.Registry
	publisher queue.Publisher
	cfg       *config.Config

	// Bridge step machine state. Guarded by stepMu; the transfer store has
	// its own serialization and is never touched under this lock's hot path
	// assumptions.
	stepMu   sync.Mutex
	step     types.BridgeStep
	selected *model.TransferDocument
}

func New(ctx context.Context, cfg *config.Config, registry *chains.Registry, publisher queue.Publisher) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient:  dbClient,
		Registry:  registry,
		publisher: publisher,
		cfg:       cfg,
		step:      types.StepInitial,
	}, nil
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

// publishStatusChange emits the status-change notification for a transfer.
// A publish failure never fails the transition that caused it: the event is
// parked in the unprocessable events collection for replay instead.
func (s *Services) publishStatusChange(
	ctx context.Context, transfer *model.TransferDocument,
	newStatus types.TransferStatus, destinationTxHash string,
) {
	event := client.NewTransferStatusEvent(
		transfer.SourceTxHash, transfer.OwnerAddress,
		transfer.FromChainId, transfer.ToChainId,
		newStatus.ToString(), destinationTxHash,
	)
	if err := s.publisher.PublishTransferEvent(ctx, event); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("sourceTxHash", transfer.SourceTxHash).
			Msg("failed to publish transfer status event")
		s.parkUnprocessableEvent(ctx, event)
	}
}

func (s *Services) parkUnprocessableEvent(ctx context.Context, event client.TransferStatusEvent) {
	body, err := marshalEvent(event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to marshal transfer status event")
		return
	}
	if err := s.DbClient.SaveUnprocessableEvent(ctx, body, time.Now().Unix()); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to save unprocessable transfer status event")
	}
}

func (s *Services) SaveUnprocessableEvent(ctx context.Context, eventBody string) *types.Error {
	err := s.DbClient.SaveUnprocessableEvent(ctx, eventBody, time.Now().Unix())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable event")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable event")
	}
	return nil
}
