package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
)

type TransferPublic struct {
	SourceTxHash      string `json:"source_tx_hash"`
	OwnerAddress      string `json:"owner_address"`
	FromChainId       uint64 `json:"from_chain_id"`
	ToChainId         uint64 `json:"to_chain_id"`
	FromNetwork       string `json:"from_network"`
	ToNetwork         string `json:"to_network"`
	AssetAddress      string `json:"asset_address,omitempty"`
	AssetName         string `json:"asset_name"`
	AssetDecimals     uint8  `json:"asset_decimals"`
	Value             string `json:"value"`
	Status            string `json:"status"`
	PendingReason     string `json:"pending_reason,omitempty"`
	SubmittedAt       int64  `json:"submitted_at"`
	ResolvedAt        int64  `json:"resolved_at,omitempty"`
	DestinationTxHash string `json:"destination_tx_hash,omitempty"`
}

func (s *Services) fromTransferDocument(d model.TransferDocument) TransferPublic {
	transfer := TransferPublic{
		SourceTxHash:      d.SourceTxHash,
		OwnerAddress:      d.OwnerAddress,
		FromChainId:       d.FromChainId,
		ToChainId:         d.ToChainId,
		AssetAddress:      d.AssetAddress,
		AssetName:         d.AssetName,
		AssetDecimals:     d.AssetDecimals,
		Value:             d.Value,
		Status:            d.Status.ToString(),
		PendingReason:     d.PendingReason,
		SubmittedAt:       d.SubmittedAt,
		ResolvedAt:        d.ResolvedAt,
		DestinationTxHash: d.DestinationTxHash,
	}

	// Resolve display names through the registry; an unregistered chain id
	// can only come from stale data and renders as empty.
	if detail, ok := s.Registry.NetworkDetail(d.FromChainId); ok {
		transfer.FromNetwork = detail.Name
	}
	if detail, ok := s.Registry.NetworkDetail(d.ToChainId); ok {
		transfer.ToNetwork = detail.Name
	}
	return transfer
}

type SubmitTransferRequest struct {
	OwnerAddress string `json:"owner_address"`
	// ActiveChainId is the network the caller's wallet is currently
	// connected to. Passed explicitly so the precondition stays testable
	// without a live wallet.
	ActiveChainId uint64 `json:"active_chain_id"`
	FromChainId   uint64 `json:"from_chain_id"`
	ToChainId     uint64 `json:"to_chain_id"`
	AssetAddress  string `json:"asset_address,omitempty"` // empty for the native asset
	AssetName     string `json:"asset_name"`
	AssetDecimals uint8  `json:"asset_decimals"`
	Value         string `json:"value"` // base units, decimal string
}

func (s *Services) validateSubmitRequest(req *SubmitTransferRequest) *types.Error {
	if !utils.IsValidEvmAddress(req.OwnerAddress) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid owner address")
	}
	if _, ok := utils.ParseTransferValue(req.Value); !ok {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "transfer value must be a positive integer in base units")
	}
	if req.FromChainId == req.ToChainId {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "source and destination chains must differ")
	}
	if !s.Registry.IsValidPair(req.FromChainId, req.ToChainId) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "no bridge registered for the requested network pair")
	}
	if req.AssetAddress != "" && !utils.IsValidEvmAddress(req.AssetAddress) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid asset address")
	}
	if req.AssetName == "" {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "missing asset name")
	}
	return nil
}

// SubmitTransfer broadcasts a new transfer on its source chain and records
// it as PENDING. A broadcast failure leaves no record behind; a successful
// broadcast persists regardless of whether the caller sticks around.
func (s *Services) SubmitTransfer(ctx context.Context, req *SubmitTransferRequest) (*TransferPublic, *types.Error) {
	if err := s.validateSubmitRequest(req); err != nil {
		return nil, err
	}

	// The source chain transaction has to come from the wallet's active
	// network. We never switch networks on the caller's behalf; the UI
	// prompts and retries.
	if req.ActiveChainId != req.FromChainId {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict, types.NetworkMismatch,
			"wallet is not connected to the source chain",
		)
	}

	provider, err := s.Registry.Provider(req.FromChainId)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	s.setStep(types.StepSubmitting)

	value, _ := utils.ParseTransferValue(req.Value)
	broadcastCtx, cancel := context.WithTimeout(ctx, s.cfg.Reconciler.SubmitTimeout)
	defer cancel()

	sourceTxHash, err := provider.BroadcastTransfer(broadcastCtx, &chains.BroadcastRequest{
		OwnerAddress: req.OwnerAddress,
		FromChainId:  req.FromChainId,
		ToChainId:    req.ToChainId,
		AssetAddress: req.AssetAddress,
		Value:        value,
	})
	if err != nil {
		s.setStep(types.StepInitial)
		log.Ctx(ctx).Warn().Err(err).Uint64("fromChainId", req.FromChainId).Msg("transfer broadcast failed")
		return nil, types.NewError(http.StatusBadGateway, types.BroadcastFailed, err)
	}

	transfer := &model.TransferDocument{
		SourceTxHash:  sourceTxHash,
		OwnerAddress:  req.OwnerAddress,
		FromChainId:   req.FromChainId,
		ToChainId:     req.ToChainId,
		AssetAddress:  req.AssetAddress,
		AssetName:     req.AssetName,
		AssetDecimals: req.AssetDecimals,
		Value:         value.String(),
		Status:        types.Pending,
		PendingReason: "awaiting confirmations",
		SubmittedAt:   time.Now().Unix(),
	}

	// The broadcast already happened; the record must outlive the request.
	saveCtx := context.WithoutCancel(ctx)
	if err := s.DbClient.SaveTransfer(saveCtx, transfer); err != nil {
		if db.IsDuplicateKeyError(err) {
			s.setStep(types.StepInitial)
			return nil, types.NewErrorWithMsg(http.StatusConflict, types.Duplicate, "transfer already exists for this source transaction")
		}
		log.Ctx(ctx).Error().Err(err).Str("sourceTxHash", sourceTxHash).Msg("failed to save submitted transfer")
		return nil, types.NewInternalServiceError(err)
	}

	s.publishStatusChange(saveCtx, transfer, types.Pending, "")
	s.setStep(types.StepPendingConfirm)

	public := s.fromTransferDocument(*transfer)
	return &public, nil
}

// TransfersByOwner returns the owner's transfers, most recent first.
// withinHours > 0 additionally drops transfers resolved before the window
// started; unresolved transfers always stay visible.
func (s *Services) TransfersByOwner(ctx context.Context, ownerAddress string, withinHours int) ([]TransferPublic, *types.Error) {
	transfers, err := s.listByOwner(ctx, ownerAddress)
	if err != nil {
		return nil, err
	}
	if withinHours > 0 {
		cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour).Unix()
		transfers = ResolvedWithin(transfers, cutoff)
	}
	return RecentTransfers(transfers), nil
}

// CollectableTransfersByOwner returns only the owner's redeemable
// transfers, most recent first.
func (s *Services) CollectableTransfersByOwner(ctx context.Context, ownerAddress string) ([]TransferPublic, *types.Error) {
	transfers, err := s.listByOwner(ctx, ownerAddress)
	if err != nil {
		return nil, err
	}
	return CollectableTransfers(transfers), nil
}

func (s *Services) listByOwner(ctx context.Context, ownerAddress string) ([]TransferPublic, *types.Error) {
	if !utils.IsValidEvmAddress(ownerAddress) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid owner address")
	}

	documents, err := s.DbClient.FindTransfersByOwner(ctx, ownerAddress)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find transfers by owner")
		return nil, types.NewInternalServiceError(err)
	}

	transfers := make([]TransferPublic, 0, len(documents))
	for _, d := range documents {
		transfers = append(transfers, s.fromTransferDocument(d))
	}
	return transfers, nil
}
