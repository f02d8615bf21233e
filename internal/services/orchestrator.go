package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
)

func (s *Services) setStep(step types.BridgeStep) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	s.step = step
}

// CurrentStep reports the bridge UI step and, when one is selected, the
// transfer the step refers to.
func (s *Services) CurrentStep() (types.BridgeStep, *TransferPublic) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	if s.selected == nil {
		return s.step, nil
	}
	selected := s.fromTransferDocument(*s.selected)
	return s.step, &selected
}

// SelectForCollection marks a redeemable transfer as the one the user is
// about to claim. Selection is a UI-level act: the stored status does not
// change until the claim is actually attempted.
func (s *Services) SelectForCollection(ctx context.Context, sourceTxHash string) (*TransferPublic, *types.Error) {
	if !utils.IsValidTxHash(sourceTxHash) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid source transaction hash")
	}

	transfer, err := s.DbClient.FindTransferByTxHash(ctx, sourceTxHash)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "transfer not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("sourceTxHash", sourceTxHash).Msg("failed to find transfer for collection")
		return nil, types.NewInternalServiceError(err)
	}

	if !utils.Contains(utils.QualifiedStatesToCollecting(), transfer.Status) {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict, types.NotCollectable,
			"transfer is not redeemable",
		)
	}

	s.stepMu.Lock()
	s.step = types.StepCollectSelect
	s.selected = transfer
	s.stepMu.Unlock()

	public := s.fromTransferDocument(*transfer)
	return &public, nil
}

// ConfirmCollection claims the selected transfer on its destination chain.
// The store moves to COLLECTING for the duration of the claim; a failed
// claim retreats it to REDEEMABLE so the transfer stays claimable.
func (s *Services) ConfirmCollection(ctx context.Context, activeChainId uint64) (*TransferPublic, *types.Error) {
	s.stepMu.Lock()
	if s.step != types.StepCollectSelect || s.selected == nil {
		s.stepMu.Unlock()
		return nil, types.NewErrorWithMsg(http.StatusConflict, types.BadRequest, "no transfer selected for collection")
	}
	selected := *s.selected
	s.stepMu.Unlock()

	// Claiming happens on the destination chain; a wallet parked anywhere
	// else cannot sign the claim. Checked before any state moves.
	if activeChainId != selected.ToChainId {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict, types.WrongNetwork,
			"wallet is not connected to the destination chain",
		)
	}

	provider, err := s.Registry.Provider(selected.ToChainId)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	opCtx := context.WithoutCancel(ctx)
	if err := s.DbClient.TransitionState(
		opCtx, selected.SourceTxHash, types.Collecting,
		utils.QualifiedStatesToCollecting(), nil,
	); err != nil {
		if db.IsInvalidTransitionError(err) {
			// The transfer advanced out-of-band (reconciler confirmed or
			// failed it) between selection and confirmation. Drop the
			// selection rather than fight the store.
			s.resetSelection()
			return nil, types.NewErrorWithMsg(http.StatusConflict, types.NotCollectable, "transfer is no longer redeemable")
		}
		log.Ctx(ctx).Error().Err(err).Str("sourceTxHash", selected.SourceTxHash).Msg("failed to move transfer to collecting")
		return nil, types.NewInternalServiceError(err)
	}
	s.setStep(types.StepCollecting)
	s.publishStatusChange(opCtx, &selected, types.Collecting, "")

	claimCtx, cancel := context.WithTimeout(ctx, s.cfg.Reconciler.ClaimTimeout)
	destinationTxHash, claimErr := provider.Claim(claimCtx, &selected)
	cancel()

	if claimErr != nil {
		// The only transition allowed to retreat: a failed claim hands the
		// transfer back to the user instead of stranding it in COLLECTING.
		if err := s.DbClient.TransitionState(
			opCtx, selected.SourceTxHash, types.Redeemable,
			utils.QualifiedStatesToRedeemable(), nil,
		); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("sourceTxHash", selected.SourceTxHash).Msg("failed to retreat transfer after claim failure")
		} else {
			s.publishStatusChange(opCtx, &selected, types.Redeemable, "")
		}
		s.setStep(types.StepCollectSelect)
		log.Ctx(ctx).Warn().Err(claimErr).Str("sourceTxHash", selected.SourceTxHash).Msg("claim broadcast failed")
		return nil, types.NewError(http.StatusBadGateway, types.BroadcastFailed, claimErr)
	}

	resolvedAt := time.Now().Unix()
	if err := s.DbClient.TransitionState(
		opCtx, selected.SourceTxHash, types.Confirmed,
		utils.QualifiedStatesToConfirmed(),
		map[string]interface{}{
			"destination_tx_hash": destinationTxHash,
			"resolved_at":         resolvedAt,
		},
	); err != nil {
		// The claim went out; the record catches up via the reconciler if
		// this write is lost.
		log.Ctx(ctx).Error().Err(err).Str("sourceTxHash", selected.SourceTxHash).Msg("failed to confirm transfer after claim")
		return nil, types.NewInternalServiceError(err)
	}
	s.publishStatusChange(opCtx, &selected, types.Confirmed, destinationTxHash)

	selected.Status = types.Confirmed
	selected.DestinationTxHash = destinationTxHash
	selected.ResolvedAt = resolvedAt
	selected.PendingReason = ""

	s.stepMu.Lock()
	s.step = types.StepSuccess
	s.selected = &selected
	s.stepMu.Unlock()

	public := s.fromTransferDocument(selected)
	return &public, nil
}

// ResetBridge returns the step machine to INITIAL and clears any selection.
// Stored transfers are untouched; reset is idempotent.
func (s *Services) ResetBridge() types.BridgeStep {
	s.resetSelection()
	return types.StepInitial
}

func (s *Services) resetSelection() {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	s.step = types.StepInitial
	s.selected = nil
}

// HandleNetworkChange reacts to the wallet switching networks. A switch to
// a chain on neither side of the selected transfer abandons the collection
// flow; anything else leaves the step machine alone.
func (s *Services) HandleNetworkChange(ctx context.Context, chainId uint64) types.BridgeStep {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	if s.selected == nil {
		return s.step
	}
	if chainId == s.selected.FromChainId || chainId == s.selected.ToChainId {
		return s.step
	}

	log.Ctx(ctx).Info().
		Uint64("chainId", chainId).
		Str("sourceTxHash", s.selected.SourceTxHash).
		Msg("network changed away from selected transfer, resetting bridge")
	s.step = types.StepInitial
	s.selected = nil
	return s.step
}
