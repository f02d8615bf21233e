package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
)

// FindNonTerminalTransfers returns every transfer the reconciler still has
// to watch.
func (s *Services) FindNonTerminalTransfers(ctx context.Context) ([]model.TransferDocument, error) {
	return s.DbClient.FindNonTerminalTransfers(ctx, utils.NonTerminalStatuses())
}

// QueryRemoteStatus asks the right chain about a transfer. Source-chain
// outcome drives PENDING transfers; once a transfer is redeemable only the
// destination chain can say anything new about it.
func (s *Services) QueryRemoteStatus(ctx context.Context, transfer *model.TransferDocument) (*chains.RemoteStatusResult, error) {
	chainId := transfer.FromChainId
	if transfer.Status != types.Pending {
		chainId = transfer.ToChainId
	}
	provider, err := s.Registry.Provider(chainId)
	if err != nil {
		return nil, err
	}
	return provider.QueryStatus(ctx, transfer)
}

// ApplyRemoteStatus folds an observed on-chain status into the store.
// Returns true when the stored status advanced. An InvalidTransitionError
// here means the store and the chain disagree in a way the eligibility
// tables forbid; the caller reports it, the store stays untouched.
func (s *Services) ApplyRemoteStatus(
	ctx context.Context, transfer *model.TransferDocument, result *chains.RemoteStatusResult,
) (bool, error) {
	switch result.Status {
	case types.RemotePending:
		return false, s.refreshPendingReason(ctx, transfer, result.PendingReason)

	case types.RemoteRedeemable:
		if transfer.Status != types.Pending {
			// REDEEMABLE and COLLECTING both already cover this
			// observation; COLLECTING only retreats on claim failure,
			// never from a poll.
			return false, nil
		}
		if err := s.DbClient.TransitionState(
			ctx, transfer.SourceTxHash, types.Redeemable,
			utils.QualifiedStatesToRedeemable(), nil,
		); err != nil {
			return false, err
		}
		s.publishStatusChange(ctx, transfer, types.Redeemable, "")
		return true, nil

	case types.RemoteConfirmed:
		if err := s.DbClient.TransitionState(
			ctx, transfer.SourceTxHash, types.Confirmed,
			utils.QualifiedStatesToConfirmed(),
			map[string]interface{}{
				"destination_tx_hash": result.DestinationTxHash,
				"resolved_at":         time.Now().Unix(),
			},
		); err != nil {
			return false, err
		}
		s.publishStatusChange(ctx, transfer, types.Confirmed, result.DestinationTxHash)
		return true, nil

	case types.RemoteReverted:
		if err := s.DbClient.TransitionState(
			ctx, transfer.SourceTxHash, types.Failed,
			utils.QualifiedStatesToFailed(),
			map[string]interface{}{
				"resolved_at": time.Now().Unix(),
			},
		); err != nil {
			return false, err
		}
		s.publishStatusChange(ctx, transfer, types.Failed, "")
		return true, nil

	default:
		return false, fmt.Errorf("unknown remote status %q for transfer %s", result.Status, transfer.SourceTxHash)
	}
}

// refreshPendingReason keeps the stored pending reason in step with the
// chain without counting as a status change.
func (s *Services) refreshPendingReason(ctx context.Context, transfer *model.TransferDocument, reason string) error {
	if transfer.Status != types.Pending || reason == "" || reason == transfer.PendingReason {
		return nil
	}
	err := s.DbClient.TransitionState(
		ctx, transfer.SourceTxHash, types.Pending,
		[]types.TransferStatus{types.Pending},
		map[string]interface{}{"pending_reason": reason},
	)
	if err != nil && db.IsInvalidTransitionError(err) {
		// Advanced concurrently; the next poll sees the new status.
		log.Ctx(ctx).Debug().Str("sourceTxHash", transfer.SourceTxHash).Msg("transfer advanced while refreshing pending reason")
		return nil
	}
	return err
}
