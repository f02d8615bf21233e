package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/observability/metrics"
	"github.com/beemeeupnow/bridge-api-service/internal/services"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// Reconciler periodically folds on-chain reality into the transfer store.
// It is the only writer that runs without a user behind it, so every poll
// is fault-isolated: one bad transfer or one dead RPC never stops the
// sweep.
type Reconciler struct {
	services *services.Services
	cfg      *config.ReconcilerConfig
}

func New(services *services.Services, cfg *config.ReconcilerConfig) *Reconciler {
	return &Reconciler{
		services: services,
		cfg:      cfg,
	}
}

// Start runs sweeps until the context is cancelled. The first sweep fires
// immediately so a restart catches up without waiting a full interval.
func (r *Reconciler) Start(ctx context.Context) {
	log.Ctx(ctx).Info().
		Dur("interval", r.cfg.Interval).
		Int("maxConcurrency", r.cfg.MaxConcurrency).
		Msg("starting transfer reconciler")

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	r.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Ctx(ctx).Info().Msg("stopping transfer reconciler")
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep polls every non-terminal transfer once and waits for all polls to
// finish.
func (r *Reconciler) Sweep(ctx context.Context) {
	transfers, err := r.services.FindNonTerminalTransfers(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load non-terminal transfers")
		return
	}
	if len(transfers) == 0 {
		return
	}

	sem := make(chan struct{}, r.cfg.MaxConcurrency)
	var wg sync.WaitGroup
	for i := range transfers {
		transfer := transfers[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			r.pollTransfer(ctx, &transfer)
		}()
	}
	wg.Wait()
}

func (r *Reconciler) pollTransfer(ctx context.Context, transfer *model.TransferDocument) {
	stopTimer := metrics.StartReconcilerPollTimer()
	logger := log.Ctx(ctx).With().
		Str("sourceTxHash", transfer.SourceTxHash).
		Str("status", transfer.Status.ToString()).
		Logger()

	pollCtx, cancel := context.WithTimeout(ctx, r.cfg.PollTimeout)
	defer cancel()

	result, err := r.services.QueryRemoteStatus(pollCtx, transfer)
	if err != nil {
		// RPC trouble is transient; the transfer stays in the polling set
		// and the next sweep retries.
		logger.Warn().Err(err).Msg("failed to query remote transfer status")
		stopTimer(metrics.Error)
		return
	}

	changed, err := r.services.ApplyRemoteStatus(pollCtx, transfer, result)
	if err != nil {
		if db.IsInvalidTransitionError(err) {
			// The store refused an edge the chain implies. Either a race
			// with the orchestrator resolved it first, or the stored
			// record is wrong; both deserve operator attention.
			metrics.RecordInvalidTransition()
			logger.Error().Err(err).Msg("remote status refused by transition rules")
		} else {
			logger.Error().Err(err).Msg("failed to apply remote transfer status")
		}
		stopTimer(metrics.Error)
		return
	}

	if changed {
		metrics.RecordTransferTransition(storedStatusFor(result.Status).ToString())
		logger.Info().Str("remoteStatus", string(result.Status)).Msg("transfer status advanced")
	}
	stopTimer(metrics.Success)
}

func storedStatusFor(remote types.RemoteStatus) types.TransferStatus {
	switch remote {
	case types.RemoteConfirmed:
		return types.Confirmed
	case types.RemoteReverted:
		return types.Failed
	default:
		return types.Redeemable
	}
}
