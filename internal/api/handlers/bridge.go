package handlers

import (
	"net/http"

	"github.com/beemeeupnow/bridge-api-service/internal/services"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
)

type bridgeStepResponse struct {
	Step     string                   `json:"step"`
	Selected *services.TransferPublic `json:"selected,omitempty"`
}

// GetBridgeStep returns the current bridge UI step and the transfer
// selected for collection, when there is one.
func (h *Handler) GetBridgeStep(request *http.Request) (*Result, *types.Error) {
	step, selected := h.services.CurrentStep()
	return NewResult(bridgeStepResponse{
		Step:     step.ToString(),
		Selected: selected,
	}), nil
}

// SubmitTransfer broadcasts a new bridge transfer on its source chain and
// records it as pending.
func (h *Handler) SubmitTransfer(request *http.Request) (*Result, *types.Error) {
	payload := services.SubmitTransferRequest{}
	if err := parseBody(request, &payload); err != nil {
		return nil, err
	}
	if err := parseChainIdField(payload.ActiveChainId, "active_chain_id"); err != nil {
		return nil, err
	}

	transfer, err := h.services.SubmitTransfer(request.Context(), &payload)
	if err != nil {
		return nil, err
	}
	return NewResult(transfer), nil
}

type selectCollectRequest struct {
	SourceTxHash string `json:"source_tx_hash"`
}

// SelectCollect marks a redeemable transfer as the one the user intends to
// claim.
func (h *Handler) SelectCollect(request *http.Request) (*Result, *types.Error) {
	payload := selectCollectRequest{}
	if err := parseBody(request, &payload); err != nil {
		return nil, err
	}
	if !utils.IsValidTxHash(payload.SourceTxHash) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid source_tx_hash")
	}

	transfer, err := h.services.SelectForCollection(request.Context(), payload.SourceTxHash)
	if err != nil {
		return nil, err
	}
	return NewResult(transfer), nil
}

type confirmCollectRequest struct {
	ActiveChainId uint64 `json:"active_chain_id"`
}

// ConfirmCollect claims the selected transfer on its destination chain.
func (h *Handler) ConfirmCollect(request *http.Request) (*Result, *types.Error) {
	payload := confirmCollectRequest{}
	if err := parseBody(request, &payload); err != nil {
		return nil, err
	}
	if err := parseChainIdField(payload.ActiveChainId, "active_chain_id"); err != nil {
		return nil, err
	}

	transfer, err := h.services.ConfirmCollection(request.Context(), payload.ActiveChainId)
	if err != nil {
		return nil, err
	}
	return NewResult(transfer), nil
}

// ResetBridge returns the bridge step machine to its initial state.
func (h *Handler) ResetBridge(request *http.Request) (*Result, *types.Error) {
	step := h.services.ResetBridge()
	return NewResult(bridgeStepResponse{Step: step.ToString()}), nil
}

type networkChangeRequest struct {
	ChainId uint64 `json:"chain_id"`
}

// NetworkChange reports the wallet's new active network and returns the
// resulting bridge step.
func (h *Handler) NetworkChange(request *http.Request) (*Result, *types.Error) {
	payload := networkChangeRequest{}
	if err := parseBody(request, &payload); err != nil {
		return nil, err
	}
	if err := parseChainIdField(payload.ChainId, "chain_id"); err != nil {
		return nil, err
	}

	step := h.services.HandleNetworkChange(request.Context(), payload.ChainId)
	return NewResult(bridgeStepResponse{Step: step.ToString()}), nil
}
