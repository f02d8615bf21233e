package handlers

import (
	"net/http"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// GetTransfers returns the owner's transfers, most recent first. The
// optional within_hours query drops transfers resolved before the window.
func (h *Handler) GetTransfers(request *http.Request) (*Result, *types.Error) {
	ownerAddress, err := parseOwnerAddressQuery(request)
	if err != nil {
		return nil, err
	}
	withinHours, err := parseWithinHoursQuery(request)
	if err != nil {
		return nil, err
	}

	transfers, err := h.services.TransfersByOwner(request.Context(), ownerAddress, withinHours)
	if err != nil {
		return nil, err
	}
	return NewResult(transfers), nil
}

// GetCollectableTransfers returns only the owner's redeemable transfers.
func (h *Handler) GetCollectableTransfers(request *http.Request) (*Result, *types.Error) {
	ownerAddress, err := parseOwnerAddressQuery(request)
	if err != nil {
		return nil, err
	}

	transfers, err := h.services.CollectableTransfersByOwner(request.Context(), ownerAddress)
	if err != nil {
		return nil, err
	}
	return NewResult(transfers), nil
}
