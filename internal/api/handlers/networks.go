package handlers

import (
	"net/http"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// GetNetworks returns the directory of supported networks.
func (h *Handler) GetNetworks(request *http.Request) (*Result, *types.Error) {
	return NewResult(h.services.Registry.Networks()), nil
}
