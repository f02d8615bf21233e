package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/services"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

func parseBody[T any](request *http.Request, payload *T) *types.Error {
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return nil
}

func parseOwnerAddressQuery(request *http.Request) (string, *types.Error) {
	ownerAddress := request.URL.Query().Get("owner_address")
	if !utils.IsValidEvmAddress(ownerAddress) {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid owner_address query parameter")
	}
	return ownerAddress, nil
}

// parseWithinHoursQuery returns 0 when the parameter is absent, meaning no
// window is applied.
func parseWithinHoursQuery(request *http.Request) (int, *types.Error) {
	raw := request.URL.Query().Get("within_hours")
	if raw == "" {
		return 0, nil
	}
	withinHours, err := strconv.Atoi(raw)
	if err != nil || withinHours <= 0 {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "within_hours must be a positive integer")
	}
	return withinHours, nil
}

func parseChainIdField(chainId uint64, field string) *types.Error {
	if chainId == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "missing "+field)
	}
	return nil
}
