package api

import (
	"github.com/go-chi/chi"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Get("/v1/networks", registerHandler(handlers.GetNetworks))
	r.Get("/v1/transfers", registerHandler(handlers.GetTransfers))
	r.Get("/v1/transfers/collectable", registerHandler(handlers.GetCollectableTransfers))

	r.Get("/v1/bridge/step", registerHandler(handlers.GetBridgeStep))
	r.Post("/v1/bridge/submit", registerHandler(handlers.SubmitTransfer))
	r.Post("/v1/bridge/collect/select", registerHandler(handlers.SelectCollect))
	r.Post("/v1/bridge/collect/confirm", registerHandler(handlers.ConfirmCollect))
	r.Post("/v1/bridge/reset", registerHandler(handlers.ResetBridge))
	r.Post("/v1/bridge/network-change", registerHandler(handlers.NetworkChange))
}
