package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/cmd/bridge-api-service/cli"
	"github.com/beemeeupnow/bridge-api-service/cmd/bridge-api-service/scripts"
	"github.com/beemeeupnow/bridge-api-service/internal/api"
	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/chains/evm"
	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/observability/healthcheck"
	"github.com/beemeeupnow/bridge-api-service/internal/observability/metrics"
	"github.com/beemeeupnow/bridge-api-service/internal/queue"
	"github.com/beemeeupnow/bridge-api-service/internal/reconciler"
	"github.com/beemeeupnow/bridge-api-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge db model")
	}

	registry, err := chains.Build(ctx, cfg.Chains, func(c config.ChainConfig, signerKey string) (chains.StatusProvider, error) {
		return evm.New(c, signerKey)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up network registry")
	}

	queues, err := queue.New(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up transfer event queue")
	}
	defer queues.Stop()

	services, err := services.New(ctx, cfg, registry, queues)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge services layer")
	}

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable events.")
		err := scripts.ReplayUnprocessableEvents(ctx, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable events")
		}
		return
	}

	if err := healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	go reconciler.New(services, &cfg.Reconciler).Start(ctx)

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting bridge api service")
	}
}
