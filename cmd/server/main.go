// Crisismap - Disaster Response Coordination and Geographic Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crisismap

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/crisismap/docs" // registers the swagger document
	"github.com/tomtom215/crisismap/internal/api"
	"github.com/tomtom215/crisismap/internal/authz"
	"github.com/tomtom215/crisismap/internal/broadcast"
	"github.com/tomtom215/crisismap/internal/cache"
	"github.com/tomtom215/crisismap/internal/config"
	"github.com/tomtom215/crisismap/internal/database"
	"github.com/tomtom215/crisismap/internal/logging"
	"github.com/tomtom215/crisismap/internal/pipeline"
	"github.com/tomtom215/crisismap/internal/supervisor"
	"github.com/tomtom215/crisismap/internal/supervisor/services"
	ws "github.com/tomtom215/crisismap/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("cache_backend", cfg.Cache.Backend).
		Str("broadcast_backend", cfg.Broadcast.Backend).
		Msg("Starting crisismap")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	store := cache.Open(cache.Options{
		Backend:        cfg.Cache.Backend,
		BadgerPath:     cfg.Cache.BadgerPath,
		BadgerInMemory: cfg.Cache.BadgerInMemory,
	}, db)
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()

	users, err := cfg.Auth.UserList()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid user directory")
	}
	enforcer, err := authz.NewEnforcer(nil, users)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authorization")
	}
	defer enforcer.Close()
	logging.Info().Int("users", len(users)).Msg("Authorization initialized")

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	natsURL := cfg.Broadcast.NATSURL
	if cfg.Broadcast.Backend == broadcast.BackendNATS && cfg.Broadcast.NATSEmbedded {
		embedded, err := broadcast.NewEmbeddedServer("127.0.0.1", cfg.Broadcast.NATSPort)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to start embedded NATS server")
		}
		natsURL = embedded.ClientURL()
		tree.AddMessagingService(embedded)
	}

	transport, err := broadcast.Open(broadcast.Options{
		Backend: cfg.Broadcast.Backend,
		NATSURL: natsURL,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open broadcast transport")
	}
	defer func() {
		if err := transport.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing broadcast transport")
		}
	}()

	hub := ws.NewHub()
	tree.AddMessagingService(hub)
	tree.AddMessagingService(broadcast.NewRelay(transport.Subscriber, cfg.Broadcast.Topic, hub))

	aggregation := pipeline.NewServices(cfg, pipeline.Stores{
		Social:        db,
		Updates:       db,
		Verifications: db,
	}, store)

	handler := api.NewHandler(api.Dependencies{
		Config:   cfg,
		Store:    db,
		Geocoder: aggregation.Geocoder,
		Social:   aggregation.Social,
		Updates:  aggregation.Updates,
		Verifier: aggregation.Verifier,
		Notifier: broadcast.NewPublisher(transport.Publisher, cfg.Broadcast.Topic),
		Hub:      hub,
		Enforcer: enforcer,
		Version:  version,
	})
	router := api.NewRouter(handler, authz.NewDirectory(users))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree.AddDataService(services.NewCacheSweeperService(store, cfg.Cache.SweepInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if cfg.Server.SwaggerEnabled {
		logging.Info().Str("url", "http://"+server.Addr+"/swagger/index.html").Msg("Swagger UI enabled")
	}
	if !cfg.Server.IsProduction() && len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree started")

	<-ctx.Done()
	logging.Info().Msg("Shutdown signal received, stopping services")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor stopped with error")
		}
	case <-time.After(cfg.Server.ShutdownTimeout + 5*time.Second):
		logging.Warn().Msg("Supervisor did not stop in time")
		if report, err := tree.UnstoppedServiceReport(); err == nil {
			for _, svc := range report {
				logging.Warn().Str("service", svc.Name).Msg("Service did not stop")
			}
		}
	}

	logging.Info().Msg("Server stopped")
}
