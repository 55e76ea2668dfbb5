// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package main contains the registry main function to start the
// certificate registry service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/certledger/registry/certs"
	httpapi "github.com/certledger/registry/certs/api"
	"github.com/certledger/registry/certs/events"
	"github.com/certledger/registry/certs/middleware"
	"github.com/certledger/registry/certs/postgres"
	cllog "github.com/certledger/registry/logger"
	clauthn "github.com/certledger/registry/pkg/authn"
	jwtauthn "github.com/certledger/registry/pkg/authn/jwt"
	clevents "github.com/certledger/registry/pkg/events"
	natspub "github.com/certledger/registry/pkg/events/nats"
	jaegerclient "github.com/certledger/registry/pkg/jaeger"
	pgclient "github.com/certledger/registry/pkg/postgres"
	"github.com/certledger/registry/pkg/prometheus"
	"github.com/certledger/registry/pkg/server"
	httpserver "github.com/certledger/registry/pkg/server/http"
	"github.com/certledger/registry/pkg/ulid"
	"github.com/caarlos0/env/v11"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "registry"
	envPrefixDB    = "CL_REGISTRY_DB_"
	envPrefixHTTP  = "CL_REGISTRY_HTTP_"
	defDB          = "registry"
	defSvcHTTPPort = "9040"
)

type config struct {
	LogLevel   string  `env:"CL_REGISTRY_LOG_LEVEL"   envDefault:"info"`
	Owner      string  `env:"CL_REGISTRY_OWNER"       envDefault:""`
	AuthSecret string  `env:"CL_REGISTRY_AUTH_SECRET" envDefault:""`
	ESURL      string  `env:"CL_ES_URL"               envDefault:"nats://localhost:4222"`
	JaegerURL  url.URL `env:"CL_JAEGER_URL"           envDefault:"http://localhost:4318/v1/traces"`
	InstanceID string  `env:"CL_REGISTRY_INSTANCE_ID" envDefault:""`
	TraceRatio float64 `env:"CL_JAEGER_TRACE_RATIO"   envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := cllog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err.Error())
	}

	var exitCode int
	defer cllog.ExitWithError(&exitCode)

	idp := ulid.New()
	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = idp.ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	if cfg.Owner == "" {
		logger.Error("no registry owner address specified")
		exitCode = 1
		return
	}

	if cfg.AuthSecret == "" {
		logger.Error("no authentication secret specified")
		exitCode = 1
		return
	}

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
	}
	migrations := postgres.Migration()
	db, err := pgclient.Setup(dbConfig, *migrations)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	authn := jwtauthn.NewAuthentication([]byte(cfg.AuthSecret))
	authnMiddleware := clauthn.NewAuthNMiddleware(authn)

	tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %v", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	publisher, err := natspub.NewPublisher(ctx, cfg.ESURL)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to event store: %s", err))
		exitCode = 1
		return
	}
	defer publisher.Close()

	svc, err := newService(ctx, db, dbConfig, tracer, logger, cfg, publisher)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s service: %s", svcName, err))
		exitCode = 1
		return
	}

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, httpapi.MakeHandler(svc, authnMiddleware, logger, cfg.InstanceID, idp), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("Registry service terminated: %s", err))
	}
}

func newService(ctx context.Context, db *sqlx.DB, dbConfig pgclient.Config, tracer trace.Tracer, logger *slog.Logger, cfg config, publisher clevents.Publisher) (certs.Service, error) {
	database := pgclient.NewDatabase(db, dbConfig, tracer)
	repo := postgres.NewRepository(database)
	svc, err := certs.New(ctx, repo, cfg.Owner)
	if err != nil {
		return nil, err
	}
	svc = events.NewEventStoreMiddleware(svc, publisher)
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)
	svc = middleware.TracingMiddleware(svc, tracer)

	return svc, nil
}
