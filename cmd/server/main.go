// Package main runs the kanban board service: the normalized entity store
// behind the REST API, the confirmation dispatcher, and the sync transport it
// confirms against. Dependencies are wired with samber/do v2. SIGINT and
// SIGTERM stop the HTTP server first and then drain pending confirmations.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/clients/simulated"
	adapthttp "github.com/jsamuelsen11/kanban-board/internal/adapters/http"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-board/internal/app"
	"github.com/jsamuelsen11/kanban-board/internal/app/optimistic"
	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/health"
	"github.com/jsamuelsen11/kanban-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
	"github.com/jsamuelsen11/kanban-board/internal/store"
)

const otelShutdownTimeout = 5 * time.Second

// syncTransport is what the confirm transports provide: mutation
// confirmation plus a readiness probe.
type syncTransport interface {
	ports.Confirmer
	ports.HealthChecker
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	st := do.MustInvoke[*store.Store](injector)
	if err := otel.ObserveEntities(entityCounts(st)); err != nil {
		return fmt.Errorf("registering entity gauges: %w", err)
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	dispatcher := do.MustInvoke[*optimistic.Dispatcher](injector)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[syncTransport](injector))

	logger.Info("starting kanban board",
		slog.String("profile", profile),
		slog.String("transport", cfg.Confirm.Transport),
		slog.Bool("seed", cfg.Store.Seed),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(gctx)
	})
	g.Go(func() error {
		err := server.Run(gctx)

		// The server has stopped taking requests, so no new batches arrive.
		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if cerr := dispatcher.Close(drainCtx); cerr != nil {
			logger.Error("confirmation queue not drained",
				slog.Int("pending", dispatcher.Pending()),
				slog.Any("error", cerr),
			)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func entityCounts(st *store.Store) func() telemetry.EntityCounts {
	return func() telemetry.EntityCounts {
		s := st.Stats()
		return telemetry.EntityCounts{Boards: s.Boards, Columns: s.Columns, Tasks: s.Tasks}
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*store.Store, error) {
		st := store.New()
		if cfg.Store.Seed {
			if err := app.Seed(st, time.Now()); err != nil {
				return nil, fmt.Errorf("seeding store: %w", err)
			}
		}
		return st, nil
	})

	do.Provide(injector, func(i do.Injector) (syncTransport, error) {
		if cfg.Confirm.Transport == config.TransportRemote {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.Client, "sync-api", metrics, logger)
			return acl.NewSyncClient(client, logger), nil
		}
		return simulated.New(&cfg.Confirm, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*optimistic.Dispatcher, error) {
		transport := do.MustInvoke[syncTransport](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return optimistic.NewDispatcher(&cfg.Optimistic, transport, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		st := do.MustInvoke[*store.Store](i)
		dispatcher := do.MustInvoke[*optimistic.Dispatcher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoardService(st, dispatcher, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		dispatcher := do.MustInvoke[*optimistic.Dispatcher](i)
		return adapthttp.Handlers{
			Boards:  handlers.NewBoardHandler(svc),
			Columns: handlers.NewColumnHandler(svc),
			Tasks:   handlers.NewTaskHandler(svc),
			Users:   handlers.NewUserHandler(svc),
			Health:  handlers.NewHealthHandler(registry, handlers.WithPendingMutations(dispatcher.Pending)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := chi.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Actor(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		)
		return adapthttp.NewRouter(h, stack...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
