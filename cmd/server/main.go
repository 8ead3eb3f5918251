package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"riskdesk/internal/audit"
	audithandler "riskdesk/internal/audit/handler"
	"riskdesk/internal/audit/publisher"
	auditmemory "riskdesk/internal/audit/store/memory"
	auditpostgres "riskdesk/internal/audit/store/postgres"
	auditworker "riskdesk/internal/audit/worker"
	"riskdesk/internal/platform/config"
	"riskdesk/internal/platform/httpserver"
	"riskdesk/internal/platform/logger"
	"riskdesk/internal/platform/middleware"
	platformredis "riskdesk/internal/platform/redis"
	"riskdesk/internal/platform/token"
	"riskdesk/internal/risk"
	riskhandler "riskdesk/internal/risk/handler"
	"riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/store"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives under internal; failures here are startup failures.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Profile and counterparty fixtures.
	profiles := store.NewInMemoryProfileStore()
	parties := store.NewInMemoryCounterpartyStore()
	if cfg.SeedFixtures {
		if err := store.SeedDemoFixtures(ctx, profiles, parties); err != nil {
			log.Error("fixture seeding failed", "error", err)
			os.Exit(1)
		}
		log.Info("demo fixtures seeded")
	}

	var counterparties store.CounterpartyStore = parties
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		counterparties = store.NewCachedCounterpartyStore(parties, redisClient, cfg.Redis.CacheTTL)
		log.Info("counterparty cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	// Audit trail: in-memory by default, Postgres when configured.
	var auditStore audit.Store = auditmemory.NewInMemoryStore()
	if cfg.Audit.PostgresURL != "" {
		db, err := sql.Open("pgx", cfg.Audit.PostgresURL)
		if err != nil {
			log.Error("audit database open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pgStore := auditpostgres.New(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("audit schema setup failed", "error", err)
			os.Exit(1)
		}
		auditStore = pgStore
		log.Info("audit store backed by postgres")
	}

	group, groupCtx := errgroup.WithContext(ctx)

	var auditOpts []audit.Option
	if len(cfg.Audit.KafkaBrokers) > 0 {
		kafka, err := publisher.NewKafka(cfg.Audit.KafkaBrokers, cfg.Audit.KafkaTopic)
		if err != nil {
			log.Error("kafka publisher setup failed", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()

		outbox := make(chan audit.Event, cfg.Audit.BufferSize)
		auditOpts = append(auditOpts, audit.WithOutbox(outbox))

		worker := auditworker.New(kafka, outbox, log)
		group.Go(func() error {
			return worker.Run(groupCtx)
		})
		log.Info("audit kafka fan-out enabled", "topic", cfg.Audit.KafkaTopic)
	}

	auditService := audit.NewService(auditStore, auditOpts...)
	riskService := risk.NewService(profiles, counterparties, auditService, log, metrics.New())

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/v1", func(r chi.Router) {
		if cfg.AuthDisabled {
			log.Warn("bearer auth disabled; trusting X-Customer-ID header")
			r.Use(middleware.HeaderAuth)
		} else {
			tokens := token.NewService(cfg.JWTSigningKey, cfg.JWTIssuer)
			r.Use(middleware.RequireAuth(tokens, log))
		}

		riskhandler.New(riskService, log).Register(r)
		audithandler.New(auditService, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	group.Go(func() error {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
