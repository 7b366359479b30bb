package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"transactions-saga/config"
	"transactions-saga/internal/adapter/gateway"
	httpHandler "transactions-saga/internal/adapter/http/handler"
	"transactions-saga/internal/adapter/httpclient"
	"transactions-saga/internal/adapter/metrics"
	"transactions-saga/internal/adapter/nodo"
	"transactions-saga/internal/adapter/paymentmethods"
	pgStorage "transactions-saga/internal/adapter/storage/postgres"
	redisStorage "transactions-saga/internal/adapter/storage/redis"
	"transactions-saga/internal/core/ports"
	"transactions-saga/internal/service"
	"transactions-saga/internal/worker"
	"transactions-saga/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting transactions saga")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Storage
	eventStore := pgStorage.NewEventStore(pool)
	viewRepo := pgStorage.NewTransactionViewRepo(pool)
	infoCache := redisStorage.NewPaymentRequestInfoCache(rdb, cfg.Transaction.PaymentRequestInfoTTL)
	locks := redisStorage.NewExclusiveLockStore(rdb)
	queue := redisStorage.NewQueue(rdb, log)

	// Upstream clients
	nodoClient := nodo.NewClient(httpclient.New("nodo", cfg.Nodo), log)
	npgClient := gateway.NewNpgClient(httpclient.New("npg", cfg.NPG.UpstreamConfig), cfg.NPG)
	redirectClient := gateway.NewRedirectClient(httpclient.New("redirect", cfg.Redirect.UpstreamConfig), cfg.Redirect)
	paymentMethodsClient := paymentmethods.NewClient(httpclient.New("payment-methods", cfg.PaymentMethods))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tracer := metrics.NewTracer(registry)

	tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	saga := cfg.Saga()

	pipelines := []ports.AuthorizationPipeline{
		service.NewNpgPipeline(npgClient),
		service.NewRedirectPipeline(redirectClient, cfg.Redirect.PspTypes),
	}

	services := httpHandler.TransactionServices{
		Activation:              service.NewActivationService(eventStore, viewRepo, infoCache, locks, nodoClient, tokens, queue, tracer, saga, log),
		Authorization:           service.NewAuthorizationService(eventStore, viewRepo, locks, paymentMethodsClient, pipelines, queue, tracer, saga, log),
		AuthorizationCompletion: service.NewAuthorizationCompletionService(eventStore, viewRepo, log),
		ClosureRequest:          service.NewClosureRequestService(eventStore, viewRepo, queue, saga, log),
		UserReceipt:             service.NewUserReceiptService(eventStore, viewRepo, queue, saga, log),
		Cancellation:            service.NewCancellationService(eventStore, viewRepo, queue, saga, log),
		Query:                   service.NewTransactionQueryService(eventStore, log),
	}
	closureSvc := service.NewClosureService(eventStore, viewRepo, infoCache, nodoClient, queue, tracer, saga, log)

	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Server.RateLimit {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Services:       services,
		Tokens:         tokens,
		TokenAudience:  cfg.JWT.Audience,
		InternalAPIKey: cfg.Server.InternalAPIKey,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		Registry:       registry,
		Logger:         log,
	})

	// Closure worker
	workerCtx, stopWorker := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if cfg.Worker.Enabled {
		dispatcher := worker.NewDispatcher(queue, closureSvc, worker.Options{
			Queue:        cfg.Queues.Closure,
			PollInterval: cfg.Worker.PollInterval,
			BatchSize:    cfg.Worker.BatchSize,
			Lease:        cfg.Worker.VisibilityTimeout,
		}, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			dispatcher.Run(workerCtx)
		}()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	stopWorker()
	wg.Wait()

	log.Info().Msg("Server exited")
}
