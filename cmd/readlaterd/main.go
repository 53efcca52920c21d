package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"readlater/internal/api"
	"readlater/internal/cache"
	"readlater/internal/config"
	"readlater/internal/fallback"
	"readlater/internal/htmlfetch"
	"readlater/internal/inbox"
	"readlater/internal/metadata"
	"readlater/internal/parser"
	"readlater/internal/publisher"
	"readlater/internal/scheduler"
	"readlater/internal/service"
	"readlater/internal/storage/postgres"
	"readlater/migrations"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := migrations.Run(db)
	if err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready", "schema_version", version, "dirty", dirty)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	// RabbitMQ is optional; with it disabled article events are simply not
	// emitted and everything else works the same.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Initialize stores
	articleStore := postgres.NewArticleStore(db)
	stateStore := postgres.NewReconcileStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize the content pipeline tiers
	contentCache := cache.NewContentCache(rdb, cfg.Redis.Namespace, cfg.Content.CacheExpiration, logger)
	sharedInbox := inbox.New(rdb, cfg.Redis.Namespace, logger)
	articleParser := parser.NewAdapter(!cfg.Content.DisableParser, logger)
	htmlFetcher := htmlfetch.NewFetcher(nil, "", cfg.Content.MaxDocumentSize, logger)
	scraper := metadata.NewScraper(htmlFetcher, logger)
	fallbackClient := fallback.New(fallback.Config{
		BaseURL:        cfg.Fallback.BaseURL,
		Token:          cfg.Fallback.Token,
		Timeout:        cfg.Fallback.Timeout,
		MaxAttempts:    cfg.Fallback.Retry.MaxAttempts,
		InitialBackoff: cfg.Fallback.Retry.InitialBackoff,
		MaxBackoff:     cfg.Fallback.Retry.MaxBackoff,
	}, logger)

	// Initialize services
	contentService := service.NewContentService(
		contentCache,
		articleParser,
		htmlFetcher,
		scraper,
		fallbackClient,
		logger,
		cfg.Content,
	)
	guard := service.NewGuard(articleStore, txManager, logger)
	reader := service.NewReader(articleStore, contentService, logger, cfg.Content)
	library := service.NewLibrary(articleStore, guard, contentService, pub, logger, cfg.Content)
	reconciler := service.NewReconciler(
		sharedInbox,
		stateStore,
		articleStore,
		guard,
		contentCache,
		contentService,
		pub,
		logger,
		cfg.Content,
	)
	sweeper := service.NewSweeper(articleStore, txManager, pub, logger)

	sched := scheduler.NewScheduler(reconciler, sweeper, cfg.Reconcile.Interval, cfg.Sweep.Interval, logger)

	handler := api.NewHandler(library, reader, sharedInbox, reconciler, sweeper, logger)
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(handler, cfg.Server.AdminAPIKey, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}

	<-schedDone
	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
