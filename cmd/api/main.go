package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gold-settlement/config"
	"gold-settlement/internal/adapter/custodian"
	httpHandler "gold-settlement/internal/adapter/http/handler"
	"gold-settlement/internal/adapter/storage/cache"
	pgStorage "gold-settlement/internal/adapter/storage/postgres"
	redisStorage "gold-settlement/internal/adapter/storage/redis"
	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/scheduler"
	"gold-settlement/internal/service"
	"gold-settlement/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Gold Settlement Core")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis backs the shared rate limit, replay store and run lock. Without it
	// every instance falls back to its own in-memory state.
	var rdb *goredis.Client
	if cfg.Webhook.SharedStore == "redis" {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			if cfg.Server.IsProduction() {
				log.Fatal().Err(err).Msg("Failed to connect to Redis")
			}
			log.Warn().Err(err).Msg("Redis unavailable, using in-memory stores")
			rdb = nil
		} else {
			defer rdb.Close()
			healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		}
	}

	localLimiter := cache.NewLocalRateLimiter(cfg.Webhook.LocalCacheSize, time.Hour)
	var (
		limiter ports.RateLimiter = localLimiter
		shared  ports.ReplayStore
		locker  ports.RunLocker = cache.NewLocalRunLocker(64, cfg.Reconciliation.LockTTL)
	)
	if rdb != nil {
		limiter = cache.NewFallbackRateLimiter(redisStorage.NewRateLimitStore(rdb), localLimiter, log)
		shared = redisStorage.NewReplayStore(rdb)
		locker = redisStorage.NewRunLocker(rdb)
	}
	replay := cache.NewTieredReplayStore(cfg.Webhook.LocalCacheSize, cfg.Webhook.IdempotencyTTL, shared, log)

	// Initialize repositories
	orderRepo := pgStorage.NewOrderRepo(pool)
	barRepo := pgStorage.NewBarRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	batchRepo := pgStorage.NewLockBatchRepo(pool)
	cashRepo := pgStorage.NewCashLedgerRepo(pool)
	conversionRepo := pgStorage.NewConversionRepo(pool)
	alertRepo := pgStorage.NewAlertRepo(pool)
	trailRepo := pgStorage.NewTrailRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	certSigner, err := service.NewCertificateSigner(cfg.Certificates.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize certificate signer")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(pgStorage.NewAuditRepo(pool), log)
	webhookAudit := service.NewWebhookAuditService(pgStorage.NewWebhookAuditRepo(pool), cfg.Webhook.AuditBuffer, logger.Component(log, "webhook_audit"))
	notifier := service.NewNotifierService(
		pgStorage.NewDeliveryLogRepo(pool), sigSvc, nil,
		cfg.Notifier.Secret, cfg.Notifier.Timeout, cfg.Notifier.MaxResponseBody,
		logger.Component(log, "notifier"),
	)
	custodianClient := custodian.NewClient(cfg.Custodian.BaseURL, cfg.Custodian.APIKey, cfg.Custodian.Timeout, nil, logger.Component(log, "custodian"))
	prices := service.NewStaticPriceOracle(decimal.NewFromFloat(cfg.Pricing.USDPerGram))

	// Initialize business services
	gateway, err := service.NewWebhookGateway(service.GatewayConfig{
		Secret:             cfg.Webhook.Secret,
		AllowedIPs:         cfg.Webhook.AllowedIPs,
		EnforceIPAllowlist: cfg.Webhook.EnforceIPAllowlist,
		Production:         cfg.Server.IsProduction(),
		RateLimit:          cfg.Webhook.RateLimit,
		RateWindow:         cfg.Webhook.RateWindow,
		MaxTimestampDrift:  cfg.Webhook.MaxTimestampDrift,
		IdempotencyTTL:     cfg.Webhook.IdempotencyTTL,
		MaxGrams:           decimal.NewFromFloat(cfg.Webhook.MaxGrams),
		MaxUSD:             decimal.NewFromFloat(cfg.Webhook.MaxUSD),
	}, limiter, replay, sigSvc, webhookAudit, logger.Component(log, "gateway"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize webhook gateway")
	}
	orderSvc := service.NewOrderService(
		orderRepo, barRepo, trailRepo, transactor, custodianClient, prices, certSigner, notifier, auditSvc,
		service.OrderConfig{CallbackURL: cfg.Custodian.CallbackURL, TrailEnabled: cfg.Trail.Enabled},
		logger.Component(log, "orders"),
	)
	settlementSvc := service.NewSettlementService(
		orderRepo, barRepo, walletRepo, trailRepo, transactor, certSigner, notifier, auditSvc,
		logger.Component(log, "settlement"),
	)
	cashSvc := service.NewCashLedgerService(cashRepo, transactor, auditSvc, logger.Component(log, "cash_ledger"))
	conversionSvc := service.NewConversionService(
		conversionRepo, walletRepo, batchRepo, cashRepo, cashSvc, transactor, prices, auditSvc,
		decimal.NewFromFloat(cfg.Conversion.FeePct), logger.Component(log, "conversions"),
	)
	reconSvc := service.NewReconciliationService(
		walletRepo, barRepo, batchRepo, cashSvc, alertRepo, locker, auditSvc,
		service.ReconciliationConfig{
			Policy: domain.SeverityPolicy{
				WarningPct:  decimal.NewFromFloat(cfg.Reconciliation.WarningPct),
				CriticalPct: decimal.NewFromFloat(cfg.Reconciliation.CriticalPct),
			},
			LockTTL: cfg.Reconciliation.LockTTL,
		},
		logger.Component(log, "reconciliation"),
	)

	// Scheduled reconciliation
	if cfg.Reconciliation.Enabled {
		sched, err := scheduler.NewReconciliation(reconSvc, cfg.Reconciliation.Interval, cfg.Reconciliation.LockTTL, logger.Component(log, "scheduler"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create reconciliation scheduler")
		}
		if err := sched.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to start reconciliation scheduler")
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				log.Warn().Err(err).Msg("Scheduler shutdown failed")
			}
		}()
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Gateway:        gateway,
		Orders:         orderSvc,
		Settlement:     settlementSvc,
		Conversions:    conversionSvc,
		CashLedger:     cashSvc,
		Reconciliation: reconSvc,
		WebhookAudit:   webhookAudit,
		TokenSvc:       tokenSvc,
		AuditSvc:       auditSvc,
		RateLimiter:    limiter,
		TrustedProxies: cfg.Server.TrustedProxies,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	webhookAudit.Close()

	log.Info().Msg("Server exited")
}
