package handler

import (
	"gold-settlement/internal/adapter/http/middleware"
	"gold-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Gateway        ports.WebhookGateway
	Orders         ports.OrderService
	Settlement     ports.SettlementService
	Conversions    ports.ConversionService
	CashLedger     ports.CashLedgerService
	Reconciliation ports.ReconciliationService
	WebhookAudit   ports.WebhookAuditService
	TokenSvc       ports.TokenService
	AuditSvc       ports.AuditService
	RateLimiter    ports.RateLimiter // nil = admin rate limiting disabled
	TrustedProxies []string          // empty = forwarding headers ignored
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	// The webhook allowlist and per-IP rate limit key off ClientIP, so
	// forwarding headers are honoured only from listed proxies.
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		deps.Logger.Error().Err(err).Strs("trusted_proxies", deps.TrustedProxies).
			Msg("invalid trusted proxies, using peer address")
		_ = r.SetTrustedProxies(nil)
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	webhookHandler := NewWebhookHandler(deps.Gateway, deps.Orders, deps.WebhookAudit, deps.Logger)
	r.POST("/webhooks", webhookHandler.Receive)

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	admin := r.Group("/api/v1/admin",
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
		middleware.RequireRole(middleware.RoleAdmin),
	)
	if deps.AuditSvc != nil {
		admin.Use(middleware.AuditLog(deps.AuditSvc))
	}

	orderHandler := NewOrderHandler(deps.Orders, deps.Settlement)
	orders := admin.Group("/orders")
	{
		orders.POST("", rl("admin_write"), orderHandler.Create)
		orders.GET("", rl("admin_read"), orderHandler.List)
		orders.GET("/:id", rl("admin_read"), orderHandler.Get)
		orders.POST("/:id/approve", rl("admin_write"), orderHandler.Approve)
		orders.POST("/:id/reject", rl("admin_write"), orderHandler.Reject)
		orders.POST("/:id/cancel", rl("admin_write"), orderHandler.Cancel)
		orders.POST("/:id/settlement/approve", rl("admin_write"), orderHandler.ApproveSettlement)
		orders.POST("/:id/settlement/reject", rl("admin_write"), orderHandler.RejectSettlement)
	}

	conversionHandler := NewConversionHandler(deps.Conversions)
	conversions := admin.Group("/conversions")
	{
		conversions.POST("", rl("admin_write"), conversionHandler.Request)
		conversions.GET("", rl("admin_read"), conversionHandler.List)
		conversions.POST("/:id/approve", rl("admin_write"), conversionHandler.Approve)
		conversions.POST("/:id/reject", rl("admin_write"), conversionHandler.Reject)
	}

	cashHandler := NewCashLedgerHandler(deps.CashLedger)
	admin.GET("/cash-ledger", rl("admin_read"), cashHandler.List)
	admin.POST("/cash-ledger/entries", rl("admin_write"), cashHandler.PostEntry)

	reconHandler := NewReconciliationHandler(deps.Reconciliation)
	recon := admin.Group("/reconciliation")
	{
		recon.POST("/run", rl("reconciliation"), reconHandler.Run)
		recon.GET("/alerts", rl("admin_read"), reconHandler.ListAlerts)
		recon.POST("/alerts/:id/resolve", rl("admin_write"), reconHandler.ResolveAlert)
	}

	admin.GET("/webhooks/audit", rl("admin_read"), webhookHandler.ListAudit)

	return r
}
