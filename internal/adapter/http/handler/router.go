package handler

import (
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/middleware"
	redisStore "github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/redis"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Vault          ports.VaultService
	Relay          ports.RelayService
	Events         ports.EventService
	Tokens         ports.TokenRegistry
	Faucet         *Faucet // nil = faucet disabled
	Queue          ports.DeliveryQueue
	Processed      ports.DeliveryLog
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	signed := middleware.SignatureAuth(deps.SigSvc, deps.NonceStore, deps.Logger)
	v1 := r.Group("/api/v1")

	vaultHandler := NewVaultHandler(deps.Vault)
	vault := v1.Group("/vault")
	{
		vault.GET("", rl("reads"), vaultHandler.GetVault)
		vault.GET("/preview/deposit", rl("reads"), vaultHandler.PreviewDeposit)
		vault.GET("/preview/withdraw", rl("reads"), vaultHandler.PreviewWithdraw)

		vault.POST("/deposit", signed, rl("vault"), vaultHandler.Deposit)
		vault.POST("/withdraw", signed, rl("vault"), vaultHandler.Withdraw)
		vault.POST("/yield", signed, rl("vault"), vaultHandler.DepositYield)
		vault.POST("/invest", signed, rl("vault"), vaultHandler.WithdrawForInvestment)
		vault.PUT("/rwa-value", signed, rl("vault"), vaultHandler.UpdateRWAValue)
		vault.POST("/pause", signed, rl("vault"), vaultHandler.Pause)
		vault.POST("/unpause", signed, rl("vault"), vaultHandler.Unpause)
		vault.PUT("/owner", signed, rl("vault"), vaultHandler.TransferOwnership)
	}

	relayHandler := NewRelayHandler(deps.Relay)
	relay := v1.Group("/relay")
	{
		relay.GET("", rl("reads"), relayHandler.GetRelay)
		relay.GET("/pending", rl("reads"), relayHandler.ListPending)
		relay.GET("/pending/:address", rl("reads"), relayHandler.GetPending)

		relay.POST("/deposit", signed, rl("relay"), relayHandler.Deposit)
		relay.POST("/claim", signed, rl("relay"), relayHandler.Claim)
		relay.POST("/recover", signed, rl("relay"), relayHandler.RecoverFunds)
		relay.POST("/native", signed, rl("relay"), relayHandler.ReceiveNative)
		relay.PUT("/owner", signed, rl("relay"), relayHandler.TransferOwnership)
	}

	eventHandler := NewEventHandler(deps.Events)
	v1.GET("/events", rl("reads"), eventHandler.ListEvents)

	if deps.Tokens != nil {
		tokenHandler := NewTokenHandler(deps.Tokens, deps.Faucet)
		tokens := v1.Group("/tokens")
		{
			tokens.GET("", rl("reads"), tokenHandler.ListTokens)
			tokens.GET("/:token/balance/:address", rl("reads"), tokenHandler.GetBalance)
			tokens.GET("/:token/allowance", rl("reads"), tokenHandler.GetAllowance)
			tokens.POST("/:token/approve", signed, rl("tokens"), tokenHandler.Approve)
			tokens.POST("/:token/transfer", signed, rl("tokens"), tokenHandler.Transfer)
		}
		if deps.Faucet != nil {
			v1.POST("/faucet", signed, rl("faucet"), tokenHandler.Drip)
		}
	}

	if deps.Queue != nil && deps.Processed != nil {
		bridgeHandler := NewBridgeHandler(deps.Queue, deps.Processed, deps.Relay)
		bridge := v1.Group("/bridge")
		{
			bridge.POST("/deliveries", signed, rl("bridge"), bridgeHandler.Enqueue)
			bridge.GET("/deliveries/:id", rl("reads"), bridgeHandler.GetDelivery)
		}
	}

	return r
}
