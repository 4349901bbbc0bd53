// Package app wires configuration, storage, the ledgers and the HTTP API
// into a runnable node.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/config"
	httpHandler "github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/handler"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/memory"
	pgStorage "github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/postgres"
	redisStorage "github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/redis"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/bridge"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/ledger"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/service"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// App is a fully wired node.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	Asset   *ledger.Token
	Shares  *ledger.Token
	Vault   *service.VaultServiceImpl
	Relay   *service.RelayServiceImpl
	Events  ports.EventService
	Queue   ports.DeliveryQueue
	Watcher *bridge.Watcher // nil = bridge disabled
	Router  *gin.Engine

	closers []func()
}

// stores groups the backends selected by configuration.
type stores struct {
	events     ports.EventRepository
	pending    ports.PendingCreditStore
	nonces     ports.NonceStore
	queue      ports.DeliveryQueue
	processed  ports.DeliveryLog
	rateLimits *redisStorage.RateLimitStore
	health     []ports.HealthChecker
}

// New validates cfg and builds the node. Close releases its connections.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &App{cfg: cfg, log: log}
	st, err := a.openStores(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := a.buildCore(ctx, st); err != nil {
		a.Close()
		return nil, err
	}

	sigSvc := service.NewEIP191SignatureService()
	deps := httpHandler.RouterDeps{
		Vault:          a.Vault,
		Relay:          a.Relay,
		Events:         a.Events,
		Tokens:         ledger.NewRegistry(a.Asset, a.Shares),
		Queue:          st.queue,
		Processed:      st.processed,
		SigSvc:         sigSvc,
		NonceStore:     st.nonces,
		RateLimitStore: st.rateLimits,
		HealthCheckers: st.health,
		Logger:         logger.Component(log, "http"),
	}
	if cfg.Faucet.Enabled {
		limit, err := cfg.Faucet.LimitAmount()
		if err != nil {
			a.Close()
			return nil, err
		}
		deps.Faucet = &httpHandler.Faucet{Asset: a.Asset, Limit: limit}
	}
	a.Router = httpHandler.SetupRouter(deps)

	if cfg.Bridge.Enabled {
		transmitter, err := ledger.NewTransmitter(
			a.Asset, config.Address(cfg.Tokens.AssetMinter), a.Relay.Address(), logger.Component(log, "transmitter"))
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("create transmitter: %w", err)
		}
		a.Watcher = bridge.NewWatcher(st.queue, st.processed, transmitter, a.Relay, bridge.Config{
			PollTimeout: cfg.Bridge.PollTimeout,
			RetryDelay:  cfg.Bridge.RetryDelay,
			DeliveryTTL: cfg.Bridge.DeliveryTTL,
			MaxAttempts: cfg.Bridge.MaxAttempts,
		}, logger.Component(log, "bridge"))
	}

	a.loadOpenAPI()
	return a, nil
}

func (a *App) openStores(ctx context.Context) (*stores, error) {
	cfg := a.cfg
	st := &stores{
		events:    memory.NewEventRepo(),
		pending:   memory.NewPendingCreditStore(),
		nonces:    memory.NewNonceStore(),
		queue:     memory.NewDeliveryQueue(cfg.Bridge.QueueSize),
		processed: memory.NewDeliveryLog(),
	}

	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, a.log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := pgStorage.Migrate(ctx, pool, a.log); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		st.events = pgStorage.NewEventRepo(pool)
		st.pending = pgStorage.NewPendingCreditRepo(pool)
		st.health = append(st.health, pgStorage.NewHealthCheck(pool))
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, a.log)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		st.nonces = redisStorage.NewNonceStore(rdb)
		st.queue = redisStorage.NewDeliveryQueue(rdb, cfg.Bridge.Queue)
		st.processed = redisStorage.NewDeliveryLog(rdb)
		st.rateLimits = redisStorage.NewRateLimitStore(rdb)
		st.health = append(st.health, redisStorage.NewHealthCheck(rdb))
	}

	a.log.Info().
		Bool("postgres", cfg.Database.Enabled).
		Bool("redis", cfg.Redis.Enabled).
		Msg("storage backends selected")
	return st, nil
}

func (a *App) buildCore(ctx context.Context, st *stores) error {
	cfg := a.cfg
	var err error

	a.Asset, err = ledger.NewToken(ledger.TokenParams{
		Address:  config.Address(cfg.Tokens.AssetAddress),
		Name:     "USD Coin",
		Symbol:   cfg.Tokens.AssetSymbol,
		Decimals: cfg.Tokens.Decimals,
		Minter:   config.Address(cfg.Tokens.AssetMinter),
	}, logger.Component(a.log, "ledger"))
	if err != nil {
		return fmt.Errorf("create asset ledger: %w", err)
	}
	a.Shares, err = ledger.NewToken(ledger.TokenParams{
		Address:  config.Address(cfg.Tokens.SharesAddress),
		Name:     "Arc Yield Share",
		Symbol:   "aySHARE",
		Decimals: cfg.Tokens.Decimals,
		Minter:   config.Address(cfg.Vault.Address),
	}, logger.Component(a.log, "ledger"))
	if err != nil {
		return fmt.Errorf("create share ledger: %w", err)
	}

	a.Events = service.NewEventService(st.events, logger.Component(a.log, "events"))
	a.Queue = st.queue

	a.Vault, err = service.NewVaultService(service.VaultParams{
		Address:  config.Address(cfg.Vault.Address),
		Owner:    config.Address(cfg.Vault.Owner),
		Treasury: config.Address(cfg.Vault.Treasury),
	}, a.Asset, a.Shares, a.Events, logger.Component(a.log, "vault"))
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	a.Relay, err = service.NewRelayService(service.RelayParams{
		Address: config.Address(cfg.Relay.Address),
		Owner:   config.Address(cfg.Relay.Owner),
	}, a.Vault, a.Asset, a.Shares, ledger.NewRegistry(a.Asset, a.Shares), st.pending, a.Events, logger.Component(a.log, "relay"))
	if err != nil {
		return fmt.Errorf("create relay: %w", err)
	}
	// Ledgers start empty on every boot; persisted credits would be unbacked.
	if err := a.Relay.CheckReserve(ctx); err != nil {
		a.log.Error().Err(err).Msg("pending credits exceed relay custody, clear pending_credits or restore balances")
		return fmt.Errorf("pending credits exceed relay custody: %w", err)
	}
	return nil
}

func (a *App) loadOpenAPI() {
	path := a.cfg.Server.OpenAPIPath
	if path == "" {
		return
	}
	spec, err := os.ReadFile(path)
	if err != nil {
		a.log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
		return
	}
	httpHandler.SetSwaggerSpec(spec)
	a.log.Info().Str("path", path).Msg("OpenAPI spec loaded for Swagger UI at /swagger")
}

// Run serves HTTP and runs the bridge watcher until ctx is cancelled or
// either of them fails.
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.log.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Error().Err(err).Msg("Server forced to shutdown")
		}
		return nil
	})
	if a.Watcher != nil {
		g.Go(func() error {
			return a.Watcher.Run(ctx)
		})
	}
	return g.Wait()
}

// Close releases storage connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
