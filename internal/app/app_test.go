package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/asilbek-0311/arc-omnichan-yield/config"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/memory"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerHex = "0x00000000000000000000000000000000000000b1"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Vault.Owner = ownerHex
	cfg.Vault.Treasury = "0x00000000000000000000000000000000000000b2"
	cfg.Relay.Owner = ownerHex
	cfg.Server.OpenAPIPath = ""
	return cfg
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Vault.Owner = ""

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "vault.owner")
}

func TestNew_InMemory(t *testing.T) {
	cfg := testConfig(t)
	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Watcher)
	assert.Equal(t, config.Address(cfg.Vault.Address), a.Vault.Snapshot(context.Background()).Address)
	assert.Equal(t, config.Address(cfg.Vault.Address), a.Shares.Minter())

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuildCore_RejectsUnbackedPendingCredits(t *testing.T) {
	ctx := context.Background()
	a := &App{cfg: testConfig(t), log: zerolog.Nop()}

	// Credits that outlived the ledgers of a previous run.
	pending := memory.NewPendingCreditStore()
	_, err := pending.Add(ctx, common.HexToAddress("0x00000000000000000000000000000000000000c1"), domain.NewAmount(100))
	require.NoError(t, err)

	err = a.buildCore(ctx, &stores{events: memory.NewEventRepo(), pending: pending})
	require.Error(t, err)
	assert.ErrorContains(t, err, "pending credits exceed relay custody")

	err = a.buildCore(ctx, &stores{events: memory.NewEventRepo(), pending: memory.NewPendingCreditStore()})
	assert.NoError(t, err)
}

func TestNew_BridgeDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Bridge.Enabled = false

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Watcher)
}

func TestNew_WithRedis(t *testing.T) {
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Redis.Enabled = true
	cfg.Redis.Host = s.Host()
	cfg.Redis.Port = port

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis"`)

	s.Close()
	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = 1

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "connect redis")
}

func TestNew_FaucetRoute(t *testing.T) {
	cfg := testConfig(t)
	cfg.Faucet.Enabled = true
	cfg.Faucet.Limit = "100"

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/faucet", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
