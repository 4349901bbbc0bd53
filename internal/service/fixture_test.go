package service

import (
	"context"
	"io"
	"testing"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/memory"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	vaultAddr    = common.HexToAddress("0x000000000000000000000000000000000000Aa01")
	relayAddr    = common.HexToAddress("0x000000000000000000000000000000000000Aa02")
	usdcAddr     = common.HexToAddress("0x000000000000000000000000000000000000Aa03")
	sharesAddr   = common.HexToAddress("0x000000000000000000000000000000000000Aa04")
	usdcMinter   = common.HexToAddress("0x000000000000000000000000000000000000Aa05")
	ownerAddr    = common.HexToAddress("0x000000000000000000000000000000000000Bb01")
	treasuryAddr = common.HexToAddress("0x000000000000000000000000000000000000Bb02")
	alice        = common.HexToAddress("0x000000000000000000000000000000000000Cc01")
	bob          = common.HexToAddress("0x000000000000000000000000000000000000Cc02")
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// recordingSink captures emitted events in order.
type recordingSink struct {
	events []domain.Event
}

func (r *recordingSink) Emit(_ context.Context, evt domain.Event) {
	r.events = append(r.events, evt)
}

func (r *recordingSink) kinds() []domain.EventKind {
	out := make([]domain.EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recordingSink) last() domain.Event {
	return r.events[len(r.events)-1]
}

type fixture struct {
	usdc    *ledger.Token
	shares  *ledger.Token
	vault   *VaultServiceImpl
	relay   *RelayServiceImpl
	pending *memory.PendingCreditStore
	sink    *recordingSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithPending(t, nil)
}

// newFixtureWithPending wires a fixture whose relay uses pending instead of
// the in-memory store when pending is non-nil.
func newFixtureWithPending(t *testing.T, pending ports.PendingCreditStore) *fixture {
	t.Helper()
	log := newTestLogger()

	usdc, err := ledger.NewToken(ledger.TokenParams{
		Address: usdcAddr, Name: "USD Coin", Symbol: "USDC", Decimals: 6, Minter: usdcMinter,
	}, log)
	require.NoError(t, err)
	shares, err := ledger.NewToken(ledger.TokenParams{
		Address: sharesAddr, Name: "Arc Yield Share", Symbol: "aySHARE", Decimals: 6, Minter: vaultAddr,
	}, log)
	require.NoError(t, err)

	f := &fixture{usdc: usdc, shares: shares, sink: &recordingSink{}}

	f.vault, err = NewVaultService(VaultParams{Address: vaultAddr, Owner: ownerAddr, Treasury: treasuryAddr}, usdc, shares, f.sink, log)
	require.NoError(t, err)

	f.pending = memory.NewPendingCreditStore()
	if pending == nil {
		pending = f.pending
	}
	f.relay, err = NewRelayService(
		RelayParams{Address: relayAddr, Owner: ownerAddr},
		f.vault, usdc, shares, ledger.NewRegistry(usdc, shares), pending, f.sink, log,
	)
	require.NoError(t, err)
	return f
}

// fund mints amount to account and approves spender for it.
func (f *fixture) fund(t *testing.T, account, spender common.Address, amount uint64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.usdc.Mint(ctx, usdcMinter, account, domain.NewAmount(amount)))
	require.NoError(t, f.usdc.Approve(ctx, account, spender, domain.NewAmount(amount)))
}

func wad(mult uint64) *uint256.Int {
	return new(uint256.Int).Mul(domain.WAD(), uint256.NewInt(mult))
}

func amt(v uint64) *uint256.Int { return domain.NewAmount(v) }
