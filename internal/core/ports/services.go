package ports

import (
	"context"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// Depositor is the slice of the vault the relay drives as a client.
type Depositor interface {
	Address() common.Address
	Deposit(ctx context.Context, caller common.Address, amount *uint256.Int) (*uint256.Int, error)
	// DepositThen deposits like Deposit and runs settle with the minted shares
	// before releasing the vault. When settle fails the deposit is unwound
	// exactly: the shares are burned and amount is returned to caller.
	DepositThen(ctx context.Context, caller common.Address, amount *uint256.Int, settle SettleFunc) (*uint256.Int, error)
}

// SettleFunc completes a deposit while the vault is still held.
type SettleFunc func(ctx context.Context, shares *uint256.Int) error

// VaultService is the share-accounting engine.
type VaultService interface {
	Depositor
	Withdraw(ctx context.Context, caller common.Address, shares *uint256.Int) (*uint256.Int, error)
	DepositYield(ctx context.Context, caller common.Address, gross *uint256.Int) (*domain.YieldSplit, error)
	WithdrawForInvestment(ctx context.Context, caller common.Address, amount *uint256.Int) error
	UpdateRWAValue(ctx context.Context, caller common.Address, newValue *uint256.Int) error
	Pause(ctx context.Context, caller common.Address) error
	Unpause(ctx context.Context, caller common.Address) error
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error

	SharePrice(ctx context.Context) *uint256.Int
	TotalAssets(ctx context.Context) *uint256.Int
	LiquidBalance(ctx context.Context) *uint256.Int
	Snapshot(ctx context.Context) domain.VaultSnapshot
	PreviewDeposit(ctx context.Context, amount *uint256.Int) (*uint256.Int, error)
	PreviewWithdraw(ctx context.Context, shares *uint256.Int) (*uint256.Int, error)
}

// RelayService forwards inbound funds into the vault on behalf of recipients.
type RelayService interface {
	Address() common.Address
	Owner(ctx context.Context) common.Address
	// ReceiveAndDeposit pulls amount from caller. A failed forward is reported
	// in the result, not as an error.
	ReceiveAndDeposit(ctx context.Context, caller, recipient common.Address, amount *uint256.Int) (*domain.ZapResult, error)
	// ReceiveBridged consumes funds already delivered to the relay by the bridge.
	ReceiveBridged(ctx context.Context, caller, recipient common.Address, amount *uint256.Int) (*domain.ZapResult, error)
	ClaimAndDeposit(ctx context.Context, caller common.Address) (*domain.ClaimResult, error)
	RecoverFunds(ctx context.Context, caller, token, to common.Address, amount *uint256.Int) error
	ReceiveNative(ctx context.Context, caller common.Address, amount *uint256.Int) error
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error

	PendingOf(ctx context.Context, recipient common.Address) (*uint256.Int, error)
	TotalPending(ctx context.Context) (*uint256.Int, error)
	ListPending(ctx context.Context) ([]domain.PendingCredit, error)
}

// EventSink receives committed state-change notifications.
type EventSink interface {
	Emit(ctx context.Context, evt domain.Event)
}

// EventService records and serves events.
type EventService interface {
	EventSink
	Recent(ctx context.Context, limit int) ([]domain.Event, error)
}

// SignatureService recovers caller identities from signed requests.
type SignatureService interface {
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
	Recover(payload string, signature string) (common.Address, error)
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, caller string, nonce string, ttl time.Duration) (bool, error)
}
