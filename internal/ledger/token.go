package ledger

import (
	"context"
	"sync"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// TransferHook runs before a transfer is committed and can veto it by
// returning an error. It models tokens that call back into the receiver.
type TransferHook func(ctx context.Context, from, to common.Address, amount *uint256.Int) error

// TokenParams configures a Token.
type TokenParams struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
	Minter   common.Address
}

// Token is an in-memory fungible token ledger. Mint and Burn are restricted
// to the minter fixed at construction.
type Token struct {
	mu         sync.RWMutex
	params     TokenParams
	balances   map[common.Address]*uint256.Int
	allowances map[common.Address]map[common.Address]*uint256.Int
	supply     *uint256.Int
	hook       TransferHook
	log        zerolog.Logger
}

// NewToken creates an empty ledger.
func NewToken(params TokenParams, log zerolog.Logger) (*Token, error) {
	if domain.IsZeroAddress(params.Address) {
		return nil, apperror.ErrInvalidAddress("token")
	}
	if domain.IsZeroAddress(params.Minter) {
		return nil, apperror.ErrInvalidAddress("minter")
	}
	return &Token{
		params:     params,
		balances:   make(map[common.Address]*uint256.Int),
		allowances: make(map[common.Address]map[common.Address]*uint256.Int),
		supply:     domain.Zero(),
		log:        log.With().Str("token", params.Symbol).Logger(),
	}, nil
}

// SetHook installs fn as the pre-commit transfer hook. Pass nil to clear it.
func (t *Token) SetHook(fn TransferHook) {
	t.mu.Lock()
	t.hook = fn
	t.mu.Unlock()
}

func (t *Token) Address() common.Address { return t.params.Address }
func (t *Token) Name() string            { return t.params.Name }
func (t *Token) Symbol() string          { return t.params.Symbol }
func (t *Token) Decimals() uint8         { return t.params.Decimals }
func (t *Token) Minter() common.Address  { return t.params.Minter }

func (t *Token) BalanceOf(account common.Address) *uint256.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return new(uint256.Int).Set(domain.OrZero(t.balances[account]))
}

func (t *Token) Allowance(owner, spender common.Address) *uint256.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return new(uint256.Int).Set(domain.OrZero(t.allowances[owner][spender]))
}

func (t *Token) TotalSupply() *uint256.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return new(uint256.Int).Set(t.supply)
}

// Transfer moves amount from from to to.
func (t *Token) Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	if domain.IsZeroAddress(to) {
		return apperror.ErrInvalidRecipient()
	}
	if err := t.runHook(ctx, from, to, amount); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.move(from, to, amount)
}

// TransferFrom moves amount from from to to, spending spender's allowance.
// An allowance of 2^256-1 is treated as unlimited and never decremented.
func (t *Token) TransferFrom(ctx context.Context, spender, from, to common.Address, amount *uint256.Int) error {
	if domain.IsZeroAddress(to) {
		return apperror.ErrInvalidRecipient()
	}
	if err := t.runHook(ctx, from, to, amount); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	allowed := domain.OrZero(t.allowances[from][spender])
	if allowed.Lt(amount) {
		return apperror.ErrInsufficientAllowance().
			WithDetail("requested", amount.Dec()).
			WithDetail("available", allowed.Dec())
	}
	if err := t.move(from, to, amount); err != nil {
		return err
	}
	if !isUnlimited(allowed) {
		t.setAllowance(from, spender, new(uint256.Int).Sub(allowed, amount))
	}
	return nil
}

// Approve sets spender's allowance over owner's balance.
func (t *Token) Approve(_ context.Context, owner, spender common.Address, amount *uint256.Int) error {
	if domain.IsZeroAddress(spender) {
		return apperror.ErrInvalidAddress("spender")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setAllowance(owner, spender, amount)
	return nil
}

// Mint credits amount to to and grows the supply.
func (t *Token) Mint(_ context.Context, caller, to common.Address, amount *uint256.Int) error {
	if caller != t.params.Minter {
		return apperror.ErrNotMinter()
	}
	if domain.IsZeroAddress(to) {
		return apperror.ErrInvalidRecipient()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	supply, err := domain.CheckedAdd(t.supply, amount)
	if err != nil {
		return apperror.ErrOverflow()
	}
	t.supply = supply
	t.balances[to] = new(uint256.Int).Add(domain.OrZero(t.balances[to]), amount)

	t.log.Debug().Str("to", to.Hex()).Str("amount", amount.Dec()).Msg("minted")
	return nil
}

// Burn destroys amount from from and shrinks the supply.
func (t *Token) Burn(_ context.Context, caller, from common.Address, amount *uint256.Int) error {
	if caller != t.params.Minter {
		return apperror.ErrNotMinter()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	balance := domain.OrZero(t.balances[from])
	if balance.Lt(amount) {
		return apperror.ErrInsufficientBalance().
			WithDetail("requested", amount.Dec()).
			WithDetail("available", balance.Dec())
	}
	t.balances[from] = new(uint256.Int).Sub(balance, amount)
	t.supply = new(uint256.Int).Sub(t.supply, amount)

	t.log.Debug().Str("from", from.Hex()).Str("amount", amount.Dec()).Msg("burned")
	return nil
}

func (t *Token) runHook(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	t.mu.RLock()
	hook := t.hook
	t.mu.RUnlock()
	if hook == nil {
		return nil
	}
	return hook(ctx, from, to, amount)
}

// move must be called with mu held.
func (t *Token) move(from, to common.Address, amount *uint256.Int) error {
	balance := domain.OrZero(t.balances[from])
	if balance.Lt(amount) {
		return apperror.ErrInsufficientBalance().
			WithDetail("requested", amount.Dec()).
			WithDetail("available", balance.Dec())
	}
	if from == to {
		return nil
	}
	t.balances[from] = new(uint256.Int).Sub(balance, amount)
	t.balances[to] = new(uint256.Int).Add(domain.OrZero(t.balances[to]), amount)
	return nil
}

func (t *Token) setAllowance(owner, spender common.Address, amount *uint256.Int) {
	byOwner, ok := t.allowances[owner]
	if !ok {
		byOwner = make(map[common.Address]*uint256.Int)
		t.allowances[owner] = byOwner
	}
	byOwner[spender] = new(uint256.Int).Set(amount)
}

func isUnlimited(v *uint256.Int) bool {
	return v.Eq(new(uint256.Int).SetAllOne())
}
