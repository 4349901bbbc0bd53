package service

import (
	"context"
	"fmt"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// VaultParams are the construction-time identities of a vault.
type VaultParams struct {
	Address  common.Address
	Owner    common.Address
	Treasury common.Address
}

// Validate rejects zero identities.
func (p VaultParams) Validate() error {
	if domain.IsZeroAddress(p.Address) {
		return apperror.ErrInvalidAddress("vault")
	}
	if domain.IsZeroAddress(p.Owner) {
		return apperror.ErrInvalidAddress("owner")
	}
	if domain.IsZeroAddress(p.Treasury) {
		return apperror.ErrInvalidTreasury()
	}
	return nil
}

// VaultServiceImpl implements ports.VaultService. Liquid balance and share
// supply are read live from the ledgers; the vault itself only stores the
// illiquid valuation, the owner and the pause flag.
type VaultServiceImpl struct {
	address  common.Address
	treasury common.Address
	asset    ports.Asset
	shares   ports.MintableAsset
	events   ports.EventSink
	log      zerolog.Logger

	guard         *guard
	owner         common.Address
	illiquidValue *uint256.Int
	paused        bool
}

// NewVaultService creates a vault over asset that issues shares. The vault's
// address must be the share ledger's minter.
func NewVaultService(
	params VaultParams,
	asset ports.Asset,
	shares ports.MintableAsset,
	events ports.EventSink,
	log zerolog.Logger,
) (*VaultServiceImpl, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if asset == nil || shares == nil {
		return nil, fmt.Errorf("vault requires asset and share ledgers")
	}
	if shares.Minter() != params.Address {
		return nil, fmt.Errorf("vault %s is not the minter of %s", params.Address.Hex(), shares.Symbol())
	}
	if events == nil {
		events = nopSink{}
	}
	return &VaultServiceImpl{
		address:       params.Address,
		treasury:      params.Treasury,
		asset:         asset,
		shares:        shares,
		events:        events,
		log:           log,
		guard:         newGuard("vault"),
		owner:         params.Owner,
		illiquidValue: domain.Zero(),
	}, nil
}

func (s *VaultServiceImpl) Address() common.Address  { return s.address }
func (s *VaultServiceImpl) Treasury() common.Address { return s.treasury }

// Deposit pulls amount from caller and mints shares at the current price,
// rounding against the depositor.
func (s *VaultServiceImpl) Deposit(ctx context.Context, caller common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return s.DepositThen(ctx, caller, amount, nil)
}

// DepositThen deposits amount for caller and, when settle is set, runs it
// with the minted shares under the vault guard. A settle failure burns the
// shares and refunds amount, leaving the vault as it was.
func (s *VaultServiceImpl) DepositThen(ctx context.Context, caller common.Address, amount *uint256.Int, settle ports.SettleFunc) (*uint256.Int, error) {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer exit()

	if domain.IsZero(amount) {
		return nil, apperror.ErrAmountZero()
	}
	if s.paused {
		return nil, apperror.ErrVaultPaused()
	}
	shares, err := s.convertToShares(amount)
	if err != nil {
		return nil, err
	}

	var undo undoLog
	if err := s.asset.TransferFrom(ctx, s.address, caller, s.address, amount); err != nil {
		return nil, err
	}
	undo.push("refund deposit", func() error {
		return s.asset.Transfer(ctx, s.address, caller, amount)
	})

	if err := s.shares.Mint(ctx, s.address, caller, shares); err != nil {
		return nil, undo.rollback(err)
	}
	undo.push("burn deposit shares", func() error {
		return s.shares.Burn(ctx, s.address, caller, shares)
	})

	if settle != nil {
		if err := settle(ctx, shares); err != nil {
			return nil, undo.rollback(err)
		}
	}

	s.events.Emit(ctx, domain.NewDeposited(caller, amount, shares))
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("amount", amount.Dec()).
		Str("shares", shares.Dec()).
		Msg("deposit processed")

	return shares, nil
}

// Withdraw burns shares and pays out their value from the liquid balance.
func (s *VaultServiceImpl) Withdraw(ctx context.Context, caller common.Address, shares *uint256.Int) (*uint256.Int, error) {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer exit()

	if domain.IsZero(shares) {
		return nil, apperror.ErrAmountZero()
	}
	if s.paused {
		return nil, apperror.ErrVaultPaused()
	}
	amountOut, err := s.convertToAssets(shares)
	if err != nil {
		return nil, err
	}
	liquid := s.asset.BalanceOf(s.address)
	if amountOut.Gt(liquid) {
		return nil, apperror.ErrInsufficientLiquidity(amountOut.Dec(), liquid.Dec())
	}

	var undo undoLog
	if err := s.shares.Burn(ctx, s.address, caller, shares); err != nil {
		return nil, err
	}
	undo.push("restore shares", func() error {
		return s.shares.Mint(ctx, s.address, caller, shares)
	})

	if err := s.asset.Transfer(ctx, s.address, caller, amountOut); err != nil {
		return nil, undo.rollback(err)
	}

	s.events.Emit(ctx, domain.NewWithdrawn(caller, shares, amountOut))
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("shares", shares.Dec()).
		Str("amount_out", amountOut.Dec()).
		Msg("withdrawal processed")

	return amountOut, nil
}

// DepositYield pulls gross from any caller, sends the fee to the treasury and
// keeps the rest liquid, raising the share price for every holder.
func (s *VaultServiceImpl) DepositYield(ctx context.Context, caller common.Address, gross *uint256.Int) (*domain.YieldSplit, error) {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer exit()

	if domain.IsZero(gross) {
		return nil, apperror.ErrAmountZero()
	}

	var undo undoLog
	if err := s.asset.TransferFrom(ctx, s.address, caller, s.address, gross); err != nil {
		return nil, err
	}
	undo.push("refund yield", func() error {
		return s.asset.Transfer(ctx, s.address, caller, gross)
	})

	fee, net := domain.YieldFee(gross)
	if !fee.IsZero() {
		if err := s.asset.Transfer(ctx, s.address, s.treasury, fee); err != nil {
			return nil, undo.rollback(err)
		}
	}

	split := &domain.YieldSplit{Gross: gross, Fee: fee, Net: net}
	s.events.Emit(ctx, domain.NewYieldDistributed(*split))
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("gross", gross.Dec()).
		Str("fee", fee.Dec()).
		Str("net", net.Dec()).
		Msg("yield distributed")

	return split, nil
}

// WithdrawForInvestment moves liquid funds to the treasury for off-ledger
// deployment. The illiquid valuation is updated separately by the owner.
func (s *VaultServiceImpl) WithdrawForInvestment(ctx context.Context, caller common.Address, amount *uint256.Int) error {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer exit()

	if err := s.onlyOwner(caller); err != nil {
		return err
	}
	if domain.IsZero(amount) {
		return apperror.ErrAmountZero()
	}
	liquid := s.asset.BalanceOf(s.address)
	if amount.Gt(liquid) {
		return apperror.ErrInsufficientLiquidity(amount.Dec(), liquid.Dec())
	}
	if err := s.asset.Transfer(ctx, s.address, s.treasury, amount); err != nil {
		return err
	}

	s.events.Emit(ctx, domain.NewInvestmentWithdrawn(s.treasury, amount))
	s.log.Info().
		Str("treasury", s.treasury.Hex()).
		Str("amount", amount.Dec()).
		Msg("funds withdrawn for investment")
	return nil
}

// UpdateRWAValue replaces the illiquid valuation. Any value is accepted.
func (s *VaultServiceImpl) UpdateRWAValue(ctx context.Context, caller common.Address, newValue *uint256.Int) error {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer exit()

	if err := s.onlyOwner(caller); err != nil {
		return err
	}
	oldValue := s.illiquidValue
	s.illiquidValue = new(uint256.Int).Set(domain.OrZero(newValue))

	s.events.Emit(ctx, domain.NewRWAValueUpdated(oldValue, s.illiquidValue))
	s.log.Info().
		Str("old_value", oldValue.Dec()).
		Str("new_value", s.illiquidValue.Dec()).
		Msg("rwa value updated")
	return nil
}

// Pause blocks Deposit and Withdraw until Unpause.
func (s *VaultServiceImpl) Pause(ctx context.Context, caller common.Address) error {
	return s.setPaused(ctx, caller, true)
}

func (s *VaultServiceImpl) Unpause(ctx context.Context, caller common.Address) error {
	return s.setPaused(ctx, caller, false)
}

func (s *VaultServiceImpl) setPaused(ctx context.Context, caller common.Address, paused bool) error {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer exit()

	if err := s.onlyOwner(caller); err != nil {
		return err
	}
	if s.paused == paused {
		return nil
	}
	s.paused = paused

	s.events.Emit(ctx, domain.NewPauseToggled(domain.SourceVault, caller, paused))
	s.log.Info().Bool("paused", paused).Msg("vault pause state changed")
	return nil
}

func (s *VaultServiceImpl) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer exit()

	if err := s.onlyOwner(caller); err != nil {
		return err
	}
	if domain.IsZeroAddress(newOwner) {
		return apperror.ErrInvalidAddress("owner")
	}
	previous := s.owner
	s.owner = newOwner

	s.events.Emit(ctx, domain.NewOwnershipTransferred(domain.SourceVault, previous, newOwner))
	s.log.Info().Str("previous", previous.Hex()).Str("owner", newOwner.Hex()).Msg("vault ownership transferred")
	return nil
}

// ---- Views ----

func (s *VaultServiceImpl) SharePrice(ctx context.Context) *uint256.Int {
	defer s.guard.view(ctx)()
	return s.sharePrice()
}

func (s *VaultServiceImpl) TotalAssets(ctx context.Context) *uint256.Int {
	defer s.guard.view(ctx)()
	return s.totalAssets()
}

// LiquidBalance is the on-hand stable balance, the only redeemable part of total assets.
func (s *VaultServiceImpl) LiquidBalance(ctx context.Context) *uint256.Int {
	defer s.guard.view(ctx)()
	return s.asset.BalanceOf(s.address)
}

func (s *VaultServiceImpl) IlliquidValue(ctx context.Context) *uint256.Int {
	defer s.guard.view(ctx)()
	return new(uint256.Int).Set(s.illiquidValue)
}

func (s *VaultServiceImpl) Owner(ctx context.Context) common.Address {
	defer s.guard.view(ctx)()
	return s.owner
}

func (s *VaultServiceImpl) Paused(ctx context.Context) bool {
	defer s.guard.view(ctx)()
	return s.paused
}

// Snapshot reads every view under one lock acquisition.
func (s *VaultServiceImpl) Snapshot(ctx context.Context) domain.VaultSnapshot {
	defer s.guard.view(ctx)()
	return domain.VaultSnapshot{
		Address:       s.address,
		Owner:         s.owner,
		Treasury:      s.treasury,
		Paused:        s.paused,
		LiquidBalance: s.asset.BalanceOf(s.address),
		IlliquidValue: new(uint256.Int).Set(s.illiquidValue),
		TotalAssets:   s.totalAssets(),
		TotalShares:   s.shares.TotalSupply(),
		SharePrice:    s.sharePrice(),
	}
}

// PreviewDeposit returns the shares Deposit would mint for amount right now.
func (s *VaultServiceImpl) PreviewDeposit(ctx context.Context, amount *uint256.Int) (*uint256.Int, error) {
	defer s.guard.view(ctx)()
	if domain.IsZero(amount) {
		return nil, apperror.ErrAmountZero()
	}
	return s.convertToShares(amount)
}

// PreviewWithdraw returns the amount Withdraw would pay for shares right now,
// without applying the liquidity gate.
func (s *VaultServiceImpl) PreviewWithdraw(ctx context.Context, shares *uint256.Int) (*uint256.Int, error) {
	defer s.guard.view(ctx)()
	if domain.IsZero(shares) {
		return nil, apperror.ErrAmountZero()
	}
	return s.convertToAssets(shares)
}

// ---- internals; callers hold the guard ----

func (s *VaultServiceImpl) onlyOwner(caller common.Address) error {
	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}
	return nil
}

func (s *VaultServiceImpl) totalAssets() *uint256.Int {
	return domain.SaturatingAdd(s.asset.BalanceOf(s.address), s.illiquidValue)
}

// sharePrice is WAD while no shares exist, otherwise totalAssets*WAD/supply.
// It saturates instead of failing so views always succeed.
func (s *VaultServiceImpl) sharePrice() *uint256.Int {
	supply := s.shares.TotalSupply()
	if supply.IsZero() {
		return domain.WAD()
	}
	price, err := domain.MulDiv(s.totalAssets(), domain.WAD(), supply)
	if err != nil {
		return new(uint256.Int).SetAllOne()
	}
	return price
}

func (s *VaultServiceImpl) convertToShares(amount *uint256.Int) (*uint256.Int, error) {
	price := s.sharePrice()
	if price.IsZero() {
		return nil, apperror.ErrZeroSharePrice()
	}
	shares, err := domain.MulDiv(amount, domain.WAD(), price)
	if err != nil {
		return nil, apperror.ErrOverflow()
	}
	if shares.IsZero() {
		return nil, apperror.ErrZeroSharesMinted()
	}
	return shares, nil
}

func (s *VaultServiceImpl) convertToAssets(shares *uint256.Int) (*uint256.Int, error) {
	out, err := domain.MulDiv(shares, s.sharePrice(), domain.WAD())
	if err != nil {
		return nil, apperror.ErrOverflow()
	}
	return out, nil
}

type nopSink struct{}

func (nopSink) Emit(context.Context, domain.Event) {}
