package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// RelayParams are the construction-time identities of a relay.
type RelayParams struct {
	Address common.Address
	Owner   common.Address
}

func (p RelayParams) Validate() error {
	if domain.IsZeroAddress(p.Address) {
		return apperror.ErrInvalidAddress("relay")
	}
	if domain.IsZeroAddress(p.Owner) {
		return apperror.ErrInvalidAddress("owner")
	}
	return nil
}

// RelayServiceImpl implements ports.RelayService. Funds that cannot be
// forwarded into the vault stay in relay custody as a pending credit for the
// recipient; the relay never refunds a bridged sender.
type RelayServiceImpl struct {
	address common.Address
	vault   ports.Depositor
	asset   ports.Asset
	shares  ports.Asset
	tokens  ports.TokenRegistry
	pending ports.PendingCreditStore
	events  ports.EventSink
	log     zerolog.Logger

	guard *guard
	owner common.Address
}

// NewRelayService creates a relay forwarding asset deposits into vault.
func NewRelayService(
	params RelayParams,
	vault ports.Depositor,
	asset ports.Asset,
	shares ports.Asset,
	tokens ports.TokenRegistry,
	pending ports.PendingCreditStore,
	events ports.EventSink,
	log zerolog.Logger,
) (*RelayServiceImpl, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if vault == nil || asset == nil || shares == nil || tokens == nil || pending == nil {
		return nil, fmt.Errorf("relay requires vault, asset, shares, token registry and pending store")
	}
	if events == nil {
		events = nopSink{}
	}
	return &RelayServiceImpl{
		address: params.Address,
		vault:   vault,
		asset:   asset,
		shares:  shares,
		tokens:  tokens,
		pending: pending,
		events:  events,
		log:     log,
		guard:   newGuard("relay"),
		owner:   params.Owner,
	}, nil
}

func (s *RelayServiceImpl) Address() common.Address { return s.address }

func (s *RelayServiceImpl) Owner(ctx context.Context) common.Address {
	defer s.guard.view(ctx)()
	return s.owner
}

// ReceiveAndDeposit pulls amount from caller into relay custody and forwards
// it into the vault for recipient.
func (s *RelayServiceImpl) ReceiveAndDeposit(ctx context.Context, caller, recipient common.Address, amount *uint256.Int) (*domain.ZapResult, error) {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer exit()

	if err := validateInbound(recipient, amount); err != nil {
		return nil, err
	}
	if err := s.asset.TransferFrom(ctx, s.address, caller, s.address, amount); err != nil {
		return nil, err
	}

	result, err := s.forward(ctx, recipient, amount)
	if err != nil {
		// Nothing was recorded for the recipient, so the pull is reversed.
		if rerr := s.asset.Transfer(ctx, s.address, caller, amount); rerr != nil {
			return nil, errors.Join(err, apperror.InternalError(fmt.Errorf("refund pull: %w", rerr)))
		}
		return nil, err
	}
	return result, nil
}

// ReceiveBridged forwards funds the bridge has already credited to the relay.
// Only the owner may call it, and only against balance not already reserved
// for pending credits.
func (s *RelayServiceImpl) ReceiveBridged(ctx context.Context, caller, recipient common.Address, amount *uint256.Int) (*domain.ZapResult, error) {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer exit()

	if caller != s.owner {
		return nil, apperror.ErrUnauthorized()
	}
	if err := validateInbound(recipient, amount); err != nil {
		return nil, err
	}
	reserved, err := s.pending.Total(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("total pending: %w", err))
	}
	unreserved := domain.SaturatingSub(s.asset.BalanceOf(s.address), reserved)
	if unreserved.Lt(amount) {
		return nil, apperror.ErrInsufficientRelayBalance(amount.Dec(), unreserved.Dec())
	}

	return s.forward(ctx, recipient, amount)
}

// ClaimAndDeposit retries the caller's pending credit at the current share
// price. The credit is cleared before the vault is touched and restored if
// the deposit fails.
func (s *RelayServiceImpl) ClaimAndDeposit(ctx context.Context, caller common.Address) (*domain.ClaimResult, error) {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer exit()

	amount, err := s.pending.Take(ctx, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("take pending credit: %w", err))
	}
	if domain.IsZero(amount) {
		return nil, apperror.ErrInsufficientPendingDeposits()
	}

	attempt := s.tryDeposit(ctx, caller, amount)
	if attempt.err != nil {
		if _, rerr := s.pending.Add(ctx, caller, attempt.held); rerr != nil {
			s.log.Error().Err(rerr).
				Str("user", caller.Hex()).
				Str("amount", attempt.held.Dec()).
				Msg("failed to restore pending credit")
			return nil, errors.Join(attempt.err, apperror.InternalError(fmt.Errorf("restore pending credit: %w", rerr)))
		}
		s.log.Warn().Err(attempt.err).
			Str("user", caller.Hex()).
			Str("amount", amount.Dec()).
			Msg("pending deposit claim failed")
		return nil, attempt.err
	}

	s.events.Emit(ctx, domain.NewPendingDepositClaimed(caller, amount, attempt.shares))
	s.log.Info().
		Str("user", caller.Hex()).
		Str("amount", amount.Dec()).
		Str("shares", attempt.shares.Dec()).
		Msg("pending deposit claimed")

	return &domain.ClaimResult{User: caller, Amount: amount, Shares: attempt.shares}, nil
}

// RecoverFunds sends any registered token out of relay custody. It does not
// consult pending credits; recovering reserved stable funds strands them.
func (s *RelayServiceImpl) RecoverFunds(ctx context.Context, caller, token, to common.Address, amount *uint256.Int) error {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer exit()

	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}
	if domain.IsZeroAddress(to) {
		return apperror.ErrInvalidRecipient()
	}
	if domain.IsZero(amount) {
		return apperror.ErrAmountZero()
	}
	tok, ok := s.tokens.Lookup(token)
	if !ok {
		return apperror.ErrUnknownToken(token.Hex())
	}
	if err := tok.Transfer(ctx, s.address, to, amount); err != nil {
		return err
	}

	if token == s.asset.Address() {
		s.warnIfUnderReserved(ctx)
	}
	s.events.Emit(ctx, domain.NewFundsRecovered(token, to, amount))
	s.log.Info().
		Str("token", token.Hex()).
		Str("to", to.Hex()).
		Str("amount", amount.Dec()).
		Msg("funds recovered")
	return nil
}

// ReceiveNative always fails: the relay only custodies registered tokens.
func (s *RelayServiceImpl) ReceiveNative(_ context.Context, caller common.Address, amount *uint256.Int) error {
	s.log.Debug().Str("caller", caller.Hex()).Str("amount", domain.OrZero(amount).Dec()).Msg("native transfer rejected")
	return apperror.ErrNativeTransferRejected()
}

func (s *RelayServiceImpl) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	ctx, exit, err := s.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer exit()

	if caller != s.owner {
		return apperror.ErrUnauthorized()
	}
	if domain.IsZeroAddress(newOwner) {
		return apperror.ErrInvalidAddress("owner")
	}
	previous := s.owner
	s.owner = newOwner

	s.events.Emit(ctx, domain.NewOwnershipTransferred(domain.SourceRelay, previous, newOwner))
	s.log.Info().Str("previous", previous.Hex()).Str("owner", newOwner.Hex()).Msg("relay ownership transferred")
	return nil
}

// ---- Views ----

func (s *RelayServiceImpl) PendingOf(ctx context.Context, recipient common.Address) (*uint256.Int, error) {
	defer s.guard.view(ctx)()
	return s.pending.Get(ctx, recipient)
}

func (s *RelayServiceImpl) TotalPending(ctx context.Context) (*uint256.Int, error) {
	defer s.guard.view(ctx)()
	return s.pending.Total(ctx)
}

func (s *RelayServiceImpl) ListPending(ctx context.Context) ([]domain.PendingCredit, error) {
	defer s.guard.view(ctx)()
	return s.pending.List(ctx)
}

// ---- internals; callers hold the guard ----

func validateInbound(recipient common.Address, amount *uint256.Int) error {
	if domain.IsZero(amount) {
		return apperror.ErrAmountZero()
	}
	if domain.IsZeroAddress(recipient) {
		return apperror.ErrInvalidRecipient()
	}
	return nil
}

// forward runs the isolated deposit attempt for funds already in custody. A
// failed attempt becomes a pending credit; only a failure to record that
// credit is returned as an error.
func (s *RelayServiceImpl) forward(ctx context.Context, recipient common.Address, amount *uint256.Int) (*domain.ZapResult, error) {
	attempt := s.tryDeposit(ctx, recipient, amount)
	if attempt.err == nil {
		s.events.Emit(ctx, domain.NewZapCompleted(recipient, amount, attempt.shares))
		s.log.Info().
			Str("recipient", recipient.Hex()).
			Str("amount", amount.Dec()).
			Str("shares", attempt.shares.Dec()).
			Msg("zap completed")
		return &domain.ZapResult{Recipient: recipient, Amount: amount, Shares: attempt.shares, Success: true}, nil
	}

	total, err := s.pending.Add(ctx, recipient, attempt.held)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record pending credit: %w", err))
	}

	reason := failureReason(attempt.err)
	s.events.Emit(ctx, domain.NewZapFailed(recipient, attempt.held, reason))
	s.log.Warn().Err(attempt.err).
		Str("recipient", recipient.Hex()).
		Str("amount", attempt.held.Dec()).
		Str("pending_total", total.Dec()).
		Msg("zap failed, funds held as pending credit")

	return &domain.ZapResult{Recipient: recipient, Amount: attempt.held, Shares: domain.Zero(), Success: false, Reason: reason}, nil
}

// depositAttempt is the outcome of tryDeposit. On failure held is the stable
// amount still owed to the recipient.
type depositAttempt struct {
	shares *uint256.Int
	held   *uint256.Int
	err    error
}

// tryDeposit approves the vault, deposits as the relay and forwards the
// minted shares to recipient before the vault is released. The approval is a
// plain set, so a failed attempt can be retried without cleanup. When the
// shares cannot be forwarded the vault unwinds the deposit and the full
// amount stays in relay custody.
func (s *RelayServiceImpl) tryDeposit(ctx context.Context, recipient common.Address, amount *uint256.Int) depositAttempt {
	if err := s.asset.Approve(ctx, s.address, s.vault.Address(), amount); err != nil {
		return depositAttempt{held: amount, err: err}
	}

	minted, err := s.vault.DepositThen(ctx, s.address, amount, func(ctx context.Context, shares *uint256.Int) error {
		return s.shares.Transfer(ctx, s.address, recipient, shares)
	})
	if err != nil {
		return depositAttempt{held: amount, err: err}
	}
	return depositAttempt{shares: minted}
}

// CheckReserve reports RELAY_002 when relay custody no longer covers the
// recorded pending credits, for example after a restart that kept the
// credits but not the ledgers.
func (s *RelayServiceImpl) CheckReserve(ctx context.Context) error {
	defer s.guard.view(ctx)()

	reserved, err := s.pending.Total(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("sum pending credits: %w", err))
	}
	balance := s.asset.BalanceOf(s.address)
	if balance.Lt(reserved) {
		return apperror.ErrInsufficientRelayBalance(reserved.Dec(), balance.Dec())
	}
	return nil
}

func (s *RelayServiceImpl) warnIfUnderReserved(ctx context.Context) {
	reserved, err := s.pending.Total(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not check pending reserve after recovery")
		return
	}
	balance := s.asset.BalanceOf(s.address)
	if balance.Lt(reserved) {
		s.log.Warn().
			Str("balance", balance.Dec()).
			Str("pending_total", reserved.Dec()).
			Msg("recovery left pending credits under-reserved")
	}
}

func failureReason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
