package ports

import (
	"context"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Asset is a fungible token ledger. Every mutating call is all-or-nothing:
// on error no balance or allowance has changed.
type Asset interface {
	Address() common.Address
	Symbol() string
	Decimals() uint8
	BalanceOf(account common.Address) *uint256.Int
	Allowance(owner, spender common.Address) *uint256.Int
	TotalSupply() *uint256.Int
	Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount *uint256.Int) error
	// Approve sets (does not add to) the spender's allowance.
	Approve(ctx context.Context, owner, spender common.Address, amount *uint256.Int) error
}

// MintableAsset is an Asset whose supply is controlled by a single minter
// identity fixed at construction.
type MintableAsset interface {
	Asset
	Minter() common.Address
	Mint(ctx context.Context, caller, to common.Address, amount *uint256.Int) error
	Burn(ctx context.Context, caller, from common.Address, amount *uint256.Int) error
}

// TokenRegistry resolves token addresses to ledgers.
type TokenRegistry interface {
	Lookup(token common.Address) (Asset, bool)
	List() []Asset
}

// BridgeTransmitter finalises an attested cross-chain transfer by crediting
// the destination. It reports false when the message was already consumed.
type BridgeTransmitter interface {
	Receive(ctx context.Context, delivery domain.BridgeDelivery) (bool, error)
	// MarkForwarded ties the relay outcome to a received message. It lives as
	// long as the mint record, so a message is forwarded at most once even
	// when the delivery log loses it.
	MarkForwarded(messageID string, result domain.ZapResult)
	Forwarded(messageID string) (*domain.ZapResult, bool)
}
