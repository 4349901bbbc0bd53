package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// Transmitter is the destination half of a burn-and-mint bridge. Each
// attested message mints its amount to the destination exactly once.
type Transmitter struct {
	mu          sync.Mutex
	asset       ports.MintableAsset
	identity    common.Address
	destination common.Address
	consumed    map[string]struct{}
	forwarded   map[string]domain.ZapResult
	log         zerolog.Logger
}

// NewTransmitter mints through asset as identity, which must be the asset's minter.
func NewTransmitter(asset ports.MintableAsset, identity, destination common.Address, log zerolog.Logger) (*Transmitter, error) {
	if identity != asset.Minter() {
		return nil, fmt.Errorf("transmitter %s is not the minter of %s", identity.Hex(), asset.Symbol())
	}
	if domain.IsZeroAddress(destination) {
		return nil, apperror.ErrInvalidRecipient()
	}
	return &Transmitter{
		asset:       asset,
		identity:    identity,
		destination: destination,
		consumed:    make(map[string]struct{}),
		forwarded:   make(map[string]domain.ZapResult),
		log:         log,
	}, nil
}

// Receive credits the destination with the delivery amount. It returns false
// without minting when the message has already been received.
func (t *Transmitter) Receive(ctx context.Context, delivery domain.BridgeDelivery) (bool, error) {
	if delivery.MessageID == "" {
		return false, apperror.Validation("bridge message id is required")
	}
	if domain.IsZero(delivery.Amount) {
		return false, apperror.ErrAmountZero()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.consumed[delivery.MessageID]; ok {
		return false, nil
	}
	if err := t.asset.Mint(ctx, t.identity, t.destination, delivery.Amount); err != nil {
		return false, err
	}
	t.consumed[delivery.MessageID] = struct{}{}

	t.log.Info().
		Str("message_id", delivery.MessageID).
		Uint32("source_domain", delivery.SourceDomain).
		Str("amount", delivery.Amount.Dec()).
		Msg("bridge message received")
	return true, nil
}

// MarkForwarded records the relay outcome for a received message.
func (t *Transmitter) MarkForwarded(messageID string, result domain.ZapResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.forwarded[messageID] = result
}

// Forwarded returns the recorded relay outcome for messageID.
func (t *Transmitter) Forwarded(messageID string) (*domain.ZapResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	res, ok := t.forwarded[messageID]
	if !ok {
		return nil, false
	}
	return &res, true
}
