package ports

import (
	"context"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// EventRepository persists emitted events.
type EventRepository interface {
	Create(ctx context.Context, evt *domain.Event) error
	ListRecent(ctx context.Context, limit int) ([]domain.Event, error)
}

// PendingCreditStore holds per-recipient amounts owed by the relay.
// Implementations must make Add and Take atomic per recipient.
type PendingCreditStore interface {
	// Get returns zero for unknown recipients.
	Get(ctx context.Context, recipient common.Address) (*uint256.Int, error)
	// Add accumulates amount and returns the new total.
	Add(ctx context.Context, recipient common.Address, amount *uint256.Int) (*uint256.Int, error)
	// Take zeroes the entry and returns what it held.
	Take(ctx context.Context, recipient common.Address) (*uint256.Int, error)
	Total(ctx context.Context) (*uint256.Int, error)
	List(ctx context.Context) ([]domain.PendingCredit, error)
}

// DeliveryLog remembers processed bridge messages.
type DeliveryLog interface {
	// Get returns nil when the message has not been processed.
	Get(ctx context.Context, messageID string) (*domain.DeliveryRecord, error)
	Set(ctx context.Context, rec *domain.DeliveryRecord, ttl time.Duration) error
}

// DeliveryQueue carries bridge deliveries from the attestation side to the watcher.
type DeliveryQueue interface {
	Push(ctx context.Context, delivery domain.BridgeDelivery) error
	// Pop blocks up to timeout and returns nil when nothing arrived.
	Pop(ctx context.Context, timeout time.Duration) (*domain.BridgeDelivery, error)
}
