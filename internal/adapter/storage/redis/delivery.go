package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	goredis "github.com/redis/go-redis/v9"
)

// deliveryWire is the JSON form of a bridge delivery on the queue.
type deliveryWire struct {
	MessageID    string `json:"message_id"`
	SourceDomain uint32 `json:"source_domain"`
	Recipient    string `json:"recipient"`
	Amount       string `json:"amount"`
	Attempts     int    `json:"attempts,omitempty"`
}

// recordWire is the JSON form of a processed delivery.
type recordWire struct {
	MessageID   string    `json:"message_id"`
	Recipient   string    `json:"recipient"`
	Amount      string    `json:"amount"`
	Shares      string    `json:"shares"`
	Success     bool      `json:"success"`
	Reason      string    `json:"reason,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}

// DeliveryQueue implements ports.DeliveryQueue as a Redis list (LPUSH / BRPOP, FIFO).
type DeliveryQueue struct {
	client *goredis.Client
	key    string
}

// NewDeliveryQueue creates a queue stored under key.
func NewDeliveryQueue(client *goredis.Client, key string) *DeliveryQueue {
	if key == "" {
		key = "bridge:deliveries"
	}
	return &DeliveryQueue{client: client, key: key}
}

// Push enqueues a delivery.
func (q *DeliveryQueue) Push(ctx context.Context, d domain.BridgeDelivery) error {
	payload, err := json.Marshal(deliveryWire{
		MessageID:    d.MessageID,
		SourceDomain: d.SourceDomain,
		Recipient:    d.Recipient.Hex(),
		Amount:       domain.OrZero(d.Amount).Dec(),
		Attempts:     d.Attempts,
	})
	if err != nil {
		return fmt.Errorf("marshal delivery: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("redis delivery push: %w", err)
	}
	return nil
}

// Pop blocks up to timeout for the oldest delivery. Returns nil, nil on timeout.
func (q *DeliveryQueue) Pop(ctx context.Context, timeout time.Duration) (*domain.BridgeDelivery, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis delivery pop: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("redis delivery pop: unexpected reply of %d elements", len(res))
	}

	var w deliveryWire
	if err := json.Unmarshal([]byte(res[1]), &w); err != nil {
		return nil, fmt.Errorf("decode delivery: %w", err)
	}
	recipient, ok := domain.ParseAddress(w.Recipient)
	if !ok {
		return nil, fmt.Errorf("decode delivery %s: bad recipient %q", w.MessageID, w.Recipient)
	}
	amount, err := domain.ParseAmount(w.Amount)
	if err != nil {
		return nil, fmt.Errorf("decode delivery %s: %w", w.MessageID, err)
	}

	return &domain.BridgeDelivery{
		MessageID:    w.MessageID,
		SourceDomain: w.SourceDomain,
		Recipient:    recipient,
		Amount:       amount,
		Attempts:     w.Attempts,
	}, nil
}

// DeliveryLog implements ports.DeliveryLog with one key per message ID.
type DeliveryLog struct {
	client *goredis.Client
	prefix string
}

// NewDeliveryLog creates a new Redis-backed delivery log.
func NewDeliveryLog(client *goredis.Client) *DeliveryLog {
	return &DeliveryLog{
		client: client,
		prefix: "bridge:processed:",
	}
}

// Get returns the processed record or nil, nil if the message is unseen.
func (l *DeliveryLog) Get(ctx context.Context, messageID string) (*domain.DeliveryRecord, error) {
	val, err := l.client.Get(ctx, l.prefix+messageID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis delivery log get: %w", err)
	}

	var w recordWire
	if err := json.Unmarshal(val, &w); err != nil {
		return nil, fmt.Errorf("decode delivery record: %w", err)
	}
	amount, err := domain.ParseAmount(w.Amount)
	if err != nil {
		return nil, fmt.Errorf("decode delivery record amount: %w", err)
	}
	shares, err := domain.ParseAmount(w.Shares)
	if err != nil {
		return nil, fmt.Errorf("decode delivery record shares: %w", err)
	}

	return &domain.DeliveryRecord{
		MessageID:   w.MessageID,
		Recipient:   common.HexToAddress(w.Recipient),
		Amount:      amount,
		Shares:      shares,
		Success:     w.Success,
		Reason:      w.Reason,
		ProcessedAt: w.ProcessedAt,
	}, nil
}

// Set stores a processed record. A zero ttl keeps it forever.
func (l *DeliveryLog) Set(ctx context.Context, rec *domain.DeliveryRecord, ttl time.Duration) error {
	payload, err := json.Marshal(recordWire{
		MessageID:   rec.MessageID,
		Recipient:   rec.Recipient.Hex(),
		Amount:      domain.OrZero(rec.Amount).Dec(),
		Shares:      domain.OrZero(rec.Shares).Dec(),
		Success:     rec.Success,
		Reason:      rec.Reason,
		ProcessedAt: rec.ProcessedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal delivery record: %w", err)
	}
	if err := l.client.Set(ctx, l.prefix+rec.MessageID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis delivery log set: %w", err)
	}
	return nil
}
