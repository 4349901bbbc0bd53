package memory

import (
	"context"
	"sync"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
)

// DeliveryQueue is a buffered in-process ports.DeliveryQueue.
type DeliveryQueue struct {
	ch chan domain.BridgeDelivery
}

func NewDeliveryQueue(size int) *DeliveryQueue {
	return &DeliveryQueue{ch: make(chan domain.BridgeDelivery, size)}
}

func (q *DeliveryQueue) Push(ctx context.Context, delivery domain.BridgeDelivery) error {
	select {
	case q.ch <- delivery:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *DeliveryQueue) Pop(ctx context.Context, timeout time.Duration) (*domain.BridgeDelivery, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case d := <-q.ch:
		return &d, nil
	case <-timer.C:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// DeliveryLog is an in-process ports.DeliveryLog. Records do not expire.
type DeliveryLog struct {
	mu      sync.RWMutex
	records map[string]domain.DeliveryRecord
}

func NewDeliveryLog() *DeliveryLog {
	return &DeliveryLog{records: make(map[string]domain.DeliveryRecord)}
}

func (l *DeliveryLog) Get(_ context.Context, messageID string) (*domain.DeliveryRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[messageID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (l *DeliveryLog) Set(_ context.Context, rec *domain.DeliveryRecord, _ time.Duration) error {
	l.mu.Lock()
	l.records[rec.MessageID] = *rec
	l.mu.Unlock()
	return nil
}
