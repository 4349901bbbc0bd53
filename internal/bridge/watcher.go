// Package bridge drains attested cross-chain deliveries into the relay.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/rs/zerolog"
)

// Config tunes the watcher loop.
type Config struct {
	PollTimeout time.Duration
	RetryDelay  time.Duration
	DeliveryTTL time.Duration
	MaxAttempts int
}

func (c Config) withDefaults() Config {
	if c.PollTimeout <= 0 {
		c.PollTimeout = time.Second
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 2 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 10
	}
	return c
}

// Watcher pops bridge deliveries, credits the relay through the transmitter
// and forwards them with the relay's bridged entry point as its owner.
type Watcher struct {
	queue       ports.DeliveryQueue
	processed   ports.DeliveryLog
	transmitter ports.BridgeTransmitter
	relay       ports.RelayService
	cfg         Config
	log         zerolog.Logger
}

// NewWatcher creates a new Watcher.
func NewWatcher(
	queue ports.DeliveryQueue,
	processed ports.DeliveryLog,
	transmitter ports.BridgeTransmitter,
	relay ports.RelayService,
	cfg Config,
	log zerolog.Logger,
) *Watcher {
	return &Watcher{
		queue:       queue,
		processed:   processed,
		transmitter: transmitter,
		relay:       relay,
		cfg:         cfg.withDefaults(),
		log:         log.With().Str("component", "bridge_watcher").Logger(),
	}
}

// Run consumes the queue until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info().Dur("poll_timeout", w.cfg.PollTimeout).Msg("Bridge watcher started")
	defer w.log.Info().Msg("Bridge watcher stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		delivery, err := w.queue.Pop(ctx, w.cfg.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.log.Error().Err(err).Msg("Failed to pop bridge delivery")
			if !w.sleep(ctx, w.cfg.RetryDelay) {
				return nil
			}
			continue
		}
		if delivery == nil {
			continue
		}

		if err := w.Process(ctx, *delivery); err != nil {
			w.log.Error().Err(err).Str("message_id", delivery.MessageID).Msg("Bridge delivery not processed")
		}
	}
}

// Process handles one delivery. Deliveries already in the log are skipped.
// Transient failures put the delivery back on the queue after RetryDelay.
func (w *Watcher) Process(ctx context.Context, d domain.BridgeDelivery) error {
	if d.MessageID == "" {
		return apperror.Validation("bridge message id is required")
	}

	seen, err := w.processed.Get(ctx, d.MessageID)
	if err != nil {
		return w.retry(ctx, d, fmt.Errorf("check delivery log: %w", err))
	}
	if seen != nil {
		w.log.Debug().Str("message_id", d.MessageID).Msg("Bridge delivery already processed, skipping")
		return nil
	}

	// Receive is idempotent per message: a retry after a partial failure does not mint twice.
	minted, err := w.transmitter.Receive(ctx, d)
	if err != nil {
		if retryable(err) {
			return w.retry(ctx, d, err)
		}
		return w.record(ctx, d, nil, fmt.Sprintf("transmitter rejected delivery: %s", reason(err)))
	}
	if !minted {
		if prev, ok := w.transmitter.Forwarded(d.MessageID); ok {
			w.log.Warn().Str("message_id", d.MessageID).Msg("Bridge delivery already forwarded, restoring log entry")
			return w.record(ctx, d, prev, "")
		}
	}

	result, err := w.relay.ReceiveBridged(ctx, w.relay.Owner(ctx), d.Recipient, d.Amount)
	if err != nil {
		if retryable(err) {
			return w.retry(ctx, d, err)
		}
		return w.record(ctx, d, nil, reason(err))
	}
	w.transmitter.MarkForwarded(d.MessageID, *result)

	return w.record(ctx, d, result, "")
}

func (w *Watcher) record(ctx context.Context, d domain.BridgeDelivery, result *domain.ZapResult, rejected string) error {
	rec := &domain.DeliveryRecord{
		MessageID:   d.MessageID,
		Recipient:   d.Recipient,
		Amount:      d.Amount,
		Shares:      domain.Zero(),
		Reason:      rejected,
		ProcessedAt: time.Now().UTC(),
	}
	if result != nil {
		rec.Success = result.Success
		rec.Reason = result.Reason
		rec.Shares = domain.OrZero(result.Shares)
	}

	evt := w.log.Info()
	if !rec.Success {
		evt = w.log.Warn()
	}
	evt.Str("message_id", d.MessageID).
		Str("recipient", d.Recipient.Hex()).
		Str("amount", domain.OrZero(d.Amount).Dec()).
		Bool("success", rec.Success).
		Str("reason", rec.Reason).
		Msg("Bridge delivery processed")

	var err error
	for attempt := 1; attempt <= w.cfg.MaxAttempts; attempt++ {
		if err = w.processed.Set(context.WithoutCancel(ctx), rec, w.cfg.DeliveryTTL); err == nil {
			return nil
		}
		w.log.Warn().Err(err).
			Str("message_id", d.MessageID).
			Int("attempt", attempt).
			Msg("Failed to record bridge delivery")
		if attempt < w.cfg.MaxAttempts && !w.sleep(ctx, w.cfg.RetryDelay) {
			break
		}
	}
	return fmt.Errorf("record delivery %s: %w", d.MessageID, err)
}

// retry waits RetryDelay and re-queues d. After MaxAttempts the delivery is
// recorded as failed; any credited funds stay unreserved in relay custody.
func (w *Watcher) retry(ctx context.Context, d domain.BridgeDelivery, cause error) error {
	d.Attempts++
	if d.Attempts >= w.cfg.MaxAttempts {
		w.log.Error().Err(cause).
			Str("message_id", d.MessageID).
			Int("attempts", d.Attempts).
			Msg("Bridge delivery exhausted retries")
		return w.record(ctx, d, nil, fmt.Sprintf("gave up after %d attempts: %s", d.Attempts, reason(cause)))
	}

	w.log.Warn().Err(cause).
		Str("message_id", d.MessageID).
		Int("attempt", d.Attempts).
		Dur("retry_in", w.cfg.RetryDelay).
		Msg("Bridge delivery deferred")

	w.sleep(ctx, w.cfg.RetryDelay)
	if err := w.queue.Push(context.WithoutCancel(ctx), d); err != nil {
		return fmt.Errorf("requeue delivery %s: %w", d.MessageID, err)
	}
	return nil
}

// sleep waits for d or ctx cancellation and reports whether the full delay elapsed.
func (w *Watcher) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// retryable reports whether err may clear on its own, such as bridged funds
// that have not landed yet.
func retryable(err error) bool {
	switch apperror.CodeOf(err) {
	case "RELAY_002", "SYS_001", "SYS_002", "":
		return true
	default:
		return false
	}
}

func reason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
