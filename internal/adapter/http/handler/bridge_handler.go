package handler

import (
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/dto"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/gin-gonic/gin"
)

// BridgeHandler accepts attested deliveries for the bridge watcher.
type BridgeHandler struct {
	queue     ports.DeliveryQueue
	processed ports.DeliveryLog
	relay     ports.RelayService
}

// NewBridgeHandler creates a new BridgeHandler.
func NewBridgeHandler(queue ports.DeliveryQueue, processed ports.DeliveryLog, relay ports.RelayService) *BridgeHandler {
	return &BridgeHandler{queue: queue, processed: processed, relay: relay}
}

// Enqueue handles POST /api/v1/bridge/deliveries. Only the relay owner, which
// operates the attestation service, may submit deliveries.
func (h *BridgeHandler) Enqueue(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if caller != h.relay.Owner(ctx) {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}
	var req dto.BridgeDeliveryRequest
	if !bind(c, &req) {
		return
	}
	recipient, ok := addressParam(c, "recipient", req.Recipient)
	if !ok {
		return
	}
	if domain.IsZeroAddress(recipient) {
		response.Error(c, apperror.ErrInvalidRecipient())
		return
	}
	amount, ok := amountParam(c, "amount", req.Amount)
	if !ok {
		return
	}
	if amount.IsZero() {
		response.Error(c, apperror.ErrAmountZero())
		return
	}

	delivery := domain.BridgeDelivery{
		MessageID:    req.MessageID,
		SourceDomain: req.SourceDomain,
		Recipient:    recipient,
		Amount:       amount,
	}
	if err := h.queue.Push(ctx, delivery); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.Accepted(c, gin.H{"message_id": req.MessageID, "status": "queued"})
}

// GetDelivery handles GET /api/v1/bridge/deliveries/:id.
func (h *BridgeHandler) GetDelivery(c *gin.Context) {
	rec, err := h.processed.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if rec == nil {
		response.Error(c, apperror.ErrDeliveryNotFound(c.Param("id")))
		return
	}
	response.OK(c, dto.DeliveryResponse{
		MessageID:   rec.MessageID,
		Recipient:   rec.Recipient.Hex(),
		Amount:      dec(rec.Amount),
		Shares:      dec(rec.Shares),
		Success:     rec.Success,
		Reason:      rec.Reason,
		ProcessedAt: formatTime(rec.ProcessedAt),
	})
}
