package handler

import (
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/dto"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/gin-gonic/gin"
)

// RelayHandler handles relay endpoints.
type RelayHandler struct {
	relay ports.RelayService
}

// NewRelayHandler creates a new RelayHandler.
func NewRelayHandler(relay ports.RelayService) *RelayHandler {
	return &RelayHandler{relay: relay}
}

// GetRelay handles GET /api/v1/relay.
func (h *RelayHandler) GetRelay(c *gin.Context) {
	ctx := c.Request.Context()
	total, err := h.relay.TotalPending(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RelayResponse{
		Address:      h.relay.Address().Hex(),
		Owner:        h.relay.Owner(ctx).Hex(),
		TotalPending: dec(total),
	})
}

// Deposit handles POST /api/v1/relay/deposit. A forward that failed is
// answered with 202: the amount is parked as the recipient's pending credit.
func (h *RelayHandler) Deposit(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.RelayDepositRequest
	if !bind(c, &req) {
		return
	}
	recipient, ok := addressParam(c, "recipient", req.Recipient)
	if !ok {
		return
	}
	amount, ok := amountParam(c, "amount", req.Amount)
	if !ok {
		return
	}

	result, err := h.relay.ReceiveAndDeposit(c.Request.Context(), caller, recipient, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Success {
		response.Accepted(c, toZapResponse(result))
		return
	}
	response.Created(c, toZapResponse(result))
}

// Claim handles POST /api/v1/relay/claim.
func (h *RelayHandler) Claim(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	result, err := h.relay.ClaimAndDeposit(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ClaimResponse{
		User:   result.User.Hex(),
		Amount: dec(result.Amount),
		Shares: dec(result.Shares),
	})
}

// RecoverFunds handles POST /api/v1/relay/recover.
func (h *RelayHandler) RecoverFunds(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.RecoverFundsRequest
	if !bind(c, &req) {
		return
	}
	token, ok := addressParam(c, "token", req.Token)
	if !ok {
		return
	}
	to, ok := addressParam(c, "to", req.To)
	if !ok {
		return
	}
	amount, ok := amountParam(c, "amount", req.Amount)
	if !ok {
		return
	}

	if err := h.relay.RecoverFunds(c.Request.Context(), caller, token, to, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"token": token.Hex(), "to": to.Hex(), "amount": dec(amount)})
}

// ReceiveNative handles POST /api/v1/relay/native. It always fails.
func (h *RelayHandler) ReceiveNative(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if !bind(c, &req) {
		return
	}
	amount, ok := amountParam(c, "amount", req.Amount)
	if !ok {
		return
	}

	if err := h.relay.ReceiveNative(c.Request.Context(), caller, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// GetPending handles GET /api/v1/relay/pending/:address.
func (h *RelayHandler) GetPending(c *gin.Context) {
	recipient, ok := addressParam(c, "address", c.Param("address"))
	if !ok {
		return
	}
	amount, err := h.relay.PendingOf(c.Request.Context(), recipient)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PendingCreditResponse{Recipient: recipient.Hex(), Amount: dec(amount)})
}

// ListPending handles GET /api/v1/relay/pending.
func (h *RelayHandler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()
	credits, err := h.relay.ListPending(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	total, err := h.relay.TotalPending(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PendingCreditResponse, 0, len(credits))
	for _, credit := range credits {
		updated := formatTime(credit.UpdatedAt)
		items = append(items, dto.PendingCreditResponse{
			Recipient: credit.Recipient.Hex(),
			Amount:    dec(credit.Amount),
			UpdatedAt: &updated,
		})
	}
	response.OK(c, dto.PendingListResponse{Items: items, Total: dec(total)})
}

// TransferOwnership handles PUT /api/v1/relay/owner.
func (h *RelayHandler) TransferOwnership(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.OwnershipRequest
	if !bind(c, &req) {
		return
	}
	newOwner, ok := addressParam(c, "new_owner", req.NewOwner)
	if !ok {
		return
	}

	if err := h.relay.TransferOwnership(c.Request.Context(), caller, newOwner); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"owner": newOwner.Hex()})
}

func toZapResponse(r *domain.ZapResult) dto.ZapResponse {
	return dto.ZapResponse{
		Recipient: r.Recipient.Hex(),
		Amount:    dec(r.Amount),
		Shares:    dec(r.Shares),
		Success:   r.Success,
		Reason:    r.Reason,
	}
}
