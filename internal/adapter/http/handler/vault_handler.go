package handler

import (
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/dto"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/gin-gonic/gin"
)

// VaultHandler handles vault endpoints.
type VaultHandler struct {
	vault ports.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vault ports.VaultService) *VaultHandler {
	return &VaultHandler{vault: vault}
}

// GetVault handles GET /api/v1/vault.
func (h *VaultHandler) GetVault(c *gin.Context) {
	response.OK(c, toVaultResponse(h.vault.Snapshot(c.Request.Context())))
}

// PreviewDeposit handles GET /api/v1/vault/preview/deposit?amount=.
func (h *VaultHandler) PreviewDeposit(c *gin.Context) {
	amount, ok := amountParam(c, "amount", c.Query("amount"))
	if !ok {
		return
	}
	shares, err := h.vault.PreviewDeposit(c.Request.Context(), amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PreviewResponse{Input: dec(amount), Output: dec(shares)})
}

// PreviewWithdraw handles GET /api/v1/vault/preview/withdraw?shares=.
func (h *VaultHandler) PreviewWithdraw(c *gin.Context) {
	shares, ok := amountParam(c, "shares", c.Query("shares"))
	if !ok {
		return
	}
	assets, err := h.vault.PreviewWithdraw(c.Request.Context(), shares)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PreviewResponse{Input: dec(shares), Output: dec(assets)})
}

// Deposit handles POST /api/v1/vault/deposit.
func (h *VaultHandler) Deposit(c *gin.Context) {
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

	shares, err := h.vault.Deposit(c.Request.Context(), caller, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.DepositResponse{Amount: dec(amount), Shares: dec(shares)})
}

// Withdraw handles POST /api/v1/vault/withdraw.
func (h *VaultHandler) Withdraw(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.SharesRequest
	if !bind(c, &req) {
		return
	}
	shares, ok := amountParam(c, "shares", req.Shares)
	if !ok {
		return
	}

	assets, err := h.vault.Withdraw(c.Request.Context(), caller, shares)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WithdrawResponse{Shares: dec(shares), Amount: dec(assets)})
}

// DepositYield handles POST /api/v1/vault/yield.
func (h *VaultHandler) DepositYield(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if !bind(c, &req) {
		return
	}
	gross, ok := amountParam(c, "amount", req.Amount)
	if !ok {
		return
	}

	split, err := h.vault.DepositYield(c.Request.Context(), caller, gross)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.YieldResponse{Gross: dec(split.Gross), Fee: dec(split.Fee), Net: dec(split.Net)})
}

// WithdrawForInvestment handles POST /api/v1/vault/invest.
func (h *VaultHandler) WithdrawForInvestment(c *gin.Context) {
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

	if err := h.vault.WithdrawForInvestment(c.Request.Context(), caller, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVaultResponse(h.vault.Snapshot(c.Request.Context())))
}

// UpdateRWAValue handles PUT /api/v1/vault/rwa-value.
func (h *VaultHandler) UpdateRWAValue(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.RWAValueRequest
	if !bind(c, &req) {
		return
	}
	value, ok := amountParam(c, "value", req.Value)
	if !ok {
		return
	}

	if err := h.vault.UpdateRWAValue(c.Request.Context(), caller, value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVaultResponse(h.vault.Snapshot(c.Request.Context())))
}

// Pause handles POST /api/v1/vault/pause.
func (h *VaultHandler) Pause(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.vault.Pause(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVaultResponse(h.vault.Snapshot(c.Request.Context())))
}

// Unpause handles POST /api/v1/vault/unpause.
func (h *VaultHandler) Unpause(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.vault.Unpause(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVaultResponse(h.vault.Snapshot(c.Request.Context())))
}

// TransferOwnership handles PUT /api/v1/vault/owner.
func (h *VaultHandler) TransferOwnership(c *gin.Context) {
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

	if err := h.vault.TransferOwnership(c.Request.Context(), caller, newOwner); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVaultResponse(h.vault.Snapshot(c.Request.Context())))
}

func toVaultResponse(s domain.VaultSnapshot) dto.VaultResponse {
	return dto.VaultResponse{
		Address:       s.Address.Hex(),
		Owner:         s.Owner.Hex(),
		Treasury:      s.Treasury.Hex(),
		Paused:        s.Paused,
		LiquidBalance: dec(s.LiquidBalance),
		IlliquidValue: dec(s.IlliquidValue),
		TotalAssets:   dec(s.TotalAssets),
		TotalShares:   dec(s.TotalShares),
		SharePrice:    dec(s.SharePrice),
	}
}
