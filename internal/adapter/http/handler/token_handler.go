package handler

import (
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/dto"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// Faucet mints test stable asset to callers, at most Limit per request.
type Faucet struct {
	Asset ports.MintableAsset
	Limit *uint256.Int
}

// TokenHandler exposes the token ledgers.
type TokenHandler struct {
	tokens ports.TokenRegistry
	faucet *Faucet
}

// NewTokenHandler creates a new TokenHandler. A nil faucet disables POST /faucet.
func NewTokenHandler(tokens ports.TokenRegistry, faucet *Faucet) *TokenHandler {
	return &TokenHandler{tokens: tokens, faucet: faucet}
}

// ListTokens handles GET /api/v1/tokens.
func (h *TokenHandler) ListTokens(c *gin.Context) {
	assets := h.tokens.List()
	items := make([]dto.TokenResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, toTokenResponse(a))
	}
	response.OK(c, items)
}

// GetBalance handles GET /api/v1/tokens/:token/balance/:address.
func (h *TokenHandler) GetBalance(c *gin.Context) {
	asset, ok := h.lookup(c)
	if !ok {
		return
	}
	account, ok := addressParam(c, "address", c.Param("address"))
	if !ok {
		return
	}
	response.OK(c, dto.BalanceResponse{
		Token:   asset.Address().Hex(),
		Account: account.Hex(),
		Balance: dec(asset.BalanceOf(account)),
	})
}

// GetAllowance handles GET /api/v1/tokens/:token/allowance?owner=&spender=.
func (h *TokenHandler) GetAllowance(c *gin.Context) {
	asset, ok := h.lookup(c)
	if !ok {
		return
	}
	owner, ok := addressParam(c, "owner", c.Query("owner"))
	if !ok {
		return
	}
	spender, ok := addressParam(c, "spender", c.Query("spender"))
	if !ok {
		return
	}
	response.OK(c, dto.AllowanceResponse{
		Token:     asset.Address().Hex(),
		Owner:     owner.Hex(),
		Spender:   spender.Hex(),
		Allowance: dec(asset.Allowance(owner, spender)),
	})
}

// Approve handles POST /api/v1/tokens/:token/approve.
func (h *TokenHandler) Approve(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	asset, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if !bind(c, &req) {
		return
	}
	spender, ok := addressParam(c, "spender", req.Spender)
	if !ok {
		return
	}
	amount, ok := amountParam(c, "amount", req.Amount)
	if !ok {
		return
	}

	if err := asset.Approve(c.Request.Context(), caller, spender, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AllowanceResponse{
		Token:     asset.Address().Hex(),
		Owner:     caller.Hex(),
		Spender:   spender.Hex(),
		Allowance: dec(asset.Allowance(caller, spender)),
	})
}

// Transfer handles POST /api/v1/tokens/:token/transfer.
func (h *TokenHandler) Transfer(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	asset, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bind(c, &req) {
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

	if err := asset.Transfer(c.Request.Context(), caller, to, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{
		Token:   asset.Address().Hex(),
		Account: caller.Hex(),
		Balance: dec(asset.BalanceOf(caller)),
	})
}

// Drip handles POST /api/v1/faucet.
func (h *TokenHandler) Drip(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if h.faucet == nil {
		response.Error(c, apperror.Validation("faucet is disabled"))
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
	if h.faucet.Limit != nil && amount.Gt(h.faucet.Limit) {
		response.Error(c, apperror.Validation("amount exceeds faucet limit of "+h.faucet.Limit.Dec()))
		return
	}

	asset := h.faucet.Asset
	if err := asset.Mint(c.Request.Context(), asset.Minter(), caller, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BalanceResponse{
		Token:   asset.Address().Hex(),
		Account: caller.Hex(),
		Balance: dec(asset.BalanceOf(caller)),
	})
}

func (h *TokenHandler) lookup(c *gin.Context) (ports.Asset, bool) {
	token, ok := addressParam(c, "token", c.Param("token"))
	if !ok {
		return nil, false
	}
	asset, found := h.tokens.Lookup(token)
	if !found {
		response.Error(c, apperror.ErrUnknownToken(token.Hex()))
		return nil, false
	}
	return asset, true
}

func toTokenResponse(a ports.Asset) dto.TokenResponse {
	return dto.TokenResponse{
		Address:     a.Address().Hex(),
		Symbol:      a.Symbol(),
		Decimals:    a.Decimals(),
		TotalSupply: dec(a.TotalSupply()),
	}
}
