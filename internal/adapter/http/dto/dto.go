package dto

// Amounts and share counts travel as base-10 strings so 256-bit values survive JSON.

// AmountRequest is the body of single-amount vault calls (deposit, yield, invest).
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,uint_dec"`
}

// SharesRequest is the body of POST /api/v1/vault/withdraw.
type SharesRequest struct {
	Shares string `json:"shares" binding:"required,uint_dec"`
}

// RWAValueRequest is the body of PUT /api/v1/vault/rwa-value.
type RWAValueRequest struct {
	Value string `json:"value" binding:"required,uint_dec"`
}

// OwnershipRequest transfers vault or relay ownership.
type OwnershipRequest struct {
	NewOwner string `json:"new_owner" binding:"required,eth_addr"`
}

// RelayDepositRequest is the body of POST /api/v1/relay/deposit.
type RelayDepositRequest struct {
	Recipient string `json:"recipient" binding:"required,eth_addr"`
	Amount    string `json:"amount" binding:"required,uint_dec"`
}

// RecoverFundsRequest is the body of POST /api/v1/relay/recover.
type RecoverFundsRequest struct {
	Token  string `json:"token" binding:"required,eth_addr"`
	To     string `json:"to" binding:"required,eth_addr"`
	Amount string `json:"amount" binding:"required,uint_dec"`
}

// ApproveRequest is the body of POST /api/v1/tokens/:token/approve.
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required,eth_addr"`
	Amount  string `json:"amount" binding:"required,uint_dec"`
}

// TransferRequest is the body of POST /api/v1/tokens/:token/transfer.
type TransferRequest struct {
	To     string `json:"to" binding:"required,eth_addr"`
	Amount string `json:"amount" binding:"required,uint_dec"`
}

// BridgeDeliveryRequest announces an attested burn on a source domain.
type BridgeDeliveryRequest struct {
	MessageID    string `json:"message_id" binding:"required,max=128,safe_id"`
	SourceDomain uint32 `json:"source_domain"`
	Recipient    string `json:"recipient" binding:"required,eth_addr"`
	Amount       string `json:"amount" binding:"required,uint_dec"`
}

// VaultResponse is every vault view at one instant.
type VaultResponse struct {
	Address       string `json:"address"`
	Owner         string `json:"owner"`
	Treasury      string `json:"treasury"`
	Paused        bool   `json:"paused"`
	LiquidBalance string `json:"liquid_balance"`
	IlliquidValue string `json:"illiquid_value"`
	TotalAssets   string `json:"total_assets"`
	TotalShares   string `json:"total_shares"`
	SharePrice    string `json:"share_price"`
}

// DepositResponse reports shares minted by a vault deposit.
type DepositResponse struct {
	Amount string `json:"amount"`
	Shares string `json:"shares"`
}

// WithdrawResponse reports stable asset paid out for burned shares.
type WithdrawResponse struct {
	Shares string `json:"shares"`
	Amount string `json:"amount"`
}

// YieldResponse is the fee split of a yield deposit.
type YieldResponse struct {
	Gross string `json:"gross"`
	Fee   string `json:"fee"`
	Net   string `json:"net"`
}

// PreviewResponse is the result of a deposit or withdraw preview.
type PreviewResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// RelayResponse describes the relay.
type RelayResponse struct {
	Address      string `json:"address"`
	Owner        string `json:"owner"`
	TotalPending string `json:"total_pending"`
}

// ZapResponse reports one forwarding attempt.
type ZapResponse struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Shares    string `json:"shares"`
	Success   bool   `json:"success"`
	Reason    string `json:"reason,omitempty"`
}

// ClaimResponse reports a pending-credit claim.
type ClaimResponse struct {
	User   string `json:"user"`
	Amount string `json:"amount"`
	Shares string `json:"shares"`
}

// PendingCreditResponse is a single recipient's parked amount.
type PendingCreditResponse struct {
	Recipient string  `json:"recipient"`
	Amount    string  `json:"amount"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// PendingListResponse lists every pending credit.
type PendingListResponse struct {
	Items []PendingCreditResponse `json:"items"`
	Total string                  `json:"total"`
}

// EventResponse is one emitted event.
type EventResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Source    string            `json:"source"`
	Fields    map[string]string `json:"fields"`
	CreatedAt string            `json:"created_at"`
}

// TokenResponse describes a registered token.
type TokenResponse struct {
	Address     string `json:"address"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

// BalanceResponse is an account's token balance.
type BalanceResponse struct {
	Token   string `json:"token"`
	Account string `json:"account"`
	Balance string `json:"balance"`
}

// AllowanceResponse is a spender's allowance over an owner's tokens.
type AllowanceResponse struct {
	Token     string `json:"token"`
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

// DeliveryResponse is the processed outcome of a bridge message.
type DeliveryResponse struct {
	MessageID   string `json:"message_id"`
	Recipient   string `json:"recipient"`
	Amount      string `json:"amount"`
	Shares      string `json:"shares"`
	Success     bool   `json:"success"`
	Reason      string `json:"reason,omitempty"`
	ProcessedAt string `json:"processed_at"`
}
