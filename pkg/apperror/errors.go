package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Message    string            `json:"message"`
	HTTPStatus int               `json:"-"`
	Details    map[string]string `json:"details,omitempty"`
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetail returns e with an extra diagnostic key/value attached.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the code of the first AppError in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// ---- Security & Authentication (SEC) ----

func ErrMissingCredentials() *AppError {
	return New("SEC_001", "Missing caller credentials", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Vault (VAULT) ----

func ErrAmountZero() *AppError {
	return New("VAULT_001", "Amount must be greater than zero", http.StatusBadRequest)
}

// ErrInsufficientLiquidity carries the requested and available liquid amounts.
func ErrInsufficientLiquidity(requested, available string) *AppError {
	return New("VAULT_002", "Insufficient liquid balance", http.StatusConflict).
		WithDetail("requested", requested).
		WithDetail("available", available)
}

func ErrZeroSharePrice() *AppError {
	return New("VAULT_003", "Share price is zero", http.StatusConflict)
}

func ErrZeroSharesMinted() *AppError {
	return New("VAULT_004", "Deposit too small to mint a share", http.StatusBadRequest)
}

func ErrVaultPaused() *AppError {
	return New("VAULT_005", "Vault is paused", http.StatusLocked)
}

// ---- Relay (RELAY) ----

func ErrInsufficientPendingDeposits() *AppError {
	return New("RELAY_001", "No pending deposits to claim", http.StatusNotFound)
}

// ErrInsufficientRelayBalance is returned when bridged funds have not landed in relay custody yet.
func ErrInsufficientRelayBalance(requested, available string) *AppError {
	return New("RELAY_002", "Insufficient unreserved relay balance", http.StatusConflict).
		WithDetail("requested", requested).
		WithDetail("available", available)
}

func ErrNativeTransferRejected() *AppError {
	return New("RELAY_003", "Native token transfers are not accepted", http.StatusBadRequest)
}

func ErrUnknownToken(token string) *AppError {
	return New("RELAY_004", fmt.Sprintf("Token %s is not registered", token), http.StatusNotFound)
}

// ---- Bridge (BRIDGE) ----

func ErrDeliveryNotFound(messageID string) *AppError {
	return New("BRIDGE_001", "Delivery has not been processed", http.StatusNotFound).
		WithDetail("message_id", messageID)
}

// ---- Access control (ACL) ----

func ErrUnauthorized() *AppError {
	return New("ACL_001", "Caller is not the owner", http.StatusForbidden)
}

func ErrInvalidRecipient() *AppError {
	return New("ACL_002", "Invalid recipient", http.StatusBadRequest)
}

func ErrInvalidTreasury() *AppError {
	return New("ACL_003", "Invalid treasury", http.StatusBadRequest)
}

func ErrInvalidAddress(field string) *AppError {
	return New("ACL_004", fmt.Sprintf("Invalid address: %s", field), http.StatusBadRequest)
}

// ---- Token ledger (LEDGER) ----

func ErrInsufficientBalance() *AppError {
	return New("LEDGER_001", "Insufficient token balance", http.StatusConflict)
}

func ErrInsufficientAllowance() *AppError {
	return New("LEDGER_002", "Insufficient allowance", http.StatusConflict)
}

func ErrNotMinter() *AppError {
	return New("LEDGER_003", "Caller is not the token minter", http.StatusForbidden)
}

func ErrOverflow() *AppError {
	return New("LEDGER_004", "Arithmetic overflow", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrReentrantCall(operation string) *AppError {
	return New("SYS_002", fmt.Sprintf("Reentrant call into %s", operation), http.StatusConflict)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
