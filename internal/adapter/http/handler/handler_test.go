package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/middleware"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/memory"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports/mocks"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/ledger"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice    = common.HexToAddress("0x000000000000000000000000000000000000a11c")
	bob      = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	owner    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	usdcAddr = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	minter   = common.HexToAddress("0x00000000000000000000000000000000000000f0")
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newContext builds a test context. A non-nil caller is installed as the verified signer.
func newContext(method, path, body string, caller *common.Address) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	if caller != nil {
		c.Set(middleware.CtxCaller, *caller)
	}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func amt(v uint64) *uint256.Int { return uint256.NewInt(v) }

// --- Vault Handler Tests ---

func TestVaultDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().Deposit(gomock.Any(), alice, amt(1_000_000)).Return(amt(1_000_000), nil)

	c, w := newContext(http.MethodPost, "/api/v1/vault/deposit", `{"amount":"1000000"}`, &alice)
	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "1000000", data["amount"])
	assert.Equal(t, "1000000", data["shares"])
}

func TestVaultDeposit_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

	c, w := newContext(http.MethodPost, "/api/v1/vault/deposit", `{"amount":"1"}`, nil)
	h.Deposit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", decodeErrorCode(t, w))
}

func TestVaultDeposit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"negative", `{"amount":"-5"}`},
		{"fractional", `{"amount":"1.5"}`},
		{"not a number", `{"amount":"lots"}`},
		{"above uint256", `{"amount":"115792089237316195423570985008687907853269984665640564039457584007913129639936"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

			c, w := newContext(http.MethodPost, "/api/v1/vault/deposit", tt.body, &alice)
			h.Deposit(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "REQ_001", decodeErrorCode(t, w))
		})
	}
}

func TestVaultDeposit_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"zero amount", apperror.ErrAmountZero(), http.StatusBadRequest, "VAULT_001"},
		{"paused", apperror.ErrVaultPaused(), http.StatusLocked, "VAULT_005"},
		{"zero price", apperror.ErrZeroSharePrice(), http.StatusConflict, "VAULT_003"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "SYS_000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockVault := mocks.NewMockVaultService(ctrl)
			h := NewVaultHandler(mockVault)

			mockVault.EXPECT().Deposit(gomock.Any(), alice, gomock.Any()).Return(nil, tt.err)

			c, w := newContext(http.MethodPost, "/", `{"amount":"0"}`, &alice)
			h.Deposit(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, w))
		})
	}
}

func TestVaultWithdraw_InsufficientLiquidity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().Withdraw(gomock.Any(), alice, amt(500)).
		Return(nil, apperror.ErrInsufficientLiquidity("700", "100"))

	c, w := newContext(http.MethodPost, "/api/v1/vault/withdraw", `{"shares":"500"}`, &alice)
	h.Withdraw(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	details := resp["details"].(map[string]interface{})
	assert.Equal(t, "700", details["requested"])
	assert.Equal(t, "100", details["available"])
}

func TestVaultDepositYield_ReturnsSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().DepositYield(gomock.Any(), bob, amt(1_000_000)).
		Return(&domain.YieldSplit{Gross: amt(1_000_000), Fee: amt(200_000), Net: amt(800_000)}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/vault/yield", `{"amount":"1000000"}`, &bob)
	h.DepositYield(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "200000", data["fee"])
	assert.Equal(t, "800000", data["net"])
}

func TestVaultOwnerOps_ReturnSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	snap := domain.VaultSnapshot{
		Owner:         owner,
		Paused:        true,
		LiquidBalance: amt(10),
		IlliquidValue: amt(5),
		TotalAssets:   amt(15),
		TotalShares:   amt(15),
		SharePrice:    domain.WAD(),
	}
	mockVault.EXPECT().Pause(gomock.Any(), owner).Return(nil)
	mockVault.EXPECT().Snapshot(gomock.Any()).Return(snap)

	c, w := newContext(http.MethodPost, "/api/v1/vault/pause", "", &owner)
	h.Pause(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["paused"])
	assert.Equal(t, "15", data["total_assets"])
	assert.Equal(t, "1000000000000000000", data["share_price"])
}

func TestVaultUpdateRWAValue_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().UpdateRWAValue(gomock.Any(), alice, amt(400)).Return(apperror.ErrUnauthorized())

	c, w := newContext(http.MethodPut, "/api/v1/vault/rwa-value", `{"value":"400"}`, &alice)
	h.UpdateRWAValue(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ACL_001", decodeErrorCode(t, w))
}

func TestVaultTransferOwnership_BadAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

	c, w := newContext(http.MethodPut, "/api/v1/vault/owner", `{"new_owner":"0x1234"}`, &owner)
	h.TransferOwnership(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVaultPreviewDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().PreviewDeposit(gomock.Any(), amt(1400)).Return(amt(1000), nil)

	c, w := newContext(http.MethodGet, "/api/v1/vault/preview/deposit?amount=1400", "", nil)
	h.PreviewDeposit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "1400", data["input"])
	assert.Equal(t, "1000", data["output"])
}

func TestVaultPreviewWithdraw_MissingQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

	c, w := newContext(http.MethodGet, "/api/v1/vault/preview/withdraw", "", nil)
	h.PreviewWithdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Relay Handler Tests ---

func TestRelayDeposit_Forwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay)

	mockRelay.EXPECT().ReceiveAndDeposit(gomock.Any(), alice, bob, amt(100)).
		Return(&domain.ZapResult{Recipient: bob, Amount: amt(100), Shares: amt(100), Success: true}, nil)

	body := `{"recipient":"` + bob.Hex() + `","amount":"100"}`
	c, w := newContext(http.MethodPost, "/api/v1/relay/deposit", body, &alice)
	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, bob.Hex(), data["recipient"])
}

func TestRelayDeposit_ParkedAsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay)

	mockRelay.EXPECT().ReceiveAndDeposit(gomock.Any(), alice, bob, amt(100)).
		Return(&domain.ZapResult{Recipient: bob, Amount: amt(100), Success: false, Reason: "Vault is paused"}, nil)

	body := `{"recipient":"` + bob.Hex() + `","amount":"100"}`
	c, w := newContext(http.MethodPost, "/api/v1/relay/deposit", body, &alice)
	h.Deposit(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["success"])
	assert.Equal(t, "Vault is paused", data["reason"])
	assert.Equal(t, "0", data["shares"])
}

func TestRelayDeposit_MissingRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRelayHandler(mocks.NewMockRelayService(ctrl))

	c, w := newContext(http.MethodPost, "/api/v1/relay/deposit", `{"amount":"100"}`, &alice)
	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", decodeErrorCode(t, w))
}

func TestRelayClaim(t *testing.T) {
	t.Run("claimed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRelay := mocks.NewMockRelayService(ctrl)
		h := NewRelayHandler(mockRelay)

		mockRelay.EXPECT().ClaimAndDeposit(gomock.Any(), bob).
			Return(&domain.ClaimResult{User: bob, Amount: amt(50), Shares: amt(50)}, nil)

		c, w := newContext(http.MethodPost, "/api/v1/relay/claim", "", &bob)
		h.Claim(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "50", decodeData(t, w)["shares"])
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRelay := mocks.NewMockRelayService(ctrl)
		h := NewRelayHandler(mockRelay)

		mockRelay.EXPECT().ClaimAndDeposit(gomock.Any(), bob).Return(nil, apperror.ErrInsufficientPendingDeposits())

		c, w := newContext(http.MethodPost, "/api/v1/relay/claim", "", &bob)
		h.Claim(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "RELAY_001", decodeErrorCode(t, w))
	})
}

func TestRelayRecoverFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay)

	mockRelay.EXPECT().RecoverFunds(gomock.Any(), owner, usdcAddr, bob, amt(7)).Return(nil)

	body := `{"token":"` + usdcAddr.Hex() + `","to":"` + bob.Hex() + `","amount":"7"}`
	c, w := newContext(http.MethodPost, "/api/v1/relay/recover", body, &owner)
	h.RecoverFunds(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", decodeData(t, w)["amount"])
}

func TestRelayReceiveNative_AlwaysRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay)

	mockRelay.EXPECT().ReceiveNative(gomock.Any(), alice, amt(1)).Return(apperror.ErrNativeTransferRejected())

	c, w := newContext(http.MethodPost, "/api/v1/relay/native", `{"amount":"1"}`, &alice)
	h.ReceiveNative(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RELAY_003", decodeErrorCode(t, w))
}

func TestRelayPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewRelayHandler(mockRelay)

	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockRelay.EXPECT().PendingOf(gomock.Any(), bob).Return(amt(30), nil)
	mockRelay.EXPECT().ListPending(gomock.Any()).
		Return([]domain.PendingCredit{{Recipient: bob, Amount: amt(30), UpdatedAt: updated}}, nil)
	mockRelay.EXPECT().TotalPending(gomock.Any()).Return(amt(30), nil)

	c, w := newContext(http.MethodGet, "/api/v1/relay/pending/"+bob.Hex(), "", nil)
	c.Params = gin.Params{{Key: "address", Value: bob.Hex()}}
	h.GetPending(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30", decodeData(t, w)["amount"])

	c, w = newContext(http.MethodGet, "/api/v1/relay/pending", "", nil)
	h.ListPending(c)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "30", data["total"])
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "2026-03-01T12:00:00Z", items[0].(map[string]interface{})["updated_at"])
}

func TestRelayGetPending_BadAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRelayHandler(mocks.NewMockRelayService(ctrl))

	c, w := newContext(http.MethodGet, "/api/v1/relay/pending/nope", "", nil)
	c.Params = gin.Params{{Key: "address", Value: "nope"}}
	h.GetPending(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ACL_004", decodeErrorCode(t, w))
}

// --- Event Handler Tests ---

func TestListEvents_FiltersByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvents := mocks.NewMockEventService(ctrl)
	h := NewEventHandler(mockEvents)

	deposited := domain.NewDeposited(alice, amt(100), amt(100))
	paused := domain.NewPauseToggled(domain.SourceVault, owner, true)
	mockEvents.EXPECT().Recent(gomock.Any(), 10).Return([]domain.Event{paused, deposited}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/events?limit=10&kind=Deposited", "", nil)
	h.ListEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Deposited", resp.Data[0]["kind"])
	assert.Equal(t, deposited.ID.String(), resp.Data[0]["id"])
}

func TestListEvents_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvents := mocks.NewMockEventService(ctrl)
	h := NewEventHandler(mockEvents)

	mockEvents.EXPECT().Recent(gomock.Any(), 50).Return(nil, nil)

	c, w := newContext(http.MethodGet, "/api/v1/events", "", nil)
	h.ListEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Token Handler Tests ---

func newUSDC(t *testing.T) *ledger.Token {
	t.Helper()
	tok, err := ledger.NewToken(ledger.TokenParams{
		Address:  usdcAddr,
		Name:     "USD Coin",
		Symbol:   "USDC",
		Decimals: 6,
		Minter:   minter,
	}, zerolog.Nop())
	require.NoError(t, err)
	return tok
}

func TestTokenTransfer(t *testing.T) {
	usdc := newUSDC(t)
	require.NoError(t, usdc.Mint(context.Background(), minter, alice, amt(100)))
	h := NewTokenHandler(ledger.NewRegistry(usdc), nil)

	body := `{"to":"` + bob.Hex() + `","amount":"40"}`
	c, w := newContext(http.MethodPost, "/", body, &alice)
	c.Params = gin.Params{{Key: "token", Value: usdcAddr.Hex()}}
	h.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "60", decodeData(t, w)["balance"])
	assert.Equal(t, uint64(40), usdc.BalanceOf(bob).Uint64())
}

func TestTokenTransfer_InsufficientBalance(t *testing.T) {
	usdc := newUSDC(t)
	h := NewTokenHandler(ledger.NewRegistry(usdc), nil)

	body := `{"to":"` + bob.Hex() + `","amount":"1"}`
	c, w := newContext(http.MethodPost, "/", body, &alice)
	c.Params = gin.Params{{Key: "token", Value: usdcAddr.Hex()}}
	h.Transfer(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "LEDGER_001", decodeErrorCode(t, w))
}

func TestTokenApproveAndAllowance(t *testing.T) {
	usdc := newUSDC(t)
	h := NewTokenHandler(ledger.NewRegistry(usdc), nil)

	body := `{"spender":"` + bob.Hex() + `","amount":"25"}`
	c, w := newContext(http.MethodPost, "/", body, &alice)
	c.Params = gin.Params{{Key: "token", Value: usdcAddr.Hex()}}
	h.Approve(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/?owner="+alice.Hex()+"&spender="+bob.Hex(), "", nil)
	c.Params = gin.Params{{Key: "token", Value: usdcAddr.Hex()}}
	h.GetAllowance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "25", decodeData(t, w)["allowance"])
}

func TestTokenUnknown(t *testing.T) {
	h := NewTokenHandler(ledger.NewRegistry(), nil)

	c, w := newContext(http.MethodGet, "/", "", nil)
	c.Params = gin.Params{
		{Key: "token", Value: usdcAddr.Hex()},
		{Key: "address", Value: alice.Hex()},
	}
	h.GetBalance(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RELAY_004", decodeErrorCode(t, w))
}

func TestListTokens(t *testing.T) {
	usdc := newUSDC(t)
	h := NewTokenHandler(ledger.NewRegistry(usdc), nil)

	c, w := newContext(http.MethodGet, "/api/v1/tokens", "", nil)
	h.ListTokens(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "USDC", resp.Data[0]["symbol"])
}

func TestFaucetDrip(t *testing.T) {
	usdc := newUSDC(t)
	h := NewTokenHandler(ledger.NewRegistry(usdc), &Faucet{Asset: usdc, Limit: amt(1_000)})

	t.Run("mints to caller", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/faucet", `{"amount":"500"}`, &alice)
		h.Drip(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint64(500), usdc.BalanceOf(alice).Uint64())
	})

	t.Run("over limit", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/faucet", `{"amount":"1001"}`, &alice)
		h.Drip(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, uint64(500), usdc.BalanceOf(alice).Uint64())
	})

	t.Run("disabled", func(t *testing.T) {
		off := NewTokenHandler(ledger.NewRegistry(usdc), nil)
		c, w := newContext(http.MethodPost, "/api/v1/faucet", `{"amount":"1"}`, &alice)
		off.Drip(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// --- Bridge Handler Tests ---

func TestBridgeEnqueue_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	queue := memory.NewDeliveryQueue(4)
	h := NewBridgeHandler(queue, memory.NewDeliveryLog(), mockRelay)

	mockRelay.EXPECT().Owner(gomock.Any()).Return(owner).Times(2)
	body := `{"message_id":"msg-1","source_domain":6,"recipient":"` + bob.Hex() + `","amount":"100"}`

	c, w := newContext(http.MethodPost, "/api/v1/bridge/deliveries", body, &alice)
	h.Enqueue(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = newContext(http.MethodPost, "/api/v1/bridge/deliveries", body, &owner)
	h.Enqueue(c)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "queued", decodeData(t, w)["status"])

	got, err := queue.Pop(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "msg-1", got.MessageID)
	assert.Equal(t, uint32(6), got.SourceDomain)
	assert.Equal(t, bob, got.Recipient)
	assert.Equal(t, uint64(100), got.Amount.Uint64())
}

func TestBridgeEnqueue_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"zero recipient", `{"message_id":"m","recipient":"0x0000000000000000000000000000000000000000","amount":"1"}`, "ACL_002"},
		{"zero amount", `{"message_id":"m","recipient":"` + bob.Hex() + `","amount":"0"}`, "VAULT_001"},
		{"unsafe id", `{"message_id":"m 1;drop","recipient":"` + bob.Hex() + `","amount":"1"}`, "REQ_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRelay := mocks.NewMockRelayService(ctrl)
			h := NewBridgeHandler(memory.NewDeliveryQueue(1), memory.NewDeliveryLog(), mockRelay)
			mockRelay.EXPECT().Owner(gomock.Any()).Return(owner)

			c, w := newContext(http.MethodPost, "/", tt.body, &owner)
			h.Enqueue(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, w))
		})
	}
}

func TestBridgeGetDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	processed := memory.NewDeliveryLog()
	h := NewBridgeHandler(memory.NewDeliveryQueue(1), processed, mocks.NewMockRelayService(ctrl))

	require.NoError(t, processed.Set(context.Background(), &domain.DeliveryRecord{
		MessageID:   "msg-7",
		Recipient:   bob,
		Amount:      amt(9),
		Shares:      amt(9),
		Success:     true,
		ProcessedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, time.Hour))

	c, w := newContext(http.MethodGet, "/", "", nil)
	c.Params = gin.Params{{Key: "id", Value: "msg-7"}}
	h.GetDelivery(c)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, "2026-01-02T03:04:05Z", data["processed_at"])

	c, w = newContext(http.MethodGet, "/", "", nil)
	c.Params = gin.Params{{Key: "id", Value: "unknown"}}
	h.GetDelivery(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BRIDGE_001", decodeErrorCode(t, w))
}

// --- Health ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/health", "", nil)
		HealthCheck(stubChecker{name: "redis"})(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"healthy"`)
	})

	t.Run("degraded", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/health", "", nil)
		HealthCheck(stubChecker{name: "postgresql", err: errors.New("dial tcp: refused")})(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "dial tcp: refused")
	})
}

// --- Swagger ---

func TestSwagger(t *testing.T) {
	SetSwaggerSpec(nil)
	c, w := newContext(http.MethodGet, "/swagger/spec", "", nil)
	SwaggerSpec(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	SetSwaggerSpec([]byte("openapi: 3.0.3\n"))
	c, w = newContext(http.MethodGet, "/swagger/spec", "", nil)
	SwaggerSpec(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "openapi: 3.0.3\n", w.Body.String())

	c, w = newContext(http.MethodGet, "/swagger", "", nil)
	SwaggerUI(c)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}
