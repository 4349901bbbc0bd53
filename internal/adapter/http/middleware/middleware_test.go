package middleware

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/memory"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports/mocks"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/service"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type signer struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newSigner(t *testing.T) signer {
	t.Helper()
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	return signer{key: key, addr: ethcrypto.PubkeyToAddress(key.PublicKey)}
}

// signedRequest builds a request signed by s at ts with nonce.
func signedRequest(t *testing.T, s signer, method, path, body string, ts int64, nonce string) *http.Request {
	t.Helper()
	svc := service.NewEIP191SignatureService()
	sig, err := svc.Sign(s.key, svc.BuildCanonicalString(method, path, ts, nonce, body))
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(HeaderCaller, s.addr.Hex())
	req.Header.Set(HeaderSignature, sig)
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderNonce, nonce)
	return req
}

func authRouter(nonces *memory.NonceStore) *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/vault/deposit",
		SignatureAuth(service.NewEIP191SignatureService(), nonces, zerolog.Nop()),
		func(c *gin.Context) {
			caller, ok := Caller(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			body := new(bytes.Buffer)
			_, _ = body.ReadFrom(c.Request.Body)
			c.JSON(http.StatusOK, gin.H{"caller": caller.Hex(), "body": body.String()})
		})
	return router
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ErrorCode
}

func TestSignatureAuth_Valid(t *testing.T) {
	s := newSigner(t)
	router := authRouter(memory.NewNonceStore())

	body := `{"amount":"1000000"}`
	req := signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", body, time.Now().Unix(), "nonce-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, s.addr.Hex(), resp["caller"])
	assert.Equal(t, body, resp["body"], "body must be restored for the handler")
}

func TestSignatureAuth_MissingHeaders(t *testing.T) {
	router := authRouter(memory.NewNonceStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vault/deposit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", errorCode(t, w))
}

func TestSignatureAuth_BadCallerAddress(t *testing.T) {
	s := newSigner(t)
	router := authRouter(memory.NewNonceStore())

	req := signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", "{}", time.Now().Unix(), "n")
	req.Header.Set(HeaderCaller, "alice")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ACL_004", errorCode(t, w))
}

func TestSignatureAuth_ExpiredTimestamp(t *testing.T) {
	s := newSigner(t)
	router := authRouter(memory.NewNonceStore())

	req := signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", "{}", time.Now().Add(-5*time.Minute).Unix(), "n")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_003", errorCode(t, w))
}

func TestSignatureAuth_NonNumericTimestamp(t *testing.T) {
	s := newSigner(t)
	router := authRouter(memory.NewNonceStore())

	req := signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", "{}", time.Now().Unix(), "n")
	req.Header.Set(HeaderTimestamp, "yesterday")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "SEC_003", errorCode(t, w))
}

func TestSignatureAuth_ImpersonationRejected(t *testing.T) {
	mallory := newSigner(t)
	victim := newSigner(t)
	router := authRouter(memory.NewNonceStore())

	req := signedRequest(t, mallory, http.MethodPost, "/api/v1/vault/deposit", "{}", time.Now().Unix(), "n")
	req.Header.Set(HeaderCaller, victim.addr.Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_002", errorCode(t, w))
}

func TestSignatureAuth_TamperedBody(t *testing.T) {
	s := newSigner(t)
	router := authRouter(memory.NewNonceStore())

	req := signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", `{"amount":"1"}`, time.Now().Unix(), "n")
	req.Body = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount":"999"}`)).Body
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "SEC_002", errorCode(t, w))
}

func TestSignatureAuth_ReplayRejected(t *testing.T) {
	s := newSigner(t)
	router := authRouter(memory.NewNonceStore())
	ts := time.Now().Unix()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", "{}", ts, "once"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, s, http.MethodPost, "/api/v1/vault/deposit", "{}", ts, "once"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_004", errorCode(t, w))
}

func TestSignatureAuth_NonceStoreDownAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSigner(t)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), s.addr.Hex(), "n", nonceTTL).
		Return(false, errors.New("redis down"))

	router := gin.New()
	router.POST("/x", SignatureAuth(service.NewEIP191SignatureService(), nonceStore, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, s, http.MethodPost, "/x", "", time.Now().Unix(), "n"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) {
		response.OK(c, gin.H{})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, float64(404), entry["status"])
}
