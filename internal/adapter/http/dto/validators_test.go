package dto

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RelayDepositRequest{
		Recipient: "  0x000000000000000000000000000000000000dD01  ",
		Amount:    " 100 ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "0x000000000000000000000000000000000000dD01", req.Recipient)
	assert.Equal(t, "100", req.Amount)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := BridgeDeliveryRequest{MessageID: "<script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.MessageID, "&lt;script&gt;")
	assert.NotContains(t, req.MessageID, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	note := "  memo  "
	req := struct {
		Note  *string
		Empty *string
	}{Note: &note}
	SanitizeStruct(&req)

	assert.Equal(t, "memo", *req.Note)
	assert.Nil(t, req.Empty)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"msg-001",
		"0xabc_DEF",
		"a.b.c",
		"burn123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"msg 001",  // space
		"msg<001>", // angle brackets
		"msg;DROP", // semicolon
		"",         // empty
		"msg\n001", // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestEthAddrTag(t *testing.T) {
	v := newValidator()
	tests := []struct {
		in    string
		valid bool
	}{
		{"0x000000000000000000000000000000000000dD01", true},
		{"0x000000000000000000000000000000000000DD01", true},
		{"000000000000000000000000000000000000dD01", false},
		{"0x1234", false},
		{"0xZZ0000000000000000000000000000000000dD01", false},
		{"", false},
	}
	for _, tt := range tests {
		err := v.Var(tt.in, "eth_addr")
		assert.Equal(t, tt.valid, err == nil, "input %q", tt.in)
	}
}

func TestUintDecTag(t *testing.T) {
	v := newValidator()
	tests := []struct {
		in    string
		valid bool
	}{
		{"0", true},
		{"1000000", true},
		{"-1", false},
		{"1.5", false},
		{"1e6", false},
		{"0x10", false},
		{"", false},
	}
	for _, tt := range tests {
		err := v.Var(tt.in, "uint_dec")
		assert.Equal(t, tt.valid, err == nil, "input %q", tt.in)
	}
}

func TestBindingTags(t *testing.T) {
	v := newValidator()
	v.SetTagName("binding")

	ok := RecoverFundsRequest{
		Token:  "0x000000000000000000000000000000000000Aa03",
		To:     "0x000000000000000000000000000000000000Cc01",
		Amount: "50",
	}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.To = "alice"
	assert.Error(t, v.Struct(bad))

	assert.Error(t, v.Struct(BridgeDeliveryRequest{
		MessageID: "has space", Recipient: ok.To, Amount: "1",
	}))
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("amount", "1000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), got.Uint64())

	_, err = ParseAmount("amount", "115792089237316195423570985008687907853269984665640564039457584007913129639936")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQ_001")
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("recipient", "0x000000000000000000000000000000000000dD01")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xdd01"), addr)

	_, err = ParseAddress("recipient", "nope")
	assert.Error(t, err)
}
