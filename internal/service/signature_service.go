package service

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var ErrMalformedSignature = errors.New("signature must be 65 hex-encoded bytes")

// EIP191SignatureService implements ports.SignatureService with Ethereum
// personal_sign messages, so callers authenticate with their wallet key.
type EIP191SignatureService struct{}

func NewEIP191SignatureService() *EIP191SignatureService {
	return &EIP191SignatureService{}
}

// BuildCanonicalString constructs the canonical payload for signing.
// Format: METHOD|PATH|TIMESTAMP|NONCE|BODY
func (s *EIP191SignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s", method, path, timestamp, nonce, body)
}

// Sign produces a 0x-prefixed r||s||v signature with v in {27,28}.
func (s *EIP191SignatureService) Sign(key *ecdsa.PrivateKey, payload string) (string, error) {
	sig, err := ethcrypto.Sign(accounts.TextHash([]byte(payload)), key)
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig), nil
}

// Recover returns the address that signed payload. Both {0,1} and {27,28}
// recovery ids are accepted.
func (s *EIP191SignatureService) Recover(payload string, signature string) (common.Address, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil || len(sig) != 65 {
		return common.Address{}, ErrMalformedSignature
	}
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := ethcrypto.SigToPub(accounts.TextHash([]byte(payload)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover signer: %w", err)
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}
