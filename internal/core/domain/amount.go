package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Fixed-point and fee constants. Share price is expressed in WAD while the
// stable asset uses six decimals; the 10^12 gap between the two scales keeps
// small fee splits and price moves from truncating to zero.
const (
	AssetDecimals  = 6
	ShareDecimals  = 6
	FeeBasisPoints = 2000
	FeeDenominator = 10000
)

var (
	ErrAmountSyntax   = errors.New("amount must be a non-negative base-10 integer")
	ErrAmountTooLarge = errors.New("amount exceeds 256 bits")
	ErrDivideByZero   = errors.New("division by zero")
	ErrMathOverflow   = errors.New("arithmetic overflow")
)

// WAD returns 10^18.
func WAD() *uint256.Int { return uint256.NewInt(1_000_000_000_000_000_000) }

// AssetUnit returns 10^6, one whole unit of the stable asset.
func AssetUnit() *uint256.Int { return uint256.NewInt(1_000_000) }

// PrecisionGap returns WAD / AssetUnit = 10^12.
func PrecisionGap() *uint256.Int { return uint256.NewInt(1_000_000_000_000) }

// Zero returns a fresh zero amount.
func Zero() *uint256.Int { return new(uint256.Int) }

// NewAmount is shorthand for uint256.NewInt.
func NewAmount(v uint64) *uint256.Int { return uint256.NewInt(v) }

// ParseAmount parses a base-10 token amount in smallest units.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrAmountSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrAmountSyntax
		}
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAmountTooLarge, err)
	}
	return v, nil
}

// IsZero treats nil as zero.
func IsZero(v *uint256.Int) bool {
	return v == nil || v.IsZero()
}

// OrZero returns v, or a fresh zero when v is nil.
func OrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return Zero()
	}
	return v
}

// MulDiv computes x*y/d with a 512-bit intermediate, truncating.
func MulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, ErrDivideByZero
	}
	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return nil, ErrMathOverflow
	}
	return z, nil
}

// CheckedAdd returns x+y or ErrMathOverflow.
func CheckedAdd(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return nil, ErrMathOverflow
	}
	return z, nil
}

// CheckedSub returns x-y or ErrMathOverflow on underflow.
func CheckedSub(x, y *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return nil, ErrMathOverflow
	}
	return z, nil
}

// SaturatingSub returns max(x-y, 0).
func SaturatingSub(x, y *uint256.Int) *uint256.Int {
	if x.Lt(y) {
		return Zero()
	}
	return new(uint256.Int).Sub(x, y)
}

// SaturatingAdd returns x+y, clamped to 2^256-1.
func SaturatingAdd(x, y *uint256.Int) *uint256.Int {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return z
}

// YieldFee splits gross into the treasury fee and the net amount retained by the vault.
// The fee truncates, so any rounding dust stays with the vault.
func YieldFee(gross *uint256.Int) (fee, net *uint256.Int) {
	fee, _ = new(uint256.Int).MulDivOverflow(gross, uint256.NewInt(FeeBasisPoints), uint256.NewInt(FeeDenominator))
	net = new(uint256.Int).Sub(gross, fee)
	return fee, net
}

// IsZeroAddress reports whether addr is the zero identity.
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}

// ParseAddress parses a 0x-prefixed hex address, rejecting malformed input.
func ParseAddress(s string) (common.Address, bool) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, false
	}
	return common.HexToAddress(s), true
}
