package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// PendingCredit is stable asset held by the relay on behalf of a recipient
// after a forwarding attempt into the vault failed.
type PendingCredit struct {
	Recipient common.Address
	Amount    *uint256.Int
	UpdatedAt time.Time
}

// ZapResult reports one relay forwarding attempt. A failed attempt is not an
// error: the amount was parked as a pending credit for the recipient.
type ZapResult struct {
	Recipient common.Address
	Amount    *uint256.Int
	Shares    *uint256.Int
	Success   bool
	Reason    string
}

// ClaimResult reports a successful pending-credit claim.
type ClaimResult struct {
	User   common.Address
	Amount *uint256.Int
	Shares *uint256.Int
}

// BridgeDelivery is an attested cross-chain transfer destined for the relay.
// MessageID is unique per source-domain burn and is the deduplication key.
type BridgeDelivery struct {
	MessageID    string
	SourceDomain uint32
	Recipient    common.Address
	Amount       *uint256.Int
	Attempts     int
}

// DeliveryRecord is the processed outcome of a bridge delivery.
type DeliveryRecord struct {
	MessageID   string
	Recipient   common.Address
	Amount      *uint256.Int
	Shares      *uint256.Int
	Success     bool
	Reason      string
	ProcessedAt time.Time
}
