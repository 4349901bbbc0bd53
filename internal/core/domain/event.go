package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// EventKind names a notification emitted by the vault or the relay.
type EventKind string

const (
	EventDeposited             EventKind = "Deposited"
	EventWithdrawn             EventKind = "Withdrawn"
	EventYieldDistributed      EventKind = "YieldDistributed"
	EventRWAValueUpdated       EventKind = "RWAValueUpdated"
	EventInvestmentWithdrawn   EventKind = "InvestmentWithdrawn"
	EventPaused                EventKind = "Paused"
	EventUnpaused              EventKind = "Unpaused"
	EventOwnershipTransferred  EventKind = "OwnershipTransferred"
	EventZapCompleted          EventKind = "ZapCompleted"
	EventZapFailed             EventKind = "ZapFailed"
	EventPendingDepositClaimed EventKind = "PendingDepositClaimed"
	EventFundsRecovered        EventKind = "FundsRecovered"
)

// Event sources.
const (
	SourceVault = "vault"
	SourceRelay = "relay"
)

// Event is an immutable record of a committed state change.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	Kind      EventKind         `json:"kind"`
	Source    string            `json:"source"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
}

func newEvent(source string, kind EventKind, fields map[string]string) Event {
	return Event{
		ID:        uuid.New(),
		Kind:      kind,
		Source:    source,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}

func NewDeposited(user common.Address, usdcIn, sharesMinted *uint256.Int) Event {
	return newEvent(SourceVault, EventDeposited, map[string]string{
		"user":         user.Hex(),
		"usdcIn":       usdcIn.Dec(),
		"sharesMinted": sharesMinted.Dec(),
	})
}

func NewWithdrawn(user common.Address, sharesBurned, usdcOut *uint256.Int) Event {
	return newEvent(SourceVault, EventWithdrawn, map[string]string{
		"user":         user.Hex(),
		"sharesBurned": sharesBurned.Dec(),
		"usdcOut":      usdcOut.Dec(),
	})
}

func NewYieldDistributed(split YieldSplit) Event {
	return newEvent(SourceVault, EventYieldDistributed, map[string]string{
		"grossAmount": split.Gross.Dec(),
		"fee":         split.Fee.Dec(),
		"netAmount":   split.Net.Dec(),
	})
}

func NewRWAValueUpdated(oldValue, newValue *uint256.Int) Event {
	return newEvent(SourceVault, EventRWAValueUpdated, map[string]string{
		"oldValue": oldValue.Dec(),
		"newValue": newValue.Dec(),
	})
}

func NewInvestmentWithdrawn(treasury common.Address, amount *uint256.Int) Event {
	return newEvent(SourceVault, EventInvestmentWithdrawn, map[string]string{
		"treasury": treasury.Hex(),
		"amount":   amount.Dec(),
	})
}

func NewPauseToggled(source string, by common.Address, paused bool) Event {
	kind := EventUnpaused
	if paused {
		kind = EventPaused
	}
	return newEvent(source, kind, map[string]string{"account": by.Hex()})
}

func NewOwnershipTransferred(source string, previous, next common.Address) Event {
	return newEvent(source, EventOwnershipTransferred, map[string]string{
		"previousOwner": previous.Hex(),
		"newOwner":      next.Hex(),
	})
}

func NewZapCompleted(recipient common.Address, usdcAmount, sharesMinted *uint256.Int) Event {
	return newEvent(SourceRelay, EventZapCompleted, map[string]string{
		"recipient":    recipient.Hex(),
		"usdcAmount":   usdcAmount.Dec(),
		"sharesMinted": sharesMinted.Dec(),
	})
}

func NewZapFailed(recipient common.Address, usdcAmount *uint256.Int, reason string) Event {
	return newEvent(SourceRelay, EventZapFailed, map[string]string{
		"recipient":  recipient.Hex(),
		"usdcAmount": usdcAmount.Dec(),
		"reason":     reason,
	})
}

func NewPendingDepositClaimed(user common.Address, amount, shares *uint256.Int) Event {
	return newEvent(SourceRelay, EventPendingDepositClaimed, map[string]string{
		"user":   user.Hex(),
		"amount": amount.Dec(),
		"shares": shares.Dec(),
	})
}

func NewFundsRecovered(token, to common.Address, amount *uint256.Int) Event {
	return newEvent(SourceRelay, EventFundsRecovered, map[string]string{
		"token":  token.Hex(),
		"to":     to.Hex(),
		"amount": amount.Dec(),
	})
}
