package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// VaultSnapshot is a consistent read of every vault view at one instant.
type VaultSnapshot struct {
	Address       common.Address
	Owner         common.Address
	Treasury      common.Address
	Paused        bool
	LiquidBalance *uint256.Int
	IlliquidValue *uint256.Int
	TotalAssets   *uint256.Int
	TotalShares   *uint256.Int
	SharePrice    *uint256.Int
}

// YieldSplit is the outcome of a yield deposit.
type YieldSplit struct {
	Gross *uint256.Int
	Fee   *uint256.Int
	Net   *uint256.Int
}
