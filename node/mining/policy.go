// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/sbtc-core/sbtcd/types/wire"
)

const (
	// DefaultBlockMaxWeight is the default maximum block weight the
	// template builder will assemble, before clamping.
	DefaultBlockMaxWeight = 3_000_000

	// DefaultBlockMinTxFee is the default per-kilobyte fee floor a
	// package's ancestor feerate must clear to be admitted.
	DefaultBlockMinTxFee = 1000

	// blockMaxWeightMin and blockMaxWeightMax bound the clamp spec.md
	// §4.1 requires: nBlockMaxWeight is never allowed to starve
	// progress nor to exceed consensus.
	blockMaxWeightMin = 4000
	blockMaxWeightMax = wire.MaxBlockWeight - 4000

	// DefaultStakerMaxTxGasLimit is used when the operator does not
	// override the per-transaction gas ceiling; it then falls back to
	// the soft block gas limit in BlkTmplGenerator.resolveGasParams.
	DefaultStakerMaxTxGasLimit = 0

	// DefaultBlockVersion is the header version used when the operator
	// has not overridden it with blockversion.
	DefaultBlockVersion = 0x20000000
)

// Policy is the process-wide, read-once-per-template configuration
// spec.md §6 names, populated from jessevdk/go-flags long-form flags the
// way the teacher's config.serviceOptions is.
type Policy struct {
	BlockMaxWeight int64 `long:"blockmaxweight" yaml:"block_max_weight" description:"Maximum block weight to be used when generating a block template"`
	BlockMinTxFee  int64 `long:"blockmintxfee" yaml:"block_min_tx_fee" description:"Minimum fee rate (in sat/kB) a transaction's ancestor package must clear to be included"`
	BlockVersion   int32 `long:"blockversion" yaml:"block_version" description:"Block version to use with BlkTmplGenerator; any nonzero value replaces the default header version, with no check of whether the chain permits on-demand mining"`

	StakerMinTxGasPrice     uint64 `long:"staker-min-tx-gas-price" yaml:"staker_min_tx_gas_price" description:"Lower bound on accepted contract gas price"`
	StakerSoftBlockGasLimit uint64 `long:"staker-soft-block-gas-limit" yaml:"staker_soft_block_gas_limit" description:"Soft per-block gas ceiling, clamped not to exceed the engine's hard limit"`
	StakerMaxTxGasLimit     uint64 `long:"staker-max-tx-gas-limit" yaml:"staker_max_tx_gas_limit" description:"Per-transaction gas ceiling; defaults to the soft block limit"`

	PrintPriority bool `long:"printpriority" yaml:"print_priority" description:"Log per-inclusion diagnostic events during block assembly"`
}

// DefaultPolicy returns a Policy populated with this package's defaults,
// the way callers construct a BlkTmplGenerator before go-flags has parsed
// any operator overrides.
func DefaultPolicy() Policy {
	return Policy{
		BlockMaxWeight: DefaultBlockMaxWeight,
		BlockMinTxFee:  DefaultBlockMinTxFee,
	}
}

// blockMinFeeRate returns the minimum package fee, in satoshis, that a
// candidate of the given size must clear to pass the selection engine's
// floor check (spec.md §4.3 step 4).
func (p Policy) blockMinFeeRate(size int64) int64 {
	return p.BlockMinTxFee * size / 1000
}

// clampedBlockMaxWeight returns p.BlockMaxWeight clamped into
// [blockMaxWeightMin, blockMaxWeightMax], the construction-time clamp
// spec.md §4.1 requires to guarantee forward progress.
func (p Policy) clampedBlockMaxWeight() int64 {
	switch {
	case p.BlockMaxWeight < blockMaxWeightMin:
		return blockMaxWeightMin
	case p.BlockMaxWeight > blockMaxWeightMax:
		return blockMaxWeightMax
	default:
		return p.BlockMaxWeight
	}
}
