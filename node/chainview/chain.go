// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainview

import (
	"time"

	"github.com/sbtc-core/sbtcd/types/chaincfg"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// Tip is an opaque pointer to the chain's current best block, the
// `pindexPrev` of spec.md §4.5 step 2.
type Tip interface {
	Height() int32
	Hash() chainhash.Hash
	Bits() uint32
	Timestamp() time.Time
}

// Chain is the narrow chain-state collaborator surface spec.md §6
// describes: active tip, block subsidy, contract-fork activation, block
// validity testing, witness-enabled predicate, PoW retarget, and the
// median-time-past / adjusted-time clocks. The template builder never
// reaches past this interface into real chain storage (out of scope per
// spec.md §1).
type Chain interface {
	// Tip returns the chain's current best block.
	Tip() Tip

	// Params returns the chain's consensus parameters.
	Params() *chaincfg.Params

	// MedianTimePast returns the median time of the most recent 11
	// blocks up to and including tip, the lockTimeCutoff basis for
	// finality checks.
	MedianTimePast(tip Tip) time.Time

	// AdjustedTime returns the network-adjusted wall-clock time used
	// when picking the header timestamp.
	AdjustedTime() time.Time

	// IsWitnessEnabled reports whether the segwit deployment is active
	// as of tip.
	IsWitnessEnabled(tip Tip) bool

	// IsContractForkActive reports whether the contract admission
	// sub-protocol (spec.md §4.4) is active at the given height.
	IsContractForkActive(height int32) bool

	// CalcNextRequiredDifficulty computes nBits for a block built on
	// top of tip with the given timestamp.
	CalcNextRequiredDifficulty(tip Tip, newestTimestamp time.Time) (uint32, error)

	// TestBlockValidity runs full block validation against block, with
	// PoW and Merkle-root checks optionally disabled (the mining driver
	// sets those once it has found a valid nonce). A rejection here is
	// the template builder's single fatal error path.
	TestBlockValidity(block *wire.MsgBlock, tip Tip, checkPoW, checkMerkleRoot bool) error
}
