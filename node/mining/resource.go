// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/sbtc-core/sbtcd/types/wire"

// MaxBlockSigOpsCost is the maximum aggregate, witness-scaled
// signature-operation cost a block may carry.
const MaxBlockSigOpsCost = 80_000

// CoinbaseReservedWeight and CoinbaseReservedSigOpsCost are the initial
// reservation the resource accountant makes on reset, accounting for the
// eventual coinbase transaction before its final size is known.
const (
	CoinbaseReservedWeight    = 4000
	CoinbaseReservedSigOpsCost = 400
)

// resourceAccountant tracks the four running counters spec.md §4.1
// describes and exposes the fits/final-fits predicates the selection
// engine and contract admission components test every candidate package
// against.
type resourceAccountant struct {
	blockWeight     int64
	blockSigOpsCost int64
	blockTxCount    int64
	fees            int64

	nBlockMaxWeight int64
}

// newResourceAccountant returns a resourceAccountant with
// nBlockMaxWeight clamped from policy and counters reset to their
// coinbase reservation.
func newResourceAccountant(policy Policy) *resourceAccountant {
	r := &resourceAccountant{nBlockMaxWeight: policy.clampedBlockMaxWeight()}
	r.reset()
	return r
}

// reset reinitializes the counters for a fresh assembly pass.
func (r *resourceAccountant) reset() {
	r.blockWeight = CoinbaseReservedWeight
	r.blockSigOpsCost = CoinbaseReservedSigOpsCost
	r.blockTxCount = 0
	r.fees = 0
}

// fits reports whether a package of the given size and sigop cost can be
// added without crossing either budget. Both comparisons are strict, per
// spec.md §4.1 and its boundary behavior 10 (an exact hit is a rejection).
func (r *resourceAccountant) fits(packageSize, packageSigOpsCost int64) bool {
	return r.blockWeight+wire.WitnessScaleFactor*packageSize < r.nBlockMaxWeight &&
		r.blockSigOpsCost+packageSigOpsCost < MaxBlockSigOpsCost
}

// finalFits reports whether a fully-known (weight, sigops) pair — as
// computed after speculative contract execution — satisfies the
// non-strict consensus ceilings. Used only by contract admission
// (spec.md §4.4 step 7).
func (r *resourceAccountant) finalFits(weight, sigOpsCost int64) bool {
	return sigOpsCost*wire.WitnessScaleFactor <= MaxBlockSigOpsCost &&
		weight <= wire.MaxBlockWeight
}

// addPackage commits a package's resource cost to the real counters. Used
// by addToBlock; contract admission writes its shadow counters into the
// real ones directly.
func (r *resourceAccountant) addPackage(size, sigOpsCost, fee int64, txCount int64) {
	r.blockWeight += wire.WitnessScaleFactor * size
	r.blockSigOpsCost += sigOpsCost
	r.blockTxCount += txCount
	r.fees += fee
}
