// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/sbtc-core/sbtcd/sbtcutil"
	"github.com/sbtc-core/sbtcd/types/chainhash"
)

// Handle identifies a mempool entry. A txid is already a stable,
// generation-safe value: using it directly as the handle avoids the
// intrusive-iterator aliasing problem the original C++ multi-index
// containers have, without needing an arena of its own.
type Handle = chainhash.Hash

// TxEntry is a mempool transaction together with the aggregates the
// selection engine's ancestor-feerate scoring needs. The fields mirror the
// "Mempool entry" data model: individual size/fee/sigops plus ancestor
// aggregates computed once by the mempool (ancestor aggregation itself is
// a mempool-admission concern, out of this repository's scope per
// spec.md's Non-goals — TxPool.AddEntry below recomputes them only for the
// in-memory reference implementation used by tests).
type TxEntry struct {
	Tx *sbtcutil.Tx

	Size      int64
	Weight    int64
	Fee       int64
	SigOpCost int64

	// ModifiedFee starts equal to Fee; mempool admission (out of scope)
	// may have adjusted it via a fee-bump, which the selection engine
	// reads through ModFeesWithAncestors rather than Fee directly.
	ModifiedFee int64

	SizeWithAncestors      int64
	ModFeesWithAncestors   int64
	SigOpCostWithAncestors int64

	// IsContractCall marks a transaction that invokes the embedded VM
	// (create-or-call), routing it to the contract admission component
	// (spec.md §4.4) instead of the plain AddToBlock path.
	IsContractCall bool
}

// Handle returns the entry's handle (its transaction ID).
func (e *TxEntry) Handle() Handle {
	return *e.Tx.Hash()
}
