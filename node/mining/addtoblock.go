// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/sbtc-core/sbtcd/node/mempool"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// addToBlock appends entry's transaction to the template under
// construction, extends the parallel fee/sigop-cost arrays, commits its
// individual (not ancestor-aggregate) cost to the resource accountant, and
// folds its handle into the included set. This is the plain non-contract
// admission path spec.md §4.3 step 9 and §4.5 describe; contract-carrying
// entries instead go through BlkTmplGenerator.admitContract.
func (s *session) addToBlock(entry *mempool.TxEntry) {
	s.block.AddTransaction(entry.Tx.MsgTx())
	s.fees = append(s.fees, entry.Fee)
	s.sigOpCosts = append(s.sigOpCosts, entry.SigOpCost)
	s.resources.addPackage(entry.Size, entry.SigOpCost, entry.Fee, 1)
	s.markIncluded(entry.Handle())

	if s.gen.policy.PrintPriority {
		log.Debug().Msgf("fee %d size %d sigops %d -- %s",
			entry.Fee, entry.Size, entry.SigOpCost, entry.Handle())
	}
}

// addRawTx appends a transaction produced outside the mempool (a
// value-transfer child emitted by the contract engine) directly to the
// template, without touching the included set — value transfers have no
// mempool handle of their own and are never revisited by the merge walk.
// They carry no fee of their own; their sigop cost was already folded into
// the shadow counters during speculative execution, so the caller commits
// it to the real resource accountant separately.
func (s *session) addRawTx(tx *wire.MsgTx, sigOpsCost int64) {
	s.block.AddTransaction(tx)
	s.fees = append(s.fees, 0)
	s.sigOpCosts = append(s.sigOpCosts, sigOpsCost)
}
