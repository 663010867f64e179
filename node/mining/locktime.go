// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"time"

	"github.com/sbtc-core/sbtcd/types/wire"
)

// lockTimeThreshold is the number a transaction's LockTime is compared
// against to decide whether it is a block-height or a Unix-time lock,
// following the classic btcd convention.
const lockTimeThreshold = 500_000_000

// IsFinalTx reports whether tx is finalized for inclusion in a block at
// blockHeight whose header timestamp will be no earlier than
// blockTime — the check spec.md §4.3 step 7 requires of every member of a
// candidate ancestor set. Relative locktime (BIP68) sequence checks are a
// mempool-admission concern and out of scope here; this is the absolute
// nLockTime test alone, same as the source's non-sequence half of
// IsFinalTx.
func IsFinalTx(tx *wire.MsgTx, blockHeight int32, blockTime time.Time) bool {
	if tx.LockTime == 0 {
		return true
	}

	var blockTimeOrHeight int64
	if tx.LockTime < lockTimeThreshold {
		blockTimeOrHeight = int64(blockHeight)
	} else {
		blockTimeOrHeight = blockTime.Unix()
	}
	if int64(tx.LockTime) < blockTimeOrHeight {
		return true
	}

	for _, txIn := range tx.TxIn {
		if txIn.Sequence != wire.MaxTxInSequenceNum {
			return false
		}
	}
	return true
}
