// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/sbtc-core/sbtcd/txscript"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// legacySigOpCost sums txscript.GetSigOpCount over every output script of
// tx and scales the result by the witness scale factor, converting a raw
// legacy sigop count into the "sigop cost" unit the resource accountant's
// budgets are denominated in. Used for the coinbase, the proof transaction
// and the contract engine's value-transfer transactions; input scripts and
// witness data are not counted (spec.md §4.4 step 6).
func legacySigOpCost(tx *wire.MsgTx) int64 {
	n := 0
	for _, out := range tx.TxOut {
		n += txscript.GetSigOpCount(out.PkScript)
	}
	return int64(n) * wire.WitnessScaleFactor
}
