// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/sbtc-core/sbtcd/types/wire"

// bceResult is the "Execution accumulator" spec.md §3 names: running
// totals across every contract transaction accepted so far in the current
// pass. Zeroed at the start of a pass, mutated only on successful contract
// admission, consumed when the proof transaction is finally rebuilt.
type bceResult struct {
	usedGas       uint64
	refundSender  int64
	refundOutputs []*wire.TxOut
	valueTransfers []*wire.MsgTx
}

func newBceResult() *bceResult {
	return &bceResult{}
}

func (b *bceResult) fold(usedGas uint64, refundSender int64, refundOutputs []*wire.TxOut, valueTransfers []*wire.MsgTx) {
	b.usedGas += usedGas
	b.refundSender += refundSender
	b.refundOutputs = append(b.refundOutputs, refundOutputs...)
	b.valueTransfers = append(b.valueTransfers, valueTransfers...)
}
