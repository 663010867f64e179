// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/sbtc-core/sbtcd/types/wire"

// BlockTemplate is the output of CreateNewBlock: an ordered block plus the
// per-transaction fee and sigop-cost arrays spec.md §3's "Block template"
// data model requires, and the witness-commitment bytes the template
// builder computed. Index 0 is always the coinbase; index 1 is the proof
// transaction when the contract fork is active.
type BlockTemplate struct {
	Block  *wire.MsgBlock
	Fees   []int64
	SigOpCosts []int64

	// Height is the height of Block, tip.Height()+1.
	Height int32

	// WitnessCommitment is the 38-byte OP_RETURN payload committing to
	// the witness Merkle root, or nil when no witness transaction was
	// included and no commitment output was generated.
	WitnessCommitment []byte
}
