// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"bytes"

	"github.com/sbtc-core/sbtcd/txscript"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// witnessCommitmentHeader is the fixed 6-byte prefix (OP_RETURN, a 36-byte
// push, and the BIP141 commitment magic) every witness-commitment output
// carries ahead of its 32-byte hash.
var witnessCommitmentHeader = []byte{
	txscript.OP_RETURN, 0x24, 0xaa, 0x21, 0xa9, 0xed,
}

// witnessMerkleRoot computes the Merkle root of a block's transactions'
// witness hashes, with the BIP141 special case that the coinbase
// contributes the zero hash rather than its own witness hash (since the
// coinbase's witness is exactly the yet-to-be-computed commitment itself).
func witnessMerkleRoot(txs []*wire.MsgTx) chainhash.Hash {
	hashes := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		if i == 0 {
			hashes[i] = chainhash.Hash{}
			continue
		}
		hashes[i] = tx.WitnessHash()
	}
	return wire.CalcMerkleRoot(hashes)
}

// generateWitnessCommitment appends the witness-commitment output to the
// coinbase transaction and returns its 38-byte payload, implementing
// spec.md §4.5 step 8. Returns nil if no transaction in the block carries
// witness data, matching the source's "no commitment output exists, and
// none is needed" short circuit.
func generateWitnessCommitment(block *wire.MsgBlock) []byte {
	hasWitness := false
	for _, tx := range block.Transactions {
		if tx.HasWitness() {
			hasWitness = true
			break
		}
	}
	if !hasWitness {
		return nil
	}

	root := witnessMerkleRoot(block.Transactions)

	var reservedValue [32]byte
	var buf bytes.Buffer
	buf.Write(root[:])
	buf.Write(reservedValue[:])
	commitmentHash := chainhash.DoubleHashH(buf.Bytes())

	payload := make([]byte, 0, len(witnessCommitmentHeader)+chainhash.HashSize)
	payload = append(payload, witnessCommitmentHeader...)
	payload = append(payload, commitmentHash[:]...)

	coinbase := block.Transactions[0]
	coinbase.AddTxOut(&wire.TxOut{Value: 0, PkScript: payload})
	return payload
}
