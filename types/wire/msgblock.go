// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"

	"github.com/sbtc-core/sbtcd/types/chainhash"
)

// WitnessScaleFactor determines the level of "discount" witness data
// receives compared to "base" data. A scale factor of 4 implies a 75%
// discount; the block weight formula below follows that convention with
// 3*base + total rather than the equivalent 4*base - witness_size.
const WitnessScaleFactor = 4

// MaxBlockWeight is the maximum weight a block may have, following the
// segwit definition of weight = 3*base_size + total_size.
const MaxBlockWeight = 4_000_000

// MsgBlock implements a bitcoin-family block message.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// NewMsgBlock returns a new bitcoin block message using the provided header.
func NewMsgBlock(header *BlockHeader) *MsgBlock {
	return &MsgBlock{Header: *header}
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// BaseSize returns the block's serialized size excluding witness data.
func (msg *MsgBlock) BaseSize() int {
	n := BlockHeaderLen + VarIntSerializeSize(uint64(len(msg.Transactions)))
	for _, tx := range msg.Transactions {
		n += tx.BaseSize()
	}
	return n
}

// SerializeSize returns the block's total serialized size, including any
// witness data carried by its transactions.
func (msg *MsgBlock) SerializeSize() int {
	n := BlockHeaderLen + VarIntSerializeSize(uint64(len(msg.Transactions)))
	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}
	return n
}

// Weight computes the block weight as defined by BIP 141:
// 3*base_size + total_size. The template builder's resource accountant
// (node/mining) enforces nBlockMaxWeight against this quantity.
func (msg *MsgBlock) Weight() int64 {
	return int64(3*msg.BaseSize() + msg.SerializeSize())
}

// BlockHash computes the block identifier hash for the block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// CalcMerkleRoot computes the merkle root of the block's transaction IDs
// using the classic Bitcoin Merkle tree: pairwise double-SHA256, duplicating
// the final element of any odd-length level.
func CalcMerkleRoot(txHashes []chainhash.Hash) chainhash.Hash {
	if len(txHashes) == 0 {
		return chainhash.Hash{}
	}
	level := make([]chainhash.Hash, len(txHashes))
	copy(level, txHashes)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, len(level)/2)
		for i := 0; i < len(next); i++ {
			var buf bytes.Buffer
			buf.Grow(chainhash.HashSize * 2)
			buf.Write(level[2*i][:])
			buf.Write(level[2*i+1][:])
			next[i] = chainhash.DoubleHashH(buf.Bytes())
		}
		level = next
	}
	return level[0]
}
