// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbtcutil

import (
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// Tx defines a bitcoin transaction that provides easier and more efficient
// manipulation of raw transactions, caching the expensive-to-compute txid
// the way the mempool's modified-entry overlay and the selection engine
// repeatedly need it.
type Tx struct {
	msgTx   *wire.MsgTx
	txHash  *chainhash.Hash
	txIndex int
}

// NewTx returns a new instance of a transaction given an underlying
// wire.MsgTx.
func NewTx(msgTx *wire.MsgTx) *Tx {
	return &Tx{msgTx: msgTx, txIndex: -1}
}

// MsgTx returns the underlying wire.MsgTx for the transaction.
func (t *Tx) MsgTx() *wire.MsgTx { return t.msgTx }

// Hash returns the hash of the transaction, computing and caching it if
// not already done.
func (t *Tx) Hash() *chainhash.Hash {
	if t.txHash != nil {
		return t.txHash
	}
	hash := t.msgTx.TxHash()
	t.txHash = &hash
	return t.txHash
}

// Index returns the saved index of the transaction within a block. This
// value will be -1 if it hasn't already explicitly been set.
func (t *Tx) Index() int { return t.txIndex }

// SetIndex sets the index of the transaction within a block.
func (t *Tx) SetIndex(index int) { t.txIndex = index }
