// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/sbtc-core/sbtcd/sbtcutil"
	"github.com/sbtc-core/sbtcd/txscript"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// CoinbaseFlags is extra data appended to coinbase scripts identifying
// this software, following the classic "/P2SH/bitcoind:/"-style miner
// signaling convention.
const CoinbaseFlags = "/sbtcd/"

// CoinbaseScriptMaxLen is the maximum legal length of a coinbase
// scriptSig, per spec.md §4.6: the extra-nonce incrementer asserts its
// rewritten script never exceeds this.
const CoinbaseScriptMaxLen = 100

// StandardCoinbaseScript returns a script suitable for use as the
// signature script of the coinbase transaction of a new block: it starts
// with the block height, required since BIP34, followed by the extra
// nonce and the coinbase flags.
func StandardCoinbaseScript(nextBlockHeight int32, extraNonce uint64) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(int64(nextBlockHeight)).
		AddInt64(int64(extraNonce)).
		AddData([]byte(CoinbaseFlags)).
		Script()
}

// CreateCoinbaseTx returns a coinbase transaction paying the given value
// to addr. When addr is nil, the coinbase is instead redeemable by
// anyone, via a bare OP_TRUE output. The template builder installs its
// coinbase with value 0 paying its payout address, and rewrites the value
// once the final fee amount is known (spec.md §4.5 step 4).
func CreateCoinbaseTx(value int64, nextHeight int32, addr sbtcutil.Address) (*sbtcutil.Tx, error) {
	coinbaseScript, err := StandardCoinbaseScript(nextHeight, 0)
	if err != nil {
		return nil, err
	}

	var pkScript []byte
	if addr != nil {
		pkScript, err = txscript.PayToAddrScript(addr)
		if err != nil {
			return nil, err
		}
	} else {
		pkScript, err = txscript.NewScriptBuilder().AddOp(txscript.OP_TRUE).Script()
		if err != nil {
			return nil, err
		}
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  coinbaseScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(&wire.TxOut{Value: value, PkScript: pkScript})
	return sbtcutil.NewTx(tx), nil
}
