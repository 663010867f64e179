// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// lastBlockTx and lastBlockWeight are the process-wide telemetry counters
// spec.md §9 calls out: external observables, not part of correctness.
// CreateNewBlock stores them atomically at the end of each successful
// pass, from the finished template; nothing is stored at the start of a
// pass, and a pass that returns an error leaves them unchanged.
var (
	lastBlockTx     int64
	lastBlockWeight int64
)

// LastBlockTx returns the transaction count of the most recently produced
// template.
func LastBlockTx() int64 { return atomic.LoadInt64(&lastBlockTx) }

// LastBlockWeight returns the weight of the most recently produced
// template.
func LastBlockWeight() int64 { return atomic.LoadInt64(&lastBlockWeight) }

func recordTelemetry(tpl *BlockTemplate) {
	atomic.StoreInt64(&lastBlockTx, int64(len(tpl.Block.Transactions)))
	atomic.StoreInt64(&lastBlockWeight, tpl.Block.Weight())
}

// ErrCoinbaseScriptTooLong is returned when rewriting the coinbase
// scriptSig with a fresh extra nonce would exceed CoinbaseScriptMaxLen.
var ErrCoinbaseScriptTooLong = errors.New("rewritten coinbase script exceeds the maximum length")

// ExtraNonceIncrementer is the mining-driver support routine of spec.md
// §4.6: a process-wide counter keyed on the previous block hash, used to
// roll the coinbase's extra nonce between successive nonce-space
// exhaustions of the same template without re-running CreateNewBlock.
type ExtraNonceIncrementer struct {
	mu       sync.Mutex
	prevHash chainhash.Hash
	counter  uint64
}

// NewExtraNonceIncrementer returns a zeroed incrementer.
func NewExtraNonceIncrementer() *ExtraNonceIncrementer {
	return &ExtraNonceIncrementer{}
}

// Increment rewrites tpl's coinbase scriptSig with the next extra nonce
// for tpl's previous-block hash, resetting the counter to zero whenever
// that hash differs from the last call, then unconditionally advancing it
// by one — so the first call for any given hash yields counter 1, not 0 —
// and recomputes the block's Merkle root to match.
func (e *ExtraNonceIncrementer) Increment(tpl *BlockTemplate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := tpl.Block.Header.PrevBlock
	if prev != e.prevHash {
		e.prevHash = prev
		e.counter = 0
	}
	e.counter++

	script, err := StandardCoinbaseScript(tpl.Height, e.counter)
	if err != nil {
		return err
	}
	if len(script) > CoinbaseScriptMaxLen {
		return ErrCoinbaseScriptTooLong
	}

	coinbase := tpl.Block.Transactions[0]
	coinbase.TxIn[0].SignatureScript = script

	tpl.Block.Header.MerkleRoot = wire.CalcMerkleRoot(txHashes(tpl.Block.Transactions))
	return nil
}

func txHashes(txs []*wire.MsgTx) []chainhash.Hash {
	hashes := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.TxHash()
	}
	return hashes
}
