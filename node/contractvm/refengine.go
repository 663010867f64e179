// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contractvm

import (
	"github.com/pkg/errors"

	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// ErrRefused is returned by RefEngine.RunContractTx for any transaction
// configured to fail via RefuseTxID.
var ErrRefused = errors.New("contract engine refused transaction")

// RefEngine is a deterministic in-memory Engine used by node/mining's own
// tests: it returns a scripted ExecutionResult per transaction ID, and
// otherwise echoes the minimal legal default (no refunds, no transfers).
// The assembler has no home-grown VM to ground this on — spec.md §6 only
// specifies the interface a real VM must satisfy — so this is new code,
// modeled directly on that consumed interface.
type RefEngine struct {
	cursor Cursor

	minGasPrice   uint64
	blockGasLimit uint64

	results map[chainhash.Hash]*ExecutionResult
	refuse  map[chainhash.Hash]struct{}
}

// NewRefEngine returns a RefEngine with the given starting cursor.
func NewRefEngine(cursor Cursor) *RefEngine {
	return &RefEngine{
		cursor:        cursor,
		minGasPrice:   1,
		blockGasLimit: 40_000_000,
		results:       make(map[chainhash.Hash]*ExecutionResult),
		refuse:        make(map[chainhash.Hash]struct{}),
	}
}

// ScriptResult configures the ExecutionResult RunContractTx returns for
// the transaction with the given hash.
func (e *RefEngine) ScriptResult(txHash chainhash.Hash, result *ExecutionResult) {
	e.results[txHash] = result
}

// RefuseTxID marks a transaction as one the engine will refuse to run.
func (e *RefEngine) RefuseTxID(txHash chainhash.Hash) {
	e.refuse[txHash] = struct{}{}
}

func (e *RefEngine) GetState() Cursor { return e.cursor }

func (e *RefEngine) UpdateState(cursor Cursor) { e.cursor = cursor }

func (e *RefEngine) GetMinGasPrice(int32) uint64 { return e.minGasPrice }

func (e *RefEngine) GetBlockGasLimit(int32) uint64 { return e.blockGasLimit }

func (e *RefEngine) RunContractTx(tx *wire.MsgTx, params GasParams, usedGasSoFar uint64) (*ExecutionResult, error) {
	hash := tx.TxHash()
	if _, refused := e.refuse[hash]; refused {
		return nil, ErrRefused
	}
	if scripted, ok := e.results[hash]; ok {
		return scripted, nil
	}
	return &ExecutionResult{UsedGas: 21000}, nil
}
