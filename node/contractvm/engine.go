// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contractvm

import (
	"github.com/sbtc-core/sbtcd/types/wire"
)

// Root is an opaque 256-bit state commitment. The assembler never
// interprets its bytes; it only snapshots, compares, and restores roots
// around speculative execution (spec.md §4.4 step 1 and §3's "Contract
// state cursor").
type Root [32]byte

// Cursor bundles the two roots the engine owns: the contract state root
// and the UTXO-commitment root the VM's account model rests on.
type Cursor struct {
	StateRoot Root
	UTXORoot  Root
}

// ExecutionResult is the outcome of a single RunContractTx call: gas
// consumed, the sender's refund (returned to them regardless of success,
// per spec.md §9's gas-refund accounting discrepancy), and the set of
// refund outputs and value-transfer child transactions the execution
// produced.
type ExecutionResult struct {
	UsedGas        uint64
	RefundSender   int64
	RefundOutputs  []*wire.TxOut
	ValueTransfers []*wire.MsgTx
}

// GasParams bundles the price/limit tuple the template builder resolves
// once per template (spec.md §4.4's "gas-price and gas-limit parameters").
type GasParams struct {
	MinGasPrice      uint64
	HardBlockGasLimit uint64
	SoftBlockGasLimit uint64
	TxGasLimit       uint64
}

// Engine is the narrow contract-VM collaborator surface spec.md §6
// describes. The contract admission component (node/mining) is the only
// caller; it is responsible for snapshotting and restoring the cursor
// around every speculative RunContractTx call.
type Engine interface {
	// GetState returns the engine's current (stateRoot, utxoRoot) pair.
	GetState() Cursor

	// UpdateState overwrites the engine's roots, used both to commit a
	// successful pass's cumulative effect and to roll back a rejected
	// speculative execution.
	UpdateState(cursor Cursor)

	// GetMinGasPrice returns the engine's own minimum gas price at the
	// given height, independent of any operator override.
	GetMinGasPrice(height int32) uint64

	// GetBlockGasLimit returns the engine's hard per-block gas ceiling
	// at the given height.
	GetBlockGasLimit(height int32) uint64

	// RunContractTx speculatively executes tx's contract call under the
	// resolved gas params and the gas already used so far this block
	// (usedGasSoFar), and returns its effect without committing it to
	// the engine's persistent state — UpdateState is always a separate,
	// explicit call.
	RunContractTx(tx *wire.MsgTx, params GasParams, usedGasSoFar uint64) (*ExecutionResult, error)
}
