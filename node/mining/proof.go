// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/sbtc-core/sbtcd/node/contractvm"
	"github.com/sbtc-core/sbtcd/txscript"
	"github.com/sbtc-core/sbtcd/types/chaincfg"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// genesisStateRoot and genesisUTXORoot are the deployment-defined defaults
// spec.md §4.5 step 5 and §9's dead-code note refer to: the roots
// substituted for the engine's cursor when either of its roots is null
// at the time the proof transaction is built. Derived deterministically
// rather than left as the zero value, so a proof transaction never
// carries an all-zero root.
var (
	genesisStateRoot = contractvm.Root(chainhash.HashH([]byte("sbtcd/contract-state-root/genesis")))
	genesisUTXORoot  = contractvm.Root(chainhash.HashH([]byte("sbtcd/contract-utxo-root/genesis")))
)

// effectiveCursor substitutes the genesis defaults for cursor whenever
// either root is still null, following RebuildRefundTransaction's rule
// (spec.md §4.5 step 5, §9). The substitution is keyed on root-nullness,
// not height: callers only reach this function once the contract fork is
// already active for the pass, so a null root here means the engine has
// not produced real roots yet, not that the fork hasn't activated.
func effectiveCursor(params *chaincfg.Params, height int32, cursor contractvm.Cursor) contractvm.Cursor {
	if cursor.StateRoot == (contractvm.Root{}) || cursor.UTXORoot == (contractvm.Root{}) {
		return contractvm.Cursor{StateRoot: genesisStateRoot, UTXORoot: genesisUTXORoot}
	}
	return cursor
}

// buildProofTx constructs the second-transaction placeholder spec.md §4.5
// step 5 describes: two null-prevout inputs (the "dead code" two-input
// form preserved for bit-compatibility per spec.md §9, though one would
// semantically suffice) and a single output encoding the cursor as
// OP_RETURN data followed by the OP_VM_STATE marker.
func buildProofTx(cursor contractvm.Cursor) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		Sequence:         wire.MaxTxInSequenceNum,
	})

	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).
		AddData(cursor.StateRoot[:]).
		AddData(cursor.UTXORoot[:]).
		AddOp(txscript.OP_VM_STATE).
		Script()
	if err != nil {
		// AddData never fails for a fixed 32-byte payload under
		// MaxScriptSize; this path is unreachable.
		script = nil
	}
	tx.AddTxOut(&wire.TxOut{Value: 0, PkScript: script})
	return tx
}
