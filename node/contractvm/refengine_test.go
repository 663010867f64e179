// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contractvm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/types/wire"
)

func TestRefEngineStateSnapshotAndRestore(t *testing.T) {
	e := NewRefEngine(Cursor{StateRoot: Root{0x01}})
	snapshot := e.GetState()

	e.UpdateState(Cursor{StateRoot: Root{0x02}})
	require.Equal(t, Root{0x02}, e.GetState().StateRoot)

	e.UpdateState(snapshot)
	require.Equal(t, Root{0x01}, e.GetState().StateRoot)
}

func TestRefEngineRunContractTxReturnsScriptedResult(t *testing.T) {
	e := NewRefEngine(Cursor{})
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(&wire.TxOut{Value: 1, PkScript: []byte{}})

	scripted := &ExecutionResult{UsedGas: 5000, RefundSender: 42}
	e.ScriptResult(tx.TxHash(), scripted)

	got, err := e.RunContractTx(tx, GasParams{}, 0)
	require.NoError(t, err)
	require.Same(t, scripted, got)
}

func TestRefEngineRunContractTxDefaultsWhenUnscripted(t *testing.T) {
	e := NewRefEngine(Cursor{})
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(&wire.TxOut{Value: 2, PkScript: []byte{}})

	got, err := e.RunContractTx(tx, GasParams{}, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(21000), got.UsedGas)
	require.Empty(t, got.RefundOutputs)
}

func TestRefEngineRunContractTxHonorsRefuseTxID(t *testing.T) {
	e := NewRefEngine(Cursor{})
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(&wire.TxOut{Value: 3, PkScript: []byte{}})
	e.RefuseTxID(tx.TxHash())

	_, err := e.RunContractTx(tx, GasParams{}, 0)
	require.ErrorIs(t, err, ErrRefused)
}
