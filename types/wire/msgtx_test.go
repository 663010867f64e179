// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/types/chainhash"
)

func TestMsgTxWeightWithoutWitnessIsFourTimesBaseSize(t *testing.T) {
	tx := NewMsgTx(TxVersion)
	var prev chainhash.Hash
	prev[0] = 0x01
	tx.AddTxIn(&TxIn{PreviousOutPoint: *NewOutPoint(&prev, 0), Sequence: MaxTxInSequenceNum})
	tx.AddTxOut(&TxOut{Value: 1000, PkScript: []byte{}})

	require.False(t, tx.HasWitness())
	require.Equal(t, int64(4*tx.SerializeSize()), tx.Weight())
}

func TestMsgTxWeightIsThreeBaseSizePlusTotalSize(t *testing.T) {
	tx := NewMsgTx(TxVersion)
	var prev chainhash.Hash
	prev[0] = 0x02
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: *NewOutPoint(&prev, 0),
		Sequence:         MaxTxInSequenceNum,
		Witness:          TxWitness{[]byte{0x01, 0x02, 0x03}},
	})
	tx.AddTxOut(&TxOut{Value: 1000, PkScript: []byte{}})

	require.True(t, tx.HasWitness())
	want := int64(3*tx.baseSize() + tx.SerializeSize())
	require.Equal(t, want, tx.Weight())
	require.Less(t, tx.Weight(), int64(4*tx.SerializeSize()))
}
