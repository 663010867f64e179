// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

func newExtraNonceTestTemplate(t *testing.T, height int32, prevHash chainhash.Hash) *BlockTemplate {
	coinbase, err := CreateCoinbaseTx(0, height, nil)
	require.NoError(t, err)

	block := wire.NewMsgBlock(&wire.BlockHeader{PrevBlock: prevHash})
	block.AddTransaction(coinbase.MsgTx())

	return &BlockTemplate{Block: block, Height: height}
}

// TestExtraNonceIncrementerSequence exercises spec.md §8 scenario S6:
// three calls against the same previous-block hash yield counts 1, 2, 3,
// and a call against a different hash restarts the sequence at 1.
func TestExtraNonceIncrementerSequence(t *testing.T) {
	e := NewExtraNonceIncrementer()

	var hashA, hashB chainhash.Hash
	hashA[0] = 0xAA
	hashB[0] = 0xBB

	for i, want := range []uint64{1, 2, 3} {
		tpl := newExtraNonceTestTemplate(t, 1, hashA)
		require.NoError(t, e.Increment(tpl))
		require.Equal(t, want, e.counter, "call %d against hashA", i+1)
	}

	for i, want := range []uint64{1, 2} {
		tpl := newExtraNonceTestTemplate(t, 1, hashB)
		require.NoError(t, e.Increment(tpl))
		require.Equal(t, want, e.counter, "call %d against hashB", i+1)
	}
}

func TestExtraNonceIncrementerRewritesCoinbaseAndMerkleRoot(t *testing.T) {
	e := NewExtraNonceIncrementer()
	var hash chainhash.Hash
	hash[0] = 0x01

	tpl := newExtraNonceTestTemplate(t, 5, hash)
	before := tpl.Block.Header.MerkleRoot

	require.NoError(t, e.Increment(tpl))

	script, err := StandardCoinbaseScript(5, 1)
	require.NoError(t, err)
	require.Equal(t, script, tpl.Block.Transactions[0].TxIn[0].SignatureScript)
	require.NotEqual(t, before, tpl.Block.Header.MerkleRoot)
}
