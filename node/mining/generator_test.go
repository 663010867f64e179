// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/node/chainview"
	"github.com/sbtc-core/sbtcd/node/contractvm"
	"github.com/sbtc-core/sbtcd/node/mempool"
	"github.com/sbtc-core/sbtcd/sbtcutil"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

func testPayoutAddr(t *testing.T) sbtcutil.Address {
	addr, err := sbtcutil.NewAddressPubKeyHash(make([]byte, 20))
	require.NoError(t, err)
	return addr
}

// fakeOutPoint returns a distinct, non-null outpoint so a test transaction
// is never mistaken for a coinbase.
func fakeOutPoint(seed byte) wire.OutPoint {
	var h chainhash.Hash
	h[0] = seed
	return *wire.NewOutPoint(&h, 0)
}

func newTestTx(prevSeed byte, value int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: fakeOutPoint(prevSeed), Sequence: wire.MaxTxInSequenceNum})
	tx.AddTxOut(&wire.TxOut{Value: value, PkScript: []byte{}})
	return tx
}

func newTestEntry(tx *wire.MsgTx, fee int64, isContract bool) *mempool.TxEntry {
	return &mempool.TxEntry{
		Tx:          sbtcutil.NewTx(tx),
		Size:        int64(tx.SerializeSize()),
		Weight:      tx.Weight(),
		Fee:         fee,
		SigOpCost:   0,
		ModifiedFee: fee,
		IsContractCall: isContract,
	}
}

func newTestGenerator(view mempool.View, engine contractvm.Engine) (*BlkTmplGenerator, *chainview.RefChain) {
	chain := chainview.NewRefChain()
	policy := DefaultPolicy()
	policy.BlockMinTxFee = 0
	return NewBlkTmplGenerator(policy, chain, view, engine), chain
}

func TestCreateNewBlockEmptyMempool(t *testing.T) {
	pool := mempool.NewTxPool()
	engine := contractvm.NewRefEngine(contractvm.Cursor{})
	gen, _ := newTestGenerator(pool, engine)

	tpl, err := gen.CreateNewBlock(testPayoutAddr(t), true)
	require.NoError(t, err)

	// Coinbase at index 0, proof transaction at index 1 since RegressionNet
	// activates the contract fork at height 0 (spec.md §4.5 steps 4-5).
	require.Len(t, tpl.Block.Transactions, 2)
	require.True(t, tpl.Block.Transactions[0].IsCoinBase())
	require.Equal(t, int32(1), tpl.Height)
	require.Len(t, tpl.Fees, 2)
	require.Len(t, tpl.SigOpCosts, 2)
}

func TestCreateNewBlockIncludesAncestorPackage(t *testing.T) {
	pool := mempool.NewTxPool()
	engine := contractvm.NewRefEngine(contractvm.Cursor{})
	gen, _ := newTestGenerator(pool, engine)

	parentTx := newTestTx(0x01, 50_000)
	parentEntry := newTestEntry(parentTx, 1000, false)
	pool.AddEntry(parentEntry, nil)

	parentHashForChild := parentTx.TxHash()
	childTx := wire.NewMsgTx(wire.TxVersion)
	childTx.AddTxIn(&wire.TxIn{PreviousOutPoint: *wire.NewOutPoint(&parentHashForChild, 0), Sequence: wire.MaxTxInSequenceNum})
	childTx.AddTxOut(&wire.TxOut{Value: 40_000, PkScript: []byte{}})
	childEntry := newTestEntry(childTx, 1000, false)
	pool.AddEntry(childEntry, []mempool.Handle{parentEntry.Handle()})

	tpl, err := gen.CreateNewBlock(testPayoutAddr(t), true)
	require.NoError(t, err)

	// coinbase, proof, parent, child — ancestor-count order within the
	// package guarantees the parent precedes the child (spec.md §4.3
	// step 8).
	require.Len(t, tpl.Block.Transactions, 4)
	parentHash := parentTx.TxHash()
	childHash := childTx.TxHash()
	gotParentIdx, gotChildIdx := -1, -1
	for i, tx := range tpl.Block.Transactions {
		h := tx.TxHash()
		if h == parentHash {
			gotParentIdx = i
		}
		if h == childHash {
			gotChildIdx = i
		}
	}
	require.NotEqual(t, -1, gotParentIdx)
	require.NotEqual(t, -1, gotChildIdx)
	require.Less(t, gotParentIdx, gotChildIdx)
}

func TestCreateNewBlockFloorExcludesLowFeePackage(t *testing.T) {
	pool := mempool.NewTxPool()
	engine := contractvm.NewRefEngine(contractvm.Cursor{})
	gen, _ := newTestGenerator(pool, engine)
	gen.policy.BlockMinTxFee = 1_000_000 // astronomically high floor

	tx := newTestTx(0x02, 10_000)
	entry := newTestEntry(tx, 1, false)
	pool.AddEntry(entry, nil)

	tpl, err := gen.CreateNewBlock(testPayoutAddr(t), true)
	require.NoError(t, err)

	for _, included := range tpl.Block.Transactions {
		require.NotEqual(t, tx.TxHash(), included.TxHash())
	}
}

func TestCreateNewBlockAdmitsContractAndRebuildsProof(t *testing.T) {
	pool := mempool.NewTxPool()
	cursor := contractvm.Cursor{}
	engine := contractvm.NewRefEngine(cursor)
	gen, _ := newTestGenerator(pool, engine)

	tx := newTestTx(0x03, 10_000)
	entry := newTestEntry(tx, 5000, true)
	pool.AddEntry(entry, nil)

	refundOut := &wire.TxOut{Value: 500, PkScript: []byte{}}
	engine.ScriptResult(tx.TxHash(), &contractvm.ExecutionResult{
		UsedGas:       21_000,
		RefundSender:  100,
		RefundOutputs: []*wire.TxOut{refundOut},
	})

	tpl, err := gen.CreateNewBlock(testPayoutAddr(t), true)
	require.NoError(t, err)

	found := false
	for _, included := range tpl.Block.Transactions {
		if included.TxHash() == tx.TxHash() {
			found = true
		}
	}
	require.True(t, found, "contract transaction should have been admitted")

	// The proof transaction (index 1) must carry the refund output.
	proofTx := tpl.Block.Transactions[1]
	require.Len(t, proofTx.TxOut, 2) // original state-commitment output + refund
	require.Equal(t, refundOut.Value, proofTx.TxOut[1].Value)
}

func TestCreateNewBlockContractRefusalIsSkippedNotFatal(t *testing.T) {
	pool := mempool.NewTxPool()
	engine := contractvm.NewRefEngine(contractvm.Cursor{})
	gen, _ := newTestGenerator(pool, engine)

	tx := newTestTx(0x04, 10_000)
	entry := newTestEntry(tx, 5000, true)
	pool.AddEntry(entry, nil)
	engine.RefuseTxID(tx.TxHash())

	tpl, err := gen.CreateNewBlock(testPayoutAddr(t), true)
	require.NoError(t, err)

	for _, included := range tpl.Block.Transactions {
		require.NotEqual(t, tx.TxHash(), included.TxHash())
	}
}
