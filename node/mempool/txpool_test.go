// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/sbtcutil"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/wire"
)

func testEntry(t *testing.T, seed byte, fee int64) *TxEntry {
	t.Helper()
	tx := wire.NewMsgTx(wire.TxVersion)
	var prev chainhash.Hash
	prev[0] = seed
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: *wire.NewOutPoint(&prev, 0), Sequence: wire.MaxTxInSequenceNum})
	tx.AddTxOut(&wire.TxOut{Value: 10_000, PkScript: []byte{}})
	return &TxEntry{
		Tx:          sbtcutil.NewTx(tx),
		Size:        int64(tx.SerializeSize()),
		Weight:      tx.Weight(),
		Fee:         fee,
		ModifiedFee: fee,
	}
}

func TestTxPoolGetRoundTrips(t *testing.T) {
	p := NewTxPool()
	entry := testEntry(t, 0x01, 1000)
	p.AddEntry(entry, nil)

	got, ok := p.Get(entry.Handle())
	require.True(t, ok)
	require.Same(t, entry, got)

	_, ok = p.Get(chainhash.Hash{0xff})
	require.False(t, ok)
}

func TestTxPoolAncestorsAndDescendantsAreTransitive(t *testing.T) {
	p := NewTxPool()
	grandparent := testEntry(t, 0x01, 1000)
	p.AddEntry(grandparent, nil)
	parent := testEntry(t, 0x02, 1000)
	p.AddEntry(parent, []Handle{grandparent.Handle()})
	child := testEntry(t, 0x03, 1000)
	p.AddEntry(child, []Handle{parent.Handle()})

	ancestors := p.Ancestors(child.Handle())
	require.ElementsMatch(t, []Handle{parent.Handle(), grandparent.Handle()}, ancestors)

	descendants := p.Descendants(grandparent.Handle())
	require.ElementsMatch(t, []Handle{parent.Handle(), child.Handle()}, descendants)
}

func TestTxPoolRecomputesAncestorAggregatesTransitively(t *testing.T) {
	p := NewTxPool()
	parent := testEntry(t, 0x04, 1000)
	p.AddEntry(parent, nil)
	child := testEntry(t, 0x05, 500)
	p.AddEntry(child, []Handle{parent.Handle()})

	childEntry, ok := p.Get(child.Handle())
	require.True(t, ok)
	require.Equal(t, parent.Size+child.Size, childEntry.SizeWithAncestors)
	require.Equal(t, parent.ModifiedFee+child.ModifiedFee, childEntry.ModFeesWithAncestors)

	parentEntry, ok := p.Get(parent.Handle())
	require.True(t, ok)
	require.Equal(t, parent.Size, parentEntry.SizeWithAncestors)
}

func TestTxPoolByAncestorScoreDescendsByFeerate(t *testing.T) {
	p := NewTxPool()
	low := testEntry(t, 0x06, 100)
	high := testEntry(t, 0x07, 100_000)
	p.AddEntry(low, nil)
	p.AddEntry(high, nil)

	it := p.ByAncestorScore()
	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, high.Handle(), first)

	second, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, low.Handle(), second)

	_, ok = it.Next()
	require.False(t, ok)
}

func TestCompareAncestorFeerate(t *testing.T) {
	require.True(t, CompareAncestorFeerate(200, 100, 100, 100))
	require.False(t, CompareAncestorFeerate(100, 100, 200, 100))
	require.False(t, CompareAncestorFeerate(100, 200, 50, 100))
}
