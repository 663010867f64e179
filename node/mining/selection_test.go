// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/node/contractvm"
	"github.com/sbtc-core/sbtcd/node/mempool"
	"github.com/sbtc-core/sbtcd/types/wire"
)

func newTestSession(t *testing.T, pool *mempool.TxPool) *session {
	engine := contractvm.NewRefEngine(contractvm.Cursor{})
	gen, _ := newTestGenerator(pool, engine)
	resources := newResourceAccountant(gen.policy)
	block := wire.NewMsgBlock(&wire.BlockHeader{})
	return newSession(gen, pool, resources, block)
}

// TestRejectCandidateOnlyBlacklistsOverlaySourced covers spec.md §4.3
// step 5: a mempool-stream rejection is merely skipped for this pass and
// remains eligible to reappear via propagate, while an overlay-sourced
// rejection is permanently blacklisted, since propagate never re-adds it.
func TestRejectCandidateOnlyBlacklistsOverlaySourced(t *testing.T) {
	pool := mempool.NewTxPool()
	tx := newTestTx(0x10, 10_000)
	entry := newTestEntry(tx, 1000, false)
	pool.AddEntry(entry, nil)

	s := newTestSession(t, pool)
	mempoolCandidate := &candidate{handle: entry.Handle(), fromOverlay: false}
	s.rejectCandidate(mempoolCandidate)
	require.False(t, s.isFailed(entry.Handle()), "mempool-sourced rejection must not be blacklisted")

	overlayTx := newTestTx(0x11, 10_000)
	overlayEntry := newTestEntry(overlayTx, 1000, false)
	pool.AddEntry(overlayEntry, nil)
	s.overlay.entries[overlayEntry.Handle()] = &modifiedEntry{handle: overlayEntry.Handle()}

	overlayCandidate := &candidate{handle: overlayEntry.Handle(), fromOverlay: true}
	s.rejectCandidate(overlayCandidate)
	require.True(t, s.isFailed(overlayEntry.Handle()), "overlay-sourced rejection must be blacklisted")
	_, stillInOverlay := s.overlay.get(overlayEntry.Handle())
	require.False(t, stillInOverlay)
}

// TestAdmitPackageRefusesContractCallWhenContractsInactive covers the
// defensive guard against node/chainview.RefChain.IsContractForkActive
// reporting false for a pass whose session never installed a proof
// transaction: a contract-call entry reaching admitPackage must be
// refused rather than dereference a nil proof transaction.
func TestAdmitPackageRefusesContractCallWhenContractsInactive(t *testing.T) {
	pool := mempool.NewTxPool()
	tx := newTestTx(0x12, 10_000)
	entry := newTestEntry(tx, 1000, true)
	pool.AddEntry(entry, nil)

	s := newTestSession(t, pool)
	require.Nil(t, s.proofTx)

	err := s.admitPackage([]mempool.Handle{entry.Handle()})
	require.ErrorIs(t, err, ErrContractRefused)
}
