// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"time"

	"github.com/sbtc-core/sbtcd/node/mempool"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// maxConsecutiveFailures bounds the near-full heuristic (spec.md §4.3
// step 5): once more than this many candidates in a row fail the fit check while the
// block is already close to its weight ceiling, the pass gives up early
// rather than exhausting the whole mempool on certain-to-fail packages.
const maxConsecutiveFailures = 1000

// session is the mutable state of one selection-engine pass: the merge
// walk's two streams (mempool iterator and overlay), the included/failed
// sets, and the block/fees/sigops arrays under construction. It is owned
// entirely by BlkTmplGenerator.CreateNewBlock for the lifetime of a single
// assembly pass and never escapes it.
type session struct {
	gen  *BlkTmplGenerator
	view mempool.View

	overlay  *overlay
	included map[mempool.Handle]struct{}
	failed   map[mempool.Handle]struct{}

	resources *resourceAccountant

	block      *wire.MsgBlock
	fees       []int64
	sigOpCosts []int64

	height         int32
	lockTimeCutoff time.Time
	includeWitness bool

	consecutiveFailures int

	// proofIndex is the index of the proof transaction within block, or
	// -1 when the contract fork is not active for this pass.
	proofIndex int
	proofTx    *wire.MsgTx
	bce        *bceResult

	mIter  mempool.Iterator
	peeked *mempool.Handle
}

func newSession(gen *BlkTmplGenerator, view mempool.View, resources *resourceAccountant, block *wire.MsgBlock) *session {
	return &session{
		gen:        gen,
		view:       view,
		overlay:    newOverlay(),
		included:   make(map[mempool.Handle]struct{}),
		failed:     make(map[mempool.Handle]struct{}),
		resources:  resources,
		block:      block,
		proofIndex: -1,
		bce:        newBceResult(),
		mIter:      view.ByAncestorScore(),
	}
}

// markIncluded folds handles into the included set. It does not touch the
// overlay; run calls overlay.propagate once a whole package is admitted.
// The coinbase and proof placeholders have no mempool entry, but
// CreateNewBlock marks their transaction hashes here too.
func (s *session) markIncluded(handles ...mempool.Handle) {
	for _, h := range handles {
		s.included[h] = struct{}{}
	}
}

func (s *session) isIncluded(h mempool.Handle) bool {
	_, ok := s.included[h]
	return ok
}

func (s *session) isFailed(h mempool.Handle) bool {
	_, ok := s.failed[h]
	return ok
}

// skipMempool reports whether the mempool iterator should pass over h:
// already included, shadowed by an overlay entry, or previously failed
// (spec.md §4.3 step 1).
func (s *session) skipMempool(h mempool.Handle) bool {
	if s.isIncluded(h) || s.isFailed(h) {
		return true
	}
	_, inOverlay := s.overlay.get(h)
	return inOverlay
}

// skipOverlay reports whether the overlay's own best-candidate scan should
// pass over h: an overlay entry is never skipped for being "in the
// overlay" (it is the overlay), only for already being included or failed.
func (s *session) skipOverlay(h mempool.Handle) bool {
	return s.isIncluded(h) || s.isFailed(h)
}

// peekMempool returns the next mempool candidate that is not shadowed,
// advancing past (and permanently discarding) any that are, without
// consuming the returned candidate itself — a second peek returns the same
// handle until consumeMempool is called.
func (s *session) peekMempool() *mempool.Handle {
	if s.peeked != nil {
		return s.peeked
	}
	for {
		h, ok := s.mIter.Next()
		if !ok {
			return nil
		}
		if s.skipMempool(h) {
			continue
		}
		s.peeked = &h
		return s.peeked
	}
}

func (s *session) consumeMempool() {
	s.peeked = nil
}

// candidate bundles a chosen entry's handle with the effective
// (size, fees, sigops) the floor and fit checks test against, plus which
// stream it was drawn from.
type candidate struct {
	handle       mempool.Handle
	size         int64
	fees         int64
	sigOpsCost   int64
	fromOverlay  bool
}

// choose implements spec.md §4.3 step 2: the higher-scoring of the current
// mempool candidate and the best overlay candidate, or nil if neither
// stream has one left.
func (s *session) choose() *candidate {
	mHandle := s.peekMempool()
	oEntry := s.overlay.best(s.skipOverlay)

	switch {
	case mHandle == nil && oEntry == nil:
		return nil
	case oEntry == nil:
		entry, ok := s.view.Get(*mHandle)
		if !ok {
			s.consumeMempool()
			return s.choose()
		}
		return &candidate{handle: *mHandle, size: entry.SizeWithAncestors, fees: entry.ModFeesWithAncestors, sigOpsCost: entry.SigOpCostWithAncestors}
	case mHandle == nil:
		return &candidate{handle: oEntry.handle, size: oEntry.sizeWithAncestors, fees: oEntry.modFeesWithAncestors, sigOpsCost: oEntry.sigOpCostWithAncestors, fromOverlay: true}
	default:
		mEntry, ok := s.view.Get(*mHandle)
		if !ok {
			s.consumeMempool()
			return s.choose()
		}
		if mempool.CompareAncestorFeerate(oEntry.modFeesWithAncestors, oEntry.sizeWithAncestors, mEntry.ModFeesWithAncestors, mEntry.SizeWithAncestors) {
			return &candidate{handle: oEntry.handle, size: oEntry.sizeWithAncestors, fees: oEntry.modFeesWithAncestors, sigOpsCost: oEntry.sigOpCostWithAncestors, fromOverlay: true}
		}
		return &candidate{handle: *mHandle, size: mEntry.SizeWithAncestors, fees: mEntry.ModFeesWithAncestors, sigOpsCost: mEntry.SigOpCostWithAncestors}
	}
}

// rejectCandidate implements the failure half of spec.md §4.3 steps 5/7/9:
// an overlay-sourced candidate is erased from the overlay and permanently
// blacklisted, since propagate will never re-add it on its own; a
// mempool-stream candidate is merely passed over for this pass, staying
// eligible to reappear later via propagate once its ancestors shrink the
// package.
func (s *session) rejectCandidate(c *candidate) {
	if c.fromOverlay {
		s.overlay.erase(c.handle)
		s.failed[c.handle] = struct{}{}
	} else {
		s.consumeMempool()
	}
}

// run drives the main loop (spec.md §4.3) to completion: a floor crossing
// or an exhausted merge walk both end the pass cleanly; only an invariant
// breach returns an error.
func (s *session) run() error {
	for {
		c := s.choose()
		if c == nil {
			return nil
		}

		if s.isIncluded(c.handle) {
			return ErrInvariantBreach
		}

		if c.fees < s.gen.policy.blockMinFeeRate(c.size) {
			// Floor-crossed: both streams are score-ordered, so no
			// remaining candidate can do better. Stop the pass.
			return nil
		}

		if !s.resources.fits(c.size, c.sigOpsCost) {
			s.rejectCandidate(c)
			s.consecutiveFailures++
			if s.consecutiveFailures > maxConsecutiveFailures &&
				s.resources.blockWeight > s.resources.nBlockMaxWeight-CoinbaseReservedWeight {
				return nil
			}
			continue
		}

		if !c.fromOverlay {
			s.consumeMempool()
		}

		ancestors := s.view.Ancestors(c.handle)
		pkg := make([]mempool.Handle, 0, len(ancestors)+1)
		for _, a := range ancestors {
			if !s.isIncluded(a) {
				pkg = append(pkg, a)
			}
		}
		pkg = append(pkg, c.handle)

		if !s.allFinal(pkg) {
			if c.fromOverlay {
				s.overlay.erase(c.handle)
				s.failed[c.handle] = struct{}{}
			}
			continue
		}

		s.consecutiveFailures = 0
		s.sortByAncestorCount(pkg)

		if err := s.admitPackage(pkg); err != nil {
			if c.fromOverlay {
				s.overlay.erase(c.handle)
				s.failed[c.handle] = struct{}{}
			}
			continue
		}

		s.overlay.propagate(pkg, s.view)
	}
}

// allFinal implements spec.md §4.3 step 7: every member of pkg must be
// final at (s.height, s.lockTimeCutoff), and must carry no witness data
// unless witness inclusion is enabled for this pass.
func (s *session) allFinal(pkg []mempool.Handle) bool {
	for _, h := range pkg {
		entry, ok := s.view.Get(h)
		if !ok {
			continue
		}
		tx := entry.Tx.MsgTx()
		if !IsFinalTx(tx, s.height, s.lockTimeCutoff) {
			return false
		}
		if !s.includeWitness && tx.HasWitness() {
			return false
		}
	}
	return true
}

// sortByAncestorCount orders pkg so ancestors always precede their
// descendants (spec.md §4.3 step 8), using each handle's total unconfirmed
// ancestor count as the sort key — monotone along every DAG edge, so any
// stable sort on it yields a valid topological order.
func (s *session) sortByAncestorCount(pkg []mempool.Handle) {
	counts := make(map[mempool.Handle]int, len(pkg))
	for _, h := range pkg {
		counts[h] = len(s.view.Ancestors(h))
	}
	insertionSortByCount(pkg, counts)
}

func insertionSortByCount(pkg []mempool.Handle, counts map[mempool.Handle]int) {
	for i := 1; i < len(pkg); i++ {
		for j := i; j > 0 && counts[pkg[j-1]] > counts[pkg[j]]; j-- {
			pkg[j-1], pkg[j] = pkg[j], pkg[j-1]
		}
	}
}

// admitPackage implements spec.md §4.3 step 9: route every member of pkg,
// in topological order, to either contract admission or AddToBlock. A
// failure partway through aborts the whole package (when the candidate came
// from the overlay, the caller erases it and marks its handle failed; either
// way it moves on); entries already
// folded into the block by earlier members of this same package are left
// in place, matching the source's package-level atomicity at the selection
// layer while the underlying engine/resource state simply reflects the
// partial work already committed.
func (s *session) admitPackage(pkg []mempool.Handle) error {
	for _, h := range pkg {
		entry, ok := s.view.Get(h)
		if !ok {
			continue
		}
		if entry.IsContractCall {
			if s.proofTx == nil {
				// Contracts are not active for this pass; a contract-call
				// entry cannot be admitted without a proof transaction to
				// fold its refunds into.
				return ErrContractRefused
			}
			if err := s.gen.admitContract(s, entry); err != nil {
				return err
			}
			continue
		}
		s.addToBlock(entry)
	}
	return nil
}
