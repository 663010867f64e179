// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"sort"
)

// TxPool is an in-memory reference implementation of View, grounded on the
// shape of a multi-indexed ancestor-aware mempool the way copernicus's
// txMemPoolModifiedEntry and decred-dcrd's TxMiningView model one, trimmed
// to exactly the surface spec.md §6 names. It is not meant to be the
// production mempool (admission, eviction, and relay policy are explicit
// Non-goals) — only a faithful enough store to drive this repository's own
// selection-engine tests.
type TxPool struct {
	entries  map[Handle]*TxEntry
	parents  map[Handle]map[Handle]struct{}
	children map[Handle]map[Handle]struct{}
}

// NewTxPool returns an empty TxPool.
func NewTxPool() *TxPool {
	return &TxPool{
		entries:  make(map[Handle]*TxEntry),
		parents:  make(map[Handle]map[Handle]struct{}),
		children: make(map[Handle]map[Handle]struct{}),
	}
}

// AddEntry inserts entry into the pool with the given unconfirmed parent
// handles, and recomputes ancestor aggregates transitively for entry and
// every one of its descendants already present.
func (p *TxPool) AddEntry(entry *TxEntry, parentHandles []Handle) {
	h := entry.Handle()
	p.entries[h] = entry

	parentSet := make(map[Handle]struct{}, len(parentHandles))
	for _, ph := range parentHandles {
		parentSet[ph] = struct{}{}
		if p.children[ph] == nil {
			p.children[ph] = make(map[Handle]struct{})
		}
		p.children[ph][h] = struct{}{}
	}
	p.parents[h] = parentSet

	p.recomputeAncestorAggregates(h)
	for _, d := range p.Descendants(h) {
		p.recomputeAncestorAggregates(d)
	}
}

// recomputeAncestorAggregates walks the full ancestor set of h and sums
// base size/fee/sigops across it and h itself into h's aggregate fields.
func (p *TxPool) recomputeAncestorAggregates(h Handle) {
	entry := p.entries[h]
	if entry == nil {
		return
	}
	ancestors := p.Ancestors(h)

	size := entry.Size
	fee := entry.ModifiedFee
	sigops := entry.SigOpCost
	for _, a := range ancestors {
		ae := p.entries[a]
		if ae == nil {
			continue
		}
		size += ae.Size
		fee += ae.ModifiedFee
		sigops += ae.SigOpCost
	}
	entry.SizeWithAncestors = size
	entry.ModFeesWithAncestors = fee
	entry.SigOpCostWithAncestors = sigops
}

// Get implements View.
func (p *TxPool) Get(handle Handle) (*TxEntry, bool) {
	e, ok := p.entries[handle]
	return e, ok
}

// Ancestors implements View, returning the transitive closure of parents.
func (p *TxPool) Ancestors(handle Handle) []Handle {
	seen := make(map[Handle]struct{})
	var result []Handle
	var walk func(Handle)
	walk = func(h Handle) {
		for parent := range p.parents[h] {
			if _, ok := seen[parent]; ok {
				continue
			}
			seen[parent] = struct{}{}
			result = append(result, parent)
			walk(parent)
		}
	}
	walk(handle)
	return result
}

// Descendants implements View, returning the transitive closure of
// children.
func (p *TxPool) Descendants(handle Handle) []Handle {
	seen := make(map[Handle]struct{})
	var result []Handle
	var walk func(Handle)
	walk = func(h Handle) {
		for child := range p.children[h] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			result = append(result, child)
			walk(child)
		}
	}
	walk(handle)
	return result
}

// ByAncestorScore implements View.
func (p *TxPool) ByAncestorScore() Iterator {
	handles := make([]Handle, 0, len(p.entries))
	for h := range p.entries {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		a, b := p.entries[handles[i]], p.entries[handles[j]]
		if CompareAncestorFeerate(a.ModFeesWithAncestors, a.SizeWithAncestors, b.ModFeesWithAncestors, b.SizeWithAncestors) {
			return true
		}
		if CompareAncestorFeerate(b.ModFeesWithAncestors, b.SizeWithAncestors, a.ModFeesWithAncestors, a.SizeWithAncestors) {
			return false
		}
		return handles[i].String() < handles[j].String()
	})
	return &sliceIterator{handles: handles}
}

type sliceIterator struct {
	handles []Handle
	pos     int
}

func (it *sliceIterator) Next() (Handle, bool) {
	if it.pos >= len(it.handles) {
		return Handle{}, false
	}
	h := it.handles[it.pos]
	it.pos++
	return h, true
}
