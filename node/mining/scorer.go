// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/sbtc-core/sbtcd/node/mempool"
)

// modifiedEntry is an overlay record for a mempool transaction whose
// ancestor aggregates have gone stale because one or more of its ancestors
// are already in the block. Grounded on copernet-copernicus's
// txMemPoolModifiedEntry: a handle to the base entry plus the three
// adjusted aggregates.
type modifiedEntry struct {
	handle mempool.Handle

	sizeWithAncestors      int64
	modFeesWithAncestors   int64
	sigOpCostWithAncestors int64
}

// overlay is the package scorer's mutable index: a map keyed by mempool
// handle, conceptually also ordered by descending ancestor-score (spec.md
// §4.2). Erase-by-key is a map delete, but peek-max is an O(n) scan here
// rather than O(log n) — acceptable since an assembly pass's overlay is bounded by the
// mempool's live descendant fan-out, not by chain history.
type overlay struct {
	entries map[mempool.Handle]*modifiedEntry
}

func newOverlay() *overlay {
	return &overlay{entries: make(map[mempool.Handle]*modifiedEntry)}
}

// get returns the overlay entry for handle, if any.
func (o *overlay) get(handle mempool.Handle) (*modifiedEntry, bool) {
	e, ok := o.entries[handle]
	return e, ok
}

// erase removes handle's overlay entry, used when a candidate drawn from
// the overlay fails a resource or finality test (spec.md §4.3 step 5/7).
func (o *overlay) erase(handle mempool.Handle) {
	delete(o.entries, handle)
}

// best scans the overlay for the highest ancestor-score entry whose
// handle skip reports false, returning nil if none qualify.
func (o *overlay) best(skip func(mempool.Handle) bool) *modifiedEntry {
	var winner *modifiedEntry
	for h, e := range o.entries {
		if skip(h) {
			continue
		}
		if winner == nil || mempool.CompareAncestorFeerate(e.modFeesWithAncestors, e.sizeWithAncestors, winner.modFeesWithAncestors, winner.sizeWithAncestors) {
			winner = e
		}
	}
	return winner
}

// propagate folds the just-added set into the overlay: for every
// descendant of every added entry, it inserts a fresh modified entry
// seeded from the descendant's base aggregates if none exists yet, and
// then subtracts the added entry's own size/modFee/sigops from it
// (spec.md §4.2).
func (o *overlay) propagate(added []mempool.Handle, view mempool.View) {
	for _, a := range added {
		addedEntry, ok := view.Get(a)
		if !ok {
			continue
		}
		for _, d := range view.Descendants(a) {
			entry, exists := o.entries[d]
			if !exists {
				base, ok := view.Get(d)
				if !ok {
					continue
				}
				entry = &modifiedEntry{
					handle:                 d,
					sizeWithAncestors:      base.SizeWithAncestors,
					modFeesWithAncestors:   base.ModFeesWithAncestors,
					sigOpCostWithAncestors: base.SigOpCostWithAncestors,
				}
				o.entries[d] = entry
			}
			entry.sizeWithAncestors -= addedEntry.Size
			entry.modFeesWithAncestors -= addedEntry.ModifiedFee
			entry.sigOpCostWithAncestors -= addedEntry.SigOpCost
		}
	}
}
