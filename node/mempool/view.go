// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

// Iterator walks mempool entries in descending ancestor-score order. The
// selection engine (node/mining) owns skip logic over entries already in
// the included, overlay, or failed sets — the iterator itself only ever
// advances.
type Iterator interface {
	// Next returns the next handle, or ok=false once exhausted.
	Next() (handle Handle, ok bool)
}

// View is the narrow mempool collaborator surface spec.md §6 describes:
// a transaction-handle type, an index sorted by ancestor-score, ancestor
// and descendant oracles, and per-entry accessors. It is implemented by
// whatever mempool admission/indexing component owns the live transaction
// pool; TxPool below is an in-memory reference implementation used by this
// repository's own tests.
type View interface {
	// Get returns the entry for handle, and whether it exists.
	Get(handle Handle) (*TxEntry, bool)

	// Ancestors returns every unconfirmed ancestor of handle, with no
	// bound on set size ("unlimited bounds" per spec.md §4.3 step 6).
	Ancestors(handle Handle) []Handle

	// Descendants returns every unconfirmed descendant of handle.
	Descendants(handle Handle) []Handle

	// ByAncestorScore returns a fresh iterator over the mempool ordered
	// by descending ancestor feerate.
	ByAncestorScore() Iterator
}
