// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

// CompareAncestorFeerate reports whether (feeA, sizeA)'s ancestor feerate
// is strictly greater than (feeB, sizeB)'s, comparing the two fractions
// feeA/sizeA and feeB/sizeB via cross-multiplication so no division (and
// its rounding) is needed. Both the mempool's ancestor-score index and the
// overlay's modified-entry index are ordered by this comparator.
func CompareAncestorFeerate(feeA, sizeA, feeB, sizeB int64) bool {
	return feeA*sizeB > feeB*sizeA
}
