// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// CalcBlockSubsidy returns the subsidy amount, in base units, for the
// block at the provided height, halving every SubsidyHalvingInterval
// blocks until it reaches zero.
func (p *Params) CalcBlockSubsidy(height int32) int64 {
	if p.SubsidyHalvingInterval == 0 {
		return baseSubsidy
	}
	halvings := height / p.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return baseSubsidy >> uint(halvings)
}

// baseSubsidy is the starting block subsidy, in base units, before any
// halving has occurred: 50 coins of 1e8 base units each.
const baseSubsidy = 50 * 1e8
