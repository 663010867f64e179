// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainview

import (
	"time"

	"github.com/sbtc-core/sbtcd/types/chaincfg"
	"github.com/sbtc-core/sbtcd/types/chainhash"
	"github.com/sbtc-core/sbtcd/types/pow"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// RefTip is a plain-struct Tip used by RefChain and by this repository's
// own tests.
type RefTip struct {
	HeightVal    int32
	HashVal      chainhash.Hash
	BitsVal      uint32
	TimestampVal time.Time
}

func (t RefTip) Height() int32          { return t.HeightVal }
func (t RefTip) Hash() chainhash.Hash   { return t.HashVal }
func (t RefTip) Bits() uint32           { return t.BitsVal }
func (t RefTip) Timestamp() time.Time   { return t.TimestampVal }

// RefChain is an in-memory Chain used by node/mining's tests: a fixed tip,
// a configurable contract-fork height, and a validity test that always
// passes unless ForceInvalid is set.
type RefChain struct {
	TipVal          RefTip
	ParamsVal       *chaincfg.Params
	WitnessEnabled  bool
	MedianTime      time.Time
	Now             time.Time
	ForceInvalid    bool
}

// NewRefChain returns a RefChain seeded with the regression-test network
// parameters and a tip at height 0. RegressionNet activates the contract
// fork at height 0, so IsContractForkActive(0) must be true.
func NewRefChain() *RefChain {
	params := chaincfg.RegressionNetParams
	return &RefChain{
		TipVal: RefTip{
			HeightVal:    0,
			BitsVal:      params.PowParams.PowLimitBits,
			TimestampVal: time.Unix(0, 0),
		},
		ParamsVal:      &params,
		WitnessEnabled: true,
		MedianTime:     time.Unix(0, 0),
		Now:            time.Unix(1, 0),
	}
}

func (c *RefChain) Tip() Tip                { return c.TipVal }
func (c *RefChain) Params() *chaincfg.Params { return c.ParamsVal }

func (c *RefChain) MedianTimePast(Tip) time.Time { return c.MedianTime }
func (c *RefChain) AdjustedTime() time.Time      { return c.Now }

func (c *RefChain) IsWitnessEnabled(Tip) bool { return c.WitnessEnabled }

// IsContractForkActive reports whether height has reached the contract
// fork, inclusive of the activation height itself.
func (c *RefChain) IsContractForkActive(height int32) bool {
	return height >= c.ParamsVal.SBTCContractForkHeight
}

func (c *RefChain) CalcNextRequiredDifficulty(tip Tip, newestTimestamp time.Time) (uint32, error) {
	bits := pow.CalcNextRequiredDifficulty(c.ParamsVal, tip.Timestamp(), newestTimestamp, tip.Bits())
	return bits, nil
}

func (c *RefChain) TestBlockValidity(block *wire.MsgBlock, tip Tip, checkPoW, checkMerkleRoot bool) error {
	if c.ForceInvalid {
		return errRefChainInvalid
	}
	return nil
}

var errRefChainInvalid = refChainError("ref chain forced validity failure")

type refChainError string

func (e refChainError) Error() string { return string(e) }
