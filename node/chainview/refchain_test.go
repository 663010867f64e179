// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/types/wire"
)

func TestRefChainContractForkActivatesAtConfiguredHeight(t *testing.T) {
	c := NewRefChain()
	require.False(t, c.IsContractForkActive(c.ParamsVal.SBTCContractForkHeight-1))
	require.True(t, c.IsContractForkActive(c.ParamsVal.SBTCContractForkHeight))
	require.True(t, c.IsContractForkActive(c.ParamsVal.SBTCContractForkHeight+1))
}

func TestRefChainTestBlockValidityHonorsForceInvalid(t *testing.T) {
	c := NewRefChain()
	block := wire.NewMsgBlock(&wire.BlockHeader{})

	require.NoError(t, c.TestBlockValidity(block, c.Tip(), false, false))

	c.ForceInvalid = true
	require.Error(t, c.TestBlockValidity(block, c.Tip(), false, false))
}

func TestRefChainClocksReturnConfiguredValues(t *testing.T) {
	c := NewRefChain()
	c.MedianTime = time.Unix(500, 0)
	c.Now = time.Unix(600, 0)

	require.Equal(t, c.MedianTime, c.MedianTimePast(c.Tip()))
	require.Equal(t, c.Now, c.AdjustedTime())
}

func TestRefChainCalcNextRequiredDifficultyReturnsNonzeroBits(t *testing.T) {
	c := NewRefChain()
	bits, err := c.CalcNextRequiredDifficulty(c.Tip(), c.Tip().Timestamp().Add(time.Second))
	require.NoError(t, err)
	require.NotZero(t, bits)
}
