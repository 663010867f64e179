// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbtc-core/sbtcd/node/contractvm"
	"github.com/sbtc-core/sbtcd/types/chaincfg"
)

// TestEffectiveCursorSubstitutesOnNullRootRegardlessOfHeight covers
// spec.md §8 scenario S5: assembly one block past the contract fork's
// activation height, with no contract transactions yet, must still
// produce the genesis default roots — the null cursor the engine starts
// with, not a height comparison, is what triggers the substitution.
func TestEffectiveCursorSubstitutesOnNullRootRegardlessOfHeight(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	got := effectiveCursor(params, params.SBTCContractForkHeight+1, contractvm.Cursor{})
	require.Equal(t, genesisStateRoot, got.StateRoot)
	require.Equal(t, genesisUTXORoot, got.UTXORoot)
}

func TestEffectiveCursorPassesThroughNonNullRoots(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	live := contractvm.Cursor{StateRoot: contractvm.Root{0x01}, UTXORoot: contractvm.Root{0x02}}
	got := effectiveCursor(params, params.SBTCContractForkHeight+1, live)
	require.Equal(t, live, got)
}

func TestEffectiveCursorSubstitutesWhenOnlyOneRootIsNull(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	partial := contractvm.Cursor{StateRoot: contractvm.Root{0x01}}
	got := effectiveCursor(params, params.SBTCContractForkHeight+1, partial)
	require.Equal(t, genesisStateRoot, got.StateRoot)
	require.Equal(t, genesisUTXORoot, got.UTXORoot)
}
