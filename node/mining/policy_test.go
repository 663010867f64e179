// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPolicyYAMLRoundTrip(t *testing.T) {
	want := Policy{
		BlockMaxWeight:          2_500_000,
		BlockMinTxFee:           2000,
		BlockVersion:            0x20000004,
		StakerMinTxGasPrice:     5,
		StakerSoftBlockGasLimit: 30_000_000,
		StakerMaxTxGasLimit:     1_000_000,
		PrintPriority:           true,
	}

	out, err := yaml.Marshal(want)
	require.NoError(t, err)

	var got Policy
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Equal(t, want, got)
}

func TestPolicyClampedBlockMaxWeightBounds(t *testing.T) {
	p := DefaultPolicy()

	p.BlockMaxWeight = 1
	require.Equal(t, int64(blockMaxWeightMin), p.clampedBlockMaxWeight())

	p.BlockMaxWeight = blockMaxWeightMax + 1_000_000
	require.Equal(t, int64(blockMaxWeightMax), p.clampedBlockMaxWeight())

	p.BlockMaxWeight = DefaultBlockMaxWeight
	require.Equal(t, int64(DefaultBlockMaxWeight), p.clampedBlockMaxWeight())
}
