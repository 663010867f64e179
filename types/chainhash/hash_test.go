// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStringIsByteReversed(t *testing.T) {
	var h Hash
	h[0] = 0xaa
	h[HashSize-1] = 0xbb

	s := h.String()
	require.Equal(t, "bb", s[:2])
	require.Equal(t, "aa", s[len(s)-2:])
}

func TestHashSetBytesRejectsWrongLength(t *testing.T) {
	var h Hash
	require.Error(t, h.SetBytes([]byte{0x01, 0x02}))
	require.NoError(t, h.SetBytes(make([]byte, HashSize)))
}

func TestNewHashFromStrRoundTripsThroughString(t *testing.T) {
	want := HashH([]byte("round-trip"))
	got, err := NewHashFromStr(want.String())
	require.NoError(t, err)
	require.Equal(t, want, *got)
}

func TestHashIsEqualHandlesNils(t *testing.T) {
	a := HashH([]byte("a"))
	b := HashH([]byte("a"))
	var nilHash *Hash

	require.True(t, a.IsEqual(&b))
	require.False(t, a.IsEqual(nilHash))
	require.True(t, nilHash.IsEqual(nil))
}

func TestDoubleHashHIsHashOfHash(t *testing.T) {
	data := []byte("double-hash-me")
	first := HashH(data)
	want := HashH(first[:])
	require.Equal(t, want, DoubleHashH(data))
}
