// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

func leUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func leUint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func putLEUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func putLEUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
