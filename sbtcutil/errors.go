// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbtcutil

import (
	"encoding/hex"
	"errors"
)

var errInvalidHashLen = errors.New("invalid hash length, expected 20 bytes")

func hexString(b []byte) string { return hex.EncodeToString(b) }
