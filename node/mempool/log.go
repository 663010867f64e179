// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/rs/zerolog"

	"github.com/sbtc-core/sbtcd/corelog"
)

var log zerolog.Logger

func init() { DisableLog() }

// DisableLog disables all library log output.
func DisableLog() { log = corelog.Disabled }

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger zerolog.Logger) { log = logger }
