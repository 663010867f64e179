// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/pkg/errors"

// Only two error paths ever leave the selection loop: a validity-test
// rejection from the chain collaborator, and an invariant breach in the
// assembler's own bookkeeping. Every other condition spec.md §7's taxonomy
// names — budget exhaustion, finality violation, contract refusal, a
// crossed fee floor — is absorbed inside the loop.

// ErrValidityFailure wraps a rejection from Chain.TestBlockValidity. It is
// fatal: assembly aborts and returns this error to the caller.
var ErrValidityFailure = errors.New("assembled block failed validity test")

// ErrInvariantBreach signals that the selection loop chose a handle already
// present in the included set, meaning the overlay or failed set has gone
// out of sync with it. This should never happen; it exists as a fatal
// assertion rather than a silent skip so the corruption cannot hide.
var ErrInvariantBreach = errors.New("selection engine chose an already-included handle")

func validityFailure(reason error) error {
	return errors.Wrap(reason, ErrValidityFailure.Error())
}
