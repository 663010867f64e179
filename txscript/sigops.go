// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// GetSigOpCount provides a quick count of the number of signature
// operations in a script. This follows the conservative legacy counting
// rule the resource accountant's sigop budget (spec.md §4.1) assumes:
// every OP_CHECKSIG/OP_CHECKSIGVERIFY counts as one, data pushes are
// skipped rather than interpreted.
func GetSigOpCount(script []byte) int {
	n := 0
	for i := 0; i < len(script); {
		op := script[i]
		switch {
		case op == OP_CHECKSIG || op == OP_CHECKSIGVERIFY:
			n++
			i++
		case op >= OP_PUSHDATA1 && op <= OP_PUSHDATA4:
			skip, ok := pushDataSize(script, i)
			if !ok {
				return n
			}
			i += skip
		case op > OP_0 && op < OP_PUSHDATA1:
			i += 1 + int(op)
		default:
			i++
		}
	}
	return n
}

func pushDataSize(script []byte, i int) (int, bool) {
	switch script[i] {
	case OP_PUSHDATA1:
		if i+1 >= len(script) {
			return 0, false
		}
		return 2 + int(script[i+1]), true
	case OP_PUSHDATA2:
		if i+2 >= len(script) {
			return 0, false
		}
		return 3 + int(script[i+1]) + int(script[i+2])<<8, true
	case OP_PUSHDATA4:
		if i+4 >= len(script) {
			return 0, false
		}
		n := int(script[i+1]) | int(script[i+2])<<8 | int(script[i+3])<<16 | int(script[i+4])<<24
		return 5 + n, true
	}
	return 1, true
}
