// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// Opcodes used by the script builder and the recognizers in standard.go.
// This is a deliberately small subset of the full bitcoin script opcode
// table: the assembler only ever builds or classifies standard output
// scripts, it never interprets arbitrary scripts.
const (
	OP_0         = 0x00
	OP_DATA_20   = 0x14
	OP_PUSHDATA1 = 0x4c
	OP_PUSHDATA2 = 0x4d
	OP_PUSHDATA4 = 0x4e
	OP_1NEGATE   = 0x4f
	OP_RESERVED  = 0x50
	OP_1         = 0x51
	OP_TRUE      = OP_1
	OP_16        = 0x60
	OP_DUP       = 0x76
	OP_EQUAL     = 0x87
	OP_EQUALVERIFY = 0x88
	OP_HASH160   = 0xa9
	OP_CHECKSIG  = 0xac
	OP_CHECKSIGVERIFY = 0xad
	OP_RETURN    = 0x6a

	// OP_VM_STATE is not a standard bitcoin opcode; it marks the
	// contract-fork proof transaction's state-commitment output so the
	// template builder's own output can be told apart from an ordinary
	// OP_RETURN data carrier (spec.md §4.5 step 5).
	OP_VM_STATE = 0xb0
)
