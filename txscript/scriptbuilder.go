// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"
)

// MaxScriptSize is the maximum allowed length of a raw script.
const MaxScriptSize = 10000

// ErrScriptTooLong is returned from ScriptBuilder methods when the
// resulting script would exceed MaxScriptSize.
var ErrScriptTooLong = errors.New("script would exceed maximum allowed size")

// ScriptBuilder provides a facility for building custom scripts, following
// the teacher's builder-pattern idiom (each method appends and returns the
// receiver so calls can be chained).
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new instance of a script builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{script: make([]byte, 0, 16)}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if len(b.script)+1 > MaxScriptSize {
		b.err = ErrScriptTooLong
		return b
	}
	b.script = append(b.script, op)
	return b
}

// AddData pushes the passed byte slice to the end of the script, choosing
// the shortest valid push opcode for its length.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	dataLen := len(data)
	var extra int
	switch {
	case dataLen < OP_PUSHDATA1:
		extra = 1
	case dataLen <= 0xff:
		extra = 2
	case dataLen <= 0xffff:
		extra = 3
	default:
		extra = 5
	}
	if len(b.script)+extra+dataLen > MaxScriptSize {
		b.err = ErrScriptTooLong
		return b
	}

	switch {
	case dataLen == 0:
		b.script = append(b.script, OP_0)
	case dataLen < OP_PUSHDATA1:
		b.script = append(b.script, byte(dataLen))
	case dataLen <= 0xff:
		b.script = append(b.script, OP_PUSHDATA1, byte(dataLen))
	case dataLen <= 0xffff:
		b.script = append(b.script, OP_PUSHDATA2, byte(dataLen), byte(dataLen>>8))
	default:
		b.script = append(b.script, OP_PUSHDATA4,
			byte(dataLen), byte(dataLen>>8), byte(dataLen>>16), byte(dataLen>>24))
	}
	b.script = append(b.script, data...)
	return b
}

// AddInt64 pushes the passed integer, using a minimal-opcode encoding for
// small values as OP_0/OP_1NEGATE/OP_1-OP_16.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if val == 0 {
		return b.AddOp(OP_0)
	}
	if val == -1 || (val >= 1 && val <= 16) {
		return b.AddOp(byte((OP_1 - 1) + val))
	}
	return b.AddData(scriptNum(val).Bytes())
}

// Script returns the currently built script, or the error encountered while
// building it.
func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.script, nil
}

// scriptNum is a minimal little-endian-with-sign-byte integer encoding, the
// form bitcoin scripts use for numeric pushes.
type scriptNum int64

func (n scriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	m := n
	if isNegative {
		m = -m
	}

	var result []byte
	for m > 0 {
		result = append(result, byte(m&0xff))
		m >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if isNegative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}
