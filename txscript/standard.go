// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/sbtc-core/sbtcd/sbtcutil"
)

// MaxDataCarrierSize is the maximum number of bytes allowed in pushed data
// to be considered a nulldata transaction.
const MaxDataCarrierSize = 80

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment the assembler recognizes. This is a trimmed
// version of the teacher's enum: it drops the EAD/HTLC/multisig-lock
// extensions that only the JaxNet shard chains use, since the template
// builder this package serves only ever produces or scores classic
// single-chain outputs (coinbase payout, proof-tx refund, witness
// commitment).
const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
	ScriptHashTy
	MultiSigTy
	NullDataTy
)

var scriptClassToName = [...]string{
	NonStandardTy: "nonstandard",
	PubKeyTy:      "pubkey",
	PubKeyHashTy:  "pubkeyhash",
	ScriptHashTy:  "scripthash",
	MultiSigTy:    "multisig",
	NullDataTy:    "nulldata",
}

// String implements the Stringer interface by returning the name of the
// enum script class. If the enum is invalid then "invalid" is returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "invalid"
	}
	return scriptClassToName[t]
}

// isPubKeyHash reports whether script is a pay-to-pubkey-hash script:
// OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG.
func isPubKeyHash(script []byte) bool {
	return len(script) == 25 &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG
}

// isScriptHash reports whether script is a pay-to-script-hash script:
// OP_HASH160 <20-byte hash> OP_EQUAL.
func isScriptHash(script []byte) bool {
	return len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == OP_DATA_20 &&
		script[22] == OP_EQUAL
}

// isNullData reports whether script is a null data transaction: an
// OP_RETURN alone, or OP_RETURN followed by a single push of at most
// MaxDataCarrierSize bytes.
func isNullData(script []byte) bool {
	if len(script) == 0 || script[0] != OP_RETURN {
		return false
	}
	if len(script) == 1 {
		return true
	}
	if script[1] == OP_PUSHDATA1 {
		pushLen := len(script) - 3
		return pushLen >= OP_PUSHDATA1 && pushLen <= MaxDataCarrierSize && int(script[2]) == pushLen
	}
	pushLen := len(script) - 2
	return pushLen >= 0 && pushLen < OP_PUSHDATA1 && pushLen <= MaxDataCarrierSize && script[1] == byte(pushLen)
}

// GetScriptClass returns the class of the script passed. NonStandardTy is
// returned when the script does not match any recognized form.
func GetScriptClass(script []byte) ScriptClass {
	switch {
	case isPubKeyHash(script):
		return PubKeyHashTy
	case isScriptHash(script):
		return ScriptHashTy
	case isNullData(script):
		return NullDataTy
	default:
		return NonStandardTy
	}
}

// payToPubKeyHashScript creates a script paying to a 20-byte pubkey hash.
func payToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	return NewScriptBuilder().
		AddOp(OP_DUP).
		AddOp(OP_HASH160).
		AddData(pubKeyHash).
		AddOp(OP_EQUALVERIFY).
		AddOp(OP_CHECKSIG).
		Script()
}

// payToScriptHashScript creates a script paying to a 20-byte script hash.
func payToScriptHashScript(scriptHash []byte) ([]byte, error) {
	return NewScriptBuilder().
		AddOp(OP_HASH160).
		AddData(scriptHash).
		AddOp(OP_EQUAL).
		Script()
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr sbtcutil.Address) ([]byte, error) {
	switch a := addr.(type) {
	case *sbtcutil.AddressPubKeyHash:
		if a == nil {
			return nil, fmt.Errorf("unable to generate payment script for nil address")
		}
		return payToPubKeyHashScript(a.ScriptAddress())
	case *sbtcutil.AddressScriptHash:
		if a == nil {
			return nil, fmt.Errorf("unable to generate payment script for nil address")
		}
		return payToScriptHashScript(a.ScriptAddress())
	}
	return nil, fmt.Errorf("unable to generate payment script for unsupported address type %T", addr)
}

// NullDataScript creates a provably-prunable script containing an OP_RETURN
// commitment of data, which must be at most MaxDataCarrierSize bytes.
func NullDataScript(data []byte) ([]byte, error) {
	if len(data) > MaxDataCarrierSize {
		return nil, fmt.Errorf("data size %d is larger than max allowed size %d", len(data), MaxDataCarrierSize)
	}
	return NewScriptBuilder().AddOp(OP_RETURN).AddData(data).Script()
}

// IsWitnessProgram reports whether script is a witness program of any
// version: a version opcode (OP_0 or OP_1-OP_16) followed by a single
// direct data push between 2 and 40 bytes.
func IsWitnessProgram(script []byte) bool {
	if len(script) < 4 || len(script) > 42 {
		return false
	}
	version := script[0]
	if version != OP_0 && (version < OP_1 || version > OP_16) {
		return false
	}
	dataLen := int(script[1])
	return dataLen >= 2 && dataLen <= 40 && len(script) == 2+dataLen
}
