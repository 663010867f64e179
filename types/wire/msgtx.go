// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/sbtc-core/sbtcd/types/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 2

	// MaxTxInSequenceNum is the maximum sequence number an input can have
	// that does not signal that it opts out of replace-by-fee or relative
	// locktime enforcement.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// witnessMarkerFlag is the flag byte that follows the 0x00 marker to
	// flag a transaction as carrying witness data, following segwit's
	// serialization convention.
	witnessMarkerFlag = 0x01

	// maxWitnessItemsPerInput bounds readVarBytes allocations when
	// decoding a witness stack.
	maxWitnessItemsPerInput = 1_000_000
)

// TxOut defines a bitcoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new bitcoin transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Witness          TxWitness
	Sequence         uint32
}

// NewTxIn returns a new bitcoin transaction input with the provided
// previous outpoint and signature script.
func NewTxIn(prevOut *OutPoint, signatureScript []byte, witness [][]byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Witness:          witness,
		Sequence:         MaxTxInSequenceNum,
	}
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input, excluding any witness data.
func (t *TxIn) SerializeSize() int {
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) + len(t.SignatureScript)
}

// TxWitness defines the witness for a TxIn. A witness is to be interpreted
// as a slice of byte slices, or a stack with one or many elements.
type TxWitness [][]byte

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input's witness.
func (w TxWitness) SerializeSize() int {
	n := VarIntSerializeSize(uint64(len(w)))
	for _, item := range w {
		n += VarIntSerializeSize(uint64(len(item))) + len(item)
	}
	return n
}

// MsgTx implements a bitcoin-family transaction message.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new bitcoin transaction message.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// HasWitness returns true if any of the transaction's inputs carry witness
// data.
func (msg *MsgTx) HasWitness() bool {
	for _, txIn := range msg.TxIn {
		if len(txIn.Witness) > 0 {
			return true
		}
	}
	return false
}

// IsCoinBase determines whether the transaction is a coinbase transaction:
// a single input whose previous outpoint has a zero hash and max index.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == MaxPrevOutIndex && prevOut.Hash == chainhash.Hash{}
}

// Copy creates a deep copy of the transaction so the original is left
// untouched when the copy is mutated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}
	for _, oldTxIn := range msg.TxIn {
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			Sequence:         oldTxIn.Sequence,
		}
		if oldTxIn.SignatureScript != nil {
			newTxIn.SignatureScript = append([]byte(nil), oldTxIn.SignatureScript...)
		}
		if len(oldTxIn.Witness) > 0 {
			newTxIn.Witness = make(TxWitness, len(oldTxIn.Witness))
			for i, w := range oldTxIn.Witness {
				newTxIn.Witness[i] = append([]byte(nil), w...)
			}
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}
	for _, oldTxOut := range msg.TxOut {
		newTxOut := TxOut{
			Value:    oldTxOut.Value,
			PkScript: append([]byte(nil), oldTxOut.PkScript...),
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}
	return &newTx
}

// TxHash generates the double sha256 hash of the serialized transaction,
// excluding any witness data, identifying it as the canonical txid.
func (msg *MsgTx) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(msg.baseSize())
	_ = msg.serializeNoWitness(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// WitnessHash generates the double sha256 hash of the serialized
// transaction including any witness data. For transactions without
// witness data, this is identical to TxHash.
func (msg *MsgTx) WitnessHash() chainhash.Hash {
	if !msg.HasWitness() {
		return msg.TxHash()
	}
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	_ = msg.Serialize(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction, including witness data when present.
func (msg *MsgTx) SerializeSize() int {
	n := 8 // version + locktime
	if msg.HasWitness() {
		n += 2 // marker + flag
	}
	n += VarIntSerializeSize(uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		n += ti.SerializeSize()
		if msg.HasWitness() {
			n += ti.Witness.SerializeSize()
		}
	}
	n += VarIntSerializeSize(uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		n += to.SerializeSize()
	}
	return n
}

func (msg *MsgTx) baseSize() int {
	n := 8
	n += VarIntSerializeSize(uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		n += ti.SerializeSize()
	}
	n += VarIntSerializeSize(uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		n += to.SerializeSize()
	}
	return n
}

// BaseSize returns the serialized size of the transaction excluding any
// witness data, the quantity block-weight accounting scales by three.
func (msg *MsgTx) BaseSize() int { return msg.baseSize() }

// Weight computes the transaction weight as defined by BIP 141:
// 3*base_size + total_size.
func (msg *MsgTx) Weight() int64 {
	return int64(3*msg.baseSize() + msg.SerializeSize())
}

// Serialize encodes the transaction to w, including witness data when
// present, following the segwit wire format.
func (msg *MsgTx) Serialize(w io.Writer) error {
	if msg.HasWitness() {
		return msg.serializeWitness(w)
	}
	return msg.serializeNoWitness(w)
}

func (msg *MsgTx) serializeNoWitness(w io.Writer) error {
	if err := writeElements(w, uint32(msg.Version)); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}
	return writeElements(w, msg.LockTime)
}

func (msg *MsgTx) serializeWitness(w io.Writer) error {
	if err := writeElements(w, uint32(msg.Version)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0x00, witnessMarkerFlag}); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}
	for _, ti := range msg.TxIn {
		if err := writeTxWitness(w, ti.Witness); err != nil {
			return err
		}
	}
	return writeElements(w, msg.LockTime)
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	if err := writeOutPoint(w, &ti.PreviousOutPoint); err != nil {
		return err
	}
	if err := writeVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	return writeElements(w, ti.Sequence)
}

func writeTxOut(w io.Writer, to *TxOut) error {
	if err := writeElements(w, uint64(to.Value)); err != nil {
		return err
	}
	return writeVarBytes(w, to.PkScript)
}

func writeTxWitness(w io.Writer, wit TxWitness) error {
	if err := WriteVarInt(w, uint64(len(wit))); err != nil {
		return err
	}
	for _, item := range wit {
		if err := writeVarBytes(w, item); err != nil {
			return err
		}
	}
	return nil
}
