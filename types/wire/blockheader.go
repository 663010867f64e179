// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/sbtc-core/sbtcd/types/chainhash"
)

// BlockHeaderLen is the number of bytes in a serialized block header,
// excluding the transaction count that follows it in MsgBlock.
const BlockHeaderLen = 80

// BlockHeader defines information about a block and is used in the bitcoin
// block (MsgBlock) message.
//
// Unlike the teacher's dual beacon/shard BlockHeader interface, this is a
// plain struct: the assembler targets a single classic chain, not a
// merge-mined shard topology.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32
}

// BlockHash computes the block identifier hash for the block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(BlockHeaderLen)
	_ = h.Serialize(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Serialize encodes the block header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	sec := uint32(h.Timestamp.Unix())
	return writeElements(w, h.Version, &h.PrevBlock, &h.MerkleRoot, sec, h.Bits, h.Nonce)
}

// Deserialize decodes a block header from r.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	var sec uint32
	if err := readElements(r, &h.Version, &h.PrevBlock, &h.MerkleRoot, &sec, &h.Bits, &h.Nonce); err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(sec), 0)
	return nil
}

// NewBlockHeader returns a new BlockHeader using the provided fields.
func NewBlockHeader(version int32, prevBlock, merkleRoot *chainhash.Hash, bits, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevBlock,
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}
