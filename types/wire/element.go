// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
)

// writeElements is a convenience wrapper around binary.Write that writes
// each element to w in little endian order, mirroring the teacher's
// WriteElements helper without the full type-switch ReadElement supports
// since this repository never deserializes messages off the wire.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, e := range elements {
		if err := binary.Write(w, binary.LittleEndian, e); err != nil {
			return err
		}
	}
	return nil
}

func readElements(r io.Reader, elements ...interface{}) error {
	for _, e := range elements {
		if err := binary.Read(r, binary.LittleEndian, e); err != nil {
			return err
		}
	}
	return nil
}
