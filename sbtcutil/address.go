// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sbtcutil

// Address represents a destination the template builder can pay the
// coinbase to. The interface is intentionally narrow: the assembler never
// decodes or validates a human-readable address string, it only ever
// builds scripts from the already-parsed hash a caller passes to
// CreateNewBlock.
type Address interface {
	// ScriptAddress returns the raw bytes (a pubkey hash or script hash)
	// of the address to be used when building a payment script.
	ScriptAddress() []byte

	// String returns a human-readable string for the address, used only
	// for logging.
	String() string
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash transaction.
type AddressPubKeyHash struct {
	hash [20]byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash. pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte) (*AddressPubKeyHash, error) {
	if len(pkHash) != 20 {
		return nil, errInvalidHashLen
	}
	a := &AddressPubKeyHash{}
	copy(a.hash[:], pkHash)
	return a, nil
}

// ScriptAddress returns the underlying pubkey hash bytes.
func (a *AddressPubKeyHash) ScriptAddress() []byte { return a.hash[:] }

func (a *AddressPubKeyHash) String() string { return hexString(a.hash[:]) }

// AddressScriptHash is an Address for a pay-to-script-hash transaction.
type AddressScriptHash struct {
	hash [20]byte
}

// NewAddressScriptHash returns a new AddressScriptHash. scriptHash must be
// 20 bytes.
func NewAddressScriptHash(scriptHash []byte) (*AddressScriptHash, error) {
	if len(scriptHash) != 20 {
		return nil, errInvalidHashLen
	}
	a := &AddressScriptHash{}
	copy(a.hash[:], scriptHash)
	return a, nil
}

// ScriptAddress returns the underlying script hash bytes.
func (a *AddressScriptHash) ScriptAddress() []byte { return a.hash[:] }

func (a *AddressScriptHash) String() string { return hexString(a.hash[:]) }
