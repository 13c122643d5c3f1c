// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameter sets the address codec
// needs to bind a textual address form to a specific Bitcoin network.
//
// This is a deliberately narrow cut of the upstream chaincfg.Params: the
// full node carries PoW limits, DNS seeds, BIP activation heights and
// BIP-9 deployment bitmaps here too, none of which an address codec
// consumes. See DESIGN.md for the trim rationale.
package chaincfg

// AddressPrefix identifies which byte-prefix slot a Base58Check address
// draws from.
type AddressPrefix int

const (
	// PubKeyAddress is the prefix slot used for P2PKH (and, per the
	// preserved quirk in spec.md §9 #3, raw P2PK) addresses.
	PubKeyAddress AddressPrefix = iota
	// ScriptAddress is the prefix slot used for P2SH addresses.
	ScriptAddress
)

// Params defines a Bitcoin network by the parameters this codec needs:
// the Base58Check prefix bytes and the Bech32 human-readable part.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Base58Prefixes maps an AddressPrefix slot to its single prefix
	// byte, prepended before Base58Check-encoding a hash or pubkey.
	Base58Prefixes map[AddressPrefix]byte

	// Bech32HRPSegwit is the human-readable part used for Bech32 and
	// Bech32m segwit addresses on this network (BIP-173 §HRP).
	Bech32HRPSegwit string
}

// MainNetParams are the parameters for the main Bitcoin network.
var MainNetParams = Params{
	Name: "mainnet",
	Base58Prefixes: map[AddressPrefix]byte{
		PubKeyAddress: 0x00, // starts with 1
		ScriptAddress: 0x05, // starts with 3
	},
	Bech32HRPSegwit: "bc",
}

// TestNet3Params are the parameters for the test Bitcoin network (version 3).
var TestNet3Params = Params{
	Name: "testnet3",
	Base58Prefixes: map[AddressPrefix]byte{
		PubKeyAddress: 0x6f, // starts with m or n
		ScriptAddress: 0xc4, // starts with 2
	},
	Bech32HRPSegwit: "tb",
}

// SigNetParams are the parameters for the public default signet. Absent
// from the teacher (pre-signet fork lineage); values match Bitcoin
// Core's actual signet defaults, which reuse testnet's Base58 prefixes
// and HRP (see DESIGN.md Open Questions).
var SigNetParams = Params{
	Name: "signet",
	Base58Prefixes: map[AddressPrefix]byte{
		PubKeyAddress: 0x6f,
		ScriptAddress: 0xc4,
	},
	Bech32HRPSegwit: "tb",
}

// RegressionNetParams are the parameters for the regression test network.
var RegressionNetParams = Params{
	Name: "regtest",
	Base58Prefixes: map[AddressPrefix]byte{
		PubKeyAddress: 0x6f,
		ScriptAddress: 0xc4,
	},
	Bech32HRPSegwit: "bcrt",
}
