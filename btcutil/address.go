// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btcutil ties the base encodings and Solver together into the
// address codec proper: ExtractDestinations renders a script as one or
// more textual addresses, DecodeDestination parses text back into a
// script, and IsValid reports acceptance without building the script.
//
// Grounded on txscript/standard.go's ExtractPkScriptAddrs/
// PkScriptToAddress dispatch-by-ScriptClass shape, generalized from
// building btcutil.Address values to emitting address strings directly
// (spec.md §9 prefers a flat function over an Address interface
// hierarchy for this kind of dispatch).
package btcutil

import (
	"strings"

	"github.com/btcaddr/codec/btcutil/base58"
	"github.com/btcaddr/codec/btcutil/bech32"
	"github.com/btcaddr/codec/btcutil/er"
	"github.com/btcaddr/codec/chaincfg"
	"github.com/btcaddr/codec/txscript"
)

// maxBase58PayloadLen is the max payload length decode_base58_check
// accepts on the checksummed Base58 branch: a 1-byte prefix plus a
// 20-byte hash (spec.md §4.F step 2).
const maxBase58PayloadLen = 21

// maxBase58FallbackLen is the max length the no-checksum Base58 fallback
// accepts, purely to bound the diagnostic work before giving up
// (spec.md §4.F step 3, §5).
const maxBase58FallbackLen = 100

// ExtractDestinations renders an output script as zero or more textual
// addresses, given the network parameters to bind the textual form to.
// It never errors: unrecognizable or non-representable scripts (e.g.
// NullData, NonStandard) simply yield no addresses.
func ExtractDestinations(script []byte, params *chaincfg.Params) []string {
	kind, sol := txscript.Solver(script)

	switch kind {
	case txscript.PubKeyTy:
		// Preserved quirk (spec.md §9 #3): the Base58Check payload is
		// the full 33/65-byte pubkey, not its hash. Non-standard but
		// source-faithful.
		pubkey := sol[0]
		if len(pubkey) == 0 {
			return nil
		}
		return []string{encodeBase58(params.Base58Prefixes[chaincfg.PubKeyAddress], pubkey)}

	case txscript.PubKeyHashTy:
		return []string{encodeBase58(params.Base58Prefixes[chaincfg.PubKeyAddress], sol[0])}

	case txscript.ScriptHashTy:
		return []string{encodeBase58(params.Base58Prefixes[chaincfg.ScriptAddress], sol[0])}

	case txscript.WitnessV0KeyHashTy, txscript.WitnessV0ScriptHashTy:
		addr, err := encodeSegwit(bech32.Bech32, params.Bech32HRPSegwit, 0, sol[0])
		if err != nil {
			return nil
		}
		return []string{addr}

	case txscript.WitnessV1TaprootTy:
		addr, err := encodeSegwit(bech32.Bech32m, params.Bech32HRPSegwit, 1, sol[0])
		if err != nil {
			return nil
		}
		return []string{addr}

	case txscript.WitnessUnknownTy:
		version := int(sol[0][0])
		program := sol[1]
		if version < 1 || version > 16 {
			return nil
		}
		if len(program) < 2 || len(program) > 40 {
			return nil
		}
		addr, err := encodeSegwit(bech32.Bech32m, params.Bech32HRPSegwit, byte(version), program)
		if err != nil {
			return nil
		}
		return []string{addr}

	case txscript.MultiSigTy:
		// One Base58Check address per embedded pubkey, using the
		// PUBKEY_ADDRESS prefix. There is no separate status value: the
		// returned list is the whole result, and these addresses do not
		// decode back into the multisig script.
		var addrs []string
		// sol = [m, pubkey1, ..., pubkeyN, n]; pubkeys are sol[1:len-1].
		for _, pk := range sol[1 : len(sol)-1] {
			if len(pk) == 0 {
				continue
			}
			hash := pubKeyHashStandIn(pk)
			addrs = append(addrs, encodeBase58(params.Base58Prefixes[chaincfg.PubKeyAddress], hash))
		}
		return addrs

	case txscript.NullDataTy, txscript.NonStandardTy:
		return nil
	}

	return nil
}

// pubKeyHashStandIn returns the Base58Check payload for a multisig
// member, for the address-per-pubkey rendering in spec.md §4.F: the
// 33/65-byte pubkey itself, unchanged, not a 20-byte hash. The codec
// never hashes itself (spec.md §1 Non-goals); this reproduces the teacher's own ExtractPkScriptAddrs(MultiSigTy)
// path, which also treats the raw pubkey bytes as the thing to address-
// encode rather than hashing them, matching this codec's broader
// preserved-quirk policy for non-round-trippable classes.
func pubKeyHashStandIn(pubkey []byte) []byte {
	return pubkey
}

func encodeBase58(prefix byte, payload []byte) string {
	full := make([]byte, 0, 1+len(payload))
	full = append(full, prefix)
	full = append(full, payload...)
	return base58.CheckEncode(full)
}

func encodeSegwit(enc bech32.Encoding, hrp string, version byte, program []byte) (string, er.R) {
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := append([]byte{version}, converted...)
	if enc == bech32.Bech32m {
		return bech32.EncodeM(hrp, data)
	}
	return bech32.Encode(hrp, data)
}

// DecodeDestination parses a textual address against params and
// reconstructs the output script it represents. On failure it returns a
// descriptive error whose message matches spec.md §4.F/§7's literal
// diagnostic strings verbatim (BIP-141 ecosystem compatibility).
func DecodeDestination(addr string, params *chaincfg.Params) ([]byte, er.R) {
	hrp := params.Bech32HRPSegwit
	isBech32 := len(addr) >= len(hrp) && strings.EqualFold(addr[:len(hrp)], hrp)

	if !isBech32 {
		data, checksumOK := base58.CheckDecode(addr, maxBase58PayloadLen)
		if checksumOK == nil {
			return decodeBase58Destination(data, params)
		}
		return decodeBase58Fallback(addr)
	}

	return decodeBech32Destination(addr, params)
}

func decodeBase58Destination(data []byte, params *chaincfg.Params) ([]byte, er.R) {

	pubKeyHashID := params.Base58Prefixes[chaincfg.PubKeyAddress]
	scriptHashID := params.Base58Prefixes[chaincfg.ScriptAddress]

	switch {
	case len(data) > 0 && data[0] == pubKeyHashID && len(data) == 21:
		hash := data[1:]
		script := make([]byte, 0, 25)
		script = append(script, txscript.OP_DUP, txscript.OP_HASH160, 0x14)
		script = append(script, hash...)
		script = append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)
		return script, nil

	case len(data) > 0 && data[0] == scriptHashID && len(data) == 21:
		hash := data[1:]
		script := make([]byte, 0, 23)
		script = append(script, txscript.OP_HASH160, 0x14)
		script = append(script, hash...)
		script = append(script, txscript.OP_EQUAL)
		return script, nil

	case len(data) > 0 && (data[0] == pubKeyHashID || data[0] == scriptHashID):
		return nil, er.New("Invalid length for Base58 address (P2PKH or P2SH)")

	default:
		return nil, er.New("Invalid or unsupported Base58-encoded address.")
	}
}

func decodeBase58Fallback(addr string) ([]byte, er.R) {
	if len(addr) <= maxBase58FallbackLen {
		if _, err := base58.Decode(addr); err == nil {
			return nil, er.New("Invalid checksum or length of Base58 address (P2PKH or P2SH)")
		}
	}
	return nil, er.New("Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
}

func decodeBech32Destination(addr string, params *chaincfg.Params) ([]byte, er.R) {
	dec, err := bech32.Decode(addr)
	if err != nil {
		return nil, er.New("Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
	}

	if dec.Encoding != bech32.Bech32 && dec.Encoding != bech32.Bech32m {
		return nil, er.New("Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
	}
	if len(dec.Data) == 0 {
		return nil, er.New("Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
	}
	if !strings.EqualFold(dec.HRP, params.Bech32HRPSegwit) {
		return nil, er.New("Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
	}

	version := int(dec.Data[0])

	if version == 0 && dec.Encoding != bech32.Bech32 {
		return nil, er.New("Version 0 witness address must use Bech32 checksum")
	}
	if version != 0 && dec.Encoding != bech32.Bech32m {
		return nil, er.New("Invalid checksum variant for witness version")
	}

	program, err := bech32.ConvertBits(dec.Data[1:], 5, 8, false)
	if err != nil {
		return nil, er.New("Invalid padding in Bech32 data section")
	}

	switch {
	case version == 0 && len(program) == 20:
		script := append([]byte{txscript.OP_0, 0x14}, program...)
		return script, nil

	case version == 0 && len(program) == 32:
		script := append([]byte{txscript.OP_0, 0x20}, program...)
		return script, nil

	case version == 0:
		return nil, er.Errorf(
			"Invalid Bech32 v0 address program size (%d byte%s), per BIP141",
			len(program), plural(len(program)))

	case version == 1 && len(program) == 32:
		script := append([]byte{txscript.OP_1, 0x20}, program...)
		return script, nil

	case version > 16:
		return nil, er.New("Invalid Bech32 address witness version")

	default:
		if len(program) < 2 || len(program) > 40 {
			return nil, er.Errorf(
				"Invalid Bech32 address program size (%d byte%s)",
				len(program), plural(len(program)))
		}
		// Preserved quirk (spec.md §9 #2): no length-push opcode is
		// inserted before the program here, unlike the shape Solver
		// requires in solveWitnessProgram (script[1] == len-2). A
		// decoded v2-16 non-Taproot address therefore will not
		// round-trip back through ExtractDestinations - see DESIGN.md.
		script := append([]byte{txscript.EncodeOpN(version)}, program...)
		return script, nil
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// IsValid reports whether addr is accepted by DecodeDestination against
// params, without constructing the script.
func IsValid(addr string, params *chaincfg.Params) bool {
	_, err := DecodeDestination(addr, params)
	return err == nil
}
