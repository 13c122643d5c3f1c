// Copyright (c) 2017-2019 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32 implements BIP-173 (Bech32) and BIP-350 (Bech32m), and
// the power-of-two base conversion (ConvertBits) both encodings use to
// pack arbitrary byte data into 5-bit symbols.
//
// The public surface (ConvertBits/Encode/EncodeM/Decode) mirrors the
// real ecosystem github.com/btcsuite/btcd/btcutil/bech32 package, whose
// call shape is grounded on Amr-9-HexHunter/pkg/generator/bitcoin/address.go.
package bech32

import (
	"strings"

	"github.com/btcaddr/codec/btcutil/er"
)

// charset is the Bech32 data alphabet (BIP-173).
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetRev [256]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i, c := range charset {
		charsetRev[c] = int8(i)
	}
}

// Encoding identifies which checksum constant was used: Bech32 (BIP-173)
// or Bech32m (BIP-350).
type Encoding int

const (
	// None indicates no recognized checksum matched.
	None Encoding = iota
	// Bech32 is the original BIP-173 checksum (constant 1).
	Bech32
	// Bech32m is the BIP-350 checksum (constant 0x2bc830a3), used for
	// witness versions 1 and above.
	Bech32m
)

const (
	bech32Const  = 1
	bech32mConst = 0x2bc830a3
)

var generators = [5]uint32{
	0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3,
}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generators[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func createChecksum(enc Encoding, hrp string, data []byte) []byte {
	values := hrpExpand(hrp)
	values = append(values, data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ encConst(enc)
	ret := make([]byte, 6)
	for i := 0; i < 6; i++ {
		ret[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return ret
}

func encConst(enc Encoding) uint32 {
	if enc == Bech32m {
		return bech32mConst
	}
	return bech32Const
}

// Encode renders hrp and 5-bit data symbols as a Bech32 string using the
// BIP-173 checksum constant.
func Encode(hrp string, data []byte) (string, er.R) {
	return encode(Bech32, hrp, data)
}

// EncodeM is Encode using the Bech32m checksum constant (BIP-350).
func EncodeM(hrp string, data []byte) (string, er.R) {
	return encode(Bech32m, hrp, data)
}

func encode(enc Encoding, hrp string, data []byte) (string, er.R) {
	lower := strings.ToLower(hrp)
	if lower != hrp && hrp != strings.ToUpper(hrp) {
		return "", er.New("hrp must not mix case")
	}
	hrp = lower

	checksum := createChecksum(enc, hrp, data)
	combined := append(append([]byte{}, data...), checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range combined {
		if int(b) >= len(charset) {
			return "", er.New("invalid data symbol")
		}
		sb.WriteByte(charset[b])
	}
	return sb.String(), nil
}

// DecodeResult is the parsed form of a Bech32/Bech32m string: the
// checksum variant that matched, the human-readable part, and the data
// symbols (5-bit values, checksum stripped).
type DecodeResult struct {
	Encoding Encoding
	HRP      string
	Data     []byte
}

const maxBech32Length = 90

var (
	errTooLong       = er.New("invalid bech32 string length")
	errMixedCase     = er.New("string not all lowercase or all uppercase")
	errNoSeparator   = er.New("missing separator '1'")
	errInvalidHRP    = er.New("invalid human-readable part")
	errDataTooShort  = er.New("data section too short")
	errInvalidChar   = er.New("invalid character in data section")
	errInvalidChksum = er.New("invalid checksum")
)

// Decode parses a Bech32 or Bech32m string, validating HRP, data
// alphabet, and checksum, and returns the data symbols without the
// trailing 6 checksum symbols. Does not attempt error-location
// suggestions.
func Decode(bech string) (*DecodeResult, er.R) {
	if len(bech) < 8 || len(bech) > maxBech32Length {
		return nil, errTooLong
	}

	hasLower := strings.ToLower(bech) != bech
	hasUpper := strings.ToUpper(bech) != bech
	if hasLower && hasUpper {
		return nil, errMixedCase
	}
	bech = strings.ToLower(bech)

	one := strings.LastIndex(bech, "1")
	if one < 1 || one+7 > len(bech) {
		return nil, errNoSeparator
	}

	hrp := bech[:one]
	data := bech[one+1:]

	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return nil, errInvalidHRP
		}
	}

	decoded := make([]byte, len(data))
	for i := 0; i < len(data); i++ {
		d := charsetRev[data[i]]
		if d == -1 {
			return nil, errInvalidChar
		}
		decoded[i] = byte(d)
	}
	if len(decoded) < 6 {
		return nil, errDataTooShort
	}

	values := hrpExpand(hrp)
	values = append(values, decoded...)
	mod := polymod(values)

	var enc Encoding
	switch mod {
	case bech32Const:
		enc = Bech32
	case bech32mConst:
		enc = Bech32m
	default:
		return nil, errInvalidChksum
	}

	return &DecodeResult{
		Encoding: enc,
		HRP:      hrp,
		Data:     decoded[:len(decoded)-6],
	}, nil
}

// ConvertBits performs a general power-of-two base conversion: it
// regroups symbols of fromBits width into symbols of toBits width.
// When pad is true, a final partial group is emitted, left-shifted to
// fill toBits. When pad is false, the conversion fails if there remain
// fromBits or more leftover bits, or if the residual bits are nonzero
// (i.e. the leftover bits are not valid zero-padding).
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, er.R) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, er.New("invalid bit width")
	}

	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	var ret []byte

	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, er.New("invalid data range")
		}
		acc = (acc << fromBits) | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxv))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxv))
		}
	} else if bits >= fromBits || ((acc<<(toBits-bits))&maxv) != 0 {
		return nil, er.New("invalid incomplete group")
	}

	return ret, nil
}
