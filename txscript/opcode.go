// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txscript provides the byte-script opcode helpers and the
// Solver script classifier. Unlike the teacher's txscript package this
// is not a script-execution engine: no stack machine, no signature
// verification, only the identification rules spec.md §4.D/§4.E name.
package txscript

import (
	"github.com/btcaddr/codec/btcutil/er"
)

// The opcode values this codec gives semantic meaning to (spec.md §3).
const (
	OP_0             = 0x00
	OP_PUSHDATA1     = 0x4c
	OP_PUSHDATA2     = 0x4d
	OP_PUSHDATA4     = 0x4e
	OP_1NEGATE       = 0x4f
	OP_RESERVED      = 0x50
	OP_1             = 0x51
	OP_16            = 0x60
	OP_RETURN        = 0x6a
	OP_DUP           = 0x76
	OP_EQUAL         = 0x87
	OP_EQUALVERIFY   = 0x88
	OP_HASH160       = 0xa9
	OP_CHECKSIG      = 0xac
	OP_CHECKMULTISIG = 0xae
)

var (
	errTruncatedPush   = er.New("opcode push extends past end of script")
	errTruncatedLength = er.New("opcode push-length header extends past end of script")
)

// ReadOp reads one opcode starting at script[pos], plus its push payload
// if it is a data-push opcode. It returns the opcode value, its payload
// (nil if the opcode carries none), the position immediately after the
// opcode+payload, and an error if the script is truncated mid-push.
//
// Push opcodes: 0x01-0x4b ("OP_PUSHBYTES_N") push that many literal
// bytes; OP_PUSHDATA1/2/4 read a 1/2/4-byte little-endian length header
// then that many payload bytes.
func ReadOp(script []byte, pos int) (op byte, data []byte, next int, err er.R) {
	op = script[pos]
	pos++

	switch {
	case op >= 0x01 && op <= 0x4b:
		n := int(op)
		if pos+n > len(script) {
			return op, nil, pos, errTruncatedPush
		}
		return op, script[pos : pos+n], pos + n, nil

	case op == OP_PUSHDATA1:
		if pos+1 > len(script) {
			return op, nil, pos, errTruncatedLength
		}
		n := int(script[pos])
		pos++
		if pos+n > len(script) {
			return op, nil, pos, errTruncatedPush
		}
		return op, script[pos : pos+n], pos + n, nil

	case op == OP_PUSHDATA2:
		if pos+2 > len(script) {
			return op, nil, pos, errTruncatedLength
		}
		n := int(script[pos]) | int(script[pos+1])<<8
		pos += 2
		if pos+n > len(script) {
			return op, nil, pos, errTruncatedPush
		}
		return op, script[pos : pos+n], pos + n, nil

	case op == OP_PUSHDATA4:
		if pos+4 > len(script) {
			return op, nil, pos, errTruncatedLength
		}
		n := int(script[pos]) | int(script[pos+1])<<8 | int(script[pos+2])<<16 | int(script[pos+3])<<24
		pos += 4
		if n < 0 || pos+n > len(script) {
			return op, nil, pos, errTruncatedPush
		}
		return op, script[pos : pos+n], pos + n, nil

	default:
		return op, nil, pos, nil
	}
}

// IsSmallInteger reports whether op is OP_1 through OP_16 (spec.md §4.D).
// Note OP_0 is a push opcode, not a "small integer" opcode, by this
// definition - it is handled separately wherever both matter.
func IsSmallInteger(op byte) bool {
	return op >= OP_1 && op <= OP_16
}

// DecodeOpN converts a small-integer opcode (or OP_0) to its numeric
// value: OP_0 -> 0, OP_1 -> 1, ..., OP_16 -> 16.
func DecodeOpN(op byte) int {
	if op == OP_0 {
		return 0
	}
	return int(op) - OP_1 + 1
}

// EncodeOpN is the inverse of DecodeOpN for n in [1,16]: it returns the
// OP_1..OP_16 opcode for n.
func EncodeOpN(n int) byte {
	return byte(OP_1 + n - 1)
}

// EncodePushBytesN returns the raw push-N opcode for n in [1,75] (the
// opcode byte value *is* n; spec.md §4.D).
func EncodePushBytesN(n int) byte {
	return byte(n)
}

// IsPushOnly reports whether every opcode from script[pos:end] is a push
// (value <= OP_16, which includes OP_RESERVED) and the stream parses
// without truncation.
func IsPushOnly(script []byte, pos, end int) bool {
	for pos < end {
		op, _, next, err := ReadOp(script, pos)
		if err != nil {
			return false
		}
		if op > OP_16 {
			return false
		}
		pos = next
	}
	return pos == end
}
