// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the classic Bitcoin-style Base58 and
// Base58Check encodings: a big-endian base-58 codec over a 58-character
// alphabet with leading-zero-byte preservation, plus a 4-byte
// double-SHA256 checksum variant.
package base58

import (
	"crypto/sha256"
	"math/big"

	"github.com/btcaddr/codec/btcutil/er"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	bigRadix  = big.NewInt(58)
	bigZero   = big.NewInt(0)
	decodeMap [256]int8
)

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i, c := range alphabet {
		decodeMap[c] = int8(i)
	}
}

// Encode converts a byte slice into its Base58 string representation,
// preserving one leading '1' per leading zero byte in b.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	reverse(answer)
	return string(answer)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// errInvalidChar is returned by Decode when the input contains a byte
// outside the 58-character alphabet.
var errInvalidChar = er.New("invalid base58 character")

// Decode converts a Base58 string back into a byte slice, restoring one
// leading zero byte per leading '1'. It fails on any character outside
// the alphabet.
func Decode(s string) ([]byte, er.R) {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := 0; i < len(s); i++ {
		d := decodeMap[s[i]]
		if d == -1 {
			return nil, errInvalidChar
		}
		answer.Mul(answer, bigRadix)
		scratch.SetInt64(int64(d))
		answer.Add(answer, scratch)
	}

	decoded := answer.Bytes()
	var numZeros int
	for numZeros = 0; numZeros < len(s); numZeros++ {
		if s[numZeros] != alphabet[0] {
			break
		}
	}
	flen := numZeros + len(decoded)
	val := make([]byte, flen)
	copy(val[numZeros:], decoded)
	return val, nil
}

const checksumLen = 4

func checksum(input []byte) (csum [checksumLen]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(csum[:], h2[:checksumLen])
	return
}

// CheckEncode encodes payload (with a 1-byte version prefix already
// applied by the caller, or none at all) as Base58Check: Base58 of
// payload || first4(SHA256(SHA256(payload))).
func CheckEncode(payload []byte) string {
	b := make([]byte, 0, len(payload)+checksumLen)
	b = append(b, payload...)
	cksum := checksum(payload)
	b = append(b, cksum[:]...)
	return Encode(b)
}

var (
	errChecksumTooShort = er.New("input too short to contain a checksum")
	errChecksumMismatch = er.New("checksum mismatch")
	errPayloadTooLong   = er.New("decoded payload exceeds max length")
)

// CheckDecode decodes a Base58Check string, verifies and strips the
// trailing checksum, and returns the remaining payload. It fails when
// the payload (after stripping the checksum) exceeds maxLen, and on any
// invalid-character or checksum-mismatch condition.
func CheckDecode(input string, maxLen int) ([]byte, er.R) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLen {
		return nil, errChecksumTooShort
	}
	payload := decoded[:len(decoded)-checksumLen]
	if len(payload) > maxLen {
		return nil, errPayloadTooLong
	}
	var cksum [checksumLen]byte
	copy(cksum[:], decoded[len(decoded)-checksumLen:])
	if checksum(payload) != cksum {
		return nil, errChecksumMismatch
	}
	return payload, nil
}
