// Copyright (c) 2017-2019 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 10, 20, 31}
	enc, err := Encode("bc", data)
	require.Nil(t, err)

	dec, err := Decode(enc)
	require.Nil(t, err)
	require.Equal(t, Bech32, dec.Encoding)
	require.Equal(t, "bc", dec.HRP)
	require.Equal(t, data, dec.Data)
}

func TestEncodeMDecodeRoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	enc, err := EncodeM("bc", data)
	require.Nil(t, err)

	dec, err := Decode(enc)
	require.Nil(t, err)
	require.Equal(t, Bech32m, dec.Encoding)
}

func TestDecodeKnownVectors(t *testing.T) {
	// BIP-173 valid test vectors.
	valid := []string{
		"A12UEL5L",
		"a12uel5l",
		"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
	}
	for _, v := range valid {
		_, err := Decode(v)
		require.Nil(t, err, "expected %q to decode", v)
	}
}

func TestDecodeRejectsMixedCase(t *testing.T) {
	_, err := Decode("A12uEL5L")
	require.NotNil(t, err)
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	_, err := Decode("a12uel5k")
	require.NotNil(t, err)
}

func TestDecodeRejectsTooLong(t *testing.T) {
	_, err := Decode(strings.Repeat("a", 91) + "1qqqqqq")
	require.NotNil(t, err)
}

func TestConvertBits8To5Padded(t *testing.T) {
	in := []byte{0xff, 0x00, 0xff}
	out, err := ConvertBits(in, 8, 5, true)
	require.Nil(t, err)

	back, err := ConvertBits(out, 5, 8, false)
	require.Nil(t, err)
	require.Equal(t, in, back)
}

func TestConvertBits5To8RejectsNonZeroPadding(t *testing.T) {
	// A single 5-bit group of all 1s left-shifted into 8 bits has
	// nonzero low bits: not valid zero-padding.
	_, err := ConvertBits([]byte{0x1f}, 5, 8, false)
	require.NotNil(t, err)
}

func TestConvertBitsRejectsOutOfRangeSymbol(t *testing.T) {
	_, err := ConvertBits([]byte{0xff}, 5, 8, true)
	require.NotNil(t, err)
}
