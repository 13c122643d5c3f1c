// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btcaddr/codec/btcutil/base58"
	"github.com/btcaddr/codec/btcutil/bech32"
	"github.com/btcaddr/codec/chaincfg"
	"github.com/btcaddr/codec/txscript"
)

func hexScript(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.Nil(t, err)
	return b
}

func repeatHex(pair string, n int) string {
	out := make([]byte, 0, len(pair)*n)
	for i := 0; i < n; i++ {
		out = append(out, pair...)
	}
	return string(out)
}

func TestExtractDestinationsP2PKH(t *testing.T) {
	script := hexScript(t, "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Equal(t, []string{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"}, addrs)
}

func TestExtractDestinationsP2SH(t *testing.T) {
	script := hexScript(t, "a9148f55563b9a19f321c211e9b9f38cdf686ea0784587")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Equal(t, []string{"3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX"}, addrs)
}

func TestExtractDestinationsP2WPKH(t *testing.T) {
	script := hexScript(t, "0014751e76e8199196d454941c45d1b3a323f1433bd6")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Equal(t, []string{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"}, addrs)
}

func TestExtractDestinationsP2WSH(t *testing.T) {
	script := hexScript(t, "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Equal(t, []string{"bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7"}, addrs)
}

func TestExtractDestinationsP2TR(t *testing.T) {
	script := hexScript(t, "5120a60869f0dbcf1dc659c9cecbaf8050135ea9e8cdc487053f1dc6880949dc684c")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Equal(t, []string{"bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr"}, addrs)
}

func TestExtractDestinationsNullDataYieldsNone(t *testing.T) {
	script := hexScript(t, "6a04deadbeef")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Nil(t, addrs)
}

func TestExtractDestinationsMultiSigPreservedQuirk(t *testing.T) {
	// Preserved quirk (spec.md §9 #1): one Base58Check address per
	// embedded pubkey, using PUBKEY_ADDRESS - the raw pubkey bytes are
	// the payload, not a hash of them.
	pk1 := hexScript(t, "02"+repeatHex("01", 32))
	pk2 := hexScript(t, "03"+repeatHex("02", 32))
	script := []byte{txscript.OP_1, 0x21}
	script = append(script, pk1...)
	script = append(script, 0x21)
	script = append(script, pk2...)
	script = append(script, txscript.EncodeOpN(2), txscript.OP_CHECKMULTISIG)

	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Len(t, addrs, 2)

	for i, addr := range addrs {
		payload, err := base58.CheckDecode(addr, 65)
		require.Nil(t, err)
		require.Equal(t, chaincfg.MainNetParams.Base58Prefixes[chaincfg.PubKeyAddress], payload[0])
		if i == 0 {
			require.Equal(t, pk1, payload[1:])
		} else {
			require.Equal(t, pk2, payload[1:])
		}
	}
}

func TestIsValidKnownMainnetAddress(t *testing.T) {
	require.True(t, IsValid("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", &chaincfg.MainNetParams))
}

func TestIsValidRejectsGarbage(t *testing.T) {
	require.False(t, IsValid("not-an-address", &chaincfg.MainNetParams))
}

func TestDecodeDestinationRoundTripP2PKH(t *testing.T) {
	script := hexScript(t, "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Len(t, addrs, 1)

	decoded, err := DecodeDestination(addrs[0], &chaincfg.MainNetParams)
	require.Nil(t, err)
	require.Equal(t, script, decoded)
}

func TestDecodeDestinationRoundTripP2WSH(t *testing.T) {
	script := hexScript(t, "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Len(t, addrs, 1)

	decoded, err := DecodeDestination(addrs[0], &chaincfg.MainNetParams)
	require.Nil(t, err)
	require.Equal(t, script, decoded)
}

func TestDecodeDestinationRoundTripP2TR(t *testing.T) {
	script := hexScript(t, "5120a60869f0dbcf1dc659c9cecbaf8050135ea9e8cdc487053f1dc6880949dc684c")
	addrs := ExtractDestinations(script, &chaincfg.MainNetParams)
	require.Len(t, addrs, 1)

	decoded, err := DecodeDestination(addrs[0], &chaincfg.MainNetParams)
	require.Nil(t, err)
	require.Equal(t, script, decoded)
}

func TestDecodeDestinationRejectsBech32mForVersion0(t *testing.T) {
	// Spec scenario 6: a Bech32m-encoded version-0 witness address must
	// be rejected with this exact diagnostic string.
	addr, err := encodeSegwitRawForTest(t, true, "bc", 0, make([]byte, 20))
	require.Nil(t, err)

	_, derr := DecodeDestination(addr, &chaincfg.MainNetParams)
	require.NotNil(t, derr)
	require.Equal(t, "Version 0 witness address must use Bech32 checksum", derr.Error())
}

func TestDecodeDestinationWitnessV2PreservedQuirk(t *testing.T) {
	// Preserved quirk (spec.md §9 #2): versions 2-16 decode to
	// encode_op_n(v) followed directly by the program bytes, with no
	// length-push opcode - unlike Solver's witness-program shape, which
	// requires one. The decoded script therefore does not round-trip
	// back through ExtractDestinations/Solver.
	program := make([]byte, 20)
	for i := range program {
		program[i] = byte(i)
	}
	addr, err := encodeSegwit(bech32.Bech32m, "bc", 2, program)
	require.Nil(t, err)

	script, derr := DecodeDestination(addr, &chaincfg.MainNetParams)
	require.Nil(t, derr)

	expected := append([]byte{txscript.EncodeOpN(2)}, program...)
	require.Equal(t, expected, script)

	// Confirm the asymmetry: Solver does not recognize this script as
	// the witness program it was decoded from (no length byte present).
	kind, _ := txscript.Solver(script)
	require.NotEqual(t, txscript.WitnessUnknownTy, kind)
}

func TestDecodeDestinationRejectsWitnessVersionAbove16(t *testing.T) {
	program := make([]byte, 20)
	addr, err := encodeSegwit(bech32.Bech32m, "bc", 17, program)
	require.Nil(t, err)

	_, derr := DecodeDestination(addr, &chaincfg.MainNetParams)
	require.NotNil(t, derr)
	require.Equal(t, "Invalid Bech32 address witness version", derr.Error())
}

func TestDecodeDestinationRejectsShortWitnessV2Program(t *testing.T) {
	program := make([]byte, 1)
	addr, err := encodeSegwit(bech32.Bech32m, "bc", 2, program)
	require.Nil(t, err)

	_, derr := DecodeDestination(addr, &chaincfg.MainNetParams)
	require.NotNil(t, derr)
	require.Equal(t, "Invalid Bech32 address program size (1 byte)", derr.Error())
}

func TestDecodeDestinationRejectsLongWitnessV2Program(t *testing.T) {
	program := make([]byte, 41)
	addr, err := encodeSegwit(bech32.Bech32m, "bc", 2, program)
	require.Nil(t, err)

	_, derr := DecodeDestination(addr, &chaincfg.MainNetParams)
	require.NotNil(t, derr)
	require.Equal(t, "Invalid Bech32 address program size (41 bytes)", derr.Error())
}

func TestDecodeDestinationRejectsWrongHRP(t *testing.T) {
	_, err := DecodeDestination("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &chaincfg.TestNet3Params)
	require.NotNil(t, err)
}

func TestDecodeDestinationInvalidBase58Checksum(t *testing.T) {
	_, err := DecodeDestination("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfN3", &chaincfg.MainNetParams)
	require.NotNil(t, err)
}

// encodeSegwitRawForTest builds a segwit address with an explicit
// checksum choice, bypassing the version-implies-checksum rule
// encodeSegwit enforces, purely to construct the Bech32m/v0 rejection
// fixture above.
func encodeSegwitRawForTest(t *testing.T, useM bool, hrp string, version byte, program []byte) (string, error) {
	if useM {
		return encodeSegwit(bech32.Bech32m, hrp, version, program)
	}
	return encodeSegwit(bech32.Bech32, hrp, version, program)
}
