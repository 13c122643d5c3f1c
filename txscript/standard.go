// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ScriptClass is an enumeration of the standard output-script shapes this
// codec recognizes.
type ScriptClass byte

// The recognized script classes, in the same order spec.md §3 names them.
const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
	ScriptHashTy
	MultiSigTy
	NullDataTy
	WitnessV0KeyHashTy
	WitnessV0ScriptHashTy
	WitnessV1TaprootTy
	WitnessUnknownTy
)

var scriptClassNames = [...]string{
	NonStandardTy:         "nonstandard",
	PubKeyTy:              "pubkey",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	MultiSigTy:            "multisig",
	NullDataTy:            "nulldata",
	WitnessV0KeyHashTy:    "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessV1TaprootTy:    "witness_v1_taproot",
	WitnessUnknownTy:      "witness_unknown",
}

// String implements Stringer.
func (t ScriptClass) String() string {
	if int(t) < 0 || int(t) >= len(scriptClassNames) {
		return "invalid"
	}
	return scriptClassNames[t]
}

// MaxDataCarrierSize is unused by Solver (spec.md's NullData rule places
// no size cap on the OP_RETURN payload, unlike the teacher's policy-level
// 80-byte limit) but is kept as a named constant since callers building
// NullData scripts elsewhere in the ecosystem reference it.
const MaxDataCarrierSize = 80

// isValidPubKeySize reports whether k is a well-sized serialized public
// key: a 33-byte compressed key (prefix 2 or 3) or a 65-byte
// uncompressed/hybrid key (prefix 4, 6, or 7). Mathematical validity on
// the curve is out of scope (spec.md §3).
func isValidPubKeySize(k []byte) bool {
	if len(k) == 33 {
		return k[0] == 2 || k[0] == 3
	}
	if len(k) == 65 {
		return k[0] == 4 || k[0] == 6 || k[0] == 7
	}
	return false
}

// Solver classifies an output script into a ScriptClass and extracts its
// payload (spec.md §4.E). It never errors: an unrecognizable or
// malformed script classifies as NonStandardTy with no solutions.
//
// Classification order is significant - earlier rules win, exactly per
// spec.md §4.E's seven steps.
func Solver(script []byte) (ScriptClass, [][]byte) {
	// 1. P2SH fast path.
	if len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == 0x14 &&
		script[22] == OP_EQUAL {
		return ScriptHashTy, [][]byte{script[2:22]}
	}

	// 2. Witness program shape.
	if kind, sol, ok := solveWitnessProgram(script); ok {
		return kind, sol
	}

	// 3. Null data.
	if len(script) >= 1 && script[0] == OP_RETURN {
		if IsPushOnly(script, 1, len(script)) {
			return NullDataTy, nil
		}
	}

	pops, err := ParseScript(script)
	if err != nil {
		return NonStandardTy, nil
	}

	// 4. P2PK.
	if kind, sol, ok := solvePubKey(pops); ok {
		return kind, sol
	}

	// 5. P2PKH.
	if sol, ok := solvePubKeyHash(pops); ok {
		return PubKeyHashTy, sol
	}

	// 6. Multisig.
	if sol, ok := solveMultiSig(pops); ok {
		return MultiSigTy, sol
	}

	// 7. Otherwise.
	return NonStandardTy, nil
}

// solveWitnessProgram implements spec.md §4.E step 2: a witness program
// is a small-integer version opcode (OP_0 or OP_1..OP_16) followed by a
// single bare push of the remaining script bytes, with the script
// between 4 and 42 bytes total.
func solveWitnessProgram(script []byte) (ScriptClass, [][]byte, bool) {
	if len(script) < 4 || len(script) > 42 {
		return 0, nil, false
	}
	first := script[0]
	if !(first == OP_0 || IsSmallInteger(first)) {
		return 0, nil, false
	}
	if int(script[1]) != len(script)-2 {
		return 0, nil, false
	}

	v := DecodeOpN(first)
	p := script[2:]

	switch {
	case v == 0 && len(p) == 20:
		return WitnessV0KeyHashTy, [][]byte{p}, true
	case v == 0 && len(p) == 32:
		return WitnessV0ScriptHashTy, [][]byte{p}, true
	case v == 1 && len(p) == 32:
		return WitnessV1TaprootTy, [][]byte{p}, true
	case v != 0:
		return WitnessUnknownTy, [][]byte{{byte(v)}, p}, true
	default:
		// v == 0 with a program length other than 20 or 32.
		return NonStandardTy, nil, true
	}
}

// solvePubKey implements spec.md §4.E step 4: <push 33|65-byte pubkey> OP_CHECKSIG.
func solvePubKey(pops []ParsedOpcode) (ScriptClass, [][]byte, bool) {
	if len(pops) != 2 {
		return 0, nil, false
	}
	if pops[1].Opcode != OP_CHECKSIG {
		return 0, nil, false
	}
	if pops[0].Data == nil || !isValidPubKeySize(pops[0].Data) {
		return 0, nil, false
	}
	return PubKeyTy, [][]byte{pops[0].Data}, true
}

// solvePubKeyHash implements spec.md §4.E step 5: the exact P2PKH shape.
func solvePubKeyHash(pops []ParsedOpcode) ([][]byte, bool) {
	if len(pops) != 5 {
		return nil, false
	}
	if pops[0].Opcode != OP_DUP ||
		pops[1].Opcode != OP_HASH160 ||
		pops[2].Opcode != 0x14 ||
		pops[3].Opcode != OP_EQUALVERIFY ||
		pops[4].Opcode != OP_CHECKSIG {
		return nil, false
	}
	return [][]byte{pops[2].Data}, true
}

// solveMultiSig implements spec.md §4.E step 6.
func solveMultiSig(pops []ParsedOpcode) ([][]byte, bool) {
	l := len(pops)
	if l < 4 {
		return nil, false
	}
	if !IsSmallInteger(pops[0].Opcode) {
		return nil, false
	}
	if pops[l-1].Opcode != OP_CHECKMULTISIG {
		return nil, false
	}
	if !IsSmallInteger(pops[l-2].Opcode) {
		return nil, false
	}

	m := DecodeOpN(pops[0].Opcode)
	n := DecodeOpN(pops[l-2].Opcode)

	if m < 1 || n < 1 || n > 16 || m > n {
		return nil, false
	}
	if l-2-1 != n {
		// The number of pubkey pushes must match the declared n.
		return nil, false
	}

	pubkeys := pops[1 : l-2]
	for _, p := range pubkeys {
		if p.Data == nil || !isValidPubKeySize(p.Data) {
			return nil, false
		}
	}

	sol := make([][]byte, 0, n+2)
	sol = append(sol, []byte{byte(m)})
	for _, p := range pubkeys {
		sol = append(sol, p.Data)
	}
	sol = append(sol, []byte{byte(n)})
	return sol, true
}
