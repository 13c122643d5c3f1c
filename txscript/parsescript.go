// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/btcaddr/codec/btcutil/er"
)

// ParsedOpcode is one opcode read out of a script, plus its push payload
// if it has one (nil otherwise).
type ParsedOpcode struct {
	Opcode byte
	Data   []byte
}

// ParseScript decodes an entire script into its opcode stream. It fails
// if any push opcode is truncated.
func ParseScript(script []byte) ([]ParsedOpcode, er.R) {
	pops := make([]ParsedOpcode, 0, len(script))
	for pos := 0; pos < len(script); {
		op, data, next, err := ReadOp(script, pos)
		if err != nil {
			return pops, err
		}
		pops = append(pops, ParsedOpcode{Opcode: op, Data: data})
		pos = next
	}
	return pops, nil
}
