// This file is part of M6800Front.
//
// M6800Front is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// M6800Front is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with M6800Front.  If not, see <https://www.gnu.org/licenses/>.

package instructions_test

import (
	"testing"

	"github.com/mossley/m6800front/instructions"
	"github.com/mossley/m6800front/test"
)

func TestTableShape(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, len(defs), 256)

	// the M6800 has 197 documented instructions
	count := 0
	for _, d := range defs {
		if d != nil {
			count++
		}
	}
	test.Equate(t, count, 197)
}

func TestTableConsistency(t *testing.T) {
	for i, d := range instructions.GetDefinitions() {
		if d == nil {
			continue
		}

		// index and opcode field must agree
		test.Equate(t, d.OpCode, i)

		if d.Bytes < 1 || d.Bytes > 3 {
			t.Errorf("%s: implausible instruction length (%d)", d, d.Bytes)
		}
		test.Equate(t, d.OperandBytes(), d.Bytes-1)

		// addressing mode dictates instruction length
		switch d.AddressingMode {
		case instructions.Inherent:
			test.Equate(t, d.Bytes, 1)
		case instructions.Immediate:
			if d.Wide {
				test.Equate(t, d.Bytes, 3)
			} else {
				test.Equate(t, d.Bytes, 2)
			}
		case instructions.Direct, instructions.Indexed, instructions.Relative:
			test.Equate(t, d.Bytes, 2)
		case instructions.Extended:
			test.Equate(t, d.Bytes, 3)
		}

		// branches are always relative. relative encodings branch, call
		// or, in the case of BRA, jump unconditionally
		if d.Effect == instructions.Branch {
			test.Equate(t, int(d.AddressingMode), int(instructions.Relative))
		}
		if d.AddressingMode == instructions.Relative {
			ok := d.Effect == instructions.Branch || d.Effect == instructions.Subroutine ||
				d.Effect == instructions.Jump
			test.Equate(t, ok, true)
		}

		if d.Cycles < 2 || d.Cycles > 12 {
			t.Errorf("%s: implausible cycle count (%d)", d, d.Cycles)
		}
	}
}

func TestAccumulatorVariants(t *testing.T) {
	defs := instructions.GetDefinitions()

	// the A and B variants of the accumulator group are $10 apart
	test.Equate(t, defs[0x86].Mnemonic, "LDAA")
	test.Equate(t, int(defs[0x86].Accumulator), int(instructions.AccA))
	test.Equate(t, defs[0xc6].Mnemonic, "LDAB")
	test.Equate(t, int(defs[0xc6].Accumulator), int(instructions.AccB))

	test.Equate(t, defs[0x4f].Mnemonic, "CLRA")
	test.Equate(t, defs[0x5f].Mnemonic, "CLRB")
	test.Equate(t, int(defs[0x4f].AddressingMode), int(instructions.Inherent))
}

func TestNotableEntries(t *testing.T) {
	defs := instructions.GetDefinitions()

	// CPX immediate takes a 16 bit operand
	test.Equate(t, defs[0x8c].Mnemonic, "CPX")
	test.Equate(t, defs[0x8c].Bytes, 3)
	test.Equate(t, defs[0x8c].Wide, true)

	// STX extended occupies the last table slot
	test.Equate(t, defs[0xff].Mnemonic, "STX")
	test.Equate(t, int(defs[0xff].AddressingMode), int(instructions.Extended))

	// RTI rewrites the whole condition-code register from the stack
	test.Equate(t, defs[0x3b].Flags == instructions.FlagsCCR, true)
	test.Equate(t, defs[0x3b].Stack, true)
	test.Equate(t, int(defs[0x3b].Effect), int(instructions.Return))

	// a representative gap in the opcode map
	if defs[0xfd] != nil {
		t.Errorf("expected $fd to be undefined")
	}

	// BRA is unconditional and so does not count as a branch, unlike BEQ
	test.Equate(t, int(defs[0x20].Effect), int(instructions.Jump))
	test.Equate(t, defs[0x20].IsBranch(), false)
	test.Equate(t, defs[0x27].IsBranch(), true)
	test.Equate(t, defs[0x01].IsBranch(), false)
}

func TestString(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, defs[0x86].String(), "86 LDAA +2bytes (2 cycles) [mode=Immediate effect=Sequential]")
	test.Equate(t, instructions.Definition{}.String(), "undecoded instruction")
}
