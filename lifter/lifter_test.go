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

package lifter_test

import (
	"testing"

	"github.com/mossley/m6800front/decoder"
	"github.com/mossley/m6800front/il"
	"github.com/mossley/m6800front/lifter"
	"github.com/mossley/m6800front/test"
)

func lift(t *testing.T, addr uint16, data ...byte) []il.Stmt {
	t.Helper()

	ins, err := decoder.Decode(data, addr)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	seq := &il.Sequence{}
	lifter.Lift(seq, ins)
	return seq.Stmts
}

func TestLoadImmediate(t *testing.T) {
	stmts := lift(t, 0x1000, 0x86, 0x2a)
	test.Equate(t, len(stmts), 4)
	test.Equate(t, stmts[0].String(), "A = $2a")
	test.Equate(t, stmts[1].String(), "N = $2a.7")
	test.Equate(t, stmts[2].String(), "Z = ($2a == $00)")
	test.Equate(t, stmts[3].String(), "V = $00")
}

func TestAddFlagOrder(t *testing.T) {
	// ADDA immediate affects all five condition codes. the statements must
	// arrive after the register write and in the order H, N, Z, V, C
	stmts := lift(t, 0x0000, 0x8b, 0x10)
	test.Equate(t, len(stmts), 6)
	test.Equate(t, stmts[0].String(), "A = (A + $10)")
	test.Equate(t, stmts[1].String(), "H = ((A ^ $10) ^ (A + $10)).4")
	test.Equate(t, stmts[2].String(), "N = (A + $10).7")
	test.Equate(t, stmts[3].String(), "Z = ((A + $10) == $00)")
	test.Equate(t, stmts[4].String(), "V = ((A ^ (A + $10)) & ($10 ^ (A + $10))).7")
	test.Equate(t, stmts[5].String(), "C = (zx(A) + zx($10)).8")
}

func TestBranchBackward(t *testing.T) {
	// BEQ at $1000 with offset $fe targets the branch itself
	stmts := lift(t, 0x1000, 0x27, 0xfe)
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(), "if Z goto $1000")
}

func TestBranchConditions(t *testing.T) {
	// signed and unsigned comparison branches read more than one flag
	stmts := lift(t, 0x0000, 0x22, 0x05) // BHI
	test.Equate(t, stmts[0].String(), "if (!(C | Z)) goto $0007")

	stmts = lift(t, 0x0000, 0x2c, 0x05) // BGE
	test.Equate(t, stmts[0].String(), "if (!(N ^ V)) goto $0007")

	stmts = lift(t, 0x0000, 0x2f, 0x05) // BLE
	test.Equate(t, stmts[0].String(), "if (Z | (N ^ V)) goto $0007")
}

func TestUnconditionalFlow(t *testing.T) {
	// BRA lifts to a plain jump, not a conditional
	stmts := lift(t, 0x2000, 0x20, 0x10)
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(), "goto $2012")

	stmts = lift(t, 0x0000, 0x7e, 0x12, 0x34)
	test.Equate(t, stmts[0].String(), "goto $1234")

	// indexed jumps stay symbolic
	stmts = lift(t, 0x0000, 0x6e, 0x04)
	test.Equate(t, stmts[0].String(), "goto (X + $04)")
}

func TestSubroutine(t *testing.T) {
	stmts := lift(t, 0x0000, 0xbd, 0x12, 0x34)
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(), "call $1234")

	// BSR targets are resolved like branches
	stmts = lift(t, 0x1000, 0x8d, 0x10)
	test.Equate(t, stmts[0].String(), "call $1012")

	stmts = lift(t, 0x0000, 0x39)
	test.Equate(t, stmts[0].String(), "return")
}

func TestInterrupt(t *testing.T) {
	stmts := lift(t, 0x0000, 0x3f)
	test.Equate(t, len(stmts), 2)
	test.Equate(t, stmts[0].String(), "I = $01")
	test.Equate(t, stmts[1].String(), "trap")

	stmts = lift(t, 0x0000, 0x3e)
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(), "halt")
}

func TestReturnFromInterrupt(t *testing.T) {
	// RTI restores the condition codes from the stacked byte before
	// returning. the interrupt mask comes back too
	stmts := lift(t, 0x0000, 0x3b)
	test.Equate(t, len(stmts), 7)
	test.Equate(t, stmts[0].String(), "H = [(SP + $0001)].5")
	test.Equate(t, stmts[1].String(), "N = [(SP + $0001)].3")
	test.Equate(t, stmts[2].String(), "Z = [(SP + $0001)].2")
	test.Equate(t, stmts[3].String(), "V = [(SP + $0001)].1")
	test.Equate(t, stmts[4].String(), "C = [(SP + $0001)].0")
	test.Equate(t, stmts[5].String(), "I = [(SP + $0001)].4")
	test.Equate(t, stmts[6].String(), "return")
}

func TestStack(t *testing.T) {
	// push stores at SP then decrements. pull is the mirror image
	stmts := lift(t, 0x0000, 0x36)
	test.Equate(t, len(stmts), 2)
	test.Equate(t, stmts[0].String(), "[SP] = A")
	test.Equate(t, stmts[1].String(), "SP = (SP - $0001)")

	stmts = lift(t, 0x0000, 0x33)
	test.Equate(t, len(stmts), 2)
	test.Equate(t, stmts[0].String(), "B = [(SP + $0001)]")
	test.Equate(t, stmts[1].String(), "SP = (SP + $0001)")

	stmts = lift(t, 0x0000, 0x30) // TSX
	test.Equate(t, stmts[0].String(), "X = (SP + $0001)")

	stmts = lift(t, 0x0000, 0x35) // TXS
	test.Equate(t, stmts[0].String(), "SP = (X - $0001)")
}

func TestReadModifyWrite(t *testing.T) {
	// CLRA writes zero and sets the condition codes without reading A
	stmts := lift(t, 0x0000, 0x4f)
	test.Equate(t, len(stmts), 5)
	test.Equate(t, stmts[0].String(), "A = $00")
	test.Equate(t, stmts[1].String(), "N = $00")
	test.Equate(t, stmts[2].String(), "Z = $01")
	test.Equate(t, stmts[3].String(), "V = $00")
	test.Equate(t, stmts[4].String(), "C = $00")

	// RORA rotates through carry. C receives the shifted-out bit
	stmts = lift(t, 0x0000, 0x46)
	test.Equate(t, len(stmts), 5)
	test.Equate(t, stmts[0].String(), "A = ((A >> $01) | (C << $07))")
	test.Equate(t, stmts[4].String(), "C = A.0")

	// INC on memory reads and writes the same indexed address
	stmts = lift(t, 0x0000, 0x6c, 0x05)
	test.Equate(t, stmts[0].String(), "[(X + $05)] = ([(X + $05)] + $01)")
	test.Equate(t, stmts[3].String(), "V = ([(X + $05)] == $7f)")
}

func TestNegate(t *testing.T) {
	// NEGA overflows only when the accumulator holds $80
	stmts := lift(t, 0x0000, 0x40)
	test.Equate(t, len(stmts), 5)
	test.Equate(t, stmts[0].String(), "A = (-A)")
	test.Equate(t, stmts[1].String(), "N = (-A).7")
	test.Equate(t, stmts[2].String(), "Z = ((-A) == $00)")
	test.Equate(t, stmts[3].String(), "V = (A == $80)")
	test.Equate(t, stmts[4].String(), "C = (!((-A) == $00))")

	// NEG on memory tests the pre-instruction value at the same address
	stmts = lift(t, 0x0000, 0x60, 0x05)
	test.Equate(t, stmts[3].String(), "V = ([(X + $05)] == $80)")
}

func TestTestWritesNothing(t *testing.T) {
	stmts := lift(t, 0x0000, 0x7d, 0x20, 0x00)
	test.Equate(t, len(stmts), 4)
	test.Equate(t, stmts[0].String(), "N = [$2000].7")
	test.Equate(t, stmts[1].String(), "Z = ([$2000] == $00)")
	test.Equate(t, stmts[2].String(), "V = $00")
	test.Equate(t, stmts[3].String(), "C = $00")
}

func TestCompareWritesNothing(t *testing.T) {
	// CMPA direct affects flags only
	stmts := lift(t, 0x0000, 0x91, 0x80)
	test.Equate(t, len(stmts), 4)
	test.Equate(t, stmts[0].String(), "N = (A - [$0080]).7")
	test.Equate(t, stmts[3].String(), "C = (A < [$0080])")
}

func TestStore(t *testing.T) {
	stmts := lift(t, 0x0000, 0x97, 0x80)
	test.Equate(t, len(stmts), 4)
	test.Equate(t, stmts[0].String(), "[$0080] = A")
	test.Equate(t, stmts[1].String(), "N = A.7")
	test.Equate(t, stmts[2].String(), "Z = (A == $00)")
	test.Equate(t, stmts[3].String(), "V = $00")
}

func TestWideOperations(t *testing.T) {
	// CPX immediate compares the 16 bit index register
	stmts := lift(t, 0x0000, 0x8c, 0x00, 0x10)
	test.Equate(t, len(stmts), 3)
	test.Equate(t, stmts[0].String(), "N = (X - $0010).15")
	test.Equate(t, stmts[1].String(), "Z = ((X - $0010) == $0000)")
	test.Equate(t, stmts[2].String(), "V = ((X ^ $0010) & (X ^ (X - $0010))).15")

	// LDS extended is a 16 bit big-endian load
	stmts = lift(t, 0x0000, 0xbe, 0x12, 0x34)
	test.Equate(t, stmts[0].String(), "SP = [$1234].w")

	// STX indexed
	stmts = lift(t, 0x0000, 0xef, 0x02)
	test.Equate(t, stmts[0].String(), "[(X + $02)].w = X")
}

func TestConditionRegisterTransfers(t *testing.T) {
	stmts := lift(t, 0x0000, 0x06) // TAP
	test.Equate(t, len(stmts), 6)
	test.Equate(t, stmts[0].String(), "H = A.5")
	test.Equate(t, stmts[4].String(), "C = A.0")
	test.Equate(t, stmts[5].String(), "I = A.4")

	stmts = lift(t, 0x0000, 0x07) // TPA
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(),
		"A = (((((($c0 | (H << $05)) | (I << $04)) | (N << $03)) | (Z << $02)) | (V << $01)) | C)")
}

func TestFlagInstructions(t *testing.T) {
	stmts := lift(t, 0x0000, 0x0d) // SEC
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(), "C = $01")

	stmts = lift(t, 0x0000, 0x0a) // CLV
	test.Equate(t, stmts[0].String(), "V = $00")

	stmts = lift(t, 0x0000, 0x0f) // SEI
	test.Equate(t, stmts[0].String(), "I = $01")
}

func TestIndexRegisterStep(t *testing.T) {
	// INX and DEX only touch the zero flag
	stmts := lift(t, 0x0000, 0x08)
	test.Equate(t, len(stmts), 2)
	test.Equate(t, stmts[0].String(), "X = (X + $0001)")
	test.Equate(t, stmts[1].String(), "Z = ((X + $0001) == $0000)")
}

func TestDecimalAdjust(t *testing.T) {
	// the unimplemented marker arrives alone. no flag statements accompany
	// it despite the N, Z and C entries in the DAA flag descriptor
	stmts := lift(t, 0x0000, 0x19)
	test.Equate(t, len(stmts), 1)
	test.Equate(t, stmts[0].String(), "unimplemented")
}

func TestEveryDefinedOpcodeLifts(t *testing.T) {
	// each defined opcode must produce at least one statement without
	// panicking. operand bytes are arbitrary
	for op := 0; op < 256; op++ {
		data := []byte{uint8(op), 0x12, 0x34}
		ins, err := decoder.Decode(data, 0x8000)
		if err != nil {
			continue
		}
		seq := &il.Sequence{}
		lifter.Lift(seq, ins)
		if len(seq.Stmts) == 0 {
			t.Errorf("opcode %#02x (%s) lifted to nothing", op, ins.Defn)
		}
	}
}

func TestLiftWithoutDefinition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for instruction without a definition")
		}
	}()
	lifter.Lift(&il.Sequence{}, decoder.Instruction{OpCode: 0xfd})
}
