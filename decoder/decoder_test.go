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

package decoder_test

import (
	"testing"

	"github.com/mossley/m6800front/curated"
	"github.com/mossley/m6800front/decoder"
	"github.com/mossley/m6800front/test"
)

func TestImmediate(t *testing.T) {
	ins, err := decoder.Decode([]byte{0x86, 0x2a}, 0x1000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Mnemonic(), "LDAA")
	test.Equate(t, ins.Address, 0x1000)
	test.Equate(t, ins.Length, 2)
	test.Equate(t, ins.Operand, 0x2a)
	test.Equate(t, ins.OperandString(), "#$2a")
	test.Equate(t, ins.String(), "$1000 LDAA #$2a")
}

func TestExtended(t *testing.T) {
	// 16 bit operands are big-endian
	ins, err := decoder.Decode([]byte{0x7e, 0x10, 0x00}, 0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Mnemonic(), "JMP")
	test.Equate(t, ins.Length, 3)
	test.Equate(t, ins.Operand, 0x1000)

	target, ok := ins.Target()
	test.Equate(t, ok, true)
	test.Equate(t, target, 0x1000)
}

func TestWideImmediate(t *testing.T) {
	ins, err := decoder.Decode([]byte{0xce, 0x12, 0x34}, 0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Mnemonic(), "LDX")
	test.Equate(t, ins.Length, 3)
	test.Equate(t, ins.Operand, 0x1234)
	test.Equate(t, ins.OperandString(), "#$1234")
}

func TestDirectAndIndexed(t *testing.T) {
	ins, err := decoder.Decode([]byte{0x97, 0x80}, 0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operand, 0x80)
	test.Equate(t, ins.OperandString(), "$80")

	// indexed operands stay as raw offsets; the value of X is unknown
	ins, err = decoder.Decode([]byte{0xab, 0x05}, 0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operand, 0x05)
	test.Equate(t, ins.OperandString(), "$05,X")
}

func TestRelativeResolution(t *testing.T) {
	// a branch offset of -2 targets the branch instruction itself
	ins, err := decoder.Decode([]byte{0x27, 0xfe}, 0x1000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Mnemonic(), "BEQ")
	test.Equate(t, ins.Operand, 0x1000)

	target, ok := ins.Target()
	test.Equate(t, ok, true)
	test.Equate(t, target, 0x1000)

	// forward branch
	ins, err = decoder.Decode([]byte{0x26, 0x10}, 0x2000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operand, 0x2012)

	// target resolution wraps at the 16 bit boundary
	ins, err = decoder.Decode([]byte{0x20, 0x10}, 0xfffe)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Operand, 0x0010)
}

func TestIndexedJumpHasNoStaticTarget(t *testing.T) {
	ins, err := decoder.Decode([]byte{0x6e, 0x04}, 0x0000)
	test.ExpectedSuccess(t, err)

	_, ok := ins.Target()
	test.Equate(t, ok, false)
}

func TestUndefinedOpcode(t *testing.T) {
	_, err := decoder.Decode([]byte{0xfd}, 0x0000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, decoder.UndefinedOpcode), true)
	test.Equate(t, err.Error(), "decoder: undefined opcode (0xfd)")
}

func TestTruncatedOperand(t *testing.T) {
	// ADDA indexed requires one operand byte
	_, err := decoder.Decode([]byte{0xab}, 0x0000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, decoder.TruncatedOperand), true)

	// extended mode with only one of two operand bytes
	_, err = decoder.Decode([]byte{0x7e, 0x10}, 0x0000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, decoder.TruncatedOperand), true)

	// an empty window cannot even supply an opcode
	_, err = decoder.Decode([]byte{}, 0x0000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, decoder.TruncatedOperand), true)
}

func TestSurplusBytesIgnored(t *testing.T) {
	// decode never reads past the instruction length
	ins, err := decoder.Decode([]byte{0x01, 0xff, 0xff, 0xff}, 0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Mnemonic(), "NOP")
	test.Equate(t, ins.Length, 1)
	test.Equate(t, ins.Operand, 0x0000)
}

func TestDeterminism(t *testing.T) {
	// no state survives a decode call
	a, err := decoder.Decode([]byte{0x8b, 0x10}, 0x4000)
	test.ExpectedSuccess(t, err)
	b, err := decoder.Decode([]byte{0x8b, 0x10}, 0x4000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, a == b, true)
}

func TestLookup(t *testing.T) {
	if decoder.Lookup(0x01) == nil {
		t.Errorf("expected a definition for NOP")
	}
	if decoder.Lookup(0xfd) != nil {
		t.Errorf("did not expect a definition for $fd")
	}
}
