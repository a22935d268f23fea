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

package decoder

import (
	"github.com/mossley/m6800front/curated"
	"github.com/mossley/m6800front/instructions"
)

// error patterns returned by Decode(). test with curated.Is().
const (
	// the opcode byte has no entry in the instruction table. the 6800 has no
	// illegal-opcode trap so this must be surfaced to the caller, who will
	// typically skip one byte and resynchronise
	UndefinedOpcode = "decoder: undefined opcode (%#02x)"

	// fewer bytes are available in the input window than the addressing mode
	// requires. callers iterating over a buffer treat this as end-of-stream
	TruncatedOperand = "decoder: truncated operand for %s (%d bytes required, %d available)"
)

// the opcode table. initialised once at package load and never mutated,
// which is what makes concurrent Decode() calls safe without locking.
var definitions = instructions.GetDefinitions()

// Lookup returns the table entry for an opcode, or nil if the opcode is
// undefined. every byte value is one or the other; there is no third
// outcome.
func Lookup(opcode uint8) *instructions.Definition {
	return definitions[opcode]
}

// Decode the instruction in data, which holds the bytes available at
// address addr. data need never be longer than three bytes but may be
// shorter, in which case TruncatedOperand is returned if the instruction
// requires the missing bytes.
//
// Decoding is a single pass: the 6800 instruction set has no prefix bytes
// and no mode stickiness, so every call is independent and reentrant.
func Decode(data []byte, addr uint16) (Instruction, error) {
	if len(data) == 0 {
		return Instruction{}, curated.Errorf(TruncatedOperand, "opcode", 1, 0)
	}

	opcode := data[0]
	defn := definitions[opcode]
	if defn == nil {
		return Instruction{}, curated.Errorf(UndefinedOpcode, opcode)
	}

	count, err := resolve(defn, len(data)-1)
	if err != nil {
		return Instruction{}, err
	}

	ins := Instruction{
		Address: addr,
		OpCode:  opcode,
		Defn:    defn,
		Length:  defn.Bytes,
	}

	operand := decodeOperand(data[1 : 1+count])

	if defn.AddressingMode == instructions.Relative {
		// relative offsets are two's complement and the target is statically
		// known, so resolve to an absolute address now. addition wraps
		// naturally at the 16 bit boundary
		offset := int8(operand)
		ins.Operand = addr + uint16(defn.Bytes) + uint16(int16(offset))
	} else {
		ins.Operand = operand
	}

	return ins, nil
}
