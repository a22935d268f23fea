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
	"fmt"

	"github.com/mossley/m6800front/instructions"
)

// Instruction is the result of a successful decode. it is immutable once
// returned; downstream consumers only read it.
type Instruction struct {
	// the address the instruction was decoded at
	Address uint16

	// the opcode byte and its table entry. Defn is never nil in an
	// Instruction returned by Decode()
	OpCode uint8
	Defn   *instructions.Definition

	// the decoded operand value. the interpretation depends on the
	// addressing mode of the definition:
	//
	//	Inherent    unused
	//	Immediate   the 8 or 16 bit constant
	//	Direct      the zero-page address (0x00nn)
	//	Extended    the 16 bit address
	//	Indexed     the unsigned offset from register X (not resolved)
	//	Relative    the absolute target address (resolved at decode time)
	Operand uint16

	// total length in bytes. always equal to Defn.Bytes; the caller
	// advances its instruction pointer by this amount
	Length int
}

// Target returns the statically known control-flow target of the
// instruction. the second return value is false for instructions that do
// not transfer control and for indexed jumps/calls through register X,
// whose targets are not known until execution.
func (ins Instruction) Target() (uint16, bool) {
	switch ins.Defn.Effect {
	case instructions.Branch, instructions.Jump, instructions.Subroutine:
		if ins.Defn.AddressingMode == instructions.Indexed {
			return 0, false
		}
		return ins.Operand, true
	}
	return 0, false
}

// Mnemonic returns the instruction mnemonic.
func (ins Instruction) Mnemonic() string {
	return ins.Defn.Mnemonic
}

// OperandString returns the operand in 6800 assembly syntax. the empty
// string for inherent instructions.
func (ins Instruction) OperandString() string {
	switch ins.Defn.AddressingMode {
	case instructions.Immediate:
		if ins.Defn.Wide {
			return fmt.Sprintf("#$%04x", ins.Operand)
		}
		return fmt.Sprintf("#$%02x", ins.Operand)
	case instructions.Direct:
		return fmt.Sprintf("$%02x", ins.Operand)
	case instructions.Extended:
		return fmt.Sprintf("$%04x", ins.Operand)
	case instructions.Indexed:
		return fmt.Sprintf("$%02x,X", ins.Operand)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", ins.Operand)
	}
	return ""
}

func (ins Instruction) String() string {
	op := ins.OperandString()
	if op == "" {
		return fmt.Sprintf("$%04x %s", ins.Address, ins.Defn.Mnemonic)
	}
	return fmt.Sprintf("$%04x %s %s", ins.Address, ins.Defn.Mnemonic, op)
}
