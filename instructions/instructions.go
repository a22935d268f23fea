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

package instructions

import "fmt"

// Accumulator identifies which accumulator, if any, an instruction operates
// on. The 6800 encodes the A and B variants of an instruction as distinct
// opcodes so the accumulator is a property of the Definition, not of the
// operand bytes.
type Accumulator int

// List of accumulator variants.
const (
	AccNone Accumulator = iota
	AccA
	AccB
)

func (a Accumulator) String() string {
	switch a {
	case AccA:
		return "A"
	case AccB:
		return "B"
	}
	return ""
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operation      Operation
	Accumulator    Accumulator
	AddressingMode AddressingMode
	Bytes          int
	Cycles         int
	Effect         EffectCategory
	Flags          FlagEffect

	// Wide instructions operate on a 16 bit quantity. for Immediate mode
	// this decides whether one or two operand bytes follow the opcode
	Wide bool

	// whether the instruction reads or adjusts the stack pointer
	Stack bool

	// whether the instruction is a pure register-to-register transfer
	RegisterMove bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a conditional branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Branch
}

// OperandBytes returns the number of operand bytes that follow the opcode.
func (defn Definition) OperandBytes() int {
	return defn.Bytes - 1
}
