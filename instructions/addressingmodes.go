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

// AddressingMode describes the method of memory addressing used by an
// instruction. together with the Wide field of the Definition it fixes the
// number of operand bytes that follow the opcode.
type AddressingMode int

const (
	Inherent  AddressingMode = iota // no operand bytes
	Immediate                       // one operand byte, or two for Wide instructions
	Direct                          // one byte, a zero-page style address
	Extended                        // two bytes, a big-endian 16 bit address
	Indexed                         // one byte, unsigned offset from register X
	Relative                        // one byte, signed offset from the next instruction
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Extended:
		return "Extended"
	case Indexed:
		return "Indexed"
	case Relative:
		return "Relative"
	}
	return "unknown addressing mode"
}
