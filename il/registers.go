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

package il

// Register names the 6800 register file.
type Register int

const (
	A  Register = iota // accumulator A, 8 bit
	B                  // accumulator B, 8 bit
	X                  // index register, 16 bit
	SP                 // stack pointer, 16 bit
	PC                 // program counter, 16 bit
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case B:
		return "B"
	case X:
		return "X"
	case SP:
		return "SP"
	case PC:
		return "PC"
	}
	return "unknown register"
}

// Width returns the register size in bytes.
func (r Register) Width() int {
	if r == A || r == B {
		return 1
	}
	return 2
}

// Flag names the bits of the 6800 condition-code register. the numeric
// value of each constant is the bit position in the pushed/pulled CCR byte.
type Flag int

const (
	C Flag = iota // carry
	V             // overflow
	Z             // zero
	N             // negative
	I             // interrupt mask
	H             // half-carry
)

func (f Flag) String() string {
	switch f {
	case C:
		return "C"
	case V:
		return "V"
	case Z:
		return "Z"
	case N:
		return "N"
	case I:
		return "I"
	case H:
		return "H"
	}
	return "unknown flag"
}
