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

// EffectCategory describes the effect an instruction has on the program
// counter. everything that isn't some form of flow control is Sequential.
type EffectCategory int

const (
	Sequential EffectCategory = iota
	Branch                    // conditional branch (BEQ, BNE, etc.)
	Jump                      // unconditional transfer (BRA, JMP)
	Subroutine                // call with return address push (BSR, JSR)
	Return                    // RTS, RTI
	Interrupt                 // SWI, WAI
)

func (e EffectCategory) String() string {
	switch e {
	case Sequential:
		return "Sequential"
	case Branch:
		return "Branch"
	case Jump:
		return "Jump"
	case Subroutine:
		return "Subroutine"
	case Return:
		return "Return"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
