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

// FlagChange describes what an instruction does to one condition-code bit.
type FlagChange int

const (
	Unaffected FlagChange = iota
	Cleared
	Set
	FromResult   // computed from the result of the operation
	FromOperands // computed from the operands (carry, overflow, half-carry)
)

func (c FlagChange) String() string {
	switch c {
	case Unaffected:
		return "-"
	case Cleared:
		return "0"
	case Set:
		return "1"
	case FromResult:
		return "r"
	case FromOperands:
		return "o"
	}
	return "?"
}

// FlagEffect describes what an instruction does to each of the five
// condition-code bits the analysis cares about. the interrupt mask bit is
// not part of the descriptor; the few instructions that touch it (CLI, SEI,
// TAP, RTI, SWI) are handled explicitly by the lifter.
type FlagEffect struct {
	H, N, Z, V, C FlagChange
}

// Any returns true if the instruction affects at least one condition-code
// bit.
func (f FlagEffect) Any() bool {
	return f != FlagsNone
}

// The flag policies used by the opcode table. every table row references one
// of these by name; the lifter's condition-code model keys its expression
// building off the per-flag FlagChange values.
var (
	// no condition codes affected
	FlagsNone = FlagEffect{}

	// ADD, ADC, ABA
	FlagsAdd = FlagEffect{H: FromOperands, N: FromResult, Z: FromResult, V: FromOperands, C: FromOperands}

	// SUB, SBC, CMP, SBA, CBA, NEG. no half-carry on the 6800's subtract family
	FlagsSub = FlagEffect{N: FromResult, Z: FromResult, V: FromOperands, C: FromOperands}

	// AND, BIT, EOR, ORA and all loads, stores and 8/16 bit transfers
	FlagsLogic = FlagEffect{N: FromResult, Z: FromResult, V: Cleared}

	// ASL, ASR, LSR, ROL, ROR. C is the shifted-out bit, V is N xor C
	FlagsShift = FlagEffect{N: FromResult, Z: FromResult, V: FromOperands, C: FromOperands}

	// TST
	FlagsTest = FlagEffect{N: FromResult, Z: FromResult, V: Cleared, C: Cleared}

	// CLR
	FlagsClear = FlagEffect{N: Cleared, Z: Set, V: Cleared, C: Cleared}

	// COM
	FlagsComplement = FlagEffect{N: FromResult, Z: FromResult, V: Cleared, C: Set}

	// INC, DEC, CPX
	FlagsNZV = FlagEffect{N: FromResult, Z: FromResult, V: FromOperands}

	// INX, DEX
	FlagsZ = FlagEffect{Z: FromResult}

	// DAA. the overflow bit is documented as undefined so it is left alone.
	// note that this descriptor records the architectural effect only. the
	// lifter emits no flag statements for DAA, just an unimplemented marker,
	// and consumers must treat N, Z and C as clobbered
	FlagsDAA = FlagEffect{N: FromResult, Z: FromResult, C: FromOperands}

	// TAP, RTI. the whole condition-code register is rewritten
	FlagsCCR = FlagEffect{H: FromOperands, N: FromOperands, Z: FromOperands, V: FromOperands, C: FromOperands}

	// single-bit instructions
	FlagsSetC   = FlagEffect{C: Set}
	FlagsClearC = FlagEffect{C: Cleared}
	FlagsSetV   = FlagEffect{V: Set}
	FlagsClearV = FlagEffect{V: Cleared}
)
