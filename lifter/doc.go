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

// Package lifter translates decoded 6800 instructions into IL statement
// sequences.
//
// The statements of one lifted instruction form a single atomic transfer:
// every expression is evaluated against the machine state at the start of
// the instruction, regardless of its position in the sequence. This is what
// allows the condition-code statements to follow the primary data operation
// - in the fixed order H, N, Z, V, C - while still reading pre-operation
// register values.
//
// The condition-code model lives in flags.go. It maps the FlagEffect
// descriptor of a table entry, together with the operand and result
// expressions of the instruction, to the ordered list of flag assignments.
// Nothing outside this package consults it.
//
// Lift() panics if handed an instruction without a table definition. the
// decoder contract guarantees this cannot happen through the public API, so
// it signals a programming mistake rather than a data problem.
package lifter
