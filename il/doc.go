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

// Package il defines the low-level intermediate representation vocabulary
// that lifted 6800 instructions are expressed in: registers, condition-code
// flags, expressions over them, and the statements (assignments, flag sets,
// jumps, calls) that make up a lifted instruction.
//
// The lifter emits statements through the narrow Appender interface. The
// Sequence type is the standard implementation but a consumer with its own
// IR can implement Appender and receive statements directly.
//
// The statements of one lifted instruction form a single atomic transfer.
// Every expression is evaluated against the machine state at the start of
// the instruction, whatever its position in the sequence; condition-code
// statements can therefore follow the data operation they describe while
// still reading pre-operation register values.
//
// Expressions and statements are immutable once built. The String() methods
// produce a stable textual form used by the lift output of the command line
// program and by tests.
package il
