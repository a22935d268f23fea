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

// Package instructions holds the opcode table for the Motorola 6800. The
// table is the single source of truth for mnemonic, addressing mode,
// instruction length, flow effect and condition-code policy; the decoder and
// lifter packages derive all of their behaviour from it and never re-encode
// opcode knowledge of their own.
//
// The table itself lives in table.go, which is generated from
// instructions.csv by the program in the generator directory. Use "go
// generate" from this directory to recreate it after editing the CSV.
//
// GetDefinitions() returns a slice of 256 entries indexed by opcode.
// Undefined opcodes are nil entries - the 6800 defines 197 of the 256
// possible byte values and has no illegal-opcode trap, so a nil entry must
// be reported by the caller, never treated as a no-op.
package instructions
