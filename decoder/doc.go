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

// Package decoder turns raw bytes at a known load address into decoded 6800
// instructions.
//
// Decode() is a pure function over its arguments and the (immutable) opcode
// table: no memory access, no session state, safe for concurrent use. The
// caller supplies a byte window of the bytes available at the address -
// three bytes is always enough - and uses the Length field of the returned
// Instruction to advance through the stream. Decode never reads past
// Length bytes.
//
// The two failure modes are the UndefinedOpcode and TruncatedOperand error
// patterns. Both are recoverable: a caller disassembling a stream would
// typically skip one byte and resynchronise on the former, and treat the
// latter as end of stream.
package decoder
