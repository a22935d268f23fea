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

// Package disassembly presents a byte window as a formatted instruction
// listing.
//
// Decoding is linear from the origin address. a byte that does not begin a
// defined instruction, or an instruction cut short by the end of the
// window, becomes a one-byte ".byte" entry and decoding resynchronises at
// the next byte. the listing therefore always accounts for every byte of
// the window.
//
// Use FromBytes() to create a Disassembly and the Write*() functions to
// output it. the Grep() function searches the formatted entries.
package disassembly
