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

package decoder

import (
	"github.com/mossley/m6800front/curated"
	"github.com/mossley/m6800front/instructions"
)

// resolve checks that enough bytes remain in the input window for the
// addressing mode of the definition and returns the number of operand bytes
// that follow the opcode. for Inherent instructions that number is zero.
func resolve(defn *instructions.Definition, remaining int) (int, error) {
	count := defn.OperandBytes()
	if remaining < count {
		return 0, curated.Errorf(TruncatedOperand, defn.Mnemonic, count, remaining)
	}
	return count, nil
}

// decodeOperand converts raw operand bytes to a value. a pure byte-to-value
// conversion: 16 bit reads are big-endian, single-byte values are
// zero-extended. signed interpretation (for Relative mode) is the caller's
// responsibility.
func decodeOperand(raw []byte) uint16 {
	switch len(raw) {
	case 1:
		return uint16(raw[0])
	case 2:
		return uint16(raw[0])<<8 | uint16(raw[1])
	}
	return 0
}
