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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/mossley/m6800front/decoder"
	"github.com/mossley/m6800front/instructions"
)

// Entry is one formatted line of a disassembly. all fields are preformatted
// strings so that the write functions only have to deal with alignment.
type Entry struct {
	// the decoded instruction. the zero value for entries that did not
	// decode, in which case Defined is false
	Result decoder.Instruction

	// false for bytes that are not the start of a defined instruction.
	// such entries render as a .byte directive
	Defined bool

	Bytecode string
	Address  string
	Mnemonic string
	Operand  string
	Cycles   string

	// flow annotation for branches, jumps, calls and returns. empty for
	// sequential instructions
	Notes string
}

func newEntry(ins decoder.Instruction, raw []byte) *Entry {
	e := &Entry{
		Result:   ins,
		Defined:  true,
		Address:  fmt.Sprintf("$%04x", ins.Address),
		Mnemonic: ins.Mnemonic(),
		Operand:  ins.OperandString(),
		Cycles:   fmt.Sprintf("%d", ins.Defn.Cycles),
		Notes:    flowNotes(ins),
	}
	e.Bytecode = bytecode(raw[:ins.Length])
	return e
}

// newByteEntry covers a byte that is not the start of a defined instruction.
// disassembly resynchronises at the next byte.
func newByteEntry(addr uint16, b uint8) *Entry {
	return &Entry{
		Address:  fmt.Sprintf("$%04x", addr),
		Mnemonic: ".byte",
		Operand:  fmt.Sprintf("$%02x", b),
		Bytecode: fmt.Sprintf("%02x", b),
	}
}

func bytecode(raw []byte) string {
	s := strings.Builder{}
	for i, b := range raw {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// flowNotes summarises where control goes after the instruction. a host
// building a control-flow graph can get the same information from the
// Result field; this is the human-readable form.
func flowNotes(ins decoder.Instruction) string {
	target := func() string {
		if t, ok := ins.Target(); ok {
			return fmt.Sprintf("$%04x", t)
		}
		return fmt.Sprintf("$%02x,X", uint8(ins.Operand))
	}

	switch ins.Defn.Effect {
	case instructions.Branch:
		return fmt.Sprintf("branch -> %s", target())
	case instructions.Jump:
		return fmt.Sprintf("jump -> %s", target())
	case instructions.Subroutine:
		return fmt.Sprintf("call -> %s", target())
	case instructions.Return:
		return "return"
	case instructions.Interrupt:
		return "interrupt"
	}

	return ""
}

// String returns a single-line representation of the entry without column
// alignment.
func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Mnemonic)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Mnemonic, e.Operand)
}
