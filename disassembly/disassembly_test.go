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

package disassembly_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mossley/m6800front/disassembly"
	"github.com/mossley/m6800front/test"
)

// a small program exercising the interesting cases: a defined instruction,
// a subroutine call, an undefined opcode in the middle of the window and a
// truncated instruction at the end of it
var program = []byte{
	0x86, 0x2a, // LDAA #$2a
	0xbd, 0x20, 0x00, // JSR $2000
	0xfd, // undefined
	0x39, // RTS
	0x7e, // JMP cut short by the end of the window
}

func TestLinearDisassembly(t *testing.T) {
	dsm, err := disassembly.FromBytes(program, 0x1000)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	// the undefined byte and the truncated JMP become .byte entries. every
	// byte of the window is accounted for
	test.Equate(t, len(dsm.Entries), 5)

	test.Equate(t, dsm.Entries[0].Address, "$1000")
	test.Equate(t, dsm.Entries[0].Mnemonic, "LDAA")
	test.Equate(t, dsm.Entries[0].Operand, "#$2a")
	test.Equate(t, dsm.Entries[0].Bytecode, "86 2a")
	test.Equate(t, dsm.Entries[0].Cycles, "2")
	test.Equate(t, dsm.Entries[0].Defined, true)
	test.Equate(t, dsm.Entries[0].Notes, "")

	test.Equate(t, dsm.Entries[1].Address, "$1002")
	test.Equate(t, dsm.Entries[1].Mnemonic, "JSR")
	test.Equate(t, dsm.Entries[1].Notes, "call -> $2000")

	test.Equate(t, dsm.Entries[2].Address, "$1005")
	test.Equate(t, dsm.Entries[2].Mnemonic, ".byte")
	test.Equate(t, dsm.Entries[2].Operand, "$fd")
	test.Equate(t, dsm.Entries[2].Defined, false)

	test.Equate(t, dsm.Entries[3].Mnemonic, "RTS")
	test.Equate(t, dsm.Entries[3].Notes, "return")

	test.Equate(t, dsm.Entries[4].Mnemonic, ".byte")
	test.Equate(t, dsm.Entries[4].Operand, "$7e")
	test.Equate(t, dsm.Entries[4].Defined, false)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromBytes(program, 0x1000)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	b := &bytes.Buffer{}
	err = dsm.Write(b, disassembly.WriteAttr{})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(b.String(), "\n")
	test.Equate(t, len(lines), 6) // trailing newline
	test.Equate(t, strings.TrimRight(lines[0], " "), "$1000  LDAA  #$2a")
	test.Equate(t, strings.TrimRight(lines[3], " "), "$1006  RTS")

	// flow information is appended as a comment
	b.Reset()
	err = dsm.Write(b, disassembly.WriteAttr{FlowInfo: true})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines = strings.Split(b.String(), "\n")
	test.Equate(t, lines[1], "$1002  JSR   $2000  ; call -> $2000")

	// bytecode column is optional
	b.Reset()
	err = dsm.Write(b, disassembly.WriteAttr{ByteCode: true})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines = strings.Split(b.String(), "\n")
	test.Equate(t, strings.TrimRight(lines[1], " "), "bd 20 00  $1002  JSR   $2000")
}

func TestLookup(t *testing.T) {
	dsm, err := disassembly.FromBytes(program, 0x1000)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	e := dsm.Lookup(0x1002)
	if e == nil {
		t.Fatalf("expected an entry at $1002")
	}
	test.Equate(t, e.Mnemonic, "JSR")

	// $1001 is the middle of an instruction, not the start of one
	if dsm.Lookup(0x1001) != nil {
		t.Errorf("did not expect an entry at $1001")
	}
}

func TestGrep(t *testing.T) {
	dsm, err := disassembly.FromBytes(program, 0x1000)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	b := &bytes.Buffer{}
	err = dsm.Grep(b, disassembly.GrepMnemonic, "jsr", false)
	if err != nil {
		t.Fatalf("grep failed: %v", err)
	}
	test.Equate(t, strings.Contains(b.String(), "$2000"), true)
	test.Equate(t, strings.Contains(b.String(), "LDAA"), false)

	// case sensitive search for a lower-case mnemonic matches nothing
	b.Reset()
	err = dsm.Grep(b, disassembly.GrepMnemonic, "jsr", true)
	if err != nil {
		t.Fatalf("grep failed: %v", err)
	}
	test.Equate(t, b.String(), "")
}
