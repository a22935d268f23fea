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

import "fmt"

type widths struct {
	bytecode int
	address  int
	mnemonic int
	operand  int
	cycles   int
	notes    int
}

type format struct {
	bytecode string
	address  string
	mnemonic string
	operand  string
	cycles   string
	notes    string
}

type fields struct {
	widths widths
	fmt    format
}

// update width and formatting information for entry fields.
func (fld *fields) update(e *Entry) {
	if len(e.Bytecode) > fld.widths.bytecode {
		fld.widths.bytecode = len(e.Bytecode)
	}
	if len(e.Address) > fld.widths.address {
		fld.widths.address = len(e.Address)
	}
	if len(e.Mnemonic) > fld.widths.mnemonic {
		fld.widths.mnemonic = len(e.Mnemonic)
	}
	if len(e.Operand) > fld.widths.operand {
		fld.widths.operand = len(e.Operand)
	}
	if len(e.Cycles) > fld.widths.cycles {
		fld.widths.cycles = len(e.Cycles)
	}
	if len(e.Notes) > fld.widths.notes {
		fld.widths.notes = len(e.Notes)
	}

	fld.fmt.bytecode = fmt.Sprintf("%%-%ds", fld.widths.bytecode)
	fld.fmt.address = fmt.Sprintf("%%-%ds", fld.widths.address)
	fld.fmt.mnemonic = fmt.Sprintf("%%-%ds", fld.widths.mnemonic)
	fld.fmt.operand = fmt.Sprintf("%%-%ds", fld.widths.operand)
	fld.fmt.cycles = fmt.Sprintf("%%-%ds", fld.widths.cycles)
	fld.fmt.notes = fmt.Sprintf("%%-%ds", fld.widths.notes)
}
