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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single disassembly entry to io.Writer with columns
// aligned across the whole disassembly.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if attr.ByteCode {
		if _, err := fmt.Fprintf(output, dsm.fields.fmt.bytecode, e.Bytecode); err != nil {
			return err
		}
		if _, err := io.WriteString(output, "  "); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(output, dsm.fields.fmt.address, e.Address); err != nil {
		return err
	}
	if _, err := io.WriteString(output, "  "); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(output, dsm.fields.fmt.mnemonic, e.Mnemonic); err != nil {
		return err
	}
	if _, err := io.WriteString(output, " "); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(output, dsm.fields.fmt.operand, e.Operand); err != nil {
		return err
	}

	if attr.FlowInfo && e.Notes != "" {
		if _, err := io.WriteString(output, "  ; "); err != nil {
			return err
		}
		if _, err := io.WriteString(output, e.Notes); err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, "\n")
	return err
}
