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

	"github.com/mossley/m6800front/decoder"
	"github.com/mossley/m6800front/logger"
)

// Disassembly is a formatted instruction listing over a byte window.
type Disassembly struct {
	// the load address of the first byte of the window
	Origin uint16

	// entries in address order. every byte of the window is covered by
	// exactly one entry
	Entries []*Entry

	fields fields
}

// FromBytes disassembles a byte window loaded at the origin address.
// undefined opcodes and truncated trailing instructions are logged and
// recorded as .byte entries; the error return is reserved for future
// sources that can fail.
func FromBytes(data []byte, origin uint16) (*Disassembly, error) {
	dsm := &Disassembly{Origin: origin}

	i := 0
	for i < len(data) {
		addr := origin + uint16(i)

		ins, err := decoder.Decode(data[i:], addr)
		if err != nil {
			logger.Logf("disassembly", "%v; resynchronising at $%04x", err, addr+1)
			dsm.add(newByteEntry(addr, data[i]))
			i++
			continue
		}

		dsm.add(newEntry(ins, data[i:]))
		i += ins.Length
	}

	return dsm, nil
}

func (dsm *Disassembly) add(e *Entry) {
	dsm.fields.update(e)
	dsm.Entries = append(dsm.Entries, e)
}

// Lookup returns the entry that starts at the given address, or nil.
func (dsm *Disassembly) Lookup(addr uint16) *Entry {
	want := fmt.Sprintf("$%04x", addr)
	for _, e := range dsm.Entries {
		if e.Address == want {
			return e
		}
	}
	return nil
}
