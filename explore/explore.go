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

// Package explore is an interactive pager over a disassembly listing. it
// puts the terminal into cbreak mode through the easyterm sub-package and
// steps through the listing a line or a page at a time.
//
// key bindings: cursor up/down or j/k move by one line; space and b move by
// a page; g and G move to the top and bottom; q or ctrl-c leave.
package explore

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mossley/m6800front/disassembly"
	"github.com/mossley/m6800front/explore/easyterm"
)

// Explorer pages through a disassembly on a posix terminal.
type Explorer struct {
	term easyterm.Terminal

	dsm  *disassembly.Disassembly
	attr disassembly.WriteAttr

	// the formatted listing, one line per entry
	lines []string

	// index of the line at the top of the screen
	top int
}

// NewExplorer prepares an Explorer for the given disassembly.
func NewExplorer(dsm *disassembly.Disassembly, attr disassembly.WriteAttr) (*Explorer, error) {
	if len(dsm.Entries) == 0 {
		return nil, fmt.Errorf("explore: nothing to show")
	}

	exp := &Explorer{dsm: dsm, attr: attr}

	// format the whole listing up front. scrolling is then a matter of
	// slicing
	b := &bytes.Buffer{}
	if err := dsm.Write(b, attr); err != nil {
		return nil, err
	}
	exp.lines = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	if err := exp.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	return exp, nil
}

// Run the interactive loop. returns when the user leaves the pager.
func (exp *Explorer) Run() error {
	defer exp.term.CleanUp()
	exp.term.CBreakMode()

	for {
		exp.draw()

		b, err := exp.term.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 'q', easyterm.KeyCtrlC:
			exp.term.Print("\n")
			return nil

		case 'j':
			exp.scroll(1)
		case 'k':
			exp.scroll(-1)

		case ' ':
			exp.scroll(exp.pageSize())
		case 'b':
			exp.scroll(-exp.pageSize())

		case 'g':
			exp.top = 0
		case 'G':
			exp.top = exp.maxTop()

		case easyterm.KeyEsc:
			if err := exp.readCursorKey(); err != nil {
				return err
			}
		}
	}
}

// readCursorKey handles the escape sequences sent for the cursor keys.
func (exp *Explorer) readCursorKey() error {
	b, err := exp.term.ReadByte()
	if err != nil {
		return err
	}
	if b != easyterm.EscCursor {
		return nil
	}

	b, err = exp.term.ReadByte()
	if err != nil {
		return err
	}

	switch b {
	case easyterm.CursorUp:
		exp.scroll(-1)
	case easyterm.CursorDown:
		exp.scroll(1)
	}

	return nil
}

func (exp *Explorer) pageSize() int {
	// one row is reserved for the status line
	r := int(exp.term.Geometry.Rows) - 1
	if r < 1 {
		r = 24
	}
	return r
}

func (exp *Explorer) maxTop() int {
	m := len(exp.lines) - exp.pageSize()
	if m < 0 {
		m = 0
	}
	return m
}

func (exp *Explorer) scroll(lines int) {
	exp.top += lines
	if exp.top < 0 {
		exp.top = 0
	}
	if exp.top > exp.maxTop() {
		exp.top = exp.maxTop()
	}
}

func (exp *Explorer) draw() {
	// clear screen and home the cursor
	exp.term.Print("\033[2J\033[H")

	end := exp.top + exp.pageSize()
	if end > len(exp.lines) {
		end = len(exp.lines)
	}

	for _, l := range exp.lines[exp.top:end] {
		exp.term.Print("%s\r\n", l)
	}

	exp.term.Print("\033[7m origin %s  lines %d-%d of %d  (q to quit) \033[0m",
		exp.dsm.Entries[0].Address, exp.top+1, end, len(exp.lines))
}
