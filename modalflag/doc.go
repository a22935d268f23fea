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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. a command line like
//
//	m6800front disasm -bytecode program.bin
//
// is handled in two passes: the first Parse() consumes the global flags and
// recognises "disasm" as a sub-mode, the second parses the flags of the
// selected mode. the idiomatic usage is:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("disasm", "lift", "explore")
//
//	p, err := md.Parse()
//	... handle p and err ...
//
//	switch md.Mode() {
//	    ...
//	}
//
// each call to NewMode() starts a fresh flag set for the next layer. the
// Output field should be set before Parse() or help messages will be lost.
package modalflag
