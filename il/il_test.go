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

package il_test

import (
	"testing"

	"github.com/mossley/m6800front/il"
	"github.com/mossley/m6800front/test"
)

func TestExpressionRendering(t *testing.T) {
	test.Equate(t, il.ConstU8(0x2a).String(), "$2a")
	test.Equate(t, il.ConstU16(0x1234).String(), "$1234")
	test.Equate(t, il.Reg{Name: il.SP}.String(), "SP")
	test.Equate(t, il.FlagRead{Name: il.H}.String(), "H")

	load := il.Load{Addr: il.Add(il.Reg{Name: il.X}, il.ConstU8(5)), Width: 1}
	test.Equate(t, load.String(), "[(X + $05)]")

	wide := il.Load{Addr: il.ConstU16(0x1234), Width: 2}
	test.Equate(t, wide.String(), "[$1234].w")

	com := il.Unary{Op: il.OpCom, X: il.Reg{Name: il.A}}
	test.Equate(t, com.String(), "(~A)")

	sar := il.Unary{Op: il.OpSar, X: il.Reg{Name: il.B}}
	test.Equate(t, sar.String(), "(B >>a 1)")

	test.Equate(t, il.Bit{X: il.Reg{Name: il.A}, N: 7}.String(), "A.7")
	test.Equate(t, il.Extend{X: il.Reg{Name: il.A}}.String(), "zx(A)")

	ult := il.Binary{Op: il.OpUlt, L: il.Reg{Name: il.A}, R: il.Reg{Name: il.B}}
	test.Equate(t, ult.String(), "(A < B)")
}

func TestStatementRendering(t *testing.T) {
	set := il.SetReg{Reg: il.A, Value: il.ConstU8(0)}
	test.Equate(t, set.String(), "A = $00")

	store := il.Store{Addr: il.ConstU16(0x0080), Value: il.Reg{Name: il.SP}, Width: 2}
	test.Equate(t, store.String(), "[$0080].w = SP")

	test.Equate(t, il.If{Cond: il.FlagRead{Name: il.Z}, Target: 0x1000}.String(), "if Z goto $1000")
	test.Equate(t, il.Jump{Target: il.ConstU16(0x1234)}.String(), "goto $1234")
	test.Equate(t, il.Call{Target: il.ConstU16(0x1234)}.String(), "call $1234")
	test.Equate(t, il.Ret{}.String(), "return")
	test.Equate(t, il.Trap{}.String(), "trap")
	test.Equate(t, il.Halt{}.String(), "halt")
	test.Equate(t, il.Nop{}.String(), "nop")
}

func TestSequence(t *testing.T) {
	seq := &il.Sequence{}
	seq.Append(il.Nop{})
	seq.Append(il.Ret{})
	test.Equate(t, len(seq.Stmts), 2)
	test.Equate(t, seq.String(), "nop\nreturn\n")
}

func TestRegisterWidths(t *testing.T) {
	test.Equate(t, il.A.Width(), 1)
	test.Equate(t, il.B.Width(), 1)
	test.Equate(t, il.X.Width(), 2)
	test.Equate(t, il.SP.Width(), 2)
	test.Equate(t, il.PC.Width(), 2)
}

func TestFlagBitPositions(t *testing.T) {
	// the numeric flag values are the bit positions in the pushed CCR byte
	test.Equate(t, int(il.C), 0)
	test.Equate(t, int(il.V), 1)
	test.Equate(t, int(il.Z), 2)
	test.Equate(t, int(il.N), 3)
	test.Equate(t, int(il.I), 4)
	test.Equate(t, int(il.H), 5)
}
