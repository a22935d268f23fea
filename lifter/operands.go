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

package lifter

import (
	"github.com/mossley/m6800front/decoder"
	"github.com/mossley/m6800front/il"
	"github.com/mossley/m6800front/instructions"
)

// operandWidth is the width in bytes of the data an instruction works on.
func operandWidth(defn *instructions.Definition) int {
	if defn.Wide {
		return 2
	}
	return 1
}

// accumulator returns the IL register for the instruction's accumulator
// field. panics when the table entry carries no accumulator, which would
// mean the dispatch tables in this package disagree with the instruction
// table.
func accumulator(defn *instructions.Definition) il.Register {
	switch defn.Accumulator {
	case instructions.AccA:
		return il.A
	case instructions.AccB:
		return il.B
	}
	panic("lifter: no accumulator for " + defn.String())
}

// addressExpr builds the effective-address expression for instructions that
// reference memory. the second return value is false for modes with no
// memory address (immediate and inherent).
//
// indexed addresses are never folded to a constant. the value of X is a
// run-time quantity so the address stays symbolic.
func addressExpr(ins decoder.Instruction) (il.Expr, bool) {
	switch ins.Defn.AddressingMode {
	case instructions.Direct, instructions.Extended, instructions.Relative:
		return il.ConstU16(ins.Operand), true
	case instructions.Indexed:
		return il.Add(il.Reg{Name: il.X}, il.ConstU8(uint8(ins.Operand))), true
	}
	return nil, false
}

// sourceExpr builds the expression for the instruction's source operand. an
// immediate operand becomes a constant of the instruction's width, any
// memory mode becomes a load through addressExpr, and an inherent
// instruction reads its accumulator.
func sourceExpr(ins decoder.Instruction) il.Expr {
	w := operandWidth(ins.Defn)

	switch ins.Defn.AddressingMode {
	case instructions.Immediate:
		return il.Const{Value: ins.Operand, Width: w}
	case instructions.Inherent:
		return il.Reg{Name: accumulator(ins.Defn)}
	}

	addr, ok := addressExpr(ins)
	if !ok {
		panic("lifter: no source operand for " + ins.Defn.String())
	}
	return il.Load{Addr: addr, Width: w}
}

// flowTarget builds the target expression for jumps and calls. extended
// mode targets are constants, indexed targets remain symbolic.
func flowTarget(ins decoder.Instruction) il.Expr {
	if ins.Defn.AddressingMode == instructions.Indexed {
		return il.Add(il.Reg{Name: il.X}, il.ConstU8(uint8(ins.Operand)))
	}
	return il.ConstU16(ins.Operand)
}
