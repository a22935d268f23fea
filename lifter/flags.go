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
	"github.com/mossley/m6800front/il"
	"github.com/mossley/m6800front/instructions"
)

// flagInput carries the expressions the condition-code model computes flag
// values from. all expressions describe the state at the start of the
// instruction. fields that an instruction's policy never consults may be
// left nil.
type flagInput struct {
	dst   il.Expr // destination value before the operation
	src   il.Expr // source operand
	res   il.Expr // result of the operation
	carry il.Expr // carry-in, ADC and SBC only
	wide  bool    // 16 bit operation
	ccr   il.Expr // packed condition-code byte, TAP and RTI only
}

func (in flagInput) msb() int {
	if in.wide {
		return 15
	}
	return 7
}

// emitFlags appends the condition-code statements for the instruction. the
// order is fixed: H, N, Z, V, C. unaffected bits produce no statement.
func emitFlags(seq il.Appender, defn *instructions.Definition, in flagInput) {
	if !defn.Flags.Any() {
		return
	}

	// TAP and RTI rewrite the whole register from a packed byte
	if defn.Flags == instructions.FlagsCCR {
		for _, f := range []il.Flag{il.H, il.N, il.Z, il.V, il.C} {
			seq.Append(il.SetFlag{Flag: f, Value: il.Bit{X: in.ccr, N: int(f)}})
		}
		return
	}

	emit := func(f il.Flag, ch instructions.FlagChange) {
		switch ch {
		case instructions.Unaffected:
			return
		case instructions.Cleared:
			seq.Append(il.SetFlag{Flag: f, Value: il.ConstU8(0)})
		case instructions.Set:
			seq.Append(il.SetFlag{Flag: f, Value: il.ConstU8(1)})
		case instructions.FromResult:
			seq.Append(il.SetFlag{Flag: f, Value: resultFlag(f, in)})
		case instructions.FromOperands:
			seq.Append(il.SetFlag{Flag: f, Value: operandsFlag(f, defn.Operation, in)})
		}
	}

	emit(il.H, defn.Flags.H)
	emit(il.N, defn.Flags.N)
	emit(il.Z, defn.Flags.Z)
	emit(il.V, defn.Flags.V)
	emit(il.C, defn.Flags.C)
}

// resultFlag builds the expression for a flag derived from the result alone.
func resultFlag(f il.Flag, in flagInput) il.Expr {
	switch f {
	case il.N:
		return il.Bit{X: in.res, N: in.msb()}
	case il.Z:
		return il.Eq(in.res, il.Const{Value: 0, Width: width(in)})
	}
	panic("lifter: flag " + f.String() + " cannot be derived from the result")
}

// operandsFlag builds the expression for a flag derived from the operands.
// the derivation depends on the operation family.
func operandsFlag(f il.Flag, op instructions.Operation, in flagInput) il.Expr {
	switch f {
	case il.H:
		// half-carry out of bit 3, add family only
		return il.Bit{X: il.Xor(il.Xor(in.dst, in.src), in.res), N: 4}
	case il.V:
		return overflow(op, in)
	case il.C:
		return carryOut(op, in)
	}
	panic("lifter: flag " + f.String() + " cannot be derived from the operands")
}

func overflow(op instructions.Operation, in flagInput) il.Expr {
	switch op {
	case instructions.Add, instructions.Adc, instructions.Aba:
		// both operands agree in sign and the result disagrees
		return il.Bit{X: il.And(il.Xor(in.dst, in.res), il.Xor(in.src, in.res)), N: in.msb()}

	case instructions.Sub, instructions.Sbc, instructions.Cmp,
		instructions.Sba, instructions.Cba, instructions.Cpx:
		return il.Bit{X: il.And(il.Xor(in.dst, in.src), il.Xor(in.dst, in.res)), N: in.msb()}

	case instructions.Neg:
		// two's complement of $80 is $80 again, the one overflowing case
		return il.Eq(in.dst, il.ConstU8(0x80))

	case instructions.Inc:
		return il.Eq(in.dst, il.ConstU8(0x7f))

	case instructions.Dec:
		return il.Eq(in.dst, il.ConstU8(0x80))

	case instructions.Asl, instructions.Asr, instructions.Lsr,
		instructions.Rol, instructions.Ror:
		// set when the sign changes across the shift
		return il.Xor(il.Bit{X: in.res, N: in.msb()}, carryOut(op, in))
	}

	panic("lifter: no overflow derivation for " + op.String())
}

func carryOut(op instructions.Operation, in flagInput) il.Expr {
	switch op {
	case instructions.Add, instructions.Aba:
		// widen so the carry-out bit is addressable
		return il.Bit{X: il.Add(il.Extend{X: in.dst}, il.Extend{X: in.src}), N: 8}

	case instructions.Adc:
		return il.Bit{X: il.Add(il.Add(il.Extend{X: in.dst}, il.Extend{X: in.src}), in.carry), N: 8}

	case instructions.Sub, instructions.Cmp, instructions.Sba, instructions.Cba:
		// borrow
		return il.Binary{Op: il.OpUlt, L: in.dst, R: in.src}

	case instructions.Sbc:
		return il.Binary{Op: il.OpUlt, L: in.dst, R: il.Add(in.src, in.carry)}

	case instructions.Neg:
		return il.Not(il.Eq(in.res, il.ConstU8(0)))

	case instructions.Asl, instructions.Rol:
		return il.Bit{X: in.dst, N: 7}

	case instructions.Lsr, instructions.Ror, instructions.Asr:
		return il.Bit{X: in.dst, N: 0}
	}

	panic("lifter: no carry derivation for " + op.String())
}

func width(in flagInput) int {
	if in.wide {
		return 2
	}
	return 1
}
