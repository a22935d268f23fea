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

// Lift appends the IL statements for one decoded instruction to seq. every
// defined instruction lifts to at least one statement.
//
// Lift panics when the instruction has no table definition. Decode() never
// returns such an instruction so a panic here means the caller constructed
// the Instruction value by hand.
func Lift(seq il.Appender, ins decoder.Instruction) {
	defn := ins.Defn
	if defn == nil {
		panic("lifter: instruction without a definition")
	}

	switch defn.Effect {
	case instructions.Branch:
		target, _ := ins.Target()
		seq.Append(il.If{Cond: branchCondition(defn.Operation), Target: target})

	case instructions.Jump:
		seq.Append(il.Jump{Target: flowTarget(ins)})

	case instructions.Subroutine:
		seq.Append(il.Call{Target: flowTarget(ins)})

	case instructions.Return:
		liftReturn(seq, ins)

	case instructions.Interrupt:
		liftInterrupt(seq, ins)

	case instructions.Sequential:
		liftSequential(seq, ins)
	}
}

func liftReturn(seq il.Appender, ins decoder.Instruction) {
	if ins.Defn.Operation == instructions.Rti {
		// the condition-code byte is the first value pulled from the stack
		ccr := il.Load{Addr: il.Add(il.Reg{Name: il.SP}, il.ConstU16(1)), Width: 1}
		emitFlags(seq, ins.Defn, flagInput{ccr: ccr})
		seq.Append(il.SetFlag{Flag: il.I, Value: il.Bit{X: ccr, N: int(il.I)}})
	}
	seq.Append(il.Ret{})
}

func liftInterrupt(seq il.Appender, ins decoder.Instruction) {
	switch ins.Defn.Operation {
	case instructions.Swi:
		seq.Append(il.SetFlag{Flag: il.I, Value: il.ConstU8(1)})
		seq.Append(il.Trap{})
	case instructions.Wai:
		seq.Append(il.Halt{})
	}
}

func liftSequential(seq il.Appender, ins decoder.Instruction) {
	defn := ins.Defn

	switch defn.Operation {
	case instructions.Nop:
		seq.Append(il.Nop{})

	case instructions.Tap:
		emitFlags(seq, defn, flagInput{ccr: il.Reg{Name: il.A}})
		seq.Append(il.SetFlag{Flag: il.I, Value: il.Bit{X: il.Reg{Name: il.A}, N: int(il.I)}})

	case instructions.Tpa:
		seq.Append(il.SetReg{Reg: il.A, Value: packCCR()})

	case instructions.Inx:
		res := il.Add(il.Reg{Name: il.X}, il.ConstU16(1))
		seq.Append(il.SetReg{Reg: il.X, Value: res})
		emitFlags(seq, defn, flagInput{res: res, wide: true})

	case instructions.Dex:
		res := il.Sub(il.Reg{Name: il.X}, il.ConstU16(1))
		seq.Append(il.SetReg{Reg: il.X, Value: res})
		emitFlags(seq, defn, flagInput{res: res, wide: true})

	case instructions.Clv, instructions.Sev, instructions.Clc, instructions.Sec:
		emitFlags(seq, defn, flagInput{})

	case instructions.Cli:
		seq.Append(il.SetFlag{Flag: il.I, Value: il.ConstU8(0)})

	case instructions.Sei:
		seq.Append(il.SetFlag{Flag: il.I, Value: il.ConstU8(1)})

	case instructions.Sba:
		a := il.Reg{Name: il.A}
		b := il.Reg{Name: il.B}
		res := il.Sub(a, b)
		seq.Append(il.SetReg{Reg: il.A, Value: res})
		emitFlags(seq, defn, flagInput{dst: a, src: b, res: res})

	case instructions.Cba:
		a := il.Reg{Name: il.A}
		b := il.Reg{Name: il.B}
		emitFlags(seq, defn, flagInput{dst: a, src: b, res: il.Sub(a, b)})

	case instructions.Tab:
		seq.Append(il.SetReg{Reg: il.B, Value: il.Reg{Name: il.A}})
		emitFlags(seq, defn, flagInput{res: il.Reg{Name: il.A}})

	case instructions.Tba:
		seq.Append(il.SetReg{Reg: il.A, Value: il.Reg{Name: il.B}})
		emitFlags(seq, defn, flagInput{res: il.Reg{Name: il.B}})

	case instructions.Daa:
		// decimal adjust has no clean expression in the IL vocabulary. the
		// N, Z and C codes named by its flag descriptor are left unmodelled
		// and must be considered clobbered
		seq.Append(il.Unimplemented{})

	case instructions.Aba:
		a := il.Reg{Name: il.A}
		b := il.Reg{Name: il.B}
		res := il.Add(a, b)
		seq.Append(il.SetReg{Reg: il.A, Value: res})
		emitFlags(seq, defn, flagInput{dst: a, src: b, res: res})

	case instructions.Tsx:
		seq.Append(il.SetReg{Reg: il.X, Value: il.Add(il.Reg{Name: il.SP}, il.ConstU16(1))})

	case instructions.Ins:
		seq.Append(il.SetReg{Reg: il.SP, Value: il.Add(il.Reg{Name: il.SP}, il.ConstU16(1))})

	case instructions.Des:
		seq.Append(il.SetReg{Reg: il.SP, Value: il.Sub(il.Reg{Name: il.SP}, il.ConstU16(1))})

	case instructions.Txs:
		seq.Append(il.SetReg{Reg: il.SP, Value: il.Sub(il.Reg{Name: il.X}, il.ConstU16(1))})

	case instructions.Psh:
		acc := accumulator(defn)
		sp := il.Reg{Name: il.SP}
		seq.Append(il.Store{Addr: sp, Value: il.Reg{Name: acc}, Width: 1})
		seq.Append(il.SetReg{Reg: il.SP, Value: il.Sub(sp, il.ConstU16(1))})

	case instructions.Pul:
		acc := accumulator(defn)
		sp := il.Reg{Name: il.SP}
		seq.Append(il.SetReg{Reg: acc, Value: il.Load{Addr: il.Add(sp, il.ConstU16(1)), Width: 1}})
		seq.Append(il.SetReg{Reg: il.SP, Value: il.Add(sp, il.ConstU16(1))})

	case instructions.Neg, instructions.Com, instructions.Lsr, instructions.Ror,
		instructions.Asr, instructions.Asl, instructions.Rol, instructions.Dec,
		instructions.Inc, instructions.Tst, instructions.Clr:
		liftReadModifyWrite(seq, ins)

	case instructions.Sub, instructions.Cmp, instructions.Sbc, instructions.And,
		instructions.Bit, instructions.Lda, instructions.Sta, instructions.Eor,
		instructions.Adc, instructions.Ora, instructions.Add:
		liftAccumulator(seq, ins)

	case instructions.Cpx:
		x := il.Reg{Name: il.X}
		src := sourceExpr(ins)
		emitFlags(seq, defn, flagInput{dst: x, src: src, res: il.Sub(x, src), wide: true})

	case instructions.Lds:
		src := sourceExpr(ins)
		seq.Append(il.SetReg{Reg: il.SP, Value: src})
		emitFlags(seq, defn, flagInput{res: src, wide: true})

	case instructions.Ldx:
		src := sourceExpr(ins)
		seq.Append(il.SetReg{Reg: il.X, Value: src})
		emitFlags(seq, defn, flagInput{res: src, wide: true})

	case instructions.Sts:
		addr, _ := addressExpr(ins)
		seq.Append(il.Store{Addr: addr, Value: il.Reg{Name: il.SP}, Width: 2})
		emitFlags(seq, defn, flagInput{res: il.Reg{Name: il.SP}, wide: true})

	case instructions.Stx:
		addr, _ := addressExpr(ins)
		seq.Append(il.Store{Addr: addr, Value: il.Reg{Name: il.X}, Width: 2})
		emitFlags(seq, defn, flagInput{res: il.Reg{Name: il.X}, wide: true})

	default:
		panic("lifter: no sequential lift for " + defn.String())
	}
}

// liftReadModifyWrite handles the group that reads a value, transforms it and
// writes it back. the destination is an accumulator for inherent encodings
// and a memory location otherwise. TST writes nothing back and CLR ignores
// the old value.
func liftReadModifyWrite(seq il.Appender, ins decoder.Instruction) {
	defn := ins.Defn

	var dst il.Expr
	write := func(v il.Expr) {
		if defn.AddressingMode == instructions.Inherent {
			seq.Append(il.SetReg{Reg: accumulator(defn), Value: v})
		} else {
			addr, _ := addressExpr(ins)
			seq.Append(il.Store{Addr: addr, Value: v, Width: 1})
		}
	}

	if defn.AddressingMode == instructions.Inherent {
		dst = il.Reg{Name: accumulator(defn)}
	} else {
		addr, _ := addressExpr(ins)
		dst = il.Load{Addr: addr, Width: 1}
	}

	var res il.Expr
	switch defn.Operation {
	case instructions.Neg:
		res = il.Unary{Op: il.OpNeg, X: dst}
	case instructions.Com:
		res = il.Unary{Op: il.OpCom, X: dst}
	case instructions.Lsr:
		res = il.Binary{Op: il.OpShr, L: dst, R: il.ConstU8(1)}
	case instructions.Ror:
		res = il.Or(
			il.Binary{Op: il.OpShr, L: dst, R: il.ConstU8(1)},
			il.Binary{Op: il.OpShl, L: il.FlagRead{Name: il.C}, R: il.ConstU8(7)},
		)
	case instructions.Asr:
		res = il.Unary{Op: il.OpSar, X: dst}
	case instructions.Asl:
		res = il.Binary{Op: il.OpShl, L: dst, R: il.ConstU8(1)}
	case instructions.Rol:
		res = il.Or(
			il.Binary{Op: il.OpShl, L: dst, R: il.ConstU8(1)},
			il.FlagRead{Name: il.C},
		)
	case instructions.Dec:
		res = il.Sub(dst, il.ConstU8(1))
	case instructions.Inc:
		res = il.Add(dst, il.ConstU8(1))

	case instructions.Tst:
		emitFlags(seq, defn, flagInput{dst: dst, res: dst})
		return

	case instructions.Clr:
		write(il.ConstU8(0))
		emitFlags(seq, defn, flagInput{})
		return
	}

	write(res)
	emitFlags(seq, defn, flagInput{dst: dst, res: res})
}

// liftAccumulator handles the two-operand accumulator group. compares and
// bit tests affect the condition codes without writing a result.
func liftAccumulator(seq il.Appender, ins decoder.Instruction) {
	defn := ins.Defn
	acc := accumulator(defn)
	dst := il.Reg{Name: acc}

	// STA has no source operand, only a destination address
	if defn.Operation == instructions.Sta {
		addr, _ := addressExpr(ins)
		seq.Append(il.Store{Addr: addr, Value: dst, Width: 1})
		emitFlags(seq, defn, flagInput{res: dst})
		return
	}

	src := sourceExpr(ins)
	carry := il.FlagRead{Name: il.C}

	var res il.Expr
	writeback := true

	switch defn.Operation {
	case instructions.Sub:
		res = il.Sub(dst, src)
	case instructions.Cmp:
		res = il.Sub(dst, src)
		writeback = false
	case instructions.Sbc:
		res = il.Sub(il.Sub(dst, src), carry)
	case instructions.And:
		res = il.And(dst, src)
	case instructions.Bit:
		res = il.And(dst, src)
		writeback = false
	case instructions.Lda:
		res = src
	case instructions.Eor:
		res = il.Xor(dst, src)
	case instructions.Adc:
		res = il.Add(il.Add(dst, src), carry)
	case instructions.Ora:
		res = il.Or(dst, src)
	case instructions.Add:
		res = il.Add(dst, src)
	}

	if writeback {
		seq.Append(il.SetReg{Reg: acc, Value: res})
	}
	emitFlags(seq, defn, flagInput{dst: dst, src: src, res: res, carry: carry})
}

// packCCR composes the condition-code byte read by TPA. the two unused bits
// read as ones on the 6800.
func packCCR() il.Expr {
	e := il.Expr(il.ConstU8(0xc0))
	for _, f := range []il.Flag{il.H, il.I, il.N, il.Z, il.V} {
		e = il.Or(e, il.Binary{
			Op: il.OpShl,
			L:  il.FlagRead{Name: f},
			R:  il.ConstU8(uint8(f)),
		})
	}
	return il.Or(e, il.FlagRead{Name: il.C})
}
