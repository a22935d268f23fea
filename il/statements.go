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

package il

import "fmt"

// Stmt is a single IL statement. one lifted instruction produces an ordered
// sequence of statements.
type Stmt interface {
	String() string
	ilStmt()
}

// Appender is the narrow interface through which the lifter emits
// statements. consumers with their own IR representation implement this
// directly; everyone else uses a Sequence.
type Appender interface {
	Append(Stmt)
}

// Sequence is the standard Appender: an ordered list of statements for one
// instruction.
type Sequence struct {
	Stmts []Stmt
}

// Append implements the Appender interface.
func (seq *Sequence) Append(s Stmt) {
	seq.Stmts = append(seq.Stmts, s)
}

func (seq *Sequence) String() string {
	s := ""
	for _, st := range seq.Stmts {
		s += st.String() + "\n"
	}
	return s
}

// SetReg assigns an expression to a register.
type SetReg struct {
	Reg   Register
	Value Expr
}

func (s SetReg) ilStmt() {}

func (s SetReg) String() string {
	return fmt.Sprintf("%s = %s", s.Reg, s.Value)
}

// SetFlag assigns a 0/1 expression to a condition-code bit.
type SetFlag struct {
	Flag  Flag
	Value Expr
}

func (s SetFlag) ilStmt() {}

func (s SetFlag) String() string {
	return fmt.Sprintf("%s = %s", s.Flag, s.Value)
}

// Store writes Width bytes to memory at Addr. 16 bit stores are big-endian.
type Store struct {
	Addr  Expr
	Value Expr
	Width int
}

func (s Store) ilStmt() {}

func (s Store) String() string {
	if s.Width == 2 {
		return fmt.Sprintf("[%s].w = %s", s.Addr, s.Value)
	}
	return fmt.Sprintf("[%s] = %s", s.Addr, s.Value)
}

// If jumps to Target when Cond is non-zero and falls through to the next
// instruction otherwise. Target is always an absolute address; relative
// encodings are resolved at decode time.
type If struct {
	Cond   Expr
	Target uint16
}

func (s If) ilStmt() {}

func (s If) String() string {
	return fmt.Sprintf("if %s goto $%04x", s.Cond, s.Target)
}

// Jump transfers control unconditionally. Target is an expression because
// indexed jumps through register X cannot be resolved statically.
type Jump struct {
	Target Expr
}

func (s Jump) ilStmt() {}

func (s Jump) String() string {
	return fmt.Sprintf("goto %s", s.Target)
}

// Call transfers control to a subroutine. the return-address push is part of
// the call primitive; stack bookkeeping is the consumer's concern.
type Call struct {
	Target Expr
}

func (s Call) ilStmt() {}

func (s Call) String() string {
	return fmt.Sprintf("call %s", s.Target)
}

// Ret returns from a subroutine or interrupt.
type Ret struct{}

func (s Ret) ilStmt() {}

func (s Ret) String() string {
	return "return"
}

// Trap marks a software interrupt. execution does not continue past it.
type Trap struct{}

func (s Trap) ilStmt() {}

func (s Trap) String() string {
	return "trap"
}

// Halt marks a point where the processor stops fetching instructions until
// an external event (the WAI instruction).
type Halt struct{}

func (s Halt) ilStmt() {}

func (s Halt) String() string {
	return "halt"
}

// Nop is an explicit no-operation. emitted so that every instruction lifts
// to at least one statement.
type Nop struct{}

func (s Nop) ilStmt() {}

func (s Nop) String() string {
	return "nop"
}

// Unimplemented marks an instruction whose data semantics are not expressed
// in the IL (decimal adjust). control flow still falls through. the marker
// carries no flag statements so any condition codes the instruction affects
// must be treated as clobbered.
type Unimplemented struct{}

func (s Unimplemented) ilStmt() {}

func (s Unimplemented) String() string {
	return "unimplemented"
}
