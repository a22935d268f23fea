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

// Expr is a node in an IL expression tree. expression trees are built by the
// lifter and only ever read by consumers.
type Expr interface {
	String() string

	// prevents implementations outside this package. the expression
	// vocabulary is fixed; consumers extend behaviour by walking it, not by
	// adding node types
	ilExpr()
}

// Const is a constant value. Width is in bytes (1 or 2) and controls the
// textual form only; values are stored zero-extended.
type Const struct {
	Value uint16
	Width int
}

func (e Const) ilExpr() {}

func (e Const) String() string {
	if e.Width == 2 {
		return fmt.Sprintf("$%04x", e.Value)
	}
	return fmt.Sprintf("$%02x", e.Value)
}

// Reg reads a register.
type Reg struct {
	Name Register
}

func (e Reg) ilExpr() {}

func (e Reg) String() string {
	return e.Name.String()
}

// FlagRead reads a condition-code bit as a 0/1 value.
type FlagRead struct {
	Name Flag
}

func (e FlagRead) ilExpr() {}

func (e FlagRead) String() string {
	return e.Name.String()
}

// Load reads Width bytes of memory at Addr. 16 bit loads are big-endian.
type Load struct {
	Addr  Expr
	Width int
}

func (e Load) ilExpr() {}

func (e Load) String() string {
	if e.Width == 2 {
		return fmt.Sprintf("[%s].w", e.Addr)
	}
	return fmt.Sprintf("[%s]", e.Addr)
}

// BinaryOp enumerates the binary operators of the IL.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpAnd
	OpOr
	OpXor
	OpShl // shift left
	OpShr // logical shift right
	OpEq  // equality, produces 0/1
	OpUlt // unsigned less-than, produces 0/1
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpEq:
		return "=="
	case OpUlt:
		return "<"
	}
	return "?"
}

// Binary applies a binary operator to two sub-expressions.
type Binary struct {
	Op   BinaryOp
	L, R Expr
}

func (e Binary) ilExpr() {}

func (e Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.L, e.Op, e.R)
}

// UnaryOp enumerates the unary operators of the IL.
type UnaryOp int

const (
	OpNot UnaryOp = iota // boolean not, over 0/1 values
	OpCom                // bitwise complement
	OpNeg                // two's complement negate
	OpSar                // arithmetic shift right by one
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpCom:
		return "~"
	case OpNeg:
		return "-"
	case OpSar:
		return ">>a"
	}
	return "?"
}

// Unary applies a unary operator to a sub-expression.
type Unary struct {
	Op UnaryOp
	X  Expr
}

func (e Unary) ilExpr() {}

func (e Unary) String() string {
	if e.Op == OpSar {
		return fmt.Sprintf("(%s >>a 1)", e.X)
	}
	return fmt.Sprintf("(%s%s)", e.Op, e.X)
}

// Bit extracts bit N of a sub-expression as a 0/1 value.
type Bit struct {
	X Expr
	N int
}

func (e Bit) ilExpr() {}

func (e Bit) String() string {
	return fmt.Sprintf("%s.%d", e.X, e.N)
}

// Extend zero-extends an 8 bit expression to 16 bits. used by the
// condition-code model so that carry-out bits are addressable.
type Extend struct {
	X Expr
}

func (e Extend) ilExpr() {}

func (e Extend) String() string {
	return fmt.Sprintf("zx(%s)", e.X)
}

// helpers used by the lifter. nothing below adds vocabulary

// ConstU8 builds an 8 bit constant.
func ConstU8(v uint8) Const {
	return Const{Value: uint16(v), Width: 1}
}

// ConstU16 builds a 16 bit constant.
func ConstU16(v uint16) Const {
	return Const{Value: v, Width: 2}
}

// Add builds an addition node.
func Add(l, r Expr) Expr {
	return Binary{Op: OpAdd, L: l, R: r}
}

// Sub builds a subtraction node.
func Sub(l, r Expr) Expr {
	return Binary{Op: OpSub, L: l, R: r}
}

// Eq builds an equality test node.
func Eq(l, r Expr) Expr {
	return Binary{Op: OpEq, L: l, R: r}
}

// Not builds a boolean-not node.
func Not(x Expr) Expr {
	return Unary{Op: OpNot, X: x}
}

// Or builds a bitwise/boolean or node.
func Or(l, r Expr) Expr {
	return Binary{Op: OpOr, L: l, R: r}
}

// Xor builds an exclusive-or node.
func Xor(l, r Expr) Expr {
	return Binary{Op: OpXor, L: l, R: r}
}

// And builds a bitwise and node.
func And(l, r Expr) Expr {
	return Binary{Op: OpAnd, L: l, R: r}
}
