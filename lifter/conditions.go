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

// branchCondition builds the predicate expression for a conditional branch.
// BRA is not handled here. it is unconditional and lifts to a plain jump.
func branchCondition(op instructions.Operation) il.Expr {
	c := il.FlagRead{Name: il.C}
	v := il.FlagRead{Name: il.V}
	z := il.FlagRead{Name: il.Z}
	n := il.FlagRead{Name: il.N}

	switch op {
	case instructions.Bhi:
		return il.Not(il.Or(c, z))
	case instructions.Bls:
		return il.Or(c, z)
	case instructions.Bcc:
		return il.Not(c)
	case instructions.Bcs:
		return c
	case instructions.Bne:
		return il.Not(z)
	case instructions.Beq:
		return z
	case instructions.Bvc:
		return il.Not(v)
	case instructions.Bvs:
		return v
	case instructions.Bpl:
		return il.Not(n)
	case instructions.Bmi:
		return n
	case instructions.Bge:
		return il.Not(il.Xor(n, v))
	case instructions.Blt:
		return il.Xor(n, v)
	case instructions.Bgt:
		return il.Not(il.Or(z, il.Xor(n, v)))
	case instructions.Ble:
		return il.Or(z, il.Xor(n, v))
	}

	panic("lifter: no condition for " + op.String())
}
