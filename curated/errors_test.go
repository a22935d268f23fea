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

package curated_test

import (
	"errors"
	"testing"

	"github.com/mossley/m6800front/curated"
	"github.com/mossley/m6800front/test"
)

const (
	patternA = "layer a: %v"
	patternB = "layer b: %s"
)

func TestIdentity(t *testing.T) {
	err := curated.Errorf(patternB, "something went wrong")

	test.Equate(t, curated.IsAny(err), true)
	test.Equate(t, curated.Is(err, patternB), true)
	test.Equate(t, curated.Is(err, patternA), false)

	// plain errors are not curated
	plain := errors.New("plain")
	test.Equate(t, curated.IsAny(plain), false)
	test.Equate(t, curated.Is(plain, patternB), false)
	test.Equate(t, curated.Is(nil, patternB), false)
}

func TestChain(t *testing.T) {
	inner := curated.Errorf(patternB, "something went wrong")
	outer := curated.Errorf(patternA, inner)

	// Is() matches the outermost pattern only. Has() searches the chain
	test.Equate(t, curated.Is(outer, patternA), true)
	test.Equate(t, curated.Is(outer, patternB), false)
	test.Equate(t, curated.Has(outer, patternB), true)
	test.Equate(t, curated.Has(outer, patternA), true)

	test.Equate(t, outer.Error(), "layer a: layer b: something went wrong")
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are folded when formatting
	inner := curated.Errorf("echo: %v", curated.Errorf("echo: %s", "hello"))
	test.Equate(t, inner.Error(), "echo: hello")
}
