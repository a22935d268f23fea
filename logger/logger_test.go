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

package logger_test

import (
	"strings"
	"testing"

	"github.com/mossley/m6800front/logger"
	"github.com/mossley/m6800front/test"
)

func TestWriteAndClear(t *testing.T) {
	logger.Clear()
	logger.Log("test", "this is a test")
	logger.Logf("test", "this is test %d", 2)

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: this is a test\ntest: this is test 2\n")

	logger.Clear()
	b.Reset()
	logger.Write(b)
	test.Equate(t, b.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: same detail (repeat x3)\n")

	// a different tag breaks the fold
	logger.Log("other", "same detail")
	b.Reset()
	logger.Write(b)
	test.Equate(t, b.String(), "test: same detail (repeat x3)\nother: same detail\n")
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.Equate(t, b.String(), "test: two\ntest: three\n")

	// asking for more entries than exist is not an error
	b.Reset()
	logger.Tail(b, 100)
	test.Equate(t, b.String(), "test: one\ntest: two\ntest: three\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	logger.SetEcho(b)
	defer logger.SetEcho(nil)

	logger.Log("test", "echoed")
	test.Equate(t, b.String(), "test: echoed\n")
}
