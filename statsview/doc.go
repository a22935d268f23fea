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

// Package statsview provides a locally served page of runtime statistics,
// useful when profiling disassembly of large images. the real implementation
// is built only when the statsview build constraint is present; without it
// Launch() is a no-op.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12680/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12680/debug/pprof/
package statsview
