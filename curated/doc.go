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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function which takes a
// formatting pattern and placeholder values, like fmt.Errorf(). The pattern
// doubles as the error's identity: the Is() function checks whether an error
// was created from a specific pattern.
//
//	e := curated.Errorf(decoder.UndefinedOpcode, 0xfd)
//
//	if curated.Is(e, decoder.UndefinedOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain, which is useful when a curated error has been wrapped
// inside another curated error.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. In practice the distinction is between errors that are expected and
// recoverable (curated) and those that are not.
//
// The Error() function implementation for curated errors normalises the
// error chain by removing duplicate adjacent message parts.
package curated
