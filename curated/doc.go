// This file is part of Memedit.
//
// Memedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memedit.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns used in this way should be stored as a const
// string, suitably named and commented. For example, the prefs package
// declares:
//
//	const NoPrefsFile = "prefs: no prefs file (%s)"
//
// and callers can then test for that condition:
//
//	if curated.Is(err, prefs.NoPrefsFile) {
//		// not an error in this context
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': '. For
// example:
//
//	part 1: part 2: part 3
//
// So an error created with
//
//	curated.Errorf("prefs: %v", curated.Errorf("prefs: %v", err))
//
// will print as "prefs: <err>" and not "prefs: prefs: <err>".
package curated
