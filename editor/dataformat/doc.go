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

// Package dataformat converts fixed width byte sequences to and from their
// text representations. The Decode() function interprets a slice of bytes as a
// typed numeric value under a given endianness and returns it as a base-10
// string. The hex functions deal with the two digit representation of a single
// byte as displayed and edited in the memory grid.
//
// All functions in the package are stateless.
package dataformat
