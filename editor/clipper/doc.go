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

// Package clipper decides which lines of a vertically scrolling list are
// visible. Only the visible lines need to be drawn, which means the cost of
// drawing a frame does not depend on the length of the list.
//
// The clipper also reports how much blank space should be reserved before and
// after the visible lines so that the height of the scrolling area is always
// the same, regardless of which lines are drawn. Without this padding the
// scrollbar would jump as the user scrolled.
//
// Offsets are calculated with float64 values. The precision of the scroll
// offset reported by the host GUI is likely to be lower than this.
package clipper
