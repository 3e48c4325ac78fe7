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

package clipper

import (
	"fmt"
	"math"
)

// Clipper is created with the number of lines in the list and the height of
// each line. It should be created fresh every frame.
type Clipper struct {
	totalLines uint64
	lineHeight float64

	startLine    uint64
	hasStartLine bool
}

// New is the preferred method of initialisation for the Clipper type. The line
// height must be greater than zero.
func New(totalLines uint64, lineHeight float32) Clipper {
	if lineHeight <= 0 {
		panic(fmt.Sprintf("clipper: line height must be positive (%f)", lineHeight))
	}
	return Clipper{
		totalLines: totalLines,
		lineHeight: float64(lineHeight),
	}
}

// WithStartLine makes the clipper ignore the scroll offset for the frame and
// instead position the list so that the line is the first visible line (or as
// close to the first line as the length of the list allows).
func (c Clipper) WithStartLine(line uint64) Clipper {
	c.startLine = min(line, c.totalLines)
	c.hasStartLine = true
	return c
}

// TotalLines returns the number of lines the clipper was created with.
func (c Clipper) TotalLines() uint64 {
	return c.totalLines
}

// Height returns the height of the entire list.
func (c Clipper) Height() float64 {
	return float64(c.totalLines) * c.lineHeight
}

// Layout is the result of the Clipper.Layout() function.
type Layout struct {
	// the visible lines in the range [First, Last). if First and Last are
	// equal then there is nothing to draw
	First uint64
	Last  uint64

	// the amount of blank space that should be reserved before and after the
	// visible lines
	Before float64
	After  float64

	// the scroll offset that the layout was calculated for. if Scrolled is
	// true then this offset is different from the one given to Layout() and
	// the host should scroll to it
	ScrollY  float64
	Scrolled bool
}

// Lines returns the number of visible lines.
func (l Layout) Lines() uint64 {
	return l.Last - l.First
}

// Layout calculates the visible lines for a scroll offset and the height of
// the visible area. Neither value should be negative and negative values will
// be treated as zero.
func (c Clipper) Layout(scrollY float32, clipHeight float32) Layout {
	var l Layout

	clip := math.Max(float64(clipHeight), 0)
	height := c.Height()
	maxScroll := math.Max(height-clip, 0)

	l.ScrollY = math.Max(float64(scrollY), 0)
	if c.hasStartLine {
		l.ScrollY = float64(c.startLine) * c.lineHeight
	}
	l.ScrollY = math.Min(l.ScrollY, maxScroll)
	l.Scrolled = l.ScrollY != float64(scrollY)

	l.First = c.line(math.Floor(l.ScrollY / c.lineHeight))
	l.Last = c.line(math.Ceil((l.ScrollY + clip) / c.lineHeight))

	// the first line must be a line in the list. this can only happen if the
	// clip height is zero and the list is scrolled to the very end
	if c.totalLines > 0 && l.First >= c.totalLines {
		l.First = c.totalLines - 1
	}

	// always draw at least one line if there are any lines to draw
	if l.Last == l.First && l.First < c.totalLines {
		l.Last++
	}

	l.Before = float64(l.First) * c.lineHeight
	l.After = math.Max(height-float64(l.Last)*c.lineHeight, 0)

	return l
}

// converts a floating point line index to a line number. the result is
// clamped to the number of lines in the list.
func (c Clipper) line(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	if v >= float64(c.totalLines) {
		return c.totalLines
	}
	return uint64(v)
}

// LineCount returns the number of lines required to show length addresses
// with columns addresses on each line. The columns value must be greater than
// zero.
func LineCount(length uint64, columns int) uint64 {
	if columns <= 0 {
		panic(fmt.Sprintf("clipper: column count must be positive (%d)", columns))
	}
	c := uint64(columns)
	n := length / c
	if length%c != 0 {
		n++
	}
	return n
}
