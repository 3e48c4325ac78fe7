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

package editor

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/memedit/editor/dataformat"
)

// Color is an 8bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Gray returns an opaque gray color.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

// ParseColor is the inverse of Color.String().
func ParseColor(s string) (Color, error) {
	var c Color
	_, err := fmt.Sscanf(s, "%d,%d,%d,%d", &c.R, &c.G, &c.B, &c.A)
	if err != nil {
		return Color{}, fmt.Errorf("editor: color: %w", err)
	}
	return c, nil
}

// TextStyle selects the font used for text. The Host decides what each style
// looks like.
type TextStyle int

// List of valid TextStyle values.
const (
	StyleMonospace TextStyle = iota
	StyleBody
	StyleSmall
	StyleHeading
)

// TextStyles lists all TextStyle values.
var TextStyles = []TextStyle{StyleMonospace, StyleBody, StyleSmall, StyleHeading}

func (s TextStyle) String() string {
	switch s {
	case StyleMonospace:
		return "Monospace"
	case StyleBody:
		return "Body"
	case StyleSmall:
		return "Small"
	case StyleHeading:
		return "Heading"
	}
	return fmt.Sprintf("TextStyle(%d)", int(s))
}

// ParseTextStyle is the inverse of TextStyle.String().
func ParseTextStyle(s string) (TextStyle, error) {
	for _, t := range TextStyles {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return StyleMonospace, fmt.Errorf("editor: unrecognised text style (%s)", s)
}

// Limits of the number of columns in the memory grid.
const (
	MinColumns = 1
	MaxColumns = 64
)

// PreviewOptions specifies how the highlighted address is interpreted by the
// data preview.
type PreviewOptions struct {
	Endianness dataformat.Endianness
	Format     dataformat.Format
}

// Options control the appearance and behaviour of the Editor. Options can be
// stored on disk with the Preferences type.
type Options struct {
	// the number of addresses on each line of the memory grid. clamped to the
	// range MinColumns to MaxColumns
	Columns int

	// the user can change the number of columns from the options panel
	ResizableColumns bool

	ShowASCII bool

	// use ZeroColor for values of zero and for unavailable values
	ShowZeroColor bool

	ZeroColor      Color
	AddressColor   Color
	HighlightColor Color

	AddressStyle TextStyle
	ValueStyle   TextStyle
	ASCIIStyle   TextStyle

	// the options panel is collapsed when first drawn
	OptionsCollapsed bool

	// shown in place of unavailable values
	NoneDisplayValue string

	Preview PreviewOptions
}

// DefaultOptions returns the Options used by a new Editor.
func DefaultOptions() Options {
	return Options{
		Columns:          16,
		ResizableColumns: true,
		ShowASCII:        true,
		ShowZeroColor:    true,
		ZeroColor:        Gray(80),
		AddressColor:     RGB(125, 0, 125),
		HighlightColor:   RGB(0, 140, 140),
		AddressStyle:     StyleMonospace,
		ValueStyle:       StyleMonospace,
		ASCIIStyle:       StyleMonospace,
		NoneDisplayValue: "--",
		Preview: PreviewOptions{
			Endianness: dataformat.Little,
			Format:     dataformat.U32,
		},
	}
}

// normalise makes sure the column count is valid.
func (o *Options) normalise() {
	o.Columns = min(max(o.Columns, MinColumns), MaxColumns)
}
