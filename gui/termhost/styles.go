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

package termhost

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/memedit/editor"
)

type styles struct {
	body      lipgloss.Style
	small     lipgloss.Style
	heading   lipgloss.Style
	mono      lipgloss.Style
	title     lipgloss.Style
	separator lipgloss.Style
	input     lipgloss.Style
	focused   lipgloss.Style
	widget    lipgloss.Style

	subtle lipgloss.Color
	hint   lipgloss.Color
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		body:      r.NewStyle(),
		small:     r.NewStyle().Faint(true),
		heading:   r.NewStyle().Bold(true),
		mono:      r.NewStyle(),
		title:     r.NewStyle().Reverse(true).Bold(true),
		separator: r.NewStyle().Faint(true),
		input:     r.NewStyle().Underline(true),
		focused:   r.NewStyle().Reverse(true),
		widget:    r.NewStyle().Bold(true),
		subtle:    lipgloss.Color("#3a3a3a"),
		hint:      lipgloss.Color("#808080"),
	}
}

// the style for an editor text style.
func (s styles) text(style editor.TextStyle) lipgloss.Style {
	switch style {
	case editor.StyleBody:
		return s.body
	case editor.StyleSmall:
		return s.small
	case editor.StyleHeading:
		return s.heading
	}
	return s.mono
}

// convert editor color to lipgloss color. the alpha channel is ignored.
func color(c editor.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
