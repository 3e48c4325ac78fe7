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
)

// CollapsingHeader implements the editor.Host interface.
func (h *Host) CollapsingHeader(label string, defaultOpen bool) bool {
	open, ok := h.headers[label]
	if !ok {
		open = defaultOpen
	}

	s := fmt.Sprintf("%s %s", headerMarker(open), label)
	w := lipgloss.Width(s)
	col, show := h.place(h.styles.heading.Render(s), w, false)
	if show {
		if p, _ := h.hit(h.curRow, col, w); p {
			open = !open
		}
	}

	h.headers[label] = open
	return open
}

func headerMarker(open bool) string {
	if open {
		return "[-]"
	}
	return "[+]"
}

// Checkbox implements the editor.Host interface.
func (h *Host) Checkbox(label string, v *bool) bool {
	mark := "[ ]"
	if *v {
		mark = "[x]"
	}

	s := fmt.Sprintf("%s %s", mark, label)
	w := lipgloss.Width(s)
	col, show := h.place(h.styles.body.Render(s), w, false)
	if show {
		if p, _ := h.hit(h.curRow, col, w); p {
			*v = !*v
			return true
		}
	}
	return false
}

// Combo implements the editor.Host interface. A primary click selects the
// next item and a secondary click selects the previous item.
func (h *Host) Combo(label string, selected int, items []string) (int, bool) {
	if len(items) == 0 {
		return selected, false
	}

	preview := ""
	if selected >= 0 && selected < len(items) {
		preview = items[selected]
	}

	s := fmt.Sprintf("%s: <%s>", label, preview)
	w := lipgloss.Width(s)
	col, show := h.place(h.styles.body.Render(s), w, false)
	if !show {
		return selected, false
	}

	p, sc := h.hit(h.curRow, col, w)
	switch {
	case p:
		selected = (selected + 1) % len(items)
	case sc:
		selected = (selected + len(items) - 1) % len(items)
	default:
		return selected, false
	}

	return selected, true
}

// DragInt implements the editor.Host interface. A primary click increases the
// value and a secondary click decreases it.
func (h *Host) DragInt(label string, v *int, min int, max int) bool {
	s := fmt.Sprintf("%s: <%d>", label, *v)
	w := lipgloss.Width(s)
	col, show := h.place(h.styles.body.Render(s), w, false)
	if !show {
		return false
	}

	n := *v
	switch p, sc := h.hit(h.curRow, col, w); {
	case p:
		n++
	case sc:
		n--
	default:
		return false
	}

	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	if n == *v {
		return false
	}
	*v = n
	return true
}

// InputLine implements the editor.Host interface.
func (h *Host) InputLine(id string, hint string, text *string) bool {
	fid := lineFocus(id)
	focused := h.focus == fid

	enter := false
	if focused {
		enter = h.edit(text, false, 0, true)
	}

	w := max(lipgloss.Width(hint), lipgloss.Width(*text)) + 1
	col, show := h.place(h.inputField(*text, hint, w, focused), w, false)
	if show {
		if p, s := h.hit(h.curRow, col, w); p || s {
			h.focus = fid
			h.focusClaimed = true
		}
	}

	return enter
}
