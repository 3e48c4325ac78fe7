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
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/editor/dataformat"
)

// the focus of keyboard input. an input is identified either by an item ID or
// by a string.
type focusID struct {
	item  editor.ItemID
	line  string
	valid bool
}

func itemFocus(id editor.ItemID) focusID {
	return focusID{item: id, valid: true}
}

func lineFocus(id string) focusID {
	return focusID{line: id, valid: true}
}

// scroll position and size of a scroll area. measured in rows.
type scrollArea struct {
	y       float64
	content float64
}

// Host implements the editor.Host interface for an ANSI terminal.
type Host struct {
	renderer *lipgloss.Renderer
	styles   styles

	// terminal geometry in cells
	width  int
	height int

	// the width of the window. can be less than the terminal width
	windowWidth int

	// completed lines of the current frame
	lines []string

	// the line being built
	cur      strings.Builder
	curWidth int
	curRow   int
	curShow  bool

	// row state
	inRow    bool
	rowItems int
	gap      bool

	// scroll area state
	areas     map[string]*scrollArea
	area      *scrollArea
	areaTop   int
	areaRows  int
	areaLine  float64
	areaLines int

	// input for the current frame and the input queued for the next frame
	in     input
	queued input

	// keyboard focus. the focus is lost when there is a click that is not on
	// an input
	focus        focusID
	clicked      bool
	focusClaimed bool

	// open state of collapsing headers
	headers map[string]bool

	quit bool
}

// New is the preferred method of initialisation for the Host type. The
// output writer is used to decide the colour profile of the styled text.
func New(output io.Writer, width int, height int) *Host {
	h := &Host{
		renderer: lipgloss.NewRenderer(output),
		areas:    make(map[string]*scrollArea),
		headers:  make(map[string]bool),
	}
	h.styles = newStyles(h.renderer)
	h.SetSize(width, height)
	return h
}

// SetSize changes the size of the terminal. Takes effect on the next frame.
func (h *Host) SetSize(width int, height int) {
	h.width = max(width, 1)
	h.height = max(height, 1)
}

// Quit returns true if the user has asked to quit.
func (h *Host) Quit() bool {
	return h.quit
}

// Feed terminal input to the host. The input will be seen by the next frame.
func (h *Host) Feed(b []byte) {
	h.queued.parse(b)
}

// BeginFrame must be called before drawing the editor.
func (h *Host) BeginFrame() {
	h.lines = h.lines[:0]
	h.cur.Reset()
	h.curWidth = 0
	h.inRow = false
	h.area = nil
	h.windowWidth = h.width
	h.focusClaimed = false

	h.in = h.queued
	h.queued = input{}
	h.clicked = h.in.click.valid

	// 'q' is only a quit key when no input has focus. it is typed into the
	// input otherwise
	if h.in.interrupt || (h.in.quit && !h.focus.valid) {
		h.quit = true
	}

	if h.in.escape {
		h.focus = focusID{}
	}

	// arrow keys scroll when no input has focus
	if !h.focus.valid {
		for _, k := range h.in.keys {
			switch k {
			case editor.KeyUp:
				h.in.scroll--
			case editor.KeyDown:
				h.in.scroll++
			}
		}
		h.in.keys = h.in.keys[:0]
	}
}

// EndFrame must be called after drawing the editor. It returns the lines of
// the frame.
func (h *Host) EndFrame() []string {
	if h.cur.Len() > 0 {
		h.endLine()
	}

	// clicking anywhere that is not an input removes keyboard focus
	if h.clicked && !h.focusClaimed {
		h.focus = focusID{}
	}

	return h.lines
}

// Lines returns the lines of the most recent frame.
func (h *Host) Lines() []string {
	return h.lines
}

// start a new line. the line may be inside a scroll area, in which case it
// might not be visible.
func (h *Host) startLine() {
	h.cur.Reset()
	h.curWidth = 0

	if h.area == nil {
		h.curRow = len(h.lines)
		h.curShow = true
		return
	}

	h.curShow = h.areaLine >= h.area.y && h.areaLine < h.area.y+float64(h.areaRows)
	h.curRow = h.areaTop + int(h.areaLine-h.area.y)
}

func (h *Host) endLine() {
	if h.curShow {
		h.lines = append(h.lines, h.cur.String())
	}
	if h.area != nil {
		h.areaLine++
		if h.curShow {
			h.areaLines++
		}
	}
	h.cur.Reset()
	h.curWidth = 0
}

// place an item on the current line. returns the screen column of the item
// and whether the item is visible.
func (h *Host) place(styled string, width int, joined bool) (int, bool) {
	if !h.inRow {
		h.startLine()
	} else if h.rowItems > 0 {
		spacing := 1
		switch {
		case h.gap:
			spacing = 2
		case joined:
			spacing = 0
		}
		h.cur.WriteString(strings.Repeat(" ", spacing))
		h.curWidth += spacing
		h.gap = false
	}

	col := h.curWidth
	h.cur.WriteString(styled)
	h.curWidth += width

	show := h.curShow
	if h.inRow {
		h.rowItems++
	} else {
		h.endLine()
	}

	return col, show
}

// hit tests the pending click against a cell range on the screen.
func (h *Host) hit(row int, col int, width int) (bool, bool) {
	c := h.in.click
	if !c.valid || c.row != row || c.col < col || c.col >= col+width {
		return false, false
	}
	h.in.click.valid = false
	return !c.secondary, c.secondary
}

// TextHeight implements the editor.Host interface.
func (h *Host) TextHeight(_ editor.TextStyle) float32 {
	return 1
}

// KeyPressed implements the editor.Host interface.
func (h *Host) KeyPressed(key editor.Key) bool {
	for _, k := range h.in.keys {
		if k == key {
			return true
		}
	}
	return false
}

// BeginWindow implements the editor.Host interface.
func (h *Host) BeginWindow(title string, open *bool, maxWidth float32) bool {
	if open != nil && !*open {
		return false
	}

	if maxWidth > 0 {
		h.windowWidth = min(h.width, int(math.Ceil(float64(maxWidth))))
	}

	const closeButton = "[x]"
	w := max(h.windowWidth, lipgloss.Width(title)+len(closeButton)+2)
	bar := fmt.Sprintf(" %s%s%s", title, strings.Repeat(" ", w-lipgloss.Width(title)-len(closeButton)-1), closeButton)

	h.place(h.styles.title.Render(bar), w, false)
	if open != nil {
		if p, _ := h.hit(h.curRow, w-len(closeButton), len(closeButton)); p {
			*open = false
		}
	}

	return true
}

// EndWindow implements the editor.Host interface.
func (h *Host) EndWindow() {
}

// BeginScrollArea implements the editor.Host interface.
func (h *Host) BeginScrollArea(id string) editor.Viewport {
	if h.cur.Len() > 0 && !h.inRow {
		h.endLine()
	}

	a, ok := h.areas[id]
	if !ok {
		a = &scrollArea{}
		h.areas[id] = a
	}

	h.areaTop = len(h.lines)
	h.areaRows = max(1, h.height-h.areaTop)
	h.areaLine = 0
	h.areaLines = 0

	// scrolling by keyboard or mouse wheel
	if h.in.page != 0 {
		a.y += float64(h.in.page * h.areaRows)
	}
	a.y += float64(h.in.scroll)
	a.y = max(0, min(a.y, a.content-float64(h.areaRows)))

	h.area = a

	return editor.Viewport{
		ScrollY: float32(a.y),
		Height:  float32(h.areaRows),
	}
}

// EndScrollArea implements the editor.Host interface.
func (h *Host) EndScrollArea() {
	if h.area == nil {
		return
	}
	if h.cur.Len() > 0 {
		h.endLine()
	}

	h.area.content = h.areaLine

	// fill the remainder of the scroll area
	for ; h.areaLines < h.areaRows; h.areaLines++ {
		h.lines = append(h.lines, "")
	}

	h.area = nil
}

// SetScrollY implements the editor.Host interface.
func (h *Host) SetScrollY(y float32) {
	if h.area != nil {
		h.area.y = math.Floor(float64(y))
	}
}

// Spacing implements the editor.Host interface.
func (h *Host) Spacing(height float32) {
	rows := math.Round(float64(height))
	if rows <= 0 {
		return
	}

	if h.area != nil {
		// blank rows that are visible are output as empty lines
		start := h.areaLine
		end := start + rows
		vis := max(0, min(end, h.area.y+float64(h.areaRows))-max(start, h.area.y))
		for range int(vis) {
			h.lines = append(h.lines, "")
			h.areaLines++
		}
		h.areaLine = end
		return
	}

	for range int(rows) {
		h.lines = append(h.lines, "")
	}
}

// BeginRow implements the editor.Host interface.
func (h *Host) BeginRow() {
	if h.cur.Len() > 0 && !h.inRow {
		h.endLine()
	}
	h.startLine()
	h.inRow = true
	h.rowItems = 0
	h.gap = false
}

// Gap implements the editor.Host interface.
func (h *Host) Gap() {
	h.gap = true
}

// EndRow implements the editor.Host interface.
func (h *Host) EndRow() float32 {
	w := h.curWidth
	h.inRow = false
	h.endLine()
	return float32(w)
}

// Label implements the editor.Host interface.
func (h *Host) Label(_ editor.ItemID, l editor.Label) editor.Response {
	st := h.styles.text(l.Style)
	if l.HasColor {
		st = st.Foreground(color(l.Color))
	}
	if l.Background {
		st = st.Background(h.styles.subtle)
	}

	w := lipgloss.Width(l.Text)
	col, show := h.place(st.Render(l.Text), w, l.Joined)

	var resp editor.Response
	resp.Width = float32(w)
	if show {
		resp.Clicked, resp.SecondaryClicked = h.hit(h.curRow, col, w)
	}
	return resp
}

// TextInput implements the editor.Host interface.
func (h *Host) TextInput(id editor.ItemID, in editor.TextInput) editor.InputResponse {
	fid := itemFocus(id)
	if in.RequestFocus {
		h.focus = fid
	}

	w := int(math.Ceil(float64(in.Width)))
	if w <= 0 {
		w = max(lipgloss.Width(in.Hint), 1)
	}

	// the input is drawn before the hit test so the position of the input is
	// known. the text is edited before being drawn though
	focused := h.focus == fid
	if focused {
		h.edit(in.Text, in.HexOnly, in.MaxLen, false)
	}

	col, show := h.place(h.inputField(*in.Text, in.Hint, w, focused), w, false)
	if show {
		if p, s := h.hit(h.curRow, col, w); p || s {
			h.focus = fid
			h.focusClaimed = true
			focused = true
		}
	}

	return editor.InputResponse{
		Focused: focused,
		Width:   float32(w),
	}
}

// the text of an input field padded to the width of the field.
func (h *Host) inputField(text string, hint string, width int, focused bool) string {
	st := h.styles.input
	if focused {
		st = h.styles.focused
	}
	if text == "" {
		text = hint
		st = st.Foreground(h.styles.hint)
	}
	if n := lipgloss.Width(text); n < width {
		text += strings.Repeat(" ", width-n)
	} else if n > width {
		text = text[:width]
	}
	return st.Render(text)
}

// apply typed characters to the text. returns true if enter was pressed.
func (h *Host) edit(text *string, hexOnly bool, maxLen int, enter bool) bool {
	for _, c := range h.in.chars {
		if hexOnly && !dataformat.IsHexDigit(c) {
			continue
		}
		if maxLen > 0 && len(*text) >= maxLen {
			continue
		}
		*text += string(c)
	}
	for range h.in.backspace {
		if len(*text) > 0 {
			*text = (*text)[:len(*text)-1]
		}
	}

	// characters are only given to one input
	h.in.chars = h.in.chars[:0]
	h.in.backspace = 0

	if enter && h.in.enter {
		h.in.enter = false
		return true
	}
	return false
}

// Separator implements the editor.Host interface.
func (h *Host) Separator() {
	s := strings.Repeat("─", h.windowWidth)
	h.place(h.styles.separator.Render(s), h.windowWidth, false)
}

// Text implements the editor.Host interface.
func (h *Host) Text(s string) {
	h.place(h.styles.body.Render(s), lipgloss.Width(s), false)
}
