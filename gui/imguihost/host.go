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

package imguihost

import (
	"fmt"
	"math"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memedit/editor"
)

// Host implements the editor.Host interface for Dear ImGui.
type Host struct {
	fonts map[editor.TextStyle]imgui.Font

	// navigation keys pressed since the last call to NewFrame()
	keys map[editor.Key]bool

	// row state
	inRow    bool
	rowItems int
	rowWidth float32
	gap      bool
}

// New is the preferred method of initialisation for the Host type. Fonts for
// text styles are optional. A style with no font uses the current ImGui font.
func New(fonts map[editor.TextStyle]imgui.Font) *Host {
	if fonts == nil {
		fonts = make(map[editor.TextStyle]imgui.Font)
	}
	return &Host{
		fonts: fonts,
		keys:  make(map[editor.Key]bool),
	}
}

// NewFrame must be called at the start of every frame.
func (h *Host) NewFrame() {
	clear(h.keys)
	h.inRow = false
}

// PressKey records that a navigation key has been pressed.
func (h *Host) PressKey(key editor.Key) {
	h.keys[key] = true
}

// push font for text style. the returned function pops the font.
func (h *Host) pushStyle(style editor.TextStyle) func() {
	if f, ok := h.fonts[style]; ok {
		imgui.PushFont(f)
		return imgui.PopFont
	}
	return func() {}
}

// TextHeight implements the editor.Host interface.
func (h *Host) TextHeight(style editor.TextStyle) float32 {
	defer h.pushStyle(style)()
	return imgui.FontSize() + imgui.CurrentStyle().ItemSpacing().Y
}

// KeyPressed implements the editor.Host interface.
func (h *Host) KeyPressed(key editor.Key) bool {
	return h.keys[key]
}

// BeginWindow implements the editor.Host interface.
func (h *Host) BeginWindow(title string, open *bool, maxWidth float32) bool {
	if maxWidth > 0 {
		// allow for the window padding and the scroll bar
		maxWidth += imgui.CurrentStyle().ItemSpacing().X*4 + imgui.FontSize()*2
		imgui.SetNextWindowSizeConstraints(imgui.Vec2{}, imgui.Vec2{X: maxWidth, Y: math.MaxFloat32})
	}
	return imgui.BeginV(title, open, imgui.WindowFlagsNone)
}

// EndWindow implements the editor.Host interface.
func (h *Host) EndWindow() {
	imgui.End()
}

// BeginScrollArea implements the editor.Host interface.
func (h *Host) BeginScrollArea(id string) editor.Viewport {
	imgui.BeginChildV(id, imgui.Vec2{}, false, imgui.WindowFlagsNone)

	// the cursor position is relative to the start of the content. the screen
	// position is not
	scrollY := imgui.CursorPosY() - (imgui.CursorScreenPos().Y - imgui.WindowPos().Y)

	return editor.Viewport{
		ScrollY: scrollY,
		Height:  imgui.WindowHeight(),
	}
}

// EndScrollArea implements the editor.Host interface.
func (h *Host) EndScrollArea() {
	imgui.EndChild()
}

// SetScrollY implements the editor.Host interface.
func (h *Host) SetScrollY(y float32) {
	imgui.SetScrollY(y)
}

// Spacing implements the editor.Host interface.
func (h *Host) Spacing(height float32) {
	// Dummy() adds item spacing after the reserved space
	height -= imgui.CurrentStyle().ItemSpacing().Y
	if height > 0 {
		imgui.Dummy(imgui.Vec2{Y: height})
	}
}

// BeginRow implements the editor.Host interface.
func (h *Host) BeginRow() {
	h.inRow = true
	h.rowItems = 0
	h.rowWidth = 0
	h.gap = false
}

// Gap implements the editor.Host interface.
func (h *Host) Gap() {
	h.gap = true
}

// EndRow implements the editor.Host interface.
func (h *Host) EndRow() float32 {
	h.inRow = false
	return h.rowWidth
}

// position the cursor for the next item in a row.
func (h *Host) nextItem(joined bool) {
	if !h.inRow {
		return
	}

	if h.rowItems > 0 {
		spacing := imgui.CurrentStyle().ItemSpacing().X
		switch {
		case h.gap:
			spacing *= 3
		case joined:
			spacing = 0
		}
		imgui.SameLineV(0, spacing)
		h.rowWidth += spacing
	}

	h.rowItems++
	h.gap = false
}

// Label implements the editor.Host interface.
func (h *Host) Label(id editor.ItemID, l editor.Label) editor.Response {
	defer h.pushStyle(l.Style)()

	h.nextItem(l.Joined)

	sz := imgui.CalcTextSize(l.Text, false, 0)

	if l.Background {
		p := imgui.CursorScreenPos()
		imgui.WindowDrawList().AddRectFilled(p, p.Plus(sz), imgui.PackedColorFromVec4(subtleBackground))
	}

	if l.HasColor {
		imgui.PushStyleColor(imgui.StyleColorText, vec4(l.Color))
		imgui.Text(l.Text)
		imgui.PopStyleColor()
	} else {
		imgui.Text(l.Text)
	}

	h.rowWidth += sz.X

	hovered := imgui.IsItemHovered()
	return editor.Response{
		Clicked:          hovered && imgui.IsMouseClicked(0),
		SecondaryClicked: hovered && imgui.IsMouseClicked(1),
		Width:            sz.X,
	}
}

// TextInput implements the editor.Host interface.
func (h *Host) TextInput(id editor.ItemID, in editor.TextInput) editor.InputResponse {
	defer h.pushStyle(in.Style)()

	h.nextItem(false)

	width := in.Width
	if width <= 0 {
		width = imgui.CalcTextSize(in.Hint, false, 0).X
	}

	// no frame padding so that the input is the same size as a label
	imgui.PushStyleVarVec2(imgui.StyleVarFramePadding, imgui.Vec2{})
	defer imgui.PopStyleVar()

	p := imgui.CursorScreenPos()

	if in.RequestFocus {
		imgui.SetKeyboardFocusHere()
	}

	imgui.PushItemWidth(width)
	inputText(itemLabel(id), in.Text, in.HexOnly, in.MaxLen, false)
	imgui.PopItemWidth()

	focused := imgui.IsItemActive()

	// the hint is drawn over an empty input. it is not an item and so does
	// not change the layout of the row
	if *in.Text == "" && in.Hint != "" {
		imgui.WindowDrawList().AddText(p, imgui.PackedColorFromVec4(hintColor), in.Hint)
	}

	h.rowWidth += width

	return editor.InputResponse{
		Focused: focused,
		Width:   width,
	}
}

// Separator implements the editor.Host interface.
func (h *Host) Separator() {
	imgui.Separator()
}

// Text implements the editor.Host interface.
func (h *Host) Text(s string) {
	imgui.Text(s)
}

// CollapsingHeader implements the editor.Host interface.
func (h *Host) CollapsingHeader(label string, defaultOpen bool) bool {
	var flgs imgui.TreeNodeFlags
	if defaultOpen {
		flgs = imgui.TreeNodeFlagsDefaultOpen
	}
	return imgui.CollapsingHeaderV(label, flgs)
}

// Combo implements the editor.Host interface.
func (h *Host) Combo(label string, selected int, items []string) (int, bool) {
	if len(items) == 0 {
		return selected, false
	}

	preview := ""
	if selected >= 0 && selected < len(items) {
		preview = items[selected]
	}

	imgui.PushItemWidth(comboWidth(items))
	defer imgui.PopItemWidth()

	changed := false
	if imgui.BeginComboV(label, preview, imgui.ComboFlagsNone) {
		for i, it := range items {
			if imgui.Selectable(it) && i != selected {
				selected = i
				changed = true
			}
		}
		imgui.EndCombo()
	}

	return selected, changed
}

// DragInt implements the editor.Host interface.
func (h *Host) DragInt(label string, v *int, min int, max int) bool {
	imgui.PushItemWidth(imgui.CalcTextSize(fmt.Sprintf("%d", max), false, 0).X * 6)
	defer imgui.PopItemWidth()

	n := int32(*v)
	if imgui.SliderInt(label, &n, int32(min), int32(max)) {
		*v = int(n)
		return true
	}
	return false
}

// Checkbox implements the editor.Host interface.
func (h *Host) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

// InputLine implements the editor.Host interface.
func (h *Host) InputLine(id string, hint string, text *string) bool {
	imgui.PushItemWidth(imgui.CalcTextSize(hint, false, 0).X * 4)
	defer imgui.PopItemWidth()
	return inputText(fmt.Sprintf("##%s", id), text, false, 0, true)
}
