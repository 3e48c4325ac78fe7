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

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/editor/dataformat"
)

var (
	subtleBackground = imgui.Vec4{X: 0.3, Y: 0.3, Z: 0.3, W: 0.6}
	hintColor        = imgui.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1.0}
)

// convert editor color to imgui color.
func vec4(c editor.Color) imgui.Vec4 {
	return imgui.Vec4{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
		W: float32(c.A) / 255,
	}
}

// imgui label for the item. the label is hidden.
func itemLabel(id editor.ItemID) string {
	return fmt.Sprintf("##%d_%x", id.Kind, id.Address)
}

// the width required for a combo box to fit the widest item.
func comboWidth(items []string) float32 {
	var w float32
	for _, it := range items {
		w = max(w, imgui.CalcTextSize(it, false, 0).X)
	}
	return w + imgui.FontSize()*2 + imgui.CurrentStyle().FramePadding().X*2
}

// input text that optionally accepts only hex digits and a maximum number of
// characters. physical width of the input should be controlled with
// PushItemWidth()/PopItemWidth() as normal.
func inputText(label string, content *string, hexOnly bool, maxLen int, enterReturnsTrue bool) bool {
	cb := func(d imgui.InputTextCallbackData) int32 {
		switch d.EventFlag() {
		case imgui.InputTextFlagsCallbackCharFilter:
			if hexOnly && !dataformat.IsHexDigit(d.EventChar()) {
				return -1
			}
		default:
			b := string(d.Buffer())

			// restrict length of input
			if maxLen > 0 && len(b) > maxLen {
				d.DeleteBytes(0, len(b))
				b = b[:maxLen]
				d.InsertBytes(0, []byte(b))
				d.MarkBufferModified()
			}
		}

		return 0
	}

	flags := imgui.InputTextFlagsCallbackCharFilter |
		imgui.InputTextFlagsCallbackAlways |
		imgui.InputTextFlagsAutoSelectAll

	if enterReturnsTrue {
		flags |= imgui.InputTextFlagsEnterReturnsTrue
	}

	return imgui.InputTextV(label, content, flags, cb)
}
