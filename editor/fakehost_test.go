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

package editor_test

import (
	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/editor/dataformat"
)

// fakeHost implements the editor.Host interface. input for a frame is
// scripted by setting fields before calling frame() and the output of the
// frame is recorded for inspection afterwards.
type fakeHost struct {
	lineHeight float32
	height     float32
	scrollY    float32

	// scripted input. cleared at the end of every frame
	keys       map[editor.Key]bool
	clicks     map[editor.ItemID]bool
	rightClick map[editor.ItemID]bool
	typed      string
	dropFocus  bool
	combos     map[string]int
	drags      map[string]int
	lines      map[string]string

	// open state of collapsing headers. headers not in the map use their
	// default state
	headers map[string]bool

	// the text input with keyboard focus
	focus    editor.ItemID
	hasFocus bool

	// recorded output. reset at the start of every frame
	labels     map[editor.ItemID]editor.Label
	inputs     []editor.TextInput
	inputIDs   []editor.ItemID
	texts      []string
	combosSeen []string
	lineTexts  map[string]string
	scrolled   bool
	rows       int
	window     bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		lineHeight: 10,
		height:     100,
		headers:    make(map[string]bool),
	}
}

func (h *fakeHost) frame(f func()) {
	h.labels = make(map[editor.ItemID]editor.Label)
	h.inputs = h.inputs[:0]
	h.inputIDs = h.inputIDs[:0]
	h.texts = h.texts[:0]
	h.combosSeen = h.combosSeen[:0]
	h.lineTexts = make(map[string]string)
	h.scrolled = false
	h.rows = 0
	h.window = false

	f()

	h.keys = nil
	h.clicks = nil
	h.rightClick = nil
	h.typed = ""
	h.dropFocus = false
	h.combos = nil
	h.drags = nil
	h.lines = nil
}

func (h *fakeHost) hasText(s string) bool {
	for _, t := range h.texts {
		if t == s {
			return true
		}
	}
	return false
}

func (h *fakeHost) hasCombo(label string) bool {
	for _, c := range h.combosSeen {
		if c == label {
			return true
		}
	}
	return false
}

func (h *fakeHost) TextHeight(_ editor.TextStyle) float32 {
	return h.lineHeight
}

func (h *fakeHost) KeyPressed(key editor.Key) bool {
	return h.keys[key]
}

func (h *fakeHost) BeginWindow(_ string, open *bool, _ float32) bool {
	h.window = true
	return *open
}

func (h *fakeHost) EndWindow() {
}

func (h *fakeHost) BeginScrollArea(_ string) editor.Viewport {
	return editor.Viewport{ScrollY: h.scrollY, Height: h.height}
}

func (h *fakeHost) EndScrollArea() {
}

func (h *fakeHost) SetScrollY(y float32) {
	h.scrollY = y
	h.scrolled = true
}

func (h *fakeHost) Spacing(_ float32) {
}

func (h *fakeHost) BeginRow() {
	h.rows++
}

func (h *fakeHost) Gap() {
}

func (h *fakeHost) EndRow() float32 {
	return 100
}

func (h *fakeHost) Label(id editor.ItemID, l editor.Label) editor.Response {
	h.labels[id] = l
	return editor.Response{
		Clicked:          h.clicks[id],
		SecondaryClicked: h.rightClick[id],
		Width:            20,
	}
}

func (h *fakeHost) TextInput(id editor.ItemID, in editor.TextInput) editor.InputResponse {
	h.inputs = append(h.inputs, in)
	h.inputIDs = append(h.inputIDs, id)

	if in.RequestFocus {
		h.focus = id
		h.hasFocus = true
	}

	if h.dropFocus {
		h.hasFocus = false
	}

	focused := h.hasFocus && h.focus == id

	if focused && h.typed != "" {
		t := h.typed
		if in.HexOnly {
			t = dataformat.FilterHex(t)
		}
		*in.Text += t
		if in.MaxLen > 0 && len(*in.Text) > in.MaxLen {
			*in.Text = (*in.Text)[:in.MaxLen]
		}
		h.typed = ""
	}

	return editor.InputResponse{Focused: focused, Width: 20}
}

func (h *fakeHost) Separator() {
}

func (h *fakeHost) Text(s string) {
	h.texts = append(h.texts, s)
}

func (h *fakeHost) CollapsingHeader(label string, defaultOpen bool) bool {
	if v, ok := h.headers[label]; ok {
		return v
	}
	return defaultOpen
}

func (h *fakeHost) Combo(label string, selected int, _ []string) (int, bool) {
	h.combosSeen = append(h.combosSeen, label)
	if v, ok := h.combos[label]; ok {
		return v, v != selected
	}
	return selected, false
}

func (h *fakeHost) DragInt(label string, v *int, min int, max int) bool {
	if n, ok := h.drags[label]; ok {
		*v = n
		return true
	}
	return false
}

func (h *fakeHost) Checkbox(_ string, _ *bool) bool {
	return false
}

func (h *fakeHost) InputLine(id string, _ string, text *string) bool {
	h.lineTexts[id] = *text
	if s, ok := h.lines[id]; ok {
		*text = s
		return true
	}
	return false
}

// memory is the backing store used by the tests.
type memory struct {
	data        []uint8
	unavailable map[editor.Address]bool
	reads       int
	writes      []write
}

type write struct {
	addr  editor.Address
	value uint8
}

func newMemory(size int) *memory {
	return &memory{
		data:        make([]uint8, size),
		unavailable: make(map[editor.Address]bool),
	}
}

func (m *memory) read(addr editor.Address) (uint8, bool) {
	m.reads++
	if m.unavailable[addr] || addr >= uint64(len(m.data)) {
		return 0, false
	}
	return m.data[addr], true
}

func (m *memory) write(addr editor.Address, v uint8) {
	m.writes = append(m.writes, write{addr: addr, value: v})
	m.data[addr] = v
}
