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
	"math"
	"testing"

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/test"
)

func valueID(addr editor.Address) editor.ItemID {
	return editor.ItemID{Kind: editor.ItemValue, Address: addr}
}

func click(h *fakeHost, addr editor.Address) {
	h.clicks = map[editor.ItemID]bool{valueID(addr): true}
}

func rightClick(h *fakeHost, addr editor.Address) {
	h.rightClick = map[editor.ItemID]bool{valueID(addr): true}
}

func press(h *fakeHost, key editor.Key) {
	h.keys = map[editor.Key]bool{key: true}
}

// returns a function that draws a single frame of the editor.
func drawer(h *fakeHost, ed *editor.Editor, mem *memory, readOnly bool) func() {
	return func() {
		h.frame(func() {
			if readOnly {
				ed.DrawContents(h, mem.read, nil)
			} else {
				ed.DrawContents(h, mem.read, mem.write)
			}
		})
	}
}

func expectEditing(t *testing.T, ed *editor.Editor, addr editor.Address) {
	t.Helper()
	a, ok := ed.EditAddress()
	if test.ExpectSuccess(t, ok, "editing") {
		test.ExpectEquality(t, a, addr)
	}
}

func expectIdle(t *testing.T, ed *editor.Editor) {
	t.Helper()
	_, ok := ed.EditAddress()
	test.ExpectFailure(t, ok, "idle")
}

func TestWrite(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	expectIdle(t, ed)

	click(h, 0x10)
	draw()
	expectEditing(t, ed, 0x10)

	// editing implies highlighting
	a, ok := ed.HighlightAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, editor.Address(0x10))

	h.typed = "4F"
	draw()
	test.DemandEquality(t, len(mem.writes), 1)
	test.ExpectEquality(t, mem.writes[0], write{addr: 0x10, value: 0x4f})
	test.ExpectEquality(t, mem.data[0x10], uint8(0x4f))
	expectEditing(t, ed, 0x11)

	// the edit input has moved to the next address in the same frame
	test.DemandEquality(t, len(h.inputIDs), 2)
	test.ExpectEquality(t, h.inputIDs[0], editor.ItemID{Kind: editor.ItemEdit, Address: 0x10})
	test.ExpectEquality(t, h.inputIDs[1], editor.ItemID{Kind: editor.ItemEdit, Address: 0x11})
	test.ExpectSuccess(t, h.inputs[1].RequestFocus)

	// digits typed over two frames
	h.typed = "a"
	draw()
	test.ExpectEquality(t, len(mem.writes), 1)
	expectEditing(t, ed, 0x11)
	h.typed = "7"
	draw()
	test.DemandEquality(t, len(mem.writes), 2)
	test.ExpectEquality(t, mem.writes[1], write{addr: 0x11, value: 0xa7})
	expectEditing(t, ed, 0x12)

	// non-hex characters are ignored
	h.typed = "zz"
	draw()
	test.ExpectEquality(t, len(mem.writes), 2)
	expectEditing(t, ed, 0x12)
}

func TestWriteLastAddress(t *testing.T) {
	mem := newMemory(0x20)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x20})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	click(h, 0x1f)
	draw()
	expectEditing(t, ed, 0x1f)

	h.typed = "12"
	draw()
	test.DemandEquality(t, len(mem.writes), 1)
	test.ExpectEquality(t, mem.writes[0], write{addr: 0x1f, value: 0x12})

	// there is no next address so editing stops
	expectIdle(t, ed)
}

func TestFocusLoss(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	click(h, 0x10)
	draw()
	h.typed = "4"
	draw()
	expectEditing(t, ed, 0x10)

	h.dropFocus = true
	draw()
	expectIdle(t, ed)
	test.ExpectEquality(t, len(mem.writes), 0)

	// no text input is drawn once editing has stopped
	draw()
	test.ExpectEquality(t, len(h.inputs), 0)
}

func TestIdempotence(t *testing.T) {
	mem := newMemory(0x100)
	for i := range mem.data {
		mem.data[i] = uint8(i)
	}

	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	click(h, 0x22)
	draw()
	draw()

	edit, editing := ed.EditAddress()
	hlt, highlighting := ed.HighlightAddress()
	labels := h.labels

	for range 5 {
		draw()
		test.ExpectEquality(t, len(mem.writes), 0)

		e, ok := ed.EditAddress()
		test.ExpectEquality(t, e, edit)
		test.ExpectEquality(t, ok, editing)

		a, ok := ed.HighlightAddress()
		test.ExpectEquality(t, a, hlt)
		test.ExpectEquality(t, ok, highlighting)

		test.ExpectEquality(t, len(h.labels), len(labels))
		for id, l := range labels {
			test.ExpectEquality(t, h.labels[id], l)
		}
	}
}

func TestNavigation(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0x10, End: 0x40})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	click(h, 0x10)
	draw()
	expectEditing(t, ed, 0x10)

	// left from the first address stays on the first address
	press(h, editor.KeyLeft)
	draw()
	expectEditing(t, ed, 0x10)

	// up from the first line stays on the first address
	press(h, editor.KeyUp)
	draw()
	expectEditing(t, ed, 0x10)

	press(h, editor.KeyRight)
	draw()
	expectEditing(t, ed, 0x11)

	press(h, editor.KeyDown)
	draw()
	expectEditing(t, ed, 0x21)

	press(h, editor.KeyDown)
	draw()
	expectEditing(t, ed, 0x31)

	// down from the last line is clamped to the last address of the range
	press(h, editor.KeyDown)
	draw()
	expectEditing(t, ed, 0x3f)

	press(h, editor.KeyRight)
	draw()
	expectEditing(t, ed, 0x3f)

	press(h, editor.KeyUp)
	draw()
	expectEditing(t, ed, 0x2f)

	press(h, editor.KeyLeft)
	draw()
	expectEditing(t, ed, 0x2e)

	test.ExpectEquality(t, len(mem.writes), 0)
}

func TestNavigationScroll(t *testing.T) {
	mem := newMemory(0x1000)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x1000})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	// ten lines are visible
	draw()
	test.ExpectEquality(t, ed.VisibleRange(), editor.AddressRange{Start: 0, End: 0xa0})

	click(h, 0x95)
	draw()
	expectEditing(t, ed, 0x95)

	press(h, editor.KeyDown)
	draw()
	expectEditing(t, ed, 0xa5)
	test.ExpectSuccess(t, h.scrolled)
	test.ExpectSuccess(t, ed.VisibleRange().Contains(0xa5))

	// moving within the visible lines does not scroll
	press(h, editor.KeyLeft)
	draw()
	test.ExpectFailure(t, h.scrolled)
}

func TestReadOnly(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, true)

	draw()
	click(h, 0x10)
	draw()
	expectIdle(t, ed)

	a, ok := ed.HighlightAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, editor.Address(0x10))

	draw()
	test.ExpectEquality(t, len(h.inputs), 0)
	test.ExpectEquality(t, h.labels[valueID(0x10)].Color, ed.Options().HighlightColor)

	// clicking again removes the highlight
	click(h, 0x10)
	draw()
	_, ok = ed.HighlightAddress()
	test.ExpectFailure(t, ok)
}

func TestHighlight(t *testing.T) {
	mem := newMemory(0x100)
	mem.data[0x11] = 0x41
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	opts := ed.Options()

	// zero values use the zero color
	test.ExpectEquality(t, h.labels[valueID(0x10)].Color, opts.ZeroColor)
	test.ExpectFailure(t, h.labels[valueID(0x11)].HasColor)
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemASCII, Address: 0x11}].Text, "A")
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemASCII, Address: 0x10}].Text, ".")

	// right click highlights without editing
	rightClick(h, 0x11)
	draw()
	expectIdle(t, ed)
	draw()
	test.ExpectEquality(t, h.labels[valueID(0x11)].Color, opts.HighlightColor)

	// highlight takes precedence over the zero color
	rightClick(h, 0x10)
	draw()
	draw()
	test.ExpectEquality(t, h.labels[valueID(0x10)].Color, opts.HighlightColor)
	test.ExpectFailure(t, h.labels[valueID(0x11)].HasColor, "not highlighted")

	// the address label of the line takes the highlight color
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemAddress, Address: 0x10}].Color, opts.HighlightColor)
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemAddress, Address: 0x20}].Color, opts.AddressColor)

	// the highlighted ASCII character has a background
	asc := h.labels[editor.ItemID{Kind: editor.ItemASCII, Address: 0x10}]
	test.ExpectSuccess(t, asc.Background)
	test.ExpectEquality(t, asc.Color, opts.HighlightColor)
}

func TestUnavailable(t *testing.T) {
	mem := newMemory(0x100)
	mem.data[0x20] = 0x41
	mem.unavailable[0x20] = true

	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	lbl := h.labels[valueID(0x20)]
	test.ExpectEquality(t, lbl.Text, "--")
	test.ExpectEquality(t, lbl.Color, ed.Options().ZeroColor)
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemASCII, Address: 0x20}].Text, ".")

	// clicking an unavailable value does not start an edit
	click(h, 0x20)
	draw()
	expectIdle(t, ed)
	draw()
	test.ExpectEquality(t, len(h.inputs), 0)
	test.ExpectEquality(t, h.labels[valueID(0x20)].Color, ed.Options().HighlightColor)

	// the placeholder can be changed
	opts := ed.Options()
	opts.NoneDisplayValue = "??"
	ed.SetOptions(opts)
	draw()
	test.ExpectEquality(t, h.labels[valueID(0x20)].Text, "??")

	// a value that becomes unavailable while it is being edited stops the edit
	click(h, 0x21)
	draw()
	expectEditing(t, ed, 0x21)
	mem.unavailable[0x21] = true
	draw()
	expectIdle(t, ed)
	test.ExpectEquality(t, len(mem.writes), 0)
}

func TestGoto(t *testing.T) {
	ed := editor.New().WithAddressRange("IO", editor.AddressRange{Start: 0xff00, End: 0xffff})

	// offset from the start of the range
	a, err := ed.Goto("5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, editor.Address(0xff05))

	h, ok := ed.HighlightAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, h, editor.Address(0xff05))

	// absolute address
	a, err = ed.Goto("0xFF10")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, editor.Address(0xff10))

	a, err = ed.Goto("ff20")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, editor.Address(0xff20))

	// the end of the range is not in the range
	_, err = ed.Goto("FFFF")
	test.ExpectSuccess(t, curated.Is(err, editor.GotoOutOfRange))
	_, err = ed.Goto("FF")
	test.ExpectSuccess(t, curated.Is(err, editor.GotoOutOfRange))
	_, err = ed.Goto("100")
	test.ExpectSuccess(t, curated.Is(err, editor.GotoOutOfRange))
	_, err = ed.Goto("FFFFFFFFFFFFFFFF")
	test.ExpectSuccess(t, curated.Is(err, editor.GotoOutOfRange))
	_, err = ed.Goto("")
	test.ExpectSuccess(t, curated.Is(err, editor.GotoInvalid))
	_, err = ed.Goto("0x")
	test.ExpectSuccess(t, curated.Is(err, editor.GotoInvalid))

	// failed goto leaves the state unchanged
	h, ok = ed.HighlightAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, h, editor.Address(0xff20))
}

func TestGotoField(t *testing.T) {
	mem := newMemory(0x10000)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0x8000, End: 0x10000})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	test.ExpectSuccess(t, h.hasText("Goto: 0x8000..0x10000"))

	// an offset is rewritten as the absolute address
	h.lines = map[string]string{"goto": "0x800"}
	draw()
	a, ok := ed.HighlightAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, editor.Address(0x8800))

	draw()
	test.ExpectEquality(t, h.lineTexts["goto"], "8800")

	// the grid has scrolled to show the address
	test.ExpectSuccess(t, ed.VisibleRange().Contains(0x8800))
	test.ExpectEquality(t, ed.VisibleRange().Start, editor.Address(0x8800))

	// invalid input is removed from the field and leaves the state unchanged
	h.lines = map[string]string{"goto": "xyz"}
	draw()
	draw()
	test.ExpectEquality(t, h.lineTexts["goto"], "")
	a, ok = ed.HighlightAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, editor.Address(0x8800))
}

func TestRegionSelector(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("All", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	test.ExpectFailure(t, ed.RegionSelectorVisible())
	test.ExpectFailure(t, h.hasCombo("Region"))

	ed.SetAddressRange("IO", editor.AddressRange{Start: 0x80, End: 0x90})
	draw()
	test.ExpectSuccess(t, ed.RegionSelectorVisible())
	test.ExpectSuccess(t, h.hasCombo("Region"))

	// adding a range does not change the selected range
	name, r, ok := ed.SelectedAddressRange()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "All")
	test.ExpectEquality(t, r, editor.AddressRange{Start: 0, End: 0x100})

	// select IO with the region selector
	h.combos = map[string]int{"Region": 1}
	draw()
	name, _, _ = ed.SelectedAddressRange()
	test.ExpectEquality(t, name, "IO")
	test.ExpectEquality(t, ed.VisibleRange(), editor.AddressRange{Start: 0x80, End: 0x90})

	// replacing the All range does not change the selection either
	ed.SetAddressRange("All", editor.AddressRange{Start: 0, End: 0x80})
	name, _, _ = ed.SelectedAddressRange()
	test.ExpectEquality(t, name, "IO")

	test.ExpectSuccess(t, ed.RemoveAddressRange("All"))
	draw()
	test.ExpectFailure(t, ed.RegionSelectorVisible())
	test.ExpectFailure(t, h.hasCombo("Region"))

	err := ed.RemoveAddressRange("All")
	test.ExpectSuccess(t, curated.Is(err, editor.UnknownRange))

	// removing the selected range selects the first remaining range
	ed.SetAddressRange("ROM", editor.AddressRange{Start: 0xf0, End: 0x100})
	test.ExpectSuccess(t, ed.RemoveAddressRange("IO"))
	name, _, _ = ed.SelectedAddressRange()
	test.ExpectEquality(t, name, "ROM")

	err = ed.SelectAddressRange("IO")
	test.ExpectSuccess(t, curated.Is(err, editor.UnknownRange))
}

func TestRegionChangeStopsEdit(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().
		WithAddressRange("All", editor.AddressRange{Start: 0, End: 0x100}).
		WithAddressRange("IO", editor.AddressRange{Start: 0x80, End: 0x90})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	click(h, 0x10)
	draw()
	expectEditing(t, ed, 0x10)

	test.ExpectSuccess(t, ed.SelectAddressRange("IO"))
	expectIdle(t, ed)

	// shrinking the selected range stops an edit that is no longer in range
	test.ExpectSuccess(t, ed.SelectAddressRange("All"))
	draw()
	click(h, 0x50)
	draw()
	expectEditing(t, ed, 0x50)
	ed.SetAddressRange("All", editor.AddressRange{Start: 0, End: 0x40})
	draw()
	expectIdle(t, ed)
}

func TestNoRange(t *testing.T) {
	mem := newMemory(0x100)
	h := newFakeHost()

	test.ExpectPanic(t, func() {
		editor.New().DrawContents(h, mem.read, mem.write)
	})

	test.ExpectPanic(t, func() {
		editor.New().SetAddressRange("empty", editor.AddressRange{Start: 0x10, End: 0x10})
	})

	test.ExpectPanic(t, func() {
		ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
		ed.DrawContents(h, nil, nil)
	})

	// removing the last range means the editor can no longer be drawn
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	test.ExpectSuccess(t, ed.RemoveAddressRange("RAM"))
	test.ExpectPanic(t, func() {
		ed.DrawContents(h, mem.read, mem.write)
	})
}

func TestVisibleRange(t *testing.T) {
	mem := newMemory(0x1000)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x1000})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	test.ExpectEquality(t, ed.VisibleRange(), editor.AddressRange{Start: 0, End: 0xa0})
	test.ExpectEquality(t, h.rows, 10)

	// values are read once for the grid and once for the ASCII sidebar
	mem.reads = 0
	draw()
	test.ExpectEquality(t, mem.reads, 0xa0*2)

	opts := ed.Options()
	opts.ShowASCII = false
	ed.SetOptions(opts)
	mem.reads = 0
	draw()
	test.ExpectEquality(t, mem.reads, 0xa0)

	h.scrollY = 1000
	draw()
	test.ExpectEquality(t, ed.VisibleRange(), editor.AddressRange{Start: 0x640, End: 0x6e0})

	// scrolling past the end is clamped
	h.scrollY = 100000
	draw()
	test.ExpectEquality(t, ed.VisibleRange(), editor.AddressRange{Start: 0xf60, End: 0x1000})
	test.ExpectSuccess(t, h.scrolled)
}

func TestLargeRange(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("Everything", editor.AddressRange{Start: 0, End: math.MaxUint64})
	h := newFakeHost()
	draw := drawer(h, ed, mem, true)

	// the cost of a frame depends on the size of the viewport and not on the
	// size of the range
	mem.reads = 0
	draw()
	test.ExpectEquality(t, mem.reads, 0xa0*2)
	test.ExpectEquality(t, h.rows, 10)

	// address labels are padded to the width of the largest address
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemAddress, Address: 0x10}].Text, "0x0000000000000010:")

	// the visible range at the very end of the address space
	_, err := ed.Goto("FFFFFFFFFFFFFFFE")
	test.DemandSuccess(t, err)
	draw()
	draw()
	vis := ed.VisibleRange()
	test.ExpectEquality(t, vis.End, editor.Address(math.MaxUint64))
	test.ExpectSuccess(t, vis.Start < vis.End, vis)
	test.ExpectSuccess(t, vis.Contains(0xfffffffffffffffe), vis)
	_, ok := h.labels[editor.ItemID{Kind: editor.ItemAddress, Address: 0xfffffffffffffff0}]
	test.ExpectSuccess(t, ok)
}

func TestShortLastLine(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x13})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	draw()
	test.ExpectEquality(t, h.rows, 2)
	_, ok := h.labels[valueID(0x12)]
	test.ExpectSuccess(t, ok)
	_, ok = h.labels[valueID(0x13)]
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, h.labels[editor.ItemID{Kind: editor.ItemAddress, Address: 0x10}].Text, "0x10:")
}

func TestColumns(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	h.drags = map[string]int{"Columns": 8}
	draw()
	test.ExpectEquality(t, ed.Options().Columns, 8)
	draw()
	test.ExpectEquality(t, ed.VisibleRange(), editor.AddressRange{Start: 0, End: 0x50})

	h.drags = map[string]int{"Columns": 100}
	draw()
	test.ExpectEquality(t, ed.Options().Columns, editor.MaxColumns)

	opts := ed.Options()
	opts.Columns = 0
	ed.SetOptions(opts)
	test.ExpectEquality(t, ed.Options().Columns, editor.MinColumns)

	// column count can not be changed if the columns are not resizable
	opts.Columns = 16
	opts.ResizableColumns = false
	ed.SetOptions(opts)
	h.drags = map[string]int{"Columns": 8}
	draw()
	test.ExpectEquality(t, ed.Options().Columns, 16)
	test.ExpectSuccess(t, h.hasText("Columns: 16"))
}

func TestDataPreview(t *testing.T) {
	mem := newMemory(0x20)
	mem.data[0x10] = 0x01
	mem.data[0x1f] = 0x01

	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x20})
	h := newFakeHost()
	draw := drawer(h, ed, mem, false)

	h.headers["Data Preview"] = true
	draw()
	test.ExpectSuccess(t, h.hasText("Value (decimal): None"))

	_, err := ed.Goto("10")
	test.ExpectSuccess(t, err)
	draw()
	test.ExpectSuccess(t, h.hasText("Value at 0x10 (decimal): 1"))

	// opening the data preview highlights the bytes that form the value
	for a := editor.Address(0x10); a < 0x14; a++ {
		test.ExpectSuccess(t, h.labels[valueID(a)].Background, a)
	}
	test.ExpectFailure(t, h.labels[valueID(0x14)].Background)
	test.ExpectFailure(t, h.labels[valueID(0x0f)].Background)

	// bytes beyond the end of the range are treated as zero
	_, err = ed.Goto("1f")
	test.ExpectSuccess(t, err)
	draw()
	test.ExpectSuccess(t, h.hasText("Value at 0x1F (decimal): 1"))

	// select big endian U16
	h.combos = map[string]int{"Endianness": 0, "Format": 1}
	draw()
	test.ExpectSuccess(t, h.hasText("Value at 0x1F (decimal): 256"))

	// closing the data preview removes the related highlighting
	h.headers["Data Preview"] = false
	draw()
	test.ExpectFailure(t, h.labels[valueID(0x1f)].Background)
}

func TestSelectionPreserved(t *testing.T) {
	ed := editor.New().
		WithAddressRange("A", editor.AddressRange{Start: 0, End: 0x10}).
		WithAddressRange("B", editor.AddressRange{Start: 0x10, End: 0x20})

	name, _, _ := ed.SelectedAddressRange()
	test.ExpectEquality(t, name, "A")

	test.ExpectSuccess(t, ed.SelectAddressRange("B"))
	ed.SetAddressRange("A", editor.AddressRange{Start: 0, End: 0x08})
	ed.SetAddressRange("C", editor.AddressRange{Start: 0x20, End: 0x30})

	name, _, _ = ed.SelectedAddressRange()
	test.ExpectEquality(t, name, "B")

	names := ed.AddressRanges()
	test.DemandEquality(t, len(names), 3)
	test.ExpectEquality(t, names[0], "A")
	test.ExpectEquality(t, names[1], "B")
	test.ExpectEquality(t, names[2], "C")
}

func TestWindow(t *testing.T) {
	mem := newMemory(0x100)
	ed := editor.New().
		WithWindowTitle("RAM").
		WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
	test.ExpectEquality(t, ed.WindowTitle(), "RAM")

	h := newFakeHost()

	open := true
	h.frame(func() {
		ed.DrawWindow(h, &open, mem.read, mem.write)
	})
	test.ExpectSuccess(t, h.window)
	test.ExpectEquality(t, h.rows, 10)

	// nothing is drawn inside a closed window
	open = false
	h.frame(func() {
		ed.DrawWindow(h, &open, mem.read, mem.write)
	})
	test.ExpectEquality(t, h.rows, 0)
}
