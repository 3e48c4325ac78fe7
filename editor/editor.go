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

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/editor/clipper"
	"github.com/jetsetilly/memedit/editor/dataformat"
	"github.com/jetsetilly/memedit/logger"
)

// Sentinal error patterns.
const (
	UnknownRange = "editor: unknown address range (%s)"
)

// DefaultWindowTitle is the title of the window drawn by DrawWindow() unless
// it is changed with SetWindowTitle().
const DefaultWindowTitle = "Memory Editor"

// the number of values in each group of the memory grid.
const groupSize = 8

// Editor is the memory viewer and editor. It should be created once and kept
// for the lifetime of the GUI.
type Editor struct {
	title   string
	ranges  namedRanges
	options Options

	// the name of the selected address range
	selected string

	fd frameData

	// the addresses drawn in the most recent frame
	visible AddressRange
}

// New is the preferred method of initialisation for the Editor type.
func New() *Editor {
	return &Editor{
		title:   DefaultWindowTitle,
		ranges:  newNamedRanges(),
		options: DefaultOptions(),
	}
}

// WithWindowTitle sets the window title and returns the Editor. The title is
// only used by DrawWindow().
func (ed *Editor) WithWindowTitle(title string) *Editor {
	ed.SetWindowTitle(title)
	return ed
}

// SetWindowTitle sets the title used by DrawWindow().
func (ed *Editor) SetWindowTitle(title string) {
	ed.title = title
}

// WindowTitle returns the title used by DrawWindow().
func (ed *Editor) WindowTitle() string {
	return ed.title
}

// WithAddressRange adds an address range and returns the Editor. See
// SetAddressRange() for details.
func (ed *Editor) WithAddressRange(name string, r AddressRange) *Editor {
	ed.SetAddressRange(name, r)
	return ed
}

// SetAddressRange adds or replaces the named address range. The range must not
// be empty.
//
// The first range to be added is selected automatically. Adding more ranges
// never changes the selected range. If there is more than one range the user
// can choose between them with the region selector in the options panel.
func (ed *Editor) SetAddressRange(name string, r AddressRange) {
	ed.ranges.set(name, r)
	if ed.selected == "" {
		ed.selected = name
	}
	logger.Logf(logger.Allow, "editor", "address range %s: %s", name, r)
}

// RemoveAddressRange removes the named address range. If the range is the
// selected range then the first remaining range is selected.
func (ed *Editor) RemoveAddressRange(name string) error {
	if !ed.ranges.remove(name) {
		return curated.Errorf(UnknownRange, name)
	}
	if ed.selected == name {
		ed.selected = ""
		if ed.ranges.len() > 0 {
			ed.selected = ed.ranges.names[0]
		}
		ed.fd.stopEditing()
		ed.fd.hasScrollLine = false
	}
	return nil
}

// SelectAddressRange makes the named address range the range that is shown.
func (ed *Editor) SelectAddressRange(name string) error {
	if _, ok := ed.ranges.get(name); !ok {
		return curated.Errorf(UnknownRange, name)
	}
	if ed.selected != name {
		ed.selected = name
		ed.fd.stopEditing()
		ed.fd.hasScrollLine = false
	}
	return nil
}

// SelectedAddressRange returns the name of the selected address range and the
// range itself. The bool return value is false if no ranges have been added.
func (ed *Editor) SelectedAddressRange() (string, AddressRange, bool) {
	r, ok := ed.ranges.get(ed.selected)
	return ed.selected, r, ok
}

// AddressRanges returns the names of all address ranges in the order they were
// added.
func (ed *Editor) AddressRanges() []string {
	return append([]string{}, ed.ranges.names...)
}

// RegionSelectorVisible returns true if the region selector will be shown in
// the options panel.
func (ed *Editor) RegionSelectorVisible() bool {
	return ed.ranges.len() > 1
}

// WithOptions sets the options and returns the Editor.
func (ed *Editor) WithOptions(o Options) *Editor {
	ed.SetOptions(o)
	return ed
}

// SetOptions replaces the current options.
func (ed *Editor) SetOptions(o Options) {
	o.normalise()
	ed.options = o
}

// Options returns a copy of the current options.
func (ed *Editor) Options() Options {
	return ed.options
}

// VisibleRange returns the range of addresses drawn in the most recent frame.
func (ed *Editor) VisibleRange() AddressRange {
	return ed.visible
}

// EditAddress returns the address being edited. The bool return value is false
// if no address is being edited.
func (ed *Editor) EditAddress() (Address, bool) {
	return ed.fd.editAddress, ed.fd.editing
}

// HighlightAddress returns the highlighted address. The bool return value is
// false if no address is highlighted.
func (ed *Editor) HighlightAddress() (Address, bool) {
	return ed.fd.highlightAddress, ed.fd.highlighting
}

// active address range. panics if there are no address ranges.
func (ed *Editor) activeRange() AddressRange {
	r, ok := ed.ranges.get(ed.selected)
	if !ok {
		panic("editor: at least one address range must be added before drawing")
	}
	return r
}

// DrawWindow draws the editor inside a window. The window is closed by the
// user by setting open to false. The width of the window follows the width of
// the memory grid while the height can be resized freely.
//
// See DrawContents() for details about the read and write functions.
func (ed *Editor) DrawWindow(h Host, open *bool, read ReadFunc, write WriteFunc) {
	// EndWindow() must be called whatever BeginWindow() returns
	defer h.EndWindow()
	if !h.BeginWindow(ed.title, open, ed.fd.previousWidth) {
		return
	}
	ed.DrawContents(h, read, write)
}

// DrawContents draws the editor without a window. It can be placed inside any
// container provided by the Host.
//
// The read function is called for every visible value in the memory grid. If
// the write function is nil the editor is read-only and no value can be
// edited.
//
// DrawContents will panic if no address range has been added.
func (ed *Editor) DrawContents(h Host, read ReadFunc, write WriteFunc) {
	r := ed.activeRange()
	if read == nil {
		panic("editor: read function is nil")
	}

	// the address range may have been changed since the previous frame
	if ed.fd.editing && !r.Contains(ed.fd.editAddress) {
		ed.fd.stopEditing()
	}

	// the region selector in the options panel can change the active range
	ed.drawOptions(h, r, read)
	r = ed.activeRange()
	h.Separator()

	lineHeight := max(h.TextHeight(ed.options.AddressStyle),
		h.TextHeight(ed.options.ValueStyle),
		h.TextHeight(ed.options.ASCIIStyle))

	columns := ed.options.Columns
	totalLines := clipper.LineCount(r.Len(), columns)

	// keyboard navigation happens before the clipper so that the clipper can
	// scroll to the new address this frame
	if write != nil {
		ed.navigate(h, r)
	}

	vp := h.BeginScrollArea(ed.selected)
	defer h.EndScrollArea()

	clp := clipper.New(totalLines, lineHeight)
	if ed.fd.hasScrollLine {
		clp = clp.WithStartLine(ed.fd.scrollLine)
		ed.fd.hasScrollLine = false
	}

	lay := clp.Layout(vp.ScrollY, vp.Height)
	if lay.Scrolled {
		h.SetScrollY(float32(lay.ScrollY))
	}

	// the last line may be short so the end of the range is used rather than
	// a multiple of the column count, which may overflow
	ed.visible = AddressRange{
		Start: r.Start + lay.First*uint64(columns),
		End:   r.End,
	}
	if lay.Last < totalLines {
		ed.visible.End = r.Start + lay.Last*uint64(columns)
	}
	ed.fd.visibleLines = lay.Lines()

	addressDigits := dataformat.HexDigits(r.End - 1)

	h.Spacing(float32(lay.Before))

	var width float32
	for line := lay.First; line < lay.Last; line++ {
		start := r.Start + line*uint64(columns)
		width = max(width, ed.drawLine(h, r, start, addressDigits, read, write))
	}

	h.Spacing(float32(lay.After))

	if lay.Lines() > 0 {
		ed.fd.previousWidth = width
	}
}

// draws a single line of the memory grid starting with the address. returns
// the width of the line.
func (ed *Editor) drawLine(h Host, r AddressRange, start Address, addressDigits int, read ReadFunc, write WriteFunc) float32 {
	// the number of values on the line. the last line of a range may be short
	n := min(uint64(ed.options.Columns), r.End-start)

	h.BeginRow()

	lbl := Label{
		Text:     fmt.Sprintf("0x%0*X:", addressDigits, start),
		Style:    ed.options.AddressStyle,
		Color:    ed.options.AddressColor,
		HasColor: true,
	}
	if ed.fd.highlighting && ed.fd.highlightAddress >= start && ed.fd.highlightAddress-start < n {
		lbl.Color = ed.options.HighlightColor
	}
	h.Label(ItemID{Kind: ItemAddress, Address: start}, lbl)

	for i := range n {
		if i%groupSize == 0 {
			h.Gap()
		}
		ed.drawValue(h, r, start+i, read, write)
	}

	if ed.options.ShowASCII {
		h.Gap()
		for i := range n {
			ed.drawASCII(h, start+i, i > 0, read)
		}
	}

	return h.EndRow()
}

// draws a single value in the memory grid. the value is drawn as a text input
// if it is being edited.
func (ed *Editor) drawValue(h Host, r AddressRange, addr Address, read ReadFunc, write WriteFunc) {
	v, ok := read(addr)

	text := ed.options.NoneDisplayValue
	if ok {
		text = dataformat.FormatByte(v)
	}

	if write != nil && ed.fd.editing && ed.fd.editAddress == addr {
		// unavailable values can not be edited
		if ok {
			ed.drawEdit(h, r, addr, text, write)
			return
		}
		logger.Logf(logger.Allow, "editor", "edit of 0x%X abandoned: value is unavailable", addr)
		ed.fd.stopEditing()
	}

	lbl := Label{
		Text:  text,
		Style: ed.options.ValueStyle,
	}

	if ed.fd.isHighlighted(addr) {
		lbl.Color = ed.options.HighlightColor
		lbl.HasColor = true
	} else if ed.options.ShowZeroColor && (!ok || v == 0) {
		lbl.Color = ed.options.ZeroColor
		lbl.HasColor = true
	}

	lbl.Background = ed.fd.isRelated(addr, ed.options.Preview.Format.Width())

	resp := h.Label(ItemID{Kind: ItemValue, Address: addr}, lbl)
	ed.fd.valueWidth = resp.Width

	if resp.SecondaryClicked {
		ed.fd.toggleHighlight(addr)
	}

	if resp.Clicked {
		if write != nil && ok {
			ed.fd.setEditAddress(addr, r)
		} else {
			ed.fd.toggleHighlight(addr)
		}
	}
}

// draws the text input for the address being edited. the value is written to
// memory once two hex digits have been entered.
func (ed *Editor) drawEdit(h Host, r AddressRange, addr Address, hint string, write WriteFunc) {
	requested := ed.fd.requestFocus
	ed.fd.requestFocus = false

	resp := h.TextInput(ItemID{Kind: ItemEdit, Address: addr}, TextInput{
		Text:         &ed.fd.editText,
		Hint:         hint,
		Width:        ed.fd.valueWidth,
		Style:        ed.options.ValueStyle,
		HexOnly:      true,
		MaxLen:       2,
		RequestFocus: requested,
	})

	ed.fd.editText = dataformat.FilterHex(ed.fd.editText)

	if v, ok := dataformat.ParseByte(ed.fd.editText); ok {
		write(addr, v)

		// the edit moves to the next address. if there is no next address the
		// editor stops editing
		if addr+1 < r.End {
			ed.fd.setEditAddress(addr+1, r)
			ed.scrollToAddress(addr+1, r)
		} else {
			ed.fd.stopEditing()
		}
		return
	}

	// focus is not checked in the frame where focus was requested because the
	// host may not have given focus to the input yet
	if !requested && !resp.Focused {
		ed.fd.stopEditing()
	}
}

// draws the ASCII representation of a single value.
func (ed *Editor) drawASCII(h Host, addr Address, joined bool, read ReadFunc) {
	v, ok := read(addr)

	c := '.'
	if ok && v >= 32 && v < 128 {
		c = rune(v)
	}

	lbl := Label{
		Text:   string(c),
		Style:  ed.options.ASCIIStyle,
		Joined: joined,
	}

	if ed.fd.isHighlighted(addr) {
		lbl.Color = ed.options.HighlightColor
		lbl.HasColor = true
		lbl.Background = true
	}

	h.Label(ItemID{Kind: ItemASCII, Address: addr}, lbl)
}
