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

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/editor/dataformat"
	"github.com/jetsetilly/memedit/logger"
)

// Sentinal error patterns.
const (
	GotoInvalid    = "editor: goto: invalid address (%s)"
	GotoOutOfRange = "editor: goto: address not in range (%s)"
)

// Goto highlights the address and scrolls the memory grid so that the address
// is visible in the next frame. The address is a hexadecimal number with an
// optional 0x prefix.
//
// If the address is not in the selected address range it is treated as an
// offset from the start of the range. For example, if the range starts at
// 0xFF00 then Goto("5") will highlight the address 0xFF05.
//
// The Editor's state is unchanged if an error is returned.
func (ed *Editor) Goto(s string) (Address, error) {
	r := ed.activeRange()

	addr, err := dataformat.ParseAddress(s)
	if err != nil {
		return 0, curated.Errorf(GotoInvalid, s)
	}

	if !r.Contains(addr) {
		// an offset that overflows can never be in range
		if addr > r.End-r.Start {
			return 0, curated.Errorf(GotoOutOfRange, s)
		}
		addr += r.Start
		if !r.Contains(addr) {
			return 0, curated.Errorf(GotoOutOfRange, s)
		}
	}

	ed.fd.highlighting = true
	ed.fd.highlightAddress = addr
	ed.fd.scrollTo((addr - r.Start) / uint64(ed.options.Columns))

	return addr, nil
}

// filterGoto removes everything from the goto text that is not a hexadecimal
// digit. a leading 0x is preserved.
func filterGoto(s string) string {
	for _, p := range []string{"0x", "0X"} {
		if strings.HasPrefix(s, p) {
			return p + dataformat.FilterHex(s[len(p):])
		}
	}
	return dataformat.FilterHex(s)
}

// draws the collapsible options panel. this includes the data preview.
func (ed *Editor) drawOptions(h Host, r AddressRange, read ReadFunc) {
	if !h.CollapsingHeader("Options", !ed.options.OptionsCollapsed) {
		return
	}

	if ed.RegionSelectorVisible() {
		if i, ok := h.Combo("Region", ed.ranges.index(ed.selected), ed.ranges.names); ok {
			if err := ed.SelectAddressRange(ed.ranges.names[i]); err != nil {
				logger.Log(logger.Allow, "editor", err)
			}
			// the rest of the options panel is drawn for the new range
			r = ed.activeRange()
		}
	}

	if ed.options.ResizableColumns {
		if h.DragInt("Columns", &ed.options.Columns, MinColumns, MaxColumns) {
			ed.options.normalise()
		}
	} else {
		h.Text(fmt.Sprintf("Columns: %d", ed.options.Columns))
	}

	enter := h.InputLine("goto", "0000", &ed.fd.gotoText)
	ed.fd.gotoText = filterGoto(ed.fd.gotoText)
	if enter {
		addr, err := ed.Goto(ed.fd.gotoText)
		if err != nil {
			logger.Log(logger.Allow, "editor", err)
		} else {
			// the field always shows the absolute address after a successful
			// goto, even if the user typed an offset
			ed.fd.gotoText = fmt.Sprintf("%X", addr)
		}
	}
	h.Text(fmt.Sprintf("Goto: %s", r))

	h.Checkbox("Show ASCII", &ed.options.ShowASCII)
	h.Checkbox("Custom zero colour", &ed.options.ShowZeroColor)

	ed.drawPreview(h, r, read)
}

// draws the data preview. the value at the highlighted address is decoded
// according to the preview options.
func (ed *Editor) drawPreview(h Host, r AddressRange, read ReadFunc) {
	open := h.CollapsingHeader("Data Preview", false)

	// opening and closing the data preview toggles highlighting of the bytes
	// that make up the previewed value
	if open != ed.fd.previewOpen {
		ed.fd.previewOpen = open
		ed.fd.relatedHighlight = !ed.fd.relatedHighlight
	}

	if !open {
		return
	}

	prv := &ed.options.Preview

	endians := make([]string, len(dataformat.Endiannesses))
	sel := 0
	for i, e := range dataformat.Endiannesses {
		endians[i] = e.String()
		if e == prv.Endianness {
			sel = i
		}
	}
	if i, ok := h.Combo("Endianness", sel, endians); ok {
		prv.Endianness = dataformat.Endiannesses[i]
	}

	formats := make([]string, len(dataformat.Formats))
	sel = 0
	for i, f := range dataformat.Formats {
		formats[i] = f.String()
		if f == prv.Format {
			sel = i
		}
	}
	if i, ok := h.Combo("Format", sel, formats); ok {
		prv.Format = dataformat.Formats[i]
	}

	if !ed.fd.highlighting {
		h.Text("Value (decimal): None")
		return
	}

	h.Text(fmt.Sprintf("Value at 0x%X (decimal): %s", ed.fd.highlightAddress,
		previewValue(ed.fd.highlightAddress, r, *prv, read)))
}

// previewValue reads the bytes starting at the address and decodes them. bytes
// outside the range, and bytes that are unavailable, are treated as zero.
func previewValue(addr Address, r AddressRange, prv PreviewOptions, read ReadFunc) string {
	b := make([]uint8, prv.Format.Width())
	for i := range b {
		a := addr + uint64(i)
		if a < addr || !r.Contains(a) {
			continue // for loop
		}
		if v, ok := read(a); ok {
			b[i] = v
		}
	}
	return dataformat.Decode(b, prv.Format, prv.Endianness)
}
