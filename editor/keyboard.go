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
	"math"
)

// navigate moves the edit address in response to the navigation keys. the
// new address is always inside the range.
func (ed *Editor) navigate(h Host, r AddressRange) {
	if !ed.fd.editing {
		return
	}

	addr := ed.fd.editAddress
	columns := uint64(ed.options.Columns)

	switch {
	case h.KeyPressed(KeyLeft):
		if addr > 0 {
			addr--
		}
	case h.KeyPressed(KeyRight):
		if addr < math.MaxUint64 {
			addr++
		}
	case h.KeyPressed(KeyUp):
		if addr < columns {
			addr = 0
		} else {
			addr -= columns
		}
	case h.KeyPressed(KeyDown):
		if addr > math.MaxUint64-columns {
			addr = math.MaxUint64
		} else {
			addr += columns
		}
	default:
		return
	}

	addr = r.clamp(addr)
	ed.fd.setEditAddress(addr, r)
	ed.scrollToAddress(addr, r)
}

// scrollToAddress requests a scroll in the next frame if the address was not
// visible in the previous frame. the scroll is the smallest scroll that will
// make the address visible.
func (ed *Editor) scrollToAddress(addr Address, r AddressRange) {
	if ed.visible.Contains(addr) {
		return
	}

	line := (addr - r.Start) / uint64(ed.options.Columns)

	if addr < ed.visible.Start {
		ed.fd.scrollTo(line)
		return
	}

	// the final visible line is probably only partially visible so it does
	// not count
	full := max(ed.fd.visibleLines, 2) - 1
	if line+1 > full {
		ed.fd.scrollTo(line + 1 - full)
	} else {
		ed.fd.scrollTo(0)
	}
}
