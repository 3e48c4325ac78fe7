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
	"github.com/jetsetilly/memedit/logger"
)

// frameData is the state that must be carried from one frame to the next. none
// of it is suitable for storing on disk.
type frameData struct {
	// the address being edited. at most one address can be edited at a time
	// and the address is always in the selected address range
	editing     bool
	editAddress Address

	// the digits typed into the edit input so far
	editText string

	// the edit input should take keyboard focus the next time it is drawn
	requestFocus bool

	// the highlighted address is shown in the data preview
	highlighting     bool
	highlightAddress Address

	// highlight the bytes that form the value shown in the data preview
	relatedHighlight bool

	// whether the data preview header was open in the previous frame
	previewOpen bool

	// the width of the memory grid in the previous frame. used to clamp the
	// width of the window
	previousWidth float32

	// the width of a value label in the previous frame. used as the width of
	// the edit input so that the columns do not jitter
	valueWidth float32

	// the text in the goto field
	gotoText string

	// the number of lines drawn in the previous frame
	visibleLines uint64

	// the line to scroll to in the next frame
	scrollLine    uint64
	hasScrollLine bool
}

// setEditAddress starts editing the address. an address that is not in the
// range is rejected and the editor stops editing.
func (fd *frameData) setEditAddress(addr Address, r AddressRange) {
	fd.editText = ""
	fd.requestFocus = true

	if !r.Contains(addr) {
		if fd.editing {
			logger.Logf(logger.Allow, "editor", "edit of 0x%X rejected: not in %s", addr, r)
		}
		fd.editing = false
		return
	}

	fd.editing = true
	fd.editAddress = addr
	fd.highlighting = true
	fd.highlightAddress = addr
}

// stopEditing abandons any edit in progress without writing.
func (fd *frameData) stopEditing() {
	fd.editing = false
	fd.editText = ""
	fd.requestFocus = false
}

// toggleHighlight highlights the address or removes the highlight if the
// address is already highlighted.
func (fd *frameData) toggleHighlight(addr Address) {
	if fd.highlighting && fd.highlightAddress == addr {
		fd.highlighting = false
		return
	}
	fd.highlighting = true
	fd.highlightAddress = addr
}

// isHighlighted returns true if the address is the highlighted address.
func (fd *frameData) isHighlighted(addr Address) bool {
	return fd.highlighting && fd.highlightAddress == addr
}

// isRelated returns true if the address is one of the width bytes starting at
// the highlighted address and related highlighting is enabled.
func (fd *frameData) isRelated(addr Address, width int) bool {
	if !fd.relatedHighlight || !fd.highlighting || addr < fd.highlightAddress {
		return false
	}
	return addr-fd.highlightAddress < uint64(width)
}

// scrollTo requests that the line be made the first visible line of the
// memory grid in the next frame.
func (fd *frameData) scrollTo(line uint64) {
	fd.scrollLine = line
	fd.hasScrollLine = true
}
