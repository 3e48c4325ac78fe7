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
)

// Dump draws the frame without any input and writes the lines to the
// io.Writer. The colour profile is decided by the io.Writer so the output
// to a file or pipe is plain text.
func Dump(w io.Writer, width int, height int, frame func(h *Host) bool) error {
	h := New(w, width, height)
	drawFrames(h, frame)
	for _, l := range h.Lines() {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// the frame is drawn twice. the second frame has no input and settles any
// state changes made in the first frame, such as a request for keyboard
// focus.
func drawFrames(h *Host, frame func(h *Host) bool) bool {
	for range 2 {
		h.BeginFrame()
		ok := frame(h)
		h.EndFrame()
		if !ok {
			return false
		}
	}
	return true
}
