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
	"strconv"
	"strings"

	"github.com/jetsetilly/memedit/editor"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyBackspace      = 8
	keyCarriageReturn = 13
	keyLineFeed       = 10
	keyEsc            = 27
	keyDelete         = 127
)

// list of ASCII code for characters that can follow keyEsc
const (
	escCursor = '['
)

// list of ASCII code for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorMouse    = '<'
)

// SGR mouse button codes
const (
	mouseLeft      = 0
	mouseRight     = 2
	mouseWheelUp   = 64
	mouseWheelDown = 65
)

type click struct {
	valid     bool
	row       int
	col       int
	secondary bool
}

// input collected from the terminal for a single frame.
type input struct {
	keys      []editor.Key
	chars     []rune
	backspace int
	enter     bool
	escape    bool

	// scroll by rows and by pages
	scroll int
	page   int

	// only the first click is kept
	click click

	quit      bool
	interrupt bool
}

// parse raw terminal input. incomplete escape sequences are discarded.
func (in *input) parse(b []byte) {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case keyInterrupt:
			in.interrupt = true

		case keyCarriageReturn, keyLineFeed:
			in.enter = true

		case keyBackspace, keyDelete:
			in.backspace++

		case keyEsc:
			if i+1 >= len(b) || b[i+1] != escCursor {
				in.escape = true
				continue
			}
			i += in.escapeSequence(b[i+2:]) + 1

		default:
			if c >= 32 && c < 127 {
				if c == 'q' {
					in.quit = true
				}
				in.chars = append(in.chars, rune(c))
			}
		}
	}
}

// parse the escape sequence that follows "ESC [". returns the number of bytes
// consumed.
func (in *input) escapeSequence(b []byte) int {
	if len(b) == 0 {
		return 0
	}

	switch b[0] {
	case cursorUp:
		in.keys = append(in.keys, editor.KeyUp)
		return 1
	case cursorDown:
		in.keys = append(in.keys, editor.KeyDown)
		return 1
	case cursorForward:
		in.keys = append(in.keys, editor.KeyRight)
		return 1
	case cursorBackward:
		in.keys = append(in.keys, editor.KeyLeft)
		return 1
	case cursorMouse:
		return in.mouse(b)
	}

	// sequences of the form "ESC [ n ~"
	end := 0
	for end < len(b) && b[end] >= '0' && b[end] <= '9' {
		end++
	}
	if end == len(b) || b[end] != '~' {
		return end
	}
	switch string(b[:end]) {
	case "5":
		in.page--
	case "6":
		in.page++
	}
	return end + 1
}

// parse an SGR mouse report of the form "< b ; x ; y M" where M is lower-case
// for a button release. returns the number of bytes consumed.
func (in *input) mouse(b []byte) int {
	end := 1
	for end < len(b) && b[end] != 'M' && b[end] != 'm' {
		end++
	}
	if end == len(b) {
		return end
	}

	// button releases are ignored
	if b[end] == 'm' {
		return end + 1
	}

	f := strings.Split(string(b[1:end]), ";")
	if len(f) != 3 {
		return end + 1
	}

	var v [3]int
	for i := range f {
		n, err := strconv.Atoi(f[i])
		if err != nil {
			return end + 1
		}
		v[i] = n
	}

	switch v[0] {
	case mouseLeft, mouseRight:
		if !in.click.valid {
			// terminal coordinates start at one
			in.click = click{
				valid:     true,
				col:       v[1] - 1,
				row:       v[2] - 1,
				secondary: v[0] == mouseRight,
			}
		}
	case mouseWheelUp:
		in.scroll -= 3
	case mouseWheelDown:
		in.scroll += 3
	}

	return end + 1
}
