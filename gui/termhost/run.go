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

//go:build !windows

package termhost

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/memedit/logger"
)

// Run draws frames in the terminal until the frame function returns false or
// the user quits. A new frame is drawn whenever there is input from the
// terminal or the terminal is resized.
func Run(frame func(h *Host) bool) error {
	term, err := NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	term.RawMode()

	cols, rows := term.Size()
	logger.Logf(logger.Allow, "termhost", "terminal size %dx%d", cols, rows)

	h := New(os.Stdout, cols, rows)

	in := make(chan []byte)
	inErr := make(chan error, 1)
	go func() {
		b := make([]byte, 256)
		for {
			n, err := os.Stdin.Read(b)
			if err != nil {
				inErr <- err
				return
			}
			c := make([]byte, n)
			copy(c, b[:n])
			in <- c
		}
	}()

	for {
		if !drawFrames(h, frame) {
			return nil
		}

		_, err := io.WriteString(os.Stdout, render(h.Lines(), h.height))
		if err != nil {
			return err
		}

		if h.Quit() {
			return nil
		}

		select {
		case b := <-in:
			h.Feed(b)
		case <-term.resize:
			h.SetSize(term.Size())
		case err := <-inErr:
			return err
		}
	}
}

// the ANSI sequence that draws the lines of a frame from the top of the
// terminal.
func render(lines []string, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}

	var s strings.Builder
	s.WriteString(cursorHome)
	for i, l := range lines {
		s.WriteString(l)
		s.WriteString(clearLine)
		if i < len(lines)-1 {
			s.WriteString("\r\n")
		}
	}
	s.WriteString(clearBelow)
	return s.String()
}
