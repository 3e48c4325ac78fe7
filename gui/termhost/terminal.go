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
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/memedit/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// ANSI sequences used to prepare the terminal.
const (
	altScreenOn  = "\033[?1049h"
	altScreenOff = "\033[?1049l"
	cursorHide   = "\033[?25l"
	cursorShow   = "\033[?25h"
	mouseOn      = "\033[?1000h\033[?1006h"
	mouseOff     = "\033[?1006l\033[?1000l"
	cursorHome   = "\033[H"
	clearLine    = "\033[K"
	clearBelow   = "\033[J"
)

// Terminal is a wrapper for the input and output files of a posix terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// signals that the geometry of the terminal has changed
	resize chan bool

	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	mu   sync.Mutex
	rows int
	cols int
}

// NewTerminal prepares the terminal attributes. The terminal is not changed
// until RawMode() is called.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("termhost: terminal requires an input file")
	}
	if output == nil {
		return nil, fmt.Errorf("termhost: terminal requires an output file")
	}

	pt := &Terminal{
		input:               input,
		output:              output,
		resize:              make(chan bool, 1),
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, fmt.Errorf("termhost: %w", err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	err = pt.updateGeometry()
	if err != nil {
		return nil, err
	}

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				err := pt.updateGeometry()
				if err != nil {
					logger.Log(logger.Allow, "termhost", err)
					continue
				}
				select {
				case pt.resize <- true:
				default:
				}
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return pt, nil
}

// CleanUp returns the terminal to canonical mode and stops the signal
// handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

func (pt *Terminal) updateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("termhost: error updating terminal geometry: %w", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.rows = int(ws.Row)
	pt.cols = int(ws.Col)
	return nil
}

// Size returns the number of columns and rows of the output terminal.
func (pt *Terminal) Size() (int, int) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.cols, pt.rows
}

// RawMode puts the terminal into raw mode with the alternative screen buffer
// and mouse reporting.
func (pt *Terminal) RawMode() {
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
	if err != nil {
		logger.Logf(logger.Allow, "termhost", "raw mode: %v", err)
	}
	pt.output.WriteString(altScreenOn + cursorHide + mouseOn)
}

// CanonicalMode returns the terminal to normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	pt.output.WriteString(mouseOff + cursorShow + altScreenOff)
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
	if err != nil {
		logger.Logf(logger.Allow, "termhost", "canonical mode: %v", err)
	}
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
