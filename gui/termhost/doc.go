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

// Package termhost implements the editor.Host interface for ANSI terminals.
//
// The terminal is treated as a grid of character cells. Every text style is
// one row high and all widths are measured in cells. Frames are drawn in
// their entirety to a list of lines which are then written to the terminal
// in one go.
//
// Input is given to the Host with the Feed() function. The bytes are parsed
// as keyboard input and SGR mouse reports. The Run() function puts the
// terminal into raw mode and repeatedly reads input and draws frames until
// the user quits with 'q' or Ctrl-C.
//
// Dump() draws a single frame without any input and writes the plain text to
// an io.Writer.
package termhost
