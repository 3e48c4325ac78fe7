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
	"testing"

	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/test"
)

func TestParseKeys(t *testing.T) {
	var in input
	in.parse([]byte("\033[A\033[B\033[C\033[D"))
	test.ExpectEquality(t, len(in.keys), 4)
	test.ExpectEquality(t, in.keys[0], editor.KeyUp)
	test.ExpectEquality(t, in.keys[1], editor.KeyDown)
	test.ExpectEquality(t, in.keys[2], editor.KeyRight)
	test.ExpectEquality(t, in.keys[3], editor.KeyLeft)
	test.ExpectFailure(t, in.escape)
}

func TestParseCharacters(t *testing.T) {
	var in input
	in.parse([]byte("a1\x7f\r"))
	test.ExpectEquality(t, string(in.chars), "a1")
	test.ExpectEquality(t, in.backspace, 1)
	test.ExpectSuccess(t, in.enter)
	test.ExpectFailure(t, in.quit)

	in = input{}
	in.parse([]byte("q"))
	test.ExpectSuccess(t, in.quit)
	test.ExpectFailure(t, in.interrupt)

	in = input{}
	in.parse([]byte{keyInterrupt})
	test.ExpectSuccess(t, in.interrupt)
}

func TestParseEscape(t *testing.T) {
	var in input
	in.parse([]byte{keyEsc})
	test.ExpectSuccess(t, in.escape)
	test.ExpectEquality(t, len(in.keys), 0)
}

func TestParsePage(t *testing.T) {
	var in input
	in.parse([]byte("\033[5~\033[6~\033[6~"))
	test.ExpectEquality(t, in.page, 1)

	// incomplete sequence is dropped
	in = input{}
	in.parse([]byte("\033[5"))
	test.ExpectEquality(t, in.page, 0)
}

func TestParseMouse(t *testing.T) {
	var in input
	in.parse([]byte("\033[<0;10;5M\033[<0;10;5m"))
	test.ExpectSuccess(t, in.click.valid)
	test.ExpectEquality(t, in.click.col, 9)
	test.ExpectEquality(t, in.click.row, 4)
	test.ExpectFailure(t, in.click.secondary)

	// only the first click is kept
	in = input{}
	in.parse([]byte("\033[<2;1;1M\033[<0;3;3M"))
	test.ExpectSuccess(t, in.click.secondary)
	test.ExpectEquality(t, in.click.col, 0)

	in = input{}
	in.parse([]byte("\033[<65;1;1M\033[<65;1;1M\033[<64;1;1M"))
	test.ExpectFailure(t, in.click.valid)
	test.ExpectEquality(t, in.scroll, 3)

	// malformed report
	in = input{}
	in.parse([]byte("\033[<0;x;1Mz"))
	test.ExpectFailure(t, in.click.valid)
	test.ExpectEquality(t, string(in.chars), "z")
}
