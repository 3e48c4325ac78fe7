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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/memedit/test"
)

func TestLaunchDump(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "data.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xde, 0xad, 0xbe, 0xef}, 0644))

	var w test.Writer
	v := launch(&w, []string{"DUMP", "-prefs", filepath.Join(dir, "prefs"), "-origin", "0x400", fn})
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "DE AD BE EF"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "0x400:"), w.String())
}

func TestLaunchDumpColumns(t *testing.T) {
	dir := t.TempDir()

	var w test.Writer
	v := launch(&w, []string{"DUMP", "-prefs", filepath.Join(dir, "prefs"), "-size", "0x40", "-columns", "8"})
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "0x08:"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "0x38:"), w.String())

	// the columns flag is not saved to the preferences file
	d, err := os.ReadFile(filepath.Join(dir, "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(string(d), "memedit.columns :: 8"))
}

func TestLaunchErrors(t *testing.T) {
	var w test.Writer

	// unknown flags are passed to the default mode
	v := launch(&w, []string{"-nosuchflag"})
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in SDL mode:"), w.String())

	w.Clear()
	v = launch(&w, []string{"DUMP", "-prefs", filepath.Join(t.TempDir(), "prefs"), filepath.Join(t.TempDir(), "missing")})
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in DUMP mode:"), w.String())
}
