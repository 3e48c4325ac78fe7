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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows a different set of flags for
// each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Sub-modes
// are added with AddSubModes() before the call to Parse(). The first sub-mode
// is the default mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "TERM", "DUMP")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Flags for the selected mode are added after a call to NewMode() and are
// parsed with a second call to Parse():
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0, "address of the first byte")
//		columns := md.AddInt("columns", 16, "number of columns")
//		_, _ = md.Parse()
//	}
//
// Sub-mode comparisons are case insensitive. Mode() always returns the mode
// in upper case.
//
// Address flags accept hexadecimal values with or without the 0x prefix.
package modalflag
