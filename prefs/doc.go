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

// Package prefs facilitates the storage of preferential values on disk.
//
// Preference values are represented by the Bool, Int, String and Generic
// types. Values are added to a Disk instance with the Add() function, after
// which the Disk can be saved and loaded. For example:
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var columns prefs.Int
//	_ = dsk.Add("memedit.columns", &columns)
//	_ = dsk.Load(true)
//
// The Generic type is useful for values that cannot be represented by a
// single live value. It is given a set and get function which convert to and
// from a string representation.
//
// Many instances of Disk can share a single file on disk. Saving a Disk will
// not clobber the entries of another Disk that uses the same file.
//
// Values loaded from disk can be overridden for a single session by the
// command line stack. See PushCommandLineStack() for details.
package prefs
