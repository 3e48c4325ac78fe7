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

// Package editor implements a hex memory viewer and editor that is drawn by
// an immediate-mode GUI. Nothing about the GUI persists between frames so the
// Editor type keeps all the state required to give the user the impression
// of a continuous interface: the address being edited, the address being
// highlighted, the scroll request of a goto operation and so on.
//
// The GUI itself is reached through the Host interface. The Editor never
// draws anything directly and it knows nothing about the memory it is
// showing. Memory is accessed through the ReadFunc and WriteFunc types
// supplied to the DrawWindow() and DrawContents() functions every frame:
//
//	mem := make([]uint8, 0x100)
//
//	ed := editor.New().WithAddressRange("RAM", editor.AddressRange{Start: 0, End: 0x100})
//
//	read := func(a editor.Address) (uint8, bool) {
//		return mem[a], true
//	}
//	write := func(a editor.Address, v uint8) {
//		mem[a] = v
//	}
//
//	// every frame
//	ed.DrawWindow(host, &open, read, write)
//
// A nil WriteFunc puts the editor into read-only mode.
//
// Only the lines of the memory grid that are visible are drawn. The address
// range being shown can be of any size up to the limit of a 64bit address.
// The VisibleRange() function returns the addresses drawn in the most recent
// frame. A host that has slow access to memory can use that information to
// prefetch the values that will be needed in the next frame. A ReadFunc
// returns false to indicate that a value is not available yet.
//
// The Editor is not safe for concurrent use. It should be used only by the
// goroutine that is running the GUI.
package editor
