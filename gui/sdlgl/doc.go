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

// Package sdlgl runs Dear ImGui frames in an SDL window with an OpenGL 2.1
// renderer. The frame function is called once per frame with an
// imguihost.Host, which can be passed to editor.Editor.DrawWindow().
//
//	err := sdlgl.Run(sdlgl.Config{Title: "memory"}, func(h *imguihost.Host) bool {
//		ed.DrawWindow(h, &open, read, write)
//		return open
//	})
//
// Run() must be called from the main goroutine. It locks the OS thread for
// the duration of the program.
package sdlgl
