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

// Package imguihost implements the editor.Host interface with Dear ImGui.
//
// The Host type does not create the ImGui context or draw the ImGui draw
// lists. Those tasks are the responsibility of the platform, for example the
// sdlgl package. The platform must call Host.NewFrame() after
// imgui.NewFrame() and must tell the Host about navigation key presses with
// Host.PressKey().
package imguihost
