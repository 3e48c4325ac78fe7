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

package editor

// Address is a memory address.
type Address = uint64

// ReadFunc returns the value of memory at the address. The second return
// value is false if the value is not available.
type ReadFunc func(addr Address) (uint8, bool)

// WriteFunc writes the value to memory at the address.
type WriteFunc func(addr Address, value uint8)

// Key is a navigation key that the Editor responds to.
type Key int

// List of valid Key values.
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// ItemKind is used to distinguish between the different parts of the memory
// grid.
type ItemKind int

// List of valid ItemKind values.
const (
	ItemAddress ItemKind = iota
	ItemValue
	ItemASCII
	ItemEdit
)

// ItemID identifies an item in the memory grid. Items with the same ItemID in
// consecutive frames are the same item.
type ItemID struct {
	Kind    ItemKind
	Address Address
}

// Label describes static text drawn by Host.Label().
type Label struct {
	Text  string
	Style TextStyle

	// if HasColor is false the Host should use the default text color
	Color    Color
	HasColor bool

	// draw a subtle background behind the text
	Background bool

	// place the label immediately after the previous item in the row without
	// any spacing
	Joined bool
}

// Response is returned by Host.Label().
type Response struct {
	Clicked          bool
	SecondaryClicked bool
	Width            float32
}

// TextInput describes the single line text input drawn by Host.TextInput().
type TextInput struct {
	// the text to edit. the Host updates the string as the user types
	Text *string

	// shown when Text is empty
	Hint string

	// the width of the input. if zero the Host should use the natural width
	// of the hint
	Width float32

	Style TextStyle

	// only accept hexadecimal digits
	HexOnly bool

	// maximum number of characters. zero indicates no limit
	MaxLen int

	// the input should take keyboard focus this frame
	RequestFocus bool
}

// InputResponse is returned by Host.TextInput().
type InputResponse struct {
	// the input has keyboard focus at the end of the frame
	Focused bool
	Width   float32
}

// Viewport describes the visible part of a scroll area. ScrollY is the
// distance from the top of the content to the top of the visible area.
type Viewport struct {
	ScrollY float32
	Height  float32
}

// Host is the immediate-mode GUI that the Editor draws with. All functions
// are called during the Editor's draw functions and are only valid for the
// current frame.
type Host interface {
	// TextHeight is the height of a line of text in the style. The value
	// should include the space between lines
	TextHeight(style TextStyle) float32

	// KeyPressed returns true if the key has been pressed this frame
	KeyPressed(key Key) bool

	// BeginWindow starts a titled window that can be closed by the user.
	// The width of the window should be clamped to maxWidth if maxWidth is
	// greater than zero. The height of the window is resizable.
	//
	// The return value is false if the contents of the window should not be
	// drawn. EndWindow() is called regardless of the return value.
	BeginWindow(title string, open *bool, maxWidth float32) bool
	EndWindow()

	// BeginScrollArea starts a vertically scrolling area that fills the
	// remaining height of the window. Different ids have different scroll
	// positions
	BeginScrollArea(id string) Viewport
	EndScrollArea()

	// SetScrollY sets the scroll position of the current scroll area
	SetScrollY(y float32)

	// Spacing reserves blank vertical space
	Spacing(height float32)

	// BeginRow starts a row of items. EndRow returns the width of the row. Gap
	// adds a space between items that is wider than the normal spacing
	BeginRow()
	Gap()
	EndRow() float32

	// Label draws static text
	Label(id ItemID, l Label) Response

	// TextInput draws a single line text input
	TextInput(id ItemID, in TextInput) InputResponse

	Separator()
	Text(s string)

	// CollapsingHeader draws a header and returns true if the contents of the
	// header should be drawn
	CollapsingHeader(label string, defaultOpen bool) bool

	// Combo draws a selection box for the items. It returns the selected
	// index and whether the selection has changed
	Combo(label string, selected int, items []string) (int, bool)

	// DragInt draws a numeric input for the value which is clamped to the
	// range min to max inclusive. Returns true if the value has changed
	DragInt(label string, v *int, min int, max int) bool

	// Checkbox returns true if the value has changed
	Checkbox(label string, v *bool) bool

	// InputLine is an editable line of text. Returns true if enter was
	// pressed while the input had focus
	InputLine(id string, hint string, text *string) bool
}
