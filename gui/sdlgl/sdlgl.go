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

package sdlgl

import (
	"fmt"
	"os"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memedit/gui/imguihost"
)

// Config for the SDL window.
type Config struct {
	Title string

	// initial size of the window. zero values are replaced with defaults
	Width  int32
	Height int32

	// colour that the window is cleared to before imgui draws
	ClearColor [4]float32

	// path to a ttf font used for all text styles. the imgui default font is
	// used if the path is empty
	FontPath string
	FontSize float32
}

func (cfg *Config) normalise() {
	if cfg.Title == "" {
		cfg.Title = "memedit"
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = 13
	}
	if cfg.ClearColor == [4]float32{} {
		cfg.ClearColor = [4]float32{0.1, 0.1, 0.1, 1.0}
	}
}

// Run opens the SDL window and calls frame() once per frame until frame()
// returns false or the window is closed.
func Run(cfg Config, frame func(h *imguihost.Host) bool) error {
	cfg.normalise()

	context := imgui.CreateContext(nil)
	defer context.Destroy()

	io := imgui.CurrentIO()
	io.SetIniFilename("")

	if cfg.FontPath != "" {
		err := loadFont(io.Fonts(), cfg.FontPath, cfg.FontSize)
		if err != nil {
			return err
		}
	} else {
		io.Fonts().AddFontDefault()
	}

	host := imguihost.New(nil)

	plt, err := newPlatform(cfg, io, host)
	if err != nil {
		return err
	}
	defer plt.destroy()

	rnd, err := newRenderer()
	if err != nil {
		return err
	}
	defer rnd.destroy()
	rnd.createFontTexture(io.Fonts())

	for !plt.shouldStop {
		plt.processEvents()

		plt.newFrame()
		imgui.NewFrame()
		if !frame(host) {
			plt.shouldStop = true
		}

		// host is cleared after the frame so that keys pressed during event
		// processing are seen by the frame
		host.NewFrame()

		imgui.Render()
		rnd.preRender(cfg.ClearColor)
		rnd.render(plt.displaySize(), plt.framebufferSize(), imgui.RenderedDrawData())
		plt.postRender()
	}

	return nil
}

// the first and last unicode points loaded from a ttf file. the editor only
// draws ASCII so there is no need for a larger font texture.
const (
	glyphMin = '\u0020'
	glyphMax = '\u00ff'
)

func loadFont(atlas imgui.FontAtlas, path string, size float32) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}

	cfg := imgui.NewFontConfig()
	defer cfg.Delete()
	cfg.SetPixelSnapH(true)

	var builder imgui.GlyphRangesBuilder
	builder.Add(glyphMin, glyphMax)

	f := atlas.AddFontFromMemoryTTFV(data, size, cfg, builder.Build().GlyphRanges)
	if f == 0 {
		return fmt.Errorf("font: error loading font from %s", path)
	}

	return nil
}
