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
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/gui/imguihost"
	"github.com/jetsetilly/memedit/gui/sdlgl"
	"github.com/jetsetilly/memedit/gui/termhost"
	"github.com/jetsetilly/memedit/logger"
	"github.com/jetsetilly/memedit/modalflag"
	"github.com/jetsetilly/memedit/paths"
	"github.com/jetsetilly/memedit/prefs"
	"github.com/jetsetilly/memedit/statsview"
)

// the prefs group used for the editor preferences.
const prefsGroup = "memedit"

func init() {
	// SDL and OpenGL must be called from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the requested mode. returns the value
// to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SDL", "TERM", "DUMP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "SDL":
		err = sdl(md)

	case "TERM":
		err = term(md)

	case "DUMP":
		err = dump(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// session is the state shared by all modes.
type session struct {
	md *modalflag.Modes

	file      *string
	size      *uint64
	origin    *uint64
	readonly  *bool
	columns   *int
	prefsFile *string
	setPrefs  *string
	save      *bool
	stats     *bool
	graph     *bool
	log       *bool

	mem     *memory
	ed      *editor.Editor
	edPrefs *editor.Preferences
}

// addFlags adds the flags common to all modes.
func (s *session) addFlags(md *modalflag.Modes) {
	s.md = md
	s.file = md.AddString("file", "", "file to load into memory")
	s.size = md.AddAddress("size", 0x10000, "size of memory if no file is given")
	s.origin = md.AddAddress("origin", 0, "address of the first byte of memory")
	s.readonly = md.AddBool("readonly", false, "do not allow memory to be changed")
	s.columns = md.AddInt("columns", 0, "number of columns (overrides preferences)")
	s.prefsFile = md.AddString("prefs", "", "preferences file to use")
	s.setPrefs = md.AddString("setprefs", "", "preferences for this session only (key::value; ...)")
	s.save = md.AddBool("save", false, "save preferences on exit")
	s.stats = md.AddBool("statsview", false, "launch statistics server")
	s.graph = md.AddBool("memviz", false, "write graph of editor state on exit")
	s.log = md.AddBool("log", false, "echo debugging log to stdout")
}

// start prepares the memory and the editor. should be called after the flags
// have been parsed.
func (s *session) start() error {
	if *s.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	s.md.Visit(func(flag string) {
		logger.Logf(logger.Allow, "memedit", "flag set: %s", flag)
	})

	if *s.stats {
		statsview.Launch(s.md.Output)
	}

	// a filename can also be given as an argument
	switch len(s.md.RemainingArgs()) {
	case 0:
	case 1:
		if *s.file != "" {
			return fmt.Errorf("file specified twice")
		}
		*s.file = s.md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", s.md)
	}

	var err error
	s.mem, err = newMemory(*s.file, *s.size, *s.origin)
	if err != nil {
		return err
	}

	name := "memory"
	if *s.file != "" {
		name = *s.file
	}

	s.ed = editor.New().WithWindowTitle(fmt.Sprintf("%s: %s", editor.DefaultWindowTitle, name))
	s.mem.addRanges(s.ed, "all")

	// the columns flag is applied through the prefs command line stack so
	// that it overrides the value on disk
	var cmdline []string
	if *s.setPrefs != "" {
		cmdline = append(cmdline, *s.setPrefs)
	}
	if *s.columns > 0 {
		cmdline = append(cmdline, fmt.Sprintf("%s.columns::%d", prefsGroup, *s.columns))
	}
	if len(cmdline) > 0 {
		prefs.PushCommandLineStack(strings.Join(cmdline, ";"))
	}

	path := *s.prefsFile
	if path == "" {
		path, err = paths.ResourcePath(prefs.DefaultPrefsFile)
		if err != nil {
			return err
		}
	}

	s.edPrefs, err = editor.NewPreferences(s.ed, path, prefsGroup)

	if len(cmdline) > 0 {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "memedit", "unused preferences: %s", unused)
		}
	}

	return err
}

func (s *session) read(addr editor.Address) (uint8, bool) {
	return s.mem.read(addr)
}

// write returns nil if the memory is read only. the editor never allows
// editing without a write function.
func (s *session) write() editor.WriteFunc {
	if *s.readonly {
		return nil
	}
	return s.mem.write
}

// end saves the memory and the preferences as required.
func (s *session) end() error {
	if !*s.readonly {
		if err := s.mem.save(*s.file); err != nil {
			return err
		}
	}

	if *s.save {
		if err := s.edPrefs.Save(); err != nil {
			return err
		}
	}

	if *s.graph {
		fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", *s.file))
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, s.ed)
		logger.Logf(logger.Allow, "memviz", "editor state written to %s", fn)
	}

	return nil
}

func sdl(md *modalflag.Modes) error {
	md.NewMode()

	var s session
	s.addFlags(md)
	font := md.AddString("font", "", "ttf font file")
	fontSize := md.AddInt("fontsize", 13, "font size in pixels")
	width := md.AddInt("width", 800, "initial width of window")
	height := md.AddInt("height", 600, "initial height of window")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = s.start()
	if err != nil {
		return err
	}

	cfg := sdlgl.Config{
		Title:    s.ed.WindowTitle(),
		Width:    int32(*width),
		Height:   int32(*height),
		FontPath: *font,
		FontSize: float32(*fontSize),
	}

	open := true
	err = sdlgl.Run(cfg, func(h *imguihost.Host) bool {
		s.ed.DrawWindow(h, &open, s.read, s.write())
		return open
	})
	if err != nil {
		return err
	}

	return s.end()
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	var s session
	s.addFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = s.start()
	if err != nil {
		return err
	}

	open := true
	err = termhost.Run(func(h *termhost.Host) bool {
		s.ed.DrawWindow(h, &open, s.read, s.write())
		return open
	})
	if err != nil {
		return err
	}

	return s.end()
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("DUMP mode draws the editor once and writes it as plain text.")

	var s session
	s.addFlags(md)
	width := md.AddInt("width", 80, "width of output")
	height := md.AddInt("height", 24, "height of output")
	gotoAddr := md.AddString("goto", "", "address to scroll to before drawing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = s.start()
	if err != nil {
		return err
	}

	if *gotoAddr != "" {
		if _, err := s.ed.Goto(*gotoAddr); err != nil {
			return err
		}
	}

	err = termhost.Dump(md.Output, *width, *height, func(h *termhost.Host) bool {
		s.ed.DrawContents(h, s.read, nil)
		return true
	})
	if err != nil {
		return err
	}

	return s.end()
}
