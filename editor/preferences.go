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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/editor/dataformat"
	"github.com/jetsetilly/memedit/prefs"
)

// the maximum length of the NoneDisplayValue option when stored on disk.
const maxNoneDisplayLen = 8

// Sentinal error patterns.
const (
	NoneDisplayTooLong = "editor: none display value too long (%s): maximum length is %d"
)

// Preferences stores the Editor's Options on disk. The selected address range
// and the state of any edit in progress are never stored.
type Preferences struct {
	ed  *Editor
	dsk *prefs.Disk

	columns          prefs.Int
	resizableColumns prefs.Bool
	showASCII        prefs.Bool
	showZeroColor    prefs.Bool
	optionsCollapsed prefs.Bool
	noneDisplayValue prefs.String
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences file at path is shared with other users of the prefs
// package so all keys are prefixed with the group name.
//
// Values are loaded from disk immediately. If the file does not exist it is
// created with the Editor's current options.
func NewPreferences(ed *Editor, path string, group string) (*Preferences, error) {
	p := &Preferences{ed: ed}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p.noneDisplayValue.SetMaxLen(maxNoneDisplayLen)
	err = p.sync()
	if err != nil {
		return nil, err
	}

	p.columns.SetHookPost(func(v prefs.Value) error {
		p.ed.options.Columns = v.(int)
		p.ed.options.normalise()
		return nil
	})
	p.resizableColumns.SetHookPost(func(v prefs.Value) error {
		p.ed.options.ResizableColumns = v.(bool)
		return nil
	})
	p.showASCII.SetHookPost(func(v prefs.Value) error {
		p.ed.options.ShowASCII = v.(bool)
		return nil
	})
	p.showZeroColor.SetHookPost(func(v prefs.Value) error {
		p.ed.options.ShowZeroColor = v.(bool)
		return nil
	})
	p.optionsCollapsed.SetHookPost(func(v prefs.Value) error {
		p.ed.options.OptionsCollapsed = v.(bool)
		return nil
	})
	p.noneDisplayValue.SetHookPost(func(v prefs.Value) error {
		p.ed.options.NoneDisplayValue = v.(string)
		return nil
	})

	add := func(key string, v interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}) {
		if err != nil {
			return
		}
		err = p.dsk.Add(fmt.Sprintf("%s.%s", group, key), v)
	}

	add("columns", &p.columns)
	add("resizableColumns", &p.resizableColumns)
	add("showASCII", &p.showASCII)
	add("showZeroColor", &p.showZeroColor)
	add("optionsCollapsed", &p.optionsCollapsed)
	add("noneDisplayValue", &p.noneDisplayValue)
	add("zeroColor", p.color(&p.ed.options.ZeroColor))
	add("addressColor", p.color(&p.ed.options.AddressColor))
	add("highlightColor", p.color(&p.ed.options.HighlightColor))
	add("addressStyle", p.style(&p.ed.options.AddressStyle))
	add("valueStyle", p.style(&p.ed.options.ValueStyle))
	add("asciiStyle", p.style(&p.ed.options.ASCIIStyle))
	add("preview", prefs.NewGeneric(
		func(s string) error {
			e, f, ok := strings.Cut(s, ",")
			if !ok {
				return fmt.Errorf("editor: preview: %s", s)
			}
			endian, err := dataformat.ParseEndianness(strings.TrimSpace(e))
			if err != nil {
				return err
			}
			format, err := dataformat.ParseFormat(strings.TrimSpace(f))
			if err != nil {
				return err
			}
			p.ed.options.Preview.Endianness = endian
			p.ed.options.Preview.Format = format
			return nil
		},
		func() string {
			return fmt.Sprintf("%s,%s", p.ed.options.Preview.Endianness, p.ed.options.Preview.Format)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) color(c *Color) *prefs.Generic {
	return prefs.NewGeneric(
		func(s string) error {
			v, err := ParseColor(s)
			if err != nil {
				return err
			}
			*c = v
			return nil
		},
		func() string {
			return c.String()
		},
	)
}

func (p *Preferences) style(t *TextStyle) *prefs.Generic {
	return prefs.NewGeneric(
		func(s string) error {
			v, err := ParseTextStyle(s)
			if err != nil {
				return err
			}
			*t = v
			return nil
		},
		func() string {
			return t.String()
		},
	)
}

// copy the Editor's options into the typed preference values. the options can
// be changed by the user through the options panel so this must be done
// before saving.
func (p *Preferences) sync() error {
	o := p.ed.options

	// the prefs value would crop the string
	if len(o.NoneDisplayValue) > maxNoneDisplayLen {
		return curated.Errorf(NoneDisplayTooLong, o.NoneDisplayValue, maxNoneDisplayLen)
	}

	for _, err := range []error{
		p.columns.Set(o.Columns),
		p.resizableColumns.Set(o.ResizableColumns),
		p.showASCII.Set(o.ShowASCII),
		p.showZeroColor.Set(o.ShowZeroColor),
		p.optionsCollapsed.Set(o.OptionsCollapsed),
		p.noneDisplayValue.Set(o.NoneDisplayValue),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

// SetDefaults reverts the Editor's options to the default values. The values
// on disk are not changed until Save() is called.
func (p *Preferences) SetDefaults() error {
	p.ed.SetOptions(DefaultOptions())
	return p.sync()
}

// Load options from disk and apply them to the Editor.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save the Editor's current options to disk. Nothing is written if the
// options cannot be stored.
func (p *Preferences) Save() error {
	if err := p.sync(); err != nil {
		return err
	}
	return p.dsk.Save()
}
