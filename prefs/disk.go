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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates a key from its value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	PrefsNotValid = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that are not
// managed by this Disk instance are preserved, unless they are defunct.
func (dsk *Disk) Save() error {
	data := make(map[string]string)

	// load existing entries so that values belonging to other Disk instances
	// are not lost
	f, err := os.Open(dsk.path)
	if err == nil {
		err = parse(f, func(k, v string) {
			data[k] = v
		})
		f.Close()
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	} else if !os.IsNotExist(err) {
		return curated.Errorf("prefs: %v", err)
	}

	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if isDefunct(k) {
			logger.Logf(logger.Allow, "prefs", "dropping defunct value: %s", k)
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err = os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(fmt.Sprintf("%s\n", WarningBoilerPlate)); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	for _, k := range keys {
		if _, err := w.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, data[k])); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the
// preferences file does not exist then the current values are saved to a new
// file.
//
// Any values in the current command line stack will override the values
// loaded from disk.
func (dsk *Disk) Load(saveOnFail bool) error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return curated.Errorf("prefs: %v", err)
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		dsk.applyCommandLine()
		if saveOnFail {
			return nil
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}
	defer f.Close()

	err = parse(f, func(k, v string) {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
			}
		}
	})
	if err != nil {
		return curated.Errorf(PrefsNotValid, dsk.path)
	}

	dsk.applyCommandLine()

	return nil
}

func (dsk *Disk) applyCommandLine() {
	for _, k := range dsk.sortedKeys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
			}
		}
	}
}

// parse the contents of a preferences file. the first line must be the
// warning boiler plate. lines without a key separator are ignored.
func parse(r io.Reader, f func(key, value string)) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return fmt.Errorf("missing boiler plate")
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		f(strings.TrimSpace(kv[0]), kv[1])
	}

	return scanner.Err()
}
