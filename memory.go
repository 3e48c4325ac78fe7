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
	"os"
	"path/filepath"

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/editor"
	"github.com/jetsetilly/memedit/logger"
)

// size of the banks that a large memory is split into. each bank is an
// address range of its own.
const bankSize = 0x10000

// memory is the data being edited. the data is either loaded from a file or
// zero filled.
type memory struct {
	origin uint64
	data   []uint8
	dirty  bool
}

// error patterns for memory
const (
	MemoryEmpty    = "memory: empty (%s)"
	MemoryOverflow = "memory: origin 0x%X and size 0x%X exceed address space"
)

// newMemory returns memory loaded from file. If file is empty the memory is
// zero filled to the requested size.
func newMemory(file string, size uint64, origin uint64) (*memory, error) {
	mem := &memory{origin: origin}

	if file != "" {
		var err error
		mem.data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("memory: %w", err)
		}
		if len(mem.data) == 0 {
			return nil, curated.Errorf(MemoryEmpty, file)
		}
	} else {
		if size == 0 {
			return nil, curated.Errorf(MemoryEmpty, "size is zero")
		}
		mem.data = make([]uint8, size)
	}

	// the end of the address range is exclusive so the final address of the
	// memory must be less than the maximum address
	if uint64(len(mem.data)) > ^uint64(0)-origin {
		return nil, curated.Errorf(MemoryOverflow, origin, len(mem.data))
	}

	return mem, nil
}

func (mem *memory) read(addr editor.Address) (uint8, bool) {
	if addr < mem.origin || addr-mem.origin >= uint64(len(mem.data)) {
		return 0, false
	}
	return mem.data[addr-mem.origin], true
}

func (mem *memory) write(addr editor.Address, v uint8) {
	if addr < mem.origin || addr-mem.origin >= uint64(len(mem.data)) {
		logger.Logf(logger.Allow, "memory", "write outside of memory: 0x%X", addr)
		return
	}
	mem.data[addr-mem.origin] = v
	mem.dirty = true
}

// addRanges adds the entire memory as an address range. if the memory is
// larger than a bank then each bank is also added. the entire memory remains
// the selected range.
func (mem *memory) addRanges(ed *editor.Editor, name string) {
	all := editor.AddressRange{
		Start: mem.origin,
		End:   mem.origin + uint64(len(mem.data)),
	}
	ed.SetAddressRange(name, all)

	if all.Len() <= bankSize {
		return
	}

	// the size of each bank is limited by the remainder of the memory so that
	// a bank at the top of the address space does not overflow
	start := all.Start
	for i := 0; ; i++ {
		end := start + min(bankSize, all.End-start)
		ed.SetAddressRange(fmt.Sprintf("bank %d", i), editor.AddressRange{Start: start, End: end})
		if end == all.End {
			break
		}
		start = end
	}
}

// save writes the memory back to file if it has changed.
func (mem *memory) save(file string) error {
	if !mem.dirty || file == "" {
		return nil
	}

	err := os.WriteFile(file, mem.data, 0644)
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	mem.dirty = false

	logger.Logf(logger.Allow, "memory", "saved %d bytes to %s", len(mem.data), filepath.Base(file))
	return nil
}
