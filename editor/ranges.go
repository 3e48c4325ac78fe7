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
)

// AddressRange is the half-open range of addresses [Start, End).
type AddressRange struct {
	Start Address
	End   Address
}

func (r AddressRange) String() string {
	return fmt.Sprintf("0x%X..0x%X", r.Start, r.End)
}

// Len returns the number of addresses in the range.
func (r AddressRange) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range contains no addresses.
func (r AddressRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if the address is in the range.
func (r AddressRange) Contains(addr Address) bool {
	return addr >= r.Start && addr < r.End
}

// clamp address so that it is inside the range. the range must not be empty.
func (r AddressRange) clamp(addr Address) Address {
	if addr < r.Start {
		return r.Start
	}
	if addr >= r.End {
		return r.End - 1
	}
	return addr
}

// namedRanges is a collection of uniquely named address ranges. the order in
// which ranges are added is preserved.
type namedRanges struct {
	names  []string
	ranges map[string]AddressRange
}

func newNamedRanges() namedRanges {
	return namedRanges{
		ranges: make(map[string]AddressRange),
	}
}

// add or replace the named range. replacing a range does not change its
// position in the list of names.
func (n *namedRanges) set(name string, r AddressRange) {
	if r.IsEmpty() {
		panic(fmt.Sprintf("editor: address range %s is empty (%s)", name, r))
	}
	if _, ok := n.ranges[name]; !ok {
		n.names = append(n.names, name)
	}
	n.ranges[name] = r
}

// remove the named range. returns false if the range did not exist.
func (n *namedRanges) remove(name string) bool {
	if _, ok := n.ranges[name]; !ok {
		return false
	}
	delete(n.ranges, name)
	for i := range n.names {
		if n.names[i] == name {
			n.names = append(n.names[:i], n.names[i+1:]...)
			break // for loop
		}
	}
	return true
}

func (n *namedRanges) get(name string) (AddressRange, bool) {
	r, ok := n.ranges[name]
	return r, ok
}

// index of the named range in the list of names. returns -1 if the name does
// not exist.
func (n *namedRanges) index(name string) int {
	for i := range n.names {
		if n.names[i] == name {
			return i
		}
	}
	return -1
}

func (n *namedRanges) len() int {
	return len(n.names)
}
