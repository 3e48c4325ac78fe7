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

package dataformat

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatByte returns the two digit, upper case hexadecimal representation of
// the value.
func FormatByte(v uint8) string {
	return fmt.Sprintf("%02X", v)
}

// FilterHex removes any character from the string that is not a hexadecimal
// digit.
func FilterHex(s string) string {
	return strings.Map(func(r rune) rune {
		if IsHexDigit(r) {
			return r
		}
		return -1
	}, s)
}

// IsHexDigit returns true if the rune is a valid hexadecimal digit. Both upper
// and lower case letters are accepted.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ParseByte parses the first two characters of the string as a hexadecimal
// byte. The second return value is false if the string is shorter than two
// characters or if the characters are not hexadecimal digits.
func ParseByte(s string) (uint8, bool) {
	if len(s) < 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:2], 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// ParseAddress parses a hexadecimal number with an optional 0x prefix. Any
// other non-hexadecimal characters in the string are ignored.
func ParseAddress(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = FilterHex(s)
	if s == "" {
		return 0, fmt.Errorf("dataformat: empty address")
	}
	return strconv.ParseUint(s, 16, 64)
}

// HexDigits returns the number of hexadecimal digits required to represent
// the value. The minimum number of digits returned is one.
func HexDigits(v uint64) int {
	n := 1
	for v > 0xf {
		v >>= 4
		n++
	}
	return n
}
