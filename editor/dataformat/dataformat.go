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
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Endianness specifies the byte order used when decoding a value.
type Endianness int

// List of valid Endianness values.
const (
	Little Endianness = iota
	Big
)

// Endiannesses lists all Endianness values in the order they should be
// presented to the user.
var Endiannesses = []Endianness{Big, Little}

func (e Endianness) String() string {
	switch e {
	case Little:
		return "Little"
	case Big:
		return "Big"
	}
	panic(fmt.Sprintf("dataformat: unknown endianness (%d)", int(e)))
}

// ParseEndianness is the inverse of Endianness.String().
func ParseEndianness(s string) (Endianness, error) {
	for _, e := range Endiannesses {
		if e.String() == s {
			return e, nil
		}
	}
	return Little, fmt.Errorf("dataformat: unrecognised endianness (%s)", s)
}

func (e Endianness) order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Format specifies the numeric interpretation of a sequence of bytes.
type Format int

// List of valid Format values.
const (
	U8 Format = iota
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
)

// Formats lists all Format values in the order they should be presented to
// the user.
var Formats = []Format{U8, U16, U32, U64, I8, I16, I32, I64, F32, F64}

func (f Format) String() string {
	switch f {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	}
	panic(fmt.Sprintf("dataformat: unknown format (%d)", int(f)))
}

// ParseFormat is the inverse of Format.String().
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if f.String() == s {
			return f, nil
		}
	}
	return U32, fmt.Errorf("dataformat: unrecognised format (%s)", s)
}

// Width returns the number of bytes required to decode a value of the format.
func (f Format) Width() int {
	switch f {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	}
	panic(fmt.Sprintf("dataformat: unknown format (%d)", int(f)))
}

// Decode interprets the bytes according to the format and endianness and
// returns the value as a base-10 string.
//
// The length of the bytes slice must be exactly Width() bytes long. Padding or
// truncating the slice is the responsibility of the caller and the function
// will panic if the length is wrong.
func Decode(bytes []uint8, f Format, e Endianness) string {
	if len(bytes) != f.Width() {
		panic(fmt.Sprintf("dataformat: %s requires %d bytes but %d were supplied", f, f.Width(), len(bytes)))
	}

	o := e.order()

	switch f {
	case U8:
		return strconv.FormatUint(uint64(bytes[0]), 10)
	case U16:
		return strconv.FormatUint(uint64(o.Uint16(bytes)), 10)
	case U32:
		return strconv.FormatUint(uint64(o.Uint32(bytes)), 10)
	case U64:
		return strconv.FormatUint(o.Uint64(bytes), 10)
	case I8:
		return strconv.FormatInt(int64(int8(bytes[0])), 10)
	case I16:
		return strconv.FormatInt(int64(int16(o.Uint16(bytes))), 10)
	case I32:
		return strconv.FormatInt(int64(int32(o.Uint32(bytes))), 10)
	case I64:
		return strconv.FormatInt(int64(o.Uint64(bytes)), 10)
	case F32:
		return strconv.FormatFloat(float64(math.Float32frombits(o.Uint32(bytes))), 'f', -1, 32)
	case F64:
		return strconv.FormatFloat(math.Float64frombits(o.Uint64(bytes)), 'f', -1, 64)
	}

	panic(fmt.Sprintf("dataformat: unknown format (%d)", int(f)))
}
