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

package dataformat_test

import (
	"testing"

	"github.com/jetsetilly/memedit/editor/dataformat"
	"github.com/jetsetilly/memedit/test"
)

func TestEndianness(t *testing.T) {
	b := []uint8{0x01, 0x00}
	test.ExpectEquality(t, dataformat.Decode(b, dataformat.U16, dataformat.Little), "1")
	test.ExpectEquality(t, dataformat.Decode(b, dataformat.U16, dataformat.Big), "256")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		bytes    []uint8
		format   dataformat.Format
		endian   dataformat.Endianness
		expected string
	}{
		{[]uint8{0xff}, dataformat.U8, dataformat.Little, "255"},
		{[]uint8{0xff}, dataformat.I8, dataformat.Little, "-1"},
		{[]uint8{0xfe, 0xff}, dataformat.I16, dataformat.Little, "-2"},
		{[]uint8{0xfe, 0xff}, dataformat.I16, dataformat.Big, "-257"},
		{[]uint8{0x78, 0x56, 0x34, 0x12}, dataformat.U32, dataformat.Little, "305419896"},
		{[]uint8{0x12, 0x34, 0x56, 0x78}, dataformat.U32, dataformat.Big, "305419896"},
		{[]uint8{0xff, 0xff, 0xff, 0xff}, dataformat.I32, dataformat.Big, "-1"},
		{[]uint8{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, dataformat.U64, dataformat.Big, "18446744073709551615"},
		{[]uint8{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, dataformat.I64, dataformat.Little, "-9223372036854775808"},
		{[]uint8{0x00, 0x00, 0xc0, 0x3f}, dataformat.F32, dataformat.Little, "1.5"},
		{[]uint8{0x3f, 0xc0, 0x00, 0x00}, dataformat.F32, dataformat.Big, "1.5"},
		{[]uint8{0x40, 0x09, 0x21, 0xfb, 0x54, 0x44, 0x2d, 0x18}, dataformat.F64, dataformat.Big, "3.141592653589793"},
		{[]uint8{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, dataformat.F64, dataformat.Little, "0"},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, dataformat.Decode(tt.bytes, tt.format, tt.endian), tt.expected, tt.format, " ", tt.endian)
	}
}

func TestDecodeLength(t *testing.T) {
	test.ExpectPanic(t, func() {
		_ = dataformat.Decode([]uint8{0x00}, dataformat.U16, dataformat.Little)
	})
	test.ExpectPanic(t, func() {
		_ = dataformat.Decode([]uint8{0x00, 0x00, 0x00, 0x00, 0x00}, dataformat.F32, dataformat.Big)
	})
}

func TestWidth(t *testing.T) {
	for _, f := range dataformat.Formats {
		w := f.Width()
		test.ExpectSuccess(t, w == 1 || w == 2 || w == 4 || w == 8, f)
	}
	test.ExpectEquality(t, dataformat.F32.Width(), 4)
	test.ExpectEquality(t, dataformat.I64.Width(), 8)
}

func TestParseNames(t *testing.T) {
	for _, f := range dataformat.Formats {
		g, err := dataformat.ParseFormat(f.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, g, f)
	}
	_, err := dataformat.ParseFormat("U128")
	test.ExpectFailure(t, err)

	for _, e := range dataformat.Endiannesses {
		g, err := dataformat.ParseEndianness(e.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, g, e)
	}
	_, err = dataformat.ParseEndianness("Middle")
	test.ExpectFailure(t, err)
}

func TestHexByte(t *testing.T) {
	test.ExpectEquality(t, dataformat.FormatByte(0x0a), "0A")
	test.ExpectEquality(t, dataformat.FormatByte(0xff), "FF")

	test.ExpectEquality(t, dataformat.FilterHex("4g-F z"), "4F")
	test.ExpectEquality(t, dataformat.FilterHex("xyz"), "")

	v, ok := dataformat.ParseByte("4F")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x4f))

	v, ok = dataformat.ParseByte("a0c")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0xa0))

	_, ok = dataformat.ParseByte("4")
	test.ExpectFailure(t, ok)

	_, ok = dataformat.ParseByte("4Z")
	test.ExpectFailure(t, ok)
}

func TestParseAddress(t *testing.T) {
	a, err := dataformat.ParseAddress("0xFF05")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint64(0xff05))

	a, err = dataformat.ParseAddress(" 5 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint64(5))

	_, err = dataformat.ParseAddress("0x")
	test.ExpectFailure(t, err)

	_, err = dataformat.ParseAddress("10000000000000000")
	test.ExpectFailure(t, err)
}

func TestHexDigits(t *testing.T) {
	test.ExpectEquality(t, dataformat.HexDigits(0), 1)
	test.ExpectEquality(t, dataformat.HexDigits(0xf), 1)
	test.ExpectEquality(t, dataformat.HexDigits(0x10), 2)
	test.ExpectEquality(t, dataformat.HexDigits(0xfffe), 4)
	test.ExpectEquality(t, dataformat.HexDigits(0xffffffffffffffff), 16)
}
