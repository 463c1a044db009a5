// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package bits_test

import (
	"testing"

	"github.com/lj-hsu/goba/hardware/cpu/bits"
	"github.com/lj-hsu/goba/test"
)

func TestRotateRight32(t *testing.T) {
	test.ExpectEquality(t, bits.RotateRight32(0x00000001, 1), uint32(0x80000000))
	test.ExpectEquality(t, bits.RotateRight32(0x80000000, 1), uint32(0x40000000))
	test.ExpectEquality(t, bits.RotateRight32(0x12345678, 0), uint32(0x12345678))
	test.ExpectEquality(t, bits.RotateRight32(0x12345678, 32), uint32(0x12345678))
}

func TestRotateLeft32(t *testing.T) {
	test.ExpectEquality(t, bits.RotateLeft32(0x80000000, 1), uint32(0x00000001))
	test.ExpectEquality(t, bits.RotateLeft32(0x00000001, 1), uint32(0x00000002))
}

func TestSignExtend(t *testing.T) {
	test.ExpectEquality(t, bits.SignExtend(0xFF, 8), uint32(0xFFFFFFFF))
	test.ExpectEquality(t, bits.SignExtend(0x7F, 8), uint32(0x0000007F))
	test.ExpectEquality(t, bits.SignExtend(0x800000, 24), uint32(0xFF800000))
	test.ExpectEquality(t, bits.SignExtend(0x1FF, 9), uint32(0xFFFFFFFF))
}

func TestBit(t *testing.T) {
	test.ExpectEquality(t, bits.Bit(0x80000000, 31), true)
	test.ExpectEquality(t, bits.Bit(0x80000000, 30), false)
	test.ExpectEquality(t, bits.Bit(0x00000001, 0), true)
}

func TestPopCount16(t *testing.T) {
	test.ExpectEquality(t, bits.PopCount16(0x0000), 0)
	test.ExpectEquality(t, bits.PopCount16(0xFFFF), 16)
	test.ExpectEquality(t, bits.PopCount16(0x00FF), 8)
	test.ExpectEquality(t, bits.PopCount16(0x8001), 2)
}
