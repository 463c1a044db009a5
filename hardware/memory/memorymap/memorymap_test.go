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

package memorymap_test

import (
	"testing"

	"github.com/lj-hsu/goba/hardware/memory/memorymap"
	"github.com/lj-hsu/goba/test"
)

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, memorymap.Decode(0x00000000), memorymap.BIOS)
	test.ExpectEquality(t, memorymap.Decode(0x00003FFF), memorymap.BIOS)
	test.ExpectEquality(t, memorymap.Decode(0x02000000), memorymap.EWRAM)
	test.ExpectEquality(t, memorymap.Decode(0x03007FFF), memorymap.IWRAM)
	test.ExpectEquality(t, memorymap.Decode(0x04000208), memorymap.IO)
	test.ExpectEquality(t, memorymap.Decode(0x05000000), memorymap.Palette)
	test.ExpectEquality(t, memorymap.Decode(0x06010000), memorymap.VRAM)
	test.ExpectEquality(t, memorymap.Decode(0x07000000), memorymap.OAM)
	test.ExpectEquality(t, memorymap.Decode(0x08000000), memorymap.ROM0)
	test.ExpectEquality(t, memorymap.Decode(0x0A000000), memorymap.ROM1)
	test.ExpectEquality(t, memorymap.Decode(0x0C000000), memorymap.ROM2)
	test.ExpectEquality(t, memorymap.Decode(0x0E000000), memorymap.SRAM)
	test.ExpectEquality(t, memorymap.Decode(0x01000000), memorymap.Unmapped)
}

func TestBaseAndSize(t *testing.T) {
	test.ExpectEquality(t, memorymap.Base(memorymap.BIOS), uint32(0x00000000))
	test.ExpectEquality(t, memorymap.Size(memorymap.BIOS), uint32(0x4000))
	test.ExpectEquality(t, memorymap.Size(memorymap.EWRAM), uint32(0x40000))
	test.ExpectEquality(t, memorymap.Size(memorymap.IWRAM), uint32(0x8000))
	test.ExpectEquality(t, memorymap.Size(memorymap.SRAM), uint32(0x10000))
}
