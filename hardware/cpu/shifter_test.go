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

package cpu

import (
	"testing"

	"github.com/lj-hsu/goba/test"
)

func TestBarrelShiftLSL(t *testing.T) {
	r, c := barrelShift(shiftLSL, 0x80000000, 1, true, false)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, c, true)

	r, c = barrelShift(shiftLSL, 0x1, 0, true, true)
	test.ExpectEquality(t, r, uint32(1))
	test.ExpectEquality(t, c, true)

	r, c = barrelShift(shiftLSL, 0x1, 32, true, false)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, c, true)

	r, c = barrelShift(shiftLSL, 0x1, 33, true, true)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, c, false)
}

func TestBarrelShiftLSR(t *testing.T) {
	r, c := barrelShift(shiftLSR, 0x80000000, 0, true, false)
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, c, true)

	r, c = barrelShift(shiftLSR, 0x2, 1, true, false)
	test.ExpectEquality(t, r, uint32(1))
	test.ExpectEquality(t, c, false)
}

func TestBarrelShiftASR(t *testing.T) {
	r, c := barrelShift(shiftASR, 0x80000000, 0, true, false)
	test.ExpectEquality(t, r, uint32(0xFFFFFFFF))
	test.ExpectEquality(t, c, true)

	r, c = barrelShift(shiftASR, 0x80000000, 4, true, false)
	test.ExpectEquality(t, r, uint32(0xF8000000))
	test.ExpectEquality(t, c, false)
}

func TestBarrelShiftRORAndRRX(t *testing.T) {
	// RRX
	r, c := barrelShift(shiftROR, 0x00000001, 0, true, true)
	test.ExpectEquality(t, r, uint32(0x80000000))
	test.ExpectEquality(t, c, true)

	r, c = barrelShift(shiftROR, 0x00000001, 4, true, false)
	test.ExpectEquality(t, r, uint32(0x10000000))
	test.ExpectEquality(t, c, false)
}

func TestBarrelShiftRegisterSpecifiedZero(t *testing.T) {
	r, c := barrelShift(shiftLSL, 0x12345678, 0, false, true)
	test.ExpectEquality(t, r, uint32(0x12345678))
	test.ExpectEquality(t, c, true)
}
