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

// the 16 ARM condition codes, as they appear in the top 4 bits of an ARM
// instruction (or the condition field of a Thumb conditional branch).
const (
	condEQ = 0x0
	condNE = 0x1
	condCS = 0x2
	condCC = 0x3
	condMI = 0x4
	condPL = 0x5
	condVS = 0x6
	condVC = 0x7
	condHI = 0x8
	condLS = 0x9
	condGE = 0xA
	condLT = 0xB
	condGT = 0xC
	condLE = 0xD
	condAL = 0xE
	condNV = 0xF
)

// evalCondition maps a 4-bit condition field to a boolean over s's N/Z/C/V.
func evalCondition(s status, cond uint32) bool {
	switch cond {
	case condEQ:
		return s.z
	case condNE:
		return !s.z
	case condCS:
		return s.c
	case condCC:
		return !s.c
	case condMI:
		return s.n
	case condPL:
		return !s.n
	case condVS:
		return s.v
	case condVC:
		return !s.v
	case condHI:
		return s.c && !s.z
	case condLS:
		return !s.c || s.z
	case condGE:
		return s.n == s.v
	case condLT:
		return s.n != s.v
	case condGT:
		return !s.z && s.n == s.v
	case condLE:
		return s.z || s.n != s.v
	case condAL:
		return true
	case condNV:
		return false
	}
	return false
}
