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

import "github.com/lj-hsu/goba/hardware/cpu/bits"

// executeMultiply implements MUL/MLA: Rd = Rm*Rs (+Rn if accumulate). C and V
// are left unaffected regardless of S; only N and Z are meaningful outputs.
func (c *CPU) executeMultiply(word uint32) error {
	rd := (word >> 16) & 0xF
	rn := (word >> 12) & 0xF
	rs := (word >> 8) & 0xF
	rm := word & 0xF
	s := bits.Bit(word, 20)
	accumulate := bits.Bit(word, 21)

	result := c.regs.get(rm) * c.regs.get(rs)
	if accumulate {
		result += c.regs.get(rn)
	}

	c.regs.set(rd, result)

	if s {
		c.cpsr.n = bits.Bit(result, 31)
		c.cpsr.z = result == 0
	}

	return nil
}

// executeMultiplyLong implements UMULL/UMLAL/SMULL/SMLAL: a 64-bit product
// (or accumulation) split across RdHi:RdLo.
func (c *CPU) executeMultiplyLong(word uint32) error {
	rdHi := (word >> 16) & 0xF
	rdLo := (word >> 12) & 0xF
	rs := (word >> 8) & 0xF
	rm := word & 0xF
	s := bits.Bit(word, 20)
	accumulate := bits.Bit(word, 21)
	signed := bits.Bit(word, 22)

	var product uint64
	if signed {
		a := int64(int32(c.regs.get(rm)))
		b := int64(int32(c.regs.get(rs)))
		product = uint64(a * b)
	} else {
		product = uint64(c.regs.get(rm)) * uint64(c.regs.get(rs))
	}

	if accumulate {
		existing := uint64(c.regs.get(rdHi))<<32 | uint64(c.regs.get(rdLo))
		product += existing
	}

	lo := uint32(product)
	hi := uint32(product >> 32)
	c.regs.set(rdLo, lo)
	c.regs.set(rdHi, hi)

	if s {
		c.cpsr.n = bits.Bit(hi, 31)
		c.cpsr.z = product == 0
	}

	return nil
}
