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

// executeLoadAddress implements Thumb format 12: ADD Rd,PC|SP,#imm8<<2. The
// PC form word-aligns the base first.
func (c *CPU) executeLoadAddress(opcode uint16) error {
	useSP := bits.Bit(uint32(opcode), 11)
	rd := uint32((opcode >> 8) & 0x7)
	imm8 := uint32(opcode & 0xFF)

	var base uint32
	if useSP {
		base = c.regs.get(rSP)
	} else {
		base = c.pc() &^ 0x3
	}

	c.regs.set(rd, base+imm8<<2)
	return nil
}

// executeAddOffsetToSP implements Thumb format 13: ADD/SUB SP,#imm7<<2.
func (c *CPU) executeAddOffsetToSP(opcode uint16) error {
	negative := bits.Bit(uint32(opcode), 7)
	imm7 := uint32(opcode & 0x7F)
	offset := imm7 << 2

	if negative {
		c.regs.set(rSP, c.regs.get(rSP)-offset)
	} else {
		c.regs.set(rSP, c.regs.get(rSP)+offset)
	}
	return nil
}

// executePushPopRegisters implements Thumb format 14: PUSH/POP {Rlist[,LR|PC]}.
// PUSH decrements SP then stores in ascending register order; POP loads in
// ascending order then increments SP. POP {..., PC} interworks on bit 0 of
// the loaded value.
func (c *CPU) executePushPopRegisters(opcode uint16) error {
	l := bits.Bit(uint32(opcode), 11)
	includesLRorPC := bits.Bit(uint32(opcode), 8)
	list := uint32(opcode & 0xFF)

	var regs []uint32
	for i := uint32(0); i < 8; i++ {
		if list&(1<<i) != 0 {
			regs = append(regs, i)
		}
	}

	count := uint32(len(regs))
	if includesLRorPC {
		count++
	}

	if l {
		addr := c.regs.get(rSP)
		for _, r := range regs {
			v, err := c.mem.Read32(addr)
			if err != nil {
				return c.dataAbort(addr)
			}
			c.regs.set(r, v)
			addr += 4
		}
		if includesLRorPC {
			v, err := c.mem.Read32(addr)
			if err != nil {
				return c.dataAbort(addr)
			}
			c.interwork(v)
			addr += 4
		}
		c.regs.set(rSP, addr)
		return nil
	}

	start := c.regs.get(rSP) - count*4
	addr := start
	for _, r := range regs {
		if err := c.mem.Write32(addr, c.regs.get(r)); err != nil {
			return c.dataAbort(addr)
		}
		addr += 4
	}
	if includesLRorPC {
		if err := c.mem.Write32(addr, c.regs.get(rLR)); err != nil {
			return c.dataAbort(addr)
		}
	}
	c.regs.set(rSP, start)
	return nil
}

// executeMultipleLoadStore implements Thumb format 15: LDMIA/STMIA
// Rb!,{Rlist}. Always increment-after; writeback is skipped when the load
// clobbers the base register itself.
func (c *CPU) executeMultipleLoadStore(opcode uint16) error {
	l := bits.Bit(uint32(opcode), 11)
	rb := uint32((opcode >> 8) & 0x7)
	list := uint32(opcode & 0xFF)

	var regs []uint32
	for i := uint32(0); i < 8; i++ {
		if list&(1<<i) != 0 {
			regs = append(regs, i)
		}
	}
	count := uint32(len(regs))
	base := c.regs.get(rb)

	baseInList := false
	for _, r := range regs {
		if r == rb {
			baseInList = true
		}
	}

	addr := base
	for _, r := range regs {
		if l {
			v, err := c.mem.Read32(addr)
			if err != nil {
				return c.dataAbort(addr)
			}
			c.regs.set(r, v)
		} else {
			if err := c.mem.Write32(addr, c.regs.get(r)); err != nil {
				return c.dataAbort(addr)
			}
		}
		addr += 4
	}

	if !(l && baseInList) {
		c.regs.set(rb, base+count*4)
	}
	return nil
}
