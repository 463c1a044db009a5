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

// executeConditionalBranch implements Thumb format 16. Condition 0xF is
// reserved for SWI and is intercepted earlier in the dispatcher, so it is
// never seen here.
func (c *CPU) executeConditionalBranch(opcode uint16) error {
	cond := uint32((opcode >> 8) & 0xF)
	if !evalCondition(c.cpsr, cond) {
		return nil
	}

	offset8 := uint32(opcode & 0xFF)
	offset := bits.SignExtend(offset8<<1, 9)
	c.writePC(c.pc() + offset)
	return nil
}

// executeSoftwareInterrupt implements Thumb format 17: SWI #imm8. This is
// not an error: the guest is deliberately invoking the BIOS.
func (c *CPU) executeSoftwareInterrupt(opcode uint16) error {
	pc := c.regs.get(rPC)
	c.log("cpu", "swi entry")
	c.enterException(Supervisor, vectorSWI, pc+2, true, false)
	return nil
}

// executeUnconditionalBranch implements Thumb format 18: B #offset11.
func (c *CPU) executeUnconditionalBranch(opcode uint16) error {
	offset11 := uint32(opcode & 0x7FF)
	offset := bits.SignExtend(offset11<<1, 12)
	c.writePC(c.pc() + offset)
	return nil
}

// executeLongBranchWithLink implements Thumb format 19, the two-instruction
// BL sequence. The first half (H=0) stashes a PC-relative high offset in LR;
// the second half (H=1) combines it with the low offset to form the target
// and sets the return address in LR, low bit set.
func (c *CPU) executeLongBranchWithLink(opcode uint16) error {
	h := bits.Bit(uint32(opcode), 11)
	offset11 := uint32(opcode & 0x7FF)

	if !h {
		high := bits.SignExtend(offset11, 11) << 12
		c.regs.set(rLR, c.pc()+high)
		return nil
	}

	target := c.regs.get(rLR) + offset11<<1
	returnAddr := (c.regs.get(rPC) + 2) | 1
	c.regs.set(rLR, returnAddr)
	c.writePC(target)
	return nil
}
