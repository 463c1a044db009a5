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

// executePCrelativeLoad implements Thumb format 6: LDR Rd,[PC,#imm8<<2], with
// the base word-aligned before the offset is added.
func (c *CPU) executePCrelativeLoad(opcode uint16) error {
	rd := uint32((opcode >> 8) & 0x7)
	imm8 := uint32(opcode & 0xFF)

	addr := (c.pc() &^ 0x3) + imm8<<2
	v, err := c.mem.Read32(addr)
	if err != nil {
		return c.dataAbort(addr)
	}
	c.regs.set(rd, v)
	return nil
}

// executeLoadStoreWithRegisterOffset implements Thumb format 7: LDR/STR/
// LDRB/STRB Rd,[Rb,Ro].
func (c *CPU) executeLoadStoreWithRegisterOffset(opcode uint16) error {
	l := bits.Bit(uint32(opcode), 11)
	b := bits.Bit(uint32(opcode), 10)
	ro := uint32((opcode >> 6) & 0x7)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	addr := c.regs.get(rb) + c.regs.get(ro)

	if l {
		if b {
			v, err := c.mem.Read8(addr)
			if err != nil {
				return c.dataAbort(addr)
			}
			c.regs.set(rd, uint32(v))
		} else {
			v, err := c.mem.Read32(addr &^ 0x3)
			if err != nil {
				return c.dataAbort(addr)
			}
			rotate := (addr & 0x3) * 8
			c.regs.set(rd, bits.RotateRight32(v, uint(rotate)))
		}
		return nil
	}

	if b {
		if err := c.mem.Write8(addr, uint8(c.regs.get(rd))); err != nil {
			return c.dataAbort(addr)
		}
	} else {
		if err := c.mem.Write32(addr&^0x3, c.regs.get(rd)); err != nil {
			return c.dataAbort(addr)
		}
	}
	return nil
}

// executeLoadStoreSignExtendedByteHalfword implements Thumb format 8:
// STRH/LDRH/LDSB/LDSH Rd,[Rb,Ro].
func (c *CPU) executeLoadStoreSignExtendedByteHalfword(opcode uint16) error {
	h := bits.Bit(uint32(opcode), 11)
	s := bits.Bit(uint32(opcode), 10)
	ro := uint32((opcode >> 6) & 0x7)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	addr := c.regs.get(rb) + c.regs.get(ro)

	switch {
	case !s && !h: // STRH
		if err := c.mem.Write16(addr&^0x1, uint16(c.regs.get(rd))); err != nil {
			return c.dataAbort(addr)
		}
	case !s && h: // LDRH
		v, err := c.mem.Read16(addr &^ 0x1)
		if err != nil {
			return c.dataAbort(addr)
		}
		c.regs.set(rd, uint32(v))
	case s && !h: // LDSB
		v, err := c.mem.Read8(addr)
		if err != nil {
			return c.dataAbort(addr)
		}
		c.regs.set(rd, bits.SignExtend(uint32(v), 8))
	default: // LDSH
		v, err := c.mem.Read16(addr &^ 0x1)
		if err != nil {
			return c.dataAbort(addr)
		}
		c.regs.set(rd, bits.SignExtend(uint32(v), 16))
	}
	return nil
}

// executeLoadStoreWithImmOffset implements Thumb format 9: LDR/STR/LDRB/STRB
// Rd,[Rb,#imm5]. The immediate is scaled by 4 for words, unscaled for bytes.
func (c *CPU) executeLoadStoreWithImmOffset(opcode uint16) error {
	byteFlag := bits.Bit(uint32(opcode), 12)
	l := bits.Bit(uint32(opcode), 11)
	offset5 := uint32((opcode >> 6) & 0x1F)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	var offset uint32
	if byteFlag {
		offset = offset5
	} else {
		offset = offset5 << 2
	}
	addr := c.regs.get(rb) + offset

	if l {
		if byteFlag {
			v, err := c.mem.Read8(addr)
			if err != nil {
				return c.dataAbort(addr)
			}
			c.regs.set(rd, uint32(v))
		} else {
			v, err := c.mem.Read32(addr &^ 0x3)
			if err != nil {
				return c.dataAbort(addr)
			}
			rotate := (addr & 0x3) * 8
			c.regs.set(rd, bits.RotateRight32(v, uint(rotate)))
		}
		return nil
	}

	if byteFlag {
		if err := c.mem.Write8(addr, uint8(c.regs.get(rd))); err != nil {
			return c.dataAbort(addr)
		}
	} else {
		if err := c.mem.Write32(addr&^0x3, c.regs.get(rd)); err != nil {
			return c.dataAbort(addr)
		}
	}
	return nil
}

// executeLoadStoreHalfword implements Thumb format 10: LDRH/STRH
// Rd,[Rb,#imm5<<1].
func (c *CPU) executeLoadStoreHalfword(opcode uint16) error {
	l := bits.Bit(uint32(opcode), 11)
	offset5 := uint32((opcode >> 6) & 0x1F)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	addr := c.regs.get(rb) + offset5<<1

	if l {
		v, err := c.mem.Read16(addr &^ 0x1)
		if err != nil {
			return c.dataAbort(addr)
		}
		c.regs.set(rd, uint32(v))
		return nil
	}

	if err := c.mem.Write16(addr&^0x1, uint16(c.regs.get(rd))); err != nil {
		return c.dataAbort(addr)
	}
	return nil
}

// executeSPRelativeLoadStore implements Thumb format 11: LDR/STR
// Rd,[SP,#imm8<<2].
func (c *CPU) executeSPRelativeLoadStore(opcode uint16) error {
	l := bits.Bit(uint32(opcode), 11)
	rd := uint32((opcode >> 8) & 0x7)
	imm8 := uint32(opcode & 0xFF)

	addr := c.regs.get(rSP) + imm8<<2

	if l {
		v, err := c.mem.Read32(addr &^ 0x3)
		if err != nil {
			return c.dataAbort(addr)
		}
		rotate := (addr & 0x3) * 8
		c.regs.set(rd, bits.RotateRight32(v, uint(rotate)))
		return nil
	}

	if err := c.mem.Write32(addr&^0x3, c.regs.get(rd)); err != nil {
		return c.dataAbort(addr)
	}
	return nil
}
