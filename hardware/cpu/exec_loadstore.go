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
	"github.com/lj-hsu/goba/curated"
	"github.com/lj-hsu/goba/hardware/cpu/bits"
)

// resolveSingleTransferOffset computes the addressing-mode offset shared by single data
// transfer: either a 12-bit immediate or a shift-by-immediate register,
// never a shift-by-register (the architecture forbids that form here).
func (c *CPU) resolveSingleTransferOffset(word uint32) uint32 {
	if !bits.Bit(word, 25) {
		return word & 0xFFF
	}
	rm := word & 0xF
	kind := shiftKind((word >> 5) & 0x3)
	shiftImm := (word >> 7) & 0x1F
	v, _ := barrelShift(kind, c.regs.get(rm), shiftImm, true, c.cpsr.c)
	return v
}

// executeSingleDataTransfer implements LDR/STR/LDRB/STRB per §4.6: P/U/B/W/L
// addressing, unaligned word loads rotated by 8*(address&3), and byte
// transfers zero-extended on load, truncated on store.
func (c *CPU) executeSingleDataTransfer(word uint32) error {
	p := bits.Bit(word, 24)
	u := bits.Bit(word, 23)
	b := bits.Bit(word, 22)
	w := bits.Bit(word, 21)
	l := bits.Bit(word, 20)
	rn := (word >> 16) & 0xF
	rd := (word >> 12) & 0xF

	offset := c.resolveSingleTransferOffset(word)
	base := c.readOperandReg(rn)

	var addr uint32
	if u {
		addr = base + offset
	} else {
		addr = base - offset
	}

	effective := base
	if p {
		effective = addr
	}

	if l {
		if b {
			v, err := c.mem.Read8(effective)
			if err != nil {
				return c.dataAbort(effective)
			}
			c.regs.set(rd, uint32(v))
		} else {
			v, err := c.mem.Read32(effective &^ 0x3)
			if err != nil {
				return c.dataAbort(effective)
			}
			rotate := (effective & 0x3) * 8
			c.regs.set(rd, bits.RotateRight32(v, uint(rotate)))
		}
		if rd == rPC {
			c.interwork(c.regs.get(rPC))
		}
	} else {
		src := c.regs.get(rd)
		if rd == rPC {
			src = c.pc()
		}
		if b {
			if err := c.mem.Write8(effective, uint8(src)); err != nil {
				return c.dataAbort(effective)
			}
		} else {
			if err := c.mem.Write32(effective&^0x3, src); err != nil {
				return c.dataAbort(effective)
			}
		}
	}

	if !p || w {
		c.regs.set(rn, addr)
	}

	return nil
}

// executeHalfwordTransfer implements LDRH/STRH/LDRSB/LDRSH per §4.6.
func (c *CPU) executeHalfwordTransfer(word uint32) error {
	p := bits.Bit(word, 24)
	u := bits.Bit(word, 23)
	immFlag := bits.Bit(word, 22)
	w := bits.Bit(word, 21)
	l := bits.Bit(word, 20)
	rn := (word >> 16) & 0xF
	rd := (word >> 12) & 0xF
	sh := (word >> 5) & 0x3

	var offset uint32
	if immFlag {
		offset = ((word>>8)&0xF)<<4 | (word & 0xF)
	} else {
		rm := word & 0xF
		offset = c.regs.get(rm)
	}

	base := c.readOperandReg(rn)
	var addr uint32
	if u {
		addr = base + offset
	} else {
		addr = base - offset
	}

	effective := base
	if p {
		effective = addr
	}

	if l {
		switch sh {
		case 0x1: // unsigned halfword
			v, err := c.mem.Read16(effective &^ 0x1)
			if err != nil {
				return c.dataAbort(effective)
			}
			c.regs.set(rd, uint32(v))
		case 0x2: // signed byte
			v, err := c.mem.Read8(effective)
			if err != nil {
				return c.dataAbort(effective)
			}
			c.regs.set(rd, bits.SignExtend(uint32(v), 8))
		case 0x3: // signed halfword
			v, err := c.mem.Read16(effective &^ 0x1)
			if err != nil {
				return c.dataAbort(effective)
			}
			c.regs.set(rd, bits.SignExtend(uint32(v), 16))
		default:
			return decoderInvariant("halfword transfer with SH==00 is an SWP encoding, not implemented")
		}
	} else {
		if sh != 0x1 {
			return decoderInvariant("halfword store requires SH==01")
		}
		v := c.regs.get(rd)
		if err := c.mem.Write16(effective&^0x1, uint16(v)); err != nil {
			return c.dataAbort(effective)
		}
	}

	if !p || w {
		c.regs.set(rn, addr)
	}

	return nil
}

func (c *CPU) dataAbort(addr uint32) error {
	c.log("cpu", curated.Errorf(ErrMemoryAbort, addr))
	c.enterException(Abort, vectorDataAbort, c.regs.get(rPC)+4, false, false)
	return nil
}
