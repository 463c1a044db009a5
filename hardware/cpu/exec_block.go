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

// executeBlockDataTransfer implements LDM/STM per §4.7. Registers in the
// list are always transferred in ascending register order, regardless of
// the addressing direction (U) -- the lowest-numbered register always lands
// at the lowest address touched by the transfer.
func (c *CPU) executeBlockDataTransfer(word uint32) error {
	p := bits.Bit(word, 24)
	u := bits.Bit(word, 23)
	s := bits.Bit(word, 22)
	w := bits.Bit(word, 21)
	l := bits.Bit(word, 20)
	rn := (word >> 16) & 0xF
	list := word & 0xFFFF

	var regs []uint32
	for i := uint32(0); i < 16; i++ {
		if list&(1<<i) != 0 {
			regs = append(regs, i)
		}
	}
	count := uint32(len(regs))
	base := c.regs.get(rn)

	var start uint32
	if u {
		start = base
		if p {
			start += 4
		}
	} else {
		start = base - count*4
		if !p {
			start += 4
		}
	}

	pcInList := list&(1<<rPC) != 0
	userBankTransfer := s && (!l || !pcInList)
	restoreCPSROnPC := s && l && pcInList

	baseInList := false
	for _, r := range regs {
		if r == rn {
			baseInList = true
			break
		}
	}

	var writtenBackBase uint32
	if u {
		writtenBackBase = base + count*4
	} else {
		writtenBackBase = base - count*4
	}

	addr := start
	for _, r := range regs {
		if l {
			v, err := c.mem.Read32(addr &^ 0x3)
			if err != nil {
				return c.dataAbort(addr)
			}
			if userBankTransfer {
				c.regs.setBankedValue(User, r, v)
			} else {
				c.regs.set(r, v)
			}
			if r == rPC {
				if restoreCPSROnPC {
					if spsr := c.regs.spsr(); spsr != nil {
						c.regs.switchMode(spsr.mode)
						c.cpsr = *spsr
					}
				}
				c.interwork(v)
			}
		} else {
			var v uint32
			switch {
			case r == rPC:
				v = c.pc()
			case w && r == rn && r != regs[0]:
				// base register in the list, not the lowest-numbered slot:
				// the post-writeback value is stored.
				v = writtenBackBase
			case userBankTransfer:
				v = c.regs.bankedValue(User, r)
			default:
				v = c.regs.get(r)
			}
			if err := c.mem.Write32(addr&^0x3, v); err != nil {
				return c.dataAbort(addr)
			}
		}
		addr += 4
	}

	if w && !(l && baseInList) {
		if u {
			c.regs.set(rn, base+count*4)
		} else {
			c.regs.set(rn, base-count*4)
		}
	}

	return nil
}
