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

// executeBranch implements B/BL per §4.3 item 7: sign-extend the 24-bit word
// offset, scale by 4, and add to the pipelined PC. BL additionally sets LR to
// the address of the instruction following the branch.
func (c *CPU) executeBranch(word uint32) error {
	l := bits.Bit(word, 24)
	offset := bits.SignExtend(word&0xFFFFFF, 24) << 2

	if l {
		c.regs.set(rLR, c.regs.get(rPC)+4)
	}

	c.writePC(c.pc() + offset)
	return nil
}
