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

// stepThumb fetches, decodes and executes one Thumb instruction at pc.
// The 19 formats are checked from the most specific mask to the least,
// matching the architecture's own layering (format 8's mask is a refinement
// of format 7's, format 17's a refinement of format 16's, and so on) so that
// each opcode matches exactly one case -- there is no dispatch fall-through
// to guard against here, unlike the reference this core replaces.
func (c *CPU) stepThumb(pc uint32) error {
	opcode, err := c.mem.Read16(pc)
	if err != nil {
		return c.prefetchAbort(pc)
	}

	switch {
	case opcode&0xf000 == 0xf000:
		return c.executeLongBranchWithLink(opcode)
	case opcode&0xf000 == 0xe000:
		return c.executeUnconditionalBranch(opcode)
	case opcode&0xff00 == 0xdf00:
		return c.executeSoftwareInterrupt(opcode)
	case opcode&0xf000 == 0xd000:
		return c.executeConditionalBranch(opcode)
	case opcode&0xf000 == 0xc000:
		return c.executeMultipleLoadStore(opcode)
	case opcode&0xf600 == 0xb400:
		return c.executePushPopRegisters(opcode)
	case opcode&0xff00 == 0xb000:
		return c.executeAddOffsetToSP(opcode)
	case opcode&0xf000 == 0xa000:
		return c.executeLoadAddress(opcode)
	case opcode&0xf000 == 0x9000:
		return c.executeSPRelativeLoadStore(opcode)
	case opcode&0xf000 == 0x8000:
		return c.executeLoadStoreHalfword(opcode)
	case opcode&0xe000 == 0x6000:
		return c.executeLoadStoreWithImmOffset(opcode)
	case opcode&0xf200 == 0x5200:
		return c.executeLoadStoreSignExtendedByteHalfword(opcode)
	case opcode&0xf200 == 0x5000:
		return c.executeLoadStoreWithRegisterOffset(opcode)
	case opcode&0xf800 == 0x4800:
		return c.executePCrelativeLoad(opcode)
	case opcode&0xfc00 == 0x4400:
		return c.executeHiRegisterOps(opcode)
	case opcode&0xfc00 == 0x4000:
		return c.executeALUoperations(opcode)
	case opcode&0xe000 == 0x2000:
		return c.executeMovCmpAddSubImm(opcode)
	case opcode&0xf800 == 0x1800:
		return c.executeAddSubtract(opcode)
	case opcode&0xe000 == 0x0000:
		return c.executeMoveShiftedRegister(opcode)
	}

	return c.executeUndefined(pc, 2)
}
