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

// isBranchExchange matches "cond 0001 0010 1111 1111 1111 0001 Rn" (BX/BLX).
func isBranchExchange(w uint32) bool {
	return w&0x0FFFFFF0 == 0x012FFF10
}

func isMultiplyFamily(w uint32) bool {
	return (w>>4)&0xF == 0x9 && (w>>24)&0xF == 0x0
}

func isMultiplyLong(w uint32) bool {
	return isMultiplyFamily(w) && bits.Bit(w, 23)
}

func isMultiply(w uint32) bool {
	return isMultiplyFamily(w) && !bits.Bit(w, 23)
}

func isHalfwordSignedTransfer(w uint32) bool {
	return (w>>25)&0x7 == 0 && bits.Bit(w, 7) && bits.Bit(w, 4)
}

func isDataProcessingOrPSR(w uint32) bool {
	return (w>>26)&0x3 == 0
}

func isSingleDataTransfer(w uint32) bool {
	return (w>>26)&0x3 == 1
}

func isBlockDataTransfer(w uint32) bool {
	return (w>>25)&0x7 == 4
}

func isBranchWithLink(w uint32) bool {
	return (w>>25)&0x7 == 5
}

func isSoftwareInterrupt(w uint32) bool {
	return (w>>24)&0xF == 0xF
}

// stepARM fetches, decodes and executes one ARM instruction at pc.
// Dispatch priority matches the architecture's overlapping encodings: the
// predicates below overlap (a multiply word also satisfies
// isDataProcessingOrPSR, for example), so the cases are listed in priority
// order and the switch takes the first match -- exactly one branch ever
// executes and there is no fall-through to guard against.
func (c *CPU) stepARM(pc uint32) error {
	word, err := c.mem.Read32(pc)
	if err != nil {
		return c.prefetchAbort(pc)
	}

	cond := (word >> 28) & 0xF
	if !evalCondition(c.cpsr, cond) {
		return nil
	}

	switch {
	case isBranchExchange(word):
		return c.executeBranchExchange(word)
	case isMultiplyLong(word):
		return c.executeMultiplyLong(word)
	case isMultiply(word):
		return c.executeMultiply(word)
	case isHalfwordSignedTransfer(word):
		return c.executeHalfwordTransfer(word)
	case isDataProcessingOrPSR(word):
		return c.executeDataProcessing(word)
	case isSingleDataTransfer(word):
		return c.executeSingleDataTransfer(word)
	case isBlockDataTransfer(word):
		return c.executeBlockDataTransfer(word)
	case isBranchWithLink(word):
		return c.executeBranch(word)
	case isSoftwareInterrupt(word):
		return c.executeSWI(word)
	default:
		return c.executeUndefined(pc, 4)
	}
}

// executeBranchExchange implements BX/BLX(reg): branch to Rn, switching to
// Thumb state if bit 0 of Rn is set.
func (c *CPU) executeBranchExchange(word uint32) error {
	rn := word & 0xF
	target := c.readOperandReg(rn)
	c.interwork(target)
	return nil
}

// executeUndefined takes the ARMv4T undefined-instruction exception: save
// CPSR to SPSR_und, switch to UNDEFINED mode, clear T, set LR_und to the
// return address, and jump to the undefined vector. returnOffset is the
// instruction width (4 from ARM state, 2 from Thumb state) added to pc to
// form the saved return address.
func (c *CPU) executeUndefined(pc, returnOffset uint32) error {
	c.log("cpu", curated.Errorf(ErrUndefinedInstruction, pc))
	c.enterException(Undefined, vectorUndefined, pc+returnOffset, false, false)
	return nil
}

// executeSWI takes the SWI vector. This is not an error: the guest is
// deliberately invoking the BIOS.
func (c *CPU) executeSWI(word uint32) error {
	pc := c.regs.get(rPC)
	c.log("cpu", "swi entry")
	c.enterException(Supervisor, vectorSWI, pc+4, true, false)
	return nil
}
