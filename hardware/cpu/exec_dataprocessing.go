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

// the 16 data-processing opcodes, as encoded in bits [24:21].
const (
	opAND = 0x0
	opEOR = 0x1
	opSUB = 0x2
	opRSB = 0x3
	opADD = 0x4
	opADC = 0x5
	opSBC = 0x6
	opRSC = 0x7
	opTST = 0x8
	opTEQ = 0x9
	opCMP = 0xA
	opCMN = 0xB
	opORR = 0xC
	opMOV = 0xD
	opBIC = 0xE
	opMVN = 0xF
)

// decodeOperand2 resolves a data-processing instruction's 12-bit operand 2
// field to (value, shifter_carry_out), honouring the immediate and
// register-shift encodings described in the architecture manual.
func (c *CPU) decodeOperand2(word uint32, carryIn bool) (uint32, bool) {
	if bits.Bit(word, 25) {
		imm8 := word & 0xFF
		rotate := ((word >> 8) & 0xF) * 2
		if rotate == 0 {
			return imm8, carryIn
		}
		result := bits.RotateRight32(imm8, uint(rotate))
		return result, bits.Bit(result, 31)
	}

	rm := word & 0xF
	kind := shiftKind((word >> 5) & 0x3)

	if bits.Bit(word, 4) {
		rs := (word >> 8) & 0xF
		amount := c.readOperandReg(rs) & 0xFF
		source := c.readOperandReg(rm)
		return barrelShift(kind, source, amount, false, carryIn)
	}

	shiftImm := (word >> 7) & 0x1F
	source := c.readOperandReg(rm)
	return barrelShift(kind, source, shiftImm, true, carryIn)
}

// executeDataProcessing implements the 16 ALU opcodes of §4.4. PSR transfer
// (MRS/MSR) rides in the TST/TEQ/CMP/CMN opcode slots when S is clear, per
// §4.5, and is dispatched out to executePSRTransfer.
func (c *CPU) executeDataProcessing(word uint32) error {
	opcode := (word >> 21) & 0xF
	s := bits.Bit(word, 20)
	rn := (word >> 16) & 0xF
	rd := (word >> 12) & 0xF

	if !s && (opcode == opTST || opcode == opTEQ || opcode == opCMP || opcode == opCMN) {
		return c.executePSRTransfer(word)
	}

	op2, shifterCarry := c.decodeOperand2(word, c.cpsr.c)
	a := c.readOperandReg(rn)

	var result uint32
	var carryOut, overflow bool
	logical := false
	discard := opcode == opTST || opcode == opTEQ || opcode == opCMP || opcode == opCMN

	switch opcode {
	case opAND, opTST:
		result = a & op2
		logical = true
	case opEOR, opTEQ:
		result = a ^ op2
		logical = true
	case opSUB, opCMP:
		result, carryOut, overflow = addWithCarry(a, ^op2, true)
	case opRSB:
		result, carryOut, overflow = addWithCarry(op2, ^a, true)
	case opADD, opCMN:
		result, carryOut, overflow = addWithCarry(a, op2, false)
	case opADC:
		result, carryOut, overflow = addWithCarry(a, op2, c.cpsr.c)
	case opSBC:
		result, carryOut, overflow = addWithCarry(a, ^op2, c.cpsr.c)
	case opRSC:
		result, carryOut, overflow = addWithCarry(op2, ^a, c.cpsr.c)
	case opORR:
		result = a | op2
		logical = true
	case opMOV:
		result = op2
		logical = true
	case opBIC:
		result = a &^ op2
		logical = true
	case opMVN:
		result = ^op2
		logical = true
	}

	if s {
		if rd == rPC && !discard {
			if spsr := c.regs.spsr(); spsr != nil {
				c.regs.switchMode(spsr.mode)
				c.cpsr = *spsr
			}
		} else {
			c.cpsr.n = bits.Bit(result, 31)
			c.cpsr.z = result == 0
			if logical {
				c.cpsr.c = shifterCarry
			} else {
				c.cpsr.c = carryOut
				c.cpsr.v = overflow
			}
		}
	}

	if !discard {
		if rd == rPC {
			c.writePC(result &^ 0x3)
		} else {
			c.regs.set(rd, result)
		}
	}

	return nil
}

// executePSRTransfer implements MRS (copy CPSR/SPSR into Rd) and MSR (write
// a register or rotated immediate into CPSR/SPSR under a field mask).
func (c *CPU) executePSRTransfer(word uint32) error {
	useSPSR := bits.Bit(word, 22)
	isMSR := bits.Bit(word, 21)

	if !isMSR {
		rd := (word >> 12) & 0xF
		var v uint32
		if useSPSR {
			if spsr := c.regs.spsr(); spsr != nil {
				v = spsr.pack()
			}
		} else {
			v = c.cpsr.pack()
		}
		c.regs.set(rd, v)
		return nil
	}

	mask := (word >> 16) & 0xF

	var src uint32
	if bits.Bit(word, 25) {
		imm8 := word & 0xFF
		rotate := ((word >> 8) & 0xF) * 2
		src = bits.RotateRight32(imm8, uint(rotate))
	} else {
		rm := word & 0xF
		src = c.readOperandReg(rm)
	}

	if useSPSR {
		if spsr := c.regs.spsr(); spsr != nil {
			spsr.setField(mask, src, true)
		}
		return nil
	}

	privileged := c.cpsr.mode != User
	oldMode := c.cpsr.mode
	c.cpsr.setField(mask, src, privileged)
	if privileged && c.cpsr.mode != oldMode {
		if !c.cpsr.mode.Valid() {
			return curated.Errorf(ErrIllegalMode, uint32(c.cpsr.mode))
		}
		c.regs.switchMode(c.cpsr.mode)
	}

	return nil
}
