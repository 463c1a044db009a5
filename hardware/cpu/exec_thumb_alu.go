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

// executeMoveShiftedRegister implements Thumb format 1: LSL/LSR/ASR Rd,Rs,#n.
// Unlike the ARM data-processing forms, Thumb never suppresses flag writes.
func (c *CPU) executeMoveShiftedRegister(opcode uint16) error {
	op := (opcode >> 11) & 0x3
	offset5 := uint32((opcode >> 6) & 0x1F)
	rs := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	var kind shiftKind
	switch op {
	case 0b00:
		kind = shiftLSL
	case 0b01:
		kind = shiftLSR
	case 0b10:
		kind = shiftASR
	}

	result, carryOut := barrelShift(kind, c.regs.get(rs), offset5, true, c.cpsr.c)
	c.regs.set(rd, result)
	c.cpsr.n = bits.Bit(result, 31)
	c.cpsr.z = result == 0
	c.cpsr.c = carryOut
	return nil
}

// executeAddSubtract implements Thumb format 2: ADD/SUB Rd,Rs,Rn or #imm3.
func (c *CPU) executeAddSubtract(opcode uint16) error {
	immediate := bits.Bit(uint32(opcode), 10)
	sub := bits.Bit(uint32(opcode), 9)
	field := uint32((opcode >> 6) & 0x7)
	rs := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	a := c.regs.get(rs)
	var b uint32
	if immediate {
		b = field
	} else {
		b = c.regs.get(field)
	}

	var result uint32
	var carryOut, overflow bool
	if sub {
		result, carryOut, overflow = addWithCarry(a, ^b, true)
	} else {
		result, carryOut, overflow = addWithCarry(a, b, false)
	}

	c.regs.set(rd, result)
	c.cpsr.n = bits.Bit(result, 31)
	c.cpsr.z = result == 0
	c.cpsr.c = carryOut
	c.cpsr.v = overflow
	return nil
}

// executeMovCmpAddSubImm implements Thumb format 3: MOV/CMP/ADD/SUB Rd,#imm8.
func (c *CPU) executeMovCmpAddSubImm(opcode uint16) error {
	op := (opcode >> 11) & 0x3
	rd := uint32((opcode >> 8) & 0x7)
	imm8 := uint32(opcode & 0xFF)

	a := c.regs.get(rd)
	var result uint32
	var carryOut, overflow bool
	discard := false

	switch op {
	case 0b00: // MOV
		result = imm8
	case 0b01: // CMP
		result, carryOut, overflow = addWithCarry(a, ^imm8, true)
		discard = true
	case 0b10: // ADD
		result, carryOut, overflow = addWithCarry(a, imm8, false)
	case 0b11: // SUB
		result, carryOut, overflow = addWithCarry(a, ^imm8, true)
	}

	c.cpsr.n = bits.Bit(result, 31)
	c.cpsr.z = result == 0
	if op != 0b00 {
		c.cpsr.c = carryOut
		c.cpsr.v = overflow
	}
	if !discard {
		c.regs.set(rd, result)
	}
	return nil
}

// executeALUoperations implements Thumb format 4: the two-operand ALU table
// (AND, EOR, LSL, LSR, ASR, ADC, SBC, ROR, TST, NEG, CMP, CMN, ORR, MUL, BIC,
// MVN), each acting as Rd = Rd OP Rs.
func (c *CPU) executeALUoperations(opcode uint16) error {
	op := (opcode >> 6) & 0xF
	rs := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	a := c.regs.get(rd)
	b := c.regs.get(rs)

	var result uint32
	var carryOut, overflow bool
	logical := false
	shiftOp := false
	writeResult := true

	switch op {
	case 0x0: // AND
		result = a & b
		logical = true
	case 0x1: // EOR
		result = a ^ b
		logical = true
	case 0x2: // LSL
		result, carryOut = barrelShift(shiftLSL, a, b&0xFF, false, c.cpsr.c)
		logical, shiftOp = true, true
	case 0x3: // LSR
		result, carryOut = barrelShift(shiftLSR, a, b&0xFF, false, c.cpsr.c)
		logical, shiftOp = true, true
	case 0x4: // ASR
		result, carryOut = barrelShift(shiftASR, a, b&0xFF, false, c.cpsr.c)
		logical, shiftOp = true, true
	case 0x5: // ADC
		result, carryOut, overflow = addWithCarry(a, b, c.cpsr.c)
	case 0x6: // SBC
		result, carryOut, overflow = addWithCarry(a, ^b, c.cpsr.c)
	case 0x7: // ROR
		result, carryOut = barrelShift(shiftROR, a, b&0xFF, false, c.cpsr.c)
		logical, shiftOp = true, true
	case 0x8: // TST
		result = a & b
		logical = true
		writeResult = false
	case 0x9: // NEG
		result, carryOut, overflow = addWithCarry(0, ^b, true)
	case 0xA: // CMP
		result, carryOut, overflow = addWithCarry(a, ^b, true)
		writeResult = false
	case 0xB: // CMN
		result, carryOut, overflow = addWithCarry(a, b, false)
		writeResult = false
	case 0xC: // ORR
		result = a | b
		logical = true
	case 0xD: // MUL
		result = a * b
		logical = true
	case 0xE: // BIC
		result = a &^ b
		logical = true
	case 0xF: // MVN
		result = ^b
		logical = true
	}

	c.cpsr.n = bits.Bit(result, 31)
	c.cpsr.z = result == 0
	if logical {
		if shiftOp {
			c.cpsr.c = carryOut
		}
	} else {
		c.cpsr.c = carryOut
		c.cpsr.v = overflow
	}

	if writeResult {
		c.regs.set(rd, result)
	}
	return nil
}

// executeHiRegisterOps implements Thumb format 5: ADD/CMP/MOV over the full
// r0-r15 range (H1/H2 extend Rd/Rs into the high half) and BX/BLX(reg).
func (c *CPU) executeHiRegisterOps(opcode uint16) error {
	op := (opcode >> 8) & 0x3
	h1 := bits.Bit(uint32(opcode), 7)
	h2 := bits.Bit(uint32(opcode), 6)
	rs := uint32((opcode >> 3) & 0x7)
	if h2 {
		rs += 8
	}
	rd := uint32(opcode & 0x7)
	if h1 {
		rd += 8
	}

	switch op {
	case 0b00: // ADD
		result := c.readOperandReg(rd) + c.readOperandReg(rs)
		if rd == rPC {
			c.writePC(result &^ 1)
		} else {
			c.regs.set(rd, result)
		}
	case 0b01: // CMP
		a := c.readOperandReg(rd)
		b := c.readOperandReg(rs)
		result, carryOut, overflow := addWithCarry(a, ^b, true)
		c.cpsr.n = bits.Bit(result, 31)
		c.cpsr.z = result == 0
		c.cpsr.c = carryOut
		c.cpsr.v = overflow
	case 0b10: // MOV
		v := c.readOperandReg(rs)
		if rd == rPC {
			c.writePC(v &^ 1)
		} else {
			c.regs.set(rd, v)
		}
	case 0b11: // BX/BLX(reg)
		c.interwork(c.readOperandReg(rs))
	}

	return nil
}
