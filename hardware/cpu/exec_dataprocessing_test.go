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
	"testing"

	"github.com/lj-hsu/goba/test"
)

func newTestCPU() *CPU {
	mem := newFakeMemory()
	return New(mem, 0, 0x00000010)
}

func TestExecuteDataProcessingLogicalOps(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 0xF0F0F0F0)
	c.SetReg(2, 0x0FF00FF0)

	// ANDS r0, r1, r2
	test.ExpectSuccess(t, c.executeDataProcessing(0xE0110002))
	test.ExpectEquality(t, c.Reg(0), uint32(0x00F000F0))
	test.ExpectEquality(t, c.cpsr.z, false)

	// EORS r0, r1, r2
	test.ExpectSuccess(t, c.executeDataProcessing(0xE0310002))
	test.ExpectEquality(t, c.Reg(0), uint32(0xFF00FF00))

	// ORR r0, r1, r2 (no S)
	test.ExpectSuccess(t, c.executeDataProcessing(0xE1810002))
	test.ExpectEquality(t, c.Reg(0), uint32(0xFFF0FFF0))

	// BIC r0, r1, r2
	test.ExpectSuccess(t, c.executeDataProcessing(0xE1C10002))
	test.ExpectEquality(t, c.Reg(0), uint32(0xF0000F00))

	// MVN r0, r2
	test.ExpectSuccess(t, c.executeDataProcessing(0xE1E00002))
	test.ExpectEquality(t, c.Reg(0), ^uint32(0x0FF00FF0))
}

func TestExecuteDataProcessingArithmeticCarryChain(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 0xFFFFFFFF)
	c.SetReg(2, 1)

	// ADDS r0, r1, r2 -- wraps to zero, sets C and Z
	test.ExpectSuccess(t, c.executeDataProcessing(0xE0910002))
	test.ExpectEquality(t, c.Reg(0), uint32(0))
	test.ExpectEquality(t, c.cpsr.z, true)
	test.ExpectEquality(t, c.cpsr.c, true)

	// ADCS r0, r1, r2 with carry in set: 0xFFFFFFFF + 0 + 1 = 0, C set
	c.SetReg(1, 0xFFFFFFFF)
	c.SetReg(2, 0)
	test.ExpectSuccess(t, c.executeDataProcessing(0xE0B10002))
	test.ExpectEquality(t, c.Reg(0), uint32(0))
	test.ExpectEquality(t, c.cpsr.c, true)

	// SBCS r0, r1, r2 with carry in set (no borrow): 5 - 2 - 0 = 3
	c.cpsr.c = true
	c.SetReg(1, 5)
	c.SetReg(2, 2)
	test.ExpectSuccess(t, c.executeDataProcessing(0xE0D10002))
	test.ExpectEquality(t, c.Reg(0), uint32(3))
}

func TestExecuteDataProcessingCompareOpsDiscardResult(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x12345678)
	c.SetReg(1, 5)
	c.SetReg(2, 5)

	// CMP r1, r2 -- S implied by the opcode slot, Rd field ignored, r0 untouched
	test.ExpectSuccess(t, c.executeDataProcessing(0xE1510002))
	test.ExpectEquality(t, c.Reg(0), uint32(0x12345678))
	test.ExpectEquality(t, c.cpsr.z, true)

	// TST r1, #0 -- an immediate operand that clears everything
	test.ExpectSuccess(t, c.executeDataProcessing(0xE3110000))
	test.ExpectEquality(t, c.cpsr.z, true)
}

func TestExecuteDataProcessingMOVIntoPCFlushesPipeline(t *testing.T) {
	c := newTestCPU()
	// MOV pc, #0x10 (immediate operand 2, imm8=0x10, rotate=0)
	word := uint32(0xE3A0F000) | 0x10
	test.ExpectSuccess(t, c.executeDataProcessing(word))
	test.ExpectEquality(t, c.Reg(rPC), uint32(0x10))
	test.ExpectEquality(t, c.pcWritten, true)
}

func TestExecuteDataProcessingSFlagRestoresCPSRFromSPSRWhenRdIsPC(t *testing.T) {
	c := newTestCPU()
	c.SetCPSR(uint32(Supervisor))
	spsr := c.regs.spsr()
	spsr.mode = User
	spsr.n = true
	c.SetReg(14, 0x08000100) // LR

	// MOVS pc, lr: opcode MOV(0xD), S set, Rd=15, Rm=14 register operand
	word := uint32(0xE1B0F00E)
	test.ExpectSuccess(t, c.executeDataProcessing(word))
	test.ExpectEquality(t, c.cpsr.mode, User)
	test.ExpectEquality(t, c.cpsr.n, true)
}

func TestExecutePSRTransferMRS(t *testing.T) {
	c := newTestCPU()
	c.cpsr.n = true
	c.cpsr.z = true

	// MRS r0, CPSR
	word := uint32(0xE10F0000)
	test.ExpectSuccess(t, c.executeDataProcessing(word))
	test.ExpectEquality(t, c.Reg(0), c.cpsr.pack())
}

func TestExecutePSRTransferMSRImmediateFlagsOnly(t *testing.T) {
	c := newTestCPU()
	c.cpsr.n = false

	// MSR CPSR_flg, #0x0E ROR 4 -> 0xE0000000 (mask field=8: sets N, Z, C, leaves V clear)
	word := uint32(0xE328F20E)
	test.ExpectSuccess(t, c.executeDataProcessing(word))
	test.ExpectEquality(t, c.cpsr.n, true)
	test.ExpectEquality(t, c.cpsr.z, true)
	test.ExpectEquality(t, c.cpsr.c, true)
	test.ExpectEquality(t, c.cpsr.v, false)
}

func TestExecutePSRTransferMSRPrivilegedModeSwitch(t *testing.T) {
	c := newTestCPU()
	c.SetCPSR(uint32(Supervisor))
	c.SetReg(0, uint32(System))

	// MSR CPSR_c, r0 (mask field=1, control byte only)
	word := uint32(0xE121F000)
	test.ExpectSuccess(t, c.executeDataProcessing(word))
	test.ExpectEquality(t, c.cpsr.mode, System)
}

func TestExecutePSRTransferMSRIllegalModeErrors(t *testing.T) {
	c := newTestCPU()
	c.SetCPSR(uint32(Supervisor))
	c.SetReg(0, 0x00)

	word := uint32(0xE121F000)
	err := c.executeDataProcessing(word)
	test.ExpectFailure(t, err)
}
