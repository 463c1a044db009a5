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

func TestExecuteLoadAddressFromPC(t *testing.T) {
	c := newThumbTestCPU()
	c.SetReg(rPC, 0x03000101) // unaligned; PC relative forms always word-align first

	// ADD r0, PC, #4
	opcode := uint16(0xA001)
	test.ExpectSuccess(t, c.executeLoadAddress(opcode))
	test.ExpectEquality(t, c.Reg(0), uint32((0x03000101+4)&^0x3)+4)
}

func TestExecuteLoadAddressFromSP(t *testing.T) {
	c := newThumbTestCPU()
	c.SetReg(rSP, 0x03007FF0)

	// ADD r0, SP, #4
	opcode := uint16(0xA801)
	test.ExpectSuccess(t, c.executeLoadAddress(opcode))
	test.ExpectEquality(t, c.Reg(0), uint32(0x03007FF4))
}

func TestExecuteAddOffsetToSP(t *testing.T) {
	c := newThumbTestCPU()
	c.SetReg(rSP, 0x03008000)

	// SUB SP, #16
	opcode := uint16(0xB084)
	test.ExpectSuccess(t, c.executeAddOffsetToSP(opcode))
	test.ExpectEquality(t, c.Reg(rSP), uint32(0x03007FF0))

	// ADD SP, #16
	opcode = 0xB004
	test.ExpectSuccess(t, c.executeAddOffsetToSP(opcode))
	test.ExpectEquality(t, c.Reg(rSP), uint32(0x03008000))
}

func TestExecutePushPopRegistersBasic(t *testing.T) {
	c := newThumbTestCPU()
	c.SetReg(rSP, 0x03008000)
	c.SetReg(0, 0x11)
	c.SetReg(1, 0x22)
	c.SetReg(rLR, 0x08000123)

	// PUSH {r0, r1, lr}
	test.ExpectSuccess(t, c.executePushPopRegisters(0xB503))
	test.ExpectEquality(t, c.Reg(rSP), uint32(0x03008000-12))

	mem := c.mem.(*fakeMemory)
	v0, _ := mem.Read32(0x03008000 - 12)
	v1, _ := mem.Read32(0x03008000 - 8)
	vlr, _ := mem.Read32(0x03008000 - 4)
	test.ExpectEquality(t, v0, uint32(0x11))
	test.ExpectEquality(t, v1, uint32(0x22))
	test.ExpectEquality(t, vlr, uint32(0x08000123))

	// POP {r0, r1, pc}
	c.SetReg(0, 0)
	c.SetReg(1, 0)
	mem.Write32(0x03008000-4, 0x08000201)
	test.ExpectSuccess(t, c.executePushPopRegisters(0xBD03))
	test.ExpectEquality(t, c.Reg(rSP), uint32(0x03008000))
	test.ExpectEquality(t, c.Reg(0), uint32(0x11))
	test.ExpectEquality(t, c.Reg(1), uint32(0x22))
	test.ExpectEquality(t, c.Reg(rPC), uint32(0x08000200))
}

func TestExecuteMultipleLoadStoreBasic(t *testing.T) {
	c := newThumbTestCPU()
	c.SetReg(0, 0x03000000) // Rb
	c.SetReg(1, 0xAAAA)
	c.SetReg(2, 0xBBBB)

	// STMIA r0!, {r1, r2}
	test.ExpectSuccess(t, c.executeMultipleLoadStore(0xC006))
	test.ExpectEquality(t, c.Reg(0), uint32(0x03000008))

	mem := c.mem.(*fakeMemory)
	v1, _ := mem.Read32(0x03000000)
	v2, _ := mem.Read32(0x03000004)
	test.ExpectEquality(t, v1, uint32(0xAAAA))
	test.ExpectEquality(t, v2, uint32(0xBBBB))
}

func TestExecuteMultipleLoadStoreBaseInListSuppressesWriteback(t *testing.T) {
	c := newThumbTestCPU()
	mem := c.mem.(*fakeMemory)
	mem.Write32(0x03000000, 0x03000100)
	c.SetReg(0, 0x03000000) // Rb, also in the list

	// LDMIA r0!, {r0}
	test.ExpectSuccess(t, c.executeMultipleLoadStore(0xC801))
	test.ExpectEquality(t, c.Reg(0), uint32(0x03000100))
}
