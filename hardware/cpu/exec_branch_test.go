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

func TestExecuteBranchForward(t *testing.T) {
	c := newTestCPU()
	c.SetReg(rPC, 0x08000000)

	// B #0x20 (word offset 0x8, encoded as a 24-bit signed word count)
	word := uint32(0xEA000008)
	test.ExpectSuccess(t, c.executeBranch(word))
	test.ExpectEquality(t, c.Reg(rPC), uint32(0x08000000+8+0x20))
	test.ExpectEquality(t, c.pcWritten, true)
}

func TestExecuteBranchBackwardSignExtends(t *testing.T) {
	c := newTestCPU()
	c.SetReg(rPC, 0x08000100)

	// B #-8 (word offset -2, encoded as 0xFFFFFE)
	word := uint32(0xEAFFFFFE)
	test.ExpectSuccess(t, c.executeBranch(word))
	test.ExpectEquality(t, c.Reg(rPC), uint32(0x08000100+8-8))
}

func TestExecuteBranchWithLinkSetsLR(t *testing.T) {
	c := newTestCPU()
	c.SetReg(rPC, 0x08000000)

	// BL #0x20
	word := uint32(0xEB000008)
	test.ExpectSuccess(t, c.executeBranch(word))
	test.ExpectEquality(t, c.Reg(rLR), uint32(0x08000000+4))
	test.ExpectEquality(t, c.Reg(rPC), uint32(0x08000000+8+0x20))
}

func TestExecuteBranchExchangeToThumb(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x08000101)

	// BX r0
	word := uint32(0xE12FFF10)
	test.ExpectSuccess(t, c.executeBranchExchange(word))
	test.ExpectEquality(t, c.Reg(rPC), uint32(0x08000100))
	test.ExpectEquality(t, c.cpsr.thumb, true)
}

func TestExecuteSWIEntersSupervisorMode(t *testing.T) {
	c := newTestCPU()
	c.SetReg(rPC, 0x08000000)

	word := uint32(0xEF000000) // SWI #0
	test.ExpectSuccess(t, c.executeSWI(word))
	test.ExpectEquality(t, c.cpsr.mode, Supervisor)
	test.ExpectEquality(t, c.Reg(rLR), uint32(0x08000000+4))
	test.ExpectEquality(t, c.cpsr.irqDisable, true)
	test.ExpectEquality(t, c.cpsr.thumb, false)
}

func TestExecuteUndefinedEntersUndefinedMode(t *testing.T) {
	c := newTestCPU()

	test.ExpectSuccess(t, c.executeUndefined(0x08000000, 4))
	test.ExpectEquality(t, c.cpsr.mode, Undefined)
	test.ExpectEquality(t, c.Reg(rLR), uint32(0x08000004))
}

func TestExecuteUndefinedFromThumbUsesPCPlus2(t *testing.T) {
	c := newThumbTestCPU()

	test.ExpectSuccess(t, c.executeUndefined(0x08000000, 2))
	test.ExpectEquality(t, c.cpsr.mode, Undefined)
	test.ExpectEquality(t, c.Reg(rLR), uint32(0x08000002))
}
