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

// Package cpu implements the ARMv4T instruction execution engine: condition
// evaluation, the barrel shifter, the ARM and Thumb decoders/executors, and
// the step loop that ties them together. It knows nothing about what backs
// the memory it reads and writes (hardware/memory/bus.CPUBus) or about the
// host driving it (cmd/goba); it is a pure semantic interpreter.
package cpu

import (
	"github.com/lj-hsu/goba/curated"
	"github.com/lj-hsu/goba/hardware/memory/bus"
	"github.com/lj-hsu/goba/logger"
)

// exception vectors, fixed by the ARMv4T architecture.
const (
	vectorUndefined  = 0x00000004
	vectorSWI        = 0x00000008
	vectorDataAbort  = 0x00000010
	vectorPrefetch   = 0x0000000C
	vectorIRQ        = 0x00000018
)

// CPU is the ARMv4T core: register file, CPSR/SPSR banks, and the decode
// loop. It is constructed over a memory surface and an entry point and is
// driven one Step() at a time by the host.
type CPU struct {
	mem  bus.CPUBus
	regs registers
	cpsr status

	// Log receives decode diagnostics: undefined-instruction exceptions,
	// prefetch and data aborts, and SWI entry. Illegal accesses that the
	// memory surface tolerates never reach the core and are not logged here.
	// Nil is treated the same as a Logger that is never allowed to log.
	Log *logger.Logger

	// pcWritten is set by any operation that writes r15 directly (branch,
	// BX, data-processing into PC, LDR/LDM into PC, exception entry). The
	// step loop consults it to decide whether to apply the default
	// PC-advances-by-instruction-width behaviour.
	pcWritten bool

	// halted is true once the core has hit an unrecoverable decode error.
	// Step continues to return the same error without re-executing.
	halted   bool
	haltErr  error
}

// New constructs a CPU over mem, with the register file and CPSR seeded from
// entryPC and initialCPSR. initialCPSR is expected to carry a valid mode in
// its low 5 bits; New does not validate this, since a host may deliberately
// start in any mode.
func New(mem bus.CPUBus, entryPC uint32, initialCPSR uint32) *CPU {
	c := &CPU{mem: mem}
	c.cpsr = unpackStatus(initialCPSR)
	c.regs.mode = c.cpsr.mode
	c.regs.set(rPC, entryPC)
	return c
}

// CPSR returns the current CPSR as a packed 32-bit value.
func (c *CPU) CPSR() uint32 {
	return c.cpsr.pack()
}

// SetCPSR installs a full CPSR value, switching register banks if the mode
// changed.
func (c *CPU) SetCPSR(v uint32) {
	next := unpackStatus(v)
	c.regs.switchMode(next.mode)
	c.cpsr = next
}

// Reg returns the current-mode value of register n (0-15), with no pipeline
// offset applied.
func (c *CPU) Reg(n uint32) uint32 {
	return c.regs.get(n)
}

// SetReg writes the current-mode value of register n (0-15).
func (c *CPU) SetReg(n uint32, v uint32) {
	c.regs.set(n, v)
}

// BankedReg returns what register n holds in mode m, without disturbing the
// live view. Used for snapshotting every banked copy.
func (c *CPU) BankedReg(m Mode, n uint32) uint32 {
	return c.regs.bankedValue(m, n)
}

// SPSR returns the packed SPSR of the current mode and whether one exists
// (User and System modes have none).
func (c *CPU) SPSR() (uint32, bool) {
	s := c.regs.spsr()
	if s == nil {
		return 0, false
	}
	return s.pack(), true
}

func (c *CPU) log(tag string, detail interface{}) {
	if c.Log != nil {
		c.Log.Log(logger.Allow, tag, detail)
	}
}

// pc reads r15 with the architectural pipeline offset applied: +8 in ARM
// state, +4 in Thumb state.
func (c *CPU) pc() uint32 {
	if c.cpsr.thumb {
		return c.regs.get(rPC) + 4
	}
	return c.regs.get(rPC) + 8
}

// readOperandReg reads register n as a data-processing or address operand,
// applying the pipeline offset when n is r15.
func (c *CPU) readOperandReg(n uint32) uint32 {
	if n == rPC {
		return c.pc()
	}
	return c.regs.get(n)
}

// writePC sets r15 directly (branch, BX, data-processing/load into PC) and
// suppresses the step loop's default post-execution advance.
func (c *CPU) writePC(v uint32) {
	c.regs.set(rPC, v)
	c.pcWritten = true
}

// interwork is writePC plus the bit-0 state switch used by BX, POP{PC},
// LDM{...,PC} and LDR into PC.
func (c *CPU) interwork(target uint32) {
	c.cpsr.thumb = target&1 != 0
	if c.cpsr.thumb {
		c.writePC(target &^ 1)
	} else {
		c.writePC(target &^ 3)
	}
}

// enterException performs the synchronous ARMv4T exception entry sequence:
// save the return address into the banked LR, save CPSR into the banked
// SPSR, switch mode, clear T, set the interrupt disables the architecture
// requires, and jump to the vector.
func (c *CPU) enterException(mode Mode, vector uint32, returnAddress uint32, disableIRQ bool, disableFIQ bool) {
	old := c.cpsr

	c.regs.switchMode(mode)
	c.cpsr.mode = mode
	*c.regs.spsr() = old

	c.regs.set(rLR, returnAddress)

	c.cpsr.thumb = false
	if disableIRQ {
		c.cpsr.irqDisable = true
	}
	if disableFIQ {
		c.cpsr.fiqDisable = true
	}

	c.writePC(vector)
}

// Step executes exactly one instruction: it reads CPSR.T to choose the
// fetch width, fetches at the current PC, decodes and executes, then
// advances PC by the instruction width unless the instruction itself wrote
// PC. A host-driven instruction limit (if any) lives in cmd/goba, not here:
// the core never terminates itself on a heuristic.
func (c *CPU) Step() error {
	if c.halted {
		return c.haltErr
	}

	c.pcWritten = false
	pc := c.regs.get(rPC)

	var err error
	if c.cpsr.thumb {
		err = c.stepThumb(pc)
	} else {
		err = c.stepARM(pc)
	}

	if err != nil {
		c.halted = true
		c.haltErr = err
		return err
	}

	if !c.pcWritten {
		if c.cpsr.thumb {
			c.regs.set(rPC, pc+2)
		} else {
			c.regs.set(rPC, pc+4)
		}
	}

	return nil
}

// prefetchAbort takes the ARMv4T prefetch-abort exception: the memory
// surface refused the instruction fetch at pc. This does not halt the
// core -- it is architecturally recoverable, same as a data abort.
func (c *CPU) prefetchAbort(pc uint32) error {
	c.log("cpu", curated.Errorf(ErrMemoryAbort, pc))
	c.enterException(Abort, vectorPrefetch, pc+4, false, false)
	return nil
}

// decoderInvariant surfaces a bug in the decoder itself -- a state that
// well-formed ARMv4T encodings should never reach.
func decoderInvariant(detail string) error {
	return curated.Errorf(ErrDecoderInvariant, detail)
}
