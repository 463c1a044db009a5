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

package cmd

import (
	"github.com/lj-hsu/goba/hardware/cpu"
	"github.com/lj-hsu/goba/hardware/instance"
	"github.com/lj-hsu/goba/hardware/memory/gbamem"
	"github.com/lj-hsu/goba/logger"
	"github.com/lj-hsu/goba/romloader"
)

// resetVector is where the core starts if SkipBIOSIntro is off: the real
// ARMv4T reset vector, which runs the BIOS's own startup and intro sequence.
const resetVector = 0x00000000

// romEntry is where the core starts if SkipBIOSIntro is on: the cartridge's
// own entry point, bypassing the BIOS entirely.
const romEntry = 0x08000000

// machine bundles the memory surface, the core, and the logger the CLI wires
// them through.
type machine struct {
	mem *gbamem.Memory
	cpu *cpu.CPU
	log *logger.Logger
}

// newMachine loads biosPath and romPath, builds the memory surface and CPU
// core per ins's preferences, and returns the assembled machine ready to
// Step(). ins is the teacher's instance-per-run pattern: it carries the
// preferences (and anything else that should vary between concurrent runs of
// the core) so the machine itself never has to reach for global state.
func newMachine(biosPath, romPath string, ins *instance.Instance) (*machine, error) {
	bios, err := romloader.LoadBIOS(biosPath)
	if err != nil {
		return nil, err
	}
	rom, err := romloader.LoadROM(romPath)
	if err != nil {
		return nil, err
	}

	prefs := ins.Prefs

	mem := gbamem.NewMemory(bios, rom)
	mem.AbortOnIllegalAccess = prefs.AbortOnIllegalAccess.Get()

	log := logger.NewLogger(1024)
	mem.Log = log

	// on a real reset the core enters Supervisor mode with IRQ and FIQ both
	// disabled (CPSR 0xD3); skipping the BIOS starts as a game would run,
	// System mode with both enabled.
	entry := uint32(resetVector)
	initialCPSR := uint32(cpu.Supervisor) | 1<<6 | 1<<7
	if prefs.SkipBIOSIntro.Get() {
		entry = romEntry
		initialCPSR = uint32(cpu.System)
	}

	c := cpu.New(mem, entry, initialCPSR)
	c.Log = log

	return &machine{mem: mem, cpu: c, log: log}, nil
}
