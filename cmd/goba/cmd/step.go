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
	"fmt"
	"io"
	"os"

	"github.com/lj-hsu/goba/hardware/instance"
	"github.com/lj-hsu/goba/hardware/memory/bus"
	"github.com/spf13/cobra"
)

var stepBIOS, stepROM string
var stepSteps int

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "single-step, logging a trace line per instruction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := instance.NewInstance()
		if err != nil {
			return err
		}

		m, err := newMachine(stepBIOS, stepROM, ins)
		if err != nil {
			return err
		}

		var dbg bus.DebugBus = m.mem

		for i := 0; i < stepSteps; i++ {
			traceLine(os.Stdout, m, dbg)
			if err := m.cpu.Step(); err != nil {
				fmt.Fprintf(os.Stdout, "halted at step %d: %v\n", i, err)
				break
			}
		}

		dumpRegisters(os.Stdout, m)
		return nil
	},
}

func init() {
	stepCmd.Flags().StringVar(&stepBIOS, "bios", "", "path to the BIOS image")
	stepCmd.Flags().StringVar(&stepROM, "rom", "", "path to the cartridge ROM image")
	stepCmd.Flags().IntVar(&stepSteps, "steps", 1, "number of instructions to single-step")
	stepCmd.MarkFlagRequired("bios")
	stepCmd.MarkFlagRequired("rom")
}

// traceLine writes one "pc mode width opcode" line ahead of executing the
// instruction at the current PC. It peeks the raw opcode via bus.DebugBus
// rather than going through the CPU's own fetch path, so the trace never
// perturbs the core's pipeline-offset bookkeeping.
func traceLine(w io.Writer, m *machine, dbg bus.DebugBus) {
	pc := m.cpu.Reg(15)
	width := "ARM"
	size := uint32(4)
	if m.cpu.CPSR()&(1<<5) != 0 {
		width = "THUMB"
		size = 2
	}

	var opcode uint32
	if dbg != nil {
		for i := uint32(0); i < size; i++ {
			b, err := dbg.Peek(pc + i)
			if err != nil {
				opcode = 0
				break
			}
			opcode |= uint32(b) << (8 * i)
		}
	}

	fmt.Fprintf(w, "%#08x [%s] %s %#0*x\n", pc, width, mode(m), int(size*2)+2, opcode)
}

func mode(m *machine) string {
	return fmt.Sprintf("%#02x", m.cpu.CPSR()&0x1f)
}
