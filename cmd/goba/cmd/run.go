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
	"github.com/spf13/cobra"
)

var runBIOS, runROM string
var runSteps int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run until a fatal exception or the step ceiling, then dump registers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := instance.NewInstance()
		if err != nil {
			return err
		}

		steps := runSteps
		if steps == 0 {
			steps = ins.Prefs.CycleLimit.Get()
		}

		m, err := newMachine(runBIOS, runROM, ins)
		if err != nil {
			return err
		}

		var stepErr error
		executed := 0
		for steps <= 0 || executed < steps {
			if stepErr = m.cpu.Step(); stepErr != nil {
				break
			}
			executed++
		}

		dumpRegisters(os.Stdout, m)
		if stepErr != nil {
			fmt.Fprintf(os.Stdout, "halted after %d steps: %v\n", executed, stepErr)
		} else {
			fmt.Fprintf(os.Stdout, "ran %d steps\n", executed)
		}

		m.log.Tail(os.Stderr, 32)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runBIOS, "bios", "", "path to the BIOS image")
	runCmd.Flags().StringVar(&runROM, "rom", "", "path to the cartridge ROM image")
	runCmd.Flags().IntVar(&runSteps, "steps", 0, "step ceiling (0 = use the CycleLimit preference, still 0 = unbounded)")
	runCmd.MarkFlagRequired("bios")
	runCmd.MarkFlagRequired("rom")
}

// dumpRegisters writes the current-mode register file and CPSR to w.
func dumpRegisters(w io.Writer, m *machine) {
	for n := uint32(0); n < 16; n++ {
		fmt.Fprintf(w, "r%-2d = %#08x\n", n, m.cpu.Reg(n))
	}
	fmt.Fprintf(w, "cpsr = %#08x\n", m.cpu.CPSR())
}
