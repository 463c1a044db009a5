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

// Package cmd implements the goba CLI: a thin driver over romloader,
// hardware/preferences, hardware/memory/gbamem and hardware/cpu. It owns no
// emulation semantics of its own -- it loads images, builds the machine, and
// asks the core to step.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goba",
	Short: "goba is a GBA ARMv4T instruction-engine driver",
}

// Execute runs the command tree. Errors are printed by cobra; the caller is
// only responsible for translating a non-nil return into a process exit
// code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd, stepCmd)
}
