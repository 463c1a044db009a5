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

// Package bus defines the memory bus concept. For an explanation see the
// gbamem package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU core. The concrete memory surface (gbamem.Memory) implements this
// interface and maps the read/write address to the correct region -- meaning
// that the core need not care which region it is addressing.
type CPUBus interface {
	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)
	Read32(address uint32) (uint32, error)

	Write8(address uint32, data uint8) error
	Write16(address uint32, data uint16) error
	Write32(address uint32, data uint32) error
}

// DebugBus defines the meta-operations for the memory surface. Think of
// these as "debugging" functions: operations outside of the normal
// instruction-execution path of the core, used only by tests and by the CLI's
// step trace.
type DebugBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}
