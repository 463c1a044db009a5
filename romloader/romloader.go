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

// Package romloader reads a BIOS image and a cartridge ROM image from disk
// into the byte slices hardware/memory/gbamem.NewMemory is built from. It is
// deliberately thin: no header parsing, no save-type detection, no mapper
// logic -- the core only ever needs two flat buffers and an entry point.
package romloader

import (
	"os"

	"github.com/lj-hsu/goba/curated"
)

// pattern constants for curated.Is/curated.Has callers.
const (
	ErrBIOSNotFound = "romloader: bios file not found (%s)"
	ErrROMNotFound  = "romloader: rom file not found (%s)"
	ErrROMTooLarge  = "romloader: rom file too large (%s, %d bytes)"
)

// maxROMSize is the largest image a single ROM0/1/2 mirror window can back,
// per the GBA cartridge address space (hardware/memory/memorymap.ROM0).
const maxROMSize = 32 * 1024 * 1024

// LoadBIOS reads the BIOS image at path in full.
func LoadBIOS(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ErrBIOSNotFound, path)
	}
	return data, nil
}

// LoadROM reads the cartridge image at path in full. It refuses an image
// larger than the address space a ROM mirror can represent; it does not
// otherwise inspect the image (no header, no mapper, no save-type sniffing).
func LoadROM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ErrROMNotFound, path)
	}
	if len(data) > maxROMSize {
		return nil, curated.Errorf(ErrROMTooLarge, path, len(data))
	}
	return data, nil
}
