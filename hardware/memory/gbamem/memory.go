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

// Package gbamem implements the concrete byte-addressable memory surface the
// CPU core reads and writes through hardware/memory/bus.CPUBus. It owns
// region decoding; the core only ever sees typed read/write primitives.
package gbamem

import (
	"github.com/lj-hsu/goba/curated"
	"github.com/lj-hsu/goba/hardware/memory/memorymap"
	"github.com/lj-hsu/goba/logger"
)

// Memory is one []byte slice per GBA region, addressed little-endian
// throughout.
type Memory struct {
	bios    []byte
	ewram   []byte
	iwram   []byte
	io      []byte
	palette []byte
	vram    []byte
	oam     []byte
	rom     []byte
	sram    []byte

	// AbortOnIllegalAccess turns an access to an unmapped address into an
	// error instead of a silently discarded write / zero-value read.
	AbortOnIllegalAccess bool

	// Log receives a diagnostic entry whenever an illegal access is
	// tolerated rather than aborted.
	Log *logger.Logger
}

// NewMemory builds a memory surface with bios and rom loaded into their
// respective regions (copied, not retained). Regions not backed by either
// image start zeroed.
func NewMemory(bios []byte, rom []byte) *Memory {
	m := &Memory{
		bios:    make([]byte, memorymap.Size(memorymap.BIOS)),
		ewram:   make([]byte, memorymap.Size(memorymap.EWRAM)),
		iwram:   make([]byte, memorymap.Size(memorymap.IWRAM)),
		io:      make([]byte, memorymap.Size(memorymap.IO)),
		palette: make([]byte, memorymap.Size(memorymap.Palette)),
		vram:    make([]byte, memorymap.Size(memorymap.VRAM)),
		oam:     make([]byte, memorymap.Size(memorymap.OAM)),
		rom:     make([]byte, memorymap.Size(memorymap.ROM0)),
		sram:    make([]byte, memorymap.Size(memorymap.SRAM)),
	}
	copy(m.bios, bios)
	copy(m.rom, rom)
	return m
}

// SRAM exposes the backing slice of the SRAM region so a host can persist or
// restore a save image. The core never calls this.
func (m *Memory) SRAM() []byte {
	return m.sram
}

// slice returns the backing slice for the region addr falls in and the offset
// within it that addr refers to, or ok=false if addr is Unmapped. All three
// ROM mirrors return the primary ROM buffer.
func (m *Memory) slice(addr uint32) (data []byte, offset uint32, ok bool) {
	region := memorymap.Decode(addr)
	offset = addr - memorymap.Base(region)

	switch region {
	case memorymap.BIOS:
		return m.bios, offset, true
	case memorymap.EWRAM:
		return m.ewram, offset, true
	case memorymap.IWRAM:
		return m.iwram, offset, true
	case memorymap.IO:
		return m.io, offset, true
	case memorymap.Palette:
		return m.palette, offset, true
	case memorymap.VRAM:
		return m.vram, offset, true
	case memorymap.OAM:
		return m.oam, offset, true
	case memorymap.ROM0, memorymap.ROM1, memorymap.ROM2:
		return m.rom, offset % uint32(len(m.rom)), true
	case memorymap.SRAM:
		return m.sram, offset, true
	default:
		return nil, 0, false
	}
}

func (m *Memory) illegalAccess(addr uint32) error {
	if m.AbortOnIllegalAccess {
		return curated.Errorf("cpu: memory abort at %#08x", addr)
	}
	if m.Log != nil {
		m.Log.Logf(logger.Allow, "gbamem", "ignored access to unmapped address %#08x", addr)
	}
	return nil
}

// Read8 implements bus.CPUBus.
func (m *Memory) Read8(addr uint32) (uint8, error) {
	data, off, ok := m.slice(addr)
	if !ok || int(off) >= len(data) {
		return 0, m.illegalAccess(addr)
	}
	return data[off], nil
}

// Read16 implements bus.CPUBus. addr is expected 2-byte aligned by the
// caller; this layer does not itself enforce alignment.
func (m *Memory) Read16(addr uint32) (uint16, error) {
	data, off, ok := m.slice(addr)
	if !ok || int(off)+1 >= len(data) {
		return 0, m.illegalAccess(addr)
	}
	return uint16(data[off]) | uint16(data[off+1])<<8, nil
}

// Read32 implements bus.CPUBus.
func (m *Memory) Read32(addr uint32) (uint32, error) {
	data, off, ok := m.slice(addr)
	if !ok || int(off)+3 >= len(data) {
		return 0, m.illegalAccess(addr)
	}
	return uint32(data[off]) |
		uint32(data[off+1])<<8 |
		uint32(data[off+2])<<16 |
		uint32(data[off+3])<<24, nil
}

// Write8 implements bus.CPUBus.
func (m *Memory) Write8(addr uint32, v uint8) error {
	data, off, ok := m.slice(addr)
	if !ok || int(off) >= len(data) {
		return m.illegalAccess(addr)
	}
	data[off] = v
	return nil
}

// Write16 implements bus.CPUBus.
func (m *Memory) Write16(addr uint32, v uint16) error {
	data, off, ok := m.slice(addr)
	if !ok || int(off)+1 >= len(data) {
		return m.illegalAccess(addr)
	}
	data[off] = uint8(v)
	data[off+1] = uint8(v >> 8)
	return nil
}

// Write32 implements bus.CPUBus.
func (m *Memory) Write32(addr uint32, v uint32) error {
	data, off, ok := m.slice(addr)
	if !ok || int(off)+3 >= len(data) {
		return m.illegalAccess(addr)
	}
	data[off] = uint8(v)
	data[off+1] = uint8(v >> 8)
	data[off+2] = uint8(v >> 16)
	data[off+3] = uint8(v >> 24)
	return nil
}

// Peek implements bus.DebugBus: a read with no illegal-access side effects.
func (m *Memory) Peek(addr uint32) (uint8, error) {
	data, off, ok := m.slice(addr)
	if !ok || int(off) >= len(data) {
		return 0, curated.Errorf("cpu: memory abort at %#08x", addr)
	}
	return data[off], nil
}

// Poke implements bus.DebugBus: a write with no illegal-access side effects.
func (m *Memory) Poke(addr uint32, v uint8) error {
	data, off, ok := m.slice(addr)
	if !ok || int(off) >= len(data) {
		return curated.Errorf("cpu: memory abort at %#08x", addr)
	}
	data[off] = v
	return nil
}
