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
	"strings"

	"github.com/lj-hsu/goba/hardware/cpu/bits"
)

// status is the 32-bit CPSR/SPSR layout: condition flags, the Thumb bit,
// interrupt disables, and the mode field. Unlike a flat uint32, flags are
// kept as named bools so flag derivation always happens over an explicit
// bit position, never a native signed comparison.
type status struct {
	n, z, c, v bool
	irqDisable bool
	fiqDisable bool
	thumb      bool
	mode       Mode
}

// pack renders the status as the 32-bit CPSR/SPSR bit pattern.
func (s status) pack() uint32 {
	var p uint32
	if s.n {
		p |= 1 << 31
	}
	if s.z {
		p |= 1 << 30
	}
	if s.c {
		p |= 1 << 29
	}
	if s.v {
		p |= 1 << 28
	}
	if s.irqDisable {
		p |= 1 << 7
	}
	if s.fiqDisable {
		p |= 1 << 6
	}
	if s.thumb {
		p |= 1 << 5
	}
	p |= uint32(s.mode) & 0x1F
	return p
}

// unpackStatus builds a status from a 32-bit CPSR/SPSR bit pattern.
func unpackStatus(v uint32) status {
	return status{
		n:          bits.Bit(v, 31),
		z:          bits.Bit(v, 30),
		c:          bits.Bit(v, 29),
		v:          bits.Bit(v, 28),
		irqDisable: bits.Bit(v, 7),
		fiqDisable: bits.Bit(v, 6),
		thumb:      bits.Bit(v, 5),
		mode:       Mode(v & 0x1F),
	}
}

// setField overwrites s with the bits of src selected by a PSR transfer's
// fsxc field mask: bit 3 is the flags byte [31:24], bit 2 the status byte
// [23:16], bit 1 the extension byte [15:8], and bit 0 the control byte
// [7:0]. The status and extension bytes hold no state in this model, so
// mask bits 2 and 1 are ignored. privileged gates whether the control
// byte (mode, T, interrupt disables) may be written at all: unprivileged
// (User mode) MSR may only ever touch the flags byte.
func (s *status) setField(mask uint32, src uint32, privileged bool) {
	cur := s.pack()

	if mask&0x8 != 0 {
		cur = (cur &^ 0xFF000000) | (src & 0xFF000000)
	}
	if privileged {
		if mask&0x1 != 0 {
			cur = (cur &^ 0x000000FF) | (src & 0x000000FF)
		}
	}

	*s = unpackStatus(cur)
}

func (s status) String() string {
	var b strings.Builder
	writeFlag(&b, s.n, 'N', 'n')
	writeFlag(&b, s.z, 'Z', 'z')
	writeFlag(&b, s.c, 'C', 'c')
	writeFlag(&b, s.v, 'V', 'v')
	writeFlag(&b, s.irqDisable, 'I', 'i')
	writeFlag(&b, s.fiqDisable, 'F', 'f')
	writeFlag(&b, s.thumb, 'T', 't')
	b.WriteByte(' ')
	b.WriteString(s.mode.String())
	return b.String()
}

func writeFlag(b *strings.Builder, set bool, on, off rune) {
	if set {
		b.WriteRune(on)
	} else {
		b.WriteRune(off)
	}
}

// addWithCarry implements the ARM ALU's shared 33-bit add, from which ADD,
// ADC, SUB, SBC, RSB and RSC flag derivation all follow (subtraction is
// addition of the bitwise-inverted operand with an appropriate carry-in).
// carryOut and overflow are derived from explicit bit positions of the
// operands and result, never from a native signed comparison.
func addWithCarry(a, b uint32, carryIn bool) (result uint32, carryOut, overflow bool) {
	var cin uint64
	if carryIn {
		cin = 1
	}
	sum := uint64(a) + uint64(b) + cin
	result = uint32(sum)
	carryOut = sum > 0xFFFFFFFF
	overflow = bits.Bit(a, 31) == bits.Bit(b, 31) && bits.Bit(result, 31) != bits.Bit(a, 31)
	return
}
