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

import "github.com/lj-hsu/goba/hardware/cpu/bits"

// shiftKind identifies one of the four barrel shifter operations encoded in
// a data-processing operand 2.
type shiftKind uint8

const (
	shiftLSL shiftKind = iota
	shiftLSR
	shiftASR
	shiftROR
)

// barrelShift produces (result, carry_out) for the four shift kinds, given
// an explicit amount and the incoming carry flag (consulted only for LSL #0
// and ROR #0/RRX). isImmediate distinguishes an encoded #0 amount (LSR/ASR
// #0 mean #32, ROR #0 means RRX) from a register-specified amount of zero
// (which always means "no shift, carry unchanged").
func barrelShift(kind shiftKind, source uint32, amount uint32, isImmediate bool, carryIn bool) (result uint32, carryOut bool) {
	if !isImmediate && amount == 0 {
		return source, carryIn
	}

	switch kind {
	case shiftLSL:
		return shiftLSLOp(source, amount, carryIn)
	case shiftLSR:
		return shiftLSROp(source, amount, isImmediate, carryIn)
	case shiftASR:
		return shiftASROp(source, amount, isImmediate, carryIn)
	case shiftROR:
		return shiftROROp(source, amount, isImmediate, carryIn)
	}
	return source, carryIn
}

func shiftLSLOp(source uint32, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return source, carryIn
	case amount < 32:
		return source << amount, bits.Bit(source, uint(32-amount))
	case amount == 32:
		return 0, bits.Bit(source, 0)
	default:
		return 0, false
	}
}

func shiftLSROp(source uint32, amount uint32, isImmediate bool, carryIn bool) (uint32, bool) {
	if isImmediate && amount == 0 {
		amount = 32
	}
	switch {
	case amount == 0:
		return source, carryIn
	case amount < 32:
		return source >> amount, bits.Bit(source, uint(amount-1))
	case amount == 32:
		return 0, bits.Bit(source, 31)
	default:
		return 0, false
	}
}

func shiftASROp(source uint32, amount uint32, isImmediate bool, carryIn bool) (uint32, bool) {
	if isImmediate && amount == 0 {
		amount = 32
	}
	signed := int32(source)
	switch {
	case amount == 0:
		return source, carryIn
	case amount < 32:
		return uint32(signed >> amount), bits.Bit(source, uint(amount-1))
	default:
		if bits.Bit(source, 31) {
			return 0xFFFFFFFF, true
		}
		return 0, false
	}
}

func shiftROROp(source uint32, amount uint32, isImmediate bool, carryIn bool) (uint32, bool) {
	if isImmediate && amount == 0 {
		// RRX: rotate right through carry by one bit.
		var c uint32
		if carryIn {
			c = 1
		}
		result := (c << 31) | (source >> 1)
		return result, bits.Bit(source, 0)
	}
	if amount == 0 {
		return source, carryIn
	}
	amount &= 31
	if amount == 0 {
		// a register-specified amount that is a multiple of 32 (and
		// nonzero) rotates the value back to itself; carry_out is bit 31.
		return source, bits.Bit(source, 31)
	}
	return bits.RotateRight32(source, uint(amount)), bits.Bit(source, uint(amount-1))
}
