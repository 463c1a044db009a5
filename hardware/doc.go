// Package hardware collects the GBA instruction-engine's sub-packages: the
// ARMv4T core itself (hardware/cpu), the byte-addressable memory surface it
// reads and writes through (hardware/memory), and the preferences a host
// tunes it with (hardware/preferences). There is no root aggregate type here
// -- unlike a full console emulation, the core has no video/audio/DMA
// subsystems to own, so a host wires hardware/cpu.CPU directly over a
// hardware/memory/gbamem.Memory, as cmd/goba does.
package hardware

