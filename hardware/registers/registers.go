// Package registers implements the 6502 CPU's register file: the three
// general purpose 8-bit registers, the stack pointer, the program counter,
// and the processor status flags. Kept as a separate package from cpu, the
// way Gopher2600 separates register storage from instruction
// dispatch.
package registers

import "fmt"

// Register is an 8-bit general purpose register (A, X or Y).
type Register struct {
	label string
	value uint8
}

// NewRegister creates a Register with the given label, used only for
// diagnostic output.
func NewRegister(label string) Register {
	return Register{label: label}
}

// Value returns the register's current value.
func (r Register) Value() uint8 { return r.value }

// Load sets the register's value.
func (r *Register) Load(v uint8) { r.value = v }

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// StackPointer is the 6502 stack pointer; the stack itself always lives in
// page 1 ($0100-$01FF), so the pointer is just the low byte of that address.
type StackPointer struct {
	value uint8
}

// NewStackPointer creates a StackPointer initialised to v.
func NewStackPointer(v uint8) StackPointer {
	return StackPointer{value: v}
}

// Value returns the stack pointer's low byte.
func (s StackPointer) Value() uint8 { return s.value }

// Address returns the full 16-bit address the stack pointer currently
// refers to within page 1.
func (s StackPointer) Address() uint16 { return 0x0100 | uint16(s.value) }

// Load sets the stack pointer.
func (s *StackPointer) Load(v uint8) { s.value = v }

// Push decrements the stack pointer (wrapping within the page, matching
// real 6502 behavior where the stack never leaves page 1).
func (s *StackPointer) Push() { s.value-- }

// Pop increments the stack pointer.
func (s *StackPointer) Pop() { s.value++ }

func (s StackPointer) String() string {
	return fmt.Sprintf("SP=%#02x", s.value)
}

// ProgramCounter is the 16-bit instruction pointer.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter creates a ProgramCounter initialised to v.
func NewProgramCounter(v uint16) ProgramCounter {
	return ProgramCounter{value: v}
}

// Value returns the program counter.
func (p ProgramCounter) Value() uint16 { return p.value }

// Load sets the program counter.
func (p *ProgramCounter) Load(v uint16) { p.value = v }

// Add advances the program counter by n, wrapping at 16 bits.
func (p *ProgramCounter) Add(n uint16) { p.value += n }

func (p ProgramCounter) String() string {
	return fmt.Sprintf("PC=%#04x", p.value)
}

// StatusRegister holds the 6502 processor status flags individually, rather
// than packed as a single byte, following Gopher2600's register package.
// The byte form is only materialised at the edges (PHP/BRK pushes, reads of
// a packed status byte).
type StatusRegister struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	DecimalMode      bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// NewStatusRegister returns a StatusRegister with all flags clear. The
// Unused bit of the packed byte form (bit 5) has no storage here; it is
// synthesised as always-1 by ToByte.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// ToByte packs the flags into the conventional NV-BDIZC layout. Bit 5 (the
// "unused" bit) is always set, matching real 6502 behavior.
func (s StatusRegister) ToByte() uint8 {
	var b uint8
	if s.Carry {
		b |= 0x01
	}
	if s.Zero {
		b |= 0x02
	}
	if s.InterruptDisable {
		b |= 0x04
	}
	if s.DecimalMode {
		b |= 0x08
	}
	if s.Break {
		b |= 0x10
	}
	b |= 0x20 // unused, always 1
	if s.Overflow {
		b |= 0x40
	}
	if s.Negative {
		b |= 0x80
	}
	return b
}

// FromByte unpacks a packed status byte into the flags. The unused bit (0x20)
// is discarded; it is not tracked as state because it is never anything but 1.
func (s *StatusRegister) FromByte(b uint8) {
	s.Carry = b&0x01 != 0
	s.Zero = b&0x02 != 0
	s.InterruptDisable = b&0x04 != 0
	s.DecimalMode = b&0x08 != 0
	s.Break = b&0x10 != 0
	s.Overflow = b&0x40 != 0
	s.Negative = b&0x80 != 0
}

// SetNZ sets the Zero and Negative flags from the 8-bit value v, the most
// common flag update pattern in the instruction set.
func (s *StatusRegister) SetNZ(v uint8) {
	s.Zero = v == 0
	s.Negative = v&0x80 != 0
}

func (s StatusRegister) String() string {
	f := func(set bool, c byte) byte {
		if set {
			return c
		}
		return c + ('a' - 'A')
	}
	return string([]byte{
		f(s.Negative, 'N'),
		f(s.Overflow, 'V'),
		'-',
		f(s.Break, 'B'),
		f(s.DecimalMode, 'D'),
		f(s.InterruptDisable, 'I'),
		f(s.Zero, 'Z'),
		f(s.Carry, 'C'),
	})
}
