// Package cpu implements the MOS 6507, the address-bus-truncated 6502
// variant used by the Atari VCS. Instruction semantics and addressing modes
// are the full documented 6502 set; the 6507's only difference from a
// stock 6502 is that only 13 address lines are bonded out, which is a
// property of the bus (hardware/memory/bus), not the core itself.
//
// Modeled on Gopher2600's hardware/cpu package: registers are
// held as the small typed wrappers in hardware/registers rather than raw
// machine words, and execution is atomic — a whole instruction runs the
// instant cyclesRemaining reaches zero, with Clock doing nothing but pacing
// on every other cycle.
package cpu

import (
	"github.com/mguler/atari2600/hardware/memory/addresses"
	"github.com/mguler/atari2600/hardware/memory/bus"
	"github.com/mguler/atari2600/hardware/registers"
	"github.com/mguler/atari2600/logger"
)

const (
	resetVector = addresses.Reset
	irqVector   = addresses.IRQ
	nmiVector   = addresses.NMI
)

// CPU is the 6507 core: registers, an atomic fetch-decode-execute engine
// and the cycle counter that paces it against the TIA and RIOT.
type CPU struct {
	A, X, Y registers.Register
	SP      registers.StackPointer
	PC      registers.ProgramCounter
	P       registers.StatusRegister

	mem bus.Memory

	cyclesRemaining int

	// resetVectorPatched and resetPatchCount record the zero-vector patch:
	// cartridges with an all-zero reset vector (typically test ROMs, never a
	// real game) get PC forced to $F000 rather than jumping into RAM/open-bus
	// space.
	resetVectorPatched bool
	resetPatchCount    int

	// unknownOpcodeCount counts undocumented opcodes treated as two-cycle
	// NOPs, for host diagnostics.
	unknownOpcodeCount int
}

// New creates a CPU wired to the given bus. Reset must be called before
// the first Clock.
func New(mem bus.Memory) *CPU {
	return &CPU{mem: mem}
}

// Reset performs the power-on/reset sequence: registers zeroed, SP set to
// $FD, interrupts disabled, PC loaded from the reset vector, and seven
// cycles charged for the sequence itself.
func (c *CPU) Reset() {
	c.A.Load(0)
	c.X.Load(0)
	c.Y.Load(0)
	c.SP.Load(0xfd)
	c.P = registers.StatusRegister{InterruptDisable: true}

	vec := c.readVector(resetVector)
	if vec == 0x0000 {
		vec = 0xf000
		c.resetVectorPatched = true
		c.resetPatchCount++
		logger.Log("cpu", "zero reset vector, PC patched to $F000")
	} else {
		c.resetVectorPatched = false
	}
	c.PC.Load(vec)
	c.cyclesRemaining = 7
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.mem.Read(addr)
	hi := c.mem.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Clock advances the CPU by exactly one cycle. When an instruction is
// still "in flight" this only decrements the pacing counter; when it
// reaches zero the next instruction is fetched, decoded and executed in
// full, and cyclesRemaining is reloaded from its cost.
func (c *CPU) Clock() {
	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
		return
	}
	c.step()
	c.cyclesRemaining--
}

func (c *CPU) step() {
	opcode := c.fetch()
	def, ok := opcodeTable[opcode]
	if !ok {
		logger.Logf("cpu", "undocumented opcode %#02x at %#04x treated as NOP", opcode, c.PC.Value()-1)
		c.unknownOpcodeCount++
		c.cyclesRemaining = 2
		return
	}

	op := c.resolve(def.mode)
	extra := def.exec(c, op)
	total := def.cycles + extra
	if def.pageSensitive && op.crossed {
		total++
	}
	c.cyclesRemaining = total
}

// IRQ requests a maskable interrupt. It is a no-op if the interrupt
// disable flag is set. Callers are expected to invoke this between
// instructions (cyclesRemaining == 0); the TIA/RIOT in this core never
// assert IRQ themselves, but the hook exists for host-driven interrupt
// injection and test ROMs.
func (c *CPU) IRQ() {
	if c.P.InterruptDisable {
		return
	}
	c.push(uint8(c.PC.Value() >> 8))
	c.push(uint8(c.PC.Value()))
	c.push(c.P.ToByte() &^ 0x10)
	c.P.InterruptDisable = true
	c.PC.Load(c.readVector(irqVector))
	c.cyclesRemaining = 7
}

// NMI requests a non-maskable interrupt.
func (c *CPU) NMI() {
	c.push(uint8(c.PC.Value() >> 8))
	c.push(uint8(c.PC.Value()))
	c.push(c.P.ToByte() &^ 0x10)
	c.P.InterruptDisable = true
	c.PC.Load(c.readVector(nmiVector))
	c.cyclesRemaining = 7
}

// CyclesRemaining reports how many cycles are left before the next
// instruction is fetched. Exposed for host diagnostics; it plays no role in
// the WSYNC stall, which simply stops calling Clock altogether.
func (c *CPU) CyclesRemaining() int { return c.cyclesRemaining }

// ResetVectorPatched reports whether the last Reset found an all-zero
// reset vector and substituted $F000.
func (c *CPU) ResetVectorPatched() bool { return c.resetVectorPatched }

// ResetPatchCount reports how many times Reset has had to patch a
// zero vector over this CPU's lifetime.
func (c *CPU) ResetPatchCount() int { return c.resetPatchCount }

// UnknownOpcodeCount reports how many undocumented opcodes have been
// encountered and treated as NOPs.
func (c *CPU) UnknownOpcodeCount() int { return c.unknownOpcodeCount }

// PCValue reports the current program counter, mainly for tests and
// debug tooling.
func (c *CPU) PCValue() uint16 { return c.PC.Value() }
