// Package console wires the CPU, TIA, RIOT and cartridge into one runnable
// machine and owns the top-level per-frame loop, the way Gopher2600
// emulator's hardware/vcs package assembles its own VCS struct from the
// same four pieces.
package console

import (
	"github.com/mguler/atari2600/hardware/cpu"
	"github.com/mguler/atari2600/hardware/input"
	"github.com/mguler/atari2600/hardware/memory/bus"
	"github.com/mguler/atari2600/hardware/memory/cartridge"
	"github.com/mguler/atari2600/hardware/riot"
	"github.com/mguler/atari2600/hardware/tia"
)

// cyclesPerFrame is the number of CPU cycles in one NTSC frame: 262
// scanlines of 228 color clocks each, divided by the 3:1 TIA:CPU clock
// ratio (262*228)/3.
const cyclesPerFrame = 262 * 228 / 3

// Console is a complete, runnable Atari 2600: CPU, TIA, RIOT, cartridge and
// bus, plus the controller/switch state the host mutates between frames.
type Console struct {
	cpu  *cpu.CPU
	tia  *tia.TIA
	riot *riot.RIOT
	cart *cartridge.Cartridge
	bus  *bus.Bus
	in   *input.State
}

// New builds a Console around the given ROM image. The cartridge's
// bank-switching scheme is inferred from the image size (cartridge.New);
// the CPU is reset immediately, loading PC from the cartridge's reset
// vector.
func New(rom []byte) (*Console, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}

	in := input.NewState()
	t := tia.New()
	r := riot.New(in)
	b := bus.New(cart, r, t)
	c := cpu.New(b)
	c.Reset()

	return &Console{cpu: c, tia: t, riot: r, cart: cart, bus: b, in: in}, nil
}

// RunFrame advances the console by at most one NTSC frame's worth of CPU
// cycles, returning early as soon as the TIA begins a new frame: each CPU
// cycle, the CPU clocks once unless the TIA is holding it on WSYNC, the
// RIOT interval timer clocks once regardless, and the TIA clocks three
// color clocks, in that order.
func (c *Console) RunFrame() error {
	startFrame := c.tia.Frame()
	for i := 0; i < cyclesPerFrame; i++ {
		if !c.tia.WSyncHeld() {
			c.cpu.Clock()
		}
		c.bus.Tick()
		c.tia.Tick()
		c.tia.Tick()
		c.tia.Tick()
		if c.tia.Frame() != startFrame {
			break
		}
	}
	return nil
}

// Framebuffer returns the most recently completed frame's pixel buffer,
// BGRA-packed one uint32 per pixel, row-major, Width x tia.VisibleHeight.
func (c *Console) Framebuffer() []uint32 {
	return c.tia.Framebuffer()
}

// DrainAudio returns and clears the console's pending audio samples,
// resampled to 44.1kHz mono 16-bit PCM.
func (c *Console) DrainAudio() []int16 {
	return c.tia.DrainAudio()
}

// Input returns the shared controller/console-switch state. The host
// mutates it directly between (or during) RunFrame calls.
func (c *Console) Input() *input.State {
	return c.in
}

// TIADebug returns the TIA's host-tunable diagnostic knobs: IgnoreVBlank,
// IgnoreVisibleWindow, RESPOffset and SyncMode.
func (c *Console) TIADebug() *tia.Debug {
	return &c.tia.Debug
}

// CPU exposes the CPU for host diagnostics (unknown-opcode count, reset
// vector patch state) without giving the host write access to bus wiring.
func (c *Console) CPU() *cpu.CPU {
	return c.cpu
}

// Cartridge exposes the cartridge for host diagnostics (current bank,
// scheme).
func (c *Console) Cartridge() *cartridge.Cartridge {
	return c.cart
}
