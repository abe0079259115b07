// Package riot implements the 6532 RIOT: 128 bytes of general purpose RAM,
// the joystick/console-switch I/O ports, and the interval timer. Modeled on
// Gopher2600's hardware/riot package, minus the peripheral
// plugging machinery (paddles, savekey, AtariVox) this core leaves out of
// scope.
package riot

import (
	"github.com/mguler/atari2600/hardware/input"
	"github.com/mguler/atari2600/hardware/riot/timer"
)

// RIOT is the 6532 RAM-I/O-Timer chip.
type RIOT struct {
	ram [128]uint8

	ddrA, outA uint8
	ddrB, outB uint8

	timer *timer.Timer
	input *input.State
}

// New creates a RIOT wired to the given shared input state.
func New(in *input.State) *RIOT {
	return &RIOT{
		timer: timer.New(),
		input: in,
	}
}

// ReadRAM reads one of the 128 bytes of general purpose RAM. addr is
// expected to already be in [0,127]; the low 7 bits are used regardless.
func (r *RIOT) ReadRAM(addr uint16) uint8 {
	return r.ram[addr&0x7f]
}

// WriteRAM writes one of the 128 bytes of general purpose RAM.
func (r *RIOT) WriteRAM(addr uint16, v uint8) {
	r.ram[addr&0x7f] = v
}

// ReadIO reads an I/O or timer register, selected by the low byte of addr.
func (r *RIOT) ReadIO(addr uint16) uint8 {
	switch addr & 0xff {
	case 0x80: // SWCHA
		return (r.ddrA & r.outA) | (^r.ddrA & r.input.SWCHA())
	case 0x81: // SWACNT
		return r.ddrA
	case 0x82: // SWCHB
		return (r.ddrB & r.outB) | (^r.ddrB & r.input.SWCHB())
	case 0x83: // SWBCNT
		return r.ddrB
	case 0x84: // INTIM
		return r.timer.INTIM()
	case 0x85: // INSTAT
		return r.timer.INSTAT()
	default:
		return 0
	}
}

// WriteIO writes an I/O or timer register.
func (r *RIOT) WriteIO(addr uint16, v uint8) {
	switch addr & 0xff {
	case 0x80: // SWCHA
		r.outA = v
	case 0x81: // SWACNT
		r.ddrA = v
	case 0x82: // SWCHB
		r.outB = v
	case 0x83: // SWBCNT
		r.ddrB = v
	case 0x94: // TIM1T
		r.timer.Write(1, v)
	case 0x95: // TIM8T
		r.timer.Write(8, v)
	case 0x96: // TIM64T
		r.timer.Write(64, v)
	case 0x97: // T1024T
		r.timer.Write(1024, v)
	}
}

// TickTimer advances the interval timer by one CPU cycle.
func (r *RIOT) TickTimer() {
	r.timer.Step()
}

// Timer exposes the interval timer for host diagnostics.
func (r *RIOT) Timer() *timer.Timer {
	return r.timer
}
