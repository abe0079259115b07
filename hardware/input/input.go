// Package input holds the controller and console-switch state shared
// between the host, the RIOT (which exposes it as SWCHA/SWCHB) and, in a
// real machine, the TIA (joystick triggers) — though trigger input, and
// paddle/keypad controllers generally, are out of scope here.
//
// State is deliberately lock-free: tearing between a host write and a RIOT
// read is acceptable because each bit is latched independently and games
// poll repeatedly.
package input

// State is the shared controller/console-switch state. The host mutates it
// directly through Console.Input(); RIOT reads it every SWCHA/SWCHB access.
type State struct {
	// player 0 joystick directions. Player 1 is defined by the hardware in
	// the lower nibble of SWCHA but is not wired up by this core.
	P0Up, P0Down, P0Left, P0Right bool

	// console switches.
	Reset, Select bool

	// Color is the Color/B&W switch position; true selects color.
	Color bool

	// DifficultyB0/DifficultyB1 are the per-player difficulty switches; true
	// selects the "B" (expert) position.
	DifficultyB0, DifficultyB1 bool
}

// NewState returns a State with both difficulty switches in the A
// (beginner) position and the console set to color, matching a console
// that has just been plugged in with no switches touched.
func NewState() *State {
	return &State{Color: true}
}

// SWCHA returns the RIOT SWCHA register as driven by the player 0 joystick.
// Bits are active-low: 1 when released, 0 when pressed.
func (s *State) SWCHA() uint8 {
	v := uint8(0xff)
	if s.P0Right {
		v &^= 0x80
	}
	if s.P0Left {
		v &^= 0x40
	}
	if s.P0Down {
		v &^= 0x20
	}
	if s.P0Up {
		v &^= 0x10
	}
	return v
}

// SWCHB returns the RIOT SWCHB register as driven by the console switches.
func (s *State) SWCHB() uint8 {
	v := uint8(0xff)
	if s.Reset {
		v &^= 0x01
	}
	if s.Select {
		v &^= 0x02
	}
	if !s.Color {
		v &^= 0x08
	}
	if s.DifficultyB0 {
		v &^= 0x40
	}
	if s.DifficultyB1 {
		v &^= 0x80
	}
	return v
}
