package riot_test

import (
	"testing"

	"github.com/mguler/atari2600/hardware/input"
	"github.com/mguler/atari2600/hardware/riot"
	"github.com/mguler/atari2600/internal/vcstest"
)

func TestRAMRoundTrip(t *testing.T) {
	r := riot.New(input.NewState())
	r.WriteRAM(0x10, 0x55)
	vcstest.Equate(t, r.ReadRAM(0x10), byte(0x55), "ram round trip")
}

func TestSWCHAReflectsInput(t *testing.T) {
	in := input.NewState()
	r := riot.New(in)
	vcstest.Equate(t, r.ReadIO(0x80), byte(0xff), "nothing pressed")

	in.P0Right = true
	vcstest.Equate(t, r.ReadIO(0x80), byte(0x7f), "right pressed clears bit7")
}

// TestTimerUnderflow drives the interval timer through the RIOT's I/O
// surface past its underflow point.
func TestTimerUnderflow(t *testing.T) {
	r := riot.New(input.NewState())
	r.WriteIO(0x95, 0x02) // TIM8T <- 2

	for i := 0; i < 9; i++ {
		r.TickTimer()
	}
	vcstest.Equate(t, r.ReadIO(0x84), byte(0x01), "INTIM after 9 cycles")

	for i := 0; i < 16; i++ {
		r.TickTimer()
	}
	vcstest.Equate(t, r.ReadIO(0x84), byte(0xff), "INTIM after 25 cycles")
	vcstest.Equate(t, r.ReadIO(0x85), byte(0x80), "INSTAT bit7 set")
}
