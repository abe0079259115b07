package timer_test

import (
	"testing"

	"github.com/mguler/atari2600/hardware/riot/timer"
	"github.com/mguler/atari2600/internal/vcstest"
)

// TestUnderflow writes $02 with TIM8T (prescale 8) and steps forward by CPU
// cycles through the underflow point.
func TestUnderflow(t *testing.T) {
	tm := timer.New()
	tm.Write(8, 0x02)

	for i := 0; i < 9; i++ {
		tm.Step()
	}
	vcstest.Equate(t, tm.INTIM(), byte(0x01), "after 9 cycles")

	for i := 0; i < 8; i++ {
		tm.Step()
	}
	vcstest.Equate(t, tm.INTIM(), byte(0x00), "after 17 cycles")

	for i := 0; i < 8; i++ {
		tm.Step()
	}
	vcstest.Equate(t, tm.INTIM(), byte(0xff), "after 25 cycles")
	vcstest.ExpectTrue(t, tm.Underflow(), "underflow flag set")
	vcstest.Equate(t, tm.INSTAT(), byte(0x80), "INSTAT bit7")
}

func TestWriteClearsUnderflow(t *testing.T) {
	tm := timer.New()
	tm.Write(1, 0x00)
	tm.Step()
	vcstest.ExpectTrue(t, tm.Underflow(), "underflow after immediate wrap")

	tm.Write(1, 0x05)
	vcstest.ExpectTrue(t, !tm.Underflow(), "underflow cleared by write")
}
