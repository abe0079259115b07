package tia

import (
	"testing"

	"github.com/mguler/atari2600/internal/vcstest"
)

// writeNow bypasses the write-delay scheduler so tests can set up state
// without clocking three color clocks per register.
func writeNow(t *TIA, reg, v uint8) {
	t.apply(reg, v)
}

// TestPlayfieldReflect checks the playfield/reflect path. PF0 is set to
// $E0 rather than $F0: bit4 (dot0) clear and bits5-7 (dots1-3) set isolates
// the one dot that must read as background while the rest of the left half
// is on, which $F0 (all four bits identical) cannot distinguish.
func TestPlayfieldReflect(t *testing.T) {
	ti := New()
	ti.visibleStart = 0
	writeNow(ti, regCOLUBK, 0x00)
	writeNow(ti, regCOLUPF, 0x0e)
	writeNow(ti, regCTRLPF, 0x01)
	writeNow(ti, regPF0, 0xe0)
	writeNow(ti, regPF1, 0xff)
	writeNow(ti, regPF2, 0xff)

	for x := 0; x < Width; x++ {
		on, _ := ti.playfieldBit(x)
		switch {
		case x < 4:
			vcstest.ExpectTrue(t, !on, "dot0 is background")
		case x < 80:
			vcstest.ExpectTrue(t, on, "left half dots1-19 are playfield color")
		case x < 156:
			vcstest.ExpectTrue(t, on, "reflected right half mirrors dots1-19")
		default:
			vcstest.ExpectTrue(t, !on, "reflected mirror of dot0 is background")
		}
	}
}

// TestCollisionLatchAndClear checks a collision latch sets independently
// of color priority, and CXCLR clears every latch at once.
func TestCollisionLatchAndClear(t *testing.T) {
	ti := New()
	ti.updateCollisions(true, false, false, false, false, true) // p0 over pf
	vcstest.ExpectTrue(t, ti.cxp0fb&0x80 != 0, "CXP0FB bit7 set on P0/PF overlap")

	writeNow(ti, regCXCLR, 0)
	vcstest.Equate(t, ti.cxm0p, uint8(0), "CXM0P cleared")
	vcstest.Equate(t, ti.cxm1p, uint8(0), "CXM1P cleared")
	vcstest.Equate(t, ti.cxp0fb, uint8(0), "CXP0FB cleared")
	vcstest.Equate(t, ti.cxp1fb, uint8(0), "CXP1FB cleared")
	vcstest.Equate(t, ti.cxm0fb, uint8(0), "CXM0FB cleared")
	vcstest.Equate(t, ti.cxm1fb, uint8(0), "CXM1FB cleared")
	vcstest.Equate(t, ti.cxblpf, uint8(0), "CXBLPF cleared")
	vcstest.Equate(t, ti.cxppmm, uint8(0), "CXPPMM cleared")
}

// TestWSYNCHoldsUntilScanlineEnd checks a WSYNC strobe holds the CPU for
// the rest of the current scanline and releases exactly at its end.
func TestWSYNCHoldsUntilScanlineEnd(t *testing.T) {
	ti := New()
	writeNow(ti, regWSYNC, 0)
	vcstest.ExpectTrue(t, ti.WSyncHeld(), "wsync hold set immediately")

	for i := 0; i < totalCC-1; i++ {
		ti.Tick()
		vcstest.ExpectTrue(t, ti.WSyncHeld(), "hold persists mid-scanline")
	}
	ti.Tick() // cc wraps to 0 here
	vcstest.ExpectTrue(t, !ti.WSyncHeld(), "hold released at scanline end")
}

// TestHMOVERoundTrip checks the algebraic law that HMOVE of +n followed by
// HMOVE of -n restores the original position.
func TestHMOVERoundTrip(t *testing.T) {
	ti := New()
	ti.p0.x = 50

	ti.p0.motion = 5
	writeNow(ti, regHMOVE, 0)
	vcstest.Equate(t, ti.p0.x, 55, "moved by +5")

	ti.p0.motion = -5
	writeNow(ti, regHMOVE, 0)
	vcstest.Equate(t, ti.p0.x, 50, "restored by -5")
}

// TestGRP1WriteLatchesOldValues checks the round-trip law: writing GRP1
// copies the current GRP0 and ENABL into their old latches, which
// VDELP0/VDELBL then read back.
func TestGRP1WriteLatchesOldValues(t *testing.T) {
	ti := New()
	writeNow(ti, regGRP0, 0x55)
	writeNow(ti, regENABL, 0x02)
	writeNow(ti, regVDELP0, 0x01)
	writeNow(ti, regVDELBL, 0x01)

	writeNow(ti, regGRP0, 0xaa) // new GRP0; its old latch is untouched (still 0) until a GRP1 write
	writeNow(ti, regGRP1, 0x33) // now latches pre-write GRP0 (0xaa) and ENABL (0x02)

	vcstest.Equate(t, ti.effectiveGRP0(), uint8(0xaa), "VDELP0 sees GRP0 value as of the GRP1 write")
	vcstest.Equate(t, ti.effectiveENABL(), uint8(0x02), "VDELBL sees ENABL value as of the GRP1 write")
}

// TestDecodeMotionIsSignedNibble checks the HMxx signed-nibble decoding.
func TestDecodeMotionIsSignedNibble(t *testing.T) {
	vcstest.Equate(t, decodeMotion(0x70), int8(-7), "max positive nibble -> -7 motion")
	vcstest.Equate(t, decodeMotion(0x80), int8(8), "min negative nibble -> +8 motion")
	vcstest.Equate(t, decodeMotion(0x00), int8(0), "zero nibble -> no motion")
}
