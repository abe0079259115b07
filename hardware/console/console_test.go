package console_test

import (
	"testing"

	"github.com/mguler/atari2600/hardware/console"
	"github.com/mguler/atari2600/hardware/tia"
	"github.com/mguler/atari2600/internal/vcstest"
)

// kernelROM builds a flat 4K image whose reset vector points at $F000 and
// whose code at $F000 is a tight "strobe WSYNC, loop" kernel: the shape
// every real cartridge's frame loop takes.
func kernelROM() []byte {
	rom := make([]byte, 4096)

	// $F000: STA WSYNC ($02); BNE $F000 (branch always taken since Z is
	// never set by STA). Relative offset to $F000 from $F005 is -5 ($FB).
	rom[0x0000] = 0x8d // STA abs
	rom[0x0001] = 0x02
	rom[0x0002] = 0x00
	rom[0x0003] = 0xd0 // BNE
	rom[0x0004] = 0xfb // -5: back to $F000

	// reset vector at the top of the image, $1FFC/$1FFD -> low/high of $F000.
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0

	return rom
}

func TestRunFrameProducesFullFramebuffer(t *testing.T) {
	c, err := console.New(kernelROM())
	vcstest.ExpectSuccess(t, err)

	vcstest.ExpectSuccess(t, c.RunFrame())

	fb := c.Framebuffer()
	vcstest.Equate(t, len(fb), tia.Width*tia.VisibleHeight, "framebuffer size")
}

// TestWSYNCKernelNeverRunsAway exercises the WSYNC-held interaction between
// console.RunFrame and TIA: a kernel that strobes WSYNC on every pass of
// its two-instruction loop must still complete a frame within the fixed CPU-cycle
// budget, never spinning the CPU through the held cycles.
func TestWSYNCKernelNeverRunsAway(t *testing.T) {
	c, err := console.New(kernelROM())
	vcstest.ExpectSuccess(t, err)

	vcstest.ExpectSuccess(t, c.RunFrame())
	after := c.CPU().PCValue()

	// the kernel only ever touches $F000-$F004; PC must stay inside it.
	vcstest.ExpectTrue(t, after >= 0xf000 && after <= 0xf004, "PC stays inside kernel loop")
}

func TestTIADebugIsMutableFromConsole(t *testing.T) {
	c, err := console.New(kernelROM())
	vcstest.ExpectSuccess(t, err)

	dbg := c.TIADebug()
	dbg.IgnoreVisibleWindow = true
	vcstest.ExpectTrue(t, c.TIADebug().IgnoreVisibleWindow, "debug knob mutation is visible through the same pointer")
}

func TestInputReachesRIOTSwitches(t *testing.T) {
	c, err := console.New(kernelROM())
	vcstest.ExpectSuccess(t, err)

	c.Input().P0Right = true
	vcstest.ExpectTrue(t, c.Input().SWCHA()&0x80 == 0, "P0 right clears SWCHA bit7")
}
