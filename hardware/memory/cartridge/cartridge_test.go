package cartridge_test

import (
	"testing"

	"github.com/mguler/atari2600/hardware/memory/cartridge"
	"github.com/mguler/atari2600/internal/vcstest"
)

func TestBadRomSize(t *testing.T) {
	_, err := cartridge.New(nil)
	vcstest.ExpectFailure(t, err)
}

func TestFlat2KMirrored(t *testing.T) {
	rom := make([]byte, 2048)
	rom[0] = 0x42
	c, err := cartridge.New(rom)
	vcstest.ExpectSuccess(t, err)
	vcstest.Equate(t, c.Read(0x1000), byte(0x42), "low mirror")
	vcstest.Equate(t, c.Read(0x1800), byte(0x42), "high mirror")
	vcstest.Equate(t, c.NumBanks(), 1, "num banks")
}

// TestF8Bankswitch checks an 8192-byte ROM with distinct bytes at offset
// $0000 and $1000: power-on selects bank 1, and reading the $1FF8 hotspot
// switches to bank 0.
func TestF8Bankswitch(t *testing.T) {
	rom := make([]byte, 8192)
	rom[0x0000] = 0xaa // bank 0 marker
	rom[0x1000] = 0xbb // bank 1 marker
	c, err := cartridge.New(rom)
	vcstest.ExpectSuccess(t, err)

	vcstest.Equate(t, c.Bank(), 1, "power-on bank")
	vcstest.Equate(t, c.Read(0x1000), byte(0xbb), "bank 1 byte at $F000")

	c.Read(0x1ff8) // hotspot read switches to bank 0 and must observe before returning
	vcstest.Equate(t, c.Bank(), 0, "bank after hotspot")
	vcstest.Equate(t, c.Read(0x1000), byte(0xaa), "bank 0 byte at $F000")
}

func TestF6Bankswitch(t *testing.T) {
	rom := make([]byte, 16384)
	for b := 0; b < 4; b++ {
		rom[b*4096] = byte(0x10 + b)
	}
	c, err := cartridge.New(rom)
	vcstest.ExpectSuccess(t, err)
	vcstest.Equate(t, c.Bank(), 0, "power-on bank")

	c.WriteHotspot(0x1ff9)
	vcstest.Equate(t, c.Bank(), 3, "bank after $1FF9 write")
	vcstest.Equate(t, c.Read(0x1000), byte(0x13), "bank 3 byte")
}

func TestOddSizeDegradesToFlat4K(t *testing.T) {
	rom := make([]byte, 3000)
	rom[0] = 0x99
	c, err := cartridge.New(rom)
	vcstest.ExpectSuccess(t, err)
	vcstest.Equate(t, c.NumBanks(), 1, "degraded num banks")
	vcstest.Equate(t, c.Read(0x1000), byte(0x99), "degraded byte")
}
