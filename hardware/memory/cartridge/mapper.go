// Package cartridge models the cartridge ROM window ($1000-$1FFF) and the
// handful of bank-switching schemes in scope here: flat 2K/4K, and the
// "standard" Atari F8 (8K) and F6 (16K) hotspot schemes. Organized
// the way Gopher2600 organizes its (much larger) set of mappers:
// one small file per scheme behind a shared interface, with the public
// Cartridge type as the thin wrapper the bus actually talks to.
package cartridge

import "github.com/mguler/atari2600/vcserr"

// Scheme identifies a bank-switching layout.
type Scheme int

const (
	// Flat is an unbanked cartridge: 2K mirrored to fill 4K, or a direct 4K
	// image. There is exactly one bank.
	Flat Scheme = iota
	// F8_8K is the standard 8K layout: two 4K banks, hotspots at $1FF8/$1FF9.
	F8_8K
	// F6_16K is the standard 16K layout: four 4K banks, hotspots at
	// $1FF6-$1FF9.
	F6_16K
)

func (s Scheme) String() string {
	switch s {
	case Flat:
		return "flat"
	case F8_8K:
		return "F8"
	case F6_16K:
		return "F6"
	default:
		return "unknown"
	}
}

// mapper is the internal interface each bank-switching scheme implements.
// Addresses passed to mapper methods are already relative to the ROM
// window, i.e. in [0, 0xFFF].
type mapper interface {
	read(addr uint16) uint8
	observeAccess(addr uint16)
	bank() int
	numBanks() int
}

// New builds the appropriate mapper for the given ROM size. Sizes outside
// {2048, 4096, 8192, 16384} degrade to a flat 4K mapper built from the first
// 4K bytes (zero-padded if the image is shorter).
func New(rom []byte) (*Cartridge, error) {
	if len(rom) == 0 {
		return nil, vcserr.Errorf("cartridge: %v", "BadRomSize: empty ROM image")
	}

	var m mapper
	switch len(rom) {
	case 2048:
		m = newFlatMapper(rom, 2048)
	case 4096:
		m = newFlatMapper(rom, 4096)
	case 8192:
		m = newF8Mapper(rom)
	case 16384:
		m = newF6Mapper(rom)
	default:
		buf := make([]byte, 4096)
		n := len(rom)
		if n > 4096 {
			n = 4096
		}
		copy(buf, rom[:n])
		m = newFlatMapper(buf, 4096)
	}

	return &Cartridge{m: m}, nil
}
