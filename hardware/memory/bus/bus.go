// Package bus implements the 6507's address decoder: the thin layer that
// looks at the low 13 bits of an address and routes the access to the
// cartridge, RIOT RAM, RIOT I/O/timer registers, or the TIA, mirroring
// address lines exactly the way the real machine's lack of full decoding
// does. Modeled on Gopher2600's hardware/memory package, but
// collapsed into one small decoder rather than a tree of per-device memory
// objects, since this core only has four devices to route between.
package bus

// Memory is the interface the CPU uses to access the address space. Bus is
// the only production implementation; tests may substitute a flat array.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// Cartridge is the subset of cartridge behavior the bus needs: read the ROM
// window, and observe (but never store into) a write that might be a
// bank-switch hotspot.
type Cartridge interface {
	Read(addr uint16) uint8
	WriteHotspot(addr uint16)
}

// RIOT is the subset of RIOT behavior the bus needs.
type RIOT interface {
	ReadRAM(addr uint16) uint8
	WriteRAM(addr uint16, v uint8)
	ReadIO(addr uint16) uint8
	WriteIO(addr uint16, v uint8)
	TickTimer()
}

// TIA is the subset of TIA behavior the bus needs.
type TIA interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, v uint8)
}

// Bus wires the CPU to the three chip devices and the cartridge. It
// implements Memory.
type Bus struct {
	Cart Cartridge
	RIOT RIOT
	TIA  TIA
}

// New creates a Bus wired to the given devices.
func New(cart Cartridge, riot RIOT, tia TIA) *Bus {
	return &Bus{Cart: cart, RIOT: riot, TIA: tia}
}

// Read implements Memory.
func (b *Bus) Read(addr uint16) uint8 {
	addr &= 0x1fff

	switch {
	case addr >= 0x1000:
		return b.Cart.Read(addr)
	case addr < 0x0200 && (addr&0x00ff) >= 0x80:
		return b.RIOT.ReadRAM(addr & 0x7f)
	case (addr & 0x00ff) <= 0x7f:
		return b.TIA.ReadRegister(addr & 0x3f)
	case addr >= 0x0280 && addr <= 0x0297:
		return b.RIOT.ReadIO(addr)
	default:
		return 0
	}
}

// Write implements Memory.
func (b *Bus) Write(addr uint16, v uint8) {
	addr &= 0x1fff

	switch {
	case addr >= 0x1000:
		b.Cart.WriteHotspot(addr)
	case addr < 0x0200 && (addr&0x00ff) >= 0x80:
		b.RIOT.WriteRAM(addr&0x7f, v)
	case (addr & 0x00ff) <= 0x7f:
		b.TIA.WriteRegister(addr&0x3f, v)
	case addr >= 0x0280 && addr <= 0x0297:
		b.RIOT.WriteIO(addr, v)
	default:
		// no device at this address; write is silently dropped
	}
}

// Tick advances the RIOT timer by one CPU cycle. The bus is the owner of
// this per-cycle tick because the interval timer, unlike INTIM/SWCHA/SWCHB,
// is driven directly off the CPU clock rather than by chip-select decoding.
func (b *Bus) Tick() {
	b.RIOT.TickTimer()
}
