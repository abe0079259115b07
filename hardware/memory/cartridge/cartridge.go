package cartridge

// Cartridge is the bus-facing view of a loaded ROM image: a 4K read window
// plus whichever bank-switching scheme applies. It implements the
// bus.Cartridge interface.
type Cartridge struct {
	m mapper
}

// Read returns the byte visible in the ROM window at addr (a full bus
// address; only the low 12 bits are used) and lets the mapper observe the
// access, since on some carts reading the hotspot address itself is how a
// kernel switches banks.
func (c *Cartridge) Read(addr uint16) uint8 {
	a := addr & 0x0fff
	c.m.observeAccess(a)
	return c.m.read(a)
}

// WriteHotspot lets the mapper observe a write into the ROM window. No
// cartridge memory is ever written this way; a write is only meaningful as
// a possible bank-switch hotspot.
func (c *Cartridge) WriteHotspot(addr uint16) {
	c.m.observeAccess(addr & 0x0fff)
}

// Bank returns the currently selected bank index.
func (c *Cartridge) Bank() int {
	return c.m.bank()
}

// NumBanks returns the number of banks implemented by the cartridge's
// scheme (1 for Flat).
func (c *Cartridge) NumBanks() int {
	return c.m.numBanks()
}
