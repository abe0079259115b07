package cpu

// mode identifies a 6502 addressing mode.
type mode int

const (
	modeImplied mode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeRelative
	modeIndirect
)

// operand is the result of resolving an instruction's addressing mode: the
// effective address (when one exists), the byte found there (for read-class
// instructions), and whether resolving the address crossed a page boundary
// (meaningful only for the indexed/indirect-indexed modes and for
// relative branches).
type operand struct {
	addr        uint16
	value       uint8
	crossed     bool
	accumulator bool
}

// resolve fetches whatever operand bytes m requires (advancing PC as it
// goes) and returns the effective address/value. Reads from memory happen
// here exactly once per addressing mode, matching Gopher2600's and the
// spec's "atomic" per-instruction execution model (§4.4): the whole
// instruction runs the moment cycles_remaining reaches zero, and the cycle
// count is only used for pacing, not for driving memory access timing.
func (c *CPU) resolve(m mode) operand {
	switch m {
	case modeImplied:
		return operand{}

	case modeAccumulator:
		return operand{value: c.A.Value(), accumulator: true}

	case modeImmediate:
		v := c.fetch()
		return operand{value: v}

	case modeZeroPage:
		addr := uint16(c.fetch())
		return operand{addr: addr, value: c.mem.Read(addr)}

	case modeZeroPageX:
		addr := uint16(c.fetch() + c.X.Value())
		return operand{addr: addr, value: c.mem.Read(addr)}

	case modeZeroPageY:
		addr := uint16(c.fetch() + c.Y.Value())
		return operand{addr: addr, value: c.mem.Read(addr)}

	case modeAbsolute:
		addr := c.fetch16()
		return operand{addr: addr, value: c.mem.Read(addr)}

	case modeAbsoluteX:
		base := c.fetch16()
		addr := base + uint16(c.X.Value())
		return operand{addr: addr, value: c.mem.Read(addr), crossed: pageCrossed(base, addr)}

	case modeAbsoluteY:
		base := c.fetch16()
		addr := base + uint16(c.Y.Value())
		return operand{addr: addr, value: c.mem.Read(addr), crossed: pageCrossed(base, addr)}

	case modeIndirectX:
		zp := c.fetch() + c.X.Value()
		lo := c.mem.Read(uint16(zp))
		hi := c.mem.Read(uint16(zp + 1))
		addr := uint16(lo) | uint16(hi)<<8
		return operand{addr: addr, value: c.mem.Read(addr)}

	case modeIndirectY:
		zp := c.fetch()
		lo := c.mem.Read(uint16(zp))
		hi := c.mem.Read(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y.Value())
		return operand{addr: addr, value: c.mem.Read(addr), crossed: pageCrossed(base, addr)}

	case modeRelative:
		disp := int8(c.fetch())
		pc := c.PC.Value()
		addr := uint16(int32(pc) + int32(disp))
		return operand{addr: addr, crossed: pageCrossed(pc, addr)}

	case modeIndirect:
		ptr := c.fetch16()
		// the classic 6502 indirect-JMP page-wrap bug: the high byte is
		// read from (ptr & $FF00) | ((ptr+1) & $FF), never crossing into
		// the next page.
		loAddr := ptr
		hiAddr := (ptr & 0xff00) | ((ptr + 1) & 0x00ff)
		lo := c.mem.Read(loAddr)
		hi := c.mem.Read(hiAddr)
		return operand{addr: uint16(lo) | uint16(hi)<<8}

	default:
		return operand{}
	}
}

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch() uint8 {
	v := c.mem.Read(c.PC.Value())
	c.PC.Add(1)
	return v
}

// fetch16 reads a little-endian word starting at PC and advances PC by two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(lo) | uint16(hi)<<8
}

func pageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}
