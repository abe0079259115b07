package cpu

// execFunc performs an instruction given its resolved operand and returns
// any extra cycles beyond the opcode's base count (branch-taken/crossed
// bonuses; zero for everything else, since page-cross bonuses on read-class
// addressing modes are applied by the dispatcher, not here).
type execFunc func(c *CPU, op operand) int

func (c *CPU) push(v uint8) {
	c.mem.Write(c.SP.Address(), v)
	c.SP.Push()
}

func (c *CPU) pop() uint8 {
	c.SP.Pop()
	return c.mem.Read(c.SP.Address())
}

func (c *CPU) storeResult(op operand, v uint8) {
	if op.accumulator {
		c.A.Load(v)
		return
	}
	c.mem.Write(op.addr, v)
}

// adc implements ADC, including the NMOS BCD quirk: in decimal mode the
// overflow flag is still computed from the binary sum, not from the
// decimal-corrected result.
func (c *CPU) adc(v uint8) {
	a := c.A.Value()
	var carryIn uint16
	if c.P.Carry {
		carryIn = 1
	}
	binSum := uint16(a) + uint16(v) + carryIn
	overflow := (^(a^v) & (a ^ uint8(binSum)) & 0x80) != 0

	if !c.P.DecimalMode {
		result := uint8(binSum)
		c.P.Carry = binSum > 0xff
		c.P.Overflow = overflow
		c.A.Load(result)
		c.P.SetNZ(result)
		return
	}

	lo := (a & 0x0f) + (v & 0x0f) + uint8(carryIn)
	hi := (a >> 4) + (v >> 4)
	if lo > 9 {
		lo += 6
		hi++
	}
	carryOut := hi > 9
	if carryOut {
		hi += 6
	}
	result := (hi << 4) | (lo & 0x0f)

	c.P.Carry = carryOut
	c.P.Overflow = overflow
	c.A.Load(result)
	c.P.SetNZ(result)
}

func (c *CPU) compare(reg, v uint8) {
	result := reg - v
	c.P.Carry = reg >= v
	c.P.SetNZ(result)
}

func execADC(c *CPU, op operand) int { c.adc(op.value); return 0 }
func execSBC(c *CPU, op operand) int { c.adc(op.value ^ 0xff); return 0 }
func execAND(c *CPU, op operand) int { c.A.Load(c.A.Value() & op.value); c.P.SetNZ(c.A.Value()); return 0 }
func execORA(c *CPU, op operand) int { c.A.Load(c.A.Value() | op.value); c.P.SetNZ(c.A.Value()); return 0 }
func execEOR(c *CPU, op operand) int { c.A.Load(c.A.Value() ^ op.value); c.P.SetNZ(c.A.Value()); return 0 }

func execBIT(c *CPU, op operand) int {
	c.P.Zero = (c.A.Value() & op.value) == 0
	c.P.Negative = op.value&0x80 != 0
	c.P.Overflow = op.value&0x40 != 0
	return 0
}

func execCMP(c *CPU, op operand) int { c.compare(c.A.Value(), op.value); return 0 }
func execCPX(c *CPU, op operand) int { c.compare(c.X.Value(), op.value); return 0 }
func execCPY(c *CPU, op operand) int { c.compare(c.Y.Value(), op.value); return 0 }

func execASL(c *CPU, op operand) int {
	c.P.Carry = op.value&0x80 != 0
	result := op.value << 1
	c.P.SetNZ(result)
	c.storeResult(op, result)
	return 0
}

func execLSR(c *CPU, op operand) int {
	c.P.Carry = op.value&0x01 != 0
	result := op.value >> 1
	c.P.SetNZ(result)
	c.storeResult(op, result)
	return 0
}

func execROL(c *CPU, op operand) int {
	var carryIn uint8
	if c.P.Carry {
		carryIn = 1
	}
	c.P.Carry = op.value&0x80 != 0
	result := (op.value << 1) | carryIn
	c.P.SetNZ(result)
	c.storeResult(op, result)
	return 0
}

func execROR(c *CPU, op operand) int {
	var carryIn uint8
	if c.P.Carry {
		carryIn = 0x80
	}
	c.P.Carry = op.value&0x01 != 0
	result := (op.value >> 1) | carryIn
	c.P.SetNZ(result)
	c.storeResult(op, result)
	return 0
}

func execINC(c *CPU, op operand) int {
	result := op.value + 1
	c.P.SetNZ(result)
	c.storeResult(op, result)
	return 0
}

func execDEC(c *CPU, op operand) int {
	result := op.value - 1
	c.P.SetNZ(result)
	c.storeResult(op, result)
	return 0
}

func execINX(c *CPU, op operand) int { c.X.Load(c.X.Value() + 1); c.P.SetNZ(c.X.Value()); return 0 }
func execDEX(c *CPU, op operand) int { c.X.Load(c.X.Value() - 1); c.P.SetNZ(c.X.Value()); return 0 }
func execINY(c *CPU, op operand) int { c.Y.Load(c.Y.Value() + 1); c.P.SetNZ(c.Y.Value()); return 0 }
func execDEY(c *CPU, op operand) int { c.Y.Load(c.Y.Value() - 1); c.P.SetNZ(c.Y.Value()); return 0 }

func execLDA(c *CPU, op operand) int { c.A.Load(op.value); c.P.SetNZ(op.value); return 0 }
func execLDX(c *CPU, op operand) int { c.X.Load(op.value); c.P.SetNZ(op.value); return 0 }
func execLDY(c *CPU, op operand) int { c.Y.Load(op.value); c.P.SetNZ(op.value); return 0 }

func execSTA(c *CPU, op operand) int { c.mem.Write(op.addr, c.A.Value()); return 0 }
func execSTX(c *CPU, op operand) int { c.mem.Write(op.addr, c.X.Value()); return 0 }
func execSTY(c *CPU, op operand) int { c.mem.Write(op.addr, c.Y.Value()); return 0 }

func execTAX(c *CPU, op operand) int { c.X.Load(c.A.Value()); c.P.SetNZ(c.X.Value()); return 0 }
func execTAY(c *CPU, op operand) int { c.Y.Load(c.A.Value()); c.P.SetNZ(c.Y.Value()); return 0 }
func execTXA(c *CPU, op operand) int { c.A.Load(c.X.Value()); c.P.SetNZ(c.A.Value()); return 0 }
func execTYA(c *CPU, op operand) int { c.A.Load(c.Y.Value()); c.P.SetNZ(c.A.Value()); return 0 }
func execTSX(c *CPU, op operand) int { c.X.Load(c.SP.Value()); c.P.SetNZ(c.X.Value()); return 0 }
func execTXS(c *CPU, op operand) int { c.SP.Load(c.X.Value()); return 0 }

func execPHA(c *CPU, op operand) int { c.push(c.A.Value()); return 0 }
func execPHP(c *CPU, op operand) int { c.push(c.P.ToByte() | 0x10); return 0 }
func execPLA(c *CPU, op operand) int { v := c.pop(); c.A.Load(v); c.P.SetNZ(v); return 0 }
func execPLP(c *CPU, op operand) int {
	c.P.FromByte(c.pop())
	c.P.Break = false
	return 0
}

func execJMP(c *CPU, op operand) int { c.PC.Load(op.addr); return 0 }

func execJSR(c *CPU, op operand) int {
	ret := c.PC.Value() - 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.PC.Load(op.addr)
	return 0
}

func execRTS(c *CPU, op operand) int {
	lo := c.pop()
	hi := c.pop()
	c.PC.Load(uint16(lo) | uint16(hi)<<8)
	c.PC.Add(1)
	return 0
}

func execBRK(c *CPU, op operand) int {
	c.PC.Add(1) // skip the signature byte following the BRK opcode
	ret := c.PC.Value()
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.push(c.P.ToByte() | 0x10)
	c.P.InterruptDisable = true
	c.PC.Load(c.readVector(irqVector))
	return 0
}

func execRTI(c *CPU, op operand) int {
	c.P.FromByte(c.pop())
	c.P.Break = false
	lo := c.pop()
	hi := c.pop()
	c.PC.Load(uint16(lo) | uint16(hi)<<8)
	return 0
}

func execNOP(c *CPU, op operand) int { return 0 }

func execCLC(c *CPU, op operand) int { c.P.Carry = false; return 0 }
func execSEC(c *CPU, op operand) int { c.P.Carry = true; return 0 }
func execCLI(c *CPU, op operand) int { c.P.InterruptDisable = false; return 0 }
func execSEI(c *CPU, op operand) int { c.P.InterruptDisable = true; return 0 }
func execCLD(c *CPU, op operand) int { c.P.DecimalMode = false; return 0 }
func execSED(c *CPU, op operand) int { c.P.DecimalMode = true; return 0 }
func execCLV(c *CPU, op operand) int { c.P.Overflow = false; return 0 }

// branch wraps a flag predicate so the condition is read fresh when the
// instruction runs rather than captured at table-construction time.
func branch(pred func(c *CPU) bool) execFunc {
	return func(c *CPU, op operand) int {
		if !pred(c) {
			return 0
		}
		extra := 1
		if op.crossed {
			extra++
		}
		c.PC.Load(op.addr)
		return extra
	}
}
