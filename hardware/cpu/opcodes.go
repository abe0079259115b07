package cpu

// instruction describes one opcode byte's behaviour: its addressing mode,
// base cycle cost, whether that cost gets a +1 bonus for a page-crossing
// indexed/indirect-indexed read, and the function that carries it out.
type instruction struct {
	name          string
	mode          mode
	cycles        int
	pageSensitive bool
	exec          execFunc
}

// opcodeTable is the full documented 6502 instruction set, keyed by opcode
// byte. Opcodes absent from the table are undocumented and are treated by
// step() as logged two-cycle NOPs rather than implemented.
var opcodeTable = map[uint8]instruction{
	// ADC
	0x69: {"ADC", modeImmediate, 2, false, execADC},
	0x65: {"ADC", modeZeroPage, 3, false, execADC},
	0x75: {"ADC", modeZeroPageX, 4, false, execADC},
	0x6d: {"ADC", modeAbsolute, 4, false, execADC},
	0x7d: {"ADC", modeAbsoluteX, 4, true, execADC},
	0x79: {"ADC", modeAbsoluteY, 4, true, execADC},
	0x61: {"ADC", modeIndirectX, 6, false, execADC},
	0x71: {"ADC", modeIndirectY, 5, true, execADC},

	// AND
	0x29: {"AND", modeImmediate, 2, false, execAND},
	0x25: {"AND", modeZeroPage, 3, false, execAND},
	0x35: {"AND", modeZeroPageX, 4, false, execAND},
	0x2d: {"AND", modeAbsolute, 4, false, execAND},
	0x3d: {"AND", modeAbsoluteX, 4, true, execAND},
	0x39: {"AND", modeAbsoluteY, 4, true, execAND},
	0x21: {"AND", modeIndirectX, 6, false, execAND},
	0x31: {"AND", modeIndirectY, 5, true, execAND},

	// ASL
	0x0a: {"ASL", modeAccumulator, 2, false, execASL},
	0x06: {"ASL", modeZeroPage, 5, false, execASL},
	0x16: {"ASL", modeZeroPageX, 6, false, execASL},
	0x0e: {"ASL", modeAbsolute, 6, false, execASL},
	0x1e: {"ASL", modeAbsoluteX, 7, false, execASL},

	// branches
	0x90: {"BCC", modeRelative, 2, false, branch(func(c *CPU) bool { return !c.P.Carry })},
	0xb0: {"BCS", modeRelative, 2, false, branch(func(c *CPU) bool { return c.P.Carry })},
	0xf0: {"BEQ", modeRelative, 2, false, branch(func(c *CPU) bool { return c.P.Zero })},
	0xd0: {"BNE", modeRelative, 2, false, branch(func(c *CPU) bool { return !c.P.Zero })},
	0x30: {"BMI", modeRelative, 2, false, branch(func(c *CPU) bool { return c.P.Negative })},
	0x10: {"BPL", modeRelative, 2, false, branch(func(c *CPU) bool { return !c.P.Negative })},
	0x50: {"BVC", modeRelative, 2, false, branch(func(c *CPU) bool { return !c.P.Overflow })},
	0x70: {"BVS", modeRelative, 2, false, branch(func(c *CPU) bool { return c.P.Overflow })},

	// BIT
	0x24: {"BIT", modeZeroPage, 3, false, execBIT},
	0x2c: {"BIT", modeAbsolute, 4, false, execBIT},

	// BRK / RTI
	0x00: {"BRK", modeImplied, 7, false, execBRK},
	0x40: {"RTI", modeImplied, 6, false, execRTI},

	// flag instructions
	0x18: {"CLC", modeImplied, 2, false, execCLC},
	0x38: {"SEC", modeImplied, 2, false, execSEC},
	0x58: {"CLI", modeImplied, 2, false, execCLI},
	0x78: {"SEI", modeImplied, 2, false, execSEI},
	0xd8: {"CLD", modeImplied, 2, false, execCLD},
	0xf8: {"SED", modeImplied, 2, false, execSED},
	0xb8: {"CLV", modeImplied, 2, false, execCLV},

	// CMP / CPX / CPY
	0xc9: {"CMP", modeImmediate, 2, false, execCMP},
	0xc5: {"CMP", modeZeroPage, 3, false, execCMP},
	0xd5: {"CMP", modeZeroPageX, 4, false, execCMP},
	0xcd: {"CMP", modeAbsolute, 4, false, execCMP},
	0xdd: {"CMP", modeAbsoluteX, 4, true, execCMP},
	0xd9: {"CMP", modeAbsoluteY, 4, true, execCMP},
	0xc1: {"CMP", modeIndirectX, 6, false, execCMP},
	0xd1: {"CMP", modeIndirectY, 5, true, execCMP},
	0xe0: {"CPX", modeImmediate, 2, false, execCPX},
	0xe4: {"CPX", modeZeroPage, 3, false, execCPX},
	0xec: {"CPX", modeAbsolute, 4, false, execCPX},
	0xc0: {"CPY", modeImmediate, 2, false, execCPY},
	0xc4: {"CPY", modeZeroPage, 3, false, execCPY},
	0xcc: {"CPY", modeAbsolute, 4, false, execCPY},

	// DEC / INC
	0xc6: {"DEC", modeZeroPage, 5, false, execDEC},
	0xd6: {"DEC", modeZeroPageX, 6, false, execDEC},
	0xce: {"DEC", modeAbsolute, 6, false, execDEC},
	0xde: {"DEC", modeAbsoluteX, 7, false, execDEC},
	0xe6: {"INC", modeZeroPage, 5, false, execINC},
	0xf6: {"INC", modeZeroPageX, 6, false, execINC},
	0xee: {"INC", modeAbsolute, 6, false, execINC},
	0xfe: {"INC", modeAbsoluteX, 7, false, execINC},

	0xca: {"DEX", modeImplied, 2, false, execDEX},
	0x88: {"DEY", modeImplied, 2, false, execDEY},
	0xe8: {"INX", modeImplied, 2, false, execINX},
	0xc8: {"INY", modeImplied, 2, false, execINY},

	// EOR
	0x49: {"EOR", modeImmediate, 2, false, execEOR},
	0x45: {"EOR", modeZeroPage, 3, false, execEOR},
	0x55: {"EOR", modeZeroPageX, 4, false, execEOR},
	0x4d: {"EOR", modeAbsolute, 4, false, execEOR},
	0x5d: {"EOR", modeAbsoluteX, 4, true, execEOR},
	0x59: {"EOR", modeAbsoluteY, 4, true, execEOR},
	0x41: {"EOR", modeIndirectX, 6, false, execEOR},
	0x51: {"EOR", modeIndirectY, 5, true, execEOR},

	// JMP / JSR / RTS
	0x4c: {"JMP", modeAbsolute, 3, false, execJMP},
	0x6c: {"JMP", modeIndirect, 5, false, execJMP},
	0x20: {"JSR", modeAbsolute, 6, false, execJSR},
	0x60: {"RTS", modeImplied, 6, false, execRTS},

	// LDA / LDX / LDY
	0xa9: {"LDA", modeImmediate, 2, false, execLDA},
	0xa5: {"LDA", modeZeroPage, 3, false, execLDA},
	0xb5: {"LDA", modeZeroPageX, 4, false, execLDA},
	0xad: {"LDA", modeAbsolute, 4, false, execLDA},
	0xbd: {"LDA", modeAbsoluteX, 4, true, execLDA},
	0xb9: {"LDA", modeAbsoluteY, 4, true, execLDA},
	0xa1: {"LDA", modeIndirectX, 6, false, execLDA},
	0xb1: {"LDA", modeIndirectY, 5, true, execLDA},
	0xa2: {"LDX", modeImmediate, 2, false, execLDX},
	0xa6: {"LDX", modeZeroPage, 3, false, execLDX},
	0xb6: {"LDX", modeZeroPageY, 4, false, execLDX},
	0xae: {"LDX", modeAbsolute, 4, false, execLDX},
	0xbe: {"LDX", modeAbsoluteY, 4, true, execLDX},
	0xa0: {"LDY", modeImmediate, 2, false, execLDY},
	0xa4: {"LDY", modeZeroPage, 3, false, execLDY},
	0xb4: {"LDY", modeZeroPageX, 4, false, execLDY},
	0xac: {"LDY", modeAbsolute, 4, false, execLDY},
	0xbc: {"LDY", modeAbsoluteX, 4, true, execLDY},

	// LSR
	0x4a: {"LSR", modeAccumulator, 2, false, execLSR},
	0x46: {"LSR", modeZeroPage, 5, false, execLSR},
	0x56: {"LSR", modeZeroPageX, 6, false, execLSR},
	0x4e: {"LSR", modeAbsolute, 6, false, execLSR},
	0x5e: {"LSR", modeAbsoluteX, 7, false, execLSR},

	// NOP
	0xea: {"NOP", modeImplied, 2, false, execNOP},

	// ORA
	0x09: {"ORA", modeImmediate, 2, false, execORA},
	0x05: {"ORA", modeZeroPage, 3, false, execORA},
	0x15: {"ORA", modeZeroPageX, 4, false, execORA},
	0x0d: {"ORA", modeAbsolute, 4, false, execORA},
	0x1d: {"ORA", modeAbsoluteX, 4, true, execORA},
	0x19: {"ORA", modeAbsoluteY, 4, true, execORA},
	0x01: {"ORA", modeIndirectX, 6, false, execORA},
	0x11: {"ORA", modeIndirectY, 5, true, execORA},

	// stack
	0x48: {"PHA", modeImplied, 3, false, execPHA},
	0x08: {"PHP", modeImplied, 3, false, execPHP},
	0x68: {"PLA", modeImplied, 4, false, execPLA},
	0x28: {"PLP", modeImplied, 4, false, execPLP},

	// ROL / ROR
	0x2a: {"ROL", modeAccumulator, 2, false, execROL},
	0x26: {"ROL", modeZeroPage, 5, false, execROL},
	0x36: {"ROL", modeZeroPageX, 6, false, execROL},
	0x2e: {"ROL", modeAbsolute, 6, false, execROL},
	0x3e: {"ROL", modeAbsoluteX, 7, false, execROL},
	0x6a: {"ROR", modeAccumulator, 2, false, execROR},
	0x66: {"ROR", modeZeroPage, 5, false, execROR},
	0x76: {"ROR", modeZeroPageX, 6, false, execROR},
	0x6e: {"ROR", modeAbsolute, 6, false, execROR},
	0x7e: {"ROR", modeAbsoluteX, 7, false, execROR},

	// SBC
	0xe9: {"SBC", modeImmediate, 2, false, execSBC},
	0xe5: {"SBC", modeZeroPage, 3, false, execSBC},
	0xf5: {"SBC", modeZeroPageX, 4, false, execSBC},
	0xed: {"SBC", modeAbsolute, 4, false, execSBC},
	0xfd: {"SBC", modeAbsoluteX, 4, true, execSBC},
	0xf9: {"SBC", modeAbsoluteY, 4, true, execSBC},
	0xe1: {"SBC", modeIndirectX, 6, false, execSBC},
	0xf1: {"SBC", modeIndirectY, 5, true, execSBC},

	// STA / STX / STY
	0x85: {"STA", modeZeroPage, 3, false, execSTA},
	0x95: {"STA", modeZeroPageX, 4, false, execSTA},
	0x8d: {"STA", modeAbsolute, 4, false, execSTA},
	0x9d: {"STA", modeAbsoluteX, 5, false, execSTA},
	0x99: {"STA", modeAbsoluteY, 5, false, execSTA},
	0x81: {"STA", modeIndirectX, 6, false, execSTA},
	0x91: {"STA", modeIndirectY, 6, false, execSTA},
	0x86: {"STX", modeZeroPage, 3, false, execSTX},
	0x96: {"STX", modeZeroPageY, 4, false, execSTX},
	0x8e: {"STX", modeAbsolute, 4, false, execSTX},
	0x84: {"STY", modeZeroPage, 3, false, execSTY},
	0x94: {"STY", modeZeroPageX, 4, false, execSTY},
	0x8c: {"STY", modeAbsolute, 4, false, execSTY},

	// register transfers
	0xaa: {"TAX", modeImplied, 2, false, execTAX},
	0xa8: {"TAY", modeImplied, 2, false, execTAY},
	0x8a: {"TXA", modeImplied, 2, false, execTXA},
	0x98: {"TYA", modeImplied, 2, false, execTYA},
	0xba: {"TSX", modeImplied, 2, false, execTSX},
	0x9a: {"TXS", modeImplied, 2, false, execTXS},
}
