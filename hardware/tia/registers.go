package tia

// Register addresses, selected by the low 6 bits of the bus address. Only
// the write side is exhaustive; the read side only ever exposes the eight
// collision latches (no paddle/trigger registers, out of scope here).
const (
	regVSYNC  = 0x00
	regVBLANK = 0x01
	regWSYNC  = 0x02
	regRSYNC  = 0x03
	regNUSIZ0 = 0x04
	regNUSIZ1 = 0x05
	regCOLUP0 = 0x06
	regCOLUP1 = 0x07
	regCOLUPF = 0x08
	regCOLUBK = 0x09
	regCTRLPF = 0x0a
	regREFP0  = 0x0b
	regREFP1  = 0x0c
	regPF0    = 0x0d
	regPF1    = 0x0e
	regPF2    = 0x0f
	regRESP0  = 0x10
	regRESP1  = 0x11
	regRESM0  = 0x12
	regRESM1  = 0x13
	regRESBL  = 0x14
	regAUDC0  = 0x15
	regAUDC1  = 0x16
	regAUDF0  = 0x17
	regAUDF1  = 0x18
	regAUDV0  = 0x19
	regAUDV1  = 0x1a
	regGRP0   = 0x1b
	regGRP1   = 0x1c
	regENAM0  = 0x1d
	regENAM1  = 0x1e
	regENABL  = 0x1f
	regHMP0   = 0x20
	regHMP1   = 0x21
	regHMM0   = 0x22
	regHMM1   = 0x23
	regHMBL   = 0x24
	regVDELP0 = 0x25
	regVDELP1 = 0x26
	regVDELBL = 0x27
	regRESMP0 = 0x28
	regRESMP1 = 0x29
	regHMOVE  = 0x2a
	regHMCLR  = 0x2b
	regCXCLR  = 0x2c

	regCXM0P  = 0x00
	regCXM1P  = 0x01
	regCXP0FB = 0x02
	regCXP1FB = 0x03
	regCXM0FB = 0x04
	regCXM1FB = 0x05
	regCXBLPF = 0x06
	regCXPPMM = 0x07
)

// pendingWrite is one scheduled register update, applied once absCC
// reaches applyAt.
type pendingWrite struct {
	applyAt uint64
	reg     uint8
	value   uint8
}

// writeDelay is the latency, in color clocks, of every TIA write except
// VSYNC/VBLANK/WSYNC, which take effect immediately.
const writeDelay = 3

func immediateRegister(reg uint8) bool {
	return reg == regVSYNC || reg == regVBLANK || reg == regWSYNC
}
