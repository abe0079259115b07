// Package tia implements the Television Interface Adapter: beam timing,
// the write-delay scheduler, playfield/player/missile/ball pixel
// composition, collision latches, frame synchronization, and (via the
// audio sub-package) the two sound channels.
//
// Modeled on Gopher2600's hardware/tia package in spirit — a single chip
// object ticked once per color clock that owns a framebuffer and a
// pending-write queue — though collapsed into fewer files, since
// Gopher2600 splits video/audio/delay into a deeper package tree than this
// core's scope needs.
package tia

import (
	"github.com/mguler/atari2600/hardware/tia/audio"
	"github.com/mguler/atari2600/hardware/tia/palette"
	"github.com/mguler/atari2600/logger"
)

// VisibleHeight is the number of visible scanlines captured into the
// framebuffer after the latched visible_start line.
const VisibleHeight = 230

// Width is the number of visible pixels per scanline.
const Width = 160

// totalCC is the number of color clocks per scanline.
const totalCC = 228

// hblankCC is the first visible color clock of a scanline.
const hblankCC = 68

// scanlineSafetyCap restarts a frame if VSYNC mode never sees a falling
// edge.
const scanlineSafetyCap = 400

// vblankLatchWindow bounds how many scanlines into a frame a VBLANK
// falling edge may still set visible_start to the current scanline. Every
// falling edge inside the window sets it again; it is not limited to one
// latch per frame.
const vblankLatchWindow = 120

// FrameSyncMode selects how TIA decides where a frame begins.
type FrameSyncMode int

const (
	// SyncVSYNC arms a new frame on VSYNC's bit1 falling edge (default).
	SyncVSYNC FrameSyncMode = iota
	// SyncFixed262 restarts the frame every 262 scanlines regardless of
	// VSYNC activity.
	SyncFixed262
)

// Debug groups the host-tunable diagnostic knobs exposed for frame-sync
// and visibility-window experimentation.
type Debug struct {
	IgnoreVBlank        bool
	IgnoreVisibleWindow bool
	RESPOffset          int
	SyncMode            FrameSyncMode
}

// object is the shared position/motion state for a player, missile or
// ball: an x coordinate in the 160-pixel visible domain and a signed
// horizontal-motion nibble loaded from its HMxx register.
type object struct {
	x      int
	motion int8
}

// TIA is the chip. Construct with New and drive with Tick, once per color
// clock, from the console's per-CPU-cycle loop.
type TIA struct {
	Debug Debug

	cc    int
	sl    int
	absCC uint64
	frame int

	vsyncPrev, vblankPrev   bool
	startFrameNextScanline  bool
	visibleStart            int

	wsyncHold bool

	pending []pendingWrite

	vsync, vblank uint8

	colup0, colup1, colupf, colubk uint8
	ctrlpf                         uint8
	pf0, pf1, pf2                  uint8

	nusiz0, nusiz1 uint8
	refp0, refp1   uint8

	grp0, grp0Old uint8
	grp1, grp1Old uint8
	enam0, enam1  uint8
	enabl, enablOld uint8

	vdelp0, vdelp1, vdelbl bool
	resmp0, resmp1         bool

	p0, p1, m0, m1, bl object

	cxm0p, cxm1p, cxp0fb, cxp1fb uint8
	cxm0fb, cxm1fb, cxblpf, cxppmm uint8

	frameBuf []uint32

	mixer *audio.Mixer
}

// New creates a TIA with a framebuffer of Width x VisibleHeight pixels.
func New() *TIA {
	t := &TIA{
		visibleStart: 40,
		mixer:        audio.NewMixer(),
	}
	t.frameBuf = make([]uint32, Width*VisibleHeight)
	return t
}

// Framebuffer returns the current frame's pixel buffer, BGRA-packed one
// uint32 per pixel, row-major.
func (t *TIA) Framebuffer() []uint32 { return t.frameBuf }

// Frame returns the number of frames completed so far.
func (t *TIA) Frame() int { return t.frame }

// BeamPosition reports cc/sl/abs_cc/visible_start for host diagnostics.
func (t *TIA) BeamPosition() (cc, sl int, absCC uint64, visibleStart int) {
	return t.cc, t.sl, t.absCC, t.visibleStart
}

// WSyncHeld reports whether the CPU should be held this cycle.
func (t *TIA) WSyncHeld() bool { return t.wsyncHold }

// DrainAudio returns and clears the pending PCM sample buffer.
func (t *TIA) DrainAudio() []int16 { return t.mixer.Drain() }

// ReadRegister implements bus.TIA. Only the eight collision latches are
// readable, matching this core's register surface.
func (t *TIA) ReadRegister(addr uint16) uint8 {
	switch uint8(addr) & 0x3f {
	case regCXM0P:
		return t.cxm0p
	case regCXM1P:
		return t.cxm1p
	case regCXP0FB:
		return t.cxp0fb
	case regCXP1FB:
		return t.cxp1fb
	case regCXM0FB:
		return t.cxm0fb
	case regCXM1FB:
		return t.cxm1fb
	case regCXBLPF:
		return t.cxblpf
	case regCXPPMM:
		return t.cxppmm
	default:
		return 0
	}
}

// WriteRegister implements bus.TIA. VSYNC/VBLANK/WSYNC apply immediately;
// everything else is scheduled through the pending-write delay queue.
func (t *TIA) WriteRegister(addr uint16, v uint8) {
	reg := uint8(addr) & 0x3f
	if immediateRegister(reg) {
		t.apply(reg, v)
		return
	}
	t.pending = append(t.pending, pendingWrite{applyAt: t.absCC + writeDelay, reg: reg, value: v})
}

// Tick advances the TIA by exactly one color clock: arm a new frame if one
// is due, apply any writes whose delay has elapsed, step the audio mixer,
// render the current pixel if visible, then advance the beam.
func (t *TIA) Tick() {
	if t.startFrameNextScanline && t.cc == 0 {
		t.beginFrame()
	}

	t.applyDuePending()
	t.mixer.Tick()

	if t.visible() {
		t.renderPixel()
	}

	t.cc++
	t.absCC++
	if t.cc >= totalCC {
		t.cc = 0
		t.sl++
		t.wsyncHold = false
		if t.Debug.SyncMode == SyncFixed262 && t.sl >= 262 {
			t.startFrameNextScanline = true
		}
		if t.sl >= scanlineSafetyCap {
			logger.Log("tia", "frame-sync safety cap reached, frame restarted")
			t.startFrameNextScanline = true
		}
	}
}

func (t *TIA) beginFrame() {
	t.sl = 0
	t.frame++
	t.visibleStart = 40
	t.startFrameNextScanline = false
}

func (t *TIA) visible() bool {
	if !t.Debug.IgnoreVBlank && t.vblank&0x02 != 0 {
		return false
	}
	if t.Debug.IgnoreVisibleWindow {
		return t.cc >= hblankCC && t.cc < totalCC
	}
	return t.sl >= t.visibleStart && t.sl < t.visibleStart+VisibleHeight &&
		t.cc >= hblankCC && t.cc < totalCC
}

func (t *TIA) applyDuePending() {
	for len(t.pending) > 0 && t.pending[0].applyAt <= t.absCC {
		w := t.pending[0]
		t.pending = t.pending[1:]
		t.apply(w.reg, w.value)
	}
}

// apply performs the actual register-write side effect, whether called
// immediately (VSYNC/VBLANK/WSYNC) or from the pending-write queue.
func (t *TIA) apply(reg, v uint8) {
	switch reg {
	case regVSYNC:
		fallingEdge := t.vsyncPrev && v&0x02 == 0
		t.vsyncPrev = v&0x02 != 0
		t.vsync = v
		if fallingEdge && t.Debug.SyncMode == SyncVSYNC {
			t.startFrameNextScanline = true
		}
	case regVBLANK:
		fallingEdge := t.vblankPrev && v&0x02 == 0
		t.vblankPrev = v&0x02 != 0
		t.vblank = v
		if fallingEdge && t.sl < vblankLatchWindow {
			t.visibleStart = t.sl
		}
	case regWSYNC:
		t.wsyncHold = true

	case regNUSIZ0:
		t.nusiz0 = v
	case regNUSIZ1:
		t.nusiz1 = v
	case regCOLUP0:
		t.colup0 = v
	case regCOLUP1:
		t.colup1 = v
	case regCOLUPF:
		t.colupf = v
	case regCOLUBK:
		t.colubk = v
	case regCTRLPF:
		t.ctrlpf = v
	case regREFP0:
		t.refp0 = v
	case regREFP1:
		t.refp1 = v
	case regPF0:
		t.pf0 = v
	case regPF1:
		t.pf1 = v
	case regPF2:
		t.pf2 = v

	case regRESP0:
		t.p0.x = t.strobePosition()
	case regRESP1:
		t.p1.x = t.strobePosition()
	case regRESM0:
		t.m0.x = t.strobePosition()
	case regRESM1:
		t.m1.x = t.strobePosition()
	case regRESBL:
		t.bl.x = t.strobePosition()

	case regAUDC0:
		t.mixer.WriteAUDC0(v)
	case regAUDC1:
		t.mixer.WriteAUDC1(v)
	case regAUDF0:
		t.mixer.WriteAUDF0(v)
	case regAUDF1:
		t.mixer.WriteAUDF1(v)
	case regAUDV0:
		t.mixer.WriteAUDV0(v)
	case regAUDV1:
		t.mixer.WriteAUDV1(v)

	case regGRP0:
		// writing GRP0 latches the current GRP1 into its old value; writing
		// GRP1 (below) does the same for GRP0 and ENABL. This is the VDEL
		// chaining real hardware relies on to double-buffer sprites.
		t.grp1Old = t.grp1
		t.grp0 = v
	case regGRP1:
		t.grp0Old = t.grp0
		t.enablOld = t.enabl
		t.grp1 = v

	case regENAM0:
		t.enam0 = v
	case regENAM1:
		t.enam1 = v
	case regENABL:
		t.enabl = v

	case regHMP0:
		t.p0.motion = decodeMotion(v)
	case regHMP1:
		t.p1.motion = decodeMotion(v)
	case regHMM0:
		t.m0.motion = decodeMotion(v)
	case regHMM1:
		t.m1.motion = decodeMotion(v)
	case regHMBL:
		t.bl.motion = decodeMotion(v)

	case regVDELP0:
		t.vdelp0 = v&0x01 != 0
	case regVDELP1:
		t.vdelp1 = v&0x01 != 0
	case regVDELBL:
		t.vdelbl = v&0x01 != 0
	case regRESMP0:
		t.resmp0 = v&0x02 != 0
		if t.resmp0 {
			t.snapMissileToPlayer(&t.m0, t.p0, t.nusiz0)
		}
	case regRESMP1:
		t.resmp1 = v&0x02 != 0
		if t.resmp1 {
			t.snapMissileToPlayer(&t.m1, t.p1, t.nusiz1)
		}

	case regHMOVE:
		t.applyHMOVE()
	case regHMCLR:
		t.p0.motion, t.p1.motion = 0, 0
		t.m0.motion, t.m1.motion = 0, 0
		t.bl.motion = 0

	case regCXCLR:
		t.cxm0p, t.cxm1p, t.cxp0fb, t.cxp1fb = 0, 0, 0, 0
		t.cxm0fb, t.cxm1fb, t.cxblpf, t.cxppmm = 0, 0, 0, 0

	default:
		logger.Logf("tia", "write to unhandled register %#02x", reg)
	}
}

// strobePosition computes the object x a RESPx/RESMx/RESBLx strobe sets:
// the current beam position in the visible domain, clamped to 0 during
// HBLANK, plus a runtime-tunable offset.
func (t *TIA) strobePosition() int {
	x := t.cc - hblankCC + t.Debug.RESPOffset
	if x < 0 {
		x = 0
	}
	if x > Width-1 {
		x = Width - 1
	}
	return x
}

// decodeMotion extracts the signed 4-bit motion nibble from an HMxx write;
// the value lives in the high nibble and is negated.
func decodeMotion(v uint8) int8 {
	n := int8(v) >> 4
	return -n
}

func (t *TIA) applyHMOVE() {
	move := func(o *object) {
		o.x = ((o.x+int(o.motion))%Width + Width) % Width
	}
	move(&t.p0)
	move(&t.p1)
	move(&t.m0)
	move(&t.m1)
	move(&t.bl)
}

// sizeMultiplier returns the player-size scaling (1/2/4) implied by NUSIZ
// bits 0..2, used both for player rendering and for RESMPx snapping.
func sizeMultiplier(nusiz uint8) int {
	switch nusiz & 0x07 {
	case 5:
		return 2
	case 7:
		return 4
	default:
		return 1
	}
}

// snapMissileToPlayer implements the RESMPx center-offset rule: the
// missile snaps to a fixed offset from its player, scaled by the player's
// size.
func (t *TIA) snapMissileToPlayer(m *object, p object, nusiz uint8) {
	offset := 4 * sizeMultiplier(nusiz)
	m.x = ((p.x+offset)%Width + Width) % Width
}

func (t *TIA) renderPixel() {
	x := t.cc - hblankCC
	y := t.sl - t.visibleStart
	if x < 0 || x >= Width || y < 0 || y >= VisibleHeight {
		return
	}

	pfOn, pfScoreSide := t.playfieldBit(x)
	p0On := t.playerBit(x, t.p0, t.effectiveGRP0(), t.nusiz0, t.refp0)
	p1On := t.playerBit(x, t.p1, t.effectiveGRP1(), t.nusiz1, t.refp1)
	m0On := t.missileBit(x, t.m0, t.nusiz0, t.enam0)
	m1On := t.missileBit(x, t.m1, t.nusiz1, t.enam1)
	blOn := t.ballBit(x, t.bl)

	t.updateCollisions(p0On, p1On, m0On, m1On, blOn, pfOn)

	color := t.resolveColor(pfOn, pfScoreSide, p0On, p1On, m0On, m1On, blOn)
	t.frameBuf[y*Width+x] = bgra(color)
}

func bgra(c palette.RGB) uint32 {
	return uint32(0xff)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (t *TIA) effectiveGRP0() uint8 {
	if t.vdelp0 {
		return t.grp0Old
	}
	return t.grp0
}

func (t *TIA) effectiveGRP1() uint8 {
	if t.vdelp1 {
		return t.grp1Old
	}
	return t.grp1
}

func (t *TIA) effectiveENABL() uint8 {
	if t.vdelbl {
		return t.enablOld
	}
	return t.enabl
}
