package tia

import "github.com/mguler/atari2600/hardware/tia/palette"

// playfieldBit implements the playfield layout: 40 four-pixel dots across
// the 160-pixel line, the right half mirrored or repeated depending on
// CTRLPF bit0. It also reports which half the dot fell in, needed for
// score-mode coloring.
func (t *TIA) playfieldBit(x int) (on bool, rightHalf bool) {
	dot := x >> 2
	rightHalf = dot >= 20

	d := dot
	if rightHalf && t.ctrlpf&0x01 != 0 {
		d = 39 - dot // reflected
	} else if rightHalf {
		d = dot - 20 // repeated
	}

	switch {
	case d < 4:
		return t.pf0&(1<<(4+d)) != 0, rightHalf
	case d < 12:
		return t.pf1&(1<<(7-(d-4))) != 0, rightHalf
	default:
		return t.pf2&(1<<(d-12)) != 0, rightHalf
	}
}

// copyBases returns the NUSIZ-selected replication offsets for a player or
// missile, a fixed-size array rather than an allocated slice since there
// are never more than three copies.
func copyBases(nusiz uint8) ([3]int, int) {
	switch nusiz & 0x07 {
	case 0:
		return [3]int{0, 0, 0}, 1
	case 1:
		return [3]int{0, 16, 0}, 2
	case 2:
		return [3]int{0, 32, 0}, 2
	case 3:
		return [3]int{0, 16, 32}, 3
	case 4:
		return [3]int{0, 64, 0}, 2
	case 5:
		return [3]int{0, 0, 0}, 1 // single copy, double size
	case 6:
		return [3]int{0, 32, 64}, 3
	default: // 7
		return [3]int{0, 0, 0}, 1 // single copy, quad size
	}
}

// playerBit implements the player replication/sizing rule.
func (t *TIA) playerBit(x int, o object, grp, nusiz, refp uint8) bool {
	sizeMul := sizeMultiplier(nusiz)
	bases, n := copyBases(nusiz)

	for i := 0; i < n; i++ {
		dx := ((x - o.x - bases[i]) % Width + Width) % Width
		if dx >= 8*sizeMul {
			continue
		}
		bitIndex := dx / sizeMul
		if refp&0x08 == 0 {
			bitIndex = 7 - bitIndex
		}
		if grp&(1<<bitIndex) != 0 {
			return true
		}
	}
	return false
}

// missileBit implements the missile rule: same replication as the owning
// player (unless its size-mode is 5/7, a single copy), with width from
// NUSIZ bits 4..5.
func (t *TIA) missileBit(x int, o object, nusiz uint8, enam uint8) bool {
	if enam&0x02 == 0 {
		return false
	}
	width := [4]int{1, 2, 4, 8}[(nusiz>>4)&0x03]

	bases, n := copyBases(nusiz)
	if nusiz&0x07 == 5 || nusiz&0x07 == 7 {
		n = 1
	}
	for i := 0; i < n; i++ {
		dx := ((x - o.x - bases[i]) % Width + Width) % Width
		if dx < width {
			return true
		}
	}
	return false
}

// ballBit implements the ball rule: a single copy at BLx, width from
// CTRLPF bits 4..5.
func (t *TIA) ballBit(x int, o object) bool {
	if t.effectiveENABL()&0x02 == 0 {
		return false
	}
	width := [4]int{1, 2, 4, 8}[(t.ctrlpf>>4)&0x03]
	dx := ((x - o.x) % Width + Width) % Width
	return dx < width
}

func (t *TIA) updateCollisions(p0, p1, m0, m1, bl, pf bool) {
	if m0 && p0 {
		t.cxm0p |= 0x80
	}
	if m0 && p1 {
		t.cxm0p |= 0x40
	}
	if m1 && p1 {
		t.cxm1p |= 0x80
	}
	if m1 && p0 {
		t.cxm1p |= 0x40
	}
	if p0 && pf {
		t.cxp0fb |= 0x80
	}
	if p0 && bl {
		t.cxp0fb |= 0x40
	}
	if p1 && pf {
		t.cxp1fb |= 0x80
	}
	if p1 && bl {
		t.cxp1fb |= 0x40
	}
	if m0 && pf {
		t.cxm0fb |= 0x80
	}
	if m0 && bl {
		t.cxm0fb |= 0x40
	}
	if m1 && pf {
		t.cxm1fb |= 0x80
	}
	if m1 && bl {
		t.cxm1fb |= 0x40
	}
	if bl && pf {
		t.cxblpf |= 0x80
	}
	if p0 && p1 {
		t.cxppmm |= 0x80
	}
	if m0 && m1 {
		t.cxppmm |= 0x40
	}
}

// resolveColor implements the output precedence: playfield priority flips
// whether PF/ball or the moving objects win the pixel, and score mode
// recolors the two playfield halves from COLUP0/COLUP1.
func (t *TIA) resolveColor(pf, pfRightHalf, p0, p1, m0, m1, bl bool) palette.RGB {
	// the playfield dot itself is recolored in score mode; the ball always
	// draws in plain COLUPF regardless of score mode.
	pfDotColor := t.colupf
	if t.ctrlpf&0x02 != 0 {
		if pfRightHalf {
			pfDotColor = t.colup1
		} else {
			pfDotColor = t.colup0
		}
	}

	objOn := p0 || p1 || m0 || m1
	objColor := t.colup0
	if p1 || m1 {
		objColor = t.colup1
	}

	pfOrBallColor := t.colupf
	if pf {
		pfOrBallColor = pfDotColor
	}
	pfOrBallOn := pf || bl
	pfPriority := t.ctrlpf&0x04 != 0

	switch {
	case pfPriority && pfOrBallOn:
		return palette.Color(pfOrBallColor)
	case objOn:
		return palette.Color(objColor)
	case pfOrBallOn:
		return palette.Color(pfOrBallColor)
	default:
		return palette.Color(t.colubk)
	}
}
