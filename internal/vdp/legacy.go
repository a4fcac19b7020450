package vdp

// legacy.go implements the TMS9928A's four legacy text/graphics modes used
// by SG-1000 and ColecoVision (no Mode 4, no CRAM — register 7's low
// nibble picks the backdrop out of the fixed 16-colour palette). Grounded
// on original_source/source/video/sms_vdp.c's Graphics I/II/Multicolor/Text
// handling, since eMkIII (Mode-4-only) has no equivalent code path.
func (v *VDP) renderLegacyScanline(line uint16) {
	switch v.mode() {
	case ModeText:
		v.renderText(line)
	case ModeMulticolor:
		v.renderMulticolor(line)
	case ModeGraphics2:
		v.renderGraphics(line, true)
	default:
		v.renderGraphics(line, false)
	}
}

func (v *VDP) nameTableBaseLegacy() uint16 { return uint16(v.register[2]&0x0F) << 10 }
func (v *VDP) colorTableBaseLegacy(g2 bool) uint16 {
	if g2 {
		return uint16(v.register[3]&0x80) << 6
	}
	return uint16(v.register[3]) << 6
}
func (v *VDP) patternTableBaseLegacy(g2 bool) uint16 {
	if g2 {
		return uint16(v.register[4]&0x04) << 11
	}
	return uint16(v.register[4]&0x07) << 11
}

// renderGraphics covers Graphics I (g2=false, one shared colour table for
// all 256 patterns) and Graphics II (g2=true, three colour/pattern table
// banks, one per third of the screen, selected by the character row).
func (v *VDP) renderGraphics(line uint16, g2 bool) {
	row := line / 8
	fineY := line % 8
	nameBase := v.nameTableBaseLegacy()
	colorBase := v.colorTableBaseLegacy(g2)
	patternBase := v.patternTableBaseLegacy(g2)

	for col := 0; col < 32; col++ {
		name := v.vram[(nameBase+row*32+uint16(col))&0x3FFF]

		var patAddr, colAddr uint16
		if g2 {
			third := uint16(row/8) & 0x03
			patAddr = patternBase + third<<11 + uint16(name)*8 + fineY
			colAddr = colorBase + third<<11 + uint16(name)*8 + fineY
		} else {
			patAddr = patternBase + uint16(name)*8 + fineY
			colAddr = colorBase + uint16(name)/8
		}

		pattern := v.vram[patAddr&0x3FFF]
		colorByte := v.vram[colAddr&0x3FFF]
		fg := colorByte >> 4
		bg := colorByte & 0x0F

		for px := 0; px < 8; px++ {
			screenX := col*8 + px
			bit := (pattern >> (7 - px)) & 1
			idx := bg
			if bit != 0 {
				idx = fg
			}
			if idx == 0 {
				idx = v.register[7] & 0x0F
			}
			v.framebuffer.SetRGBA(screenX, int(line), v.legacyColor(idx))
		}
	}
}

// renderMulticolor draws the low-resolution 64x48 block mode, each block
// held for four scanlines.
func (v *VDP) renderMulticolor(line uint16) {
	nameBase := v.nameTableBaseLegacy()
	patternBase := v.patternTableBaseLegacy(false)
	row := line / 8
	blockRow := (line % 8) / 4

	for col := 0; col < 32; col++ {
		name := v.vram[(nameBase+row*32+uint16(col))&0x3FFF]
		patAddr := patternBase + uint16(name)*8 + blockRow*4
		colorByte := v.vram[patAddr&0x3FFF]
		fg := colorByte >> 4
		bg := colorByte & 0x0F

		for half := 0; half < 2; half++ {
			idx := bg
			if half == 0 {
				idx = fg
			}
			if idx == 0 {
				idx = v.register[7] & 0x0F
			}
			for px := 0; px < 4; px++ {
				screenX := col*8 + half*4 + px
				v.framebuffer.SetRGBA(screenX, int(line), v.legacyColor(idx))
			}
		}
	}
}

// renderText draws the 40-column (240-pixel wide, centre-justified within
// the 256-pixel framebuffer) text mode, one colour pair for the whole
// screen from register 7.
func (v *VDP) renderText(line uint16) {
	nameBase := v.nameTableBaseLegacy()
	patternBase := v.patternTableBaseLegacy(false)
	row := line / 8
	fineY := line % 8
	fg := v.register[7] >> 4
	bg := v.register[7] & 0x0F

	for x := 0; x < 256; x++ {
		v.framebuffer.SetRGBA(x, int(line), v.legacyColor(bg))
	}

	for col := 0; col < 40; col++ {
		name := v.vram[(nameBase+row*40+uint16(col))&0x3FFF]
		patAddr := patternBase + uint16(name)*8 + fineY
		pattern := v.vram[patAddr&0x3FFF]
		for px := 0; px < 6; px++ {
			bit := (pattern >> (7 - px)) & 1
			idx := bg
			if bit != 0 {
				idx = fg
			}
			screenX := 8 + col*6 + px
			if screenX < 256 {
				v.framebuffer.SetRGBA(screenX, int(line), v.legacyColor(idx))
			}
		}
	}
}
