package vdp

// render.go implements Mode 4, the Master System/Game Gear rendering path:
// a 2bpp-per-nametable-entry, 4bpp-per-tile planar background, and an
// 8x8/8x16 sprite layer with priority, 9th-sprite overflow and collision
// detection. Adapted from other_examples/user-none-eMkIII's vdp.go
// RenderScanline/renderBackground/renderSprites.

// RenderScanline draws one active scanline into the framebuffer, dispatching
// to the legacy TMS9928A renderer or the Mode-4 renderer.
func (v *VDP) RenderScanline(line uint16) {
	if v.register[1]&0x40 == 0 {
		v.fillBackdrop(line)
		return
	}

	if v.legacyMode {
		v.renderLegacyScanline(line)
		return
	}

	for i := range v.bgPriority {
		v.bgPriority[i] = false
	}
	for i := range v.spritePixels {
		v.spritePixels[i] = false
	}

	v.renderBackgroundMode4(line)
	v.renderSpritesMode4(line)

	if v.LeftColumnBlankEnabled() {
		backdrop := v.cramToColor(16 + v.register[7]&0x0F)
		for x := 0; x < 8; x++ {
			v.framebuffer.SetRGBA(x, int(line), backdrop)
		}
	}
}

func (v *VDP) fillBackdrop(line uint16) {
	var c = v.cramToColor(16 + v.reg7Latch&0x0F)
	if v.legacyMode {
		c = v.legacyColor(v.register[7] & 0x0F)
	}
	for x := 0; x < 256; x++ {
		v.framebuffer.SetRGBA(x, int(line), c)
	}
}

func (v *VDP) renderBackgroundMode4(line uint16) {
	height := v.ActiveHeight()
	nameTableBase := uint16(v.reg2Latch&0x0E) << 10
	if height != 192 {
		nameTableBase = (uint16(v.reg2Latch&0x0C) << 10) | 0x0700
	}

	hScroll := v.hScrollLatch
	vScroll := v.vScrollLatch

	// reg0 bit6: lock_row_0_1, disables horizontal scroll on rows 0-1.
	lockRow01 := v.register[0]&0x40 != 0
	// reg0 bit7: lock_col_24_31, disables vertical scroll on columns 24-31.
	lockCol2431 := v.register[0]&0x80 != 0

	scrolledLine := (line + uint16(vScroll)) % uint16(height)
	if height == 192 {
		scrolledLine = (line + uint16(vScroll)) % 224
		if scrolledLine >= 224 {
			scrolledLine -= 224
		}
	}

	lineHScroll := hScroll
	if lockRow01 && line < 16 {
		lineHScroll = 0
	}

	for col := 0; col < 32; col++ {
		effectiveLine := scrolledLine
		if lockCol2431 && col >= 24 {
			effectiveLine = line
		}
		row := effectiveLine / 8
		fineY := effectiveLine % 8

		scrolledCol := (col + int(32-lineHScroll/8)) % 32
		entryAddr := nameTableBase + row*64 + uint16(scrolledCol)*2
		lo := v.vram[entryAddr&0x3FFF]
		hi := v.vram[(entryAddr+1)&0x3FFF]

		patternIndex := uint16(hi&0x01)<<8 | uint16(lo)
		hFlip := hi&0x02 != 0
		vFlip := hi&0x04 != 0
		paletteSel := hi & 0x08
		priority := hi&0x10 != 0

		patY := fineY
		if vFlip {
			patY = 7 - fineY
		}
		patternAddr := patternIndex*32 + patY*4

		plane0 := v.vram[patternAddr&0x3FFF]
		plane1 := v.vram[(patternAddr+1)&0x3FFF]
		plane2 := v.vram[(patternAddr+2)&0x3FFF]
		plane3 := v.vram[(patternAddr+3)&0x3FFF]

		for px := 0; px < 8; px++ {
			bit := px
			if !hFlip {
				bit = 7 - px
			}
			colorIdx := ((plane0 >> bit) & 1) | (((plane1 >> bit) & 1) << 1) |
				(((plane2 >> bit) & 1) << 2) | (((plane3 >> bit) & 1) << 3)
			screenX := (col*8 + px - int(lineHScroll%8) + 256) % 256

			v.bgPriority[screenX] = priority && colorIdx != 0
			c := v.cramToColor(v.paletteBase(paletteSel) + colorIdx)
			v.framebuffer.SetRGBA(screenX, int(line), c)
		}
	}
}

func (v *VDP) paletteBase(paletteSel byte) byte {
	if paletteSel != 0 {
		return 16
	}
	return 0
}

func (v *VDP) renderSpritesMode4(line uint16) {
	satBase := uint16(v.register[5]&0x7E) << 7
	tall := v.register[1]&0x02 != 0
	zoom := v.register[1]&0x01 != 0
	patternBase := uint16(v.register[6]&0x04) << 11
	ecShift := v.register[0]&0x08 != 0

	spriteHeight := 8
	if tall {
		spriteHeight = 16
	}
	renderHeight := spriteHeight
	if zoom {
		renderHeight *= 2
	}

	type visibleSprite struct {
		x, y  int
		index int
	}
	var visible []visibleSprite

	for i := 0; i < 64; i++ {
		y := int(v.vram[(satBase+uint16(i))&0x3FFF])
		if v.ActiveHeight() == 192 && y == 208 {
			break
		}
		y++
		if y > 256 {
			y -= 256
		}
		if int(line) < y || int(line) >= y+renderHeight {
			continue
		}
		if len(visible) == 8 {
			v.status |= 0x40 // a ninth sprite on this line
			break
		}
		visible = append(visible, visibleSprite{y: y, index: i})
	}

	for vi := len(visible) - 1; vi >= 0; vi-- {
		s := visible[vi]
		xAddr := (satBase + 0x80 + uint16(s.index)*2) & 0x3FFF
		x := int(v.vram[xAddr])
		patIndex := uint16(v.vram[xAddr+1])
		if tall {
			patIndex &^= 1
		}
		patIndex |= patternBase >> 5

		if ecShift {
			x -= 8
		}

		lineInSprite := int(line) - s.y
		if zoom {
			lineInSprite /= 2
		}
		patternAddr := (patIndex*32 + uint16(lineInSprite)*4) & 0x3FFF

		plane0 := v.vram[patternAddr]
		plane1 := v.vram[(patternAddr+1)&0x3FFF]
		plane2 := v.vram[(patternAddr+2)&0x3FFF]
		plane3 := v.vram[(patternAddr+3)&0x3FFF]

		for px := 0; px < 8; px++ {
			screenX := x + px
			if zoom {
				screenX = x + px*2
			}
			bit := 7 - px
			colorIdx := (plane0>>bit)&1 | (plane1>>bit)&1<<1 | (plane2>>bit)&1<<2 | (plane3>>bit)&1<<3
			if colorIdx == 0 {
				continue
			}
			width := 1
			if zoom {
				width = 2
			}
			for w := 0; w < width; w++ {
				sx := screenX + w
				if sx < 0 || sx >= 256 {
					continue
				}
				if v.bgPriority[sx] {
					continue
				}
				if v.spritePixels[sx] {
					v.status |= 0x20
					continue
				}
				v.spritePixels[sx] = true
				v.framebuffer.SetRGBA(sx, int(line), v.cramToColor(16+colorIdx))
			}
		}
	}
}
