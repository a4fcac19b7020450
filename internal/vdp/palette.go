package vdp

import "image/color"

// paletteScale expands a 2-bit CRAM channel value to 8 bits, matching the
// SMS VDP's resistor-ladder DAC.
var paletteScale = []uint8{0, 85, 170, 255}

func (v *VDP) cramToColor(index uint8) color.RGBA {
	entry := v.cramLatch[index&0x1F]
	r := paletteScale[entry&0x03]
	g := paletteScale[(entry>>2)&0x03]
	b := paletteScale[(entry>>4)&0x03]
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// legacyPalette is the TMS9928A's fixed 16-colour palette (index 0 is
// always "transparent", rendered as the backdrop), used by SG-1000 and
// ColecoVision which have no CRAM.
var legacyPalette = [16]color.RGBA{
	{0, 0, 0, 0xFF},
	{0, 0, 0, 0xFF},
	{33, 200, 66, 0xFF},
	{94, 220, 120, 0xFF},
	{84, 85, 237, 0xFF},
	{125, 118, 252, 0xFF},
	{212, 82, 77, 0xFF},
	{66, 235, 245, 0xFF},
	{252, 85, 84, 0xFF},
	{255, 121, 120, 0xFF},
	{212, 193, 84, 0xFF},
	{230, 206, 128, 0xFF},
	{33, 176, 59, 0xFF},
	{201, 91, 186, 0xFF},
	{204, 204, 204, 0xFF},
	{255, 255, 255, 0xFF},
}

func (v *VDP) legacyColor(index uint8) color.RGBA {
	return legacyPalette[index&0x0F]
}
