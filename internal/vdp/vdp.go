// Package vdp emulates the TMS9928A video display processor and its Sega
// Master System "Mode 4" superset, shared by all four consoles this module
// covers: SG-1000 and ColecoVision use the TMS9928A's four legacy graphics
// modes (Graphics I, Graphics II, Multicolor, Text — legacy.go), SMS and
// Game Gear add Mode 4 (render.go) on top of the same register/port/counter
// machinery built here.
//
// The control-port protocol, CRAM latch timing, V/H-counter piecewise
// mapping and Mode-4 rendering loops are adapted directly from
// other_examples/user-none-eMkIII's vdp.go (a from-scratch Master System
// VDP written for the same console family); the legacy TMS9928A graphics
// modes have no Mode-4-only counterpart there and are grounded on
// original_source/source/video/sms_vdp.c instead.
package vdp

import "image"

// Timing constants, in master-clock cycles from the start of a scanline,
// for the VDP's status/interrupt and palette events. They are reference
// offsets only: Console.RunFrame does not use them and settles the VBlank
// flag, line counter and CRAM latch at the start of each scanline.
const (
	VBlankInterruptCycle = 4
	LineInterruptCycle   = 8
	CRAMLatchCycle       = 14
)

// Mode is the active video mode, decoded from registers 0 and 1.
type Mode int

const (
	ModeGraphics1 Mode = iota
	ModeGraphics2
	ModeMulticolor
	ModeText
	ModeSMS4
)

// VDP holds the full chip state: VRAM, CRAM (only used in Mode 4), the 11
// control registers, port/address latch state, and the per-line counters
// driving frame/line interrupts.
type VDP struct {
	vram      [0x4000]byte
	cram      [0x20]byte
	cramLatch [0x20]byte

	register [16]byte

	addr       uint16
	addrLatch  byte
	writeLatch bool
	codeReg    byte
	readBuffer byte

	status uint8

	vCounter    uint16
	hCounter    uint8
	lineCounter int16

	lineIntPending         bool
	statusWasRead          bool
	interruptCheckRequired bool

	hScrollLatch uint8
	reg2Latch    uint8
	reg7Latch    uint8
	vScrollLatch uint8

	totalScanlines int
	legacyMode     bool // true for SG-1000/ColecoVision (no Mode 4, 16-entry fixed palette)

	bgPriority   [256]bool
	spritePixels []bool

	framebuffer *image.RGBA
}

// hCounterTable maps a scanline's master-clock cycle offset to the 8-bit
// H-counter value latched by a light-gun/paddle read, built from the
// documented three-phase piecewise mapping (9-bit internal counter,
// truncated and reordered into the 8 bits software actually reads).
var hCounterTable [228]uint8

func init() {
	idx := 0
	for v := 0x00; v <= 0x93; v++ {
		hCounterTable[idx] = uint8(v)
		idx++
	}
	for v := 0xE9; v <= 0xF3; v++ {
		hCounterTable[idx] = uint8(v)
		idx++
	}
	for idx < len(hCounterTable) {
		hCounterTable[idx] = uint8(idx)
		idx++
	}
}

// New creates a VDP with VRAM cleared and registers in their post-reset
// (all zero) state. legacyMode selects the TMS9928A 16-colour fixed
// palette (SG-1000/ColecoVision) instead of the 32-entry CRAM (SMS/GG).
func New(legacyMode bool) *VDP {
	v := &VDP{legacyMode: legacyMode}
	v.SetTotalScanlines(262)
	v.framebuffer = image.NewRGBA(image.Rect(0, 0, 256, 224))
	v.spritePixels = make([]bool, 256)
	return v
}

// SetTotalScanlines configures NTSC (262) or PAL (313) frame geometry.
func (v *VDP) SetTotalScanlines(n int) { v.totalScanlines = n }

// ActiveHeight returns 224 active scanlines when register bits M1 and M2
// are both set and 192 otherwise; the 240-line mode is not decoded. Legacy
// TMS9928A modes are always 192.
func (v *VDP) ActiveHeight() int {
	if v.legacyMode {
		return 192
	}
	m2 := v.register[0]&0x02 != 0
	m1 := v.register[1]&0x10 != 0
	if m2 && m1 {
		return 224
	}
	return 192
}

func (v *VDP) mode() Mode {
	if !v.legacyMode {
		return ModeSMS4
	}
	m1 := v.register[1]&0x10 != 0
	m2 := v.register[0]&0x02 != 0
	m3 := v.register[1]&0x08 != 0
	switch {
	case m1:
		return ModeText
	case m2:
		return ModeGraphics2
	case m3:
		return ModeMulticolor
	default:
		return ModeGraphics1
	}
}

// ReadVCounter returns the 8-bit value software reads back from the V
// counter port, using the NTSC/PAL piecewise wraparound appropriate to the
// active height.
func (v *VDP) ReadVCounter() byte {
	line := v.vCounter
	height := v.ActiveHeight()
	total := uint16(v.totalScanlines)

	if total == 262 {
		if height == 192 {
			if line <= 0xDA {
				return byte(line)
			}
			return byte(line - 0xDB + 0xD5)
		}
		if line <= 0xEA {
			return byte(line)
		}
		return byte(line - 0xEB + 0xE5)
	}

	// PAL, 313 lines.
	if height == 192 {
		if line <= 0xF2 {
			return byte(line)
		}
		return byte(line - 0xF3 + 0xBA)
	}
	if line <= 0xFF {
		return byte(line)
	}
	if line <= 0x10A {
		return byte(line - 0x100)
	}
	return byte(line - 0x10A + 0xD5)
}

// ReadHCounter returns the latched H-counter value (sampled on a light-gun
// trigger or explicit latch request).
func (v *VDP) ReadHCounter() byte { return v.hCounter }

// SetHCounter maps a cycle-within-scanline to an H-counter reading and
// latches it, called by the integrator at the point in its scanline loop a
// device would sample it.
func (v *VDP) SetHCounter(cycleInLine int) {
	idx := cycleInLine % len(hCounterTable)
	if idx < 0 {
		idx = 0
	}
	v.hCounter = hCounterTable[idx]
}

// SetVCounter sets the raw scanline-within-frame counter (0-based).
func (v *VDP) SetVCounter(line uint16) { v.vCounter = line }

// StatusWasRead and InterruptCheckRequired are consume-once flags, set by
// a status read and by a write to register 0 or 1 respectively; both clear
// themselves on read. Console.RunFrame does not poll them: the Z80 samples
// the interrupt line before every instruction.
func (v *VDP) StatusWasRead() bool {
	r := v.statusWasRead
	v.statusWasRead = false
	return r
}

func (v *VDP) InterruptCheckRequired() bool {
	r := v.interruptCheckRequired
	v.interruptCheckRequired = false
	return r
}

// ReadControl reads the status register, clearing the frame-interrupt,
// sprite-overflow and sprite-collision flags (bits 7/6/5) and the write
// latch as a side effect — exactly the real chip's read-to-clear behaviour.
func (v *VDP) ReadControl() byte {
	result := v.status
	v.status &^= 0xE0
	v.lineIntPending = false
	v.writeLatch = false
	v.statusWasRead = true
	return result
}

// WriteControl implements the two-byte control-port latch protocol: the
// first write latches the low byte of an address/value, the second
// combines it with the code field (bits 7-6) to decide whether this is a
// VRAM read setup, VRAM write setup, register write, or CRAM write setup.
func (v *VDP) WriteControl(value byte) {
	if !v.writeLatch {
		v.addrLatch = value
		v.writeLatch = true
		return
	}
	v.writeLatch = false

	v.addr = uint16(value&0x3F)<<8 | uint16(v.addrLatch)
	v.codeReg = (value >> 6) & 0x03

	switch v.codeReg {
	case 0:
		v.readBuffer = v.vram[v.addr&0x3FFF]
		v.addr = (v.addr + 1) & 0x3FFF
	case 2:
		reg := value & 0x0F
		if int(reg) < len(v.register) {
			v.register[reg] = v.addrLatch
			if reg == 0 || reg == 1 {
				v.interruptCheckRequired = true
			}
		}
	}
}

// ReadData returns the prefetched VRAM byte at the current address and
// refills the read-ahead buffer from the new address, matching the VDP's
// one-byte-behind read pipeline.
func (v *VDP) ReadData() byte {
	v.writeLatch = false
	result := v.readBuffer
	v.readBuffer = v.vram[v.addr&0x3FFF]
	v.addr = (v.addr + 1) & 0x3FFF
	return result
}

// WriteData writes to VRAM, or to CRAM when the latched code selects a
// CRAM write (Mode 4 only).
func (v *VDP) WriteData(value byte) {
	v.writeLatch = false
	if v.codeReg == 3 && !v.legacyMode {
		v.cram[v.addr&0x1F] = value
	} else {
		v.vram[v.addr&0x3FFF] = value
	}
	v.readBuffer = value
	v.addr = (v.addr + 1) & 0x3FFF
}

// SetVBlank raises the frame-interrupt status bit; the integrator calls
// this once per frame, at the start of scanline ActiveHeight()+1 before
// that line's CPU cycles run.
func (v *VDP) SetVBlank() { v.status |= 0x80 }

// InterruptPending reports whether the VDP currently wants to assert the
// shared Z80 interrupt line: a frame interrupt gated by register 1 bit 5,
// or a line interrupt gated by register 0 bit 4.
func (v *VDP) InterruptPending() bool {
	frameInt := v.status&0x80 != 0 && v.register[1]&0x20 != 0
	lineInt := v.lineIntPending && v.register[0]&0x10 != 0
	return frameInt || lineInt
}

// FrameInterruptPending reports just the frame (VBlank) interrupt condition,
// gated by register 1 bit 5, with no line-interrupt component. ColecoVision
// wires this to the Z80's NMI line rather than INT.
func (v *VDP) FrameInterruptPending() bool {
	return v.status&0x80 != 0 && v.register[1]&0x20 != 0
}

// LatchVScrollForFrame freezes register 9 (vertical scroll) for the
// duration of the frame, matching the real chip's behaviour of only
// sampling vertical scroll at the top of the frame.
func (v *VDP) LatchVScrollForFrame() { v.vScrollLatch = v.register[9] }

// LatchCRAM freezes the palette; the integrator calls it once per scanline
// before the CPU runs, so CRAM writes during a line don't tear the line
// being rendered.
func (v *VDP) LatchCRAM() { v.cramLatch = v.cram }

// LatchPerLineRegisters freezes the horizontal-scroll and name-table-base
// registers once per scanline, so a mid-line register write doesn't affect
// a line already being rendered.
func (v *VDP) LatchPerLineRegisters() {
	v.hScrollLatch = v.register[8]
	v.reg2Latch = v.register[2]
	v.reg7Latch = v.register[7]
}

// UpdateLineCounter decrements the line-interrupt counter once per
// scanline while in the active display area, reloading from register 10
// and raising lineIntPending on underflow; outside the active area it just
// continuously reloads (the real chip's documented behaviour).
func (v *VDP) UpdateLineCounter() {
	height := uint16(v.ActiveHeight())
	if v.vCounter <= height {
		if v.lineCounter == 0 {
			v.lineCounter = int16(v.register[10])
			v.lineIntPending = true
		} else {
			v.lineCounter--
		}
	} else {
		v.lineCounter = int16(v.register[10])
	}
}

// LeftColumnBlankEnabled reports register 0 bit 5 (the SMS-specific hack
// that blanks the leftmost 8 pixels with the backdrop colour).
func (v *VDP) LeftColumnBlankEnabled() bool { return v.register[0]&0x20 != 0 }

// Framebuffer returns the chip's persistent RGBA framebuffer.
func (v *VDP) Framebuffer() *image.RGBA { return v.framebuffer }

// --- raw accessors used by the save-state codec and tests ---

func (v *VDP) GetVRAM() []byte      { return v.vram[:] }
func (v *VDP) GetCRAM() []byte      { return v.cram[:] }
func (v *VDP) GetRegister(i int) byte { return v.register[i] }
func (v *VDP) GetAddress() uint16   { return v.addr }
func (v *VDP) GetStatus() byte      { return v.status }
