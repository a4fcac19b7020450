package vdp

// State is the VDP's save-state payload: VRAM, CRAM, registers and the
// port/counter latches. The framebuffer and the per-frame bgPriority/
// spritePixels scratch arrays are rebuilt by the next RenderScanline call
// and are not serialized.
type State struct {
	VRAM      [0x4000]byte
	CRAM      [0x20]byte
	Register  [16]byte
	Addr      uint16
	AddrLatch byte
	WriteLatch bool
	CodeReg    byte
	ReadBuffer byte
	Status     uint8
	VCounter   uint16
	HCounter   uint8
	LineCounter int16
	LineIntPending bool
	HScrollLatch uint8
	Reg2Latch    uint8
	Reg7Latch    uint8
	VScrollLatch uint8
}

// State captures the VDP's chip state for a save state.
func (v *VDP) State() State {
	return State{
		VRAM:           v.vram,
		CRAM:           v.cram,
		Register:       v.register,
		Addr:           v.addr,
		AddrLatch:      v.addrLatch,
		WriteLatch:     v.writeLatch,
		CodeReg:        v.codeReg,
		ReadBuffer:     v.readBuffer,
		Status:         v.status,
		VCounter:       v.vCounter,
		HCounter:       v.hCounter,
		LineCounter:    v.lineCounter,
		LineIntPending: v.lineIntPending,
		HScrollLatch:   v.hScrollLatch,
		Reg2Latch:      v.reg2Latch,
		Reg7Latch:      v.reg7Latch,
		VScrollLatch:   v.vScrollLatch,
	}
}

// SetState restores a previously captured chip state.
func (v *VDP) SetState(s State) {
	v.vram = s.VRAM
	v.cram = s.CRAM
	v.cramLatch = s.CRAM
	v.register = s.Register
	v.addr = s.Addr
	v.addrLatch = s.AddrLatch
	v.writeLatch = s.WriteLatch
	v.codeReg = s.CodeReg
	v.readBuffer = s.ReadBuffer
	v.status = s.Status
	v.vCounter = s.VCounter
	v.hCounter = s.HCounter
	v.lineCounter = s.LineCounter
	v.lineIntPending = s.LineIntPending
	v.hScrollLatch = s.HScrollLatch
	v.reg2Latch = s.Reg2Latch
	v.reg7Latch = s.Reg7Latch
	v.vScrollLatch = s.VScrollLatch
}
