package vdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeControlWord(v *VDP, addr uint16, code byte) {
	v.WriteControl(byte(addr))
	v.WriteControl(byte(addr>>8&0x3F) | code<<6)
}

func TestRegisterWriteLatchesBothBytes(t *testing.T) {
	v := New(false)
	// Code 2 (register write): data in low byte, register number in bits
	// 0-3 of the second byte.
	v.WriteControl(0x0F) // value to store
	v.WriteControl(0x80 | 0x01)
	assert.Equal(t, byte(0x0F), v.GetRegister(1))
}

func TestVRAMWriteReadRoundTrip(t *testing.T) {
	v := New(false)
	writeControlWord(v, 0x1234, 1) // VRAM write setup
	v.WriteData(0xAB)
	writeControlWord(v, 0x1234, 0) // VRAM read setup
	assert.Equal(t, byte(0xAB), v.ReadData())
}

func TestStatusReadClearsFrameInterruptBit(t *testing.T) {
	v := New(false)
	v.SetVBlank()
	assert.NotZero(t, v.ReadControl()&0x80)
	assert.Zero(t, v.GetStatus()&0x80)
}

func TestLineCounterUnderflowSetsPending(t *testing.T) {
	v := New(false)
	v.register[10] = 0
	v.SetVCounter(0)
	v.UpdateLineCounter()
	assert.True(t, v.lineIntPending)
}

func TestCRAMWriteOnlyInMode4(t *testing.T) {
	v := New(false) // SMS-style (not legacy)
	writeControlWord(v, 0x0005, 3) // CRAM write setup
	v.WriteData(0x3F)
	assert.Equal(t, byte(0x3F), v.cram[5])
}

func TestActiveHeightDefaultsTo192(t *testing.T) {
	v := New(false)
	assert.Equal(t, 192, v.ActiveHeight())
}

func TestActiveHeight224WhenM1M2Set(t *testing.T) {
	v := New(false)
	v.register[0] |= 0x02
	v.register[1] |= 0x10
	assert.Equal(t, 224, v.ActiveHeight())
}

func TestStateRoundTrip(t *testing.T) {
	v := New(false)
	writeControlWord(v, 0x0100, 1)
	v.WriteData(0x77)
	snap := v.State()

	other := New(false)
	other.SetState(snap)
	assert.Equal(t, byte(0x77), other.vram[0x0100])
}
