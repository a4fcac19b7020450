package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankROM(size int) []byte {
	rom := make([]byte, size)
	for i := range rom {
		rom[i] = 0x00 // Z80 NOP, keeps RunFrame from ever crashing on decode
	}
	return rom
}

func TestSegaMapperBankSwitch(t *testing.T) {
	rom := blankROM(0x10000)
	rom[0x4000] = 0xAA // start of bank 1
	rom[0x8000] = 0xBB // start of bank 2 at page boundary 2

	m := NewSegaMapper(rom)
	assert.Equal(t, byte(0x00), m.Read(0x0000))

	m.Write(0xFFFE, 1)
	assert.Equal(t, byte(0xAA), m.Read(0x4000))

	m.Write(0xFFFF, 2)
	assert.Equal(t, byte(0xBB), m.Read(0x8000))
}

func TestSegaMapperCartRAMWindow(t *testing.T) {
	rom := blankROM(0x8000)
	mem := &smsMemory{mapper: NewSegaMapper(rom)}
	sm := mem.mapper.(*SegaMapper)

	sm.Write(0xFFFC, 0x08) // cart RAM enabled, page 0
	mem.Write(0x8100, 0x42)
	assert.Equal(t, byte(0x42), mem.Read(0x8100))

	sm.Write(0xFFFC, 0x0C) // page 1
	mem.Write(0x8100, 0x55)
	assert.Equal(t, byte(0x55), mem.Read(0x8100))

	sm.Write(0xFFFC, 0x08) // back to page 0, untouched
	assert.Equal(t, byte(0x42), mem.Read(0x8100))
}

func TestFixedMapperMirrorsPowerOfTwo(t *testing.T) {
	rom := []byte{1, 2, 3}
	m := NewFixedMapper(rom)
	assert.Equal(t, byte(1), m.Read(0))
	assert.Equal(t, byte(2), m.Read(1))
	assert.Equal(t, byte(1), m.Read(4)) // mirrored: size rounds up to 4
}

func TestControllerToPort1Byte(t *testing.T) {
	s := ControllerState{Up: true, Button2: true}
	v := s.ToPort1Byte()
	assert.Equal(t, byte(0xFF&^0x01&^0x20), v)
}

func TestSMSRunFrameProducesFramebuffer(t *testing.T) {
	c := NewSMS(blankROM(0xC000), MapperSega, RegionNTSC)
	c.RunFrame()
	assert.NotNil(t, c.Framebuffer())
}

func TestSMSControllerPortReadsP1(t *testing.T) {
	c := NewSMS(blankROM(0xC000), MapperSega, RegionNTSC)
	c.SetInput(ControllerState{Up: true})
	v := c.io.In(0xDC)
	assert.Equal(t, byte(0xFF&^0x01), v)
}

func TestSG1000GraphicBoardCursor(t *testing.T) {
	c := NewSG1000(blankROM(0x8000), true, RegionNTSC)
	c.SetInput(ControllerState{PaddleAxis: 10})
	v := c.io.In(0x00)
	assert.Equal(t, byte(38), v)
}

func TestColecoJoystickModeNoInput(t *testing.T) {
	c := NewColecoVision(blankROM(0x2000), blankROM(0x8000), RegionNTSC)
	c.io.Out(0xC0, 0) // select joystick mode
	assert.Equal(t, byte(0x7F), c.io.In(0xE0))
}

func TestColecoKeypadModeReturnsDigitCode(t *testing.T) {
	c := NewColecoVision(blankROM(0x2000), blankROM(0x8000), RegionNTSC)
	c.io.Out(0x80, 0) // select keypad mode
	c.SetKeypad(1, 5) // digit '5'
	assert.Equal(t, byte(0x73), c.io.In(0xE0))
}

func TestConsoleSaveLoadStateRoundTrip(t *testing.T) {
	c := NewSMS(blankROM(0xC000), MapperSega, RegionNTSC)
	c.RunFrame()

	data, err := c.SaveState("SMS ")
	require.NoError(t, err)

	c2 := NewSMS(blankROM(0xC000), MapperSega, RegionNTSC)
	require.NoError(t, c2.LoadState(data))

	require.Equal(t, c.CPU.State(), c2.CPU.State())
	assert.Equal(t, c.VDP.State().VRAM, c2.VDP.State().VRAM)
}

func TestConsoleStateRoundTrip(t *testing.T) {
	c := NewSMS(blankROM(0xC000), MapperSega, RegionNTSC)
	c.RunFrame()
	snap := c.State()

	c2 := NewSMS(blankROM(0xC000), MapperSega, RegionNTSC)
	c2.SetState(snap)

	require.Equal(t, snap.CPU, c2.CPU.State())
	assert.Equal(t, snap.VDP.VRAM, c2.VDP.State().VRAM)
}
