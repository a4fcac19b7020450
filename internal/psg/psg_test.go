package psg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetSilencesAllChannels(t *testing.T) {
	p := New(3579545, 48000)
	for _, v := range p.volume {
		assert.Equal(t, uint8(0x0F), v)
	}
}

func TestLatchAndDataWrite(t *testing.T) {
	p := New(3579545, 48000)
	p.Write(0x80) // latch tone 0, low nibble 0
	p.Write(0x3F) // data: high 6 bits
	assert.Equal(t, uint16(0x3F0), p.toneReg[0])
}

func TestVolumeLatch(t *testing.T) {
	p := New(3579545, 48000)
	p.Write(0x90 | 0x03) // latch channel 0 volume, data nibble 3
	assert.Equal(t, uint8(0x03), p.volume[0])
}

func TestNoiseLatchResetsShiftRegister(t *testing.T) {
	p := New(3579545, 48000)
	p.noiseShift = 0x1234
	p.Write(0xE4) // latch noise, white periodic bit set, rate=0
	assert.Equal(t, lfsrSeed, p.noiseShift)
}

func TestRunCyclesProducesSamples(t *testing.T) {
	p := New(3579545, 48000)
	p.Write(0x80) // tone0 low nibble
	p.Write(0x01)
	p.Write(0x90 | 0x00) // volume0 = 0 (loudest)
	p.RunCycles(3579545 / 60)
	assert.Greater(t, p.Ring().Available(), 0)
}

func TestRingQuarterCatchUpOnOverrun(t *testing.T) {
	var r SampleRing
	for i := 0; i < ringCapacity; i++ {
		r.Push(int16(i), int16(i))
	}
	assert.Equal(t, ringCapacity, r.Available())
	r.Push(9999, 9999)
	assert.Equal(t, ringCapacity-ringCapacity/4+1, r.Available())
}

func TestRingPopDrains(t *testing.T) {
	var r SampleRing
	r.Push(1, 2)
	r.Push(3, 4)
	outL := make([]int16, 4)
	outR := make([]int16, 4)
	n := r.Pop(outL, outR)
	assert.Equal(t, 2, n)
	assert.Equal(t, int16(1), outL[0])
	assert.Equal(t, int16(4), outR[1])
}

func TestStateRoundTrip(t *testing.T) {
	p := New(3579545, 48000)
	p.Write(0x80)
	p.Write(0x12)
	snap := p.State()

	other := New(3579545, 48000)
	other.SetState(snap)
	assert.Equal(t, p.toneReg, other.toneReg)
}
