package audiosink

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRing struct {
	left, right []int16
}

func (r *fakeRing) Pop(outL, outR []int16) int {
	n := copy(outL, r.left)
	copy(outR, r.right)
	r.left = r.left[n:]
	r.right = r.right[n:]
	return n
}

func TestFillStereoPCM16PacksAvailableSamples(t *testing.T) {
	ring := &fakeRing{left: []int16{100, -200}, right: []int16{300, -400}}
	p := make([]byte, 4*2)
	var bl, br []int16

	fillStereoPCM16(p, ring, &bl, &br)

	assert.Equal(t, int16(100), int16(binary.LittleEndian.Uint16(p[0:2])))
	assert.Equal(t, int16(300), int16(binary.LittleEndian.Uint16(p[2:4])))
	assert.Equal(t, int16(-200), int16(binary.LittleEndian.Uint16(p[4:6])))
	assert.Equal(t, int16(-400), int16(binary.LittleEndian.Uint16(p[6:8])))
}

func TestFillStereoPCM16PadsShortfallWithSilence(t *testing.T) {
	ring := &fakeRing{left: []int16{42}, right: []int16{42}}
	p := make([]byte, 4*3)
	var bl, br []int16

	fillStereoPCM16(p, ring, &bl, &br)

	assert.Equal(t, int16(42), int16(binary.LittleEndian.Uint16(p[0:2])))
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(p[4:6])))
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(p[8:10])))
}
