// Package audiosink bridges a PSG sample ring to the host audio device via
// oto/v3, pulling samples on the callback thread exactly as the teacher's
// audio_backend_oto.go's OtoPlayer.Read does. A headless build
// (-tags headless) swaps in a null sink that only drains the ring, for
// running the core under test without a real audio device, the same
// pattern as go-jeebie's backend/headless package.
package audiosink

import "encoding/binary"

// Ring is the PSG sample source a Sink drains. internal/psg.SampleRing
// satisfies this structurally; audiosink avoids importing internal/psg
// directly so the two packages can be grounded and tested independently.
type Ring interface {
	Pop(outL, outR []int16) int
}

// fillStereoPCM16 pulls up to len(p)/4 stereo frames from ring and packs
// them as interleaved 16-bit little-endian PCM into p, padding any
// shortfall with silence. scratchL/scratchR are reused across calls to
// avoid allocating on the audio callback's hot path.
func fillStereoPCM16(p []byte, ring Ring, scratchL, scratchR *[]int16) {
	frames := len(p) / 4
	if cap(*scratchL) < frames {
		*scratchL = make([]int16, frames)
		*scratchR = make([]int16, frames)
	}
	left := (*scratchL)[:frames]
	right := (*scratchR)[:frames]

	got := ring.Pop(left, right)

	for i := 0; i < got; i++ {
		binary.LittleEndian.PutUint16(p[i*4:], uint16(left[i]))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(right[i]))
	}
	for i := got; i < frames; i++ {
		binary.LittleEndian.PutUint16(p[i*4:], 0)
		binary.LittleEndian.PutUint16(p[i*4+2:], 0)
	}
}
