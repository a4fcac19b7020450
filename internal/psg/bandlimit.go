package psg

import "math"

// Band-limited edge synthesis: every tone/noise transition is injected into
// a short ring of future samples as a windowed-sinc "step impulse" rather
// than landing as a hard step, so the 16x-divided SN76489 clock doesn't
// alias against the host sample rate. The table is phased (32 sub-sample
// positions) so an edge that falls between two output samples still lands
// at the right fractional offset. This mirrors the technique named in
// spec.md's band-limiting component; no pack example ships SN76489-style
// BLEP tables, so the table is built once in init() from first principles
// (windowed sinc, stdlib math) rather than grounded on a specific file.
const (
	kernelPhases = 32
	kernelWidth  = 48
	ringSize     = 64 // next power of two above kernelWidth
)

var stepKernel [kernelPhases][kernelWidth]float64

func init() {
	// Each phase row is a Blackman-windowed sinc centered just ahead of the
	// edge, normalized so the row sums to 1 (the discrete derivative of a
	// band-limited unit step integrates back to exactly one step).
	for phase := 0; phase < kernelPhases; phase++ {
		center := float64(kernelWidth)/2 + float64(phase)/float64(kernelPhases)
		var sum float64
		for n := 0; n < kernelWidth; n++ {
			x := float64(n) - center
			var s float64
			if math.Abs(x) < 1e-9 {
				s = 1
			} else {
				arg := math.Pi * x / 4
				s = math.Sin(arg) / arg
			}
			w := 0.42 - 0.5*math.Cos(2*math.Pi*float64(n)/float64(kernelWidth-1)) +
				0.08*math.Cos(4*math.Pi*float64(n)/float64(kernelWidth-1))
			v := s * w
			stepKernel[phase][n] = v
			sum += v
		}
		if sum != 0 {
			for n := 0; n < kernelWidth; n++ {
				stepKernel[phase][n] /= sum
			}
		}
	}
}

// edgeSynth accumulates band-limited transitions for one channel and
// integrates them back into a PCM level on read.
type edgeSynth struct {
	buf      [ringSize]float64
	pos      int
	lastOut  int16
	level    float64
}

// edge schedules a transition to newLevel at sub-sample phase 0, measured
// from the current read position.
func (e *edgeSynth) edge(newLevel int16) {
	e.edgeAtPhase(0, newLevel)
}

// edgeAtPhase schedules a transition to newLevel at the given sub-sample
// phase (0..31, clamped), measured from the current read position; the tone
// and noise clocks call it with the current fractional sample position.
func (e *edgeSynth) edgeAtPhase(phase int, newLevel int16) {
	if newLevel == e.lastOut {
		return
	}
	delta := float64(newLevel) - float64(e.lastOut)
	e.lastOut = newLevel
	if phase < 0 {
		phase = 0
	}
	if phase >= kernelPhases {
		phase = kernelPhases - 1
	}
	row := &stepKernel[phase]
	for tap := 0; tap < kernelWidth; tap++ {
		idx := (e.pos + tap) % ringSize
		e.buf[idx] += delta * row[tap]
	}
}

// next integrates one output sample and advances the read position.
func (e *edgeSynth) next() int16 {
	e.level += e.buf[e.pos]
	e.buf[e.pos] = 0
	e.pos = (e.pos + 1) % ringSize
	if e.level > 32767 {
		e.level = 32767
	} else if e.level < -32768 {
		e.level = -32768
	}
	return int16(e.level)
}
