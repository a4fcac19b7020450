//go:build !headless

package audiosink

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Sink streams a PSG's stereo sample ring to the host's default audio
// device through oto/v3. Grounded on the teacher's OtoPlayer: a context
// plus a single long-lived player whose Read pulls straight from the chip
// on the callback thread, guarded by a mutex only for setup/control
// operations rather than the hot Read path.
type Sink struct {
	ctx    *oto.Context
	player *oto.Player
	ring   Ring

	mu      sync.Mutex
	started bool

	bufL, bufR []int16
}

// New opens the default audio device at sampleRate, 16-bit signed stereo,
// and wires it to pull from ring.
func New(sampleRate int, ring Ring) (*Sink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &Sink{ctx: ctx, ring: ring}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Read implements io.Reader for oto's player, emitting interleaved 16-bit
// little-endian stereo frames. A ring underrun is padded with silence
// rather than blocking, matching the spec's "audio callback never blocks
// indefinitely" requirement.
func (s *Sink) Read(p []byte) (int, error) {
	fillStereoPCM16(p, s.ring, &s.bufL, &s.bufR)
	return len(p), nil
}

// Start begins playback; safe to call once the Sink is constructed.
func (s *Sink) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.player.Play()
		s.started = true
	}
}

// Stop halts playback without releasing the player.
func (s *Sink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.player.Pause()
		s.started = false
	}
}

// Close releases the player and its context.
func (s *Sink) Close() error {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Close()
}
