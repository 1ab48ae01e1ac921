package termhost

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/asteroids"
)

const sampleRate = beep.SampleRate(48000)

// Audio plays cues through the system speaker. If the speaker cannot be
// opened every Play is a no-op.
type Audio struct {
	mixer *beep.Mixer
	ok    bool
	rng   *rand.Rand
}

// NewAudio opens the speaker and starts the mixer.
func NewAudio() *Audio {
	a := &Audio{mixer: &beep.Mixer{}, rng: rand.New(rand.NewPCG(3, 5))}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		asteroids.Logger().Warn("speaker unavailable", "err", err)
		return a
	}
	speaker.Play(a.mixer)
	a.ok = true
	return a
}

func (a *Audio) Play(c asteroids.Cue) {
	if !a.ok {
		return
	}
	// Each burst owns its generator because the speaker streams on its own
	// goroutine.
	s := cueStreamer(c, rand.New(rand.NewPCG(a.rng.Uint64(), a.rng.Uint64())))
	if s == nil {
		return
	}
	speaker.Lock()
	a.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (a *Audio) Close() {
	if !a.ok {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.ok = false
}

func cueStreamer(c asteroids.Cue, rng *rand.Rand) beep.Streamer {
	switch c {
	case asteroids.CueLaser:
		return &effects.Volume{
			Streamer: newSweep(sampleRate, 1400, 300, 120*time.Millisecond),
			Base:     2,
			Volume:   -2,
		}
	case asteroids.CueExplosion:
		return &effects.Volume{
			Streamer: newNoiseBurst(sampleRate, 600*time.Millisecond, rng),
			Base:     2,
			Volume:   -1,
		}
	}
	return nil
}

// sweep is a sine whose frequency falls linearly over its duration.
type sweep struct {
	sr         beep.SampleRate
	from, to   float64
	pos, total int
	phase      float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		frac := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*frac
		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		v := math.Sin(2*math.Pi*s.phase) * (1 - frac)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst is white noise with an exponential decay.
type noiseBurst struct {
	sr         beep.SampleRate
	pos, total int
	rng        *rand.Rand
}

func newNoiseBurst(sr beep.SampleRate, d time.Duration, rng *rand.Rand) *noiseBurst {
	return &noiseBurst{sr: sr, total: sr.N(d), rng: rng}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.sr)
		v := (b.rng.Float64()*2 - 1) * math.Exp(-6*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }
