package ebitenhost

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/phanxgames/asteroids"
)

const sampleRate = 44100

// Audio plays the game's cues through an ebiten audio context. The clips are
// synthesized once at startup.
type Audio struct {
	ctx  *audio.Context
	cues map[asteroids.Cue][]byte
}

// NewAudio creates the audio context and renders the cue clips. Only one
// audio context may exist per process.
func NewAudio() *Audio {
	return &Audio{
		ctx: audio.NewContext(sampleRate),
		cues: map[asteroids.Cue][]byte{
			asteroids.CueLaser:     encodePCM(laserWave()),
			asteroids.CueExplosion: encodePCM(explosionWave(rand.New(rand.NewPCG(1, 2)))),
		},
	}
}

// Play starts a fresh player for the cue so overlapping cues mix.
func (a *Audio) Play(c asteroids.Cue) {
	if err := a.ctx.Err(); err != nil {
		asteroids.Logger().Warn("audio unavailable", "err", err)
		return
	}
	pcm, ok := a.cues[c]
	if !ok {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.Play()
}

// laserWave is a short downward frequency sweep.
func laserWave() []float64 {
	const dur = 0.12
	n := int(sampleRate * dur)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / sampleRate
		freq := 1400 - 1100*t/dur
		phase += 2 * math.Pi * freq / sampleRate
		out[i] = math.Sin(phase) * math.Exp(-12*t) * 0.25
	}
	return out
}

// explosionWave is white noise with an exponential decay.
func explosionWave(rng *rand.Rand) []float64 {
	const dur = 0.6
	n := int(sampleRate * dur)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = (rng.Float64()*2 - 1) * math.Exp(-6*t) * 0.4
	}
	return out
}

// encodePCM converts samples in [-1, 1] to 16-bit little-endian stereo.
func encodePCM(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = max(-1, min(1, s))
		v := int16(s * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
