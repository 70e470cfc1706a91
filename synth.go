package main

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"math"
	"time"
)

// Synth renders the explosion cues from filtered white noise. Both cues are
// rendered once, when the Synth is created, and then played from memory.
type Synth struct {
	format beep.Format
	noise  *beep.Buffer
	cues   map[Cue]*beep.Buffer
}

const noiseDuration = 2 * time.Second

func NewSynth(sampleRate int, seed int64) *Synth {
	s := &Synth{
		format: beep.Format{
			SampleRate:  beep.SampleRate(sampleRate),
			NumChannels: 2,
			Precision:   2,
		},
		cues: map[Cue]*beep.Buffer{},
	}

	rng := NewRand(seed)
	s.noise = beep.NewBuffer(s.format)
	s.noise.Append(beep.Take(s.format.SampleRate.N(noiseDuration),
		beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				val := rng.Float()*2 - 1
				samples[i][0] = val
				samples[i][1] = val
			}
			return len(samples), true
		})))

	for _, cue := range []Cue{CueSmall, CueBig} {
		buf := beep.NewBuffer(s.format)
		buf.Append(s.render(cue))
		s.cues[cue] = buf
	}
	return s
}

func (s *Synth) Format() beep.Format {
	return s.format
}

// Streamer returns a fresh stream of the cue at the given volume.
func (s *Synth) Streamer(cue Cue, volume float64) beep.Streamer {
	buf := s.cues[cue]
	return newVolume(buf.Streamer(0, buf.Len()), volume)
}

// Len returns the length of the cue in samples.
func (s *Synth) Len(cue Cue) int {
	return s.cues[cue].Len()
}

// PCM returns the cue as signed 16-bit little-endian stereo samples, the
// format ebiten's audio players expect.
func (s *Synth) PCM(cue Cue) []byte {
	buf := s.cues[cue]
	st := buf.Streamer(0, buf.Len())
	frame := s.format.Width()
	data := make([]byte, buf.Len()*frame)
	samples := make([][2]float64, 512)
	pos := 0
	for {
		n, ok := st.Stream(samples)
		for _, sample := range samples[:n] {
			pos += s.format.EncodeSigned(data[pos:], sample)
		}
		if !ok || n == 0 {
			break
		}
	}
	return data[:pos]
}

// source plays the noise twice in a row, so that even the longest cue never
// runs out of it.
func (s *Synth) source() beep.Streamer {
	n := s.noise.Len()
	return beep.Seq(s.noise.Streamer(0, n), s.noise.Streamer(0, n))
}

func (s *Synth) render(cue Cue) beep.Streamer {
	rate := s.format.SampleRate
	if cue == CueSmall {
		thud := newBiquad(s.source(), lowPass, expSweep(800, 100, 0.5), math.Sqrt2/2, rate)
		return beep.Take(rate.N(time.Second),
			newGain(thud, expSweep(0.5, 0.001, 0.8), rate))
	}

	// A deeper and longer boom.
	boom := newBiquad(s.source(), lowPass, expSweep(400, 10, 1.5), math.Sqrt2/2, rate)
	boom = beep.Take(rate.N(2*time.Second),
		newGain(boom, expSweep(0.8, 0.001, 1.5), rate))

	// The crackle of the glitter: a wide band of noise sliding down.
	whoosh := newBiquad(s.source(), bandPass, expSweep(1000, 100, 2.5), 1, rate)
	whoosh = beep.Take(rate.N(3*time.Second), newGain(whoosh, func(t float64) float64 {
		if t < 0.2 {
			return 0.2 * t / 0.2
		}
		return expSweep(0.2, 0.001, 2.3)(t - 0.2)
	}, rate))

	return beep.Take(rate.N(3*time.Second), beep.Mix(boom, whoosh))
}

// expSweep returns a curve going exponentially from 'from' to 'to' in the
// given number of seconds and staying at 'to' afterwards.
func expSweep(from, to, seconds float64) func(t float64) float64 {
	return func(t float64) float64 {
		if t >= seconds {
			return to
		}
		return from * math.Pow(to/from, t/seconds)
	}
}

type filterKind int

const (
	lowPass filterKind = iota
	bandPass
)

// biquad is a second order filter whose center/cutoff frequency follows a
// curve over time. The coefficients are the ones from the Audio EQ Cookbook
// and are recomputed for every sample.
type biquad struct {
	streamer beep.Streamer
	kind     filterKind
	freq     func(t float64) float64
	q        float64
	rate     beep.SampleRate
	position int
	x1, x2   [2]float64
	y1, y2   [2]float64
}

func newBiquad(s beep.Streamer, kind filterKind, freq func(t float64) float64,
	q float64, rate beep.SampleRate) beep.Streamer {
	return &biquad{streamer: s, kind: kind, freq: freq, q: q, rate: rate}
}

func (f *biquad) coefficients() (b0, b1, b2, a1, a2 float64) {
	t := float64(f.position) / float64(f.rate)
	w0 := 2 * math.Pi * f.freq(t) / float64(f.rate)
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * f.q)
	a0 := 1 + alpha
	switch f.kind {
	case bandPass:
		b0, b1, b2 = alpha, 0, -alpha
	default:
		b0, b1, b2 = (1-cos)/2, 1-cos, (1-cos)/2
	}
	a1, a2 = -2*cos, 1-alpha
	return b0 / a0, b1 / a0, b2 / a0, a1 / a0, a2 / a0
}

func (f *biquad) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range samples[:n] {
		b0, b1, b2, a1, a2 := f.coefficients()
		for c := range 2 {
			x := samples[i][c]
			y := b0*x + b1*f.x1[c] + b2*f.x2[c] - a1*f.y1[c] - a2*f.y2[c]
			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
		f.position++
	}
	return n, ok
}

func (f *biquad) Err() error { return f.streamer.Err() }

// gain multiplies a stream by a curve over time.
type gain struct {
	streamer beep.Streamer
	curve    func(t float64) float64
	rate     beep.SampleRate
	position int
}

func newGain(s beep.Streamer, curve func(t float64) float64, rate beep.SampleRate) beep.Streamer {
	return &gain{streamer: s, curve: curve, rate: rate}
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := range samples[:n] {
		vol := g.curve(float64(g.position) / float64(g.rate))
		samples[i][0] *= vol
		samples[i][1] *= vol
		g.position++
	}
	return n, ok
}

func (g *gain) Err() error { return g.streamer.Err() }

// newVolume wraps s in a volume effect. The effect works in powers of two,
// so a linear volume of 0 has to be handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
