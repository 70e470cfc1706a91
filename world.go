package main

import (
	"image/color"
	"math"
)

// World rules
// - Rockets are launched from the bottom edge, at most one per tick. Whether
// a rocket is launched depends on where the tick falls in the cycle.
// - A rocket flies up, slowed by gravity, until it reaches its target height
// or starts falling. Then it explodes.
// - An explosion lights up the sky, makes a sound and throws debris:
// photo particles for a regular rocket, ten times as many glitter particles
// for a big one.
// - Debris is slowed by the air, falls and fades. It disappears the moment it
// is fully transparent.
// - Nothing is ever erased from the surface. Every tick covers it with
// translucent black, so whatever moves leaves a trail.

// Flash is the color wash over the whole sky after an explosion.
type Flash struct {
	Hue   float64
	Alpha float64
}

type World struct {
	Params
	Rand
	Width  float64
	Height float64
	// Photos is the pool rockets pick their photo from. It may be empty.
	Photos []Photo
	// Sound is optional.
	Sound        SoundPlayer
	Rockets      []Rocket
	Particles    []Particle
	Elapsed      float64
	TickIdx      int64
	Flash        Flash
	Running      bool
	JustExploded []Explosion
}

func NewWorld(params Params, seed int64, width, height float64) (w World) {
	w.Params = params
	w.RSeed(seed)
	w.Width = width
	w.Height = height
	return
}

// Start begins a fresh show. Anything left over from a previous run is
// dropped.
func (w *World) Start() {
	w.Rockets = nil
	w.Particles = nil
	w.JustExploded = nil
	w.Elapsed = 0
	w.TickIdx = 0
	w.Flash = Flash{}
	w.Running = true
}

// Stop ends the show after the current tick.
func (w *World) Stop() {
	w.Running = false
}

func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
}

// RandomPhoto picks a photo from the pool, or returns nil if the pool is
// empty. An empty pool doesn't consume any random numbers.
func (w *World) RandomPhoto() Photo {
	if len(w.Photos) == 0 {
		return nil
	}
	return w.Photos[w.RInt(0, int64(len(w.Photos)-1))]
}

// Step advances the show by one tick and draws it on c. It returns whether
// the show should go on.
func (w *World) Step(c Canvas) bool {
	w.JustExploded = w.JustExploded[:0]

	c.FillRect(0, 0, w.Width, w.Height,
		color.NRGBA{A: Alpha8(w.TrailAlpha)}, BlendSourceOver)

	if w.Flash.Alpha > 0 {
		c.FillRect(0, 0, w.Width, w.Height,
			HSLA(w.Flash.Hue, 1, 0.5, w.Flash.Alpha), BlendLighter)
		w.Flash.Alpha = math.Max(0, w.Flash.Alpha-w.FlashDecay)
	}

	if spawn, kind := w.Cycle.Decide(&w.Rand, w.Elapsed); spawn {
		w.Rockets = append(w.Rockets, w.NewRocket(kind))
	}

	// Compact in place, keeping the paint order.
	rockets := w.Rockets[:0]
	for i := range w.Rockets {
		if w.Rockets[i].Step(w, c) {
			rockets = append(rockets, w.Rockets[i])
		}
	}
	clear(w.Rockets[len(rockets):])
	w.Rockets = rockets

	particles := w.Particles[:0]
	for i := range w.Particles {
		if w.Particles[i].Step(w, c) {
			particles = append(particles, w.Particles[i])
		}
	}
	clear(w.Particles[len(particles):])
	w.Particles = particles

	w.checkInvariants()

	w.Elapsed += w.TickSeconds
	w.TickIdx++
	return w.Running
}

func (w *World) checkInvariants() {
	for i := range w.Particles {
		Assert(w.Particles[i].Alpha > 0, "live particle is transparent")
	}
	for i := range w.Rockets {
		Assert(!w.Rockets[i].Exploded(), "live rocket has exploded")
	}
	Assert(w.Flash.Alpha >= 0, "negative flash")
}
