package main

import "math"

type ParticleKind int64

const (
	// KindBurst particles come out of regular rockets and carry a photo.
	KindBurst ParticleKind = iota
	// KindGlitter particles come out of big rockets and twinkle.
	KindGlitter
)

const (
	glitterHue        = 50
	burstCircleRadius = 3
)

// Particle is a piece of debris from an explosion. It drifts, slows down,
// falls and fades until it is fully transparent.
type Particle struct {
	Kind ParticleKind
	Body
	Alpha float64
	Decay float64
	Hue   float64
	Angle float64
	Spin  float64
	Photo Photo
}

func (w *World) NewBurstParticle(pos Pt, hue float64, photo Photo) (p Particle) {
	p.Kind = KindBurst
	p.Pos = pos
	angle := w.RFloat(0, 2*math.Pi)
	speed := 2 + w.RFloat(0, 6)
	p.Speed = Polar(angle, speed)
	p.Alpha = 1
	p.Decay = 0.005 + w.RFloat(0, 0.015)
	p.Spin = w.RFloat(-0.1, 0.1)
	p.Hue = hue
	p.Photo = photo
	return
}

func (w *World) NewGlitterParticle(pos Pt) (p Particle) {
	p.Kind = KindGlitter
	p.Pos = pos
	angle := w.RFloat(0, 2*math.Pi)
	speed := 1.5 * (2 + w.RFloat(0, 8))
	p.Speed = Polar(angle, speed)
	p.Alpha = 1
	p.Decay = 0.005 + w.RFloat(0, 0.001)
	p.Hue = glitterHue
	return
}

// Step moves, fades and draws the particle. It returns false once the
// particle is fully transparent; such a particle is not drawn.
func (p *Particle) Step(w *World, c Canvas) bool {
	p.MoveWithDrag(w.Gravity, w.Friction)
	p.Alpha = Fade(p.Alpha, p.Decay)
	if p.Alpha <= 0 {
		return false
	}

	if p.Kind == KindGlitter {
		p.drawGlitter(w, c)
	} else {
		p.Angle += p.Spin
		p.drawBurst(w, c)
	}
	return true
}

func (p *Particle) drawBurst(w *World, c Canvas) {
	if p.Photo == nil {
		c.FillCircle(p.Pos, burstCircleRadius, HSLA(p.Hue, 1, 0.5, p.Alpha),
			BlendSourceOver)
		return
	}

	// The photo shrinks as the particle fades.
	width, height := FitPhoto(p.Photo, w.BurstPhotoSize*p.Alpha)
	c.DrawPhoto(p.Photo, p.Pos, width, height, p.Angle, p.Alpha)
	c.FillCircle(p.Pos, math.Max(width, height)/2,
		HSLA(p.Hue, 1, 0.5, 0.5*p.Alpha), BlendOverlay)
}

// drawGlitter flips a coin every frame between a bright and a dim spark.
// Only the drawing is affected, the particle fades at its own pace.
func (p *Particle) drawGlitter(w *World, c Canvas) {
	lightness, alpha := 0.05, p.Alpha*0.3
	if w.Chance(0.5) {
		lightness, alpha = 1, p.Alpha
	}
	radius := 1 + w.RFloat(0, 2)
	c.FillCircle(p.Pos, radius, HSLA(p.Hue, 1, lightness, alpha), BlendSourceOver)
}
