package main

import (
	"image/color"
	"math"
)

type RocketKind int64

const (
	KindRocket RocketKind = iota
	KindBigRocket
)

func (k RocketKind) String() string {
	if k == KindBigRocket {
		return "big rocket"
	}
	return "rocket"
}

const (
	rocketSize      = 2
	bigRocketSize   = 5
	bigRocketGrowth = 1.5
)

var rocketColor = color.NRGBA{R: 255, G: 165, B: 0, A: 255}

// Rocket climbs from the bottom of the surface until it reaches its target
// height or runs out of upward speed, then explodes.
type Rocket struct {
	Kind RocketKind
	Body
	Size    float64
	Hue     float64
	TargetY float64
	Photo   Photo
}

// NewRocket launches a rocket from a random point on the bottom edge.
func (w *World) NewRocket(kind RocketKind) (r Rocket) {
	r.Kind = kind
	r.Pos = Pt{w.RFloat(0, w.Width), w.Height}
	if kind == KindBigRocket {
		r.Speed = Pt{w.RFloat(-1, 1), -(12 + w.RFloat(0, 2))}
		r.Size = bigRocketSize
		r.TargetY = w.Height * (0.1 + w.RFloat(0, 0.2))
	} else {
		r.Speed = Pt{w.RFloat(-1.5, 1.5), -(10 + w.RFloat(0, 4))}
		r.Size = rocketSize
		r.TargetY = w.Height * (0.1 + w.RFloat(0, 0.4))
	}
	r.Hue = w.RFloat(0, 360)
	r.Photo = w.RandomPhoto()
	return
}

// Exploded says if the rocket has reached the top of its flight.
func (r *Rocket) Exploded() bool {
	return r.Speed.Y >= 0 || r.Pos.Y <= r.TargetY
}

// Step moves and draws the rocket. It returns false if the rocket exploded
// during this step, in which case its particles were already added to w.
func (r *Rocket) Step(w *World, c Canvas) bool {
	r.Move(w.Gravity)
	if r.Kind == KindBigRocket {
		r.Size += bigRocketGrowth
	}
	r.Draw(w, c)
	if r.Exploded() {
		w.Explode(r)
		return false
	}
	return true
}

func (r *Rocket) Draw(w *World, c Canvas) {
	if r.Kind == KindBigRocket {
		if r.Photo == nil {
			c.FillCircle(r.Pos, r.Size, HSLA(r.Hue, 1, 0.5, 1), BlendSourceOver)
			return
		}
		width, height := FitPhoto(r.Photo, r.Size*4)
		c.DrawPhoto(r.Photo, r.Pos, width, height, 0, 1)
		c.FillCircle(r.Pos, math.Max(width, height)/1.5,
			HSLA(r.Hue, 1, 0.5, 0.3), BlendOverlay)
		return
	}

	c.FillCircle(r.Pos, r.Size, rocketColor, BlendSourceOver)
	if r.Photo != nil {
		width, height := FitPhoto(r.Photo, w.RocketTipSize)
		c.DrawPhoto(r.Photo, r.Pos, width, height, 0, 1)
	}
}
