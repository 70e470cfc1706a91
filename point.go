package main

import "math"

// Pt is a point or a vector in surface space. The origin is the top-left
// corner of the surface and Y grows downwards, so "up" means a smaller Y.
type Pt struct {
	X float64
	Y float64
}

func (p *Pt) Add(other Pt) {
	p.X = p.X + other.X
	p.Y = p.Y + other.Y
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) Times(multiply float64) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

func (p Pt) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Rotated returns p rotated around the origin by angle radians. With Y
// pointing down a positive angle rotates clockwise on screen.
func (p Pt) Rotated(angle float64) Pt {
	sin, cos := math.Sincos(angle)
	return Pt{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Polar returns the vector of length speed pointing at angle radians.
func Polar(angle float64, speed float64) Pt {
	sin, cos := math.Sincos(angle)
	return Pt{cos * speed, sin * speed}
}
