package main

// Body is the kinematic state shared by every entity. Units are surface
// pixels and ticks: Speed is pixels per tick, gravity is pixels per tick².
type Body struct {
	Pos   Pt
	Speed Pt
}

// Move applies one tick of ballistic motion: the position advances by the
// current speed and then gravity is added to the vertical speed.
func (b *Body) Move(gravity float64) {
	b.Pos.Add(b.Speed)
	b.Speed.Y += gravity
}

// MoveWithDrag is Move for bodies slowed down by the air. Friction scales
// the speed after the position advanced and before gravity is added, so a
// body at rest still starts falling with exactly gravity per tick.
func (b *Body) MoveWithDrag(gravity float64, friction float64) {
	b.Pos.Add(b.Speed)
	b.Speed = b.Speed.Times(friction)
	b.Speed.Y += gravity
}

// Fade lowers alpha linearly. The result may be negative; callers treat
// anything <= 0 as dead and never draw it.
func Fade(alpha float64, decay float64) float64 {
	return alpha - decay
}
