package main

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestBody_MoveAddsGravityAfterMoving(t *testing.T) {
	b := Body{Pos: Pt{0, 100}, Speed: Pt{1, -10}}
	b.Move(0.04)
	assert.Equal(t, Pt{1, 90}, b.Pos)
	assert.InDelta(t, 1, b.Speed.X, 1e-12)
	assert.InDelta(t, -9.96, b.Speed.Y, 1e-12)
}

func TestBody_MoveWithDragSlowsDownBeforeGravity(t *testing.T) {
	b := Body{Pos: Pt{0, 0}, Speed: Pt{10, -10}}
	b.MoveWithDrag(0.04, 0.5)
	assert.Equal(t, Pt{10, -10}, b.Pos)
	assert.InDelta(t, 5, b.Speed.X, 1e-12)
	assert.InDelta(t, -4.96, b.Speed.Y, 1e-12)

	// A body at rest starts falling with exactly gravity.
	b = Body{}
	b.MoveWithDrag(0.04, 0.5)
	assert.InDelta(t, 0.04, b.Speed.Y, 1e-12)
}

func TestFade(t *testing.T) {
	assert.InDelta(t, 0.75, Fade(1, 0.25), 1e-12)
	assert.Less(t, Fade(0.01, 0.02), 0.0)
}

func TestPt_Polar(t *testing.T) {
	v := Polar(math.Pi/2, 3)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 3, v.Y, 1e-12)
	assert.InDelta(t, 3, Polar(1.234, 3).Len(), 1e-12)
}

func TestPt_Rotated(t *testing.T) {
	v := Pt{1, 0}.Rotated(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)
	back := v.Rotated(-math.Pi / 2)
	assert.InDelta(t, 1, back.X, 1e-12)
	assert.InDelta(t, 0, back.Y, 1e-12)
}
