package main

import (
	"crypto/sha256"
	"encoding/hex"
	"image/color"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
//
// What the outside perceives is what gets drawn, so this is the Snapshot of
// the World: every live entity with its position, speed, color and opacity,
// the flash and the cycle clock. The photos themselves are left out, only
// whether an entity carries one counts. Two shows drawing different photos
// in the same places are the same show as far as the engine is concerned.
func (w *World) StateBytes() []byte {
	s := w.Snapshot(Run{})
	return s.Serialize()
}

// RegressionId returns a string which uniquely identifies a show. It is a
// hash of all the states of the World during nFrames ticks, starting from a
// fresh World with the given params, seed and surface size.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for some params and seed.
// - Refactor the implementation of the World.
// - Compute the RegressionId again, for the same params and seed.
// - If the RegressionId hasn't changed, the show is (pretty much) the same.
// If it has changed, the refactoring changed what the user sees.
func RegressionId(params Params, seed int64, width, height float64, nFrames int64) string {
	hash := sha256.New()

	w := NewWorld(params, seed, width, height)
	w.Start()
	hash.Write(w.StateBytes())

	var c nullCanvas
	for range nFrames {
		w.Step(c)
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// nullCanvas draws nothing. It lets a World run as fast as possible, for
// regression checks and benchmarks.
type nullCanvas struct{}

func (nullCanvas) Size() (float64, float64)                           { return 0, 0 }
func (nullCanvas) FillRect(_, _, _, _ float64, _ color.NRGBA, _ Blend) {}
func (nullCanvas) FillCircle(_ Pt, _ float64, _ color.NRGBA, _ Blend)  {}
func (nullCanvas) DrawPhoto(_ Photo, _ Pt, _, _, _, _ float64)         {}
