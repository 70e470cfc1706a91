package main

import (
	"image"
	"image/color"
)

type drawKind int

const (
	drawRect drawKind = iota
	drawCircle
	drawPhoto
)

type drawCall struct {
	Kind   drawKind
	Pos    Pt
	Radius float64
	Width  float64
	Height float64
	Angle  float64
	Alpha  float64
	Color  color.NRGBA
	Blend  Blend
	Photo  Photo
}

// recordingCanvas remembers everything drawn on it.
type recordingCanvas struct {
	width  float64
	height float64
	calls  []drawCall
}

func (c *recordingCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *recordingCanvas) FillRect(x, y, width, height float64, clr color.NRGBA, blend Blend) {
	c.calls = append(c.calls, drawCall{Kind: drawRect, Pos: Pt{x, y},
		Width: width, Height: height, Color: clr, Blend: blend})
}

func (c *recordingCanvas) FillCircle(center Pt, radius float64, clr color.NRGBA, blend Blend) {
	c.calls = append(c.calls, drawCall{Kind: drawCircle, Pos: center,
		Radius: radius, Color: clr, Blend: blend})
}

func (c *recordingCanvas) DrawPhoto(p Photo, center Pt, width, height, angle, alpha float64) {
	c.calls = append(c.calls, drawCall{Kind: drawPhoto, Pos: center, Width: width,
		Height: height, Angle: angle, Alpha: alpha, Photo: p})
}

func (c *recordingCanvas) count(kind drawKind) (n int) {
	for _, call := range c.calls {
		if call.Kind == kind {
			n++
		}
	}
	return
}

// recordingSound remembers the cues it was asked to play.
type recordingSound struct {
	cues []Cue
}

func (s *recordingSound) Play(cue Cue) {
	s.cues = append(s.cues, cue)
}

func testPhotos(n int) (photos []Photo) {
	for i := range n {
		photos = append(photos, image.NewRGBA(image.Rect(0, 0, 100+i, 50)))
	}
	return
}

// quietParams never launch a rocket on their own.
func quietParams() Params {
	p := DefaultParams()
	for _, phase := range p.Cycle.phases() {
		phase.From = 0
		phase.To = 0
	}
	return p
}

// busyParams launch a rocket on most ticks, and some of them are big.
func busyParams() Params {
	p := DefaultParams()
	for _, phase := range p.Cycle.phases() {
		phase.From = 0.5
		phase.To = 0.5
	}
	p.Cycle.Seconds = 5
	p.Cycle.BigRocketAfter = 0.5
	return p
}
