package main

import (
	"github.com/stretchr/testify/assert"
	"image"
	"image/color"
	"testing"
)

func TestHSLA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, HSLA(0, 1, 0.5, 1))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, HSLA(120, 1, 0.5, 1))
	assert.Equal(t, HSLA(10, 1, 0.5, 1), HSLA(370, 1, 0.5, 1))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 51}, HSLA(50, 1, 1, 0.2))
}

func TestAlpha8(t *testing.T) {
	assert.Equal(t, uint8(0), Alpha8(-0.5))
	assert.Equal(t, uint8(51), Alpha8(0.2))
	assert.Equal(t, uint8(128), Alpha8(0.5))
	assert.Equal(t, uint8(255), Alpha8(3))
}

func TestFitPhoto(t *testing.T) {
	w, h := FitPhoto(image.Rect(0, 0, 200, 100), 20)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 10.0, h)

	w, h = FitPhoto(image.Rect(0, 0, 50, 200), 20)
	assert.Equal(t, 5.0, w)
	assert.Equal(t, 20.0, h)

	w, h = FitPhoto(image.Rect(0, 0, 30, 30), 20)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 20.0, h)

	w, h = FitPhoto(image.Rectangle{}, 20)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 20.0, h)
}
