package main

import (
	"github.com/lucasb-eyer/go-colorful"
	"image"
	"image/color"
	"math"
)

// Blend says how a shape is composited over what is already on the canvas.
type Blend int64

const (
	// BlendSourceOver is regular alpha compositing.
	BlendSourceOver Blend = iota
	// BlendLighter adds the source to the destination. Used for the sky
	// flash so that an explosion lights up the trails already on screen.
	BlendLighter
	// BlendOverlay tints the destination with the source color, keeping the
	// destination's dark and bright areas. Used for the glow of photos.
	BlendOverlay
)

// Photo is a decorative image from the photo pool. The engine only needs
// its size; a Canvas knows how to draw the concrete type it was given
// (*ebiten.Image on the desktop, image.Image in the terminal).
type Photo interface {
	Bounds() image.Rectangle
}

// Canvas is the drawing surface the World paints on. Coordinates are in
// surface pixels, origin at the top-left corner.
type Canvas interface {
	Size() (width, height float64)
	FillRect(x, y, width, height float64, clr color.NRGBA, blend Blend)
	FillCircle(center Pt, radius float64, clr color.NRGBA, blend Blend)
	// DrawPhoto draws p scaled to width x height, centered on center,
	// rotated by angle radians and with the given opacity.
	DrawPhoto(p Photo, center Pt, width, height, angle, alpha float64)
}

// HSLA converts a hue in degrees and saturation, lightness and alpha in
// [0, 1] to a non-premultiplied color.
func HSLA(hue, saturation, lightness, alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(math.Mod(hue, 360), saturation, lightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: Alpha8(alpha)}
}

// Alpha8 converts an opacity in [0, 1] to a color channel, clamping values
// outside the range.
func Alpha8(alpha float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
}

// FitPhoto returns the size at which p fits inside a box x box square while
// keeping its aspect ratio.
func FitPhoto(p Photo, box float64) (width, height float64) {
	size := p.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return box, box
	}
	aspect := float64(size.X) / float64(size.Y)
	width, height = box, box
	if aspect > 1 {
		height = width / aspect
	} else {
		width = height * aspect
	}
	return
}
