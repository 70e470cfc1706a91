package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"image"
	"image/color"
	"math"
)

// whiteSubImage is a 1x1 white image. Shapes are drawn by stretching and
// tinting it. It is a sub-image of a larger one so that its edges are not
// blended with transparent pixels when it is scaled.
var whiteImage *ebiten.Image
var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// blendOverlay brightens what's below by the source color, as in
// dst * (1 + src). It is not the real overlay formula, which can't be
// expressed with blend factors, but on a dark sky it looks the same: a
// colored glow that doesn't hide the photo underneath.
var blendOverlay = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

func ebitenBlend(b Blend) ebiten.Blend {
	switch b {
	case BlendLighter:
		return ebiten.BlendLighter
	case BlendOverlay:
		return blendOverlay
	default:
		return ebiten.BlendSourceOver
	}
}

// ebitenCanvas draws the World on an offscreen image. The image is never
// cleared between frames, the World fades it itself.
type ebitenCanvas struct {
	img      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newEbitenCanvas(width, height int) *ebitenCanvas {
	return &ebitenCanvas{img: ebiten.NewImage(width, height)}
}

// Resize replaces the offscreen image with one of the new size, keeping
// what was drawn so far in the top-left corner.
func (c *ebitenCanvas) Resize(width, height int) {
	old := c.img
	c.img = ebiten.NewImage(width, height)
	c.img.DrawImage(old, nil)
	old.Deallocate()
}

func (c *ebitenCanvas) Clear() {
	c.img.Clear()
}

func (c *ebitenCanvas) Size() (float64, float64) {
	size := c.img.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

func (c *ebitenCanvas) FillRect(x, y, width, height float64, clr color.NRGBA, blend Blend) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.Blend = ebitenBlend(blend)
	c.img.DrawImage(white(), op)
}

func (c *ebitenCanvas) FillCircle(center Pt, radius float64, clr color.NRGBA, blend Blend) {
	if radius <= 0 || clr.A == 0 {
		return
	}

	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), float32(radius), 0, 2*math.Pi,
		vector.Clockwise)
	path.Close()
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(
		c.vertices[:0], c.indices[:0])

	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Blend = ebitenBlend(blend)
	op.AntiAlias = true
	c.img.DrawTriangles(c.vertices, c.indices, white(), op)
}

func (c *ebitenCanvas) DrawPhoto(p Photo, center Pt, width, height, angle, alpha float64) {
	img, ok := p.(*ebiten.Image)
	if !ok || width <= 0 || height <= 0 {
		return
	}

	size := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(size.X)/2, -float64(size.Y)/2)
	op.GeoM.Scale(width/float64(size.X), height/float64(size.Y))
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	c.img.DrawImage(img, op)
}
