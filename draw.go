package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"image/color"
)

func (g *Gui) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas.img, nil)
	}

	switch g.state {
	case HomeScreen:
		g.DrawHomeScreen(screen)
	case LoadingScreen:
		g.DrawLoadingScreen(screen)
	case PlayScreen:
	default:
		panic("unhandled default case")
	}
}

func (g *Gui) DrawHomeScreen(screen *ebiten.Image) {
	g.DrawText(screen, "Click to start the fireworks", 0, color.White)
	g.DrawText(screen, "Esc stops, M mutes, +/- change the volume", 2,
		color.Gray{Y: 160})
}

func (g *Gui) DrawLoadingScreen(screen *ebiten.Image) {
	g.DrawText(screen, "Loading photos...", 0, color.White)
}

// DrawText draws message centered horizontally, on the given line counted
// from the middle of the screen.
func (g *Gui) DrawText(screen *ebiten.Image, message string, line int, clr color.Color) {
	// text.Draw puts the baseline at y, so most of the text ends up above it.
	textSize := text.BoundString(g.defaultFont, message)
	lineHeight := g.defaultFont.Metrics().Height.Ceil()
	bounds := screen.Bounds()
	x := bounds.Min.X + (bounds.Dx()-textSize.Dx())/2 - textSize.Min.X
	y := bounds.Min.Y + (bounds.Dy()-textSize.Dy())/2 - textSize.Min.Y +
		line*lineHeight
	text.Draw(screen, message, g.defaultFont, x, y, clr)
}
