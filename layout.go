package main

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// The sky is the whole window, one pixel of the World for one pixel of
	// the screen. There's nothing to keep the aspect ratio of, so the screen
	// is exactly the size of the window.
	//
	// A minimized window may report a size of 0. ebiten can't allocate empty
	// images, so keep at least one pixel.
	screenWidth = max(outsideWidth, 1)
	screenHeight = max(outsideHeight, 1)

	if screenWidth == g.width && screenHeight == g.height {
		return
	}
	g.width, g.height = screenWidth, screenHeight

	// The trails drawn so far are kept, and so is everything in the air.
	if g.canvas == nil {
		g.canvas = newEbitenCanvas(screenWidth, screenHeight)
	} else {
		g.canvas.Resize(screenWidth, screenHeight)
	}
	g.world.Resize(float64(screenWidth), float64(screenHeight))
	return
}
