package main

import (
	"context"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"image"
	"log"
	"slices"
)

func (g *Gui) Update() error {
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	switch g.state {
	case HomeScreen:
		g.UpdateHomeScreen()
	case LoadingScreen:
		g.UpdateLoadingScreen()
	case PlayScreen:
		g.UpdatePlayScreen()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// JustStarted says if the user made the gesture that starts the show: a
// click, a touch or Space/Enter.
func (g *Gui) JustStarted() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		g.JustPressed(ebiten.KeySpace) ||
		g.JustPressed(ebiten.KeyEnter)
}

func (g *Gui) UpdateHomeScreen() {
	if !g.JustStarted() {
		return
	}

	if g.photosReady {
		g.BeginRun()
		return
	}

	// Photos are loaded only once, the first time the show starts.
	if g.photosLoaded == nil {
		g.photosLoaded = make(chan []image.Image, 1)
		fsys, cfg := g.FSys, g.Config
		go func() {
			g.photosLoaded <- LoadPhotos(context.Background(), fsys, cfg)
		}()
	}
	g.state = LoadingScreen
}

func (g *Gui) UpdateLoadingScreen() {
	select {
	case imgs := <-g.photosLoaded:
		for _, img := range imgs {
			g.photos = append(g.photos, ebiten.NewImageFromImage(img))
		}
		g.photosReady = true
		g.BeginRun()
	default:
	}
}

// BeginRun starts a new show with a fresh World.
func (g *Gui) BeginRun() {
	g.run = NewRun(g.Seed)
	g.world = NewWorld(g.Params, g.run.Seed, float64(g.width), float64(g.height))
	g.world.Photos = g.photos
	g.world.Sound = g.sound
	g.world.Start()
	if g.canvas != nil {
		g.canvas.Clear()
	}
	g.state = PlayScreen
	log.Printf("[run] %s started with seed %d and %d photos",
		g.run.Id, g.run.Seed, len(g.photos))
}

func (g *Gui) UpdatePlayScreen() {
	if g.JustPressed(ebiten.KeyEscape) {
		g.world.Stop()
	}
	if g.JustPressed(ebiten.KeyM) {
		g.settings.ToggleMute()
	}
	if g.JustPressed(ebiten.KeyEqual) || g.JustPressed(ebiten.KeyKPAdd) {
		g.settings.ChangeVolume(1)
	}
	if g.JustPressed(ebiten.KeyMinus) || g.JustPressed(ebiten.KeyKPSubtract) {
		g.settings.ChangeVolume(-1)
	}
	if g.JustPressed(ebiten.KeyF12) {
		name := SaveSnapshot(&g.world, g.run)
		log.Printf("[run] %s snapshot written to %s", g.run.Id, name)
	}

	if g.canvas == nil {
		return
	}
	if !g.world.Step(g.canvas) {
		log.Printf("[run] %s stopped after %d ticks", g.run.Id, g.world.TickIdx)
		g.state = HomeScreen
	}
}
