package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"image"
	"os"
)

//go:embed data/*
var embeddedFiles embed.FS

const AppName = "fireworks"

type GameState int64

const (
	HomeScreen GameState = iota
	LoadingScreen
	PlayScreen
)

type Gui struct {
	Config
	FSys            FS
	world           World
	run             Run
	canvas          *ebitenCanvas
	width           int
	height          int
	settings        *SettingsStore
	sound           *EbitenSound
	photos          []Photo
	photosReady     bool
	photosLoaded    chan []image.Image
	defaultFont     font.Face
	state           GameState
	justPressedKeys []ebiten.Key // keys pressed in this frame
	devModeEnabled  bool
}

func main() {
	var g Gui

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
	}

	terminalMode := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "developer-mode-enabled":
			g.devModeEnabled = true
		case "terminal":
			terminalMode = true
		default:
			Check(fmt.Errorf("unknown argument: %s", arg))
		}
	}

	g.settings = OpenSettingsStore(AppName)

	if terminalMode {
		// The screen belongs to tcell, the log goes to a file.
		restore := LogToFile(AppName + ".log")
		defer restore()
		Check(RunTerminal(g.FSys, LoadConfig(g.FSys, g.devModeEnabled), g.settings))
		return
	}

	g.LoadGuiData()
	g.sound = NewEbitenSound(NewSynth(g.SampleRate, 0), g.settings)

	ebiten.SetWindowTitle(g.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(g.Fullscreen)
	g.state = HomeScreen
	err := ebiten.RunGame(&g)
	Check(err)
}
