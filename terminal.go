package main

import (
	"context"
	"fmt"
	"github.com/gdamore/tcell/v2"
	"image"
	"image/color"
	"log"
	"math"
	"time"
)

// The terminal front-end draws the show with half-block characters: every
// cell is two pixels, the top one in the foreground color of '▀' and the
// bottom one in the background color.

// How many units of the World fit in one terminal pixel. The World is tuned
// for screens, where a photo is 120 pixels wide, so it runs on a big virtual
// surface that is scaled down.
const terminalScale = 8

const terminalFrame = 16 * time.Millisecond

type rgb struct {
	R, G, B float64
}

// terminalCanvas is a Canvas that rasterizes into a grid of terminal pixels.
type terminalCanvas struct {
	cols  int
	rows  int
	scale float64
	pix   []rgb
}

func newTerminalCanvas(screenCols, screenRows int, scale float64) *terminalCanvas {
	c := &terminalCanvas{scale: scale}
	c.Resize(screenCols, screenRows)
	return c
}

// Resize changes the size of the grid. The content is lost, the trails
// will fill it again within a few frames.
func (c *terminalCanvas) Resize(screenCols, screenRows int) {
	c.cols = max(screenCols, 1)
	c.rows = max(screenRows, 1) * 2
	c.pix = make([]rgb, c.cols*c.rows)
}

func (c *terminalCanvas) Size() (float64, float64) {
	return float64(c.cols) * c.scale, float64(c.rows) * c.scale
}

func toRGB(clr color.Color) rgb {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return rgb{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
}

func overlay(dst, src float64) float64 {
	if dst < 0.5 {
		return 2 * src * dst
	}
	return 1 - 2*(1-src)*(1-dst)
}

func (c *terminalCanvas) blend(x, y int, src rgb, alpha float64, blend Blend) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows || alpha <= 0 {
		return
	}
	dst := &c.pix[y*c.cols+x]
	switch blend {
	case BlendLighter:
		dst.R = math.Min(1, dst.R+src.R*alpha)
		dst.G = math.Min(1, dst.G+src.G*alpha)
		dst.B = math.Min(1, dst.B+src.B*alpha)
	case BlendOverlay:
		dst.R += (overlay(dst.R, src.R) - dst.R) * alpha
		dst.G += (overlay(dst.G, src.G) - dst.G) * alpha
		dst.B += (overlay(dst.B, src.B) - dst.B) * alpha
	default:
		dst.R += (src.R - dst.R) * alpha
		dst.G += (src.G - dst.G) * alpha
		dst.B += (src.B - dst.B) * alpha
	}
}

// pixelRange converts a span of World units to the terminal pixels it
// covers, clamped to [0, n).
func pixelRange(from, to, scale float64, n int) (int, int) {
	lo := int(math.Floor(from / scale))
	hi := int(math.Ceil(to / scale))
	return max(lo, 0), min(hi, n)
}

func (c *terminalCanvas) FillRect(x, y, width, height float64, clr color.NRGBA, blend Blend) {
	x0, x1 := pixelRange(x, x+width, c.scale, c.cols)
	y0, y1 := pixelRange(y, y+height, c.scale, c.rows)
	src, alpha := toRGB(clr), float64(clr.A)/255
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, src, alpha, blend)
		}
	}
}

func (c *terminalCanvas) FillCircle(center Pt, radius float64, clr color.NRGBA, blend Blend) {
	src, alpha := toRGB(clr), float64(clr.A)/255
	// A circle smaller than a pixel lights up the pixel it is in, as much
	// as the part of the pixel it covers.
	r := radius / c.scale
	if r < 0.5 {
		alpha *= math.Min(1, math.Pi*r*r)
		c.blend(int(math.Floor(center.X/c.scale)), int(math.Floor(center.Y/c.scale)),
			src, alpha, blend)
		return
	}

	x0, x1 := pixelRange(center.X-radius, center.X+radius, c.scale, c.cols)
	y0, y1 := pixelRange(center.Y-radius, center.Y+radius, c.scale, c.rows)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			p := Pt{(float64(px) + 0.5) * c.scale, (float64(py) + 0.5) * c.scale}
			if p.Minus(center).Len() <= radius {
				c.blend(px, py, src, alpha, blend)
			}
		}
	}
}

func (c *terminalCanvas) DrawPhoto(p Photo, center Pt, width, height, angle, alpha float64) {
	img, ok := p.(image.Image)
	if !ok || width <= 0 || height <= 0 {
		return
	}
	bounds := img.Bounds()

	// Walk the pixels of the box around the rotated photo and map each one
	// back into the photo.
	half := math.Hypot(width, height) / 2
	x0, x1 := pixelRange(center.X-half, center.X+half, c.scale, c.cols)
	y0, y1 := pixelRange(center.Y-half, center.Y+half, c.scale, c.rows)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			at := Pt{(float64(px) + 0.5) * c.scale, (float64(py) + 0.5) * c.scale}
			local := at.Minus(center).Rotated(-angle)
			u := local.X/width + 0.5
			v := local.Y/height + 0.5
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			sx := bounds.Min.X + int(u*float64(bounds.Dx()))
			sy := bounds.Min.Y + int(v*float64(bounds.Dy()))
			n := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			c.blend(px, py, toRGB(n), alpha*float64(n.A)/255, BlendSourceOver)
		}
	}
}

func to8(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Flush copies the pixels to the screen. It doesn't call Show.
func (c *terminalCanvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows/2; row++ {
		for x := 0; x < c.cols; x++ {
			top := c.pix[(2*row)*c.cols+x]
			bottom := c.pix[(2*row+1)*c.cols+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(to8(top.R), to8(top.G), to8(top.B))).
				Background(tcell.NewRGBColor(to8(bottom.R), to8(bottom.G), to8(bottom.B)))
			screen.SetContent(x, row, '▀', nil, style)
		}
	}
}

func (c *terminalCanvas) Clear() {
	clear(c.pix)
}

func drawTerminalText(screen tcell.Screen, row int, message string) {
	cols, _ := screen.Size()
	col := max((cols-len([]rune(message)))/2, 0)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(message) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}

// RunTerminal runs the show in the terminal until the user quits.
func RunTerminal(fsys FS, cfg Config, settings *SettingsStore) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("can't open the terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("can't open the terminal: %w", err)
	}
	defer screen.Fini()

	var sound SoundPlayer
	speakerSound, err := NewSpeakerSound(NewSynth(cfg.SampleRate, 0), settings)
	if err != nil {
		log.Printf("[sound] running without sound: %v", err)
	} else {
		defer speakerSound.Close()
		sound = speakerSound
	}

	t := terminalGui{
		screen:   screen,
		fsys:     fsys,
		cfg:      cfg,
		settings: settings,
		sound:    sound,
	}
	t.loop()
	return nil
}

type terminalGui struct {
	screen      tcell.Screen
	fsys        FS
	cfg         Config
	settings    *SettingsStore
	sound       SoundPlayer
	canvas      *terminalCanvas
	world       World
	run         Run
	photos      []Photo
	photosReady bool
	playing     bool
}

func (t *terminalGui) loop() {
	cols, rows := t.screen.Size()
	t.canvas = newTerminalCanvas(cols, rows, terminalScale)

	ticker := time.NewTicker(terminalFrame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// The screen was finalized.
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t.drawHome()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !t.playing {
				continue
			}
			if !t.world.Step(t.canvas) {
				log.Printf("[run] %s stopped after %d ticks", t.run.Id, t.world.TickIdx)
				t.playing = false
				t.drawHome()
				continue
			}
			t.canvas.Flush(t.screen)
			t.screen.Show()
		}
	}
}

func (t *terminalGui) drawHome() {
	t.screen.Clear()
	_, rows := t.screen.Size()
	drawTerminalText(t.screen, rows/2, "Press any key to start the fireworks")
	drawTerminalText(t.screen, rows/2+1, "Esc to quit")
	t.screen.Show()
}

func (t *terminalGui) beginRun() {
	if !t.photosReady {
		t.screen.Clear()
		_, rows := t.screen.Size()
		drawTerminalText(t.screen, rows/2, "Loading photos...")
		t.screen.Show()
		for _, img := range LoadPhotos(context.Background(), t.fsys, t.cfg) {
			t.photos = append(t.photos, img)
		}
		t.photosReady = true
	}

	t.run = NewRun(t.cfg.Seed)
	width, height := t.canvas.Size()
	t.world = NewWorld(t.cfg.Params, t.run.Seed, width, height)
	t.world.Photos = t.photos
	t.world.Sound = t.sound
	t.world.Start()
	t.canvas.Clear()
	t.playing = true
	log.Printf("[run] %s started with seed %d and %d photos",
		t.run.Id, t.run.Seed, len(t.photos))
}

// handleEvent returns false when the user wants to quit.
func (t *terminalGui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.canvas.Resize(cols, rows)
		width, height := t.canvas.Size()
		t.world.Resize(width, height)
		t.screen.Sync()
		if !t.playing {
			t.drawHome()
		}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if !t.playing {
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			t.beginRun()
			return true
		}
		switch {
		case ev.Key() == tcell.KeyEscape:
			t.world.Stop()
		case ev.Key() == tcell.KeyF12:
			name := SaveSnapshot(&t.world, t.run)
			log.Printf("[run] %s snapshot written to %s", t.run.Id, name)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M'):
			t.settings.ToggleMute()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
			t.settings.ChangeVolume(1)
		case ev.Key() == tcell.KeyRune && ev.Rune() == '-':
			t.settings.ChangeVolume(-1)
		}
	}
	return true
}
