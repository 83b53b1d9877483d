package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mapview/audio"
	"github.com/lixenwraith/mapview/camera"
	"github.com/lixenwraith/mapview/constants"
	"github.com/lixenwraith/mapview/grid"
	"github.com/lixenwraith/mapview/input"
	"github.com/lixenwraith/mapview/render"
)

// App holds all interactive state for one viewer session. It is owned
// exclusively by the main loop; nothing here is touched concurrently.
type App struct {
	Grid   *grid.Grid
	Cam    camera.Camera
	Glyphs render.GlyphPolicy
	Audio  *audio.Engine

	Width, Height int
	ShowRulers    bool
	ShowHelp      bool

	lastButtons tcell.ButtonMask
}

// NewApp builds the session state. A noise run gets a procedurally
// filled map with band shading; the default is an empty landmark-seeded
// canvas with binary shading for editing.
func NewApp(noise bool, seed int64) *App {
	g := grid.New(constants.MapWidth, constants.MapHeight, 0)
	glyphs := render.BinaryGlyphs
	if noise {
		g.FillNoise(grid.NewPerlin(seed), constants.NoiseFrequency)
		glyphs = render.BandGlyphs
	} else {
		g.SeedLandmarks()
	}
	return &App{
		Grid:       g,
		Glyphs:     glyphs,
		Width:      1,
		Height:     1,
		ShowRulers: true,
		ShowHelp:   true,
	}
}

// Viewport returns the layout for the current terminal size and ruler
// state.
func (a *App) Viewport() render.Viewport {
	return render.Viewport{Width: a.Width, Height: a.Height, Rulers: a.ShowRulers}
}

// Resize records a new terminal size and pulls the camera back into
// range immediately, before any further input is handled.
func (a *App) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	a.Width = w
	a.Height = h
	a.clampCamera()
}

func (a *App) bounds() (maxX, maxY int) {
	vp := a.Viewport()
	return camera.Bounds(a.Grid.Width(), a.Grid.Height(), vp.ContentWidth(), vp.ContentHeight())
}

func (a *App) clampCamera() {
	a.Cam.Clamp(a.bounds())
}

// HandleKey applies at most one action for a key press. It reports
// false when the viewer should quit.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	maxX, maxY := a.bounds()
	half := a.Viewport().ContentHeight() / 2

	switch input.ActionFor(ev) {
	case input.ActionQuit:
		return false
	case input.ActionMoveLeft:
		a.Cam.MoveBy(-1, 0, maxX, maxY)
	case input.ActionMoveRight:
		a.Cam.MoveBy(1, 0, maxX, maxY)
	case input.ActionMoveUp:
		a.Cam.MoveBy(0, -1, maxX, maxY)
	case input.ActionMoveDown:
		a.Cam.MoveBy(0, 1, maxX, maxY)
	case input.ActionPageDown:
		a.Cam.PageDown(half, maxY)
	case input.ActionPageUp:
		a.Cam.PageUp(half)
	case input.ActionToggleRulers:
		a.ShowRulers = !a.ShowRulers
		// Drawable area just changed, bounds with it
		a.clampCamera()
	case input.ActionToggleHelp:
		a.ShowHelp = !a.ShowHelp
	}
	return true
}

// HandleMouse edits one cell per discrete button press: left paints,
// right erases. Motion with a held button is ignored, there is no
// stroke interpolation.
func (a *App) HandleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ a.lastButtons
	a.lastButtons = buttons

	var value float64
	switch {
	case pressed&tcell.Button1 != 0:
		value = grid.MaxValue
	case pressed&tcell.Button2 != 0:
		value = grid.MinValue
	default:
		return
	}

	x, y := ev.Position()
	worldX, worldY, ok := input.MapPointer(x, y, a.Cam, a.ShowRulers)
	if !ok {
		// Click landed on a ruler strip
		return
	}

	log.Printf("edit cell (%d,%d) value=%v", worldX, worldY, value)
	a.Grid.Set(worldX, worldY, value)

	if value == grid.MaxValue {
		a.Audio.PlayPaint()
	} else {
		a.Audio.PlayErase()
	}
}
