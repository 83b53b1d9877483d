package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mapview/render"
)

// Draw renders one frame: clamp, project, blit, then the help overlay
// on top when visible.
func (a *App) Draw(screen tcell.Screen) {
	a.clampCamera()

	screen.Clear()

	style := tcell.StyleDefault
	rows := render.Project(a.Grid, a.Cam, a.Viewport(), a.Glyphs)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}

	if a.ShowHelp {
		drawHelp(screen, a.Width, a.Height)
	}

	screen.Show()
}
