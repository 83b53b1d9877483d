package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var helpLines = []string{
	"Navigation Keys:",
	"  h, Left Arrow  - Move Left",
	"  l, Right Arrow - Move Right",
	"  k, Up Arrow    - Move Up",
	"  j, Down Arrow  - Move Down",
	"",
	"Other Keys:",
	"  Ctrl+d - Move Down Half Page",
	"  Ctrl+u - Move Up Half Page",
	"  Ctrl+r - Toggle Ruler",
	"  ?      - Toggle Help Menu",
	"  q      - Quit",
	"",
	"Mouse Controls:",
	"  Left Click  - Draw on Map",
	"  Right Click - Erase from Map",
}

const helpTitle = " Help "

// drawHelp paints a centered bordered popup over the map. Too-small
// terminals skip the popup instead of clipping it into garbage.
func drawHelp(screen tcell.Screen, w, h int) {
	innerW := runewidth.StringWidth(helpTitle)
	for _, line := range helpLines {
		if lw := runewidth.StringWidth(line); lw > innerW {
			innerW = lw
		}
	}
	innerW += 2 // one cell of padding each side
	innerH := len(helpLines)

	boxW := innerW + 2
	boxH := innerH + 2
	if boxW > w || boxH > h {
		return
	}

	left := (w - boxW) / 2
	top := (h - boxH) / 2

	border := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	body := tcell.StyleDefault

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			screen.SetContent(left+x, top+y, ' ', nil, body)
		}
	}

	screen.SetContent(left, top, '┌', nil, border)
	screen.SetContent(left+boxW-1, top, '┐', nil, border)
	screen.SetContent(left, top+boxH-1, '└', nil, border)
	screen.SetContent(left+boxW-1, top+boxH-1, '┘', nil, border)
	for x := 1; x < boxW-1; x++ {
		screen.SetContent(left+x, top, '─', nil, border)
		screen.SetContent(left+x, top+boxH-1, '─', nil, border)
	}
	for y := 1; y < boxH-1; y++ {
		screen.SetContent(left, top+y, '│', nil, border)
		screen.SetContent(left+boxW-1, top+y, '│', nil, border)
	}

	for i, r := range helpTitle {
		screen.SetContent(left+2+i, top, r, nil, border)
	}

	for i, line := range helpLines {
		x := left + 2
		for _, r := range line {
			screen.SetContent(x, top+1+i, r, nil, body)
			x += runewidth.RuneWidth(r)
		}
	}
}
