package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/mapview/camera"
	"github.com/lixenwraith/mapview/constants"
	"github.com/lixenwraith/mapview/grid"
)

// Project renders the visible slice of the grid into text rows. The
// result is always exactly vp.Height rows of exactly vp.Width runes,
// whatever the camera position: cells past the grid edge render as
// blanks so the frame stays rectangular.
func Project(g *grid.Grid, cam camera.Camera, vp Viewport, glyph GlyphPolicy) []string {
	rows := make([]string, 0, vp.Height)
	cw := vp.ContentWidth()
	ch := vp.ContentHeight()

	if vp.Rulers && vp.Height > 0 {
		rows = append(rows, fitRow(topRuler(cam.X, cw), vp.Width))
	}

	for y := 0; y < ch; y++ {
		worldY := y + cam.Y
		var b strings.Builder
		if vp.Rulers {
			b.WriteString(leftRuler(worldY))
		}
		for x := 0; x < cw; x++ {
			worldX := x + cam.X
			if v, ok := g.Get(worldX, worldY); ok {
				b.WriteRune(glyph(v))
			} else {
				b.WriteRune(' ')
			}
		}
		rows = append(rows, fitRow(b.String(), vp.Width))
	}

	// Blank rows fill out the frame: the reserved bottom ruler row, or
	// whatever a degenerate terminal left no content rows for.
	for len(rows) < vp.Height {
		rows = append(rows, strings.Repeat(" ", vp.Width))
	}
	return rows
}

// topRuler builds the X-axis label row for the given camera offset.
// Every RulerColumnStep-th world column gets a right-aligned two-digit
// cyclic label; other columns contribute two blanks.
func topRuler(camX, contentW int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", constants.RulerLeftWidth))
	for x := 0; x < contentW; x++ {
		worldX := x + camX
		if worldX%constants.RulerColumnStep == 0 {
			fmt.Fprintf(&b, "%2d", worldX%constants.RulerLabelWrap)
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}

// leftRuler builds the RulerLeftWidth-wide prefix for one content row:
// a right-aligned cyclic label plus separator on every RulerRowStep-th
// world row, blanks otherwise.
func leftRuler(worldY int) string {
	if worldY%constants.RulerRowStep == 0 {
		return fmt.Sprintf("%3d ", worldY%constants.RulerLabelWrap)
	}
	return strings.Repeat(" ", constants.RulerLeftWidth)
}

// fitRow clips or pads a row to exactly w runes.
func fitRow(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	if len(r) < w {
		return s + strings.Repeat(" ", w-len(r))
	}
	return s
}
