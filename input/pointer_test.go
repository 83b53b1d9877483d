package input

import (
	"testing"

	"github.com/lixenwraith/mapview/camera"
	"github.com/lixenwraith/mapview/constants"
	"github.com/lixenwraith/mapview/grid"
	"github.com/lixenwraith/mapview/render"
)

func TestMapPointerRulersOff(t *testing.T) {
	wx, wy, ok := MapPointer(3, 2, camera.Camera{X: 10, Y: 20}, false)
	if !ok {
		t.Fatal("Expected pointer inside drawable area")
	}
	if wx != 13 || wy != 22 {
		t.Errorf("Expected world (13, 22), got (%d, %d)", wx, wy)
	}
}

func TestMapPointerRulersOn(t *testing.T) {
	wx, wy, ok := MapPointer(4, 1, camera.Camera{}, true)
	if !ok {
		t.Fatal("Expected first content cell to map")
	}
	if wx != 0 || wy != 0 {
		t.Errorf("Expected world (0, 0), got (%d, %d)", wx, wy)
	}
}

func TestMapPointerOnRulerStrips(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"top-left corner", 0, 0},
		{"left ruler", 3, 5},
		{"top ruler", 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, ok := MapPointer(c.x, c.y, camera.Camera{X: 50, Y: 50}, true); ok {
				t.Errorf("Expected (%d, %d) to land outside the drawable area", c.x, c.y)
			}
		})
	}

	// Same positions map fine once rulers are hidden
	if _, _, ok := MapPointer(0, 0, camera.Camera{}, false); !ok {
		t.Error("Expected (0, 0) to map with rulers hidden")
	}
}

// TestMapPointerInvertsProjection checks the round trip: the cell the
// projector renders at a content offset is exactly the cell a click on
// that screen position maps back to.
func TestMapPointerInvertsProjection(t *testing.T) {
	g := grid.New(200, 200, 0)
	cam := camera.Camera{X: 17, Y: 42}

	// Paint a single distinctive cell at content offset (6, 3)
	cx, cy := 6, 3
	g.Set(cx+cam.X, cy+cam.Y, grid.MaxValue)

	vp := render.Viewport{Width: 40, Height: 20, Rulers: true}
	rows := render.Project(g, cam, vp, render.BinaryGlyphs)

	screenX := constants.RulerLeftWidth + cx
	screenY := constants.RulerTopHeight + cy

	row := []rune(rows[screenY])
	if row[screenX] != '█' {
		t.Fatalf("Expected painted cell at screen (%d, %d), got %q", screenX, screenY, row[screenX])
	}

	wx, wy, ok := MapPointer(screenX, screenY, cam, true)
	if !ok {
		t.Fatal("Expected content position to map")
	}
	if wx != cx+cam.X || wy != cy+cam.Y {
		t.Errorf("Expected world (%d, %d), got (%d, %d)", cx+cam.X, cy+cam.Y, wx, wy)
	}
}

func TestMapPointerFarClickReliesOnGridClamp(t *testing.T) {
	// A click past the grid edge still maps to a world coordinate; the
	// grid's ignore-out-of-range write policy absorbs it.
	g := grid.New(20, 20, 0)
	cam := camera.Camera{}

	wx, wy, ok := MapPointer(30, 30, cam, false)
	if !ok {
		t.Fatal("Expected map to succeed, bounds are the grid's concern")
	}
	g.Set(wx, wy, grid.MaxValue)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if v, _ := g.Get(x, y); v != 0 {
				t.Fatalf("Expected no cell written by out-of-range click, found (%d, %d)", x, y)
			}
		}
	}
}
