package input

import (
	"github.com/lixenwraith/mapview/camera"
	"github.com/lixenwraith/mapview/constants"
)

// MapPointer inverts the projector's placement: it converts a screen
// position into the world cell rendered there. ok is false when the
// position falls on the ruler strips rather than map content. The
// caller still has to bounds-check the result against the grid, which
// Grid.Set's ignore-out-of-range policy covers.
func MapPointer(screenX, screenY int, cam camera.Camera, rulers bool) (worldX, worldY int, ok bool) {
	if rulers {
		screenX -= constants.RulerLeftWidth
		screenY -= constants.RulerTopHeight
	}
	if screenX < 0 || screenY < 0 {
		return 0, 0, false
	}
	return screenX + cam.X, screenY + cam.Y, true
}
