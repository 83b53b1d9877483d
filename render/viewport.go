package render

import "github.com/lixenwraith/mapview/constants"

// Viewport describes the screen area available for one frame: the full
// terminal size plus whether rulers currently consume part of it.
type Viewport struct {
	Width, Height int
	Rulers        bool
}

// ContentWidth returns the columns left for map content after the left
// ruler reservation. Never negative.
func (v Viewport) ContentWidth() int {
	w := v.Width
	if v.Rulers {
		w -= constants.RulerLeftWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}

// ContentHeight returns the rows left for map content. When rulers are
// visible both the top label row and the trailing bottom row are
// reserved; the same figure feeds camera bounds and rendering so the
// two can never disagree. Never negative.
func (v Viewport) ContentHeight() int {
	h := v.Height
	if v.Rulers {
		h -= constants.RulerTopHeight + constants.RulerBottomHeight
	}
	if h < 0 {
		h = 0
	}
	return h
}
