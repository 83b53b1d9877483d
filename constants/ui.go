package constants

import "time"

// Ruler reservations (screen cells)
const (
	// RulerLeftWidth is the column count reserved for Y-axis labels
	RulerLeftWidth = 4

	// RulerTopHeight is the row count reserved for the X-axis label row
	RulerTopHeight = 1

	// RulerBottomHeight is the trailing row reserved below the content area
	RulerBottomHeight = 1
)

// Ruler label spacing (world cells)
const (
	// RulerColumnStep is the world-x period between top ruler labels
	RulerColumnStep = 10

	// RulerRowStep is the world-y period between left ruler labels
	RulerRowStep = 5

	// RulerLabelWrap makes axis labels two-digit cyclic rather than absolute
	RulerLabelWrap = 100
)

// Frame Timing
const (
	// FrameInterval is the redraw period for idle frames; resizes are
	// picked up at this rate even without input
	FrameInterval = 100 * time.Millisecond
)
