package camera

// Camera is the world-space origin of the visible window. Both axes are
// kept within [0, max] by every mutation, where max comes from Bounds.
type Camera struct {
	X, Y int
}

// Bounds returns the maximum legal camera position for a grid viewed
// through a drawable area. The drawable dimensions must already exclude
// ruler reservations; subtracting them after the fact would let the
// camera scroll one ruler-width past the map edge. A drawable area
// larger than the grid pins the camera at the origin.
func Bounds(gridW, gridH, drawW, drawH int) (maxX, maxY int) {
	maxX = gridW - drawW
	if maxX < 0 {
		maxX = 0
	}
	maxY = gridH - drawH
	if maxY < 0 {
		maxY = 0
	}
	return maxX, maxY
}

// Clamp pulls the camera back inside [0, max] on both axes. Applying it
// to an in-range camera is a no-op, so it is safe to run every frame.
func (c *Camera) Clamp(maxX, maxY int) {
	if c.X > maxX {
		c.X = maxX
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.Y > maxY {
		c.Y = maxY
	}
	if c.Y < 0 {
		c.Y = 0
	}
}

// MoveBy applies a signed step to each axis, then clamps.
func (c *Camera) MoveBy(dx, dy, maxX, maxY int) {
	c.X += dx
	c.Y += dy
	c.Clamp(maxX, maxY)
}

// PageDown moves the camera down by half a page. A move that would reach
// or pass the boundary snaps exactly to it instead of overshooting.
func (c *Camera) PageDown(half, maxY int) {
	if c.Y+half < maxY {
		c.Y += half
	} else {
		c.Y = maxY
	}
}

// PageUp moves the camera up by half a page, snapping to the top edge.
func (c *Camera) PageUp(half int) {
	if c.Y > half {
		c.Y -= half
	} else {
		c.Y = 0
	}
}
