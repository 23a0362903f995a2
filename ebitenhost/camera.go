package ebitenhost

import "math"

// Camera is the scroll position of the view into the world. It implements
// [kinex.Scroller], so wrapping it with [kinex.NewViewport] lets tweens drive
// "scrollX" and "scrollY".
type Camera struct {
	// X and Y are the world-space coordinates shown at the top-left of the
	// viewport.
	X, Y float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the scroll position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect
}

// NewCamera creates a camera at the origin with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Viewport: viewport}
}

// ScrollPosition implements kinex.Scroller.
func (c *Camera) ScrollPosition() (x, y float64) {
	return c.X, c.Y
}

// ScrollTo implements kinex.Scroller. The position is clamped when bounds
// are enabled.
func (c *Camera) ScrollTo(x, y float64) {
	c.X, c.Y = x, y
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// SetBounds enables bounds clamping and applies it immediately.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.clampToBounds()
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// clampToBounds restricts the scroll position so the visible area stays
// within Bounds.
func (c *Camera) clampToBounds() {
	minX := c.Bounds.X
	maxX := c.Bounds.X + c.Bounds.Width - c.Viewport.Width
	minY := c.Bounds.Y
	maxY := c.Bounds.Y + c.Bounds.Height - c.Viewport.Height

	// If bounds are smaller than the viewport, pin to the bounds origin.
	if minX > maxX {
		c.X = minX
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = minY
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx - c.X + c.Viewport.X, wy - c.Y + c.Viewport.Y
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx - c.Viewport.X + c.X, sy - c.Viewport.Y + c.Y
}
