package table

import (
	"math"

	"github.com/ccgkit/go-card-table/geom"
)

const (
	minZoom        = 0.25
	maxZoom        = 2.0
	zoomStepFactor = 1.2
)

// Camera maps between the unbounded world plane and the viewport. Zoom is
// always kept within [MinZoom, MaxZoom].
type Camera struct {
	Center   geom.Vec2
	Zoom     float64
	MinZoom  float64
	MaxZoom  float64
	Viewport geom.Vec2
}

func NewCamera(width, height float64) *Camera {
	return &Camera{
		Zoom:     1.0,
		MinZoom:  minZoom,
		MaxZoom:  maxZoom,
		Viewport: geom.V(width, height),
	}
}

func (c *Camera) screenCenter() geom.Vec2 {
	return c.Viewport.Div(2)
}

func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return c.screenCenter().Add(p.Sub(c.Center).Mul(c.Zoom))
}

func (c *Camera) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	offset := p.Sub(c.screenCenter())
	// A zero zoom would blow up the divide; treat it as identity.
	if c.Zoom != 0 {
		offset = offset.Div(c.Zoom)
	}
	return c.Center.Add(offset)
}

// AdjustZoom multiplies the zoom by 1.2^steps, clamped to the configured
// bounds, keeping the world point under cursor stationary on screen.
func (c *Camera) AdjustZoom(steps float64, cursor geom.Vec2) {
	if steps == 0 {
		return
	}
	factor := math.Pow(zoomStepFactor, steps)
	newZoom := math.Min(c.MaxZoom, math.Max(c.MinZoom, c.Zoom*factor))
	if math.Abs(newZoom-c.Zoom) < 1e-6 {
		return
	}
	focusBefore := c.ScreenToWorld(cursor)
	c.Zoom = newZoom
	focusAfter := c.ScreenToWorld(cursor)
	c.Center = c.Center.Add(focusBefore.Sub(focusAfter))
}

// Pan shifts the camera by a screen-space delta, so the world appears to
// follow the pointer.
func (c *Camera) Pan(deltaScreen geom.Vec2) {
	c.Center = c.Center.Sub(deltaScreen.Div(math.Max(c.Zoom, 1e-6)))
}
