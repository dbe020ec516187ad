package table

import (
	"math"
	"testing"

	"github.com/ccgkit/go-card-table/geom"
)

const tolerance = 1e-9

func approxEqual(a, b geom.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestCameraCenterProjection(t *testing.T) {
	c := NewCamera(800, 600)
	got := c.WorldToScreen(geom.V(0, 0))
	if got != geom.V(400, 300) {
		t.Fatalf("origin projected to %v, want (400,300)", got)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.Center = geom.V(-321.5, 77.25)
	c.Zoom = 1.37

	points := []geom.Vec2{
		{X: 0, Y: 0},
		{X: 1000, Y: -1000},
		{X: -3.75, Y: 0.5},
		{X: 1e6, Y: -1e6},
	}
	for _, p := range points {
		back := c.ScreenToWorld(c.WorldToScreen(p))
		if math.Abs(back.X-p.X) > 1e-6 || math.Abs(back.Y-p.Y) > 1e-6 {
			t.Errorf("round trip of %v produced %v", p, back)
		}
	}
}

func TestCameraZoomStaysBounded(t *testing.T) {
	c := NewCamera(800, 600)
	cursor := geom.V(100, 100)
	for i := 0; i < 50; i++ {
		c.AdjustZoom(1, cursor)
	}
	if c.Zoom > c.MaxZoom+tolerance {
		t.Fatalf("zoom %v exceeds max %v", c.Zoom, c.MaxZoom)
	}
	for i := 0; i < 100; i++ {
		c.AdjustZoom(-1, cursor)
	}
	if c.Zoom < c.MinZoom-tolerance {
		t.Fatalf("zoom %v under min %v", c.Zoom, c.MinZoom)
	}
}

func TestCameraZoomAnchorsCursor(t *testing.T) {
	c := NewCamera(800, 600)
	c.Center = geom.V(52, -13)
	cursor := geom.V(123, 456)

	before := c.ScreenToWorld(cursor)
	c.AdjustZoom(1, cursor)
	after := c.ScreenToWorld(cursor)
	if !approxEqual(before, after) {
		t.Fatalf("world point under cursor moved from %v to %v", before, after)
	}

	c.AdjustZoom(-2, cursor)
	again := c.ScreenToWorld(cursor)
	if !approxEqual(after, again) {
		t.Fatalf("world point under cursor moved from %v to %v on zoom out", after, again)
	}
}

func TestCameraClampedZoomIsNoop(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = c.MaxZoom
	center := c.Center
	c.AdjustZoom(3, geom.V(10, 10))
	if c.Zoom != c.MaxZoom || c.Center != center {
		t.Fatalf("zoom at the cap should not move the camera")
	}
}

func TestCameraZeroZoomDoesNotDivide(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = 0
	got := c.ScreenToWorld(geom.V(500, 400))
	want := c.Center.Add(geom.V(100, 100))
	if got != want {
		t.Fatalf("zero-zoom conversion got %v, want %v", got, want)
	}
}

func TestCameraPanFollowsPointer(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = 2
	c.Pan(geom.V(10, -20))
	if !approxEqual(c.Center, geom.V(-5, 10)) {
		t.Fatalf("pan moved center to %v", c.Center)
	}
}
