package table

import (
	"testing"
	"time"

	"github.com/ccgkit/go-card-table/geom"
)

func TestShadowSamplesThrottleByDistance(t *testing.T) {
	clock := newFakeClock()
	c := NewCard("A♠", geom.V(0, 0))

	c.CaptureShadowSample(clock.now())
	c.Pos = geom.V(4, 0) // under the 8px threshold
	c.CaptureShadowSample(clock.now())
	if len(c.Trail(clock.now())) != 1 {
		t.Fatalf("short hop recorded %d samples, want 1", len(c.Trail(clock.now())))
	}

	c.Pos = geom.V(12, 0)
	c.CaptureShadowSample(clock.now())
	if len(c.Trail(clock.now())) != 2 {
		t.Fatalf("8px move recorded %d samples, want 2", len(c.Trail(clock.now())))
	}
}

func TestShadowTrailExpires(t *testing.T) {
	clock := newFakeClock()
	c := NewCard("A♠", geom.V(0, 0))

	c.CaptureShadowSample(clock.now())
	clock.advance(shadowLifetime / 2)
	c.Pos = geom.V(20, 0)
	c.CaptureShadowSample(clock.now())

	if got := len(c.Trail(clock.now())); got != 2 {
		t.Fatalf("live trail has %d samples, want 2", got)
	}
	clock.advance(shadowLifetime/2 + time.Millisecond)
	if got := len(c.Trail(clock.now())); got != 1 {
		t.Fatalf("trail after half a lifetime has %d samples, want 1", got)
	}
	clock.advance(shadowLifetime)
	if got := len(c.Trail(clock.now())); got != 0 {
		t.Fatalf("trail should be empty, has %d samples", got)
	}
}

func TestShadowThrottleResetsAfterExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewCard("A♠", geom.V(0, 0))

	c.CaptureShadowSample(clock.now())
	clock.advance(shadowLifetime + time.Millisecond)
	if len(c.Trail(clock.now())) != 0 {
		t.Fatal("trail should have expired")
	}
	// A new drag starting at the old spot records again despite the throttle.
	c.CaptureShadowSample(clock.now())
	if len(c.Trail(clock.now())) != 1 {
		t.Fatal("fresh drag should record from its first sample")
	}
}

func TestShadowSamplesFromTheFutureExpire(t *testing.T) {
	clock := newFakeClock()
	c := NewCard("A♠", geom.V(0, 0))
	clock.advance(time.Hour)
	c.CaptureShadowSample(clock.now())

	// The wall clock jumped backwards; the sample must not linger forever.
	past := clock.now().Add(-time.Hour)
	if got := len(c.Trail(past)); got != 0 {
		t.Fatalf("future-dated sample survived, trail has %d", got)
	}
}

func TestShadowFadeRange(t *testing.T) {
	if shadowFade(0) != 1 {
		t.Fatalf("fresh sample fade %v, want 1", shadowFade(0))
	}
	if got := shadowFade(shadowLifetime / 2); got <= 0.4 || got >= 0.6 {
		t.Fatalf("half-life fade %v, want about 0.5", got)
	}
	if shadowFade(shadowLifetime+time.Millisecond) != 0 {
		t.Fatal("expired sample should be invisible")
	}
	if shadowFade(-time.Millisecond) != 0 {
		t.Fatal("negative age should be invisible")
	}
}

func TestObjectRectNeverCollapses(t *testing.T) {
	c := NewCard("A♠", geom.V(0, 0))
	c.SetScale(0)
	r := c.Rect()
	if r.W < 1 || r.H < 1 {
		t.Fatalf("rect %v collapsed below one pixel", r)
	}
	if c.Scale <= 0 {
		t.Fatalf("scale clamped to %v, want a positive floor", c.Scale)
	}
}

func TestObjectIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := NewCard("A♠", geom.Vec2{})
		if seen[c.ID] {
			t.Fatalf("duplicate object id %s", c.ID)
		}
		seen[c.ID] = true
	}
}
