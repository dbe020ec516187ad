package geom

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := V(3, -4)
	if got := v.Add(V(1, 2)); got != V(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(V(1, 2)); got != V(2, -6) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Mul(2); got != V(6, -8) {
		t.Errorf("Mul = %v", got)
	}
	if got := v.Div(2); got != V(1.5, -2) {
		t.Errorf("Div = %v", got)
	}
	if v.Len() != 5 || v.Len2() != 25 {
		t.Errorf("Len = %v, Len2 = %v", v.Len(), v.Len2())
	}
}

func TestVec2Round(t *testing.T) {
	cases := []struct {
		in, want Vec2
	}{
		{V(1.4, -1.4), V(1, -1)},
		{V(1.5, -1.5), V(2, -2)},
		{V(0, 0), V(0, 0)},
	}
	for _, c := range cases {
		if got := c.in.Round(); got != c.want {
			t.Errorf("Round(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := R(10, 20, 30, 40)
	if !r.Contains(V(10, 20)) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(V(40, 20)) || r.Contains(V(10, 60)) {
		t.Error("right and bottom edges should be outside")
	}
	if !r.Contains(V(39.999, 59.999)) {
		t.Error("interior point just inside the far edges should be inside")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := R(0, 0, 10, 10)
	if !a.Overlaps(R(5, 5, 10, 10)) {
		t.Error("intersecting rects should overlap")
	}
	if a.Overlaps(R(10, 0, 10, 10)) {
		t.Error("edge-adjacent rects should not overlap")
	}
	if a.Overlaps(R(20, 20, 5, 5)) {
		t.Error("disjoint rects should not overlap")
	}
	if !a.Overlaps(R(-5, -5, 100, 100)) {
		t.Error("containing rect should overlap")
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := R(10, 10, 20, 30)
	g := r.Inflate(5, 7)
	if g != R(5, 3, 30, 44) {
		t.Fatalf("Inflate = %v", g)
	}
	if g.Center() != r.Center() {
		t.Fatalf("center moved from %v to %v", r.Center(), g.Center())
	}
}

func TestRectTranslate(t *testing.T) {
	r := R(1, 2, 3, 4).Translate(V(10, -10))
	if r != R(11, -8, 3, 4) {
		t.Fatalf("Translate = %v", r)
	}
}

func TestRectEdges(t *testing.T) {
	r := R(1, 2, 3, 4)
	if r.Right() != 4 || r.Bottom() != 6 {
		t.Fatalf("Right = %v, Bottom = %v", r.Right(), r.Bottom())
	}
	if r.TopLeft() != V(1, 2) || r.Center() != V(2.5, 4) {
		t.Fatalf("TopLeft = %v, Center = %v", r.TopLeft(), r.Center())
	}
	if math.IsNaN(r.Center().X) {
		t.Fatal("center should be finite")
	}
}
