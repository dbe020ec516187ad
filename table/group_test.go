package table

import (
	"testing"

	"github.com/ccgkit/go-card-table/geom"
)

// checkGroupInvariants asserts every tracked group has at least two live
// members and every card's handle resolves to a tracked group.
func checkGroupInvariants(t *testing.T, s *Scene) {
	t.Helper()
	for _, g := range s.Groups() {
		if len(g.Members()) < 2 {
			t.Fatalf("group %d has %d members", g.Handle(), len(g.Members()))
		}
	}
	for _, o := range s.Objects {
		if o.Kind != KindCard || o.Group() == 0 {
			continue
		}
		if s.GroupByHandle(o.Group()) == nil {
			t.Fatalf("card %s references untracked group %d", o.Label, o.Group())
		}
	}
}

func TestOverlappingDropFormsGroup(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(99, 6))

	if !s.BeginDrag(b, b.Pos, false) {
		t.Fatal("drag should start")
	}
	// Releasing near a's cell snaps the card onto it.
	s.EndDrag(geom.V(10, 12), s.Camera.WorldToScreen(geom.V(10, 12)), false)

	groups := s.Groups()
	if len(groups) != 1 || groups[0].Size() != 2 {
		t.Fatalf("expected one group of two, got %+v", groups)
	}
	if a.Group() != b.Group() || a.Group() == 0 {
		t.Fatalf("cards disagree on their group: %d vs %d", a.Group(), b.Group())
	}
	if a.Pos != b.Pos {
		t.Fatalf("amarre members should share a position: %v vs %v", a.Pos, b.Pos)
	}
	checkGroupInvariants(t, s)
}

func TestDraggingGroupMovesAllMembers(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(3, 6))
	s.MergeCards(b, a)

	start := a.Pos
	if !s.BeginDrag(a, start.Add(geom.V(10, 10)), false) {
		t.Fatal("drag should start")
	}
	s.DragTo(start.Add(geom.V(210, 10)))
	if a.Pos != b.Pos {
		t.Fatalf("members separated during group drag: %v vs %v", a.Pos, b.Pos)
	}
	if a.Pos == start {
		t.Fatal("group did not move")
	}
}

func TestModifierDragDetachesSingleCard(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(3, 6))
	c := addCard(s, "3♦", geom.V(3, 6))
	s.MergeCards(b, a)
	s.MergeCards(c, a)

	if !s.BeginDrag(c, c.Pos.Add(geom.V(5, 5)), true) {
		t.Fatal("drag should start")
	}
	s.DragTo(geom.V(500, 300))
	if c.Group() != 0 {
		t.Fatal("modifier drag should detach the card from its amarre")
	}
	if a.Pos != b.Pos || a.Pos == c.Pos {
		t.Fatal("remaining members should stay together without the detached card")
	}
	checkGroupInvariants(t, s)
}

func TestDetachBelowTwoDissolvesGroup(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(3, 6))
	s.MergeCards(b, a)

	s.DetachFromGroup(b)
	if len(s.Groups()) != 0 {
		t.Fatalf("group of one must dissolve, still tracking %d", len(s.Groups()))
	}
	if a.Group() != 0 || b.Group() != 0 {
		t.Fatal("dissolved members must be independent")
	}
	if a.Scale != 1.0 || b.Scale != 1.0 {
		t.Fatal("dissolved members revert to scale 1.0")
	}
	checkGroupInvariants(t, s)
}

func TestUnionOfTwoGroups(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(3, 6))
	c := addCard(s, "3♦", geom.V(291, 6))
	d := addCard(s, "4♣", geom.V(291, 6))
	s.MergeCards(b, a)
	s.MergeCards(d, c)

	// Drop a's whole group onto c's group.
	s.MergeCards(a, c)

	groups := s.Groups()
	if len(groups) != 1 || groups[0].Size() != 4 {
		t.Fatalf("expected one group of four, got %+v", groups)
	}
	for _, o := range []*Object{a, b, c, d} {
		if o.Group() != groups[0].Handle() {
			t.Fatalf("card %s not reparented into the survivor", o.Label)
		}
		if o.Pos != c.Pos {
			t.Fatalf("card %s not stacked on the surviving anchor", o.Label)
		}
	}
	checkGroupInvariants(t, s)
}

func TestMergeSameGroupIsNoop(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(3, 6))
	s.MergeCards(b, a)
	s.MergeCards(a, b)
	if len(s.Groups()) != 1 || s.Groups()[0].Size() != 2 {
		t.Fatal("merging members of the same amarre must change nothing")
	}
}

func TestRemovingMemberPrunesGroup(t *testing.T) {
	s, _ := newTestScene()
	a := addCard(s, "A♠", geom.V(3, 6))
	b := addCard(s, "2♥", geom.V(3, 6))
	s.MergeCards(b, a)

	s.RemoveObject(b)
	if len(s.Groups()) != 0 {
		t.Fatal("group should dissolve when a member is removed")
	}
	if a.Group() != 0 {
		t.Fatal("survivor should be independent")
	}
	checkGroupInvariants(t, s)
}
