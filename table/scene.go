package table

import (
	"math/rand"
	"time"

	"github.com/ccgkit/go-card-table/geom"
	"github.com/ccgkit/go-card-table/models"
)

// Scene owns every piece of mutable table state: the z-ordered object list
// (back to front), the group table, the camera and the hand zone. It is
// single-owner state driven from the frame loop; nothing here locks.
type Scene struct {
	Objects []*Object
	Camera  *Camera
	Hand    *Hand

	groups    []*Group
	nextGroup GroupHandle

	rng *rand.Rand
	now func() time.Time

	dragged      string
	draggedGroup GroupHandle
	dragOffset   geom.Vec2 // pointer to top-left, world space
	dragOrigin   geom.Vec2 // pre-drag position for revert
	dragFromHand bool

	panActive bool
	panLast   geom.Vec2

	lastClickID string
	lastClickAt time.Time
	lastEscape  time.Time
}

// NewScene builds a scene for the given viewport. rng and now may be nil for
// the defaults; tests inject both.
func NewScene(width, height float64, rng *rand.Rand, now func() time.Time) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	s := &Scene{
		Camera:    NewCamera(width, height),
		rng:       rng,
		now:       now,
		nextGroup: 1,
	}
	s.Hand = newHand(s)
	return s
}

// SeedInitialObjects places the starting card and a shuffled standard deck
// side by side around the world origin, both snapped to the grid.
func (s *Scene) SeedInitialObjects() {
	const gap = 24.0
	labels := models.StandardLabels()
	s.rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	card := NewCard("A♠", geom.V(-CardSize.X-gap/2, -CardSize.Y/2))
	deck := NewDeck(geom.V(gap/2, -CardSize.Y/2), labels)
	s.Objects = append(s.Objects, card, deck)
	s.SnapToGrid(card)
	s.SnapToGrid(deck)
}

// ObjectByID resolves an ID against the live object list; nil when the
// entity has been removed. Every mutator goes through this, so operations on
// stale references degrade to no-ops.
func (s *Scene) ObjectByID(id string) *Object {
	if id == "" {
		return nil
	}
	for _, o := range s.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// ObjectAt returns the top-most world object whose rect contains the world
// point. Hand cards live in screen space and are skipped.
func (s *Scene) ObjectAt(world geom.Vec2) *Object {
	for i := len(s.Objects) - 1; i >= 0; i-- {
		o := s.Objects[i]
		if o.inHand {
			continue
		}
		if o.Rect().Contains(world) {
			return o
		}
	}
	return nil
}

// DeckObject returns the table's deck, nil once it has been exhausted and
// removed.
func (s *Scene) DeckObject() *Object {
	for _, o := range s.Objects {
		if o.Kind == KindDeck {
			return o
		}
	}
	return nil
}

// Dragged returns the object currently being dragged, nil when idle.
func (s *Scene) Dragged() *Object {
	return s.ObjectByID(s.dragged)
}

// BringToFront moves an object to the end of the z-order.
func (s *Scene) BringToFront(o *Object) {
	for i, other := range s.Objects {
		if other == o {
			s.Objects = append(append(s.Objects[:i], s.Objects[i+1:]...), o)
			return
		}
	}
}

// bringGroupToFront raises every member, preserving their relative order.
func (s *Scene) bringGroupToFront(g *Group) {
	members := s.groupObjects(g)
	in := func(o *Object) bool {
		for _, m := range members {
			if m == o {
				return true
			}
		}
		return false
	}
	rest := make([]*Object, 0, len(s.Objects))
	for _, o := range s.Objects {
		if !in(o) {
			rest = append(rest, o)
		}
	}
	s.Objects = append(rest, members...)
}

// RemoveObject drops an entity from the scene, the hand and any amarre.
func (s *Scene) RemoveObject(o *Object) {
	if o == nil {
		return
	}
	s.Hand.RemoveCard(o)
	s.DetachFromGroup(o)
	for i, other := range s.Objects {
		if other == o {
			s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
			break
		}
	}
	if s.dragged == o.ID {
		s.dragged = ""
		s.draggedGroup = 0
	}
	s.pruneGroups()
}

// BeginDrag starts dragging the hit object. A card inside an amarre drags
// the whole stack unless detach is set, which pulls the single card out
// first. Returns false for stale objects.
func (s *Scene) BeginDrag(o *Object, worldPointer geom.Vec2, detach bool) bool {
	if o == nil || s.ObjectByID(o.ID) == nil {
		return false
	}
	s.dragFromHand = o.inHand
	if o.inHand {
		// The card leaves the dock immediately; release decides whether it
		// comes back. Its world position continues from its screen spot.
		o.Pos = s.Camera.ScreenToWorld(o.handPos)
		s.Hand.RemoveCard(o)
	}
	if detach {
		s.DetachFromGroup(o)
	}
	s.dragged = o.ID
	s.draggedGroup = o.group
	s.dragOrigin = o.Pos
	s.dragOffset = worldPointer.Sub(o.Pos)

	if g := s.GroupByHandle(s.draggedGroup); g != nil {
		s.bringGroupToFront(g)
		for _, m := range s.groupObjects(g) {
			m.SetScale(dragLiftScale)
		}
	} else {
		s.BringToFront(o)
		o.SetScale(dragLiftScale)
	}
	s.DragTo(worldPointer)
	return true
}

// DragTo repositions the dragged object (and its whole amarre) under the
// pointer, sampling the shadow trail on the way.
func (s *Scene) DragTo(worldPointer geom.Vec2) {
	o := s.ObjectByID(s.dragged)
	if o == nil {
		s.dragged = ""
		s.draggedGroup = 0
		return
	}
	s.moveDraggedTo(o, worldPointer)
}

func (s *Scene) moveDraggedTo(o *Object, worldPointer geom.Vec2) {
	o.CaptureShadowSample(s.now())
	pos := worldPointer.Sub(s.dragOffset)
	o.Pos = pos
	if g := s.GroupByHandle(s.draggedGroup); g != nil {
		for _, m := range s.groupObjects(g) {
			m.Pos = pos
		}
	}
}

// EndDrag releases the current drag and resolves the drop: hand first, then
// grid snap, then deck-overlap relocation, then the merge pass. returnToDeck
// shuffles a lone card back into the deck when it is dropped onto it.
func (s *Scene) EndDrag(worldPointer, screenPointer geom.Vec2, returnToDeck bool) {
	o := s.ObjectByID(s.dragged)
	s.dragged = ""
	if o == nil {
		s.draggedGroup = 0
		return
	}
	s.moveDraggedTo(o, worldPointer)
	g := s.GroupByHandle(s.draggedGroup)
	s.draggedGroup = 0
	fromHand := s.dragFromHand
	s.dragFromHand = false

	members := []*Object{o}
	if g != nil {
		members = s.groupObjects(g)
	}
	for _, m := range members {
		m.SetScale(1.0)
	}

	// 1. Hand drop, single cards only.
	if g == nil && o.Kind == KindCard {
		if s.Hand.AcceptsDrop(o, screenPointer, s.screenRect(o)) {
			s.Hand.AddCard(o)
			return
		}
	}

	// 2. Commit to the grid.
	s.SnapToGrid(o)
	for _, m := range members {
		m.Pos = o.Pos
	}

	// 3. Resolve deck overlap: shuffle a lone card back in when requested,
	// otherwise relocate to a free slot next to the deck, or revert to the
	// pre-drag position when all eight slots are taken.
	if deck := s.DeckObject(); deck != nil && deck != o && o.Rect().Overlaps(deck.Rect()) {
		if returnToDeck && g == nil && o.Kind == KindCard {
			deck.ShuffleIn(s.rng, o.Label)
			s.RemoveObject(o)
			return
		}
		r := o.Rect()
		sx, sy := o.GridSpan()
		if pos, ok := s.FindFreeSlot(deck, geom.V(r.W, r.H), sx, sy, members...); ok {
			for _, m := range members {
				m.Pos = pos
			}
		} else if fromHand {
			// Nowhere to land and no pre-drag spot in the world: dock again.
			s.Hand.AddCard(o)
			return
		} else {
			for _, m := range members {
				m.Pos = s.dragOrigin
			}
		}
	}

	// 4. Merge pass.
	s.resolveMerge(o, members)
}

// resolveMerge finds the top-most non-hand card colliding with the released
// stack and merges with it.
func (s *Scene) resolveMerge(o *Object, released []*Object) {
	if o.Kind != KindCard || o.inHand {
		return
	}
	in := func(c *Object) bool {
		for _, m := range released {
			if m == c {
				return true
			}
		}
		return false
	}
	rect := o.Rect()
	for i := len(s.Objects) - 1; i >= 0; i-- {
		c := s.Objects[i]
		if c.Kind != KindCard || c.inHand || in(c) {
			continue
		}
		if rect.Overlaps(c.Rect()) {
			s.MergeCards(o, c)
			return
		}
	}
}

// SpawnCardFromDeck draws the top card and places it in a free slot next to
// the deck. An exhausted deck is removed from the scene. When no slot is
// free the drawn label is shuffled back and nothing spawns.
func (s *Scene) SpawnCardFromDeck(deck *Object) (*Object, bool) {
	if deck == nil || s.ObjectByID(deck.ID) == nil || deck.Kind != KindDeck {
		return nil, false
	}
	label, ok := deck.DrawCard()
	if !ok {
		s.RemoveObject(deck)
		return nil, false
	}
	sx, sy := 2, 3
	pos, free := s.FindFreeSlot(deck, CardSize, sx, sy)
	if !free {
		deck.ShuffleIn(s.rng, label)
		return nil, false
	}
	card := NewCard(label, pos)
	s.Objects = append(s.Objects, card)
	return card, true
}

// screenRect projects an object's world rect into screen space.
func (s *Scene) screenRect(o *Object) geom.Rect {
	r := o.Rect()
	tl := s.Camera.WorldToScreen(r.TopLeft())
	return geom.R(tl.X, tl.Y, r.W*s.Camera.Zoom, r.H*s.Camera.Zoom)
}

// BeginPan starts moving the camera with the pointer.
func (s *Scene) BeginPan(screen geom.Vec2) {
	s.panActive = true
	s.panLast = screen
}

func (s *Scene) UpdatePan(screen geom.Vec2) {
	if !s.panActive {
		return
	}
	delta := screen.Sub(s.panLast)
	if delta.Len2() > 0 {
		s.Camera.Pan(delta)
		s.panLast = screen
	}
}

func (s *Scene) EndPan() {
	s.panActive = false
}

// Panning reports whether a camera pan is in progress.
func (s *Scene) Panning() bool { return s.panActive }
