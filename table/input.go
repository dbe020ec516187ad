package table

import (
	"time"

	"github.com/ccgkit/go-card-table/geom"
)

const (
	doubleClickWindow = 400 * time.Millisecond
	doublePressWindow = 500 * time.Millisecond
)

// The gesture set, in one place: left-drag moves cards and stacks, Ctrl
// detaches a single card from its stack, a repeated Ctrl+click on the deck
// within 400ms draws a card, dragging on empty table pans, the wheel zooms
// at the cursor, Ctrl+drop on the deck shuffles a card back in, and a double
// Escape recenters the camera on the deck.

// PointerDown handles a left-button press at a screen position.
func (s *Scene) PointerDown(screen geom.Vec2, ctrl bool) {
	if s.dragged != "" {
		return
	}
	now := s.now()

	// Hand cards sit above the world and intercept the pointer first.
	if o := s.Hand.HitTest(screen); o != nil {
		world := s.Camera.ScreenToWorld(screen)
		s.rememberClick(o, now)
		s.BeginDrag(o, world, ctrl)
		return
	}

	world := s.Camera.ScreenToWorld(screen)
	hit := s.ObjectAt(world)
	if hit == nil {
		s.BeginPan(screen)
		return
	}

	if hit.Kind == KindDeck && ctrl && s.isRepeatClick(hit, now) {
		s.lastClickID = ""
		if card, ok := s.SpawnCardFromDeck(hit); ok {
			s.BeginDrag(card, world, false)
		}
		return
	}

	s.rememberClick(hit, now)
	s.BeginDrag(hit, world, ctrl)
}

// PointerUp ends the active drag or pan. Releasing always terminates the
// gesture, there is no partial state to cancel.
func (s *Scene) PointerUp(screen geom.Vec2, ctrl bool) {
	if s.dragged != "" {
		s.EndDrag(s.Camera.ScreenToWorld(screen), screen, ctrl)
	}
	s.EndPan()
}

// Wheel zooms anchored at the cursor.
func (s *Scene) Wheel(steps float64, cursor geom.Vec2) {
	s.Camera.AdjustZoom(steps, cursor)
}

// PressEscape arms the recenter gesture; a second press inside the window
// recenters the camera on the deck, or the world origin once the deck is
// gone.
func (s *Scene) PressEscape() {
	now := s.now()
	since := now.Sub(s.lastEscape)
	if !s.lastEscape.IsZero() && since >= 0 && since <= doublePressWindow {
		s.lastEscape = time.Time{}
		if deck := s.DeckObject(); deck != nil {
			s.Camera.Center = deck.Rect().Center()
		} else {
			s.Camera.Center = geom.Vec2{}
		}
		return
	}
	s.lastEscape = now
}

// Step advances one frame: follow the pointer for the active drag or pan and
// re-run the hand layout.
func (s *Scene) Step(pointer geom.Vec2, dt float64) {
	if s.dragged != "" {
		s.DragTo(s.Camera.ScreenToWorld(pointer))
	} else if s.panActive {
		s.UpdatePan(pointer)
	}
	s.Hand.Layout(pointer, s.Dragged(), dt)
}

func (s *Scene) rememberClick(o *Object, now time.Time) {
	s.lastClickID = o.ID
	s.lastClickAt = now
}

// isRepeatClick reports whether this press repeats a previous click on the
// same entity within the double-click window. Negative elapsed time means
// clock skew and never matches.
func (s *Scene) isRepeatClick(o *Object, now time.Time) bool {
	if s.lastClickID != o.ID {
		return false
	}
	since := now.Sub(s.lastClickAt)
	return since >= 0 && since <= doubleClickWindow
}
