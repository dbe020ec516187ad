package table

import (
	"github.com/ccgkit/go-card-table/geom"
	"github.com/ccgkit/go-card-table/tween"
)

const (
	handMargin      = 60.0
	handBandHeight  = 150.0
	handBottomPad   = 24.0
	handArcHeight   = 36.0
	handHoverScale  = 1.25
	handHoverLift   = 24.0
	handHitInflate  = 12.0
	handGlideSecs   = 0.3
)

// Hand is the screen-anchored zone along the bottom edge holding cards
// removed from the world. Cards keep their scene objects; the hand stores
// their IDs left to right and recomputes every card's target screen rect
// each frame from the arc layout.
type Hand struct {
	scene   *Scene
	cards   []string
	hovered string
}

func newHand(s *Scene) *Hand {
	return &Hand{scene: s}
}

func (h *Hand) Len() int { return len(h.cards) }

// Cards resolves the docked cards to live objects, dropping stale IDs.
func (h *Hand) Cards() []*Object {
	live := h.cards[:0]
	objs := make([]*Object, 0, len(h.cards))
	for _, id := range h.cards {
		if o := h.scene.ObjectByID(id); o != nil && o.inHand {
			live = append(live, id)
			objs = append(objs, o)
		}
	}
	h.cards = live
	return objs
}

// AddCard docks a card, forcing it out of any amarre first; hand and group
// membership are mutually exclusive.
func (h *Hand) AddCard(o *Object) {
	if o == nil || o.Kind != KindCard || o.inHand {
		return
	}
	h.scene.DetachFromGroup(o)
	o.inHand = true
	o.SetScale(1.0)
	// Start the glide from wherever the card was dropped on screen.
	o.handPos = h.scene.Camera.WorldToScreen(o.Pos)
	o.tweenX = nil
	o.tweenY = nil
	h.cards = append(h.cards, o.ID)
}

// RemoveCard releases a card back to the caller (world or deck).
func (h *Hand) RemoveCard(o *Object) bool {
	if o == nil {
		return false
	}
	for i, id := range h.cards {
		if id == o.ID {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			o.inHand = false
			if h.hovered == o.ID {
				h.hovered = ""
			}
			return true
		}
	}
	return false
}

// AcceptsDrop reports whether a released card lands in the hand: the pointer
// is inside the bottom band, or the card's own screen rect already crosses
// into it. Cards still bound to a group are refused.
func (h *Hand) AcceptsDrop(o *Object, pointer geom.Vec2, screenRect geom.Rect) bool {
	if o == nil || o.Kind != KindCard || o.group != 0 {
		return false
	}
	threshold := h.scene.Camera.Viewport.Y - handBandHeight
	return pointer.Y >= threshold || screenRect.Bottom() >= threshold
}

// HitTest returns the docked card under the pointer. Every card is tested
// against its enlarged hit rect, in index order; the first match wins, so at
// most one card hovers at a time.
func (h *Hand) HitTest(pointer geom.Vec2) *Object {
	for _, o := range h.Cards() {
		if o.handRect.Inflate(handHitInflate, handHitInflate).Contains(pointer) {
			return o
		}
	}
	return nil
}

// Layout recomputes the arc for every non-dragged docked card and advances
// their glide toward the new targets. The hovered card is scaled up, lifted
// further, and raised to the top of the z-order.
func (h *Hand) Layout(pointer geom.Vec2, dragged *Object, dt float64) {
	cards := h.Cards()
	if len(cards) == 0 {
		h.hovered = ""
		return
	}

	width := h.scene.Camera.Viewport.X
	height := h.scene.Camera.Viewport.Y
	cardW, cardH := CardSize.X, CardSize.Y
	baseY := height - cardH - handBottomPad

	if hit := h.HitTest(pointer); hit != nil && hit != dragged {
		if h.hovered != hit.ID {
			h.hovered = hit.ID
			h.scene.BringToFront(hit)
		}
	} else {
		h.hovered = ""
	}

	n := len(cards)
	step := 0.0
	startX := (width - cardW) / 2
	if n > 1 {
		step = (width - 2*handMargin - cardW) / float64(n-1)
		startX = handMargin
	}

	for i, o := range cards {
		norm := 0.0
		if n > 1 {
			norm = -1 + 2*float64(i)/float64(n-1)
		}
		lift := handArcHeight * (1 - norm*norm)
		target := geom.R(startX+float64(i)*step, baseY-lift, cardW, cardH)

		if o.ID == h.hovered {
			w := cardW * handHoverScale
			hh := cardH * handHoverScale
			target = geom.R(
				target.X-(w-cardW)/2,
				target.Y-handHoverLift-(hh-cardH),
				w, hh,
			)
		}
		o.handRect = target

		if o == dragged {
			continue
		}
		h.glide(o, target.TopLeft(), dt)
	}
}

// glide retargets the card's position tweens when the layout slot moved and
// advances them, the same AnimateTo pattern the world cards use for stacks.
func (h *Hand) glide(o *Object, target geom.Vec2, dt float64) {
	if o.tweenX == nil && o.tweenY == nil && o.handPos == target {
		return
	}
	if o.tweenX == nil || o.tweenX.Target() != target.X {
		o.tweenX = tween.New(o.handPos.X, target.X, handGlideSecs, tween.OutQuad)
	}
	if o.tweenY == nil || o.tweenY.Target() != target.Y {
		o.tweenY = tween.New(o.handPos.Y, target.Y, handGlideSecs, tween.OutQuad)
	}
	x, doneX := o.tweenX.Update(dt)
	y, doneY := o.tweenY.Update(dt)
	o.handPos = geom.V(x, y)
	if doneX {
		o.tweenX = nil
	}
	if doneY {
		o.tweenY = nil
	}
}

// Hovered returns the currently hovered docked card, nil if none.
func (h *Hand) Hovered() *Object {
	if h.hovered == "" {
		return nil
	}
	return h.scene.ObjectByID(h.hovered)
}
