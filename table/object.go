package table

import (
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ccgkit/go-card-table/geom"
	"github.com/ccgkit/go-card-table/tween"
)

// Kind discriminates the drawable variants; draw dispatch switches on it
// instead of inspecting concrete types.
type Kind int

const (
	KindCard Kind = iota
	KindDeck
)

// CardSize is the base sprite size in world pixels; the deck back shares it.
var CardSize = geom.V(90, 132)

const (
	shadowLifetime    = 250 * time.Millisecond
	shadowMinDistance = 8.0
	dragLiftScale     = 1.15
)

type shadowSample struct {
	Pos   geom.Vec2
	Scale float64
	At    time.Time
}

// GroupHandle is a non-owning index into the scene's group table. Zero means
// the card belongs to no group.
type GroupHandle int

// Object is a drawable, draggable table entity. The card and deck variants
// share position, scale and the shadow trail; the kind-specific fields stay
// zero for the other variant.
type Object struct {
	ID    string
	Kind  Kind
	Pos   geom.Vec2 // world top-left, float while moving, snapped on commit
	Scale float64
	Base  geom.Vec2 // base sprite size in pixels
	Label string    // card rank+suit or literal text

	// Card state. A card is in at most one of: unattached in the world,
	// member of one group, or docked in the hand.
	group    GroupHandle
	inHand   bool
	handRect geom.Rect // target screen rect while docked
	handPos  geom.Vec2 // eased on-screen draw position
	tweenX   *tween.Tween
	tweenY   *tween.Tween

	// Deck state: remaining labels, drawn from the end.
	cards []string

	trail      []shadowSample
	lastSample *geom.Vec2
}

func NewCard(label string, pos geom.Vec2) *Object {
	return &Object{
		ID:    ulid.Make().String(),
		Kind:  KindCard,
		Pos:   pos,
		Scale: 1.0,
		Base:  CardSize,
		Label: label,
	}
}

func NewDeck(pos geom.Vec2, labels []string) *Object {
	return &Object{
		ID:    ulid.Make().String(),
		Kind:  KindDeck,
		Pos:   pos,
		Scale: 1.0,
		Base:  CardSize,
		cards: append([]string(nil), labels...),
	}
}

// Rect is the current world-space bounding box: base size times scale,
// rounded to whole pixels, never smaller than 1px per axis.
func (o *Object) Rect() geom.Rect {
	w := math.Max(1, math.Round(o.Base.X*o.Scale))
	h := math.Max(1, math.Round(o.Base.Y*o.Scale))
	return geom.R(o.Pos.X, o.Pos.Y, w, h)
}

// SetScale changes the scale keeping the top-left anchored.
func (o *Object) SetScale(scale float64) {
	o.Scale = math.Max(scale, 0.01)
}

// GridSpan is the footprint in grid cells reserved for snapping and slot
// search. Cards and decks occupy 2x3 cells.
func (o *Object) GridSpan() (int, int) {
	switch o.Kind {
	case KindCard, KindDeck:
		return 2, 3
	}
	return 1, 1
}

// Group returns the handle of the amarre this card belongs to, zero if none.
func (o *Object) Group() GroupHandle { return o.group }

// InHand reports whether the card is docked in the hand zone.
func (o *Object) InHand() bool { return o.inHand }

// CaptureShadowSample records the current position for the motion trail,
// throttled so samples are at least shadowMinDistance apart.
func (o *Object) CaptureShadowSample(now time.Time) {
	if o.lastSample != nil && o.Pos.Sub(*o.lastSample).Len2() < shadowMinDistance*shadowMinDistance {
		return
	}
	o.trail = append(o.trail, shadowSample{Pos: o.Pos, Scale: o.Scale, At: now})
	last := o.Pos
	o.lastSample = &last
	o.trimTrail(now)
}

func (o *Object) trimTrail(now time.Time) {
	i := 0
	for ; i < len(o.trail); i++ {
		age := now.Sub(o.trail[i].At)
		// Negative ages mean clock skew; treat the sample as expired.
		if age >= 0 && age <= shadowLifetime {
			break
		}
	}
	o.trail = o.trail[i:]
}

// Trail returns the still-live shadow samples, pruning expired ones. When the
// trail empties, the distance throttle resets so the next drag starts fresh.
func (o *Object) Trail(now time.Time) []shadowSample {
	o.trimTrail(now)
	if len(o.trail) == 0 {
		o.lastSample = nil
	}
	return o.trail
}

// shadowFade is the trail alpha for a sample of the given age, 1 fading to 0
// over the shadow lifetime. Out-of-range ages yield 0.
func shadowFade(age time.Duration) float64 {
	if age < 0 || age > shadowLifetime {
		return 0
	}
	return 1 - age.Seconds()/shadowLifetime.Seconds()
}
