package table

import "math/rand"

// DrawCard pops the top label off a deck object. The second result is false
// when the deck is exhausted; the scene removes the deck entity then.
func (o *Object) DrawCard() (string, bool) {
	if o.Kind != KindDeck || len(o.cards) == 0 {
		return "", false
	}
	label := o.cards[len(o.cards)-1]
	o.cards = o.cards[:len(o.cards)-1]
	return label, true
}

// ShuffleIn inserts a label back at a uniformly random index, so it can land
// at either end or anywhere between.
func (o *Object) ShuffleIn(rng *rand.Rand, label string) {
	if o.Kind != KindDeck {
		return
	}
	i := rng.Intn(len(o.cards) + 1)
	o.cards = append(o.cards, "")
	copy(o.cards[i+1:], o.cards[i:])
	o.cards[i] = label
}

// CardsRemaining reports the deck's current size; the deck back's visible
// thickness is derived from it every frame.
func (o *Object) CardsRemaining() int {
	return len(o.cards)
}

// IsEmpty reports deck exhaustion.
func (o *Object) IsEmpty() bool {
	return len(o.cards) == 0
}
