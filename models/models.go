// Package models holds the plain card game domain types. The table only
// needs label strings, so these stay free of any rendering or scene state;
// the deal command and the deck seeding build on them.
package models

import "math/rand"

// Card is a card template, independent of any on-table sprite.
type Card struct {
	Identifier  string
	Name        string
	Description string
	Cost        int
	Attack      int
	Defense     int
}

// Deck is an ordered pile of cards drawn from the front.
type Deck struct {
	Cards []Card
}

func (d *Deck) Draw() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c, true
}

func (d *Deck) Add(card Card) {
	d.Cards = append(d.Cards, card)
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Hand is the set of cards held by a player.
type Hand struct {
	Cards []Card
}

func (h *Hand) Add(card Card) {
	h.Cards = append(h.Cards, card)
}

func (h *Hand) Remove(card Card) bool {
	for i, c := range h.Cards {
		if c == card {
			h.Cards = append(h.Cards[:i], h.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Player ties a deck and hand together.
type Player struct {
	Name   string
	Deck   Deck
	Hand   Hand
	Health int
}

// DrawCard moves the next deck card into the player's hand.
func (p *Player) DrawCard() (Card, bool) {
	card, ok := p.Deck.Draw()
	if ok {
		p.Hand.Add(card)
	}
	return card, ok
}

var (
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	Suits = []string{"♠", "♥", "♦", "♣"}
)

// StandardLabels returns the 52 rank+suit labels plus two Jokers, in fixed
// order. Callers shuffle as needed.
func StandardLabels() []string {
	labels := make([]string, 0, len(Ranks)*len(Suits)+2)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			labels = append(labels, rank+suit)
		}
	}
	labels = append(labels, "Joker", "Joker")
	return labels
}

// SplitLabel divides a label into rank and suit; labels without a trailing
// suit rune ("Joker") come back with an empty suit.
func SplitLabel(label string) (string, string) {
	if label == "" {
		return "", ""
	}
	runes := []rune(label)
	suit := string(runes[len(runes)-1])
	switch suit {
	case "♠", "♥", "♦", "♣":
		rank := string(runes[:len(runes)-1])
		if rank == "" {
			rank = suit
		}
		return rank, suit
	}
	return label, ""
}

// StandardDeck builds a Deck of card templates matching StandardLabels.
func StandardDeck() Deck {
	labels := StandardLabels()
	cards := make([]Card, len(labels))
	for i, label := range labels {
		cards[i] = Card{Identifier: label, Name: label}
	}
	return Deck{Cards: cards}
}
