// Package deck owns the 52-card population for a single round. Cards
// dealt out of the deck belong to whichever collection receives them (an
// actor's hand or the community cards); they never come back except
// through an explicit Return.
package deck

import (
	"fmt"

	"github.com/NickHage/HackKU/domain/random"
)

// Deck is an ordered, shuffled sequence of the 52 distinct rank-suit
// combinations.
type Deck struct {
	cards []Card
	rnd   random.Source
}

// New builds a full deck and shuffles it with the injected source.
func New(rnd random.Source) *Deck {
	cards := make([]Card, 0, 52)
	for s := Club; s <= Spade; s++ {
		for r := 2; r <= Ace; r++ {
			cards = append(cards, Card{suit: uint8(s), rank: uint8(r)})
		}
	}
	d := &Deck{cards: cards, rnd: rnd}
	d.shuffle()
	return d
}

func (d *Deck) shuffle() {
	d.rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns n cards from the top of the shuffled sequence.
// Asking for more cards than remain is a programming error: a full round
// draws at most 15 of the 52 cards.
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards) {
		panic(fmt.Sprintf("deck exhausted: asked for %d cards with %d remaining", n, len(d.cards)))
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out
}

// Return transfers ownership of card back to the deck and reshuffles.
// The temporal anomaly uses this before redrawing a replacement.
func (d *Deck) Return(c Card) {
	d.cards = append(d.cards, c)
	d.shuffle()
}

// Remaining reports how many cards are still in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
