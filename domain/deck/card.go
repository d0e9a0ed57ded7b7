package deck

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/NickHage/HackKU/domain/random"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A (high, and low only in the wheel straight)
)

// Card represents a playing card with suit and rank. Cards are immutable;
// the mutation anomaly swaps a community card for a freshly built one.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 2-14: deuce through ace
}

// NewCard creates a new Card with validation.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank < 2 || rank > 14 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Random returns a uniformly random card drawn from the 52 rank-suit
// combinations, independent of what is live on the table.
func Random(rnd random.Source) Card {
	return Card{
		suit: uint8(rnd.Intn(4)),
		rank: uint8(rnd.Between(2, Ace)),
	}
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (2-14: deuce through ace).
func (c Card) Rank() uint8 {
	return c.rank
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}
