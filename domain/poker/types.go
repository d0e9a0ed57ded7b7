package poker

import (
	"github.com/NickHage/HackKU/domain/deck"
)

// Strategy tags how an actor decides: through the input provider or
// through the scripted policy. The coordinator dispatches identically
// regardless of tag.
type Strategy int

const (
	Interactive Strategy = iota
	Scripted
)

// Actor is one seat at the table.
type Actor struct {
	Name     string
	Strategy Strategy
	Hand     []deck.Card
	Active   bool // false once folded or eliminated
	Sanity   int  // non-decreasing within a round, carried across rounds
}

// NewActor returns an active actor with no cards and the given carried
// sanity.
func NewActor(name string, strategy Strategy, sanity int) *Actor {
	return &Actor{
		Name:     name,
		Strategy: strategy,
		Active:   true,
		Sanity:   sanity,
	}
}

// Stage labels one betting stage of a round.
type Stage string

const (
	PreFlop Stage = "pre-flop"
	Flop    Stage = "flop"
	Turn    Stage = "turn"
	River   Stage = "river"
)

// Table holds the community cards, owned exclusively by the round.
type Table struct {
	Community []deck.Card
}

// DealFlop draws the three flop cards from the deck.
func (t *Table) DealFlop(d *deck.Deck) {
	t.Community = append(t.Community, d.Deal(3)...)
}

// DealTurn draws the turn card.
func (t *Table) DealTurn(d *deck.Deck) {
	t.Community = append(t.Community, d.Deal(1)...)
}

// DealRiver draws the river card.
func (t *Table) DealRiver(d *deck.Deck) {
	t.Community = append(t.Community, d.Deal(1)...)
}

// OpeningAction is the interactive actor's first action of a stage:
// either a fold or a bet amount in [0, cap].
type OpeningAction struct {
	Fold   bool
	Amount int
}

// ClosingKind enumerates the interactive actor's closing reactions.
type ClosingKind int

const (
	ClosingCall ClosingKind = iota
	ClosingRaise
	ClosingFold
)

// ClosingAction is the interactive actor's reaction to a raised stage
// bet. Amount is the raise amount and is only read for ClosingRaise.
type ClosingAction struct {
	Kind   ClosingKind
	Amount int
}

// InputProvider supplies the interactive actor's decisions. It blocks
// until a syntactically valid action is available; unparsable input is
// re-prompted locally and never surfaces here.
type InputProvider interface {
	RequestOpeningAction(stage Stage, balance, cap int) OpeningAction
	RequestClosingAction(stage Stage, balance, maxBet, committed int) ClosingAction
}

// NarrationSink receives fire-and-forget descriptions of dealing,
// betting and anomalies. It has no influence on control flow.
type NarrationSink interface {
	Notify(description string)
}

// TableRenderer displays table state between steps of a round. It is a
// pure observer implemented by the console layer.
type TableRenderer interface {
	RenderHands(actors []*Actor)
	RenderCommunity(label string, cards []deck.Card)
	RenderStatus(pot int, balances map[string]int)
}
