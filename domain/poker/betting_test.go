package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NickHage/HackKU/domain/deck"
	"github.com/NickHage/HackKU/domain/random"
)

func newCoordinator(rnd random.Source, ledger *Ledger, input InputProvider, sink NarrationSink) *Coordinator {
	return &Coordinator{
		Ledger:   ledger,
		Folds:    NewFoldTracker(),
		Policy:   NewPolicy(rnd, 100),
		Input:    input,
		Narrator: sink,
		Rnd:      rnd,
		Cap:      100,
		Logger:   testLogger(),
	}
}

func TestRunStageHumanFoldShortCircuits(t *testing.T) {
	input := &scriptedInput{opening: []OpeningAction{{Fold: true}}}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000, "NPC 1": 1000})
	c := newCoordinator(&random.Script{}, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	npc := NewActor("NPC 1", Scripted, 0)
	c.RunStage(PreFlop, []*Actor{human, npc}, &Table{})

	assert.Equal(t, 0, ledger.Pot())
	assert.Equal(t, 1, input.openingCalls)
	assert.Equal(t, 0, input.closingCalls)
	assert.True(t, c.Folds.HasFolded("Player"))
	assert.True(t, npc.Active)
	assert.True(t, sink.contains("Player folds."))
}

func TestRunStageMaxBetPropagationAndClosingCall(t *testing.T) {
	// Player bets 10, the quads holder raises to 10+40=50 and the player
	// covers the difference with a call.
	rnd := &random.Script{Floats: []float64{0.99, 0.1, 0.99}, Ranges: []int{40}}
	input := &scriptedInput{opening: []OpeningAction{{Amount: 10}}}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000, "NPC 1": 1000})
	c := newCoordinator(rnd, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	npc := NewActor("NPC 1", Scripted, 0)
	npc.Hand = cards(t, [2]uint8{deck.Heart, deck.King}, [2]uint8{deck.Diamond, deck.King})
	table := &Table{Community: cards(t,
		[2]uint8{deck.Club, deck.King}, [2]uint8{deck.Spade, deck.King},
		[2]uint8{deck.Diamond, 2}, [2]uint8{deck.Club, 7}, [2]uint8{deck.Diamond, 9},
	)}

	c.RunStage(River, []*Actor{human, npc}, table)

	assert.Equal(t, 50, c.MaxBet())
	assert.Equal(t, 100, ledger.Pot())
	assert.Equal(t, 950, ledger.Balance("Player"))
	assert.Equal(t, 950, ledger.Balance("NPC 1"))
	assert.Equal(t, 1, input.closingCalls)
	assert.True(t, sink.contains("Player calls the bet of $50."))
}

func TestRunStageMatchedBetForcesACheck(t *testing.T) {
	// The weak responder only matches the running bet, so the player has
	// nothing left to react to.
	input := &scriptedInput{opening: []OpeningAction{{Amount: 10}}}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000, "NPC 1": 1000})
	c := newCoordinator(&random.Script{}, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	npc := NewActor("NPC 1", Scripted, 0)
	npc.Hand = cards(t, [2]uint8{deck.Heart, 2}, [2]uint8{deck.Diamond, 7})
	table := &Table{Community: cards(t,
		[2]uint8{deck.Club, 9}, [2]uint8{deck.Spade, deck.Jack}, [2]uint8{deck.Diamond, 4},
	)}

	c.RunStage(Flop, []*Actor{human, npc}, table)

	assert.Equal(t, 10, c.MaxBet())
	assert.Equal(t, 20, ledger.Pot())
	assert.Equal(t, 0, input.closingCalls)
	assert.True(t, sink.contains("Player checks."))
}

func TestRunStageInsufficientOpeningBecomesCheck(t *testing.T) {
	input := &scriptedInput{opening: []OpeningAction{{Amount: 50}}}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 5})
	c := newCoordinator(&random.Script{}, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	c.RunStage(Turn, []*Actor{human}, &Table{})

	assert.Equal(t, 0, ledger.Pot())
	assert.Equal(t, 5, ledger.Balance("Player"))
	assert.Equal(t, 0, c.MaxBet())
	assert.True(t, sink.contains("Insufficient funds. Player checks."))
}

func TestRunStageReRequestsOutOfRangeOpening(t *testing.T) {
	input := &scriptedInput{opening: []OpeningAction{{Amount: 500}, {Amount: 10}}}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000})
	c := newCoordinator(&random.Script{}, ledger, input, sink)

	c.RunStage(PreFlop, []*Actor{NewActor("Player", Interactive, 0)}, &Table{})

	assert.Equal(t, 2, input.openingCalls)
	assert.Equal(t, 10, ledger.Pot())
}

func TestRunStageClosingRaise(t *testing.T) {
	rnd := &random.Script{Floats: []float64{0.99, 0.1, 0.99}, Ranges: []int{40}}
	input := &scriptedInput{
		opening: []OpeningAction{{Amount: 10}},
		closing: []ClosingAction{{Kind: ClosingRaise, Amount: 20}},
	}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000, "NPC 1": 1000})
	c := newCoordinator(rnd, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	npc := NewActor("NPC 1", Scripted, 0)
	npc.Hand = cards(t, [2]uint8{deck.Heart, deck.King}, [2]uint8{deck.Diamond, deck.King})
	table := &Table{Community: cards(t,
		[2]uint8{deck.Club, deck.King}, [2]uint8{deck.Spade, deck.King},
		[2]uint8{deck.Diamond, 2}, [2]uint8{deck.Club, 7}, [2]uint8{deck.Diamond, 9},
	)}

	c.RunStage(River, []*Actor{human, npc}, table)

	assert.Equal(t, 70, c.MaxBet())
	assert.Equal(t, 120, ledger.Pot())
	assert.Equal(t, 930, ledger.Balance("Player"))
	assert.True(t, sink.contains("Player raises to $70."))
}

func TestRunStageSkipsInactiveInteractiveActor(t *testing.T) {
	input := &scriptedInput{}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000, "NPC 1": 1000})
	c := newCoordinator(&random.Script{}, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	human.Active = false
	npc := NewActor("NPC 1", Scripted, 0)
	npc.Hand = cards(t, [2]uint8{deck.Heart, 2}, [2]uint8{deck.Diamond, 7})

	c.RunStage(Flop, []*Actor{human, npc}, &Table{Community: cards(t,
		[2]uint8{deck.Club, 9}, [2]uint8{deck.Spade, deck.Jack}, [2]uint8{deck.Diamond, 4},
	)})

	assert.Equal(t, 0, input.openingCalls)
	assert.Equal(t, 0, input.closingCalls)
	assert.Equal(t, 0, ledger.Pot())
}

func TestRunStageSanityGainAfterOpeningBet(t *testing.T) {
	// A 0.1 roll is under the 20% post-bet threshold; the gain lands on
	// the opener before any scripted actor moves.
	rnd := &random.Script{Floats: []float64{0.1}, Ranges: []int{2}}
	input := &scriptedInput{opening: []OpeningAction{{Amount: 10}}}
	sink := &recordingSink{}
	ledger := NewLedger(map[string]int{"Player": 1000})
	c := newCoordinator(rnd, ledger, input, sink)

	human := NewActor("Player", Interactive, 0)
	c.RunStage(PreFlop, []*Actor{human}, &Table{})

	assert.Equal(t, 2, human.Sanity)
	assert.True(t, sink.contains("Player gains 2 sanity."))
}
