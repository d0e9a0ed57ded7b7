package poker

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/NickHage/HackKU/domain/deck"
	"github.com/NickHage/HackKU/domain/random"
)

// Orchestrator sequences rounds. The ledger persists across rounds and
// sanity levels are carried forward; deck, community cards, fold set and
// actors are rebuilt fresh every round.
type Orchestrator struct {
	Ledger   *Ledger
	Input    InputProvider
	Narrator NarrationSink
	Renderer TableRenderer
	Rnd      random.Source
	Logger   *log.Logger
	Cap      int

	interactiveName string
	scriptedNames   []string
	sanity          map[string]int
}

// NewOrchestrator wires a table of one interactive actor and the given
// scripted seats. initialSanity seeds carried sanity levels; missing
// names start sane.
func NewOrchestrator(ledger *Ledger, input InputProvider, narrator NarrationSink, renderer TableRenderer,
	rnd random.Source, logger *log.Logger, cap int, interactiveName string, scriptedNames []string,
	initialSanity map[string]int) *Orchestrator {
	sanity := make(map[string]int, len(initialSanity))
	for name, level := range initialSanity {
		sanity[name] = level
	}
	return &Orchestrator{
		Ledger:          ledger,
		Input:           input,
		Narrator:        narrator,
		Renderer:        renderer,
		Rnd:             rnd,
		Logger:          logger,
		Cap:             cap,
		interactiveName: interactiveName,
		scriptedNames:   scriptedNames,
		sanity:          sanity,
	}
}

// PlayRound runs one complete round: deal, four betting stages with
// anomaly rolls interleaved, and resolution.
func (o *Orchestrator) PlayRound() {
	roundID := uuid.NewString()
	o.Logger.Debug("starting round", "round", roundID)

	d := deck.New(o.Rnd)
	table := &Table{}
	folds := NewFoldTracker()
	actors := o.buildActors()
	defer o.carrySanity(actors)

	coord := &Coordinator{
		Ledger:   o.Ledger,
		Folds:    folds,
		Policy:   NewPolicy(o.Rnd, o.Cap),
		Input:    o.Input,
		Narrator: o.Narrator,
		Rnd:      o.Rnd,
		Cap:      o.Cap,
		Logger:   o.Logger,
	}
	events := &EventEngine{Rnd: o.Rnd, Narrator: o.Narrator, Logger: o.Logger}

	for _, a := range actors {
		a.Hand = d.Deal(2)
	}
	o.Narrator.Notify("Hole cards are dealt.")
	o.renderHands(actors)

	o.runStage(coord, PreFlop, actors, table)
	if o.instantWin(actors, folds) {
		return
	}

	table.DealFlop(d)
	o.renderCommunity("Flop", table)
	o.runStage(coord, Flop, actors, table)
	o.renderHands(actors)
	events.Trigger(d, table, o.Ledger, folds, actors)
	if o.instantWin(actors, folds) {
		return
	}

	table.DealTurn(d)
	o.renderCommunity("Turn", table)
	events.Trigger(d, table, o.Ledger, folds, actors)
	o.runStage(coord, Turn, actors, table)
	o.renderHands(actors)
	events.Trigger(d, table, o.Ledger, folds, actors)
	if o.instantWin(actors, folds) {
		return
	}

	table.DealRiver(d)
	o.renderCommunity("River", table)
	events.Trigger(d, table, o.Ledger, folds, actors)
	o.runStage(coord, River, actors, table)
	o.renderHands(actors)

	o.Narrator.Notify(fmt.Sprintf("Final pot: $%d.", o.Ledger.Pot()))
	if res, ok := ResolveWinner(actors, folds, table, o.Ledger); ok {
		o.Logger.Debug("round resolved", "round", roundID, "winner", res.Winner, "hand", res.HandName)
		o.Narrator.Notify(fmt.Sprintf("Winner: %s with a %s.", res.Winner, res.HandName))
	}

	// Winning or losing a showdown can still cost the interactive actor
	// a piece of their mind.
	if o.Rnd.Float64() < 0.1 {
		if human := interactiveActor(actors); human != nil {
			gain := GainSanity(o.Rnd, human, o.Ledger.Balance(human.Name))
			o.Narrator.Notify(fmt.Sprintf("%s gains %d sanity. Current sanity: %d.", human.Name, gain, human.Sanity))
		}
	}
}

func (o *Orchestrator) runStage(coord *Coordinator, stage Stage, actors []*Actor, table *Table) {
	o.Narrator.Notify(fmt.Sprintf("--- %s betting round ---", stage))
	coord.RunStage(stage, actors, table)
	o.renderStatus()
}

// instantWin settles the round early when only one side of the table is
// left: the interactive actor takes the pot unopposed without any hand
// evaluation, or a sole remaining scripted actor does.
func (o *Orchestrator) instantWin(actors []*Actor, folds *FoldTracker) bool {
	human := interactiveActor(actors)
	var scripted []*Actor
	for _, a := range actors {
		if a.Strategy == Scripted && a.Active {
			scripted = append(scripted, a)
		}
	}
	if human != nil && human.Active && len(scripted) == 0 {
		o.Ledger.AwardPot(human.Name)
		o.Narrator.Notify(fmt.Sprintf("Everyone else folded. %s wins the pot!", human.Name))
		return true
	}
	if (human == nil || !human.Active) && len(scripted) == 1 {
		o.Ledger.AwardPot(scripted[0].Name)
		o.Narrator.Notify(fmt.Sprintf("Only %s remains. They win the pot!", scripted[0].Name))
		return true
	}
	return false
}

func (o *Orchestrator) buildActors() []*Actor {
	actors := []*Actor{NewActor(o.interactiveName, Interactive, o.sanity[o.interactiveName])}
	for _, name := range o.scriptedNames {
		actors = append(actors, NewActor(name, Scripted, o.sanity[name]))
	}
	return actors
}

func (o *Orchestrator) carrySanity(actors []*Actor) {
	for _, a := range actors {
		o.sanity[a.Name] = a.Sanity
	}
}

// Balances reports the persistent ledger state, for the session loop.
func (o *Orchestrator) Balances() map[string]int {
	return o.Ledger.Balances()
}

// SanityLevels reports the carried sanity levels, for the session loop.
func (o *Orchestrator) SanityLevels() map[string]int {
	out := make(map[string]int, len(o.sanity))
	for name, level := range o.sanity {
		out[name] = level
	}
	return out
}

func (o *Orchestrator) renderHands(actors []*Actor) {
	if o.Renderer != nil {
		o.Renderer.RenderHands(actors)
	}
}

func (o *Orchestrator) renderCommunity(label string, table *Table) {
	if o.Renderer != nil {
		o.Renderer.RenderCommunity(label, table.Community)
	}
}

func (o *Orchestrator) renderStatus() {
	if o.Renderer != nil {
		o.Renderer.RenderStatus(o.Ledger.Pot(), o.Ledger.Balances())
	}
}
