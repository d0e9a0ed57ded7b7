package poker

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/NickHage/HackKU/domain/deck"
	"github.com/NickHage/HackKU/domain/random"
)

// Betting stage states. The protocol is a deliberate two-pass contract:
// the interactive actor opens, every scripted actor responds once, and
// the interactive actor gets at most one closing reaction. A stage never
// loops back to re-offer the scripted actors.
const (
	StateAwaitingOpeningAction   = "awaiting_opening_action"
	StateOpenedWithBet           = "opened_with_bet"
	StateRoundFoldedOut          = "round_folded_out"
	StateScriptedResponses       = "scripted_responses"
	StateAwaitingClosingReaction = "awaiting_closing_reaction"
	StateStageSettled            = "stage_settled"
)

const (
	eventOpen       = "open"
	eventFoldOut    = "fold_out"
	eventRespond    = "respond"
	eventAwaitClose = "await_close"
	eventSettle     = "settle"
)

// Coordinator runs one betting stage over the round's shared state.
type Coordinator struct {
	Ledger   *Ledger
	Folds    *FoldTracker
	Policy   *Policy
	Input    InputProvider
	Narrator NarrationSink
	Rnd      random.Source
	Cap      int
	Logger   *log.Logger

	sm        *fsm.FSM
	maxBet    int
	committed int // the interactive actor's total for this stage
}

func (c *Coordinator) newStageFSM(stage Stage) *fsm.FSM {
	return fsm.NewFSM(
		StateAwaitingOpeningAction,
		fsm.Events{
			{
				Name: eventOpen,
				Src:  []string{StateAwaitingOpeningAction},
				Dst:  StateOpenedWithBet,
			},
			{
				Name: eventFoldOut,
				Src:  []string{StateAwaitingOpeningAction, StateAwaitingClosingReaction},
				Dst:  StateRoundFoldedOut,
			},
			{
				Name: eventRespond,
				Src:  []string{StateAwaitingOpeningAction, StateOpenedWithBet},
				Dst:  StateScriptedResponses,
			},
			{
				Name: eventAwaitClose,
				Src:  []string{StateScriptedResponses},
				Dst:  StateAwaitingClosingReaction,
			},
			{
				Name: eventSettle,
				Src:  []string{StateScriptedResponses, StateAwaitingClosingReaction},
				Dst:  StateStageSettled,
			},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				c.Logger.Debug("betting transition", "stage", stage, "from", e.Src, "to", e.Dst, "max_bet", c.maxBet)
			},
		},
	)
}

func (c *Coordinator) transition(event string) {
	if err := c.sm.Event(event); err != nil {
		c.Logger.Warn("unexpected betting transition", "event", event, "state", c.sm.Current(), "err", err)
	}
}

// RunStage plays one full betting stage. The first interactive actor in
// actors opens and closes; scripted actors respond in enumeration order.
func (c *Coordinator) RunStage(stage Stage, actors []*Actor, table *Table) {
	c.sm = c.newStageFSM(stage)
	c.maxBet = 0
	c.committed = 0

	opener := interactiveActor(actors)
	if opener != nil && opener.Active {
		if folded := c.opening(stage, opener); folded {
			c.transition(eventFoldOut)
			return
		}
		c.transition(eventOpen)
	}

	c.transition(eventRespond)
	c.scriptedResponses(stage, actors, table)

	if opener != nil && opener.Active {
		if c.committed < c.maxBet {
			c.transition(eventAwaitClose)
			if folded := c.closing(stage, opener); folded {
				c.transition(eventFoldOut)
				return
			}
		} else {
			c.Narrator.Notify(fmt.Sprintf("%s checks.", opener.Name))
		}
	}
	c.transition(eventSettle)
}

// opening requests the interactive actor's first action, re-requesting
// out-of-range bets. Reports whether the actor folded.
func (c *Coordinator) opening(stage Stage, a *Actor) bool {
	var act OpeningAction
	for {
		act = c.Input.RequestOpeningAction(stage, c.Ledger.Balance(a.Name), c.Cap)
		if act.Fold || (act.Amount >= 0 && act.Amount <= c.Cap) {
			break
		}
	}
	if act.Fold {
		c.Folds.Fold(a)
		c.Narrator.Notify(fmt.Sprintf("%s folds.", a.Name))
		return true
	}

	if c.Ledger.Bet(a.Name, act.Amount) {
		c.maxBet = act.Amount
		c.committed = act.Amount
		c.Narrator.Notify(fmt.Sprintf("%s bets $%d. Remaining balance: $%d.", a.Name, act.Amount, c.Ledger.Balance(a.Name)))
	} else {
		c.Narrator.Notify(fmt.Sprintf("Insufficient funds. %s checks.", a.Name))
	}
	c.rollSanityGain(a)
	return false
}

// scriptedResponses lets every still-active scripted actor act once, in
// fixed enumeration order. The running max bet updates after each bet,
// so later actors respond to earlier scripted raises.
func (c *Coordinator) scriptedResponses(stage Stage, actors []*Actor, table *Table) {
	for _, a := range actors {
		if a.Strategy != Scripted || !a.Active {
			continue
		}
		cards := append(append([]deck.Card{}, a.Hand...), table.Community...)
		category := Evaluate(cards)
		balance := c.Ledger.Balance(a.Name)

		if c.Policy.Decide(category, c.maxBet, balance, stage, a.Sanity) == DecisionFold {
			c.Folds.Fold(a)
			c.Narrator.Notify(fmt.Sprintf("%s folds.", a.Name))
			continue
		}

		amount := c.Policy.BetAmount(category, c.maxBet, balance, a.Sanity)
		if amount > 0 && c.Ledger.Bet(a.Name, amount) {
			c.Narrator.Notify(fmt.Sprintf("%s bets $%d. Remaining balance: $%d.", a.Name, amount, c.Ledger.Balance(a.Name)))
			if amount > c.maxBet {
				c.maxBet = amount
			}
			c.rollSanityGain(a)
		}
	}
}

// closing offers the interactive actor its single closing reaction:
// call, raise or fold. A failed call or raise silently becomes a check.
// Reports whether the actor folded.
func (c *Coordinator) closing(stage Stage, a *Actor) bool {
	var act ClosingAction
	for {
		act = c.Input.RequestClosingAction(stage, c.Ledger.Balance(a.Name), c.maxBet, c.committed)
		if act.Kind != ClosingRaise || (act.Amount >= 0 && act.Amount <= c.Cap) {
			break
		}
	}
	switch act.Kind {
	case ClosingFold:
		c.Folds.Fold(a)
		c.Narrator.Notify(fmt.Sprintf("%s folds.", a.Name))
		return true
	case ClosingCall:
		if c.Ledger.Bet(a.Name, c.maxBet-c.committed) {
			c.committed = c.maxBet
			c.Narrator.Notify(fmt.Sprintf("%s calls the bet of $%d. Remaining balance: $%d.", a.Name, c.maxBet, c.Ledger.Balance(a.Name)))
		} else {
			c.Narrator.Notify(fmt.Sprintf("Insufficient funds. %s checks.", a.Name))
		}
	case ClosingRaise:
		if c.Ledger.Bet(a.Name, c.maxBet-c.committed+act.Amount) {
			c.maxBet += act.Amount
			c.committed = c.maxBet
			c.Narrator.Notify(fmt.Sprintf("%s raises to $%d. Remaining balance: $%d.", a.Name, c.maxBet, c.Ledger.Balance(a.Name)))
		} else {
			c.Narrator.Notify(fmt.Sprintf("Insufficient funds. %s checks.", a.Name))
		}
	}
	return false
}

// rollSanityGain gives the actor its 20% post-bet chance of slipping.
func (c *Coordinator) rollSanityGain(a *Actor) {
	if c.Rnd.Float64() < 0.2 {
		gain := GainSanity(c.Rnd, a, c.Ledger.Balance(a.Name))
		c.Narrator.Notify(fmt.Sprintf("%s gains %d sanity. Current sanity: %d.", a.Name, gain, a.Sanity))
	}
}

// MaxBet exposes the stage's final running bet, for rendering.
func (c *Coordinator) MaxBet() int {
	return c.maxBet
}

func interactiveActor(actors []*Actor) *Actor {
	for _, a := range actors {
		if a.Strategy == Interactive {
			return a
		}
	}
	return nil
}
