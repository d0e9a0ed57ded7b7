package poker

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/NickHage/HackKU/domain/deck"
	"github.com/NickHage/HackKU/domain/random"
)

// EventEngine rolls five anomaly effects between stages. Each effect
// fires independently with probability maxSanity/100, so several can
// land in one invocation.
type EventEngine struct {
	Rnd      random.Source
	Narrator NarrationSink
	Logger   *log.Logger
}

// Trigger rolls every effect once against the highest sanity at the
// table.
func (e *EventEngine) Trigger(d *deck.Deck, table *Table, ledger *Ledger, folds *FoldTracker, actors []*Actor) {
	maxSanity := 0
	for _, a := range actors {
		if a.Sanity > maxSanity {
			maxSanity = a.Sanity
		}
	}
	p := float64(maxSanity) / 100

	if e.Rnd.Float64() < p {
		e.reshuffle(d, table)
	}
	if e.Rnd.Float64() < p {
		e.temporalAnomaly(d, table)
	}
	if e.Rnd.Float64() < p {
		e.cardMutation(table)
	}
	if e.Rnd.Float64() < p {
		e.redistributePot(ledger, folds, actors)
	}
	if e.Rnd.Float64() < p {
		e.sanitySurge(actors)
	}
}

// reshuffle discards the community cards and deals five fresh ones. The
// discarded cards stay lost to the round.
func (e *EventEngine) reshuffle(d *deck.Deck, table *Table) {
	e.Narrator.Notify("Reality frays, and the community cards shift, replaced by new ones from the deck.")
	e.Logger.Debug("anomaly fired", "effect", "reshuffle")
	table.Community = d.Deal(5)
}

// temporalAnomaly returns the last community card to the deck (which
// reshuffles) and deals one replacement.
func (e *EventEngine) temporalAnomaly(d *deck.Deck, table *Table) {
	if len(table.Community) == 0 {
		return
	}
	e.Narrator.Notify("The flow of time distorts; the last community card vanishes, then reappears as a different card.")
	e.Logger.Debug("anomaly fired", "effect", "temporal anomaly")
	last := len(table.Community) - 1
	d.Return(table.Community[last])
	table.Community = append(table.Community[:last], d.Deal(1)...)
}

// cardMutation rewrites one community card with a uniformly random rank
// and suit. The result may duplicate another live card; the wrongness is
// the point.
func (e *EventEngine) cardMutation(table *Table) {
	if len(table.Community) == 0 {
		return
	}
	e.Narrator.Notify("A strange, oily aura surrounds one of the community cards, its rank and suit subtly altering.")
	e.Logger.Debug("anomaly fired", "effect", "card mutation")
	idx := e.Rnd.Intn(len(table.Community))
	table.Community[idx] = deck.Random(e.Rnd)
}

// redistributePot splits the pot among active unfolded actors by
// integer division; the remainder is forfeited.
func (e *EventEngine) redistributePot(ledger *Ledger, folds *FoldTracker, actors []*Actor) {
	e.Narrator.Notify("The table seems to ripple, and the pot is redistributed among the active players.")
	e.Logger.Debug("anomaly fired", "effect", "pot redistribution")
	var names []string
	for _, a := range actors {
		if a.Active && !folds.HasFolded(a.Name) {
			names = append(names, a.Name)
		}
	}
	ledger.SplitPot(names)
}

// sanitySurge hits every actor at the table, folded ones included.
func (e *EventEngine) sanitySurge(actors []*Actor) {
	e.Narrator.Notify("A wave of madness washes over the room, and all players gain a random amount of sanity.")
	e.Logger.Debug("anomaly fired", "effect", "sanity surge")
	for _, a := range actors {
		gain := e.Rnd.Between(1, 5)
		a.Sanity += gain
		e.Narrator.Notify(fmt.Sprintf("%s gains %d sanity. Current sanity: %d.", a.Name, gain, a.Sanity))
	}
}
