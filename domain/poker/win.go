package poker

import "github.com/NickHage/HackKU/domain/deck"

// Result names the round's winner and the hand it won with.
type Result struct {
	Winner   string
	Category int
	HandName string
}

// ResolveWinner evaluates hand plus community for every active unfolded
// actor and awards the pot to the strictly greatest category. Ties go to
// whichever actor was evaluated first in enumeration order; there is no
// kicker comparison. Reports false when nobody is left to win.
func ResolveWinner(actors []*Actor, folds *FoldTracker, table *Table, ledger *Ledger) (Result, bool) {
	best := 0
	var winner *Actor
	for _, a := range actors {
		if !a.Active || folds.HasFolded(a.Name) {
			continue
		}
		cards := append(append([]deck.Card{}, a.Hand...), table.Community...)
		category := Evaluate(cards)
		if winner == nil || category > best {
			best = category
			winner = a
		}
	}
	if winner == nil {
		return Result{}, false
	}
	ledger.AwardPot(winner.Name)
	return Result{Winner: winner.Name, Category: best, HandName: HandName(best)}, true
}
