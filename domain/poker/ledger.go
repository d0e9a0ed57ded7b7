package poker

// Ledger tracks every actor's chip balance and the shared pot. The sum
// of all balances plus the pot is constant across any sequence of Bet
// and AwardPot calls; only SplitPot may forfeit an integer-division
// remainder.
type Ledger struct {
	balances map[string]int
	pot      int
}

// NewLedger copies the initial balances into a fresh ledger with an
// empty pot.
func NewLedger(initial map[string]int) *Ledger {
	balances := make(map[string]int, len(initial))
	for name, amount := range initial {
		balances[name] = amount
	}
	return &Ledger{balances: balances}
}

// Bet moves amount from the actor's balance into the pot. An
// insufficient balance is not an error: the ledger reports false, leaves
// state untouched, and the caller treats the attempt as a check.
func (l *Ledger) Bet(name string, amount int) bool {
	if l.balances[name] < amount {
		return false
	}
	l.balances[name] -= amount
	l.pot += amount
	return true
}

// AwardPot moves the entire pot into the actor's balance. Called once
// per round resolution.
func (l *Ledger) AwardPot(name string) {
	l.balances[name] += l.pot
	l.pot = 0
}

// SplitPot divides the pot among the named actors by integer division
// and zeroes it. The remainder is forfeited, not banked. Returns the
// share each actor received.
func (l *Ledger) SplitPot(names []string) int {
	if len(names) == 0 {
		return 0
	}
	share := l.pot / len(names)
	l.pot = 0
	for _, name := range names {
		l.balances[name] += share
	}
	return share
}

// Balance returns the actor's current balance.
func (l *Ledger) Balance(name string) int {
	return l.balances[name]
}

// Balances returns a copy of all balances.
func (l *Ledger) Balances() map[string]int {
	out := make(map[string]int, len(l.balances))
	for name, amount := range l.balances {
		out[name] = amount
	}
	return out
}

// Pot returns the current pot value.
func (l *Ledger) Pot() int {
	return l.pot
}
