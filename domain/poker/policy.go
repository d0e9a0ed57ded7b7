package poker

import "github.com/NickHage/HackKU/domain/random"

// Decision is a scripted actor's choice for one betting stage.
type Decision int

const (
	DecisionBet Decision = iota
	DecisionFold
)

// Policy is the decision and sizing engine for scripted actors,
// parameterized by hand strength, the running stage bet, the actor's
// balance and its sanity level.
type Policy struct {
	rnd random.Source
	cap int // global per-stage bet cap
}

// NewPolicy builds a policy rolling against rnd with the given bet cap.
func NewPolicy(rnd random.Source, cap int) *Policy {
	return &Policy{rnd: rnd, cap: cap}
}

// Decide picks fold or bet. Sanity above 5 overrides everything: a coin
// flip folds, otherwise the actor bets regardless of hand quality.
func (p *Policy) Decide(category, maxBet, balance int, stage Stage, sanity int) Decision {
	if sanity > 5 {
		if p.rnd.Float64() < 0.5 {
			return DecisionFold
		}
		return DecisionBet
	}
	if category < TwoPair && maxBet > 0 && p.rnd.Float64() < 0.2 {
		return DecisionFold
	}
	if category > Straight && p.rnd.Float64() < 0.2 {
		return DecisionBet
	}
	// Only reached when the roll above did not already decide.
	if category > FullHouse && p.rnd.Float64() < 0.5 {
		return DecisionBet
	}
	if maxBet > 0 && balance < maxBet {
		return DecisionFold
	}
	return DecisionBet
}

// BetAmount sizes a bet the actor already decided to place. Erratic
// actors either shove up to twice the cap or put in nothing at all.
func (p *Policy) BetAmount(category, maxBet, balance, sanity int) int {
	if sanity > 5 {
		if p.rnd.Float64() < 0.5 {
			return min(balance, 2*p.cap)
		}
		return 0
	}
	if category > FullHouse {
		return min(balance, min(maxBet+p.rnd.Between(10, 50), p.cap))
	}
	if category > Straight {
		return min(balance, min(maxBet+p.rnd.Between(5, 25), p.cap))
	}
	return min(balance, min(maxBet, p.cap))
}
