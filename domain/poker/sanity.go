package poker

import "github.com/NickHage/HackKU/domain/random"

// GainSanity rolls a base amount in [1,3], scales it by a bracket keyed
// to the actor's current balance (the poorer the actor, the closer to
// madness), truncates, and adds the result to the actor's sanity.
// Returns the amount gained.
func GainSanity(rnd random.Source, a *Actor, balance int) int {
	base := rnd.Between(1, 3)
	gain := int(float64(base) * sanityMultiplier(balance))
	a.Sanity += gain
	return gain
}

func sanityMultiplier(balance int) float64 {
	switch {
	case balance > 1000:
		return 1.0
	case balance >= 500:
		return 1.2
	case balance >= 200:
		return 1.5
	case balance >= 100:
		return 2.0
	default:
		return 3.0
	}
}
