package poker

import (
	"sort"

	"github.com/NickHage/HackKU/domain/deck"
)

// Hand categories, highest wins. Equal categories tie exactly: there is
// no kicker comparison anywhere in the game.
const (
	HighCard      = 1
	Pair          = 2
	TwoPair       = 3
	ThreeOfAKind  = 4
	Straight      = 5
	Flush         = 6
	FullHouse     = 7
	FourOfAKind   = 8
	StraightFlush = 9
	RoyalFlush    = 10
)

// Evaluate maps a set of cards to its strength category. Checks run
// strictly best-to-worst and short-circuit on the first match. Scripted
// decisions call this pre-flop with only the two hole cards, so any card
// count from 2 to 7 is accepted; categories that need five cards simply
// cannot fire early (with the quirk that two suited hole cards already
// count as a flush, since a flush requires every card to share one suit).
func Evaluate(cards []deck.Card) int {
	ranks := make([]int, len(cards))
	suits := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank())
		suits[i] = int(c.Suit())
	}
	sort.Ints(ranks)

	switch {
	case isRoyalFlush(ranks, suits):
		return RoyalFlush
	case isStraightFlush(ranks, suits):
		return StraightFlush
	case isFourOfAKind(ranks):
		return FourOfAKind
	case isFullHouse(ranks):
		return FullHouse
	case isFlush(suits):
		return Flush
	case isStraight(ranks):
		return Straight
	case isThreeOfAKind(ranks):
		return ThreeOfAKind
	case isTwoPair(ranks):
		return TwoPair
	case isPair(ranks):
		return Pair
	default:
		return HighCard
	}
}

func isRoyalFlush(ranks, suits []int) bool {
	royals := 0
	for _, r := range ranks {
		if r >= 10 {
			royals++
		}
	}
	return isStraightFlush(ranks, suits) && royals == 5
}

func isStraightFlush(ranks, suits []int) bool {
	return isFlush(suits) && isStraight(ranks)
}

func isFourOfAKind(ranks []int) bool {
	return hasCount(ranks, 4)
}

func isFullHouse(ranks []int) bool {
	return isThreeOfAKind(ranks) && isPair(ranks)
}

func isFlush(suits []int) bool {
	for _, s := range suits {
		if s != suits[0] {
			return false
		}
	}
	return true
}

// isStraight collapses to unique rank values. The wheel is recognized
// only when the unique ranks are exactly 2-3-4-5-A; otherwise any window
// of five consecutive unique values qualifies.
func isStraight(ranks []int) bool {
	unique := uniqueSorted(ranks)
	if len(unique) < 5 {
		return false
	}
	if len(unique) == 5 &&
		unique[0] == 2 && unique[1] == 3 && unique[2] == 4 && unique[3] == 5 && unique[4] == deck.Ace {
		return true
	}
	for i := 0; i+4 < len(unique); i++ {
		if unique[i+4]-unique[i] == 4 {
			return true
		}
	}
	return false
}

func isThreeOfAKind(ranks []int) bool {
	return hasCount(ranks, 3)
}

// isTwoPair wants exactly two distinct ranks that appear exactly twice;
// three simultaneous pairs do not qualify.
func isTwoPair(ranks []int) bool {
	pairs := 0
	for _, r := range uniqueSorted(ranks) {
		if countOf(ranks, r) == 2 {
			pairs++
		}
	}
	return pairs == 2
}

func isPair(ranks []int) bool {
	return hasCount(ranks, 2)
}

func hasCount(ranks []int, n int) bool {
	for _, r := range ranks {
		if countOf(ranks, r) == n {
			return true
		}
	}
	return false
}

func countOf(ranks []int, rank int) int {
	n := 0
	for _, r := range ranks {
		if r == rank {
			n++
		}
	}
	return n
}

func uniqueSorted(ranks []int) []int {
	seen := make(map[int]bool, len(ranks))
	out := make([]int, 0, len(ranks))
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	sort.Ints(out)
	return out
}

var handNames = map[int]string{
	RoyalFlush:    "Royal Flush",
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	Pair:          "Pair",
}

// HandName returns the display name for a category.
func HandName(category int) string {
	if name, ok := handNames[category]; ok {
		return name
	}
	return "High Card"
}
