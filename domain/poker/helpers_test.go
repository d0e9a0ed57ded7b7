package poker

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/NickHage/HackKU/domain/deck"
)

func mustCard(t *testing.T, suit, rank uint8) deck.Card {
	t.Helper()
	c, err := deck.NewCard(suit, rank)
	require.NoError(t, err)
	return c
}

func cards(t *testing.T, pairs ...[2]uint8) []deck.Card {
	t.Helper()
	out := make([]deck.Card, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, mustCard(t, p[0], p[1]))
	}
	return out
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// scriptedInput replays queued actions; once a queue is empty it checks
// on open and calls on close.
type scriptedInput struct {
	opening []OpeningAction
	closing []ClosingAction

	openingCalls int
	closingCalls int
}

func (s *scriptedInput) RequestOpeningAction(stage Stage, balance, cap int) OpeningAction {
	s.openingCalls++
	if len(s.opening) == 0 {
		return OpeningAction{Amount: 0}
	}
	act := s.opening[0]
	s.opening = s.opening[1:]
	return act
}

func (s *scriptedInput) RequestClosingAction(stage Stage, balance, maxBet, committed int) ClosingAction {
	s.closingCalls++
	if len(s.closing) == 0 {
		return ClosingAction{Kind: ClosingCall}
	}
	act := s.closing[0]
	s.closing = s.closing[1:]
	return act
}

// recordingSink keeps every narration line for assertions.
type recordingSink struct {
	notes []string
}

func (r *recordingSink) Notify(description string) {
	r.notes = append(r.notes, description)
}

func (r *recordingSink) contains(substr string) bool {
	for _, n := range r.notes {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}
