package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/NickHage/HackKU/domain/poker"
)

// consoleInput collects the interactive actor's decisions from the
// terminal, re-prompting until the input parses and fits the table
// limits.
type consoleInput struct{}

func (consoleInput) RequestOpeningAction(stage poker.Stage, balance, cap int) poker.OpeningAction {
	prompt := fmt.Sprintf("Your %s action: bet amount (0-%d) or 'fold'", stage, cap)
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).WithDefaultValue("0").Show()
		raw = strings.TrimSpace(strings.ToLower(raw))
		if raw == "fold" {
			return poker.OpeningAction{Fold: true}
		}
		amount, err := strconv.Atoi(raw)
		if err != nil {
			pterm.Error.Println("Enter a number or 'fold'.")
			continue
		}
		if amount < 0 || amount > cap {
			pterm.Error.Printfln("Bets must be between 0 and %d.", cap)
			continue
		}
		return poker.OpeningAction{Amount: amount}
	}
}

func (consoleInput) RequestClosingAction(stage poker.Stage, balance, maxBet, committed int) poker.ClosingAction {
	prompt := fmt.Sprintf("The bet stands at $%d and you have $%d in", maxBet, committed)
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(prompt).
		WithOptions([]string{"Call", "Raise", "Fold"}).
		Show()

	switch choice {
	case "Raise":
		return poker.ClosingAction{Kind: poker.ClosingRaise, Amount: promptRaise(maxBet)}
	case "Fold":
		return poker.ClosingAction{Kind: poker.ClosingFold}
	default:
		return poker.ClosingAction{Kind: poker.ClosingCall}
	}
}

func promptRaise(maxBet int) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Raise the bet of $%d by", maxBet)).
			WithDefaultValue("10").Show()
		amount, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || amount < 0 {
			pterm.Error.Println("Enter a non-negative number.")
			continue
		}
		return amount
	}
}
