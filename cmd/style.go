package main

import (
	"sort"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/NickHage/HackKU/domain/deck"
	"github.com/NickHage/HackKU/domain/poker"
)

// narrator prints game narration in a voice distinct from prompts and
// diagnostics.
type narrator struct{}

func (narrator) Notify(description string) {
	pterm.Println(pterm.NewStyle(pterm.Italic, pterm.FgLightMagenta).Sprint(description))
}

// tableRenderer draws the table as pterm panels, the interactive seat on
// its own row below the scripted ones.
type tableRenderer struct {
	interactiveName string
}

func (r *tableRenderer) RenderHands(actors []*poker.Actor) {
	var panels []pterm.Panel
	var mainPlayer pterm.Panel
	for _, a := range actors {
		if a.Name == r.interactiveName {
			mainPlayer = pterm.Panel{Data: actorInfo(a, 10)}
		} else {
			panels = append(panels, pterm.Panel{Data: actorInfo(a, 4)})
		}
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{mainPlayer},
	}).Render()
}

func (r *tableRenderer) RenderCommunity(label string, cards []deck.Card) {
	board := ""
	for _, c := range cards {
		board += c.String() + " - "
	}
	pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Printfln("%s%s", board, label)
}

func (r *tableRenderer) RenderStatus(pot int, balances map[string]int) {
	names := make([]string, 0, len(balances))
	for name := range balances {
		names = append(names, name)
	}
	sort.Strings(names)

	info := ""
	for _, name := range names {
		info += pterm.Sprintfln("%s: $%d", pterm.LightCyan(name), balances[name])
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|POT $" + strconv.Itoa(pot) + "|")).WithTitleTopCenter().Sprint(info))
}

func actorInfo(a *poker.Actor, hpadding int) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	var active string
	if a.Active {
		active = pterm.LightGreen("Active")
	} else {
		active = pterm.LightRed("Folded")
	}
	hand := ""
	for i, c := range a.Hand {
		if i > 0 {
			hand += " - "
		}
		hand += c.String()
	}
	return pbox.WithTitle(a.Name).WithTitleTopLeft().Sprintf("%s\nSanity: %d\n%s\n", active, a.Sanity, pterm.BgGreen.Sprint(hand))
}
