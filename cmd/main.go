package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/NickHage/HackKU/config"
	"github.com/NickHage/HackKU/domain/poker"
	"github.com/NickHage/HackKU/domain/random"
	"github.com/NickHage/HackKU/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "eldritch-poker: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log.Level)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("E", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ldritch ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("Player").Show()
	pterm.Println()
	pterm.Info.Printfln("Welcome to the table, %s. The cards are colder than they look.", name)

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("session seed", "seed", seed)
	rnd := random.New(seed)

	balances := map[string]int{name: cfg.Game.StartingBalance}
	var seats []string
	for i := 1; i <= cfg.Game.ScriptedSeats; i++ {
		seat := fmt.Sprintf("NPC %d", i)
		seats = append(seats, seat)
		balances[seat] = cfg.Game.StartingBalance
	}

	o := poker.NewOrchestrator(
		poker.NewLedger(balances),
		&consoleInput{},
		&narrator{},
		&tableRenderer{interactiveName: name},
		rnd,
		logger,
		cfg.Game.MaxBet,
		name,
		seats,
		nil,
	)

	played := 0
	for {
		o.PlayRound()
		played++

		if o.Balances()[name] <= 0 {
			pterm.Warning.Println("Your chips are gone. The table releases you, for now.")
			break
		}
		pterm.Println()
		printStandings(o.Balances(), o.SanityLevels())
		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Another round?").WithDefaultValue(true).Show()
		if !again {
			break
		}
	}

	levels := o.SanityLevels()
	pterm.Println()
	pterm.Info.Printfln("You played %d round(s) and leave with $%d and a sanity of %d.",
		played, o.Balances()[name], levels[name])
	logger.Debug("session over", "rounds", played, "sanity", levels[name])
}

func printStandings(balances, levels map[string]int) {
	names := make([]string, 0, len(balances))
	for n := range balances {
		names = append(names, n)
	}
	sort.Strings(names)
	rows := [][]string{{"Seat", "Balance", "Sanity"}}
	for _, n := range names {
		rows = append(rows, []string{n, "$" + strconv.Itoa(balances[n]), strconv.Itoa(levels[n])})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
