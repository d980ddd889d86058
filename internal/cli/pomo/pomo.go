package pomo

import (
	"fmt"
	"sort"

	"dayboard/internal/cli"
	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/storage"
)

type Cmd struct {
	Status  StatusCmd  `cmd:"" help:"Show today's focus sessions and timer settings."`
	History HistoryCmd `cmd:"" help:"Show completed focus sessions per day."`
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	history := storage.LoadSlot(ctx.Store, constants.SlotPomodoro, []models.SessionRecord{})
	settings := storage.LoadSlot(ctx.Store, constants.SlotSettings, models.DefaultSettings())

	fmt.Printf("Sessions today: %d\n", models.SessionsOn(history, dateutil.Today()))
	fmt.Printf("Focus %d min / break %d min\n", settings.FocusMin, settings.BreakMin)
	return nil
}

type HistoryCmd struct {
	Limit int `short:"n" default:"14" help:"Number of days to show."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	history := storage.LoadSlot(ctx.Store, constants.SlotPomodoro, []models.SessionRecord{})
	if len(history) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	sorted := make([]models.SessionRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	for i, rec := range sorted {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		fmt.Printf("%s  %d\n", rec.Date, rec.Count)
	}
	return nil
}
