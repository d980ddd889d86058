package habits

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayboard/internal/cli"
	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/stats"
	"dayboard/internal/storage"
	"dayboard/internal/validation"
)

type Cmd struct {
	Add    AddCmd    `cmd:"" help:"Start tracking a habit."`
	List   ListCmd   `cmd:"" help:"List habits with today's status."`
	Mark   MarkCmd   `cmd:"" help:"Mark a habit done for a day."`
	Unmark UnmarkCmd `cmd:"" help:"Clear a habit's completion for a day."`
	Delete DeleteCmd `cmd:"" help:"Delete a habit by id."`
	Streak StreakCmd `cmd:"" help:"Show a habit's streaks."`
}

type AddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *AddCmd) Validate() error {
	return validation.ValidateHabitName(c.Name)
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	habits := storage.LoadSlot(ctx.Store, constants.SlotHabits, []models.Habit{})
	habit := models.Habit{
		ID:          uuid.NewString(),
		Name:        c.Name,
		CreatedAt:   time.Now().UnixMilli(),
		Completions: map[string]bool{},
	}
	habits = models.AppendHabit(habits, habit)
	if err := storage.SaveSlot(ctx.Store, constants.SlotHabits, habits); err != nil {
		return err
	}

	fmt.Printf("Now tracking %q\n", habit.Name)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	habits := storage.LoadSlot(ctx.Store, constants.SlotHabits, []models.Habit{})
	if len(habits) == 0 {
		fmt.Println("No habits tracked.")
		return nil
	}

	today := dateutil.Today()
	for _, h := range habits {
		mark := " "
		if h.Completions[today] {
			mark = "x"
		}
		s := stats.Streak(h.Completions, today)
		fmt.Printf("[%s] %s  %s  (streak %d, best %d)\n", mark, h.ID, h.Name, s.Current, s.Max)
	}
	return nil
}

type MarkCmd struct {
	ID   string `arg:"" help:"Habit id (see 'habit list')."`
	Date string `short:"d" help:"Day to mark (YYYY-MM-DD, default today)."`
}

func (c *MarkCmd) Validate() error {
	if c.Date == "" {
		return nil
	}
	_, err := dateutil.ParseDay(c.Date)
	return err
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	return setCompletion(ctx, c.ID, c.Date, true)
}

type UnmarkCmd struct {
	ID   string `arg:"" help:"Habit id (see 'habit list')."`
	Date string `short:"d" help:"Day to clear (YYYY-MM-DD, default today)."`
}

func (c *UnmarkCmd) Validate() error {
	if c.Date == "" {
		return nil
	}
	_, err := dateutil.ParseDay(c.Date)
	return err
}

func (c *UnmarkCmd) Run(ctx *cli.Context) error {
	return setCompletion(ctx, c.ID, c.Date, false)
}

func setCompletion(ctx *cli.Context, id, date string, done bool) error {
	ctx.PerformAutomaticBackup()

	if date == "" {
		date = dateutil.Today()
	}

	habits := storage.LoadSlot(ctx.Store, constants.SlotHabits, []models.Habit{})
	idx := -1
	for i, h := range habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("no habit with id %s", id)
	}

	if habits[idx].Completions[date] != done {
		habits = models.ToggleCompletion(habits, id, date)
	}
	if err := storage.SaveSlot(ctx.Store, constants.SlotHabits, habits); err != nil {
		return err
	}

	if done {
		fmt.Printf("Marked %q done for %s\n", habits[idx].Name, date)
	} else {
		fmt.Printf("Cleared %q for %s\n", habits[idx].Name, date)
	}
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Habit id (see 'habit list')."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	habits := storage.LoadSlot(ctx.Store, constants.SlotHabits, []models.Habit{})
	remaining := models.RemoveHabit(habits, c.ID)
	if len(remaining) == len(habits) {
		return fmt.Errorf("no habit with id %s", c.ID)
	}
	if err := storage.SaveSlot(ctx.Store, constants.SlotHabits, remaining); err != nil {
		return err
	}

	fmt.Println("Habit deleted.")
	return nil
}

type StreakCmd struct {
	ID string `arg:"" help:"Habit id (see 'habit list')."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	habits := storage.LoadSlot(ctx.Store, constants.SlotHabits, []models.Habit{})
	for _, h := range habits {
		if h.ID != c.ID {
			continue
		}
		s := stats.Streak(h.Completions, dateutil.Today())
		fmt.Printf("%s: current streak %d, best %d, %d total completions\n",
			h.Name, s.Current, s.Max, len(h.Completions))
		return nil
	}
	return fmt.Errorf("no habit with id %s", c.ID)
}
