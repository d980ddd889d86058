package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayboard/internal/cli"
	"dayboard/internal/constants"
	"dayboard/internal/models"
	"dayboard/internal/stats"
	"dayboard/internal/storage"
	"dayboard/internal/validation"
)

type Cmd struct {
	Add    AddCmd    `cmd:"" help:"Add a task."`
	List   ListCmd   `cmd:"" help:"List tasks."`
	Done   DoneCmd   `cmd:"" help:"Toggle a task's completion."`
	Delete DeleteCmd `cmd:"" help:"Delete a task by id."`
}

type AddCmd struct {
	Title string `arg:"" help:"What needs doing."`
	Due   string `short:"d" help:"Optional due date (YYYY-MM-DD)."`
}

func (c *AddCmd) Validate() error {
	return validation.ValidateTask(c.Title, c.Due)
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	tasks := storage.LoadSlot(ctx.Store, constants.SlotTasks, []models.Task{})
	task := models.Task{
		ID:        uuid.NewString(),
		Title:     c.Title,
		DueDate:   c.Due,
		CreatedAt: time.Now().UnixMilli(),
	}
	tasks = models.AppendTask(tasks, task)
	if err := storage.SaveSlot(ctx.Store, constants.SlotTasks, tasks); err != nil {
		return err
	}

	fmt.Printf("Added task %q\n", task.Title)
	return nil
}

type ListCmd struct {
	All  bool   `short:"a" help:"Include completed tasks."`
	Sort string `default:"by-date" enum:"by-date,by-completion" help:"Sort order: by-date or by-completion."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	tasks := storage.LoadSlot(ctx.Store, constants.SlotTasks, []models.Task{})
	sorted := stats.SortTasks(tasks, stats.SortMode(c.Sort))

	shown := 0
	for _, t := range sorted {
		if t.IsCompleted && !c.All {
			continue
		}
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		due := ""
		if t.DueDate != "" {
			due = "  due " + t.DueDate
		}
		fmt.Printf("[%s] %s  %s%s\n", mark, t.ID, t.Title, due)
		shown++
	}
	if shown == 0 {
		fmt.Println("No tasks.")
	}
	return nil
}

type DoneCmd struct {
	ID string `arg:"" help:"Task id (see 'task list')."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	tasks := storage.LoadSlot(ctx.Store, constants.SlotTasks, []models.Task{})
	found := false
	for _, t := range tasks {
		if t.ID == c.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no task with id %s", c.ID)
	}

	tasks = models.ToggleTask(tasks, c.ID)
	if err := storage.SaveSlot(ctx.Store, constants.SlotTasks, tasks); err != nil {
		return err
	}

	fmt.Println("Task updated.")
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Task id (see 'task list')."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	tasks := storage.LoadSlot(ctx.Store, constants.SlotTasks, []models.Task{})
	remaining := models.RemoveTask(tasks, c.ID)
	if len(remaining) == len(tasks) {
		return fmt.Errorf("no task with id %s", c.ID)
	}
	if err := storage.SaveSlot(ctx.Store, constants.SlotTasks, remaining); err != nil {
		return err
	}

	fmt.Println("Task deleted.")
	return nil
}
