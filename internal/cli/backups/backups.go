package backups

import (
	"fmt"

	"dayboard/internal/backup"
	"dayboard/internal/cli"
)

type Cmd struct {
	Create  CreateCmd  `cmd:"" help:"Create a backup of the data file."`
	List    ListCmd    `cmd:"" help:"List available backups."`
	Restore RestoreCmd `cmd:"" help:"Restore the data file from a backup."`
}

type CreateCmd struct{}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.ConfigPath)
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.ConfigPath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type RestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore (see 'backup list')."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store before restore: %w", err)
	}

	mgr := backup.NewManager(ctx.ConfigPath)
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	fmt.Println("Backup restored. A safety copy of the previous data file was kept.")
	return nil
}
