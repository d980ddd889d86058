package cli

import (
	"dayboard/internal/backup"
	"dayboard/internal/logger"
	"dayboard/internal/storage"
)

// Context carries the shared dependencies into every command's Run.
type Context struct {
	Store      storage.Provider
	ConfigPath string
	Debug      bool
}

// PerformAutomaticBackup snapshots the data file before mutating commands.
// Failure is logged and never blocks the command.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
