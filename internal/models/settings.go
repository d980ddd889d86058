package models

// Settings represents application-wide settings
type Settings struct {
	FocusMin             int  `json:"focus_min"`             // focus interval length in minutes
	BreakMin             int  `json:"break_min"`             // break interval length in minutes
	NotificationsEnabled bool `json:"notifications_enabled"` // whether session-completed notifications fire
}

// DefaultSettings returns the settings used when the slot is absent or corrupt.
func DefaultSettings() Settings {
	return Settings{
		FocusMin:             25,
		BreakMin:             5,
		NotificationsEnabled: true,
	}
}
