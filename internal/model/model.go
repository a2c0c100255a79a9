// Package model defines the domain models for Habitta.
package model

// Store keys for the persisted collections and settings.
const (
	KeyHabits         = "habits"
	KeyTodos          = "todos"
	KeyTaskFolders    = "taskFolders"
	KeyHabitFolders   = "habitFolders"
	KeyUser           = "user"
	KeyTheme          = "theme"
	KeyActiveView     = "activeView"
	KeyBackupSchedule = "backupSchedule"
	KeyLastAutoBackup = "lastAutoBackup"
)

// AllKeys lists every store key holding user data, in export order.
var AllKeys = []string{
	KeyHabits, KeyTodos, KeyTaskFolders, KeyHabitFolders, KeyUser,
	KeyTheme, KeyActiveView, KeyBackupSchedule, KeyLastAutoBackup,
}

// Frequency types for habits.
const (
	FrequencyEveryday     = "everyday"
	FrequencySpecificDays = "specific_days"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Views the UI can persist as the active one.
var AllViews = []string{"home", "organize", "stats", "achievements", "settings"}

// IsValidView returns true if v is a known view name.
func IsValidView(v string) bool {
	for _, view := range AllViews {
		if view == v {
			return true
		}
	}
	return false
}
