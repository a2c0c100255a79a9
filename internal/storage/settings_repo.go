package storage

import (
	"time"

	"github.com/habitta-app/habitta/internal/model"
)

// SettingsRepo holds the small persisted preferences: theme, active view and
// the backup schedule bookkeeping.
type SettingsRepo struct {
	store *Store
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(store *Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Theme returns the persisted theme, defaulting to light.
func (r *SettingsRepo) Theme() string {
	theme := model.ThemeLight
	r.store.Get(model.KeyTheme, &theme)
	return theme
}

// SetTheme persists the theme preference.
func (r *SettingsRepo) SetTheme(theme string) error {
	return r.store.Set(model.KeyTheme, theme)
}

// ActiveView returns the persisted active view, defaulting to home.
func (r *SettingsRepo) ActiveView() string {
	view := "home"
	r.store.Get(model.KeyActiveView, &view)
	return view
}

// SetActiveView persists the active view.
func (r *SettingsRepo) SetActiveView(view string) error {
	return r.store.Set(model.KeyActiveView, view)
}

// BackupSchedule returns the persisted backup schedule, defaulting to disabled.
func (r *SettingsRepo) BackupSchedule() string {
	schedule := "disabled"
	r.store.Get(model.KeyBackupSchedule, &schedule)
	return schedule
}

// SetBackupSchedule persists the backup schedule.
func (r *SettingsRepo) SetBackupSchedule(schedule string) error {
	return r.store.Set(model.KeyBackupSchedule, schedule)
}

// LastAutoBackup returns the time of the last automatic backup, zero when
// none has run yet.
func (r *SettingsRepo) LastAutoBackup() time.Time {
	var last time.Time
	r.store.Get(model.KeyLastAutoBackup, &last)
	return last
}

// SetLastAutoBackup stamps the time of the last automatic backup.
func (r *SettingsRepo) SetLastAutoBackup(t time.Time) error {
	return r.store.Set(model.KeyLastAutoBackup, t)
}
