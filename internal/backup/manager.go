package backup

import (
	"context"
	"time"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/snapshot"
	"github.com/habitta-app/habitta/internal/storage"
)

// Schedule controls automatic backups.
type Schedule string

const (
	ScheduleDisabled Schedule = "disabled"
	ScheduleDaily    Schedule = "daily"
	ScheduleWeekly   Schedule = "weekly"
)

// ParseSchedule validates a schedule name.
func ParseSchedule(s string) (Schedule, error) {
	switch Schedule(s) {
	case ScheduleDisabled, ScheduleDaily, ScheduleWeekly:
		return Schedule(s), nil
	default:
		return "", errors.NewUserErrorWithField("schedule", s,
			"Unknown backup schedule",
			"Use 'disabled', 'daily' or 'weekly'")
	}
}

// Due reports whether an automatic backup should run now given the last run.
// A zero last run counts as overdue for any enabled schedule.
func (s Schedule) Due(last, now time.Time) bool {
	switch s {
	case ScheduleDaily:
		return now.Sub(last) > 24*time.Hour
	case ScheduleWeekly:
		return now.Sub(last) > 7*24*time.Hour
	default:
		return false
	}
}

// Status summarizes the backup state for display.
type Status struct {
	Profile        *Profile  `json:"profile"`
	Latest         *FileInfo `json:"latest"`
	Schedule       Schedule  `json:"schedule"`
	LastAutoBackup time.Time `json:"lastAutoBackup"`
}

// Manager drives backup and restore through a transport. Every call is a
// single attempt; failures surface to the caller and re-attempting is a
// manual, user-driven action.
type Manager struct {
	transport Transport
	snapshots *snapshot.Service
	settings  *storage.SettingsRepo
}

// NewManager creates a backup manager.
func NewManager(transport Transport, snapshots *snapshot.Service, settings *storage.SettingsRepo) *Manager {
	return &Manager{transport: transport, snapshots: snapshots, settings: settings}
}

// Transport returns the underlying transport.
func (m *Manager) Transport() Transport {
	return m.transport
}

// BackupNow exports the full state and uploads it. When auto is set the
// last-auto-backup stamp is updated on success.
func (m *Manager) BackupNow(ctx context.Context, auto bool) (FileInfo, error) {
	data, err := m.snapshots.Export()
	if err != nil {
		return FileInfo{}, errors.Wrap(errors.ErrBackupFailed, err.Error())
	}

	info, err := m.transport.Upload(ctx, data)
	if err != nil {
		if errors.Is(err, errors.ErrNotSignedIn) {
			return FileInfo{}, err
		}
		return FileInfo{}, errors.Wrap(errors.ErrBackupFailed, err.Error())
	}

	if auto {
		if err := m.settings.SetLastAutoBackup(time.Now()); err != nil {
			return FileInfo{}, err
		}
	}
	logging.Info("backup uploaded", "auto", auto, "modified", info.ModifiedTime)
	return info, nil
}

// Restore fetches the latest backup and replaces local state with it.
// Overwrites every collection the snapshot carries.
func (m *Manager) Restore(ctx context.Context) (FileInfo, error) {
	info, data, err := m.transport.Latest(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrNotSignedIn) {
			return FileInfo{}, err
		}
		return FileInfo{}, errors.Wrap(errors.ErrRestoreFailed, err.Error())
	}
	if info == nil {
		return FileInfo{}, errors.ErrNoBackup
	}

	if err := m.snapshots.Import(data); err != nil {
		return FileInfo{}, errors.Wrap(errors.ErrRestoreFailed, err.Error())
	}
	logging.Info("backup restored", "modified", info.ModifiedTime)
	return *info, nil
}

// Status reports the signed-in profile, the latest stored backup and the
// schedule bookkeeping.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	status := Status{
		Schedule:       Schedule(m.settings.BackupSchedule()),
		LastAutoBackup: m.settings.LastAutoBackup(),
	}

	profile, err := m.transport.SignedInUser(ctx)
	if err != nil {
		return status, err
	}
	status.Profile = profile
	if profile == nil {
		return status, nil
	}

	info, _, err := m.transport.Latest(ctx)
	if err != nil {
		return status, err
	}
	status.Latest = info
	return status, nil
}

// AutoBackupIfDue runs a silent backup when the schedule says one is due and
// a session exists. Returns true when a backup ran.
func (m *Manager) AutoBackupIfDue(ctx context.Context, now time.Time) (bool, error) {
	schedule := Schedule(m.settings.BackupSchedule())
	if !schedule.Due(m.settings.LastAutoBackup(), now) {
		return false, nil
	}

	profile, err := m.transport.SignedInUser(ctx)
	if err != nil || profile == nil {
		return false, err
	}

	if _, err := m.BackupNow(ctx, true); err != nil {
		return false, err
	}
	return true, nil
}
