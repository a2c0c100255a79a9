package backup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/backup"
	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/snapshot"
	"github.com/habitta-app/habitta/internal/storage"
)

// =============================================================================
// Test Helpers
// =============================================================================

type fixture struct {
	store     *storage.Store
	snapshots *snapshot.Service
	settings  *storage.SettingsRepo
	transport *backup.Mock
	manager   *backup.Manager
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	store := storage.NewStore(db)
	habits := storage.NewHabitRepo(store)
	todos := storage.NewTodoRepo(store)
	taskFolders := storage.NewTaskFolderRepo(store, todos)
	habitFolders := storage.NewHabitFolderRepo(store, habits)
	users := storage.NewUserRepo(store)
	snapshots := snapshot.NewService(habits, todos, taskFolders, habitFolders, users)
	settings := storage.NewSettingsRepo(store)
	transport := backup.NewMock(store)

	return &fixture{
		store:     store,
		snapshots: snapshots,
		settings:  settings,
		transport: transport,
		manager:   backup.NewManager(transport, snapshots, settings),
	}
}

// =============================================================================
// Mock Transport Tests
// =============================================================================

func TestMock_SignInLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	profile, err := f.transport.SignedInUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile, "signed out initially")

	signed, err := f.transport.SignIn(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, signed.Name)

	profile, err = f.transport.SignedInUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, signed.Email, profile.Email)

	require.NoError(t, f.transport.SignOut(ctx))
	profile, err = f.transport.SignedInUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestMock_UploadRequiresSignIn(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.transport.Upload(ctx, []byte("{}"))
	assert.True(t, errors.Is(err, errors.ErrNotSignedIn))

	_, _, err = f.transport.Latest(ctx)
	assert.True(t, errors.Is(err, errors.ErrNotSignedIn))
}

func TestMock_UploadLatestRoundTrip(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.transport.SignIn(ctx)
	require.NoError(t, err)

	info, data, err := f.transport.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, info, "no backup yet reads as nil metadata")
	assert.Nil(t, data)

	blob := []byte(`{"habits": []}`)
	uploaded, err := f.transport.Upload(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, backup.BackupFileName, uploaded.Name)

	info, data, err = f.transport.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, blob, data)
}

// =============================================================================
// Manager Tests
// =============================================================================

func TestManager_BackupAndRestore(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.transport.SignIn(ctx)
	require.NoError(t, err)

	_, err = f.snapshots.Habits.Add(model.Habit{Name: "Run"})
	require.NoError(t, err)

	_, err = f.manager.BackupNow(ctx, false)
	require.NoError(t, err)

	// Wipe and restore.
	require.NoError(t, f.snapshots.Habits.ReplaceAll(nil))
	require.Empty(t, f.snapshots.Habits.List())

	_, err = f.manager.Restore(ctx)
	require.NoError(t, err)

	habits := f.snapshots.Habits.List()
	require.Len(t, habits, 1)
	assert.Equal(t, "Run", habits[0].Name)
}

func TestManager_RestoreWithoutBackup(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.transport.SignIn(ctx)
	require.NoError(t, err)

	_, err = f.manager.Restore(ctx)
	assert.True(t, errors.Is(err, errors.ErrNoBackup))
}

func TestManager_BackupNowSignedOut(t *testing.T) {
	f := setup(t)

	_, err := f.manager.BackupNow(context.Background(), false)
	assert.True(t, errors.Is(err, errors.ErrNotSignedIn))
}

func TestManager_ManualBackupDoesNotStampAuto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.transport.SignIn(ctx)
	require.NoError(t, err)

	_, err = f.manager.BackupNow(ctx, false)
	require.NoError(t, err)
	assert.True(t, f.settings.LastAutoBackup().IsZero())

	_, err = f.manager.BackupNow(ctx, true)
	require.NoError(t, err)
	assert.False(t, f.settings.LastAutoBackup().IsZero())
}

func TestManager_AutoBackupIfDue(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("disabled schedule never runs", func(t *testing.T) {
		ran, err := f.manager.AutoBackupIfDue(ctx, now)
		require.NoError(t, err)
		assert.False(t, ran)
	})

	t.Run("signed out skips silently", func(t *testing.T) {
		require.NoError(t, f.settings.SetBackupSchedule("daily"))
		ran, err := f.manager.AutoBackupIfDue(ctx, now)
		require.NoError(t, err)
		assert.False(t, ran)
	})

	t.Run("runs when due and signed in", func(t *testing.T) {
		_, err := f.transport.SignIn(ctx)
		require.NoError(t, err)

		ran, err := f.manager.AutoBackupIfDue(ctx, now)
		require.NoError(t, err)
		assert.True(t, ran)
		assert.False(t, f.settings.LastAutoBackup().IsZero())
	})

	t.Run("not due again right after", func(t *testing.T) {
		ran, err := f.manager.AutoBackupIfDue(ctx, time.Now())
		require.NoError(t, err)
		assert.False(t, ran)
	})
}

// =============================================================================
// Schedule Tests
// =============================================================================

func TestSchedule_Due(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	t.Run("zero last run is overdue", func(t *testing.T) {
		assert.True(t, backup.ScheduleDaily.Due(time.Time{}, now))
		assert.True(t, backup.ScheduleWeekly.Due(time.Time{}, now))
		assert.False(t, backup.ScheduleDisabled.Due(time.Time{}, now))
	})

	t.Run("daily threshold", func(t *testing.T) {
		assert.False(t, backup.ScheduleDaily.Due(now.Add(-23*time.Hour), now))
		assert.True(t, backup.ScheduleDaily.Due(now.Add(-25*time.Hour), now))
	})

	t.Run("weekly threshold", func(t *testing.T) {
		assert.False(t, backup.ScheduleWeekly.Due(now.AddDate(0, 0, -6), now))
		assert.True(t, backup.ScheduleWeekly.Due(now.AddDate(0, 0, -8), now))
	})
}

func TestParseSchedule(t *testing.T) {
	for _, valid := range []string{"disabled", "daily", "weekly"} {
		s, err := backup.ParseSchedule(valid)
		require.NoError(t, err)
		assert.Equal(t, backup.Schedule(valid), s)
	}

	_, err := backup.ParseSchedule("hourly")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}
