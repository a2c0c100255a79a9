package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/snapshot"
)

// =============================================================================
// Legacy Migration Tests
// =============================================================================

func TestMigrateLegacyHabits_UpgradesRecord(t *testing.T) {
	data := []byte(`[{"id": "1", "name": "X", "reminder": "08:00", "goal": 3, "weeklyGoal": 5}]`)

	habits, err := snapshot.MigrateLegacyHabits(data)
	require.NoError(t, err)
	require.Len(t, habits, 1)

	h := habits[0]
	assert.Equal(t, "1", h.ID)
	assert.Equal(t, "X", h.Name)
	assert.Equal(t, []string{"08:00"}, h.Reminders, "deprecated reminder maps into the list")
	assert.Equal(t, model.FrequencyEveryday, h.FrequencyType)
	assert.Equal(t, []int{}, h.FrequencyDays)
	assert.NotNil(t, h.Completions)
}

func TestMigrateLegacyHabits_RemindersListWins(t *testing.T) {
	data := []byte(`[{"id": "1", "name": "X", "reminder": "08:00", "reminders": ["21:00"]}]`)

	habits, err := snapshot.MigrateLegacyHabits(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"21:00"}, habits[0].Reminders,
		"the deprecated field only applies when the list is absent")
}

func TestMigrateLegacyHabits_PreservesModernFields(t *testing.T) {
	data := []byte(`[{
		"id": "1", "name": "X",
		"frequencyType": "specific_days", "frequencyDays": [5, 1, 1],
		"completions": {"2024-01-01": true}
	}]`)

	habits, err := snapshot.MigrateLegacyHabits(data)
	require.NoError(t, err)

	h := habits[0]
	assert.Equal(t, model.FrequencySpecificDays, h.FrequencyType)
	assert.Equal(t, []int{1, 5}, h.FrequencyDays, "weekdays are deduplicated and sorted")
	assert.True(t, h.CompletedOn("2024-01-01"))
}

func TestMigrateLegacyHabits_BatchRejection(t *testing.T) {
	t.Run("missing name rejects the whole batch", func(t *testing.T) {
		data := []byte(`[{"id": "1", "name": "X"}, {"id": "2"}]`)
		_, err := snapshot.MigrateLegacyHabits(data)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidLegacy))
	})

	t.Run("non-array payload rejected", func(t *testing.T) {
		_, err := snapshot.MigrateLegacyHabits([]byte(`{"id": "1"}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidLegacy))
	})
}

func TestService_ImportLegacyHabits(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Habits.Add(model.Habit{Name: "Old"})
	require.NoError(t, err)

	t.Run("replaces the whole collection", func(t *testing.T) {
		count, err := svc.ImportLegacyHabits([]byte(`[{"id": "1", "name": "New"}]`))
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		habits := svc.Habits.List()
		require.Len(t, habits, 1)
		assert.Equal(t, "New", habits[0].Name)
	})

	t.Run("rejected batch leaves state unchanged", func(t *testing.T) {
		_, err := svc.ImportLegacyHabits([]byte(`[{"id": ""}]`))
		require.Error(t, err)
		assert.Len(t, svc.Habits.List(), 1)
	})
}
