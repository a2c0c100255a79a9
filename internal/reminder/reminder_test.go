package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/reminder"
)

// =============================================================================
// Test Helpers
// =============================================================================

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.Local)
}

func habitWithReminders(name string, times ...string) model.Habit {
	return model.Habit{
		ID:            name,
		Name:          name,
		FrequencyType: model.FrequencyEveryday,
		Reminders:     times,
	}
}

// =============================================================================
// Plan Tests
// =============================================================================

func TestDesired_PermissionDenied(t *testing.T) {
	habits := []model.Habit{habitWithReminders("Run", "08:00")}
	todos := []model.Todo{{ID: "t1", Text: "Buy milk"}}

	entries := reminder.Desired(habits, todos, false, at(7, 0))
	assert.Empty(t, entries, "nothing is planned without permission")
}

func TestDesired_HabitRemindersFutureOnly(t *testing.T) {
	habits := []model.Habit{habitWithReminders("Run", "06:00", "20:00")}

	entries := reminder.Desired(habits, nil, true, at(12, 30))
	require.Len(t, entries, 1, "the 06:00 slot already passed")

	assert.Equal(t, at(20, 0), entries[0].At)
	assert.Equal(t, "Habit Reminder", entries[0].Title)
	assert.Contains(t, entries[0].Body, "Run")
}

func TestDesired_SkipsMalformedReminderTime(t *testing.T) {
	habits := []model.Habit{habitWithReminders("Run", "25:99", "20:00")}

	entries := reminder.Desired(habits, nil, true, at(12, 0))
	require.Len(t, entries, 1)
	assert.Equal(t, at(20, 0), entries[0].At)
}

func TestDesired_TaskSummaryHours(t *testing.T) {
	todos := []model.Todo{
		{ID: "t1", Text: "One"},
		{ID: "t2", Text: "Two"},
		{ID: "t3", Text: "Done", Completed: true},
	}

	t.Run("starts at the next full hour", func(t *testing.T) {
		entries := reminder.Desired(nil, todos, true, at(14, 20))
		require.Len(t, entries, 8, "hours 15 through 22")
		assert.Equal(t, at(15, 0), entries[0].At)
		assert.Equal(t, at(22, 0), entries[len(entries)-1].At)
	})

	t.Run("clamped to the window start in the early morning", func(t *testing.T) {
		entries := reminder.Desired(nil, todos, true, at(5, 0))
		require.NotEmpty(t, entries)
		assert.Equal(t, at(9, 0), entries[0].At)
	})

	t.Run("empty after the window closes", func(t *testing.T) {
		entries := reminder.Desired(nil, todos, true, at(22, 30))
		assert.Empty(t, entries)
	})

	t.Run("counts only incomplete todos", func(t *testing.T) {
		entries := reminder.Desired(nil, todos, true, at(14, 20))
		require.NotEmpty(t, entries)
		assert.Equal(t, "You have 2 tasks left for today", entries[0].Body)
	})
}

func TestDesired_SingularSummaryBody(t *testing.T) {
	todos := []model.Todo{{ID: "t1", Text: "One"}}

	entries := reminder.Desired(nil, todos, true, at(14, 0))
	require.NotEmpty(t, entries)
	assert.Equal(t, "You have 1 task left for today", entries[0].Body)
}

func TestDesired_NoSummariesWhenAllComplete(t *testing.T) {
	todos := []model.Todo{
		{ID: "t1", Text: "One", Completed: true},
		{ID: "t2", Text: "Two", Completed: true},
	}

	entries := reminder.Desired(nil, todos, true, at(10, 0))
	assert.Empty(t, entries)
}

func TestDesired_SortedByFireTime(t *testing.T) {
	habits := []model.Habit{
		habitWithReminders("Evening", "21:30"),
		habitWithReminders("Afternoon", "16:15"),
	}
	todos := []model.Todo{{ID: "t1", Text: "One"}}

	entries := reminder.Desired(habits, todos, true, at(15, 0))
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].At.Before(entries[i-1].At),
			"entry %d fires before entry %d", i, i-1)
	}
}

// =============================================================================
// Timer Applier Tests
// =============================================================================

func TestTimerApplier_DeliversDuePlan(t *testing.T) {
	fired := make(chan string, 1)
	applier := reminder.NewTimerApplier(func(title, body string) {
		fired <- title
	})
	t.Cleanup(applier.CancelAll)

	err := applier.Apply([]reminder.Entry{
		{At: time.Now().Add(10 * time.Millisecond), Title: "Ping", Body: "now"},
	})
	require.NoError(t, err)

	select {
	case title := <-fired:
		assert.Equal(t, "Ping", title)
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTimerApplier_ApplyReplacesPendingPlan(t *testing.T) {
	fired := make(chan string, 2)
	applier := reminder.NewTimerApplier(func(title, body string) {
		fired <- title
	})
	t.Cleanup(applier.CancelAll)

	err := applier.Apply([]reminder.Entry{
		{At: time.Now().Add(50 * time.Millisecond), Title: "Stale"},
	})
	require.NoError(t, err)

	err = applier.Apply([]reminder.Entry{
		{At: time.Now().Add(10 * time.Millisecond), Title: "Fresh"},
	})
	require.NoError(t, err)

	select {
	case title := <-fired:
		assert.Equal(t, "Fresh", title)
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}

	select {
	case title := <-fired:
		t.Fatalf("stale entry fired: %s", title)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimerApplier_CancelAll(t *testing.T) {
	fired := make(chan string, 1)
	applier := reminder.NewTimerApplier(func(title, body string) {
		fired <- title
	})

	err := applier.Apply([]reminder.Entry{
		{At: time.Now().Add(20 * time.Millisecond), Title: "Ping"},
	})
	require.NoError(t, err)
	applier.CancelAll()

	select {
	case title := <-fired:
		t.Fatalf("cancelled entry fired: %s", title)
	case <-time.After(100 * time.Millisecond):
	}
}
