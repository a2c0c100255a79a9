package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/validate"
)

// =============================================================================
// Name and Text Tests
// =============================================================================

func TestHabitName(t *testing.T) {
	assert.NoError(t, validate.HabitName("Morning run"))
	assert.Error(t, validate.HabitName(""))
	assert.Error(t, validate.HabitName(strings.Repeat("x", validate.MaxNameLength+1)))
	assert.NoError(t, validate.HabitName(strings.Repeat("x", validate.MaxNameLength)))
}

func TestTodoText(t *testing.T) {
	assert.NoError(t, validate.TodoText("Buy milk"))
	assert.Error(t, validate.TodoText(""))
	assert.Error(t, validate.TodoText(strings.Repeat("x", validate.MaxTodoTextLength+1)))
}

func TestDescription(t *testing.T) {
	assert.NoError(t, validate.Description(""))
	assert.Error(t, validate.Description(strings.Repeat("x", validate.MaxDescriptionLength+1)))
}

// =============================================================================
// Reminder Time Tests
// =============================================================================

func TestReminderTime(t *testing.T) {
	for _, valid := range []string{"00:00", "08:30", "19:05", "23:59"} {
		assert.NoError(t, validate.ReminderTime(valid), valid)
	}
	for _, invalid := range []string{"", "24:00", "8:30", "12:60", "noon", "08:3"} {
		assert.Error(t, validate.ReminderTime(invalid), invalid)
	}
}

func TestReminders(t *testing.T) {
	assert.NoError(t, validate.Reminders(nil))
	assert.NoError(t, validate.Reminders([]string{"08:00", "21:30"}))

	err := validate.Reminders([]string{"08:00", "8pm"})
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}

// =============================================================================
// Frequency and Target Tests
// =============================================================================

func TestFrequency(t *testing.T) {
	assert.NoError(t, validate.Frequency(model.FrequencyEveryday, nil))
	assert.NoError(t, validate.Frequency(model.FrequencySpecificDays, []int{0, 6}))
	assert.NoError(t, validate.Frequency(model.FrequencySpecificDays, nil),
		"an empty weekday set is allowed")

	assert.Error(t, validate.Frequency("fortnightly", nil))
	assert.Error(t, validate.Frequency(model.FrequencySpecificDays, []int{7}))
	assert.Error(t, validate.Frequency(model.FrequencySpecificDays, []int{-1}))
}

func TestTargetStreak(t *testing.T) {
	assert.NoError(t, validate.TargetStreak(nil))

	target := 21
	assert.NoError(t, validate.TargetStreak(&target))

	zero := 0
	assert.Error(t, validate.TargetStreak(&zero))
	negative := -3
	assert.Error(t, validate.TargetStreak(&negative))
}

// =============================================================================
// Catalog Tag Tests
// =============================================================================

func TestCatalogTags(t *testing.T) {
	t.Run("empty tags pass", func(t *testing.T) {
		assert.NoError(t, validate.ColorTag(""))
		assert.NoError(t, validate.IconTag(""))
		assert.NoError(t, validate.MarkerTag(""))
	})

	t.Run("known tags pass", func(t *testing.T) {
		assert.NoError(t, validate.ColorTag("emerald-green"))
		assert.NoError(t, validate.IconTag("run"))
		assert.NoError(t, validate.MarkerTag("check-circle"))
	})

	t.Run("unknown tags fail with a suggestion", func(t *testing.T) {
		err := validate.ColorTag("beige")
		require.Error(t, err)

		userErr, ok := errors.AsUserError(err)
		require.True(t, ok)
		assert.NotEmpty(t, userErr.Suggestion)
	})
}

// =============================================================================
// Composite Habit Tests
// =============================================================================

func TestHabit(t *testing.T) {
	valid := func() *model.Habit {
		return &model.Habit{
			Name:          "Run",
			FrequencyType: model.FrequencyEveryday,
			Reminders:     []string{"07:00"},
			Icon:          "run",
			Color:         "sky-blue",
			Marker:        "check-circle",
		}
	}

	assert.NoError(t, validate.Habit(valid()))

	t.Run("empty name rejected", func(t *testing.T) {
		h := valid()
		h.Name = ""
		assert.Error(t, validate.Habit(h))
	})

	t.Run("bad reminder rejected", func(t *testing.T) {
		h := valid()
		h.Reminders = []string{"7am"}
		assert.Error(t, validate.Habit(h))
	})

	t.Run("bad frequency rejected", func(t *testing.T) {
		h := valid()
		h.FrequencyType = "sometimes"
		assert.Error(t, validate.Habit(h))
	})

	t.Run("unknown icon rejected", func(t *testing.T) {
		h := valid()
		h.Icon = "rocket"
		assert.Error(t, validate.Habit(h))
	})
}
