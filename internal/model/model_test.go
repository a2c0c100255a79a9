package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/model"
)

// =============================================================================
// Habit Normalization Tests
// =============================================================================

func TestHabit_Normalize(t *testing.T) {
	t.Run("unknown frequency type falls back to everyday", func(t *testing.T) {
		h := model.Habit{FrequencyType: "fortnightly", FrequencyDays: []int{1, 2}}
		h.Normalize()

		assert.Equal(t, model.FrequencyEveryday, h.FrequencyType)
		assert.Equal(t, []int{}, h.FrequencyDays)
	})

	t.Run("everyday clears frequency days", func(t *testing.T) {
		h := model.Habit{FrequencyType: model.FrequencyEveryday, FrequencyDays: []int{3}}
		h.Normalize()
		assert.Equal(t, []int{}, h.FrequencyDays)
	})

	t.Run("specific days sorted and deduplicated", func(t *testing.T) {
		h := model.Habit{
			FrequencyType: model.FrequencySpecificDays,
			FrequencyDays: []int{5, 1, 5, 9, -1, 0},
		}
		h.Normalize()
		assert.Equal(t, []int{0, 1, 5}, h.FrequencyDays, "out-of-range weekdays dropped")
	})

	t.Run("nil completions becomes an empty map", func(t *testing.T) {
		h := model.Habit{}
		h.Normalize()
		require.NotNil(t, h.Completions)
		assert.Empty(t, h.Completions)
	})

	t.Run("false completion entries stripped", func(t *testing.T) {
		h := model.Habit{Completions: map[string]bool{
			"2024-01-01": true,
			"2024-01-02": false,
		}}
		h.Normalize()

		assert.True(t, h.CompletedOn("2024-01-01"))
		_, present := h.Completions["2024-01-02"]
		assert.False(t, present, "false is never stored, only absence")
	})
}

func TestNormalizeReminders(t *testing.T) {
	out := model.NormalizeReminders([]string{"21:00", "08:00", "21:00", "", "08:30"})
	assert.Equal(t, []string{"08:00", "08:30", "21:00"}, out)

	assert.Equal(t, []string{}, model.NormalizeReminders(nil))
}

func TestHabit_HasTarget(t *testing.T) {
	h := model.Habit{}
	assert.False(t, h.HasTarget())

	zero := 0
	h.TargetStreak = &zero
	assert.False(t, h.HasTarget(), "non-positive targets do not count")

	target := 21
	h.TargetStreak = &target
	assert.True(t, h.HasTarget())
}

// =============================================================================
// Catalog Tests
// =============================================================================

func TestIsValidView(t *testing.T) {
	for _, view := range model.AllViews {
		assert.True(t, model.IsValidView(view), view)
	}
	assert.False(t, model.IsValidView("dashboard"))
	assert.False(t, model.IsValidView(""))
}

func TestCatalogs(t *testing.T) {
	t.Run("markers", func(t *testing.T) {
		assert.True(t, model.IsValidMarker("check-circle"))
		assert.False(t, model.IsValidMarker("sparkles"))
	})

	t.Run("icons", func(t *testing.T) {
		assert.True(t, model.IsValidIcon("run"))
		assert.False(t, model.IsValidIcon("rocket"))
	})

	t.Run("colors", func(t *testing.T) {
		assert.True(t, model.IsValidColor("emerald-green"))
		assert.False(t, model.IsValidColor("beige"))
	})
}
