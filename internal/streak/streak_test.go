package streak_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/streak"
)

// =============================================================================
// Test Helpers
// =============================================================================

func day(s string) time.Time {
	t, err := time.ParseInLocation(streak.DayFormat, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func newHabit(created string, freqType string, days []int, completions ...string) model.Habit {
	h := model.Habit{
		ID:            "h1",
		Name:          "Test habit",
		FrequencyType: freqType,
		FrequencyDays: days,
		CreatedAt:     day(created),
		Completions:   map[string]bool{},
	}
	for _, c := range completions {
		h.Completions[c] = true
	}
	return h
}

// =============================================================================
// Scheduling Tests
// =============================================================================

func TestIsScheduled_Everyday(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil)

	for _, d := range []string{"2024-01-01", "2024-02-29", "2025-12-31", "2024-06-15"} {
		assert.True(t, streak.IsScheduled(h, day(d)), "everyday habit must be due on %s", d)
	}
}

func TestIsScheduled_SpecificDays(t *testing.T) {
	// Mon/Wed/Fri
	h := newHabit("2024-01-01", model.FrequencySpecificDays, []int{1, 3, 5})

	// 2024-01-01 is a Monday
	assert.True(t, streak.IsScheduled(h, day("2024-01-01")), "Monday")
	assert.False(t, streak.IsScheduled(h, day("2024-01-02")), "Tuesday")
	assert.True(t, streak.IsScheduled(h, day("2024-01-03")), "Wednesday")
	assert.False(t, streak.IsScheduled(h, day("2024-01-04")), "Thursday")
	assert.True(t, streak.IsScheduled(h, day("2024-01-05")), "Friday")
	assert.False(t, streak.IsScheduled(h, day("2024-01-06")), "Saturday")
	assert.False(t, streak.IsScheduled(h, day("2024-01-07")), "Sunday")

	// Same weekdays in a different month and year
	assert.True(t, streak.IsScheduled(h, day("2025-06-02")), "a Monday in 2025")
	assert.False(t, streak.IsScheduled(h, day("2025-06-03")), "a Tuesday in 2025")
}

func TestIsScheduled_SpecificDaysEmptySet(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencySpecificDays, []int{})

	assert.False(t, streak.IsScheduled(h, day("2024-01-01")))
	assert.False(t, streak.IsScheduled(h, day("2024-01-06")))
}

// =============================================================================
// Streak Calculation Tests
// =============================================================================

func TestCalculate_NoCompletions(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil)

	result := streak.Calculate(h, day("2024-03-01"))
	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 0, result.Best)
}

func TestCalculate_WeeklyHabitWithGap(t *testing.T) {
	// Created Monday 2024-01-01, due Mondays only. Completed on the 1st,
	// 8th and 22nd with the 15th missed.
	h := newHabit("2024-01-01", model.FrequencySpecificDays, []int{1},
		"2024-01-01", "2024-01-08", "2024-01-22")

	result := streak.Calculate(h, day("2024-01-22"))
	assert.Equal(t, 1, result.Current, "missed Monday the 15th breaks the walk backward")
	assert.Equal(t, 2, result.Best, "the 1st and 8th form the longest run")
}

func TestCalculate_EverydayRun(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06")

	result := streak.Calculate(h, day("2024-01-06"))
	assert.Equal(t, 2, result.Current, "the 4th breaks the backward walk")
	assert.Equal(t, 3, result.Best, "1st through 3rd is the longest run")
}

func TestCalculate_NonScheduledDaysAreSkipped(t *testing.T) {
	// Due Mon and Fri; completions on consecutive scheduled days spanning
	// non-scheduled gaps.
	h := newHabit("2024-01-01", model.FrequencySpecificDays, []int{1, 5},
		"2024-01-01", "2024-01-05", "2024-01-08")

	result := streak.Calculate(h, day("2024-01-08"))
	assert.Equal(t, 3, result.Current, "Tue-Thu and the weekend neither break nor extend")
	assert.Equal(t, 3, result.Best)
}

func TestCalculate_TodayIncompleteBreaksCurrent(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil,
		"2024-01-01", "2024-01-02")

	result := streak.Calculate(h, day("2024-01-03"))
	assert.Equal(t, 0, result.Current, "today scheduled and not completed stops the walk at once")
	assert.Equal(t, 2, result.Best)
}

func TestCalculate_CreatedTodayZeroReachableDays(t *testing.T) {
	h := newHabit("2024-01-02", model.FrequencySpecificDays, []int{5}, "2024-01-02")

	// Created Tuesday, due Fridays only, evaluated the same day.
	result := streak.Calculate(h, day("2024-01-02"))
	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 0, result.Best)
}

// =============================================================================
// Completion Toggle Tests
// =============================================================================

func TestToggleCompletion_RoundTrip(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil, "2024-01-01")

	once := streak.ToggleCompletion(h, "2024-01-02")
	require.True(t, once.Completions["2024-01-02"])

	twice := streak.ToggleCompletion(once, "2024-01-02")
	assert.Equal(t, h.Completions, twice.Completions, "double toggle restores the original mapping")

	_, present := twice.Completions["2024-01-02"]
	assert.False(t, present, "no false value may remain after untoggling")
}

func TestToggleCompletion_DoesNotMutateInput(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil, "2024-01-01")

	_ = streak.ToggleCompletion(h, "2024-01-05")
	_, present := h.Completions["2024-01-05"]
	assert.False(t, present, "input habit's mapping must stay untouched")
}

func TestToggleCompletion_StripsStoredFalse(t *testing.T) {
	h := newHabit("2024-01-01", model.FrequencyEveryday, nil)
	h.Completions["2024-01-01"] = false

	out := streak.ToggleCompletion(h, "2024-01-02")
	_, present := out.Completions["2024-01-01"]
	assert.False(t, present, "false entries from older data are dropped on copy")
}

// =============================================================================
// Day Helper Tests
// =============================================================================

func TestDay_TruncatesToMidnight(t *testing.T) {
	at := time.Date(2024, 5, 14, 23, 45, 12, 999, time.Local)
	truncated := streak.Day(at)

	assert.Equal(t, 0, truncated.Hour())
	assert.Equal(t, 0, truncated.Minute())
	assert.Equal(t, "2024-05-14", streak.DayString(truncated))
}
