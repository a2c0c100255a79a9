// Package streak implements the scheduling-aware streak engine. All
// functions are pure: date-dependent computations take an explicit as-of
// time instead of reading the system clock, and comparisons are by calendar
// day only (local timezone), never by timestamp.
package streak

import (
	"time"

	"github.com/habitta-app/habitta/internal/model"
)

// DayFormat is the calendar day key format used by the completions mapping.
const DayFormat = "2006-01-02"

// DayString formats a time as its YYYY-MM-DD calendar day.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

// Day truncates a time to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsScheduled returns true if the habit is due on the given date: always for
// everyday habits, otherwise iff the date's weekday is in the frequency set.
// A specific_days habit with an empty set is never due.
func IsScheduled(h model.Habit, date time.Time) bool {
	if h.FrequencyType == model.FrequencyEveryday {
		return true
	}
	weekday := int(date.Weekday())
	for _, d := range h.FrequencyDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Result holds the two streak figures for a habit.
type Result struct {
	Current int `json:"currentStreak"`
	Best    int `json:"bestStreak"`
}

// Calculate computes the current and best streaks of a habit as of the given
// time.
//
// The current streak walks backward day-by-day from asOf down to the habit's
// creation day. Non-scheduled days are skipped; each scheduled-and-completed
// day extends the streak and the first scheduled-but-incomplete day breaks it.
//
// The best streak walks forward from the creation day to asOf keeping a
// running segment of consecutive scheduled-and-completed days; an incomplete
// scheduled day resets the segment. The in-progress day counts once marked.
func Calculate(h model.Habit, asOf time.Time) Result {
	if len(h.Completions) == 0 {
		return Result{}
	}

	start := Day(h.CreatedAt.In(asOf.Location()))
	today := Day(asOf)

	current := 0
	for d := today; !d.Before(start); d = d.AddDate(0, 0, -1) {
		if !IsScheduled(h, d) {
			continue
		}
		if h.CompletedOn(DayString(d)) {
			current++
		} else {
			break
		}
	}

	best := 0
	segment := 0
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		if !IsScheduled(h, d) {
			continue
		}
		if h.CompletedOn(DayString(d)) {
			segment++
		} else {
			if segment > best {
				best = segment
			}
			segment = 0
		}
	}
	if segment > best {
		best = segment
	}

	return Result{Current: current, Best: best}
}

// ToggleCompletion flips the completion state of the habit for the given
// calendar day and returns the updated habit. Presence equals completed: a
// set day is removed, an absent day is set to true, and a false value is
// never stored. The input habit's completions mapping is not modified.
func ToggleCompletion(h model.Habit, day string) model.Habit {
	completions := make(map[string]bool, len(h.Completions)+1)
	for k, v := range h.Completions {
		if v {
			completions[k] = true
		}
	}

	if completions[day] {
		delete(completions, day)
	} else {
		completions[day] = true
	}

	h.Completions = completions
	return h
}
