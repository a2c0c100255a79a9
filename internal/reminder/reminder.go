// Package reminder plans and delivers local notifications: per-habit
// reminders at their configured times, and hourly task summaries while
// incomplete todos remain. Planning is a pure function over the current
// state so it can be previewed and tested without firing anything.
package reminder

import (
	"fmt"
	"sort"
	"time"

	"github.com/habitta-app/habitta/internal/model"
)

// Summary delivery window, hours of the day inclusive.
const (
	summaryStartHour = 9
	summaryEndHour   = 22
)

// Entry is one planned notification.
type Entry struct {
	At    time.Time `json:"at"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

// Desired computes the notifications that should be pending for the rest of
// today. Returns nothing when permission was not granted. Times already in
// the past are skipped; the plan is sorted by fire time.
func Desired(habits []model.Habit, todos []model.Todo, granted bool, now time.Time) []Entry {
	if !granted {
		return nil
	}

	var entries []Entry
	entries = append(entries, habitEntries(habits, now)...)
	entries = append(entries, summaryEntries(todos, now)...)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	return entries
}

// habitEntries schedules each habit's reminders at their HH:MM today.
func habitEntries(habits []model.Habit, now time.Time) []Entry {
	var entries []Entry
	for _, h := range habits {
		for _, at := range h.Reminders {
			fireAt, ok := timeToday(at, now)
			if !ok || !fireAt.After(now) {
				continue
			}
			entries = append(entries, Entry{
				At:    fireAt,
				Title: "Habit Reminder",
				Body:  fmt.Sprintf("Time for: %s", h.Name),
			})
		}
	}
	return entries
}

// summaryEntries schedules an hourly nudge while incomplete todos remain.
// The first slot is the next full hour, clamped to the delivery window.
func summaryEntries(todos []model.Todo, now time.Time) []Entry {
	remaining := 0
	for _, t := range todos {
		if !t.Completed {
			remaining++
		}
	}
	if remaining == 0 {
		return nil
	}

	startHour := now.Hour() + 1
	if startHour < summaryStartHour {
		startHour = summaryStartHour
	}

	var entries []Entry
	for hour := startHour; hour <= summaryEndHour; hour++ {
		fireAt := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !fireAt.After(now) {
			continue
		}
		entries = append(entries, Entry{
			At:    fireAt,
			Title: "Task Summary",
			Body:  taskSummaryBody(remaining),
		})
	}
	return entries
}

func taskSummaryBody(remaining int) string {
	if remaining == 1 {
		return "You have 1 task left for today"
	}
	return fmt.Sprintf("You have %d tasks left for today", remaining)
}

// timeToday resolves an HH:MM string to a concrete time on now's day.
func timeToday(hhmm string, now time.Time) (time.Time, bool) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), true
}
