package model

import (
	"sort"
	"time"
)

// Habit represents a recurring, schedulable action tracked per calendar day.
//
// Completions is presence-only: a day key maps to true when the habit was
// completed on that day; absent keys mean not completed. A false value is
// never stored.
type Habit struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	Reminders     []string        `json:"reminders"`
	TargetStreak  *int            `json:"targetStreak"`
	FrequencyType string          `json:"frequencyType"`
	FrequencyDays []int           `json:"frequencyDays"`
	Marker        string          `json:"marker"`
	Completions   map[string]bool `json:"completions"`
	CreatedAt     time.Time       `json:"createdAt"`
	FolderID      *string         `json:"folderId,omitempty"`
}

// CompletedOn returns true if the habit was completed on the given day
// (YYYY-MM-DD, local timezone).
func (h *Habit) CompletedOn(day string) bool {
	return h.Completions[day]
}

// HasTarget returns true if the habit declares a positive custom target streak.
func (h *Habit) HasTarget() bool {
	return h.TargetStreak != nil && *h.TargetStreak > 0
}

// Normalize enforces the habit invariants: reminders deduplicated and sorted
// ascending, frequencyDays cleared for everyday habits and sorted/deduplicated
// for specific_days, completions non-nil with no false entries.
func (h *Habit) Normalize() {
	h.Reminders = NormalizeReminders(h.Reminders)

	if h.FrequencyType != FrequencySpecificDays {
		h.FrequencyType = FrequencyEveryday
		h.FrequencyDays = []int{}
	} else {
		h.FrequencyDays = normalizeWeekdays(h.FrequencyDays)
	}

	if h.Completions == nil {
		h.Completions = map[string]bool{}
	}
	for day, done := range h.Completions {
		if !done {
			delete(h.Completions, day)
		}
	}
}

// NormalizeReminders deduplicates and sorts HH:MM reminder times ascending.
// The 24h zero-padded format sorts correctly as plain strings.
func NormalizeReminders(reminders []string) []string {
	seen := make(map[string]bool, len(reminders))
	out := make([]string, 0, len(reminders))
	for _, r := range reminders {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func normalizeWeekdays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
