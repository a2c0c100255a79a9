package snapshot

import (
	"encoding/json"
	"time"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/model"
)

// legacyHabit captures the loosely-typed habit records older exports carry.
// The deprecated single reminder field coexists with the reminders list, and
// the obsolete goal/weeklyGoal fields are dropped by not being mapped.
type legacyHabit struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	Reminders     []string        `json:"reminders"`
	Reminder      string          `json:"reminder"`
	TargetStreak  *int            `json:"targetStreak"`
	FrequencyType string          `json:"frequencyType"`
	FrequencyDays []int           `json:"frequencyDays"`
	Marker        string          `json:"marker"`
	Completions   map[string]bool `json:"completions"`
	CreatedAt     time.Time       `json:"createdAt"`
	FolderID      *string         `json:"folderId"`
}

// MigrateLegacyHabits parses an array of habit-like records and upgrades
// them to the current habit shape. The whole batch is rejected unless every
// record carries at least an id and a name; no partial migration happens.
// The result is meant to replace the habit collection wholesale.
func MigrateLegacyHabits(data []byte) ([]model.Habit, error) {
	var records []legacyHabit
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidLegacy, err.Error())
	}

	for _, rec := range records {
		if rec.ID == "" || rec.Name == "" {
			return nil, errors.Wrap(errors.ErrInvalidLegacy, "record missing id or name")
		}
	}

	habits := make([]model.Habit, 0, len(records))
	for _, rec := range records {
		h := model.Habit{
			ID:            rec.ID,
			Name:          rec.Name,
			Description:   rec.Description,
			Icon:          rec.Icon,
			Color:         rec.Color,
			Reminders:     rec.Reminders,
			TargetStreak:  rec.TargetStreak,
			FrequencyType: rec.FrequencyType,
			FrequencyDays: rec.FrequencyDays,
			Marker:        rec.Marker,
			Completions:   rec.Completions,
			CreatedAt:     rec.CreatedAt,
			FolderID:      rec.FolderID,
		}

		// Deprecated single reminder maps to the list only when the list
		// itself is absent.
		if h.Reminders == nil {
			if rec.Reminder != "" {
				h.Reminders = []string{rec.Reminder}
			} else {
				h.Reminders = []string{}
			}
		}

		if h.FrequencyType == "" {
			h.FrequencyType = model.FrequencyEveryday
			h.FrequencyDays = []int{}
		}

		h.Normalize()
		habits = append(habits, h)
	}

	logging.Info("legacy habits migrated", logging.KeyCount, len(habits))
	return habits, nil
}

// ImportLegacyHabits migrates the records and replaces the entire habit
// collection with the result. Returns the number of habits imported.
func (s *Service) ImportLegacyHabits(data []byte) (int, error) {
	habits, err := MigrateLegacyHabits(data)
	if err != nil {
		return 0, err
	}
	if err := s.Habits.ReplaceAll(habits); err != nil {
		return 0, err
	}
	return len(habits), nil
}
