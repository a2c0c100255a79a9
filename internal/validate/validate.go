// Package validate provides input validation helpers for the Habitta CLI.
package validate

import (
	"regexp"
	"unicode/utf8"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
)

const (
	// MaxNameLength is the maximum length for a habit or folder name.
	MaxNameLength = 128
	// MaxTodoTextLength is the maximum length for a todo's text.
	MaxTodoTextLength = 512
	// MaxDescriptionLength is the maximum length for a description.
	// The original UI caps habit descriptions at 20 characters; the data
	// layer is deliberately more permissive.
	MaxDescriptionLength = 1024
)

// reminderRegex validates 24h HH:MM reminder times.
var reminderRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// HabitName validates a habit name.
func HabitName(name string) error {
	if name == "" {
		return errors.NewUserError("Habit name cannot be empty", "Provide a habit name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Habit name too long",
			"Habit names must be 128 characters or fewer")
	}
	return nil
}

// FolderName validates a folder name.
func FolderName(name string) error {
	if name == "" {
		return errors.NewUserError("Folder name cannot be empty", "Provide a folder name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Folder name too long",
			"Folder names must be 128 characters or fewer")
	}
	return nil
}

// TodoText validates a todo's text.
func TodoText(text string) error {
	if text == "" {
		return errors.NewUserError("Task text cannot be empty", "Provide the task text")
	}
	if utf8.RuneCountInString(text) > MaxTodoTextLength {
		return errors.NewUserError("Task text too long",
			"Tasks must be 512 characters or fewer")
	}
	return nil
}

// Description validates a description.
func Description(desc string) error {
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return errors.NewUserError("Description too long",
			"Descriptions must be 1024 characters or fewer")
	}
	return nil
}

// ReminderTime validates a 24h HH:MM reminder time.
func ReminderTime(t string) error {
	if !reminderRegex.MatchString(t) {
		return errors.NewUserErrorWithField("reminder", t,
			"Invalid reminder time",
			"Use 24h HH:MM format like '08:00' or '21:30'")
	}
	return nil
}

// Reminders validates a list of reminder times.
func Reminders(times []string) error {
	for _, t := range times {
		if err := ReminderTime(t); err != nil {
			return err
		}
	}
	return nil
}

// Weekday validates a weekday index (0=Sunday..6=Saturday).
func Weekday(d int) error {
	if d < 0 || d > 6 {
		return errors.NewUserError("Invalid weekday",
			"Weekdays run 0 (Sunday) through 6 (Saturday)")
	}
	return nil
}

// Frequency validates a frequency type and its weekday set. An empty weekday
// set is allowed for specific_days (the habit is simply never due).
func Frequency(freqType string, days []int) error {
	switch freqType {
	case model.FrequencyEveryday, model.FrequencySpecificDays:
	default:
		return errors.NewUserErrorWithField("frequency", freqType,
			"Invalid frequency type",
			"Use 'everyday' or 'specific_days'")
	}
	for _, d := range days {
		if err := Weekday(d); err != nil {
			return err
		}
	}
	return nil
}

// TargetStreak validates an optional custom target streak.
func TargetStreak(target *int) error {
	if target != nil && *target <= 0 {
		return errors.NewUserError("Invalid target streak",
			"Target streaks must be a positive number of days")
	}
	return nil
}

// ColorTag validates a color tag against the catalog.
func ColorTag(color string) error {
	if color == "" {
		return nil
	}
	if !model.IsValidColor(color) {
		return errors.NewUserErrorWithField("color", color,
			"Unknown color tag",
			"Run 'habitta habit colors' to list available colors")
	}
	return nil
}

// IconTag validates an icon tag against the catalog.
func IconTag(icon string) error {
	if icon == "" {
		return nil
	}
	if !model.IsValidIcon(icon) {
		return errors.NewUserErrorWithField("icon", icon,
			"Unknown icon tag",
			"Run 'habitta habit icons' to list available icons")
	}
	return nil
}

// MarkerTag validates a completion marker tag against the catalog.
func MarkerTag(marker string) error {
	if marker == "" {
		return nil
	}
	if !model.IsValidMarker(marker) {
		return errors.NewUserErrorWithField("marker", marker,
			"Unknown marker tag",
			"Run 'habitta habit markers' to list available markers")
	}
	return nil
}

// Habit validates a habit's user-supplied fields.
func Habit(h *model.Habit) error {
	if err := HabitName(h.Name); err != nil {
		return err
	}
	if err := Description(h.Description); err != nil {
		return err
	}
	if err := Reminders(h.Reminders); err != nil {
		return err
	}
	if err := Frequency(h.FrequencyType, h.FrequencyDays); err != nil {
		return err
	}
	if err := TargetStreak(h.TargetStreak); err != nil {
		return err
	}
	if err := ColorTag(h.Color); err != nil {
		return err
	}
	if err := IconTag(h.Icon); err != nil {
		return err
	}
	return MarkerTag(h.Marker)
}
