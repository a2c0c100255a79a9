// Package parser turns command-line date arguments into calendar days.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/streak"
)

// ParseDay resolves a date expression to a calendar day. Accepts shortcuts
// ("today", "yesterday"), ISO dates and natural language ("last monday",
// "3 days ago"). An empty input means today.
func ParseDay(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))

	switch input {
	case "", "today":
		return streak.Day(now), nil
	case "yesterday":
		return streak.Day(now.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(streak.DayFormat, input, now.Location()); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not understand that date",
			"Try 'today', 'yesterday', '2026-08-30' or 'last monday'")
	}
	return streak.Day(result.Time), nil
}

// ParseDayArgs joins the arguments into one expression and parses it.
func ParseDayArgs(args []string, now time.Time) (time.Time, error) {
	return ParseDay(strings.Join(args, " "), now)
}

// FormatDay renders a day for display, preferring relative names.
func FormatDay(day, now time.Time) string {
	today := streak.Day(now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Mon, Jan 2 2006")
	}
}
