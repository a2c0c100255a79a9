// Package stats computes derived progress views over habits: the
// week-at-a-glance widget, the rolling 8-week completion chart, the month
// calendar and the achievement ladder. Like the streak engine it is pure and
// takes an explicit as-of time.
package stats

import (
	"fmt"
	"time"

	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/streak"
)

var dayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayStatus describes one day of the current week for a habit.
type DayStatus struct {
	Label     string `json:"label"`
	Date      string `json:"date"`
	Scheduled bool   `json:"isScheduled"`
	Completed bool   `json:"isCompleted"`
	Today     bool   `json:"isCurrentDay"`
}

// Week returns the Monday-starting 7-day window containing asOf, with the
// habit's schedule and completion state for each day.
func Week(h model.Habit, asOf time.Time) []DayStatus {
	today := streak.Day(asOf)
	monday := mondayOf(today)

	week := make([]DayStatus, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := streak.DayString(day)
		week = append(week, DayStatus{
			Label:     dayLabels[i],
			Date:      date,
			Scheduled: streak.IsScheduled(h, day),
			Completed: h.CompletedOn(date),
			Today:     day.Equal(today),
		})
	}
	return week
}

// WeekBucket is one Monday-aligned week of the rolling progress chart.
type WeekBucket struct {
	Label     string    `json:"weekLabel"`
	Start     time.Time `json:"-"`
	End       time.Time `json:"-"`
	Scheduled int       `json:"scheduledDays"`
	Completed int       `json:"completions"`
	Percent   float64   `json:"percentage"`
}

// OverallWeeks is the number of week buckets in the rolling progress chart.
const OverallWeeks = 8

// Overall partitions the last 8 Monday-aligned weeks up to asOf into buckets
// and computes the completion percentage of scheduled days per bucket. Days
// before the habit's creation day or after asOf contribute to neither the
// numerator nor the denominator; a bucket with no scheduled days reads 0%.
func Overall(h model.Habit, asOf time.Time) []WeekBucket {
	today := streak.Day(asOf)
	created := streak.Day(h.CreatedAt.In(asOf.Location()))
	lastMonday := mondayOf(today)

	buckets := make([]WeekBucket, 0, OverallWeeks)
	for w := OverallWeeks - 1; w >= 0; w-- {
		start := lastMonday.AddDate(0, 0, -7*w)
		end := start.AddDate(0, 0, 6)

		bucket := WeekBucket{Start: start, End: end}
		for i := 0; i < 7; i++ {
			day := start.AddDate(0, 0, i)
			if day.Before(created) || day.After(today) {
				continue
			}
			if !streak.IsScheduled(h, day) {
				continue
			}
			bucket.Scheduled++
			if h.CompletedOn(streak.DayString(day)) {
				bucket.Completed++
			}
		}

		if bucket.Scheduled > 0 {
			bucket.Percent = float64(bucket.Completed) / float64(bucket.Scheduled) * 100
		}
		bucket.Label = fmt.Sprintf("%s-%d", start.Format("Jan 2"), end.Day())
		buckets = append(buckets, bucket)
	}
	return buckets
}

// MonthDay is one day of a habit's month calendar.
type MonthDay struct {
	Day       int    `json:"day"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Month returns the habit's completion calendar for the given month.
func Month(h model.Habit, year int, month time.Month, loc *time.Location) []MonthDay {
	days := []MonthDay{}
	for d := time.Date(year, month, 1, 0, 0, 0, 0, loc); d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := streak.DayString(d)
		days = append(days, MonthDay{
			Day:       d.Day(),
			Date:      date,
			Completed: h.CompletedOn(date),
		})
	}
	return days
}

// TargetProgress reports progress toward a habit's custom target streak as a
// percentage capped at 100, or -1 when the habit declares no target.
func TargetProgress(h model.Habit, current int) float64 {
	if !h.HasTarget() {
		return -1
	}
	percent := float64(current) / float64(*h.TargetStreak) * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// mondayOf returns the Monday of the week containing the given day.
func mondayOf(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
