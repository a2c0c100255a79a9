package stats

import (
	"time"

	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/streak"
)

// Tier is one fixed streak-length threshold of the achievement ladder.
type Tier struct {
	Name        string `json:"name"`
	Days        int    `json:"days"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// Tiers is the ascending achievement ladder. A habit earns every tier whose
// threshold is at or below its best streak.
var Tiers = []Tier{
	{Name: "3 Days", Days: 3, Points: 10, Description: "Complete a habit for 3 days straight."},
	{Name: "7 Days", Days: 7, Points: 20, Description: "Stay consistent for a full week."},
	{Name: "15 Days", Days: 15, Points: 30, Description: "A solid two-week streak."},
	{Name: "30 Days", Days: 30, Points: 50, Description: "You've made it a monthly habit!"},
	{Name: "60 Days", Days: 60, Points: 75, Description: "Two months of dedication. Incredible!"},
	{Name: "90 Days", Days: 90, Points: 100, Description: "Three months strong. This is a lifestyle."},
	{Name: "180 Days", Days: 180, Points: 150, Description: "Half a year of consistency!"},
	{Name: "365 Days", Days: 365, Points: 300, Description: "A full year of success. You're a legend!"},
}

// CustomTargetPoints is awarded once when a habit reaches its declared
// custom target streak, independent of the ladder.
const CustomTargetPoints = 100

// Summary aggregates achievement totals across all habits. Award counts are
// monotonic non-decreasing as best streaks grow, so callers can diff two
// summaries to detect newly earned awards.
type Summary struct {
	TotalPoints   int `json:"totalPoints"`
	AwardsEarned  int `json:"awardsEarned"`
	LongestStreak int `json:"longestStreak"`
}

// Evaluate computes the achievement summary across all habits as of the
// given time.
func Evaluate(habits []model.Habit, asOf time.Time) Summary {
	var summary Summary
	for _, h := range habits {
		best := streak.Calculate(h, asOf).Best
		if best > summary.LongestStreak {
			summary.LongestStreak = best
		}
		for _, tier := range Tiers {
			if best >= tier.Days {
				summary.TotalPoints += tier.Points
				summary.AwardsEarned++
			}
		}
		if h.HasTarget() && best >= *h.TargetStreak {
			summary.TotalPoints += CustomTargetPoints
			summary.AwardsEarned++
		}
	}
	return summary
}

// TierState is one ladder tier with its unlock state for a habit.
type TierState struct {
	Tier
	Unlocked bool `json:"unlocked"`
}

// HabitAwards describes the award state of a single habit.
type HabitAwards struct {
	HabitID       string      `json:"habitId"`
	HabitName     string      `json:"habitName"`
	BestStreak    int         `json:"bestStreak"`
	Tiers         []TierState `json:"tiers"`
	NextTier      *Tier       `json:"nextTier,omitempty"`
	TargetStreak  *int        `json:"targetStreak,omitempty"`
	TargetReached bool        `json:"targetReached"`
}

// ForHabit evaluates the ladder and custom target for one habit.
func ForHabit(h model.Habit, asOf time.Time) HabitAwards {
	best := streak.Calculate(h, asOf).Best

	awards := HabitAwards{
		HabitID:    h.ID,
		HabitName:  h.Name,
		BestStreak: best,
	}
	for _, tier := range Tiers {
		awards.Tiers = append(awards.Tiers, TierState{Tier: tier, Unlocked: best >= tier.Days})
	}
	awards.NextTier = NextTier(best)
	if h.HasTarget() {
		awards.TargetStreak = h.TargetStreak
		awards.TargetReached = best >= *h.TargetStreak
	}
	return awards
}

// NextTier returns the first ladder tier above the given best streak, or nil
// when the ladder is complete.
func NextTier(best int) *Tier {
	for i := range Tiers {
		if Tiers[i].Days > best {
			tier := Tiers[i]
			return &tier
		}
	}
	return nil
}
