package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/stats"
)

// achievementsCmd shows the achievement ladder and point totals.
var achievementsCmd = &cobra.Command{
	Use:     "achievements [HABIT]",
	Aliases: []string{"awards"},
	Short:   "Show earned achievements and points",
	Long: `The overall achievement summary, or the full ladder state for one habit.

Examples:
  habitta achievements
  habitta achievements "Morning run"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAchievements,
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
	now := time.Now()

	if len(args) == 1 {
		return showHabitAchievements(args[0], now)
	}

	habits := ctx.HabitRepo.List()
	summary := stats.Evaluate(habits, now)

	if ctx.IsJSON() {
		perHabit := make([]stats.HabitAwards, len(habits))
		for i, h := range habits {
			perHabit[i] = stats.ForHabit(h, now)
		}
		return ctx.Formatter.JSON(output.AchievementsResponse{
			Summary: summary,
			Habits:  perHabit,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Achievements")
	cli.Printf("Total points:   %d\n", summary.TotalPoints)
	cli.Printf("Awards earned:  %d\n", summary.AwardsEarned)
	cli.Printf("Longest streak: %s\n", cli.Streak(output.FormatStreak(summary.LongestStreak)))
	return nil
}

func showHabitAchievements(ref string, now time.Time) error {
	habit, err := findHabit(ref)
	if err != nil {
		return err
	}
	awards := stats.ForHabit(habit, now)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(awards)
	}

	cli := ctx.CLIFormatter()
	cli.Title(habit.Name)
	cli.Printf("Best streak: %s\n\n", cli.Streak(output.FormatStreak(awards.BestStreak)))
	for _, tier := range awards.Tiers {
		cli.PrintTierState(tier)
	}
	if awards.TargetStreak != nil {
		cli.Println()
		if awards.TargetReached {
			cli.Success("Custom target reached!")
		} else {
			cli.Printf("Custom target: %d days\n", *awards.TargetStreak)
		}
	}
	if awards.NextTier != nil {
		cli.Println()
		cli.Muted("Next up: " + awards.NextTier.Name)
	}
	return nil
}
