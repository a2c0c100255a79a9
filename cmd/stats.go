package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/stats"
	"github.com/habitta-app/habitta/internal/streak"
)

// statsCmd shows progress statistics for a habit.
var statsCmd = &cobra.Command{
	Use:   "stats HABIT",
	Short: "Show streaks and progress charts for a habit",
	Long: `Current and best streak, the week at a glance, the rolling 8-week
completion chart and progress toward a custom target streak.

Examples:
  habitta stats "Morning run"
  habitta stats 1 --month 2026-08`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

var statsFlagMonth string

func init() {
	statsCmd.Flags().StringVar(&statsFlagMonth, "month", "", "Show the completion calendar for a month (YYYY-MM)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	habit, err := findHabit(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	result := streak.Calculate(habit, now)
	week := stats.Week(habit, now)
	overall := stats.Overall(habit, now)
	target := stats.TargetProgress(habit, result.Current)

	if statsFlagMonth != "" {
		return showMonth(habit, statsFlagMonth, now)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.StatsResponse{
			HabitID:        habit.ID,
			Name:           habit.Name,
			CurrentStreak:  result.Current,
			BestStreak:     result.Best,
			Week:           week,
			Overall:        overall,
			TargetProgress: target,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(habit.Name)
	cli.Printf("Current streak: %s\n", cli.Streak(output.FormatStreak(result.Current)))
	cli.Printf("Best streak:    %s\n", cli.Streak(output.FormatStreak(result.Best)))
	if target >= 0 {
		cli.Printf("Target:         %s %3.0f%% (%d days)\n",
			output.ProgressBar(target, 20), target, *habit.TargetStreak)
	}

	cli.Println()
	cli.Title("This week")
	cli.PrintWeek(week)

	cli.Println()
	cli.Title("Last 8 weeks")
	cli.PrintWeekBuckets(overall)
	return nil
}

func showMonth(habit model.Habit, monthArg string, now time.Time) error {
	t, err := time.ParseInLocation("2006-01", monthArg, now.Location())
	if err != nil {
		return errors.NewUserErrorWithField("month", monthArg,
			"Invalid month",
			"Use YYYY-MM format like '2026-08'")
	}
	days := stats.Month(habit, t.Year(), t.Month(), now.Location())

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"habitId": habit.ID,
			"month":   monthArg,
			"days":    days,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(habit.Name + " - " + t.Format("January 2006"))
	for _, d := range days {
		marker := "·"
		if d.Completed {
			marker = "●"
		}
		cli.Printf("%s ", marker)
		if d.Day%7 == 0 {
			cli.Println()
		}
	}
	cli.Println()
	return nil
}
