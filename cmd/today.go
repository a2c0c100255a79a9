package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/streak"
)

// todayCmd shows today's habits and open tasks.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's habits and open tasks",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	now := time.Now()
	habits := ctx.HabitRepo.List()
	todos := ctx.TodoRepo.List()

	if ctx.IsJSON() {
		habitOutputs := make([]*output.HabitOutput, 0, len(habits))
		for i := range habits {
			if !streak.IsScheduled(habits[i], now) {
				continue
			}
			result := streak.Calculate(habits[i], now)
			habitOutputs = append(habitOutputs, output.NewHabitOutput(&habits[i], result, now))
		}
		todoOutputs := make([]*output.TodoOutput, 0, len(todos))
		for i := range todos {
			if todos[i].Completed {
				continue
			}
			todoOutputs = append(todoOutputs, output.NewTodoOutput(&todos[i]))
		}
		return ctx.Formatter.JSON(map[string]any{
			"date":   streak.DayString(now),
			"habits": habitOutputs,
			"todos":  todoOutputs,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Habits for " + now.Format("Monday, Jan 2"))
	scheduled := 0
	for i := range habits {
		if !streak.IsScheduled(habits[i], now) {
			continue
		}
		scheduled++
		result := streak.Calculate(habits[i], now)
		done := habits[i].CompletedOn(streak.DayString(now))
		cli.PrintHabitLine(scheduled, &habits[i], result, done)
	}
	if scheduled == 0 {
		cli.Muted("No habits scheduled today.")
	}

	cli.Println()
	cli.Title("Open tasks")
	open := 0
	for i := range todos {
		if todos[i].Completed {
			continue
		}
		open++
		cli.PrintTodoLine(open, &todos[i])
	}
	if open == 0 {
		cli.Muted("All tasks done.")
	}
	return nil
}
