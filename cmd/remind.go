package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/reminder"
)

// remindCmd previews and delivers habit reminders and task summaries.
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Preview or run habit reminders and task summaries",
	Long: `Reminders fire at each habit's configured times today, plus an hourly
task summary between 09:00 and 22:00 while open tasks remain.

'remind' prints the plan for the rest of today. 'remind watch' stays in
the foreground and delivers the notifications, replanning whenever habits
or tasks change.

Examples:
  habitta remind
  habitta remind watch`,
	RunE: runRemindPreview,
}

var remindFlagDisabled bool

var remindWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stay in the foreground and deliver reminders",
	RunE:  runRemindWatch,
}

func init() {
	remindCmd.PersistentFlags().BoolVar(&remindFlagDisabled, "disabled", false,
		"Plan as if notification permission was denied")

	remindCmd.AddCommand(remindWatchCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemindPreview(cmd *cobra.Command, args []string) error {
	now := time.Now()
	entries := reminder.Desired(ctx.HabitRepo.List(), ctx.TodoRepo.List(), !remindFlagDisabled, now)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(entries)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("Nothing left to remind today.")
		return nil
	}
	cli.Title("Planned for today")
	for _, e := range entries {
		cli.Printf("%s  %s - %s\n", e.At.Format("15:04"), e.Title, e.Body)
	}
	return nil
}

func runRemindWatch(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	applier := reminder.NewTimerApplier(func(title, body string) {
		cli.Printf("\n[%s] %s: %s\n", time.Now().Format("15:04"), title, body)
	})
	watcher := reminder.NewWatcher(ctx.HabitRepo, ctx.TodoRepo, applier, !remindFlagDisabled)

	if err := watcher.Start(ctx.Store); err != nil {
		return err
	}
	defer watcher.Stop()

	cli.Muted("Watching for reminders. Press Ctrl-C to stop.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	cli.Println()
	return nil
}
