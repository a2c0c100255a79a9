package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/parser"
	"github.com/habitta-app/habitta/internal/streak"
	"github.com/habitta-app/habitta/internal/validate"
)

// habitCmd represents the habit command.
var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"habits", "h"},
	Short:   "Manage habits",
	Long: `List habits, create new ones, mark them done and keep their schedule.

Examples:
  habitta habit
  habitta habit add "Morning run" --days 1,3,5 --remind 07:30
  habitta habit done "Morning run"
  habitta habit done "Morning run" yesterday
  habitta habit edit "Morning run" --name "Evening run"`,
	RunE: runHabitList,
}

// Habit subcommand flags.
var (
	habitFlagDescription string
	habitFlagIcon        string
	habitFlagColor       string
	habitFlagMarker      string
	habitFlagReminders   []string
	habitFlagDays        string
	habitFlagTarget      int
	habitFlagFolder      string
	habitFlagName        string
)

var habitAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a new habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitAdd,
}

var habitEditCmd = &cobra.Command{
	Use:   "edit HABIT",
	Short: "Edit a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitEdit,
}

var habitDeleteCmd = &cobra.Command{
	Use:     "delete HABIT",
	Aliases: []string{"rm"},
	Short:   "Delete a habit",
	Args:    cobra.ExactArgs(1),
	RunE:    runHabitDelete,
}

var habitDoneCmd = &cobra.Command{
	Use:   "done HABIT [DATE...]",
	Short: "Toggle a habit's completion for a day (default today)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHabitDone,
}

var habitMoveCmd = &cobra.Command{
	Use:   "move HABIT TARGET",
	Short: "Move a habit to another habit's position",
	Args:  cobra.ExactArgs(2),
	RunE:  runHabitMove,
}

var habitMarkersCmd = &cobra.Command{
	Use:   "markers",
	Short: "List available completion markers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(model.AllMarkers)
	},
}

var habitIconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List available icons",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(model.AllIcons)
	},
}

var habitColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List available colors",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(model.AllColors)
	},
}

func init() {
	for _, c := range []*cobra.Command{habitAddCmd, habitEditCmd} {
		c.Flags().StringVarP(&habitFlagDescription, "description", "d", "", "Short description")
		c.Flags().StringVar(&habitFlagIcon, "icon", "", "Icon tag")
		c.Flags().StringVar(&habitFlagColor, "color", "", "Color tag")
		c.Flags().StringVar(&habitFlagMarker, "marker", "", "Completion marker tag")
		c.Flags().StringSliceVar(&habitFlagReminders, "remind", nil, "Reminder times (24h HH:MM)")
		c.Flags().StringVar(&habitFlagDays, "days", "", "Scheduled weekdays 0-6, comma-separated (default every day)")
		c.Flags().IntVar(&habitFlagTarget, "target", 0, "Custom target streak in days")
		c.Flags().StringVar(&habitFlagFolder, "folder", "", "Habit folder name")
	}
	habitEditCmd.Flags().StringVarP(&habitFlagName, "name", "n", "", "Rename the habit")

	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitEditCmd)
	habitCmd.AddCommand(habitDeleteCmd)
	habitCmd.AddCommand(habitDoneCmd)
	habitCmd.AddCommand(habitMoveCmd)
	habitCmd.AddCommand(habitMarkersCmd)
	habitCmd.AddCommand(habitIconsCmd)
	habitCmd.AddCommand(habitColorsCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitList(cmd *cobra.Command, args []string) error {
	now := time.Now()
	habits := ctx.HabitRepo.List()

	if ctx.IsJSON() {
		outputs := make([]*output.HabitOutput, len(habits))
		for i := range habits {
			result := streak.Calculate(habits[i], now)
			outputs[i] = output.NewHabitOutput(&habits[i], result, now)
		}
		return ctx.JSONFormatter().PrintHabits(outputs)
	}

	cli := ctx.CLIFormatter()
	if len(habits) == 0 {
		cli.Muted("No habits yet. Use 'habitta habit add NAME' to create one.")
		return nil
	}
	today := streak.DayString(now)
	for i := range habits {
		result := streak.Calculate(habits[i], now)
		cli.PrintHabitLine(i+1, &habits[i], result, habits[i].CompletedOn(today))
	}
	return nil
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	habit := model.Habit{
		Name:        args[0],
		Description: habitFlagDescription,
		Icon:        habitFlagIcon,
		Color:       habitFlagColor,
		Marker:      habitFlagMarker,
		Reminders:   habitFlagReminders,
	}
	if err := applyHabitSchedule(&habit, cmd); err != nil {
		return err
	}
	applyHabitTarget(&habit, cmd)
	if err := applyHabitFolder(&habit); err != nil {
		return err
	}
	if err := validate.Habit(&habit); err != nil {
		return err
	}

	added, err := ctx.HabitRepo.Add(habit)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitOutput(&added, streak.Result{}, time.Now()))
	}
	ctx.CLIFormatter().Success("Habit created: " + added.Name)
	return nil
}

func runHabitEdit(cmd *cobra.Command, args []string) error {
	habit, err := findHabit(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		habit.Name = habitFlagName
	}
	if cmd.Flags().Changed("description") {
		habit.Description = habitFlagDescription
	}
	if cmd.Flags().Changed("icon") {
		habit.Icon = habitFlagIcon
	}
	if cmd.Flags().Changed("color") {
		habit.Color = habitFlagColor
	}
	if cmd.Flags().Changed("marker") {
		habit.Marker = habitFlagMarker
	}
	if cmd.Flags().Changed("remind") {
		habit.Reminders = habitFlagReminders
	}
	if err := applyHabitSchedule(&habit, cmd); err != nil {
		return err
	}
	applyHabitTarget(&habit, cmd)
	if cmd.Flags().Changed("folder") {
		if err := applyHabitFolder(&habit); err != nil {
			return err
		}
	}
	if err := validate.Habit(&habit); err != nil {
		return err
	}

	if _, err := ctx.HabitRepo.Edit(habit); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Habit updated: " + habit.Name)
	return nil
}

func runHabitDelete(cmd *cobra.Command, args []string) error {
	habit, err := findHabit(args[0])
	if err != nil {
		return err
	}
	if err := ctx.HabitRepo.Delete(habit.ID); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Habit deleted: " + habit.Name)
	return nil
}

func runHabitDone(cmd *cobra.Command, args []string) error {
	habit, err := findHabit(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	day, err := parser.ParseDayArgs(args[1:], now)
	if err != nil {
		return err
	}
	dayKey := streak.DayString(day)

	updated := streak.ToggleCompletion(habit, dayKey)
	if err := ctx.HabitRepo.SetCompletions(habit.ID, updated.Completions); err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	result := streak.Calculate(updated, now)
	if updated.CompletedOn(dayKey) {
		cli.Success("Marked '" + habit.Name + "' done for " + parser.FormatDay(day, now))
		if result.Current > 0 {
			cli.Printf("  Current streak: %s\n", cli.Streak(output.FormatStreak(result.Current)))
		}
	} else {
		cli.Warning("Unmarked '" + habit.Name + "' for " + parser.FormatDay(day, now))
	}
	return nil
}

func runHabitMove(cmd *cobra.Command, args []string) error {
	dragged, err := findHabit(args[0])
	if err != nil {
		return err
	}
	target, err := findHabit(args[1])
	if err != nil {
		return err
	}
	if err := ctx.HabitRepo.Reorder(dragged.ID, target.ID); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Moved '" + dragged.Name + "' to position of '" + target.Name + "'")
	return nil
}

// applyHabitSchedule sets the frequency fields from the --days flag.
func applyHabitSchedule(h *model.Habit, cmd *cobra.Command) error {
	if !cmd.Flags().Changed("days") {
		if h.FrequencyType == "" {
			h.FrequencyType = model.FrequencyEveryday
		}
		return nil
	}
	if habitFlagDays == "" {
		h.FrequencyType = model.FrequencyEveryday
		h.FrequencyDays = nil
		return nil
	}

	var days []int
	for _, part := range strings.Split(habitFlagDays, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return errors.NewUserErrorWithField("days", habitFlagDays,
				"Invalid weekday list",
				"Use comma-separated weekday numbers, 0 (Sunday) through 6 (Saturday)")
		}
		days = append(days, d)
	}
	h.FrequencyType = model.FrequencySpecificDays
	h.FrequencyDays = days
	return nil
}

// applyHabitFolder resolves the --folder flag to a habit folder reference.
func applyHabitFolder(h *model.Habit) error {
	if habitFlagFolder == "" {
		h.FolderID = nil
		return nil
	}
	folder, err := findFolder(ctx.HabitFolderRepo, habitFlagFolder)
	if err != nil {
		return err
	}
	h.FolderID = &folder.ID
	return nil
}

// findHabit resolves a habit by 1-based list index, exact name or id.
func findHabit(ref string) (model.Habit, error) {
	habits := ctx.HabitRepo.List()

	if idx, err := strconv.Atoi(ref); err == nil && idx >= 1 && idx <= len(habits) {
		return habits[idx-1], nil
	}
	for i := range habits {
		if habits[i].Name == ref || habits[i].ID == ref {
			return habits[i], nil
		}
	}
	return model.Habit{}, errors.NewUserErrorWithField("habit", ref,
		"Habit not found",
		"Run 'habitta habit' to list habits; refer to one by number or name")
}

// applyHabitTarget sets the target streak from the --target flag.
func applyHabitTarget(h *model.Habit, cmd *cobra.Command) {
	if !cmd.Flags().Changed("target") {
		return
	}
	if habitFlagTarget <= 0 {
		h.TargetStreak = nil
		return
	}
	target := habitFlagTarget
	h.TargetStreak = &target
}

func printCatalog(entries []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(entries)
	}
	for _, e := range entries {
		ctx.Formatter.Println(e)
	}
	return nil
}
