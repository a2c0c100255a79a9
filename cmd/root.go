// Package cmd provides the CLI commands for Habitta.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/backup"
	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "habitta",
	Short: "A habit and task tracker with streaks",
	Long: `Habitta tracks daily habits and one-off tasks from the command line:
per-day completions, schedule-aware streaks, progress charts, achievements
and cloud backup of the full state.

Examples:
  habitta habit add "Morning run" --days 1,3,5
  habitta habit done "Morning run"
  habitta todo add "Buy groceries"
  habitta stats "Morning run"
  habitta backup now`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		// Catch up on a due automatic backup before the command runs. Backup
		// commands manage this themselves; restore in particular must not
		// overwrite the remote copy with local state first.
		if !isBackupCommand(cmd) {
			autoBackupCatchUp(cmd)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: today's habits and open tasks
		return runToday(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("habitta %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// isBackupCommand reports whether cmd is the backup command or one of its
// subcommands.
func isBackupCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "backup" {
			return true
		}
	}
	return false
}

// autoBackupCatchUp runs a silent backup when the schedule says one is
// overdue. Best effort: failures are logged and never block the command.
func autoBackupCatchUp(cmd *cobra.Command) {
	schedule := backup.Schedule(ctx.SettingsRepo.BackupSchedule())
	if schedule == backup.ScheduleDisabled || schedule == "" {
		return
	}

	manager, err := ctx.BackupManager(cmd.Context(), "")
	if err != nil {
		logging.Warn("automatic backup unavailable", logging.KeyError, err)
		return
	}
	if _, err := manager.AutoBackupIfDue(cmd.Context(), time.Now()); err != nil {
		logging.Warn("automatic backup failed", logging.KeyError, err)
	}
}

// Die prints an error and exits.
func Die(err error) {
	suggestion := ""
	if ue, ok := errors.AsUserError(err); ok {
		suggestion = ue.Suggestion
	}
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), suggestion)
	} else {
		msg := "Error: " + err.Error()
		if suggestion != "" {
			msg += "\n" + suggestion
		}
		os.Stderr.WriteString(msg + "\n")
	}
	os.Exit(1)
}
