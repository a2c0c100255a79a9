package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/backup"
	"github.com/habitta-app/habitta/internal/output"
)

// backupCmd manages cloud backups of the full state.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore state through a cloud provider",
	Long: `Sign in to a backup provider, upload the current state, restore the
latest backup, and control the automatic backup schedule.

The --transport flag picks the provider: 'mock' (local, for development)
or 's3' (any S3-compatible bucket, configured via HABITTA_S3_* variables).

Examples:
  habitta backup signin
  habitta backup now
  habitta backup restore
  habitta backup schedule daily
  habitta backup status --transport s3`,
	RunE: runBackupStatus,
}

var backupFlagTransport string

var backupSignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to the backup provider",
	RunE:  runBackupSignIn,
}

var backupSignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out of the backup provider",
	RunE:  runBackupSignOut,
}

var backupNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Upload a backup of the current state",
	RunE:  runBackupNow,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the latest backup, replacing current state",
	RunE:  runBackupRestore,
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the backup account, latest backup and schedule",
	RunE:  runBackupStatus,
}

var backupScheduleCmd = &cobra.Command{
	Use:   "schedule [disabled|daily|weekly]",
	Short: "Show or set the automatic backup schedule",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBackupSchedule,
}

func init() {
	backupCmd.PersistentFlags().StringVar(&backupFlagTransport, "transport", "mock",
		"Backup transport: mock, s3")

	backupCmd.AddCommand(backupSignInCmd)
	backupCmd.AddCommand(backupSignOutCmd)
	backupCmd.AddCommand(backupNowCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupStatusCmd)
	backupCmd.AddCommand(backupScheduleCmd)
	rootCmd.AddCommand(backupCmd)
}

func backupManager(cmd *cobra.Command) (*backup.Manager, error) {
	return ctx.BackupManager(cmd.Context(), backupFlagTransport)
}

func runBackupSignIn(cmd *cobra.Command, args []string) error {
	manager, err := backupManager(cmd)
	if err != nil {
		return err
	}
	profile, err := manager.Transport().SignIn(cmd.Context())
	if err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Signed in as " + profile.Name)
	return nil
}

func runBackupSignOut(cmd *cobra.Command, args []string) error {
	manager, err := backupManager(cmd)
	if err != nil {
		return err
	}
	if err := manager.Transport().SignOut(cmd.Context()); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Signed out")
	return nil
}

func runBackupNow(cmd *cobra.Command, args []string) error {
	manager, err := backupManager(cmd)
	if err != nil {
		return err
	}
	info, err := manager.BackupNow(cmd.Context(), false)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(info)
	}
	ctx.CLIFormatter().Success("Backup uploaded (" + output.FormatTimeShort(info.ModifiedTime) + ")")
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	manager, err := backupManager(cmd)
	if err != nil {
		return err
	}
	info, err := manager.Restore(cmd.Context())
	if err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Restored backup from " + output.FormatTimeShort(info.ModifiedTime))
	return nil
}

func runBackupStatus(cmd *cobra.Command, args []string) error {
	manager, err := backupManager(cmd)
	if err != nil {
		return err
	}
	status, err := manager.Status(cmd.Context())
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(status)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Backup")
	if status.Profile == nil {
		cli.Muted("Not signed in. Use 'habitta backup signin' first.")
	} else {
		cli.Printf("Account:  %s", status.Profile.Name)
		if status.Profile.Email != "" {
			cli.Printf(" <%s>", status.Profile.Email)
		}
		cli.Println()
		if status.Latest != nil {
			cli.Printf("Latest:   %s\n", output.FormatTimeShort(status.Latest.ModifiedTime))
		} else {
			cli.Println("Latest:   none")
		}
	}
	cli.Printf("Schedule: %s\n", status.Schedule)
	if !status.LastAutoBackup.IsZero() {
		cli.Printf("Last auto backup: %s\n", output.FormatTimeShort(status.LastAutoBackup))
	}
	return nil
}

func runBackupSchedule(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()
	if len(args) == 0 {
		cli.Printf("Schedule: %s\n", ctx.SettingsRepo.BackupSchedule())
		return nil
	}

	schedule, err := backup.ParseSchedule(args[0])
	if err != nil {
		return err
	}
	if err := ctx.SettingsRepo.SetBackupSchedule(string(schedule)); err != nil {
		return err
	}
	cli.Success("Backup schedule set to " + string(schedule))

	// Run a catch-up backup immediately when one is overdue.
	if schedule != backup.ScheduleDisabled {
		manager, err := backupManager(cmd)
		if err != nil {
			return err
		}
		ran, err := manager.AutoBackupIfDue(cmd.Context(), time.Now())
		if err != nil {
			cli.Warning("Automatic backup failed: " + err.Error())
			return nil
		}
		if ran {
			cli.Success("Automatic backup completed")
		}
	}
	return nil
}
