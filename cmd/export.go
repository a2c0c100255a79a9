package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
)

// exportCmd writes a state snapshot to a file or stdout.
var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export the full state as a JSON snapshot",
	Long: `Write a snapshot of habits, tasks, folders and the user profile.
With no FILE the snapshot goes to stdout.

Examples:
  habitta export backup.json
  habitta export --habits habits.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var exportFlagHabits bool

func init() {
	exportCmd.Flags().BoolVar(&exportFlagHabits, "habits", false, "Export only the habit collection")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if exportFlagHabits {
		data, err = ctx.Snapshots.ExportHabits()
	} else {
		data, err = ctx.Snapshots.Export()
	}
	if err != nil {
		return err
	}

	if len(args) == 0 {
		ctx.Formatter.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return errors.NewSystemErrorWithOp("export", "failed to write snapshot file", err)
	}
	ctx.CLIFormatter().Success("Exported to " + args[0])
	return nil
}
