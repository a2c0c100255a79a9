package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
)

// importCmd restores state from a snapshot file.
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a JSON snapshot, replacing current state",
	Long: `Read a snapshot and replace every collection it carries. Collections
absent from the snapshot are left untouched. Use '-' to read from stdin.

The --legacy flag imports a habit array in the old export format, upgrading
each habit to the current shape.

Examples:
  habitta import backup.json
  habitta import --legacy old-habits.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importFlagLegacy bool

func init() {
	importCmd.Flags().BoolVar(&importFlagLegacy, "legacy", false, "Treat the file as a legacy habit export")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return errors.NewSystemErrorWithOp("import", "failed to read snapshot file", err)
	}

	cli := ctx.CLIFormatter()
	if importFlagLegacy {
		count, err := ctx.Snapshots.ImportLegacyHabits(data)
		if err != nil {
			return err
		}
		cli.Success(fmt.Sprintf("Imported %d legacy habits", count))
		return nil
	}

	if err := ctx.Snapshots.Import(data); err != nil {
		return err
	}
	cli.Success("Snapshot imported")
	return nil
}
