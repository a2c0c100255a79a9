package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/model"
)

// resetCmd wipes all local state.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long: `Remove every habit, task, folder, preference and the user profile.
Cloud backups are not touched. Asks for confirmation unless --yes is given.`,
	RunE: runReset,
}

var resetFlagYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetFlagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	if !resetFlagYes {
		cli.Warning("This deletes all local data. Type 'yes' to continue:")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			cli.Muted("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.Reset(model.AllKeys...); err != nil {
		return err
	}
	cli.Success("All local data deleted")
	return nil
}
