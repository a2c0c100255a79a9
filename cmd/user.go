package cmd

import (
	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/model"
)

// userCmd manages the singleton user profile.
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show or set the user profile",
	Long: `The profile set during onboarding: display name and username.

Examples:
  habitta user
  habitta user set --name "Ada" --username ada
  habitta user clear`,
	RunE: runUserShow,
}

var (
	userFlagName     string
	userFlagUsername string
)

var userSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the user profile",
	RunE:  runUserSet,
}

var userClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the user profile",
	RunE:  runUserClear,
}

func init() {
	userSetCmd.Flags().StringVarP(&userFlagName, "name", "n", "", "Display name")
	userSetCmd.Flags().StringVarP(&userFlagUsername, "username", "u", "", "Username")

	userCmd.AddCommand(userSetCmd)
	userCmd.AddCommand(userClearCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserShow(cmd *cobra.Command, args []string) error {
	user := ctx.UserRepo.Get()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(user)
	}

	cli := ctx.CLIFormatter()
	if user == nil {
		cli.Muted("No profile set. Use 'habitta user set --name NAME'.")
		return nil
	}
	cli.Printf("Name:     %s\n", user.Name)
	cli.Printf("Username: %s\n", user.Username)
	return nil
}

func runUserSet(cmd *cobra.Command, args []string) error {
	user := model.User{}
	if existing := ctx.UserRepo.Get(); existing != nil {
		user = *existing
	}
	if cmd.Flags().Changed("name") {
		user.Name = userFlagName
	}
	if cmd.Flags().Changed("username") {
		user.Username = userFlagUsername
	}

	if err := ctx.UserRepo.Set(user); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Profile saved")
	return nil
}

func runUserClear(cmd *cobra.Command, args []string) error {
	if err := ctx.UserRepo.Clear(); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Profile removed")
	return nil
}
