package cmd

import (
	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
)

// themeCmd shows or sets the UI theme preference.
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

// viewCmd shows or sets the persisted active view.
var viewCmd = &cobra.Command{
	Use:   "view [VIEW]",
	Short: "Show or set the active view",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(viewCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()
	if len(args) == 0 {
		cli.Println(ctx.SettingsRepo.Theme())
		return nil
	}

	theme := args[0]
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return errors.NewUserErrorWithField("theme", theme,
			"Unknown theme",
			"Use 'light' or 'dark'")
	}
	if err := ctx.SettingsRepo.SetTheme(theme); err != nil {
		return err
	}
	cli.Success("Theme set to " + theme)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()
	if len(args) == 0 {
		cli.Println(ctx.SettingsRepo.ActiveView())
		return nil
	}

	view := args[0]
	if !model.IsValidView(view) {
		return errors.NewUserErrorWithField("view", view,
			"Unknown view",
			"Run 'habitta view' to see the current one; valid views are "+viewList())
	}
	if err := ctx.SettingsRepo.SetActiveView(view); err != nil {
		return err
	}
	cli.Success("Active view set to " + view)
	return nil
}

func viewList() string {
	out := ""
	for i, v := range model.AllViews {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}
