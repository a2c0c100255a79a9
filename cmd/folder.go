package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/storage"
	"github.com/habitta-app/habitta/internal/validate"
)

// folderCmd represents the folder command. The --habits flag switches from
// the task folder namespace to the habit folder namespace.
var folderCmd = &cobra.Command{
	Use:     "folder",
	Aliases: []string{"folders"},
	Short:   "Manage task and habit folders",
	Long: `Folders group tasks or habits. Deleting a folder keeps its contents
and just clears their folder assignment.

Examples:
  habitta folder
  habitta folder add Work
  habitta folder add Fitness --habits
  habitta folder delete Work`,
	RunE: runFolderList,
}

// Folder subcommand flags.
var (
	folderFlagHabits      bool
	folderFlagColor       string
	folderFlagDescription string
	folderFlagName        string
)

var folderAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderAdd,
}

var folderEditCmd = &cobra.Command{
	Use:   "edit FOLDER",
	Short: "Edit a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderEdit,
}

var folderDeleteCmd = &cobra.Command{
	Use:     "delete FOLDER",
	Aliases: []string{"rm"},
	Short:   "Delete a folder, keeping its contents",
	Args:    cobra.ExactArgs(1),
	RunE:    runFolderDelete,
}

func init() {
	folderCmd.PersistentFlags().BoolVar(&folderFlagHabits, "habits", false,
		"Operate on habit folders instead of task folders")
	for _, c := range []*cobra.Command{folderAddCmd, folderEditCmd} {
		c.Flags().StringVar(&folderFlagColor, "color", "", "Color tag")
		c.Flags().StringVarP(&folderFlagDescription, "description", "d", "", "Short description")
	}
	folderEditCmd.Flags().StringVarP(&folderFlagName, "name", "n", "", "Rename the folder")

	folderCmd.AddCommand(folderAddCmd)
	folderCmd.AddCommand(folderEditCmd)
	folderCmd.AddCommand(folderDeleteCmd)
	rootCmd.AddCommand(folderCmd)
}

// folderRepo picks the namespace selected by the --habits flag.
func folderRepo() *storage.FolderRepo {
	if folderFlagHabits {
		return ctx.HabitFolderRepo
	}
	return ctx.TaskFolderRepo
}

func runFolderList(cmd *cobra.Command, args []string) error {
	folders := folderRepo().List()

	if ctx.IsJSON() {
		outputs := make([]*output.FolderOutput, len(folders))
		for i := range folders {
			outputs[i] = output.NewFolderOutput(&folders[i])
		}
		return ctx.Formatter.JSON(outputs)
	}

	cli := ctx.CLIFormatter()
	if len(folders) == 0 {
		cli.Muted("No folders yet. Use 'habitta folder add NAME' to create one.")
		return nil
	}
	for i, f := range folders {
		line := f.Name
		if f.Description != "" {
			line += "  (" + f.Description + ")"
		}
		cli.Printf("%2d. %s\n", i+1, line)
	}
	return nil
}

func runFolderAdd(cmd *cobra.Command, args []string) error {
	if err := validate.FolderName(args[0]); err != nil {
		return err
	}
	if err := validate.ColorTag(folderFlagColor); err != nil {
		return err
	}

	folder := model.Folder{
		Name:        args[0],
		Description: folderFlagDescription,
		Color:       folderFlagColor,
	}
	added, err := folderRepo().Add(folder)
	if err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Folder created: " + added.Name)
	return nil
}

func runFolderEdit(cmd *cobra.Command, args []string) error {
	folder, err := findFolder(folderRepo(), args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		if err := validate.FolderName(folderFlagName); err != nil {
			return err
		}
		folder.Name = folderFlagName
	}
	if cmd.Flags().Changed("description") {
		folder.Description = folderFlagDescription
	}
	if cmd.Flags().Changed("color") {
		if err := validate.ColorTag(folderFlagColor); err != nil {
			return err
		}
		folder.Color = folderFlagColor
	}

	if _, err := folderRepo().Edit(folder); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Folder updated: " + folder.Name)
	return nil
}

func runFolderDelete(cmd *cobra.Command, args []string) error {
	folder, err := findFolder(folderRepo(), args[0])
	if err != nil {
		return err
	}
	if err := folderRepo().Delete(folder.ID); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Folder deleted: " + folder.Name)
	return nil
}

// findFolder resolves a folder by 1-based list index, exact name or id.
func findFolder(repo *storage.FolderRepo, ref string) (model.Folder, error) {
	folders := repo.List()

	if idx, err := strconv.Atoi(ref); err == nil && idx >= 1 && idx <= len(folders) {
		return folders[idx-1], nil
	}
	for i := range folders {
		if folders[i].Name == ref || folders[i].ID == ref {
			return folders[i], nil
		}
	}
	return model.Folder{}, errors.NewUserErrorWithField("folder", ref,
		"Folder not found",
		"Run 'habitta folder' to list folders")
}
