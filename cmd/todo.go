package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/output"
	"github.com/habitta-app/habitta/internal/validate"
)

// todoCmd represents the todo command.
var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"todos", "task", "tasks", "t"},
	Short:   "Manage one-off tasks",
	Long: `List tasks, add new ones and toggle them done.

Examples:
  habitta todo
  habitta todo add "Buy groceries"
  habitta todo done 2
  habitta todo move 4 1`,
	RunE: runTodoList,
}

// Todo subcommand flags.
var (
	todoFlagFolder string
	todoFlagText   string
	todoFlagAll    bool
)

var todoAddCmd = &cobra.Command{
	Use:   "add TEXT",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoAdd,
}

var todoEditCmd = &cobra.Command{
	Use:   "edit TASK",
	Short: "Edit a task's text or folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoEdit,
}

var todoDoneCmd = &cobra.Command{
	Use:     "done TASK",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task's completed state",
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoDone,
}

var todoDeleteCmd = &cobra.Command{
	Use:     "delete TASK",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoDelete,
}

var todoMoveCmd = &cobra.Command{
	Use:   "move TASK TARGET",
	Short: "Move a task to another task's position",
	Args:  cobra.ExactArgs(2),
	RunE:  runTodoMove,
}

func init() {
	todoCmd.Flags().BoolVarP(&todoFlagAll, "all", "a", false, "Include completed tasks")
	todoAddCmd.Flags().StringVar(&todoFlagFolder, "folder", "", "Task folder name")
	todoEditCmd.Flags().StringVarP(&todoFlagText, "text", "t", "", "Replace the task text")
	todoEditCmd.Flags().StringVar(&todoFlagFolder, "folder", "", "Task folder name (empty clears it)")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoEditCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoDeleteCmd)
	todoCmd.AddCommand(todoMoveCmd)
	rootCmd.AddCommand(todoCmd)
}

func runTodoList(cmd *cobra.Command, args []string) error {
	todos := ctx.TodoRepo.List()

	if ctx.IsJSON() {
		outputs := make([]*output.TodoOutput, 0, len(todos))
		for i := range todos {
			if !todoFlagAll && todos[i].Completed {
				continue
			}
			outputs = append(outputs, output.NewTodoOutput(&todos[i]))
		}
		return ctx.JSONFormatter().PrintTodos(outputs)
	}

	cli := ctx.CLIFormatter()
	if len(todos) == 0 {
		cli.Muted("No tasks yet. Use 'habitta todo add TEXT' to create one.")
		return nil
	}
	for i := range todos {
		if !todoFlagAll && todos[i].Completed {
			continue
		}
		cli.PrintTodoLine(i+1, &todos[i])
	}
	return nil
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	if err := validate.TodoText(args[0]); err != nil {
		return err
	}

	todo := model.Todo{Text: args[0]}
	if todoFlagFolder != "" {
		folder, err := findFolder(ctx.TaskFolderRepo, todoFlagFolder)
		if err != nil {
			return err
		}
		todo.FolderID = &folder.ID
	}

	added, err := ctx.TodoRepo.Add(todo)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodoOutput(&added))
	}
	ctx.CLIFormatter().Success("Task added: " + added.Text)
	return nil
}

func runTodoEdit(cmd *cobra.Command, args []string) error {
	todo, err := findTodo(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("text") {
		if err := validate.TodoText(todoFlagText); err != nil {
			return err
		}
		todo.Text = todoFlagText
	}
	if cmd.Flags().Changed("folder") {
		if todoFlagFolder == "" {
			todo.FolderID = nil
		} else {
			folder, err := findFolder(ctx.TaskFolderRepo, todoFlagFolder)
			if err != nil {
				return err
			}
			todo.FolderID = &folder.ID
		}
	}

	if _, err := ctx.TodoRepo.Edit(todo); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Task updated: " + todo.Text)
	return nil
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	todo, err := findTodo(args[0])
	if err != nil {
		return err
	}

	updated, err := ctx.TodoRepo.Toggle(todo.ID)
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if updated.Completed {
		cli.Success("Task done: " + updated.Text)
	} else {
		cli.Warning("Task reopened: " + updated.Text)
	}
	return nil
}

func runTodoDelete(cmd *cobra.Command, args []string) error {
	todo, err := findTodo(args[0])
	if err != nil {
		return err
	}
	if err := ctx.TodoRepo.Delete(todo.ID); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Task deleted: " + todo.Text)
	return nil
}

func runTodoMove(cmd *cobra.Command, args []string) error {
	dragged, err := findTodo(args[0])
	if err != nil {
		return err
	}
	target, err := findTodo(args[1])
	if err != nil {
		return err
	}
	if err := ctx.TodoRepo.Reorder(dragged.ID, target.ID); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Moved task to new position")
	return nil
}

// findTodo resolves a task by 1-based list index, exact text or id.
func findTodo(ref string) (model.Todo, error) {
	todos := ctx.TodoRepo.List()

	if idx, err := strconv.Atoi(ref); err == nil && idx >= 1 && idx <= len(todos) {
		return todos[idx-1], nil
	}
	for i := range todos {
		if todos[i].Text == ref || todos[i].ID == ref {
			return todos[i], nil
		}
	}
	return model.Todo{}, errors.NewUserErrorWithField("task", ref,
		"Task not found",
		"Run 'habitta todo' to list tasks; refer to one by number or text")
}
