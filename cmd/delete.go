package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/store"
)

var deleteYes bool

// deleteCmd removes a task after confirmation. Tasks that still have
// subtasks cannot be deleted.
var deleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Long: `Delete a task. A task with subtasks is never deleted; delete or
reassign its subtasks first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		task, err := resolveTaskArg(taskStore, args, nil, "Select a task to delete")
		if err != nil {
			if err == ErrNoTasksFound {
				fmt.Println("No tasks to delete.")
				return nil
			}
			return err
		}

		if !deleteYes && !confirmPrompt(fmt.Sprintf("Delete task '%s'", task.Title)) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := taskStore.DeleteTask(task.ID); err != nil {
			if errors.Is(err, store.ErrHasSubtasks) {
				return fmt.Errorf("task '%s' still has subtasks; delete or reassign them first", task.Title)
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Printf("✔ Deleted task: %s (ID: %s)\n", task.Title, task.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
