package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/models"
	"github.com/cognitask/cognitask/store"
)

// doneCmd marks a task as done.
var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args, models.StatusDone, "Select a task to mark as done")
	},
}

// startCmd marks a task as in progress.
var startCmd = &cobra.Command{
	Use:   "start [task-id]",
	Short: "Mark a task as in progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args, models.StatusInProgress, "Select a task to start")
	},
}

// blockCmd marks a task as blocked.
var blockCmd = &cobra.Command{
	Use:   "block [task-id]",
	Short: "Mark a task as blocked",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args, models.StatusBlocked, "Select a task to block")
	},
}

// setStatus shifts a task (given or interactively picked among open
// tasks) into the target status.
func setStatus(args []string, target models.TaskStatus, label string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer taskStore.Close()

	task, err := resolveTaskArg(taskStore, args, nil, label)
	if err != nil {
		if err == ErrNoTasksFound {
			fmt.Println("No tasks yet.")
			return nil
		}
		return err
	}

	updated, err := taskStore.UpdateTask(task.ID, store.TaskUpdate{Status: &target})
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	fmt.Printf("✔ Task '%s' is now %s.\n", updated.Title, updated.Status)
	return nil
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(blockCmd)
}
