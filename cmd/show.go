package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// showCmd prints the full details of a single task and its subtasks.
var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		task, err := resolveTaskArg(taskStore, args, nil, "Select a task to show")
		if err != nil {
			return err
		}

		printTaskDetails(task)

		subtasks, err := taskStore.Subtasks(task.ID)
		if err != nil {
			return err
		}
		if len(subtasks) > 0 {
			now := time.Now().UTC()
			fmt.Printf("\nSubtasks (%d):\n", len(subtasks))
			for _, sub := range subtasks {
				fmt.Printf("  %s\n", taskLine(sub, now))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
