package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/planner"
	"github.com/cognitask/cognitask/store"
)

// nextCmd shows the single task to work on right now.
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next task to work on",
	Long: `Show the single most pressing open task: highest priority first, then
the earliest due date (tasks without one come last), then the oldest.
The selection is deterministic, so repeated calls agree until a task
changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		tasks, err := taskStore.ListTasks(nil, store.OrderCreatedAsc)
		if err != nil {
			return err
		}

		best, ok := planner.NextTask(tasks)
		if !ok {
			fmt.Println("You're all caught up! No open tasks.")
			return nil
		}

		now := time.Now().UTC()
		fmt.Println("Focus on this:")
		fmt.Println()
		printTaskDetails(best)
		if planner.IsOverdue(best, now) {
			fmt.Println()
			fmt.Println("⚠ This task is overdue.")
		}

		subtasks, err := taskStore.Subtasks(best.ID)
		if err != nil {
			return err
		}
		if len(subtasks) > 0 {
			fmt.Printf("\nSubtasks (%d):\n", len(subtasks))
			for _, sub := range subtasks {
				fmt.Printf("  %s\n", taskLine(sub, now))
			}
		}

		summary := planner.Stats(tasks, now)
		remaining := summary.Todo + summary.InProgress
		fmt.Printf("\n%d open task(s) remaining.\n", remaining)

		fmt.Println("\nSuggested actions:")
		fmt.Printf("  cognitask start %s\n", shortID(best.ID))
		fmt.Printf("  cognitask done %s\n", shortID(best.ID))
		fmt.Printf("  cognitask breakdown %s\n", shortID(best.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
