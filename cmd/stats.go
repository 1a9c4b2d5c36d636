package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/planner"
	"github.com/cognitask/cognitask/store"
)

// statsCmd prints summary counts across all tasks.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
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

		summary := planner.Stats(tasks, time.Now().UTC())
		fmt.Printf("Total:        %d\n", summary.Total)
		fmt.Printf("To do:        %d\n", summary.Todo)
		fmt.Printf("In progress:  %d\n", summary.InProgress)
		fmt.Printf("Done:         %d\n", summary.Done)
		fmt.Printf("Blocked:      %d\n", summary.Blocked)
		fmt.Printf("Overdue:      %d\n", summary.Overdue)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
