package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/planner"
	"github.com/cognitask/cognitask/store"
)

var (
	listStatus string
	listParent string
	listRoots  bool
	listFlat   bool
	listOldest bool
)

// listCmd shows tasks as an indented hierarchy, or as a flat list.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks as an indented hierarchy. Tasks whose parent falls outside
the current filter are shown at the top level, so a filtered view never
hides matching tasks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		filter := &store.TaskFilter{RootsOnly: listRoots}
		if listStatus != "" {
			st, err := parseStatusFlag(listStatus)
			if err != nil {
				return err
			}
			filter.Status = &st
		}
		if listParent != "" {
			parent, err := resolveTask(taskStore, listParent)
			if err != nil {
				return err
			}
			filter.ParentID = &parent.ID
		}

		order := store.OrderCreatedDesc
		if listOldest {
			order = store.OrderCreatedAsc
		}

		tasks, err := taskStore.ListTasks(filter, order)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		now := time.Now().UTC()
		if listFlat {
			for _, t := range tasks {
				fmt.Println(taskLine(t, now))
			}
		} else {
			for _, node := range planner.BuildForest(tasks) {
				printNode(node, 0, now)
			}
		}

		fmt.Printf("\n%d task(s)\n", len(tasks))
		return nil
	},
}

func printNode(node *planner.Node, depth int, now time.Time) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), taskLine(node.Task, now))
	for _, child := range node.Children {
		printNode(child, depth+1, now)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status (todo, inprogress, done, blocked)")
	listCmd.Flags().StringVar(&listParent, "parent", "", "show only subtasks of this task")
	listCmd.Flags().BoolVar(&listRoots, "roots", false, "show only top-level tasks")
	listCmd.Flags().BoolVar(&listFlat, "flat", false, "print a flat list instead of a hierarchy")
	listCmd.Flags().BoolVar(&listOldest, "oldest", false, "order oldest first instead of newest first")
}
