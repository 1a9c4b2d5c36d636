package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/store"
)

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
	updatePriority    string
	updateDue         string
	updateParent      string
	updateClearDue    bool
	updateClearParent bool
)

// updateCmd applies a partial update to an existing task.
var updateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update fields of a task",
	Long: `Update fields of a task. Only the fields named by flags change;
everything else is left as it is. Use --clear-due and --clear-parent to
remove the due date or detach the task from its parent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		task, err := resolveTaskArg(taskStore, args, nil, "Select a task to update")
		if err != nil {
			return err
		}

		var upd store.TaskUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			upd.Description = &updateDescription
		}
		if cmd.Flags().Changed("status") {
			st, err := parseStatusFlag(updateStatus)
			if err != nil {
				return err
			}
			upd.Status = &st
		}
		if cmd.Flags().Changed("priority") {
			p, err := parsePriorityFlag(updatePriority)
			if err != nil {
				return err
			}
			upd.Priority = &p
		}
		if cmd.Flags().Changed("due") {
			due, err := parseDueDateFlag(updateDue)
			if err != nil {
				return err
			}
			upd.DueDate = &due
		}
		if cmd.Flags().Changed("parent") {
			parent, err := resolveTask(taskStore, updateParent)
			if err != nil {
				return fmt.Errorf("cannot attach to parent: %w", err)
			}
			if parent.ID == task.ID {
				return fmt.Errorf("a task cannot be its own parent")
			}
			upd.ParentID = &parent.ID
		}
		upd.ClearDueDate = updateClearDue
		upd.ClearParent = updateClearParent

		updated, err := taskStore.UpdateTask(task.ID, upd)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Printf("✔ Updated task: %s (ID: %s)\n", updated.Title, updated.ID)
		if verbose {
			printTaskDetails(updated)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "new status (todo, inprogress, done, blocked)")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "new priority (low, medium, high, urgent)")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateParent, "parent", "", "new parent task ID or unique prefix")
	updateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "remove the due date")
	updateCmd.Flags().BoolVar(&updateClearParent, "clear-parent", false, "detach the task from its parent")
}
