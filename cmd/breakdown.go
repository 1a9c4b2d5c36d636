package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/llm"
	"github.com/cognitask/cognitask/models"
)

var breakdownYes bool

// breakdownCmd asks the LLM to split a task into sub-tasks and creates
// them as children of the original task.
var breakdownCmd = &cobra.Command{
	Use:   "breakdown [task-id]",
	Short: "Break a task into AI-suggested subtasks",
	Long: `Break a task into smaller steps using the configured LLM. The
suggested sub-tasks are shown for confirmation, then created as children
of the original task and inherit its priority.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		task, err := resolveTaskArg(taskStore, args, nil, "Select a task to break down")
		if err != nil {
			if err == ErrNoTasksFound {
				fmt.Println("No tasks to break down.")
				return nil
			}
			return err
		}

		provider, err := newLLMProvider()
		if err != nil {
			return err
		}

		fmt.Printf("Breaking down '%s'...\n", task.Title)
		subtasks, err := llm.Breakdown(cmd.Context(), provider, task.Title, task.Description)
		if err != nil {
			return fmt.Errorf("could not break down task with AI: %w", err)
		}

		fmt.Printf("\nSuggested sub-tasks:\n")
		for i, title := range subtasks {
			fmt.Printf("  %d. %s\n", i+1, title)
		}

		if !breakdownYes && !confirmPrompt(fmt.Sprintf("Create %d sub-task(s)", len(subtasks))) {
			fmt.Println("Aborted.")
			return nil
		}

		created := 0
		for _, title := range subtasks {
			_, err := taskStore.CreateTask(models.Task{
				Title:    title,
				Status:   models.StatusTodo,
				Priority: task.Priority,
				ParentID: &task.ID,
			})
			if err != nil {
				return fmt.Errorf("failed after creating %d sub-task(s): %w", created, err)
			}
			created++
		}

		fmt.Printf("✔ Created %d sub-task(s) under '%s'.\n", created, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
	breakdownCmd.Flags().BoolVarP(&breakdownYes, "yes", "y", false, "skip the confirmation prompt")
}
