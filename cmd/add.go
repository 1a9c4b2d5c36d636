package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognitask/cognitask/llm"
	"github.com/cognitask/cognitask/models"
)

var (
	addDescription string
	addPriority    string
	addStatus      string
	addDue         string
	addParent      string
	addAI          bool
	addYes         bool
)

// addCmd creates a new task, either directly from flags or by letting
// the configured LLM parse the free-form input first.
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task. By default the arguments become the task title verbatim.
With --ai the input is sent to the configured LLM, which extracts a title,
description, priority and due date; the resulting draft is shown for
confirmation before anything is saved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.TrimSpace(strings.Join(args, " "))
		if input == "" {
			return fmt.Errorf("task title cannot be empty")
		}

		taskStore, err := GetStore()
		if err != nil {
			return err
		}
		defer taskStore.Close()

		var task models.Task
		if addAI {
			drafted, err := draftTaskWithAI(cmd, input)
			if err != nil {
				return err
			}
			if drafted == nil {
				fmt.Println("Aborted.")
				return nil
			}
			task = *drafted
		} else {
			task = models.Task{
				Title:       input,
				Description: addDescription,
				Status:      models.StatusTodo,
				Priority:    models.PriorityMedium,
			}
			if addPriority != "" {
				p, err := parsePriorityFlag(addPriority)
				if err != nil {
					return err
				}
				task.Priority = p
			}
			if addStatus != "" {
				st, err := parseStatusFlag(addStatus)
				if err != nil {
					return err
				}
				task.Status = st
			}
			if addDue != "" {
				due, err := parseDueDateFlag(addDue)
				if err != nil {
					return err
				}
				task.DueDate = &due
			}
		}

		if addParent != "" {
			parent, err := resolveTask(taskStore, addParent)
			if err != nil {
				return fmt.Errorf("cannot attach to parent: %w", err)
			}
			task.ParentID = &parent.ID
		}

		created, err := taskStore.CreateTask(task)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("✔ Created task: %s (ID: %s)\n", created.Title, created.ID)
		if verbose {
			printTaskDetails(created)
		}
		return nil
	},
}

// draftTaskWithAI parses the input through the LLM and confirms the
// draft with the user. A nil task signals a declined confirmation.
func draftTaskWithAI(cmd *cobra.Command, input string) (*models.Task, error) {
	provider, err := newLLMProvider()
	if err != nil {
		return nil, err
	}

	draft, err := llm.ParseTaskInput(cmd.Context(), provider, input, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("could not parse input with AI: %w", err)
	}

	fmt.Println("AI draft:")
	fmt.Printf("  Title:    %s\n", draft.Title)
	if draft.Description != "" {
		fmt.Printf("  Details:  %s\n", draft.Description)
	}
	fmt.Printf("  Priority: %s\n", draft.Priority)
	if due := draft.DueTime(); due != nil {
		fmt.Printf("  Due:      %s\n", due.Format(dueDateLayout))
	}

	if !addYes && !confirmPrompt("Create this task") {
		return nil, nil
	}

	return &models.Task{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      models.StatusTodo,
		Priority:    models.ParsePriority(draft.Priority),
		DueDate:     draft.DueTime(),
	}, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "task priority (low, medium, high, urgent)")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "initial status (todo, inprogress, done, blocked)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addParent, "parent", "", "parent task ID or unique prefix")
	addCmd.Flags().BoolVar(&addAI, "ai", false, "parse the input with the configured LLM")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "skip the AI draft confirmation")
}
