package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/cognitask/cognitask/models"
	"github.com/cognitask/cognitask/planner"
	"github.com/cognitask/cognitask/store"
)

const dueDateLayout = "2006-01-02"

// parseDueDateFlag parses a --due flag value as a calendar day in UTC.
func parseDueDateFlag(value string) (time.Time, error) {
	t, err := time.Parse(dueDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

// parseStatusFlag parses a status flag value strictly. Unlike task
// creation from model output, an explicit flag must name a real status.
func parseStatusFlag(value string) (models.TaskStatus, error) {
	st := models.TaskStatus(strings.ToLower(strings.TrimSpace(value)))
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q (valid: todo, inprogress, done, blocked)", value)
	}
	return st, nil
}

// parsePriorityFlag parses a priority flag value strictly.
func parsePriorityFlag(value string) (models.TaskPriority, error) {
	p := models.TaskPriority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (valid: low, medium, high, urgent)", value)
	}
	return p, nil
}

// resolveTask finds a task by full ID or unique ID prefix.
func resolveTask(taskStore store.TaskStore, ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Task{}, fmt.Errorf("task ID cannot be empty")
	}

	task, err := taskStore.GetTask(ref)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, store.ErrTaskNotFound) {
		return models.Task{}, err
	}

	tasks, err := taskStore.ListTasks(nil, store.OrderCreatedAsc)
	if err != nil {
		return models.Task{}, err
	}
	var matches []models.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("no task found with ID or prefix '%s'", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("ID prefix '%s' is ambiguous (%d matches)", ref, len(matches))
	}
}

// resolveTaskArg resolves the optional positional task reference,
// falling back to an interactive picker when none is given.
func resolveTaskArg(taskStore store.TaskStore, args []string, filter *store.TaskFilter, label string) (models.Task, error) {
	if len(args) > 0 {
		return resolveTask(taskStore, args[0])
	}
	return selectTaskInteractive(taskStore, filter, label)
}

// statusMark renders a compact checkbox-style marker for a status.
func statusMark(s models.TaskStatus) string {
	switch s {
	case models.StatusInProgress:
		return "[~]"
	case models.StatusDone:
		return "[x]"
	case models.StatusBlocked:
		return "[!]"
	default:
		return "[ ]"
	}
}

// taskLine renders one task as a single display line.
func taskLine(t models.Task, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s", statusMark(t.Status), shortID(t.ID), t.Title)
	if t.Priority != models.PriorityMedium {
		fmt.Fprintf(&b, " (%s)", t.Priority)
	}
	if t.DueDate != nil {
		fmt.Fprintf(&b, "  due %s", t.DueDate.Format(dueDateLayout))
		if planner.IsOverdue(t, now) {
			b.WriteString(" OVERDUE")
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// confirmPrompt asks a yes/no question; a declined prompt returns false
// without an error.
func confirmPrompt(label string) bool {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	if _, err := prompt.Run(); err != nil {
		return false
	}
	return true
}

// printTaskDetails writes the full field listing of a task.
func printTaskDetails(t models.Task) {
	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Title:       %s\n", t.Title)
	if t.Description != "" {
		fmt.Printf("Description: %s\n", t.Description)
	}
	fmt.Printf("Status:      %s\n", t.Status)
	fmt.Printf("Priority:    %s\n", t.Priority)
	if t.DueDate != nil {
		fmt.Printf("Due:         %s\n", t.DueDate.Format(dueDateLayout))
	}
	if t.ParentID != nil {
		fmt.Printf("Parent:      %s\n", *t.ParentID)
	}
	fmt.Printf("Created:     %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated:     %s\n", t.UpdatedAt.Format(time.RFC3339))
}
