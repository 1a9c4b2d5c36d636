package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cognitask/cognitask/models"
	"github.com/cognitask/cognitask/prompts"
	"github.com/cognitask/cognitask/types"
)

// maxTitleLen caps titles coming back from the model; the store enforces
// the same limit.
const maxTitleLen = 255

// ParseTaskInput asks the model to turn one line of free text into a
// structured task draft. The draft's title is trimmed and capped, and
// its priority normalized, so callers can hand it straight to the store.
func ParseTaskInput(ctx context.Context, p Provider, input string, today time.Time) (*types.TaskDraft, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("input text is empty")
	}

	userMessage := fmt.Sprintf("Today's date is %s.\n\nUser input: %s", today.Format("2006-01-02"), input)
	raw, err := p.Generate(ctx, prompts.ParseTaskSystemPrompt, userMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task input: %w", err)
	}

	var draft types.TaskDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}

	draft.Title = truncate(strings.TrimSpace(draft.Title), maxTitleLen)
	if draft.Title == "" {
		return nil, fmt.Errorf("model response did not contain a title")
	}
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Priority = string(models.ParsePriority(draft.Priority))
	draft.DueDate = strings.TrimSpace(draft.DueDate)
	return &draft, nil
}

// Breakdown asks the model to decompose a task into sub-task titles.
// Blank entries are dropped and the rest trimmed and capped, preserving
// the model's order.
func Breakdown(ctx context.Context, p Provider, title, description string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("task title is empty")
	}

	userMessage := "Task: " + title
	if description = strings.TrimSpace(description); description != "" {
		userMessage += "\n\nAdditional context: " + description
	}

	raw, err := p.Generate(ctx, prompts.BreakdownSystemPrompt, userMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to break down task: %w", err)
	}

	var wrapper struct {
		SubTasks []string `json:"sub_tasks"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}

	subtasks := make([]string, 0, len(wrapper.SubTasks))
	for _, s := range wrapper.SubTasks {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		subtasks = append(subtasks, truncate(s, maxTitleLen))
	}
	if len(subtasks) == 0 {
		return nil, fmt.Errorf("model response contained no usable sub-tasks")
	}
	return subtasks, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
