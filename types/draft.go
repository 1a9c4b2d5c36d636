package types

import (
	"strings"
	"time"
)

// TaskDraft is an unpersisted task proposal extracted from free text by
// an LLM. All fields are plain strings so a partially usable model
// response still produces a draft; interpretation happens at creation.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// DueTime interprets the draft's due date as a calendar day in UTC.
// Unparseable or empty values yield nil rather than an error.
func (d TaskDraft) DueTime() *time.Time {
	s := strings.TrimSpace(d.DueDate)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
