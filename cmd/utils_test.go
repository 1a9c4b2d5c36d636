package cmd

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cognitask/cognitask/models"
	"github.com/cognitask/cognitask/store"
)

func TestParseDueDateFlag(t *testing.T) {
	got, err := parseDueDateFlag("2026-09-15")
	if err != nil {
		t.Fatalf("parseDueDateFlag failed: %v", err)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "15/09/2026", "tomorrow", "2026-13-01"} {
		if _, err := parseDueDateFlag(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseStatusAndPriorityFlags(t *testing.T) {
	if st, err := parseStatusFlag(" Done "); err != nil || st != models.StatusDone {
		t.Errorf("parseStatusFlag: got %v, %v", st, err)
	}
	if _, err := parseStatusFlag("archived"); err == nil {
		t.Error("expected error for unknown status flag")
	}
	if p, err := parsePriorityFlag("URGENT"); err != nil || p != models.PriorityUrgent {
		t.Errorf("parsePriorityFlag: got %v, %v", p, err)
	}
	if _, err := parsePriorityFlag("critical"); err == nil {
		t.Error("expected error for unknown priority flag")
	}
}

func TestStatusMark(t *testing.T) {
	marks := map[models.TaskStatus]string{
		models.StatusTodo:       "[ ]",
		models.StatusInProgress: "[~]",
		models.StatusDone:       "[x]",
		models.StatusBlocked:    "[!]",
	}
	for status, want := range marks {
		if got := statusMark(status); got != want {
			t.Errorf("statusMark(%s) = %q, want %q", status, got, want)
		}
	}
}

func TestTaskLine(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:       "12345678-0000-4000-8000-000000000000",
		Title:    "Fix roof",
		Status:   models.StatusTodo,
		Priority: models.PriorityHigh,
		DueDate:  &due,
	}

	line := taskLine(task, now)
	for _, want := range []string{"[ ]", "12345678", "Fix roof", "(high)", "due 2026-08-01", "OVERDUE"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}

	task.Priority = models.PriorityMedium
	task.DueDate = nil
	line = taskLine(task, now)
	if strings.Contains(line, "(medium)") || strings.Contains(line, "due") {
		t.Errorf("default priority and missing due date should not be printed: %q", line)
	}
}

func TestResolveTask(t *testing.T) {
	s, err := store.NewSQLiteTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	created, err := s.CreateTask(models.Task{Title: "Findable"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	byID, err := resolveTask(s, created.ID)
	if err != nil || byID.ID != created.ID {
		t.Errorf("resolve by full ID failed: %v", err)
	}

	byPrefix, err := resolveTask(s, created.ID[:8])
	if err != nil || byPrefix.ID != created.ID {
		t.Errorf("resolve by prefix failed: %v", err)
	}

	if _, err := resolveTask(s, "ffffffff"); err == nil {
		t.Error("expected error for unknown prefix")
	}
	if _, err := resolveTask(s, ""); err == nil {
		t.Error("expected error for empty reference")
	}
}
