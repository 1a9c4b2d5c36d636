package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mockProvider returns a canned response and records the prompts it saw.
type mockProvider struct {
	response  string
	err       error
	gotSystem string
	gotUser   string
}

func (m *mockProvider) Generate(_ context.Context, systemPrompt, userMessage string) (string, error) {
	m.gotSystem = systemPrompt
	m.gotUser = userMessage
	return m.response, m.err
}

var testToday = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func TestParseTaskInput(t *testing.T) {
	mock := &mockProvider{response: `{"title":"Call mom","description":null,"priority":"urgent","due_date":"2026-09-02"}`}

	draft, err := ParseTaskInput(context.Background(), mock, "call mom asap, by wednesday", testToday)
	if err != nil {
		t.Fatalf("ParseTaskInput failed: %v", err)
	}
	if draft.Title != "Call mom" {
		t.Errorf("expected title from model, got %q", draft.Title)
	}
	if draft.Priority != "urgent" {
		t.Errorf("expected priority urgent, got %q", draft.Priority)
	}
	if due := draft.DueTime(); due == nil || due.Format("2006-01-02") != "2026-09-02" {
		t.Errorf("expected due date 2026-09-02, got %v", due)
	}
	if !strings.Contains(mock.gotUser, "2026-08-31") {
		t.Error("user message must include today's date for relative date resolution")
	}
	if !strings.Contains(mock.gotUser, "call mom asap") {
		t.Error("user message must include the original input")
	}
}

func TestParseTaskInputNormalizesDraft(t *testing.T) {
	longTitle := strings.Repeat("a", 300)
	mock := &mockProvider{response: `{"title":"  ` + longTitle + `  ","priority":"someday","due_date":"not-a-date"}`}

	draft, err := ParseTaskInput(context.Background(), mock, "something vague", testToday)
	if err != nil {
		t.Fatalf("ParseTaskInput failed: %v", err)
	}
	if len(draft.Title) != 255 {
		t.Errorf("expected title capped at 255 characters, got %d", len(draft.Title))
	}
	if draft.Priority != "medium" {
		t.Errorf("unrecognized priority must fall back to medium, got %q", draft.Priority)
	}
	if draft.DueTime() != nil {
		t.Error("unparseable due date must yield nil, not an error")
	}
}

func TestParseTaskInputErrors(t *testing.T) {
	if _, err := ParseTaskInput(context.Background(), &mockProvider{}, "   ", testToday); err == nil {
		t.Error("expected error for blank input")
	}

	failing := &mockProvider{err: errors.New("boom")}
	if _, err := ParseTaskInput(context.Background(), failing, "do a thing", testToday); err == nil {
		t.Error("expected provider error to surface")
	}

	garbage := &mockProvider{response: "I'd be happy to help!"}
	if _, err := ParseTaskInput(context.Background(), garbage, "do a thing", testToday); err == nil {
		t.Error("expected error for non-JSON response")
	}

	noTitle := &mockProvider{response: `{"title":"   ","priority":"high"}`}
	if _, err := ParseTaskInput(context.Background(), noTitle, "do a thing", testToday); err == nil {
		t.Error("expected error when model omits the title")
	}
}

func TestBreakdown(t *testing.T) {
	mock := &mockProvider{response: `{"sub_tasks":["", " Buy milk ", "Call vet"]}`}

	subs, err := Breakdown(context.Background(), mock, "Errands", "")
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	want := []string{"Buy milk", "Call vet"}
	if len(subs) != len(want) {
		t.Fatalf("expected %d sub-tasks, got %d: %v", len(want), len(subs), subs)
	}
	for i := range want {
		if subs[i] != want[i] {
			t.Errorf("sub-task %d: got %q, want %q", i, subs[i], want[i])
		}
	}
}

func TestBreakdownIncludesDescriptionContext(t *testing.T) {
	mock := &mockProvider{response: `{"sub_tasks":["Step one"]}`}

	if _, err := Breakdown(context.Background(), mock, "Fix roof", "North side is leaking"); err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if !strings.Contains(mock.gotUser, "Fix roof") || !strings.Contains(mock.gotUser, "North side is leaking") {
		t.Errorf("user message must carry title and description, got %q", mock.gotUser)
	}
}

func TestBreakdownErrors(t *testing.T) {
	if _, err := Breakdown(context.Background(), &mockProvider{}, "  ", ""); err == nil {
		t.Error("expected error for blank title")
	}

	failing := &mockProvider{err: errors.New("boom")}
	if _, err := Breakdown(context.Background(), failing, "Errands", ""); err == nil {
		t.Error("expected provider error to surface")
	}

	wrongShape := &mockProvider{response: `{"sub_tasks":"not a list"}`}
	if _, err := Breakdown(context.Background(), wrongShape, "Errands", ""); err == nil {
		t.Error("expected error for wrong sub_tasks shape")
	}

	missingKey := &mockProvider{response: `{"steps":["a"]}`}
	if _, err := Breakdown(context.Background(), missingKey, "Errands", ""); err == nil {
		t.Error("expected error when sub_tasks key is absent")
	}

	allBlank := &mockProvider{response: `{"sub_tasks":["", "   "]}`}
	if _, err := Breakdown(context.Background(), allBlank, "Errands", ""); err == nil {
		t.Error("expected error when every sub-task is blank")
	}
}
