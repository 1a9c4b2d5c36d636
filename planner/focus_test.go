package planner

import (
	"testing"
	"time"

	"github.com/cognitask/cognitask/models"
)

var baseTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func task(id string, status models.TaskStatus, priority models.TaskPriority, due *time.Time, createdOffset time.Duration) models.Task {
	created := baseTime.Add(createdOffset)
	return models.Task{
		ID:        id,
		Title:     "Task " + id,
		Status:    status,
		Priority:  priority,
		DueDate:   due,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNextTaskPrefersHigherPriority(t *testing.T) {
	tasks := []models.Task{
		task("a", models.StatusTodo, models.PriorityLow, nil, 0),
		task("b", models.StatusTodo, models.PriorityUrgent, nil, time.Hour),
		task("c", models.StatusInProgress, models.PriorityHigh, datePtr(2026, 8, 2), 2*time.Hour),
	}
	best, ok := NextTask(tasks)
	if !ok {
		t.Fatal("expected a next task")
	}
	if best.ID != "b" {
		t.Errorf("expected urgent task b, got %s", best.ID)
	}
}

func TestNextTaskEarlierDueDateWinsWithinPriority(t *testing.T) {
	tasks := []models.Task{
		task("later", models.StatusTodo, models.PriorityHigh, datePtr(2026, 9, 10), 0),
		task("sooner", models.StatusTodo, models.PriorityHigh, datePtr(2026, 9, 1), time.Hour),
		task("never", models.StatusTodo, models.PriorityHigh, nil, -time.Hour),
	}
	best, _ := NextTask(tasks)
	if best.ID != "sooner" {
		t.Errorf("expected task with earliest due date, got %s", best.ID)
	}
}

func TestNextTaskDatelessSortsLast(t *testing.T) {
	tasks := []models.Task{
		task("nodate", models.StatusTodo, models.PriorityMedium, nil, 0),
		task("dated", models.StatusTodo, models.PriorityMedium, datePtr(2027, 1, 1), time.Hour),
	}
	best, _ := NextTask(tasks)
	if best.ID != "dated" {
		t.Errorf("any due date beats no due date, got %s", best.ID)
	}
}

func TestNextTaskOldestBreaksTies(t *testing.T) {
	tasks := []models.Task{
		task("young", models.StatusTodo, models.PriorityMedium, nil, time.Hour),
		task("old", models.StatusTodo, models.PriorityMedium, nil, -time.Hour),
	}
	best, _ := NextTask(tasks)
	if best.ID != "old" {
		t.Errorf("expected oldest task on full tie, got %s", best.ID)
	}
}

func TestNextTaskIgnoresClosedTasks(t *testing.T) {
	tasks := []models.Task{
		task("d", models.StatusDone, models.PriorityUrgent, nil, 0),
		task("bl", models.StatusBlocked, models.PriorityUrgent, nil, 0),
		task("open", models.StatusTodo, models.PriorityLow, nil, 0),
	}
	best, ok := NextTask(tasks)
	if !ok || best.ID != "open" {
		t.Errorf("done and blocked tasks must never be selected, got %v %v", best.ID, ok)
	}
}

func TestNextTaskNoneOpen(t *testing.T) {
	tasks := []models.Task{
		task("d", models.StatusDone, models.PriorityUrgent, nil, 0),
		task("bl", models.StatusBlocked, models.PriorityHigh, nil, 0),
	}
	if _, ok := NextTask(tasks); ok {
		t.Error("expected no next task when nothing is open")
	}
	if _, ok := NextTask(nil); ok {
		t.Error("expected no next task for empty input")
	}
}

func TestNextTaskDeterministic(t *testing.T) {
	tasks := []models.Task{
		task("a", models.StatusTodo, models.PriorityHigh, datePtr(2026, 9, 1), 0),
		task("b", models.StatusInProgress, models.PriorityHigh, datePtr(2026, 9, 1), time.Hour),
		task("c", models.StatusTodo, models.PriorityUrgent, nil, 2*time.Hour),
	}
	first, _ := NextTask(tasks)
	for i := 0; i < 10; i++ {
		got, _ := NextTask(tasks)
		if got.ID != first.ID {
			t.Fatalf("selection not deterministic: %s vs %s", got.ID, first.ID)
		}
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		task("t1", models.StatusTodo, models.PriorityMedium, datePtr(2026, 8, 1), 0),
		task("t2", models.StatusTodo, models.PriorityMedium, nil, 0),
		task("p1", models.StatusInProgress, models.PriorityMedium, nil, 0),
		task("d1", models.StatusDone, models.PriorityMedium, datePtr(2026, 8, 1), 0),
		task("b1", models.StatusBlocked, models.PriorityMedium, datePtr(2026, 8, 1), 0),
	}
	s := Stats(tasks, now)
	want := Summary{Total: 5, Todo: 2, InProgress: 1, Done: 1, Blocked: 1, Overdue: 1}
	if s != want {
		t.Errorf("Stats = %+v, want %+v", s, want)
	}
}

func TestStatsEmpty(t *testing.T) {
	if s := Stats(nil, baseTime); s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	past := datePtr(2026, 8, 1)
	future := datePtr(2026, 9, 1)

	if !IsOverdue(task("a", models.StatusTodo, models.PriorityLow, past, 0), now) {
		t.Error("open task past due must be overdue")
	}
	if IsOverdue(task("b", models.StatusTodo, models.PriorityLow, future, 0), now) {
		t.Error("future due date is not overdue")
	}
	if IsOverdue(task("c", models.StatusDone, models.PriorityLow, past, 0), now) {
		t.Error("done task is never overdue")
	}
	if IsOverdue(task("d", models.StatusBlocked, models.PriorityLow, past, 0), now) {
		t.Error("blocked task is never overdue")
	}
	if IsOverdue(task("e", models.StatusTodo, models.PriorityLow, nil, 0), now) {
		t.Error("dateless task is never overdue")
	}
}
