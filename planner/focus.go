// Package planner holds the pure selection and aggregation logic that
// sits between the store and the CLI: picking the next task to work on,
// computing summary counts, and rebuilding the task hierarchy.
package planner

import (
	"sort"
	"time"

	"github.com/cognitask/cognitask/models"
)

// priorityRank orders priorities for selection; higher wins.
var priorityRank = map[models.TaskPriority]int{
	models.PriorityUrgent: 4,
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// NextTask picks the single most pressing task: the open task (todo or
// inprogress) with the highest priority, then the earliest due date with
// dateless tasks last, then the oldest creation time. The second return
// is false when no task is open.
func NextTask(tasks []models.Task) (models.Task, bool) {
	var candidates []models.Task
	for _, t := range tasks {
		if t.Status.Open() {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return models.Task{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return focusLess(candidates[i], candidates[j])
	})
	return candidates[0], true
}

func focusLess(a, b models.Task) bool {
	ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]
	if ra != rb {
		return ra > rb
	}
	switch {
	case a.DueDate != nil && b.DueDate != nil:
		if !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
	case a.DueDate != nil:
		return true
	case b.DueDate != nil:
		return false
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// IsOverdue reports whether t is past due and still open. Done and
// blocked tasks are never overdue.
func IsOverdue(t models.Task, now time.Time) bool {
	return t.Status.Open() && t.DueDate != nil && t.DueDate.Before(now)
}

// Summary holds per-status counts plus the overdue count.
type Summary struct {
	Total      int
	Todo       int
	InProgress int
	Done       int
	Blocked    int
	Overdue    int
}

// Stats aggregates counts over the given tasks. Overdue counts open
// tasks whose due date lies strictly before now.
func Stats(tasks []models.Task, now time.Time) Summary {
	var s Summary
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case models.StatusTodo:
			s.Todo++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusDone:
			s.Done++
		case models.StatusBlocked:
			s.Blocked++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	return s
}
