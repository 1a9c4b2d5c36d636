package store

import (
	"errors"
	"time"

	"github.com/cognitask/cognitask/models"
)

// Sentinel errors returned by TaskStore implementations. Callers should
// test for them with errors.Is.
var (
	// ErrTaskNotFound is returned when no task exists for the given ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrHasSubtasks is returned when a delete is refused because other
	// tasks still reference the target as their parent.
	ErrHasSubtasks = errors.New("task has subtasks")
)

// ListOrder controls the creation-time ordering of listed tasks.
type ListOrder int

const (
	// OrderCreatedDesc lists the newest tasks first.
	OrderCreatedDesc ListOrder = iota
	// OrderCreatedAsc lists the oldest tasks first.
	OrderCreatedAsc
)

// TaskFilter narrows a listing. A nil filter, or a zero-value filter,
// matches every task. RootsOnly takes precedence over ParentID.
type TaskFilter struct {
	Status    *models.TaskStatus
	ParentID  *string
	RootsOnly bool
}

// TaskUpdate describes a partial update. Nil pointer fields leave the
// corresponding task field untouched. ClearDueDate and ClearParent win
// over DueDate and ParentID when both are set.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Status       *models.TaskStatus
	Priority     *models.TaskPriority
	DueDate      *time.Time
	ParentID     *string
	ClearDueDate bool
	ClearParent  bool
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// CreateTask adds a new task to the store. Missing ID and timestamps
	// are assigned; invalid status or priority values fall back to their
	// defaults. It returns the task as persisted.
	CreateTask(task models.Task) (models.Task, error)

	// GetTask retrieves a task by its unique identifier. It returns
	// ErrTaskNotFound if no such task exists.
	GetTask(id string) (models.Task, error)

	// ListTasks retrieves tasks matching the filter, ordered by creation
	// time. A nil filter matches all tasks.
	ListTasks(filter *TaskFilter, order ListOrder) ([]models.Task, error)

	// UpdateTask applies a partial update to the task with the given ID
	// and returns the task as persisted. The updated-at timestamp always
	// moves forward, even for an empty update.
	UpdateTask(id string, upd TaskUpdate) (models.Task, error)

	// DeleteTask removes a task. It returns ErrTaskNotFound for an
	// unknown ID and ErrHasSubtasks if any task still references the
	// target as its parent.
	DeleteTask(id string) error

	// CountTasks reports how many tasks match the filter.
	CountTasks(filter *TaskFilter) (int, error)

	// HasSubtasks reports whether any task references the given ID as
	// its parent. Unknown IDs simply report false.
	HasSubtasks(id string) (bool, error)

	// Subtasks retrieves the direct children of the given task, oldest
	// first.
	Subtasks(parentID string) ([]models.Task, error)

	// Close releases the underlying database connection. It should be
	// called when the store is no longer needed.
	Close() error
}
