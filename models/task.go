package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// AllStatuses lists every valid status in lifecycle order.
var AllStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone, StatusBlocked}

// AllPriorities lists every valid priority, lowest first.
var AllPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusBlocked:
		return true
	}
	return false
}

// Open reports whether a task in this status still needs work.
func (s TaskStatus) Open() bool {
	return s == StatusTodo || s == StatusInProgress
}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParseStatus converts user or model supplied text into a TaskStatus.
// Unrecognized values fall back to StatusTodo.
func ParseStatus(s string) TaskStatus {
	st := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if st.Valid() {
		return st
	}
	return StatusTodo
}

// ParsePriority converts user or model supplied text into a TaskPriority.
// Unrecognized values fall back to PriorityMedium.
func ParsePriority(s string) TaskPriority {
	p := TaskPriority(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p
	}
	return PriorityMedium
}

// Task represents a unit of work. A task may reference a parent task by
// ID to form a hierarchy; the reference is not enforced against the
// stored set, so a parent may be missing.
type Task struct {
	ID          string       `json:"id" validate:"required,uuid4"`
	Title       string       `json:"title" validate:"required,max=255"`
	Description string       `json:"description,omitempty" validate:"max=10000"`
	Status      TaskStatus   `json:"status" validate:"required,oneof=todo inprogress done blocked"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=low medium high urgent"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	ParentID    *string      `json:"parentId,omitempty" validate:"omitempty,uuid4"` // ID of the parent task
	CreatedAt   time.Time    `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time    `json:"updatedAt" validate:"required"`
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}
