package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cognitask/cognitask/models"
)

// timeLayout is RFC 3339 with a fixed nine-digit fraction so that stored
// timestamps sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'todo',
	priority TEXT NOT NULL DEFAULT 'medium',
	due_date TEXT,
	parent_id TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks(priority);
CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_id);
CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
`

// SQLiteTaskStore is a TaskStore backed by a local SQLite database.
type SQLiteTaskStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteTaskStore opens (creating if necessary) the database at path
// and ensures the schema exists. The parent directory is created when
// missing.
func NewSQLiteTaskStore(path string) (*SQLiteTaskStore, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory '%s': %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at '%s': %w", path, err)
	}

	s := &SQLiteTaskStore{db: db, path: path}
	if _, err := s.db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteTaskStore) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseStoredTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored timestamp '%s': %w", v, err)
	}
	return t.UTC(), nil
}

// CreateTask persists a new task. A missing ID gets a fresh UUID and
// both timestamps are set to now. Unknown status or priority values fall
// back to todo and medium respectively.
func (s *SQLiteTaskStore) CreateTask(task models.Task) (models.Task, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.Title = strings.TrimSpace(task.Title)
	if !task.Status.Valid() {
		task.Status = models.StatusTodo
	}
	if !task.Priority.Valid() {
		task.Priority = models.PriorityMedium
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.DueDate != nil {
		d := task.DueDate.UTC()
		task.DueDate = &d
	}

	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	_, err := s.db.Exec(
		`INSERT INTO tasks (id, title, description, status, priority, due_date, parent_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, string(task.Status), string(task.Priority),
		nullableTime(task.DueDate), task.ParentID, formatTime(task.CreatedAt), formatTime(task.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.Task{}, fmt.Errorf("task with ID '%s' already exists", task.ID)
		}
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a single task by ID.
func (s *SQLiteTaskStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(selectColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.Task{}, fmt.Errorf("task with ID '%s': %w", id, ErrTaskNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get task '%s': %w", id, err)
	}
	return task, nil
}

// ListTasks retrieves tasks matching the filter, ordered by creation time.
func (s *SQLiteTaskStore) ListTasks(filter *TaskFilter, order ListOrder) ([]models.Task, error) {
	where, args := buildWhere(filter)
	query := selectColumns + ` FROM tasks` + where + ` ORDER BY created_at `
	if order == OrderCreatedAsc {
		query += "ASC"
	} else {
		query += "DESC"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading task rows: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update inside a transaction and returns
// the task as persisted. The updated-at timestamp strictly increases even
// when nothing else changes.
func (s *SQLiteTaskStore) UpdateTask(id string, upd TaskUpdate) (models.Task, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(selectColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.Task{}, fmt.Errorf("task with ID '%s': %w", id, ErrTaskNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to load task '%s': %w", id, err)
	}

	if upd.Title != nil {
		task.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Status != nil && upd.Status.Valid() {
		task.Status = *upd.Status
	}
	if upd.Priority != nil && upd.Priority.Valid() {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		d := upd.DueDate.UTC()
		task.DueDate = &d
	}
	if upd.ClearDueDate {
		task.DueDate = nil
	}
	if upd.ParentID != nil {
		pid := *upd.ParentID
		task.ParentID = &pid
	}
	if upd.ClearParent {
		task.ParentID = nil
	}

	now := time.Now().UTC()
	if !now.After(task.UpdatedAt) {
		now = task.UpdatedAt.Add(time.Nanosecond)
	}
	task.UpdatedAt = now

	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for task '%s': %w", id, err)
	}

	_, err = tx.Exec(
		`UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, parent_id = ?, updated_at = ? WHERE id = ?`,
		task.Title, task.Description, string(task.Status), string(task.Priority),
		nullableTime(task.DueDate), task.ParentID, formatTime(task.UpdatedAt), id,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to update task '%s': %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return models.Task{}, fmt.Errorf("failed to commit update for task '%s': %w", id, err)
	}
	return task, nil
}

// DeleteTask removes a task. The delete is refused with ErrHasSubtasks
// while other tasks still reference it as their parent.
func (s *SQLiteTaskStore) DeleteTask(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM tasks WHERE id = ?`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check task '%s': %w", id, err)
	}
	if exists == 0 {
		return fmt.Errorf("task with ID '%s': %w", id, ErrTaskNotFound)
	}

	var children int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM tasks WHERE parent_id = ?`, id).Scan(&children); err != nil {
		return fmt.Errorf("failed to count subtasks of '%s': %w", id, err)
	}
	if children > 0 {
		return fmt.Errorf("task with ID '%s' has %d subtask(s): %w", id, children, ErrHasSubtasks)
	}

	if _, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task '%s': %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete for task '%s': %w", id, err)
	}
	return nil
}

// CountTasks reports how many tasks match the filter.
func (s *SQLiteTaskStore) CountTasks(filter *TaskFilter) (int, error) {
	where, args := buildWhere(filter)
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

// HasSubtasks reports whether any task references id as its parent.
func (s *SQLiteTaskStore) HasSubtasks(id string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE parent_id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count subtasks of '%s': %w", id, err)
	}
	return n > 0, nil
}

// Subtasks retrieves the direct children of a task, oldest first.
func (s *SQLiteTaskStore) Subtasks(parentID string) ([]models.Task, error) {
	pid := parentID
	return s.ListTasks(&TaskFilter{ParentID: &pid}, OrderCreatedAsc)
}

const selectColumns = `SELECT id, title, description, status, priority, due_date, parent_id, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(r rowScanner) (models.Task, error) {
	var (
		task      models.Task
		status    string
		priority  string
		dueDate   sql.NullString
		parentID  sql.NullString
		createdAt string
		updatedAt string
	)
	err := r.Scan(&task.ID, &task.Title, &task.Description, &status, &priority, &dueDate, &parentID, &createdAt, &updatedAt)
	if err != nil {
		return models.Task{}, err
	}

	task.Status = models.ParseStatus(status)
	task.Priority = models.ParsePriority(priority)
	if dueDate.Valid && dueDate.String != "" {
		d, err := parseStoredTime(dueDate.String)
		if err != nil {
			return models.Task{}, err
		}
		task.DueDate = &d
	}
	if parentID.Valid && parentID.String != "" {
		pid := parentID.String
		task.ParentID = &pid
	}
	if task.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return models.Task{}, err
	}
	if task.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func buildWhere(filter *TaskFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}
	var (
		clauses []string
		args    []any
	)
	if filter.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.RootsOnly {
		clauses = append(clauses, "parent_id IS NULL")
	} else if filter.ParentID != nil {
		clauses = append(clauses, "parent_id = ?")
		args = append(args, *filter.ParentID)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
