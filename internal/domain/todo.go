package domain

import "strings"

// TodoItem represents one checklist entry attached to a project.
type TodoItem struct {
	ID          int64
	ProjectID   int64
	Description string
	Priority    int
	Deleted     bool
}

// NewTodoItem validates and constructs a live todo item.
func NewTodoItem(projectID int64, description string) (TodoItem, error) {
	if projectID <= 0 {
		return TodoItem{}, ErrInvalidID
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return TodoItem{}, ErrInvalidDescription
	}
	return TodoItem{
		ProjectID:   projectID,
		Description: description,
	}, nil
}

// Edit replaces the description.
func (t *TodoItem) Edit(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrInvalidDescription
	}
	t.Description = description
	return nil
}

// SoftDelete hides the item without removing its row.
func (t *TodoItem) SoftDelete() {
	t.Deleted = true
}
