package app

import (
	"context"

	"github.com/hylla/projectarium/internal/domain"
)

// Repository persists projects and their todo items.
type Repository interface {
	// CreateProject inserts p and returns its id. A positive p.ID is kept as-is.
	CreateProject(context.Context, domain.Project) (int64, error)
	UpdateProject(context.Context, domain.Project) error
	GetProject(context.Context, int64) (domain.Project, error)
	// ListProjects returns projects with live todo counts. A nil status lists every column.
	ListProjects(context.Context, *domain.Status) ([]domain.Project, error)
	// DeleteProject removes the project and soft-deletes its todo items.
	DeleteProject(context.Context, int64) error

	CreateTodoItem(context.Context, domain.TodoItem) (int64, error)
	UpdateTodoItem(context.Context, domain.TodoItem) error
	GetTodoItem(context.Context, int64) (domain.TodoItem, error)
	ListTodoItems(context.Context, int64, bool) ([]domain.TodoItem, error)

	// IsEmpty reports whether neither table holds any rows.
	IsEmpty(context.Context) (bool, error)

	// WithinTx runs fn against a transaction-bound repository and rolls back when fn fails.
	WithinTx(context.Context, func(Repository) error) error
}
