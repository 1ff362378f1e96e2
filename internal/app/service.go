package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hylla/projectarium/internal/domain"
)

// Clock returns the current time.
type Clock func() time.Time

// Service coordinates board use cases over a Repository.
type Service struct {
	repo  Repository
	clock Clock
}

// NewService constructs a new value for this package.
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:  repo,
		clock: clock,
	}
}

// ListColumn returns one column's cards in board order with live todo counts.
func (s *Service) ListColumn(ctx context.Context, status domain.Status) ([]domain.Project, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	projects, err := s.repo.ListProjects(ctx, &status)
	if err != nil {
		return nil, err
	}
	domain.SortProjects(projects)
	return projects, nil
}

// CreateProject validates input and stores a new backlog project.
func (s *Service) CreateProject(ctx context.Context, in domain.ProjectInput) (domain.Project, error) {
	project, err := domain.NewProject(in)
	if err != nil {
		return domain.Project{}, err
	}
	id, err := s.repo.CreateProject(ctx, project)
	if err != nil {
		return domain.Project{}, err
	}
	project.ID = id
	return project, nil
}

// UpdateProjectField edits one user-editable field.
func (s *Service) UpdateProjectField(ctx context.Context, id int64, field domain.ProjectField, value string) (domain.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := project.SetField(field, value); err != nil {
		return domain.Project{}, err
	}
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// SetProjectStatus moves a project to another column.
func (s *Service) SetProjectStatus(ctx context.Context, id int64, status domain.Status) (domain.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := project.SetStatus(status); err != nil {
		return domain.Project{}, err
	}
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// AdjustPriority shifts priority by delta and reports whether anything was written.
func (s *Service) AdjustPriority(ctx context.Context, id int64, delta int) (domain.Project, bool, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, false, err
	}
	if !project.AdjustPriority(delta) {
		return project, false, nil
	}
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, false, err
	}
	return project, true, nil
}

// DeleteProject removes a project and hides its todo items.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteProject(ctx, id)
}

// ListTodoItems returns the live items of a project in insertion order.
func (s *Service) ListTodoItems(ctx context.Context, projectID int64) ([]domain.TodoItem, error) {
	if projectID <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListTodoItems(ctx, projectID, false)
}

// AddTodoItem appends a todo item to a project.
func (s *Service) AddTodoItem(ctx context.Context, projectID int64, description string) (domain.TodoItem, error) {
	item, err := domain.NewTodoItem(projectID, description)
	if err != nil {
		return domain.TodoItem{}, err
	}
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return domain.TodoItem{}, err
	}
	id, err := s.repo.CreateTodoItem(ctx, item)
	if err != nil {
		return domain.TodoItem{}, err
	}
	item.ID = id
	return item, nil
}

// EditTodoItem replaces a todo item's description.
func (s *Service) EditTodoItem(ctx context.Context, id int64, description string) (domain.TodoItem, error) {
	item, err := s.repo.GetTodoItem(ctx, id)
	if err != nil {
		return domain.TodoItem{}, err
	}
	if item.Deleted {
		return domain.TodoItem{}, ErrNotFound
	}
	if err := item.Edit(description); err != nil {
		return domain.TodoItem{}, err
	}
	if err := s.repo.UpdateTodoItem(ctx, item); err != nil {
		return domain.TodoItem{}, err
	}
	return item, nil
}

// DeleteTodoItem soft-deletes a todo item.
func (s *Service) DeleteTodoItem(ctx context.Context, id int64) error {
	item, err := s.repo.GetTodoItem(ctx, id)
	if err != nil {
		return err
	}
	if item.Deleted {
		return nil
	}
	item.SoftDelete()
	return s.repo.UpdateTodoItem(ctx, item)
}

// SeedDemo fills an empty store with sample projects and reports whether it wrote anything.
func (s *Service) SeedDemo(ctx context.Context) (bool, error) {
	empty, err := s.repo.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}

	var firstID int64
	for i, seed := range demoProjects() {
		project, err := domain.NewProject(seed.input)
		if err != nil {
			return false, fmt.Errorf("seed project %q: %w", seed.input.Name, err)
		}
		project.Status = seed.status
		id, err := s.repo.CreateProject(ctx, project)
		if err != nil {
			return false, fmt.Errorf("seed project %q: %w", seed.input.Name, err)
		}
		if i == 0 {
			firstID = id
		}
	}
	for _, desc := range demoTodoItems() {
		if _, err := s.AddTodoItem(ctx, firstID, desc); err != nil {
			return false, fmt.Errorf("seed todo item %q: %w", desc, err)
		}
	}
	return true, nil
}
