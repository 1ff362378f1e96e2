package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hylla/projectarium/internal/domain"
)

// SnapshotVersion defines a package constant value.
const SnapshotVersion = "projectarium.snapshot.v1"

// Snapshot is a portable JSON copy of the whole board.
type Snapshot struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Projects   []SnapshotProject  `json:"projects"`
	TodoItems  []SnapshotTodoItem `json:"todo_items"`
}

// SnapshotProject represents snapshot project data used by this package.
type SnapshotProject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path"`
	File        string `json:"file,omitempty"`
	Priority    int    `json:"priority"`
	Status      string `json:"status"`
	Language    string `json:"language,omitempty"`
}

// SnapshotTodoItem represents snapshot todo data used by this package.
type SnapshotTodoItem struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id,omitempty"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Deleted     bool   `json:"deleted,omitempty"`
}

// ExportSnapshot collects every project and todo item, including soft-deleted items.
func (s *Service) ExportSnapshot(ctx context.Context) (Snapshot, error) {
	projects, err := s.repo.ListProjects(ctx, nil)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: s.clock().UTC(),
		Projects:   make([]SnapshotProject, 0, len(projects)),
		TodoItems:  make([]SnapshotTodoItem, 0),
	}
	for _, project := range projects {
		snap.Projects = append(snap.Projects, snapshotProjectFromDomain(project))

		items, listErr := s.repo.ListTodoItems(ctx, project.ID, true)
		if listErr != nil {
			return Snapshot{}, listErr
		}
		for _, item := range items {
			snap.TodoItems = append(snap.TodoItems, snapshotTodoItemFromDomain(item))
		}
	}

	snap.sort()
	return snap, nil
}

// ImportSnapshot upserts every project and todo item in the snapshot by id in one transaction.
func (s *Service) ImportSnapshot(ctx context.Context, snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	snap.sort()

	return s.repo.WithinTx(ctx, func(repo Repository) error {
		for _, sp := range snap.Projects {
			project, err := sp.toDomain()
			if err != nil {
				return err
			}
			if err := upsertProject(ctx, repo, project); err != nil {
				return fmt.Errorf("import project %q: %w", project.Name, err)
			}
		}
		for _, st := range snap.TodoItems {
			if err := upsertTodoItem(ctx, repo, st.toDomain()); err != nil {
				return fmt.Errorf("import todo item %d: %w", st.ID, err)
			}
		}
		return nil
	})
}

// Validate checks ids, required fields, unique names, and references.
func (s *Snapshot) Validate() error {
	if s.Version != "" && s.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version: %q", s.Version)
	}

	projectIDs := map[int64]struct{}{}
	projectNames := map[string]struct{}{}
	for i, p := range s.Projects {
		if p.ID <= 0 {
			return fmt.Errorf("projects[%d].id is required", i)
		}
		if _, exists := projectIDs[p.ID]; exists {
			return fmt.Errorf("duplicate project id: %d", p.ID)
		}
		projectIDs[p.ID] = struct{}{}
		project, err := p.toDomain()
		if err != nil {
			return fmt.Errorf("projects[%d]: %w", i, err)
		}
		if _, exists := projectNames[project.Name]; exists {
			return fmt.Errorf("projects[%d]: %w: %q", i, ErrDuplicateName, project.Name)
		}
		projectNames[project.Name] = struct{}{}
	}

	itemIDs := map[int64]struct{}{}
	itemDescriptions := map[string]struct{}{}
	for i, item := range s.TodoItems {
		if item.ID <= 0 {
			return fmt.Errorf("todo_items[%d].id is required", i)
		}
		if _, exists := itemIDs[item.ID]; exists {
			return fmt.Errorf("duplicate todo item id: %d", item.ID)
		}
		itemIDs[item.ID] = struct{}{}
		description := strings.TrimSpace(item.Description)
		if description == "" {
			return fmt.Errorf("todo_items[%d].description is required", i)
		}
		if _, exists := itemDescriptions[description]; exists {
			return fmt.Errorf("todo_items[%d]: %w: %q", i, ErrDuplicateTodo, description)
		}
		itemDescriptions[description] = struct{}{}
		if item.ProjectID == 0 {
			continue
		}
		if _, ok := projectIDs[item.ProjectID]; !ok {
			return fmt.Errorf("todo_items[%d] references unknown project_id %d", i, item.ProjectID)
		}
	}
	return nil
}

// upsertProject handles upsert project.
func upsertProject(ctx context.Context, repo Repository, p domain.Project) error {
	if _, err := repo.GetProject(ctx, p.ID); err == nil {
		return repo.UpdateProject(ctx, p)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	_, err := repo.CreateProject(ctx, p)
	return err
}

// upsertTodoItem handles upsert todo item.
func upsertTodoItem(ctx context.Context, repo Repository, item domain.TodoItem) error {
	if _, err := repo.GetTodoItem(ctx, item.ID); err == nil {
		return repo.UpdateTodoItem(ctx, item)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	_, err := repo.CreateTodoItem(ctx, item)
	return err
}

// sort orders snapshot rows deterministically by id.
func (s *Snapshot) sort() {
	slices.SortFunc(s.Projects, func(a, b SnapshotProject) int {
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortFunc(s.TodoItems, func(a, b SnapshotTodoItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// snapshotProjectFromDomain converts a domain project into a snapshot row.
func snapshotProjectFromDomain(p domain.Project) SnapshotProject {
	return SnapshotProject{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Path:        p.Path,
		File:        p.File,
		Priority:    p.Priority,
		Status:      p.Status.String(),
		Language:    p.Language,
	}
}

// snapshotTodoItemFromDomain converts a domain todo item into a snapshot row.
func snapshotTodoItemFromDomain(t domain.TodoItem) SnapshotTodoItem {
	return SnapshotTodoItem{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Description: t.Description,
		Priority:    t.Priority,
		Deleted:     t.Deleted,
	}
}

// toDomain validates a snapshot project and converts it.
func (p SnapshotProject) toDomain() (domain.Project, error) {
	project, err := domain.NewProject(domain.ProjectInput{
		Name:        p.Name,
		Description: p.Description,
		Path:        p.Path,
		File:        p.File,
		Language:    p.Language,
	})
	if err != nil {
		return domain.Project{}, err
	}
	status, err := domain.ParseStatus(p.Status)
	if err != nil {
		return domain.Project{}, err
	}
	if !domain.ValidPriority(p.Priority) {
		return domain.Project{}, domain.ErrInvalidPriority
	}
	project.ID = p.ID
	project.Status = status
	project.Priority = p.Priority
	return project, nil
}

// toDomain converts a snapshot todo row.
func (t SnapshotTodoItem) toDomain() domain.TodoItem {
	return domain.TodoItem{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Description: strings.TrimSpace(t.Description),
		Priority:    t.Priority,
		Deleted:     t.Deleted,
	}
}
