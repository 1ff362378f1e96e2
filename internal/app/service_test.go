package app

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/hylla/projectarium/internal/domain"
)

type fakeRepo struct {
	projects map[int64]domain.Project
	items    map[int64]domain.TodoItem
	nextID   int64
	writes   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		projects: map[int64]domain.Project{},
		items:    map[int64]domain.TodoItem{},
	}
}

func (f *fakeRepo) allocID(id int64) int64 {
	if id > 0 {
		f.nextID = max(f.nextID, id)
		return id
	}
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) CreateProject(_ context.Context, p domain.Project) (int64, error) {
	for _, existing := range f.projects {
		if existing.Name == p.Name {
			return 0, ErrDuplicateName
		}
	}
	p.ID = f.allocID(p.ID)
	p.TodoCount = 0
	f.projects[p.ID] = p
	f.writes++
	return p.ID, nil
}

func (f *fakeRepo) UpdateProject(_ context.Context, p domain.Project) error {
	if _, ok := f.projects[p.ID]; !ok {
		return ErrNotFound
	}
	f.projects[p.ID] = p
	f.writes++
	return nil
}

func (f *fakeRepo) GetProject(_ context.Context, id int64) (domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return domain.Project{}, ErrNotFound
	}
	p.TodoCount = f.liveCount(id)
	return p, nil
}

func (f *fakeRepo) ListProjects(_ context.Context, status *domain.Status) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		if status != nil && p.Status != *status {
			continue
		}
		p.TodoCount = f.liveCount(p.ID)
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) DeleteProject(_ context.Context, id int64) error {
	if _, ok := f.projects[id]; !ok {
		return ErrNotFound
	}
	for itemID, item := range f.items {
		if item.ProjectID == id {
			item.Deleted = true
			item.ProjectID = 0
			f.items[itemID] = item
		}
	}
	delete(f.projects, id)
	f.writes++
	return nil
}

func (f *fakeRepo) CreateTodoItem(_ context.Context, item domain.TodoItem) (int64, error) {
	for _, existing := range f.items {
		if existing.Description == item.Description {
			return 0, ErrDuplicateTodo
		}
	}
	item.ID = f.allocID(item.ID)
	f.items[item.ID] = item
	f.writes++
	return item.ID, nil
}

func (f *fakeRepo) UpdateTodoItem(_ context.Context, item domain.TodoItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return ErrNotFound
	}
	f.items[item.ID] = item
	f.writes++
	return nil
}

func (f *fakeRepo) GetTodoItem(_ context.Context, id int64) (domain.TodoItem, error) {
	item, ok := f.items[id]
	if !ok {
		return domain.TodoItem{}, ErrNotFound
	}
	return item, nil
}

func (f *fakeRepo) ListTodoItems(_ context.Context, projectID int64, includeDeleted bool) ([]domain.TodoItem, error) {
	out := make([]domain.TodoItem, 0)
	for _, item := range f.items {
		if item.ProjectID != projectID {
			continue
		}
		if item.Deleted && !includeDeleted {
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b domain.TodoItem) int { return int(a.ID - b.ID) })
	return out, nil
}

func (f *fakeRepo) IsEmpty(context.Context) (bool, error) {
	return len(f.projects) == 0 && len(f.items) == 0, nil
}

func (f *fakeRepo) WithinTx(_ context.Context, fn func(Repository) error) error {
	projects, items, nextID, writes := maps.Clone(f.projects), maps.Clone(f.items), f.nextID, f.writes
	if err := fn(f); err != nil {
		f.projects, f.items, f.nextID, f.writes = projects, items, nextID, writes
		return err
	}
	return nil
}

func (f *fakeRepo) liveCount(projectID int64) int {
	n := 0
	for _, item := range f.items {
		if item.ProjectID == projectID && !item.Deleted {
			n++
		}
	}
	return n
}

func newTestService(repo *fakeRepo) *Service {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return NewService(repo, func() time.Time { return now })
}

func mustCreate(t *testing.T, svc *Service, name string) domain.Project {
	t.Helper()
	p, err := svc.CreateProject(context.Background(), domain.ProjectInput{Name: name, Path: "/code/" + name})
	if err != nil {
		t.Fatalf("CreateProject(%q) error = %v", name, err)
	}
	return p
}

// TestListColumnOrdersByPriorityThenName verifies behavior for the covered scenario.
func TestListColumnOrdersByPriorityThenName(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	p1 := mustCreate(t, svc, "b")
	mustCreate(t, svc, "a")
	high := mustCreate(t, svc, "Zulu")
	if _, _, err := svc.AdjustPriority(ctx, high.ID, 3); err != nil {
		t.Fatalf("AdjustPriority() error = %v", err)
	}
	if _, err := svc.AddTodoItem(ctx, p1.ID, "first"); err != nil {
		t.Fatalf("AddTodoItem() error = %v", err)
	}

	cards, err := svc.ListColumn(ctx, domain.StatusBacklog)
	if err != nil {
		t.Fatalf("ListColumn() error = %v", err)
	}
	var names []string
	for _, c := range cards {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "Zulu,a,b" {
		t.Fatalf("unexpected order %v", names)
	}
	if cards[2].TodoCount != 1 {
		t.Fatalf("expected live todo count 1 for b, got %d", cards[2].TodoCount)
	}
	if _, err := svc.ListColumn(ctx, domain.Status(9)); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

// TestCreateProjectValidatesBeforeWriting verifies behavior for the covered scenario.
func TestCreateProjectValidatesBeforeWriting(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.CreateProject(context.Background(), domain.ProjectInput{Name: "x"})
	if !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no store writes, got %d", repo.writes)
	}

	created := mustCreate(t, svc, "goverse")
	if created.Status != domain.StatusBacklog || created.Priority != 0 || created.ID == 0 {
		t.Fatalf("unexpected created project %#v", created)
	}
	if _, err := svc.CreateProject(context.Background(), domain.ProjectInput{Name: "goverse", Path: "/x"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

// TestUpdateProjectField verifies behavior for the covered scenario.
func TestUpdateProjectField(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())
	p := mustCreate(t, svc, "snr")

	updated, err := svc.UpdateProjectField(ctx, p.ID, domain.FieldLanguage, "Lua")
	if err != nil {
		t.Fatalf("UpdateProjectField() error = %v", err)
	}
	if updated.Language != "Lua" {
		t.Fatalf("unexpected language %q", updated.Language)
	}
	if _, err := svc.UpdateProjectField(ctx, p.ID, domain.FieldDescription, strings.Repeat("x", 30)); !errors.Is(err, domain.ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}
	if _, err := svc.UpdateProjectField(ctx, 999, domain.FieldName, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestAdjustPriorityAtBoundsSkipsWrite verifies behavior for the covered scenario.
func TestAdjustPriorityAtBoundsSkipsWrite(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)
	p := mustCreate(t, svc, "x")

	before := repo.writes
	_, changed, err := svc.AdjustPriority(ctx, p.ID, -1)
	if err != nil {
		t.Fatalf("AdjustPriority() error = %v", err)
	}
	if changed || repo.writes != before {
		t.Fatalf("expected no-op at priority 0, changed=%t writes=%d", changed, repo.writes-before)
	}

	stored := repo.projects[p.ID]
	stored.Priority = domain.MaxPriority
	repo.projects[p.ID] = stored
	before = repo.writes
	got, changed, err := svc.AdjustPriority(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("AdjustPriority() error = %v", err)
	}
	if changed || got.Priority != domain.MaxPriority || repo.writes != before {
		t.Fatalf("expected no-op at priority 99, got %d changed=%t", got.Priority, changed)
	}
}

// TestSetProjectStatus verifies behavior for the covered scenario.
func TestSetProjectStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())
	p := mustCreate(t, svc, "x")

	moved, err := svc.SetProjectStatus(ctx, p.ID, domain.StatusActive)
	if err != nil {
		t.Fatalf("SetProjectStatus() error = %v", err)
	}
	if moved.Status != domain.StatusActive {
		t.Fatalf("unexpected status %s", moved.Status)
	}
	backlog, _ := svc.ListColumn(ctx, domain.StatusBacklog)
	active, _ := svc.ListColumn(ctx, domain.StatusActive)
	if len(backlog) != 0 || len(active) != 1 {
		t.Fatalf("expected card to move columns, backlog=%d active=%d", len(backlog), len(active))
	}
	if _, err := svc.SetProjectStatus(ctx, p.ID, domain.Status(-1)); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

// TestTodoItemLifecycle verifies behavior for the covered scenario.
func TestTodoItemLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)
	p := mustCreate(t, svc, "x")

	first, err := svc.AddTodoItem(ctx, p.ID, "one")
	if err != nil {
		t.Fatalf("AddTodoItem() error = %v", err)
	}
	if _, err := svc.AddTodoItem(ctx, p.ID, "two"); err != nil {
		t.Fatalf("AddTodoItem() error = %v", err)
	}
	if _, err := svc.AddTodoItem(ctx, p.ID, " "); !errors.Is(err, domain.ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription, got %v", err)
	}
	if _, err := svc.AddTodoItem(ctx, 404, "orphan"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.EditTodoItem(ctx, first.ID, "one, edited"); err != nil {
		t.Fatalf("EditTodoItem() error = %v", err)
	}
	if err := svc.DeleteTodoItem(ctx, first.ID); err != nil {
		t.Fatalf("DeleteTodoItem() error = %v", err)
	}

	items, err := svc.ListTodoItems(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListTodoItems() error = %v", err)
	}
	if len(items) != 1 || items[0].Description != "two" {
		t.Fatalf("unexpected live items %#v", items)
	}
	row := repo.items[first.ID]
	if !row.Deleted || row.Description != "one, edited" {
		t.Fatalf("expected soft-deleted row to remain, got %#v", row)
	}
	if _, err := svc.EditTodoItem(ctx, first.ID, "zombie"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound editing deleted item, got %v", err)
	}

	got, err := repo.GetProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProject() error = %v", err)
	}
	if got.TodoCount != 1 {
		t.Fatalf("expected todo count 1, got %d", got.TodoCount)
	}
}

// TestDeleteProjectHidesTodoItems verifies behavior for the covered scenario.
func TestDeleteProjectHidesTodoItems(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)
	p := mustCreate(t, svc, "x")
	item, _ := svc.AddTodoItem(ctx, p.ID, "one")

	if err := svc.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if _, err := repo.GetProject(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !repo.items[item.ID].Deleted {
		t.Fatal("expected todo item to be soft-deleted with its project")
	}
	if err := svc.DeleteProject(ctx, 0); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

// TestSeedDemoOnlyOnEmptyStore verifies behavior for the covered scenario.
func TestSeedDemoOnlyOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	seeded, err := svc.SeedDemo(ctx)
	if err != nil {
		t.Fatalf("SeedDemo() error = %v", err)
	}
	if !seeded || len(repo.projects) != 13 || len(repo.items) != 3 {
		t.Fatalf("unexpected seed result seeded=%t projects=%d items=%d", seeded, len(repo.projects), len(repo.items))
	}
	active, _ := svc.ListColumn(ctx, domain.StatusActive)
	if len(active) != 8 {
		t.Fatalf("expected 8 active demo projects, got %d", len(active))
	}

	seeded, err = svc.SeedDemo(ctx)
	if err != nil {
		t.Fatalf("SeedDemo() second call error = %v", err)
	}
	if seeded || len(repo.projects) != 13 {
		t.Fatalf("expected second seed to be a no-op, projects=%d", len(repo.projects))
	}
}
