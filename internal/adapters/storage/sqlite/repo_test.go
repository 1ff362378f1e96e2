package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hylla/projectarium/internal/app"
	"github.com/hylla/projectarium/internal/domain"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "nested", "projectarium.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func createProject(t *testing.T, repo *Repository, name string, status domain.Status, priority int) domain.Project {
	t.Helper()
	p, err := domain.NewProject(domain.ProjectInput{Name: name, Path: "/code/" + name, Language: "Go"})
	require.NoError(t, err)
	p.Status = status
	p.Priority = priority
	p.ID, err = repo.CreateProject(context.Background(), p)
	require.NoError(t, err)
	return p
}

func TestRepository_ProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	p := createProject(t, repo, "goverse", domain.StatusBacklog, 0)
	require.Positive(t, p.ID)

	loaded, err := repo.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "goverse", loaded.Name)
	assert.Equal(t, domain.StatusBacklog, loaded.Status)
	assert.Equal(t, "", loaded.File)

	loaded.Status = domain.StatusActive
	loaded.Priority = 7
	loaded.File = "cli/main.go"
	require.NoError(t, repo.UpdateProject(ctx, loaded))

	again, err := repo.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, again.Status)
	assert.Equal(t, 7, again.Priority)
	assert.Equal(t, "cli/main.go", again.File)

	_, err = repo.GetProject(ctx, 999)
	assert.ErrorIs(t, err, app.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateProject(ctx, domain.Project{ID: 999, Name: "x", Path: "/x"}), app.ErrNotFound)
}

func TestRepository_ListProjectsOrdersAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	createProject(t, repo, "b", domain.StatusBacklog, 0)
	createProject(t, repo, "a", domain.StatusBacklog, 0)
	createProject(t, repo, "Top", domain.StatusBacklog, 9)
	createProject(t, repo, "elsewhere", domain.StatusDone, 50)

	backlog := domain.StatusBacklog
	projects, err := repo.ListProjects(ctx, &backlog)
	require.NoError(t, err)
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Top", "a", "b"}, names)

	all, err := repo.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepository_ConstraintErrors(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	createProject(t, repo, "dup", domain.StatusBacklog, 0)

	_, err := repo.CreateProject(ctx, domain.Project{Name: "dup", Path: "/x", Status: domain.StatusBacklog})
	assert.ErrorIs(t, err, app.ErrDuplicateName)

	_, err = repo.CreateProject(ctx, domain.Project{Name: "long", Path: "/x", Status: domain.StatusBacklog, Description: strings.Repeat("x", 30)})
	assert.ErrorIs(t, err, domain.ErrDescriptionTooLong)

	owner := createProject(t, repo, "owner", domain.StatusActive, 0)
	_, err = repo.CreateTodoItem(ctx, domain.TodoItem{ProjectID: owner.ID, Description: "same"})
	require.NoError(t, err)
	_, err = repo.CreateTodoItem(ctx, domain.TodoItem{ProjectID: owner.ID, Description: "same"})
	assert.ErrorIs(t, err, app.ErrDuplicateTodo)
}

func TestRepository_TodoItemsAndLiveCount(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	p := createProject(t, repo, "todua", domain.StatusActive, 0)

	var ids []int64
	for _, desc := range []string{"first", "second", "third"} {
		item, err := domain.NewTodoItem(p.ID, desc)
		require.NoError(t, err)
		id, err := repo.CreateTodoItem(ctx, item)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	second, err := repo.GetTodoItem(ctx, ids[1])
	require.NoError(t, err)
	second.SoftDelete()
	require.NoError(t, repo.UpdateTodoItem(ctx, second))

	live, err := repo.ListTodoItems(ctx, p.ID, false)
	require.NoError(t, err)
	require.Len(t, live, 2)
	assert.Equal(t, "first", live[0].Description)
	assert.Equal(t, "third", live[1].Description)

	all, err := repo.ListTodoItems(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	loaded, err := repo.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.TodoCount)

	_, err = repo.GetTodoItem(ctx, 12345)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestRepository_DeleteProjectSoftDeletesItems(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	p := createProject(t, repo, "doomed", domain.StatusDone, 0)
	itemID, err := repo.CreateTodoItem(ctx, domain.TodoItem{ProjectID: p.ID, Description: "orphaned"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProject(ctx, p.ID))

	_, err = repo.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, app.ErrNotFound)
	item, err := repo.GetTodoItem(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, item.Deleted)
	assert.Zero(t, item.ProjectID)

	assert.ErrorIs(t, repo.DeleteProject(ctx, p.ID), app.ErrNotFound)
}

func TestRepository_ExplicitIDsAndIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	empty, err := repo.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	id, err := repo.CreateProject(ctx, domain.Project{ID: 42, Name: "imported", Path: "/x", Status: domain.StatusAbandoned})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	empty, err = repo.IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestRepository_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "projectarium.db")
	repo, err := Open(path)
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, domain.Project{Name: "persisted", Path: "/x", Status: domain.StatusBacklog})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	projects, err := reopened.ListProjects(ctx, nil)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "persisted", projects[0].Name)

	var fk int
	require.NoError(t, reopened.db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestRepository_WithinTxCommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	err := repo.WithinTx(ctx, func(tx app.Repository) error {
		_, err := tx.CreateProject(ctx, domain.Project{Name: "kept", Path: "/kept", Status: domain.StatusBacklog})
		return err
	})
	require.NoError(t, err)

	err = repo.WithinTx(ctx, func(tx app.Repository) error {
		if _, err := tx.CreateProject(ctx, domain.Project{Name: "dropped", Path: "/dropped", Status: domain.StatusBacklog}); err != nil {
			return err
		}
		_, err := tx.CreateProject(ctx, domain.Project{Name: "kept", Path: "/again", Status: domain.StatusBacklog})
		return err
	})
	assert.ErrorIs(t, err, app.ErrDuplicateName)

	projects, err := repo.ListProjects(ctx, nil)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "kept", projects[0].Name)
}

func TestRepository_DeleteProjectJoinsOuterTx(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	p := createProject(t, repo, "survivor", domain.StatusActive, 0)
	_, err := repo.CreateTodoItem(ctx, domain.TodoItem{ProjectID: p.ID, Description: "still live"})
	require.NoError(t, err)

	err = repo.WithinTx(ctx, func(tx app.Repository) error {
		if err := tx.DeleteProject(ctx, p.ID); err != nil {
			return err
		}
		return tx.DeleteProject(ctx, p.ID)
	})
	assert.ErrorIs(t, err, app.ErrNotFound)

	loaded, err := repo.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.TodoCount)
}

func TestImportSnapshotIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	createProject(t, repo, "taken", domain.StatusBacklog, 0)
	svc := app.NewService(repo, time.Now)

	err := svc.ImportSnapshot(ctx, app.Snapshot{
		Version: app.SnapshotVersion,
		Projects: []app.SnapshotProject{
			{ID: 5, Name: "fresh", Path: "/code/fresh", Status: "Active"},
			{ID: 9, Name: "taken", Path: "/code/other", Status: "Done"},
		},
		TodoItems: []app.SnapshotTodoItem{{ID: 3, ProjectID: 5, Description: "never lands"}},
	})
	require.ErrorIs(t, err, app.ErrDuplicateName)

	projects, err := repo.ListProjects(ctx, nil)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "taken", projects[0].Name)
	_, err = repo.GetTodoItem(ctx, 3)
	assert.ErrorIs(t, err, app.ErrNotFound)
}
