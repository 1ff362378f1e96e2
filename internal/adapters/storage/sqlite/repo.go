package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hylla/projectarium/internal/app"
	"github.com/hylla/projectarium/internal/domain"
	_ "modernc.org/sqlite"
)

// driverName defines a package constant value.
const driverName = "sqlite"

// pragmaQuery enables foreign keys on every pooled connection.
const pragmaQuery = "_pragma=foreign_keys(1)"

// querier is the statement surface shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository represents repository data used by this package.
type Repository struct {
	db *sql.DB
	// q is db, or tx for a transaction-bound copy.
	q  querier
	tx *sql.Tx
}

// Open opens the requested operation.
func Open(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	db, err := sql.Open(driverName, path+"?"+pragmaQuery)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return newRepository(db)
}

// OpenInMemory opens a private in-memory store.
func OpenInMemory() (*Repository, error) {
	db, err := sql.Open(driverName, "file::memory:?"+pragmaQuery)
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	// every pooled connection would otherwise see its own empty database.
	db.SetMaxOpenConns(1)
	return newRepository(db)
}

// newRepository migrates db and wraps it.
func newRepository(db *sql.DB) (*Repository, error) {
	repo := &Repository{db: db, q: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the requested operation.
func (r *Repository) Close() error {
	return r.db.Close()
}

// WithinTx runs fn against a copy of r bound to one transaction.
func (r *Repository) WithinTx(ctx context.Context, fn func(app.Repository) error) error {
	return r.withTx(ctx, func(txRepo *Repository) error {
		return fn(txRepo)
	})
}

// withTx commits when fn succeeds and rolls back otherwise. A transaction-bound r joins its own transaction.
func (r *Repository) withTx(ctx context.Context, fn func(*Repository) error) (err error) {
	if r.tx != nil {
		return fn(r)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&Repository{db: r.db, q: tx, tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

// migrate handles migrate.
func (r *Repository) migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT CHECK(LENGTH(description) <= 29),
			path TEXT NOT NULL,
			file TEXT,
			priority INTEGER DEFAULT 0,
			status TEXT NOT NULL,
			language TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS todo (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL UNIQUE,
			priority INTEGER DEFAULT 0,
			deleted BOOLEAN NOT NULL DEFAULT 0,
			project_id INTEGER,
			FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE SET NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_projects_status_priority ON projects(status, priority DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_todo_project_deleted ON todo(project_id, deleted);`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// projectColumns lists the selected project columns including the live todo count.
const projectColumns = `
	p.id, p.name, COALESCE(p.description, ''), p.path, COALESCE(p.file, ''), COALESCE(p.priority, 0), p.status, COALESCE(p.language, ''),
	(SELECT COUNT(*) FROM todo t WHERE t.project_id = p.id AND t.deleted = 0)
`

// CreateProject creates project.
func (r *Repository) CreateProject(ctx context.Context, p domain.Project) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO projects(id, name, description, path, file, priority, status, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, nullableID(p.ID), p.Name, p.Description, p.Path, p.File, p.Priority, p.Status.String(), p.Language)
	if err != nil {
		return 0, translateConstraintErr(err)
	}
	return res.LastInsertId()
}

// UpdateProject updates state for the requested operation.
func (r *Repository) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, description = ?, path = ?, file = ?, priority = ?, status = ?, language = ?
		WHERE id = ?
	`, p.Name, p.Description, p.Path, p.File, p.Priority, p.Status.String(), p.Language, p.ID)
	if err != nil {
		return translateConstraintErr(err)
	}
	return translateNoRows(res)
}

// GetProject returns project.
func (r *Repository) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, app.ErrNotFound
	}
	return p, err
}

// ListProjects lists projects in board order.
func (r *Repository) ListProjects(ctx context.Context, status *domain.Status) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p`
	args := make([]any, 0, 1)
	if status != nil {
		query += ` WHERE p.status = ?`
		args = append(args, status.String())
	}
	query += ` ORDER BY p.priority DESC, LOWER(p.name) ASC, p.id ASC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProject soft-deletes the project's todo items and removes the project in one transaction.
func (r *Repository) DeleteProject(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(txRepo *Repository) error {
		if _, err := txRepo.q.ExecContext(ctx, `UPDATE todo SET deleted = 1 WHERE project_id = ?`, id); err != nil {
			return err
		}
		res, err := txRepo.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return translateNoRows(res)
	})
}

// CreateTodoItem creates todo item.
func (r *Repository) CreateTodoItem(ctx context.Context, item domain.TodoItem) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO todo(id, description, priority, deleted, project_id)
		VALUES (?, ?, ?, ?, ?)
	`, nullableID(item.ID), item.Description, item.Priority, item.Deleted, nullableID(item.ProjectID))
	if err != nil {
		return 0, translateConstraintErr(err)
	}
	return res.LastInsertId()
}

// UpdateTodoItem updates state for the requested operation.
func (r *Repository) UpdateTodoItem(ctx context.Context, item domain.TodoItem) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE todo
		SET description = ?, priority = ?, deleted = ?, project_id = ?
		WHERE id = ?
	`, item.Description, item.Priority, item.Deleted, nullableID(item.ProjectID), item.ID)
	if err != nil {
		return translateConstraintErr(err)
	}
	return translateNoRows(res)
}

// GetTodoItem returns todo item.
func (r *Repository) GetTodoItem(ctx context.Context, id int64) (domain.TodoItem, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, description, COALESCE(priority, 0), deleted, COALESCE(project_id, 0)
		FROM todo WHERE id = ?
	`, id)
	item, err := scanTodoItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TodoItem{}, app.ErrNotFound
	}
	return item, err
}

// ListTodoItems lists a project's todo items in insertion order.
func (r *Repository) ListTodoItems(ctx context.Context, projectID int64, includeDeleted bool) ([]domain.TodoItem, error) {
	query := `
		SELECT id, description, COALESCE(priority, 0), deleted, COALESCE(project_id, 0)
		FROM todo
		WHERE project_id = ?
	`
	if !includeDeleted {
		query += ` AND deleted = 0`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.q.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TodoItem, 0)
	for rows.Next() {
		item, err := scanTodoItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// IsEmpty reports whether both tables are empty.
func (r *Repository) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT (SELECT COUNT(*) FROM projects) + (SELECT COUNT(*) FROM todo)`).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// scanner represents scanner data used by this package.
type scanner interface {
	Scan(dest ...any) error
}

// scanProject scans project.
func scanProject(s scanner) (domain.Project, error) {
	var (
		p         domain.Project
		statusRaw string
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Path, &p.File, &p.Priority, &statusRaw, &p.Language, &p.TodoCount); err != nil {
		return domain.Project{}, err
	}
	status, err := domain.ParseStatus(statusRaw)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project %d status %q: %w", p.ID, statusRaw, err)
	}
	p.Status = status
	return p, nil
}

// scanTodoItem scans todo item.
func scanTodoItem(s scanner) (domain.TodoItem, error) {
	var item domain.TodoItem
	if err := s.Scan(&item.ID, &item.Description, &item.Priority, &item.Deleted, &item.ProjectID); err != nil {
		return domain.TodoItem{}, err
	}
	return item, nil
}

// translateNoRows translates no rows.
func translateNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return app.ErrNotFound
	}
	return nil
}

// translateConstraintErr maps sqlite constraint failures onto app and domain errors.
func translateConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed: projects.name"):
		return fmt.Errorf("%w: %v", app.ErrDuplicateName, err)
	case strings.Contains(msg, "unique constraint failed: todo.description"):
		return fmt.Errorf("%w: %v", app.ErrDuplicateTodo, err)
	case strings.Contains(msg, "check constraint failed"):
		return fmt.Errorf("%w: %v", domain.ErrDescriptionTooLong, err)
	default:
		return err
	}
}

// nullableID stores non-positive ids as NULL so sqlite assigns or clears them.
func nullableID(id int64) any {
	if id <= 0 {
		return nil
	}
	return id
}
