package tui

import (
	"github.com/hylla/projectarium/internal/domain"
	"github.com/hylla/projectarium/internal/launch"
)

// Launcher opens external programs for a project.
type Launcher interface {
	Open(launch.Action, domain.Project) error
	CopyPath(domain.Project) error
}

type Option func(*Model)

// WithLauncher sets the process launcher used by the open and yank keys.
func WithLauncher(l Launcher) Option {
	return func(m *Model) {
		m.launcher = l
	}
}

// WithConfirmDelete toggles the delete-project confirmation prompt.
func WithConfirmDelete(enabled bool) Option {
	return func(m *Model) {
		m.confirmDelete = enabled
	}
}

func WithShowLanguage(enabled bool) Option {
	return func(m *Model) {
		m.showLanguage = enabled
	}
}
