package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/hylla/projectarium/internal/config"
	"github.com/hylla/projectarium/internal/domain"
)

// ErrNoFile and related errors describe launch failures.
var (
	ErrNoFile      = errors.New("project has no file set")
	ErrNoPath      = errors.New("project has no path set")
	ErrEmptyArgv   = errors.New("launch command is empty")
	ErrUnknownKind = errors.New("unknown launch action")
)

// Action identifies what to open for a project.
type Action int

// Action values.
const (
	ActionDir Action = iota
	ActionEditor
	ActionBoth
	ActionTmux
)

// String returns a short label for status lines.
func (a Action) String() string {
	switch a {
	case ActionDir:
		return "directory"
	case ActionEditor:
		return "editor"
	case ActionBoth:
		return "directory + editor"
	case ActionTmux:
		return "tmux session"
	default:
		return "unknown"
	}
}

// Runner starts a process without waiting for it.
type Runner interface {
	Start(argv []string) error
}

// Logger receives launch events.
type Logger interface {
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

// ExecRunner starts argv with os/exec and reaps it in the background.
type ExecRunner struct{}

// Start starts argv detached from the caller.
func (ExecRunner) Start(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Launcher expands configured templates for a project and hands them to a Runner.
type Launcher struct {
	cfg       config.LaunchConfig
	runner    Runner
	logger    Logger
	copyToClp func(string) error
}

// Option customizes a Launcher.
type Option func(*Launcher)

// WithLogger sets the event logger.
func WithLogger(logger Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(l *Launcher) {
		if write != nil {
			l.copyToClp = write
		}
	}
}

// New constructs a Launcher. A nil runner uses ExecRunner.
func New(cfg config.LaunchConfig, runner Runner, opts ...Option) *Launcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	l := &Launcher{
		cfg:       cfg,
		runner:    runner,
		copyToClp: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open launches action for project.
func (l *Launcher) Open(action Action, project domain.Project) error {
	if strings.TrimSpace(project.Path) == "" {
		return ErrNoPath
	}
	switch action {
	case ActionDir:
		return l.start(project, l.cfg.Terminal)
	case ActionEditor:
		if strings.TrimSpace(project.File) == "" {
			return ErrNoFile
		}
		return l.start(project, l.cfg.Terminal, l.cfg.Editor)
	case ActionBoth:
		if err := l.start(project, l.cfg.Terminal); err != nil {
			return err
		}
		if strings.TrimSpace(project.File) == "" {
			return nil
		}
		return l.start(project, l.cfg.Terminal, l.cfg.Editor)
	case ActionTmux:
		return l.start(project, l.cfg.Terminal, l.cfg.Tmux)
	default:
		return ErrUnknownKind
	}
}

// CopyPath writes the project path to the system clipboard.
func (l *Launcher) CopyPath(project domain.Project) error {
	if strings.TrimSpace(project.Path) == "" {
		return ErrNoPath
	}
	if err := l.copyToClp(project.Path); err != nil {
		return fmt.Errorf("copy path: %w", err)
	}
	return nil
}

// start expands and concatenates templates, then runs the result.
func (l *Launcher) start(project domain.Project, templates ...[]string) error {
	argv := Expand(project, templates...)
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return ErrEmptyArgv
	}
	if err := l.runner.Start(argv); err != nil {
		if l.logger != nil {
			l.logger.Warn("launch failed", "project", project.Name, "argv", argv, "err", err)
		}
		return err
	}
	if l.logger != nil {
		l.logger.Info("launched", "project", project.Name, "argv", argv)
	}
	return nil
}

// Expand substitutes project tokens into each template and joins them.
func Expand(project domain.Project, templates ...[]string) []string {
	replacer := strings.NewReplacer(
		config.TokenPath, project.Path,
		config.TokenFile, project.File,
		config.TokenSession, SessionName(project.Name),
	)
	out := make([]string, 0)
	for _, tmpl := range templates {
		for _, arg := range tmpl {
			out = append(out, replacer.Replace(arg))
		}
	}
	return out
}

// SessionName derives a tmux session name from a project name.
func SessionName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}
