package launch

import (
	"errors"
	"io"
	"testing"

	charmLog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hylla/projectarium/internal/config"
	"github.com/hylla/projectarium/internal/domain"
)

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Start(argv []string) error {
	f.calls = append(f.calls, append([]string(nil), argv...))
	return f.err
}

func testProject() domain.Project {
	return domain.Project{
		Name: "Mission-Uplink Core",
		Path: "/code/mission",
		File: "main.go",
	}
}

func newTestLauncher(runner Runner, opts ...Option) *Launcher {
	opts = append([]Option{WithLogger(charmLog.New(io.Discard))}, opts...)
	return New(config.Default("/tmp/x.db").Launch, runner, opts...)
}

func TestSessionName(t *testing.T) {
	assert.Equal(t, "mission_uplink_core", SessionName(" Mission-Uplink Core "))
	assert.Equal(t, "goverse", SessionName("goverse"))
}

func TestOpenDir(t *testing.T) {
	runner := &fakeRunner{}
	l := newTestLauncher(runner)

	require.NoError(t, l.Open(ActionDir, testProject()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"gnome-terminal", "--maximize", "--working-directory=/code/mission"}, runner.calls[0])
}

func TestOpenEditorRequiresFile(t *testing.T) {
	runner := &fakeRunner{}
	l := newTestLauncher(runner)

	p := testProject()
	p.File = ""
	assert.ErrorIs(t, l.Open(ActionEditor, p), ErrNoFile)
	assert.Empty(t, runner.calls)

	require.NoError(t, l.Open(ActionEditor, testProject()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"gnome-terminal", "--maximize", "--working-directory=/code/mission",
		"--", "nvim", "main.go",
	}, runner.calls[0])
}

func TestOpenEditorKeepsFileAsOneArgument(t *testing.T) {
	runner := &fakeRunner{}
	l := newTestLauncher(runner)

	p := testProject()
	p.File = "notes dir/a; rm -rf x.md"
	require.NoError(t, l.Open(ActionEditor, p))
	require.Len(t, runner.calls, 1)
	argv := runner.calls[0]
	assert.Equal(t, []string{"--", "nvim", "notes dir/a; rm -rf x.md"}, argv[len(argv)-3:])
	assert.NotContains(t, argv, "bash")
}

func TestOpenBothSkipsEditorWithoutFile(t *testing.T) {
	runner := &fakeRunner{}
	l := newTestLauncher(runner)

	require.NoError(t, l.Open(ActionBoth, testProject()))
	assert.Len(t, runner.calls, 2)

	runner.calls = nil
	p := testProject()
	p.File = ""
	require.NoError(t, l.Open(ActionBoth, p))
	assert.Len(t, runner.calls, 1)
}

func TestOpenTmux(t *testing.T) {
	runner := &fakeRunner{}
	l := newTestLauncher(runner)

	require.NoError(t, l.Open(ActionTmux, testProject()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"gnome-terminal", "--maximize", "--working-directory=/code/mission",
		"--", "tmux", "new-session", "-A", "-s", "mission_uplink_core", "-c", "/code/mission",
	}, runner.calls[0])
}

func TestOpenPropagatesRunnerErrors(t *testing.T) {
	boom := errors.New("boom")
	l := newTestLauncher(&fakeRunner{err: boom})
	assert.ErrorIs(t, l.Open(ActionDir, testProject()), boom)
	assert.ErrorIs(t, l.Open(Action(42), testProject()), ErrUnknownKind)
	assert.ErrorIs(t, l.Open(ActionDir, domain.Project{Name: "x"}), ErrNoPath)
}

func TestCopyPath(t *testing.T) {
	var copied string
	l := newTestLauncher(&fakeRunner{}, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	require.NoError(t, l.CopyPath(testProject()))
	assert.Equal(t, "/code/mission", copied)
	assert.ErrorIs(t, l.CopyPath(domain.Project{}), ErrNoPath)
}

func TestExecRunnerRejectsEmptyArgv(t *testing.T) {
	assert.ErrorIs(t, ExecRunner{}.Start(nil), ErrEmptyArgv)
}
