package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"

	"github.com/hylla/projectarium/internal/app"
	"github.com/hylla/projectarium/internal/board"
	"github.com/hylla/projectarium/internal/domain"
	"github.com/hylla/projectarium/internal/launch"
)

// inputMode represents a selectable mode.
type inputMode int

// modeNone and related constants define package defaults.
const (
	modeNone inputMode = iota
	modeAddProject
	modePickField
	modeEditField
	modeAddItem
	modeEditItem
	modeConfirmDelete
)

// Model is the bubbletea program for the board. The machine is only touched from Update.
type Model struct {
	machine  *board.Machine
	launcher Launcher

	ready  bool
	width  int
	height int
	err    error

	status string

	help      help.Model
	boardKeys boardKeyMap
	todoKeys  todoKeyMap
	markdown  *markdownRenderer

	mode          inputMode
	input         textinput.Model
	formStep      int
	draft         domain.ProjectInput
	editField     domain.ProjectField
	fieldMatches  []domain.ProjectField
	fieldIndex    int
	pendingDelete domain.Project
	confirmChoice int

	confirmDelete bool
	showLanguage  bool

	// panels caches each rendered column until the machine reports it damaged.
	panels      [domain.StatusCount]string
	overlayView string
}

// loadMsg asks Update to load the board.
type loadMsg struct{}

// NewModel constructs a new value for this package.
func NewModel(machine *board.Machine, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	m := Model{
		machine:       machine,
		status:        "loading...",
		help:          h,
		boardKeys:     newBoardKeyMap(),
		todoKeys:      newTodoKeyMap(),
		markdown:      &markdownRenderer{},
		confirmDelete: true,
		showLanguage:  true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return loadBoard
}

// loadBoard requests the initial board load.
func loadBoard() tea.Msg {
	return loadMsg{}
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.repaint(board.Damage{Full: true})
		return m, nil

	case loadMsg:
		if err := m.machine.Load(context.Background()); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = "ready"
		if m.boardEmpty() {
			m.status = "no projects yet, press a to add one"
		}

	case tea.KeyPressMsg:
		m, cmd = m.handleKey(msg)

	default:
		return m, nil
	}
	m.repaint(m.machine.TakeDamage())
	return m, cmd
}

// repaint re-renders the cached regions named by d.
func (m *Model) repaint(d board.Damage) {
	if !m.ready {
		return
	}
	for i := range m.panels {
		if d.Column(i) {
			m.panels[i] = m.renderPanel(i)
		}
	}
	if d.Full || d.Overlay {
		m.overlayView = m.renderOverlay()
	}
}

// boardEmpty reports whether no column holds a card.
func (m Model) boardEmpty() bool {
	for i := range domain.StatusCount {
		if m.machine.Column(i).Len() > 0 {
			return false
		}
	}
	return true
}

// handleKey routes one key press to the active key table.
func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	if m.err != nil {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.status = "reloading..."
			return m, loadBoard
		}
		return m, nil
	}
	if m.mode != modeNone {
		return m.handleInputModeKey(msg)
	}
	if m.help.ShowAll {
		switch {
		case key.Matches(msg, m.boardKeys.toggleHelp), msg.String() == "esc", msg.String() == "q":
			m.help.ShowAll = false
			m.status = "ready"
		}
		return m, nil
	}
	if m.machine.InTodo() {
		return m.handleTodoKey(msg)
	}
	return m.handleBoardKey(msg)
}

// handleBoardKey handles keys while the overlay is closed.
func (m Model) handleBoardKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	k := m.boardKeys
	switch {
	case key.Matches(msg, k.quit):
		return m, tea.Quit
	case key.Matches(msg, k.toggleHelp):
		m.help.ShowAll = true
		m.status = "help"
		return m, nil
	case key.Matches(msg, k.reload):
		if err := m.machine.Reload(context.Background()); err != nil {
			m.status = "reload failed: " + err.Error()
			return m, nil
		}
		m.status = "reloaded"
		return m, nil
	case key.Matches(msg, k.moveLeft):
		return m.navigate(board.CommandMoveLeft), nil
	case key.Matches(msg, k.moveRight):
		return m.navigate(board.CommandMoveRight), nil
	case key.Matches(msg, k.moveUp):
		return m.navigate(board.CommandMoveUp), nil
	case key.Matches(msg, k.moveDown):
		return m.navigate(board.CommandMoveDown), nil
	case key.Matches(msg, k.progress):
		return m.shift(true), nil
	case key.Matches(msg, k.regress):
		return m.shift(false), nil
	case key.Matches(msg, k.priorityUp):
		return m.adjustPriority(board.CommandIncrementPriority), nil
	case key.Matches(msg, k.priorityDn):
		return m.adjustPriority(board.CommandDecrementPriority), nil
	case key.Matches(msg, k.cycleMode):
		m, ok := m.dispatch(board.CommandCycleMode)
		if ok {
			m.status = "mode: " + m.machine.Mode().String()
		}
		return m, nil
	case key.Matches(msg, k.openTodo):
		m, ok := m.dispatch(board.CommandOpenTodo)
		if ok && !m.machine.InTodo() {
			m.status = "no project selected"
		} else if ok {
			m.status = "todo list"
		}
		return m, nil
	case key.Matches(msg, k.addProject):
		return m.startAddProject()
	case key.Matches(msg, k.editProject):
		return m.startFieldPicker()
	case key.Matches(msg, k.deleteProj):
		return m.startDeleteProject()
	case key.Matches(msg, k.yankPath):
		return m.yankPath(), nil
	case key.Matches(msg, k.openDir):
		return m.launch(launch.ActionDir, quitAfterLaunch(msg))
	case key.Matches(msg, k.openEditor):
		return m.launch(launch.ActionEditor, quitAfterLaunch(msg))
	case key.Matches(msg, k.openTmux):
		return m.launch(launch.ActionTmux, quitAfterLaunch(msg))
	case key.Matches(msg, k.openBoth):
		return m.launch(launch.ActionBoth, quitAfterLaunch(msg))
	default:
		return m, nil
	}
}

// handleTodoKey handles keys while the overlay is open.
func (m Model) handleTodoKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	k := m.todoKeys
	switch {
	case key.Matches(msg, k.close):
		m, _ = m.dispatch(board.CommandCloseTodo)
		m.status = "ready"
		return m, nil
	case key.Matches(msg, k.toggleHelp):
		m.help.ShowAll = true
		m.status = "help"
		return m, nil
	case key.Matches(msg, k.addItem):
		m.status = "new item"
		return m, m.startInput(modeAddItem, "todo item", "", 200)
	case key.Matches(msg, k.editItem):
		ov, _ := m.machine.Overlay()
		item, ok := ov.SelectedItem()
		if !ok {
			m.status = "no item selected"
			return m, nil
		}
		m.status = "edit item"
		return m, m.startInput(modeEditItem, "todo item", item.Description, 200)
	case key.Matches(msg, k.deleteItem):
		ov, _ := m.machine.Overlay()
		item, ok := ov.SelectedItem()
		if !ok {
			m.status = "no item selected"
			return m, nil
		}
		m, ok = m.dispatch(board.CommandDeleteTodoItem)
		if ok {
			m.status = fmt.Sprintf("deleted %q", item.Description)
		}
		return m, nil
	case key.Matches(msg, k.itemUp):
		m, _ = m.dispatch(board.CommandOverlayUp)
		return m, nil
	case key.Matches(msg, k.itemDown):
		m, _ = m.dispatch(board.CommandOverlayDown)
		return m, nil
	case key.Matches(msg, k.cardLeft):
		return m.navigate(board.CommandMoveLeft), nil
	case key.Matches(msg, k.cardRight):
		return m.navigate(board.CommandMoveRight), nil
	case key.Matches(msg, k.cardUp):
		return m.navigate(board.CommandMoveUp), nil
	case key.Matches(msg, k.cardDown):
		return m.navigate(board.CommandMoveDown), nil
	default:
		return m, nil
	}
}

// dispatch runs a machine command and reports failures in the status line.
func (m Model) dispatch(cmd board.Command) (Model, bool) {
	if err := m.machine.Dispatch(context.Background(), cmd); err != nil {
		m.status = "error: " + err.Error()
		return m, false
	}
	return m, true
}

// navigate moves the selection and notes when the overlay closed on an empty column.
func (m Model) navigate(cmd board.Command) Model {
	wasOpen := m.machine.InTodo()
	m, ok := m.dispatch(cmd)
	if !ok {
		return m
	}
	if wasOpen && !m.machine.InTodo() {
		m.status = "todo list closed"
	}
	return m
}

// shift progresses or regresses the active project.
func (m Model) shift(forward bool) Model {
	project, ok := m.machine.ActiveProject()
	if !ok {
		m.status = "no project selected"
		return m
	}
	target, ok := project.Status.Prev()
	cmd := board.CommandRegress
	if forward {
		target, ok = project.Status.Next()
		cmd = board.CommandProgress
	}
	if !ok {
		m.status = fmt.Sprintf("%s is already in %s", project.Name, project.Status)
		return m
	}
	m, ok = m.dispatch(cmd)
	if ok {
		m.status = fmt.Sprintf("moved %s to %s", project.Name, target)
	}
	return m
}

// adjustPriority raises or lowers the active project's priority.
func (m Model) adjustPriority(cmd board.Command) Model {
	if _, ok := m.machine.ActiveProject(); !ok {
		m.status = "no project selected"
		return m
	}
	m, ok := m.dispatch(cmd)
	if !ok {
		return m
	}
	if project, ok := m.machine.ActiveProject(); ok {
		m.status = fmt.Sprintf("%s priority %d", project.Name, project.Priority)
	}
	return m
}

// quitAfterLaunch reports whether a launch key was pressed in its upper-case form.
func quitAfterLaunch(msg tea.KeyPressMsg) bool {
	if strings.HasPrefix(msg.String(), "shift+") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(msg.Text)
	return unicode.IsUpper(r)
}

// launch opens the active project with action and optionally quits.
func (m Model) launch(action launch.Action, quit bool) (Model, tea.Cmd) {
	project, ok := m.machine.ActiveProject()
	if !ok {
		m.status = "no project selected"
		return m, nil
	}
	if m.launcher == nil {
		m.status = "launching is not configured"
		return m, nil
	}
	if err := m.launcher.Open(action, project); err != nil {
		m.status = fmt.Sprintf("open %s failed: %v", action, err)
		return m, nil
	}
	m.status = fmt.Sprintf("opened %s for %s", action, project.Name)
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

// yankPath copies the active project's path.
func (m Model) yankPath() Model {
	project, ok := m.machine.ActiveProject()
	if !ok {
		m.status = "no project selected"
		return m
	}
	if m.launcher == nil {
		m.status = "clipboard is not configured"
		return m
	}
	if err := m.launcher.CopyPath(project); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = "copied " + project.Path
	return m
}

// newModalInput constructs modal input.
func newModalInput(prompt, placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = limit
	if value != "" {
		in.SetValue(value)
	}
	return in
}

// startInput opens a single-line prompt in mode.
func (m *Model) startInput(mode inputMode, placeholder, value string, limit int) tea.Cmd {
	m.mode = mode
	m.input = newModalInput("> ", placeholder, value, limit)
	return m.input.Focus()
}

// fieldLimit returns the input character limit for a project field.
func fieldLimit(field domain.ProjectField) int {
	switch field {
	case domain.FieldDescription:
		return domain.MaxDescriptionLen
	case domain.FieldPath, domain.FieldFile:
		return 512
	default:
		return 120
	}
}

// fieldPlaceholder describes a project field in its prompt.
func fieldPlaceholder(field domain.ProjectField) string {
	if field.Required() {
		return string(field) + " (required)"
	}
	return string(field) + " (optional)"
}

// startAddProject begins the chained add-project prompts.
func (m Model) startAddProject() (Model, tea.Cmd) {
	m.draft = domain.ProjectInput{}
	m.formStep = 0
	m.status = "new project"
	field := domain.ProjectFields()[0]
	return m, m.startInput(modeAddProject, fieldPlaceholder(field), "", fieldLimit(field))
}

// startFieldPicker begins editing the active project by choosing a field.
func (m Model) startFieldPicker() (Model, tea.Cmd) {
	if _, ok := m.machine.ActiveProject(); !ok {
		m.status = "no project selected"
		return m, nil
	}
	m.status = "choose field"
	cmd := m.startInput(modePickField, "field to edit", "", 32)
	m.refreshFieldMatches()
	return m, cmd
}

// refreshFieldMatches filters editable fields by the picker query.
func (m *Model) refreshFieldMatches() {
	fields := domain.ProjectFields()
	query := strings.TrimSpace(m.input.Value())
	m.fieldIndex = 0
	if query == "" {
		m.fieldMatches = fields
		return
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	matches := fuzzy.Find(query, names)
	m.fieldMatches = make([]domain.ProjectField, 0, len(matches)+1)
	// an exactly typed field name always ranks first.
	exact, err := domain.ParseProjectField(query)
	if err == nil {
		m.fieldMatches = append(m.fieldMatches, exact)
	}
	for _, match := range matches {
		if fields[match.Index] == exact {
			continue
		}
		m.fieldMatches = append(m.fieldMatches, fields[match.Index])
	}
}

// startDeleteProject deletes the active project, asking first when configured.
func (m Model) startDeleteProject() (Model, tea.Cmd) {
	project, ok := m.machine.ActiveProject()
	if !ok {
		m.status = "no project selected"
		return m, nil
	}
	if !m.confirmDelete {
		return m.deleteProject(project), nil
	}
	m.mode = modeConfirmDelete
	m.pendingDelete = project
	m.confirmChoice = 1
	m.status = "confirm action"
	return m, nil
}

// deleteProject removes project, which must be the active card.
func (m Model) deleteProject(project domain.Project) Model {
	m, ok := m.dispatch(board.CommandDeleteProject)
	if ok {
		m.status = "deleted " + project.Name
	}
	return m
}

// closeInput leaves any prompt.
func (m *Model) closeInput() {
	m.mode = modeNone
	m.input.Blur()
	m.fieldMatches = nil
	m.fieldIndex = 0
	m.pendingDelete = domain.Project{}
}

// handleInputModeKey handles keys while a prompt is open.
func (m Model) handleInputModeKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "esc", "n":
			m.closeInput()
			m.status = "cancelled"
			return m, nil
		case "h", "left", "l", "right":
			if m.confirmChoice == 0 {
				m.confirmChoice = 1
			} else {
				m.confirmChoice = 0
			}
			return m, nil
		case "y":
			project := m.pendingDelete
			m.closeInput()
			return m.deleteProject(project), nil
		case "enter":
			project := m.pendingDelete
			cancelled := m.confirmChoice == 1
			m.closeInput()
			if cancelled {
				m.status = "cancelled"
				return m, nil
			}
			return m.deleteProject(project), nil
		default:
			return m, nil
		}
	}

	switch {
	case msg.Code == tea.KeyEscape || msg.String() == "esc":
		m.closeInput()
		m.status = "cancelled"
		return m, nil
	case msg.Code == tea.KeyEnter || msg.String() == "enter":
		return m.submitInputMode()
	}

	if m.mode == modePickField {
		switch msg.String() {
		case "up", "ctrl+p":
			m.fieldIndex = clamp(m.fieldIndex-1, 0, len(m.fieldMatches)-1)
			return m, nil
		case "down", "ctrl+n", "tab":
			m.fieldIndex = clamp(m.fieldIndex+1, 0, len(m.fieldMatches)-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modePickField {
		m.refreshFieldMatches()
	}
	return m, cmd
}

// submitInputMode applies the open prompt.
func (m Model) submitInputMode() (Model, tea.Cmd) {
	ctx := context.Background()
	value := strings.TrimSpace(m.input.Value())
	switch m.mode {
	case modeAddProject:
		return m.submitProjectField(value)

	case modePickField:
		if len(m.fieldMatches) == 0 {
			m.status = "no matching field"
			return m, nil
		}
		project, ok := m.machine.ActiveProject()
		if !ok {
			m.closeInput()
			m.status = "no project selected"
			return m, nil
		}
		m.editField = m.fieldMatches[clamp(m.fieldIndex, 0, len(m.fieldMatches)-1)]
		m.fieldMatches = nil
		m.status = "edit " + string(m.editField)
		return m, m.startInput(modeEditField, fieldPlaceholder(m.editField), project.FieldValue(m.editField), fieldLimit(m.editField))

	case modeEditField:
		if err := m.machine.EditProject(ctx, m.editField, value); err != nil {
			m.status = fmt.Sprintf("edit %s failed: %v", m.editField, err)
			return m, nil
		}
		m.closeInput()
		m.status = "updated " + string(m.editField)
		return m, nil

	case modeAddItem, modeEditItem:
		if value == "" {
			m.status = "description is required"
			return m, nil
		}
		var err error
		if m.mode == modeAddItem {
			err = m.machine.AddTodoItem(ctx, value)
		} else {
			err = m.machine.EditTodoItem(ctx, value)
		}
		if err != nil {
			m.status = "save item failed: " + err.Error()
			return m, nil
		}
		m.closeInput()
		m.status = "saved " + value
		return m, nil

	default:
		m.closeInput()
		return m, nil
	}
}

// submitProjectField validates one add-project answer and advances the chain.
func (m Model) submitProjectField(value string) (Model, tea.Cmd) {
	fields := domain.ProjectFields()
	field := fields[m.formStep]
	var scratch domain.Project
	if err := scratch.SetField(field, value); err != nil {
		m.status = fmt.Sprintf("%s: %v", field, err)
		return m, nil
	}
	m.draft.Set(field, value)
	if m.formStep < len(fields)-1 {
		m.formStep++
		next := fields[m.formStep]
		return m, m.startInput(modeAddProject, fieldPlaceholder(next), m.draft.Value(next), fieldLimit(next))
	}

	project, err := m.machine.AddProject(context.Background(), m.draft)
	if err != nil {
		m.status = "add project failed: " + err.Error()
		if errors.Is(err, app.ErrDuplicateName) {
			m.formStep = 0
			return m, m.startInput(modeAddProject, fieldPlaceholder(fields[0]), m.draft.Name, fieldLimit(fields[0]))
		}
		return m, nil
	}
	m.closeInput()
	m.draft = domain.ProjectInput{}
	m.status = fmt.Sprintf("added %s to %s", project.Name, project.Status)
	return m, nil
}

// View handles view.
func (m Model) View() tea.View {
	if m.err != nil {
		v := tea.NewView("error: " + m.err.Error() + "\n\npress r to retry • q quit\n")
		v.AltScreen = true
		return v
	}
	if !m.ready {
		v := tea.NewView("loading...")
		v.AltScreen = true
		return v
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.panels[:]...)
	if m.overlayView != "" {
		if ov, ok := m.machine.Overlay(); ok {
			w, h := max(m.width, lipgloss.Width(body)), lipgloss.Height(body)
			x, y := m.overlayOrigin(ov.Anchor, m.overlayView, w, h)
			body = composeAt(body, m.overlayView, x, y, w, h)
		}
	}

	statusStyle := lipgloss.NewStyle().Foreground(colorMuted)
	sections := []string{m.renderHeader(), body, statusStyle.Render(m.status), m.renderHelpLine()}
	content := fitLines(strings.Join(sections, "\n"), m.height)

	if modal := m.renderModal(); modal != "" {
		content = overlayOnContent(content, modal, max(1, m.width), max(1, m.height))
	}
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderHeader draws the title row.
func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorText)
	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)
	header := titleStyle.Render("projectarium") + mutedStyle.Render("  ["+m.machine.Mode().String()+"]")
	if ov, ok := m.machine.Overlay(); ok {
		header += mutedStyle.Render("  todo: " + ov.Project.Name)
	}
	return header
}

// renderHelpLine draws the short help for the active key table.
func (m Model) renderHelpLine() string {
	h := m.help
	h.ShowAll = false
	h.SetWidth(max(0, m.width))
	if m.machine.InTodo() {
		return h.View(m.todoKeys)
	}
	return h.View(m.boardKeys)
}

// renderModal draws the help page or the open prompt.
func (m Model) renderModal() string {
	accent := colorHighlight
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(colorMuted)
	maxWidth := max(m.width-8, 24)

	if m.help.ShowAll {
		page := m.markdown.render(helpMarkdown(m.boardKeys.FullHelp(), m.todoKeys.FullHelp()), min(maxWidth, 80))
		return boxStyle.Render(fitLines(page, max(m.height-4, 8)))
	}

	switch m.mode {
	case modeConfirmDelete:
		confirmStyle := hintStyle
		cancelStyle := hintStyle
		if m.confirmChoice == 0 {
			confirmStyle = titleStyle
		} else {
			cancelStyle = titleStyle
		}
		lines := []string{
			titleStyle.Render("Confirm Action"),
			"delete project: " + m.pendingDelete.Name,
			confirmStyle.Render("[confirm]") + "  " + cancelStyle.Render("[cancel]"),
			hintStyle.Render("enter apply • esc cancel • h/l switch • y confirm • n cancel"),
		}
		return boxStyle.Render(strings.Join(lines, "\n"))

	case modeAddProject:
		fields := domain.ProjectFields()
		lines := []string{
			titleStyle.Render(fmt.Sprintf("New Project %d/%d", m.formStep+1, len(fields))),
			string(fields[m.formStep]),
			m.input.View(),
			hintStyle.Render("enter next • esc cancel"),
		}
		return boxStyle.Render(strings.Join(lines, "\n"))

	case modePickField:
		lines := []string{titleStyle.Render("Edit Project"), m.input.View()}
		if len(m.fieldMatches) == 0 {
			lines = append(lines, hintStyle.Render("(no matching field)"))
		}
		for idx, field := range m.fieldMatches {
			if idx == m.fieldIndex {
				lines = append(lines, titleStyle.Render("› "+string(field)))
				continue
			}
			lines = append(lines, "  "+string(field))
		}
		lines = append(lines, hintStyle.Render("type to filter • ↑/↓ select • enter choose • esc cancel"))
		return boxStyle.Render(strings.Join(lines, "\n"))

	case modeEditField:
		lines := []string{
			titleStyle.Render("Edit " + string(m.editField)),
			m.input.View(),
			hintStyle.Render("enter save • esc cancel"),
		}
		return boxStyle.Render(strings.Join(lines, "\n"))

	case modeAddItem, modeEditItem:
		title := "New Item"
		if m.mode == modeEditItem {
			title = "Edit Item"
		}
		lines := []string{titleStyle.Render(title), m.input.View(), hintStyle.Render("enter save • esc cancel")}
		return boxStyle.Render(strings.Join(lines, "\n"))

	default:
		return ""
	}
}
