package board

import (
	"context"
	"fmt"

	"github.com/hylla/projectarium/internal/domain"
)

// Machine owns the active window, active card, display mode, and todo overlay.
// Every operation that writes to the store re-derives the affected columns from
// the Service and clamps the selection before returning.
type Machine struct {
	svc     Service
	logger  Logger
	window  int
	card    int
	mode    Mode
	columns [domain.StatusCount]Column
	overlay *Overlay
	damage  Damage
}

// Option customizes a Machine.
type Option func(*Machine)

// WithLogger sets the event logger.
func WithLogger(logger Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithMode sets the starting display mode. ModeDim is ignored.
func WithMode(mode Mode) Option {
	return func(m *Machine) {
		if mode == ModeBland || mode == ModeColored {
			m.mode = mode
		}
	}
}

// New constructs a Machine. Call Load before use.
func New(svc Service, opts ...Option) *Machine {
	m := &Machine{
		svc:  svc,
		card: -1,
		mode: ModeColored,
	}
	for i, status := range domain.Statuses() {
		m.columns[i] = Column{Status: status}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load derives every column and selects the first card of the first non-empty column.
func (m *Machine) Load(ctx context.Context) error {
	if err := m.reload(ctx); err != nil {
		return err
	}
	m.window, m.card = 0, -1
	for i, col := range m.columns {
		if col.Len() > 0 {
			m.window, m.card = i, 0
			break
		}
	}
	m.debug("board loaded", "window", m.window, "card", m.card)
	return nil
}

// Reload re-derives every column, keeping the selection where it fits.
func (m *Machine) Reload(ctx context.Context) error {
	if err := m.reload(ctx); err != nil {
		return err
	}
	m.card = fitCard(m.card, m.columns[m.window].Len())
	if m.overlay != nil {
		return m.reattach(ctx)
	}
	return nil
}

// reload derives all columns and marks a full repaint.
func (m *Machine) reload(ctx context.Context) error {
	for i := range m.columns {
		if err := m.derive(ctx, i); err != nil {
			return err
		}
	}
	m.damage.Full = true
	return nil
}

// ActiveWindow returns the active column index.
func (m *Machine) ActiveWindow() int {
	return m.window
}

// ActiveCard returns the active card index, or -1 when the active column is empty.
func (m *Machine) ActiveCard() int {
	return m.card
}

// Mode returns the display mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// InTodo reports whether the todo overlay is open.
func (m *Machine) InTodo() bool {
	return m.overlay != nil
}

// Column returns the derived cards for column i.
func (m *Machine) Column(i int) Column {
	if i < 0 || i >= len(m.columns) {
		return Column{}
	}
	return m.columns[i]
}

// Overlay returns the open todo overlay.
func (m *Machine) Overlay() (Overlay, bool) {
	if m.overlay == nil {
		return Overlay{}, false
	}
	return *m.overlay, true
}

// ActiveProject returns the selected project.
func (m *Machine) ActiveProject() (domain.Project, bool) {
	col := m.columns[m.window]
	if m.card < 0 || m.card >= col.Len() {
		return domain.Project{}, false
	}
	return col.Cards[m.card], true
}

// TakeDamage returns the pending repaint regions and clears them.
func (m *Machine) TakeDamage() Damage {
	d := m.damage
	m.damage = Damage{}
	return d
}

// MoveUp selects the card above.
func (m *Machine) MoveUp(ctx context.Context) error {
	if m.card <= 0 {
		return nil
	}
	return m.moveCard(ctx, m.card-1)
}

// MoveDown selects the card below.
func (m *Machine) MoveDown(ctx context.Context) error {
	if m.card < 0 || m.card >= m.columns[m.window].Len()-1 {
		return nil
	}
	return m.moveCard(ctx, m.card+1)
}

// moveCard changes the active card within the active column.
func (m *Machine) moveCard(ctx context.Context, card int) error {
	reopen := m.detach()
	m.card = card
	m.damage.Columns[m.window] = true
	m.debug("card selected", "window", m.window, "card", m.card)
	if reopen {
		return m.reattach(ctx)
	}
	return nil
}

// MoveLeft selects the column to the left.
func (m *Machine) MoveLeft(ctx context.Context) error {
	return m.moveWindow(ctx, m.window-1)
}

// MoveRight selects the column to the right.
func (m *Machine) MoveRight(ctx context.Context) error {
	return m.moveWindow(ctx, m.window+1)
}

// moveWindow changes the active column, carrying the card index over where it fits.
func (m *Machine) moveWindow(ctx context.Context, window int) error {
	if window < 0 || window >= len(m.columns) {
		return nil
	}
	reopen := m.detach()
	m.damage.Columns[m.window] = true
	m.window = window
	m.card = fitCard(m.card, m.columns[window].Len())
	m.damage.Columns[m.window] = true
	m.debug("window selected", "window", m.window, "card", m.card)
	if reopen {
		return m.reattach(ctx)
	}
	return nil
}

// Progress moves the active project one column right.
func (m *Machine) Progress(ctx context.Context) error {
	return m.shiftStatus(ctx, true)
}

// Regress moves the active project one column left.
func (m *Machine) Regress(ctx context.Context) error {
	return m.shiftStatus(ctx, false)
}

// shiftStatus writes the adjacent status, re-derives both columns, and follows an emptied column.
func (m *Machine) shiftStatus(ctx context.Context, forward bool) error {
	if m.overlay != nil {
		return nil
	}
	project, ok := m.ActiveProject()
	if !ok {
		return nil
	}
	target, ok := project.Status.Prev()
	if forward {
		target, ok = project.Status.Next()
	}
	if !ok {
		return nil
	}

	if _, err := m.svc.SetProjectStatus(ctx, project.ID, target); err != nil {
		return fmt.Errorf("move %q to %s: %w", project.Name, target, err)
	}
	src, prev := m.window, m.card
	if err := m.derive(ctx, src); err != nil {
		return err
	}
	if err := m.derive(ctx, target.Index()); err != nil {
		return err
	}
	m.card = fitCard(max(prev-1, 0), m.columns[src].Len())
	m.debug("project status changed", "project", project.Name, "from", project.Status, "to", target)

	if m.columns[src].Len() > 0 {
		return nil
	}
	if forward {
		return m.MoveRight(ctx)
	}
	return m.MoveLeft(ctx)
}

// IncrementPriority raises the active project's priority by one.
func (m *Machine) IncrementPriority(ctx context.Context) error {
	return m.adjustPriority(ctx, 1)
}

// DecrementPriority lowers the active project's priority by one.
func (m *Machine) DecrementPriority(ctx context.Context) error {
	return m.adjustPriority(ctx, -1)
}

// adjustPriority writes a clamped priority change and re-derives the active column.
func (m *Machine) adjustPriority(ctx context.Context, delta int) error {
	if m.overlay != nil {
		return nil
	}
	project, ok := m.ActiveProject()
	if !ok {
		return nil
	}
	if !domain.ValidPriority(project.Priority + delta) {
		return nil
	}
	updated, changed, err := m.svc.AdjustPriority(ctx, project.ID, delta)
	if err != nil {
		return fmt.Errorf("adjust priority of %q: %w", project.Name, err)
	}
	if !changed {
		return nil
	}
	m.debug("project priority changed", "project", project.Name, "priority", updated.Priority)
	return m.derive(ctx, m.window)
}

// OpenTodoOverlay attaches the todo list to the active card.
func (m *Machine) OpenTodoOverlay(ctx context.Context) error {
	if m.overlay != nil {
		return nil
	}
	if err := m.reattach(ctx); err != nil {
		return err
	}
	if m.overlay != nil {
		m.debug("todo overlay opened", "project", m.overlay.Project.Name, "items", len(m.overlay.Items))
	}
	return nil
}

// CloseTodoOverlay tears the overlay down and returns to the colored board.
func (m *Machine) CloseTodoOverlay() {
	if m.overlay == nil {
		return
	}
	m.overlay = nil
	m.mode = ModeColored
	m.damage.Full = true
	m.debug("todo overlay closed")
}

// CycleMode toggles between the bland and colored board styles.
func (m *Machine) CycleMode() {
	if m.overlay != nil {
		return
	}
	if m.mode == ModeBland {
		m.mode = ModeColored
	} else {
		m.mode = ModeBland
	}
	m.damage.Full = true
	m.debug("mode changed", "mode", m.mode)
}

// AddProject stores a new backlog project and re-derives the backlog column.
func (m *Machine) AddProject(ctx context.Context, in domain.ProjectInput) (domain.Project, error) {
	if m.overlay != nil {
		return domain.Project{}, nil
	}
	project, err := m.svc.CreateProject(ctx, in)
	if err != nil {
		return domain.Project{}, err
	}
	m.debug("project added", "project", project.Name)
	return project, m.derive(ctx, domain.StatusBacklog.Index())
}

// EditProject changes one field of the active project.
func (m *Machine) EditProject(ctx context.Context, field domain.ProjectField, value string) error {
	if m.overlay != nil {
		return nil
	}
	project, ok := m.ActiveProject()
	if !ok {
		return nil
	}
	if _, err := m.svc.UpdateProjectField(ctx, project.ID, field, value); err != nil {
		return err
	}
	m.debug("project edited", "project", project.Name, "field", field)
	return m.derive(ctx, m.window)
}

// DeleteProject removes the active project and steps the selection up.
func (m *Machine) DeleteProject(ctx context.Context) error {
	if m.overlay != nil {
		return nil
	}
	project, ok := m.ActiveProject()
	if !ok {
		return nil
	}
	if err := m.svc.DeleteProject(ctx, project.ID); err != nil {
		return fmt.Errorf("delete %q: %w", project.Name, err)
	}
	m.card = max(m.card-1, 0)
	m.debug("project deleted", "project", project.Name)
	return m.derive(ctx, m.window)
}

// AddTodoItem appends an item to the overlay's project.
func (m *Machine) AddTodoItem(ctx context.Context, description string) error {
	if m.overlay == nil {
		return nil
	}
	if _, err := m.svc.AddTodoItem(ctx, m.overlay.Project.ID, description); err != nil {
		return err
	}
	return m.refreshTodo(ctx)
}

// EditTodoItem replaces the selected item's description.
func (m *Machine) EditTodoItem(ctx context.Context, description string) error {
	if m.overlay == nil {
		return nil
	}
	item, ok := m.overlay.SelectedItem()
	if !ok {
		return nil
	}
	if _, err := m.svc.EditTodoItem(ctx, item.ID, description); err != nil {
		return err
	}
	return m.refreshTodo(ctx)
}

// DeleteTodoItem soft-deletes the selected item.
func (m *Machine) DeleteTodoItem(ctx context.Context) error {
	if m.overlay == nil {
		return nil
	}
	item, ok := m.overlay.SelectedItem()
	if !ok {
		return nil
	}
	if err := m.svc.DeleteTodoItem(ctx, item.ID); err != nil {
		return err
	}
	return m.refreshTodo(ctx)
}

// OverlayUp selects the previous todo item.
func (m *Machine) OverlayUp() {
	if m.overlay == nil || len(m.overlay.Items) == 0 || m.overlay.Selected == 0 {
		return
	}
	m.overlay.Selected--
	m.damage.Overlay = true
}

// OverlayDown selects the next todo item.
func (m *Machine) OverlayDown() {
	if m.overlay == nil || m.overlay.Selected >= len(m.overlay.Items)-1 {
		return
	}
	m.overlay.Selected++
	m.damage.Overlay = true
}

// refreshTodo refetches the overlay's items and the active column's todo counts.
func (m *Machine) refreshTodo(ctx context.Context) error {
	items, err := m.svc.ListTodoItems(ctx, m.overlay.Project.ID)
	if err != nil {
		return err
	}
	m.overlay.Items = items
	m.overlay.clampSelected()
	m.damage.Overlay = true
	if err := m.derive(ctx, m.window); err != nil {
		return err
	}
	if project, ok := m.ActiveProject(); ok {
		m.overlay.Project = project
	}
	return nil
}

// detach drops the overlay ahead of a selection change and reports whether it was open.
func (m *Machine) detach() bool {
	if m.overlay == nil {
		return false
	}
	m.overlay = nil
	m.damage.Full = true
	return true
}

// reattach opens the overlay on the active card, or closes it when there is no card.
func (m *Machine) reattach(ctx context.Context) error {
	project, ok := m.ActiveProject()
	if !ok {
		m.dropOverlay()
		return nil
	}
	items, err := m.svc.ListTodoItems(ctx, project.ID)
	if err != nil {
		m.dropOverlay()
		return fmt.Errorf("load todo items for %q: %w", project.Name, err)
	}
	selected := 0
	if m.overlay != nil && m.overlay.Project.ID == project.ID {
		selected = m.overlay.Selected
	}
	m.overlay = &Overlay{
		Anchor:   Position{Window: m.window, Card: m.card},
		Project:  project,
		Items:    items,
		Selected: selected,
	}
	m.overlay.clampSelected()
	m.mode = ModeDim
	m.damage.Full = true
	return nil
}

// dropOverlay finishes closing an overlay that could not be reattached.
func (m *Machine) dropOverlay() {
	if m.overlay == nil && m.mode != ModeDim {
		return
	}
	m.overlay = nil
	m.mode = ModeColored
	m.damage.Full = true
	m.debug("todo overlay closed", "reason", "no active card")
}

// derive refetches column i and clamps the selection when it is the active column.
func (m *Machine) derive(ctx context.Context, i int) error {
	status := m.columns[i].Status
	cards, err := m.svc.ListColumn(ctx, status)
	if err != nil {
		return fmt.Errorf("load %s column: %w", status, err)
	}
	m.columns[i].Cards = cards
	m.damage.Columns[i] = true
	if i == m.window {
		m.card = fitCard(m.card, len(cards))
	}
	return nil
}

// debug logs when a logger is configured.
func (m *Machine) debug(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}
