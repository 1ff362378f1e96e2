package board

import (
	"context"
	"strings"

	"github.com/hylla/projectarium/internal/domain"
)

// Mode selects how the board is styled.
type Mode int

// Mode values. ModeDim is only entered while the todo overlay is open.
const (
	ModeBland Mode = iota
	ModeColored
	ModeDim
)

// String returns the mode label.
func (m Mode) String() string {
	switch m {
	case ModeBland:
		return "bland"
	case ModeColored:
		return "colored"
	case ModeDim:
		return "dim"
	default:
		return "unknown"
	}
}

// ParseMode parses a configured starting mode. Unknown values fall back to colored.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), "bland") {
		return ModeBland
	}
	return ModeColored
}

// Service is the store-facing surface the machine drives.
type Service interface {
	ListColumn(context.Context, domain.Status) ([]domain.Project, error)
	ListTodoItems(context.Context, int64) ([]domain.TodoItem, error)
	CreateProject(context.Context, domain.ProjectInput) (domain.Project, error)
	UpdateProjectField(context.Context, int64, domain.ProjectField, string) (domain.Project, error)
	SetProjectStatus(context.Context, int64, domain.Status) (domain.Project, error)
	AdjustPriority(context.Context, int64, int) (domain.Project, bool, error)
	DeleteProject(context.Context, int64) error
	AddTodoItem(context.Context, int64, string) (domain.TodoItem, error)
	EditTodoItem(context.Context, int64, string) (domain.TodoItem, error)
	DeleteTodoItem(context.Context, int64) error
}

// Logger receives navigation and mutation events.
type Logger interface {
	Debug(msg any, keyvals ...any)
}

// Column is the derived card list for one status.
type Column struct {
	Status domain.Status
	Cards  []domain.Project
}

// Len returns the number of cards.
func (c Column) Len() int {
	return len(c.Cards)
}

// Position addresses one card slot on the board.
type Position struct {
	Window int
	Card   int
}

// Overlay is the todo list attached to one card.
type Overlay struct {
	Anchor   Position
	Project  domain.Project
	Items    []domain.TodoItem
	Selected int
}

// SelectedItem returns the highlighted item.
func (o Overlay) SelectedItem() (domain.TodoItem, bool) {
	if o.Selected < 0 || o.Selected >= len(o.Items) {
		return domain.TodoItem{}, false
	}
	return o.Items[o.Selected], true
}

// clampSelected keeps Selected inside the item list, or at zero when it is empty.
func (o *Overlay) clampSelected() {
	o.Selected = min(o.Selected, len(o.Items)-1)
	o.Selected = max(o.Selected, 0)
}

// Damage records which screen regions need repainting.
type Damage struct {
	Columns [domain.StatusCount]bool
	Overlay bool
	Full    bool
}

// Any reports whether anything needs repainting.
func (d Damage) Any() bool {
	if d.Full || d.Overlay {
		return true
	}
	for _, dirty := range d.Columns {
		if dirty {
			return true
		}
	}
	return false
}

// Column reports whether column i needs repainting.
func (d Damage) Column(i int) bool {
	if d.Full {
		return true
	}
	return i >= 0 && i < len(d.Columns) && d.Columns[i]
}

// fitCard picks a card index for a column of n cards given the previous index.
func fitCard(prev, n int) int {
	if n == 0 {
		return -1
	}
	return max(min(prev, n-1), 0)
}
