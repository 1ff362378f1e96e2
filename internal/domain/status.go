package domain

import "strings"

// Status identifies the board column a project lives in.
type Status int

// Status values in board order.
const (
	StatusAbandoned Status = iota
	StatusBacklog
	StatusActive
	StatusDone
)

// StatusCount is the number of board columns.
const StatusCount = 4

// statusNames stores the persisted and displayed name of each status.
var statusNames = [StatusCount]string{
	StatusAbandoned: "Abandoned",
	StatusBacklog:   "Backlog",
	StatusActive:    "Active",
	StatusDone:      "Done",
}

// Statuses returns every status in column order.
func Statuses() []Status {
	return []Status{StatusAbandoned, StatusBacklog, StatusActive, StatusDone}
}

// Valid reports whether the status is one of the known columns.
func (s Status) Valid() bool {
	return s >= StatusAbandoned && s <= StatusDone
}

// String returns the persisted status name.
func (s Status) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return statusNames[s]
}

// Index returns the zero-based column index of the status.
func (s Status) Index() int {
	return int(s)
}

// Next returns the status one column to the right.
func (s Status) Next() (Status, bool) {
	if !s.Valid() || s == StatusDone {
		return s, false
	}
	return s + 1, true
}

// Prev returns the status one column to the left.
func (s Status) Prev() (Status, bool) {
	if !s.Valid() || s == StatusAbandoned {
		return s, false
	}
	return s - 1, true
}

// ParseStatus parses a status name case-insensitively.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for i, name := range statusNames {
		if strings.EqualFold(raw, name) {
			return Status(i), nil
		}
	}
	return 0, ErrInvalidStatus
}
