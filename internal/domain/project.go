package domain

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Project limits.
const (
	MaxDescriptionLen = 29
	MinPriority       = 0
	MaxPriority       = 99
)

// Project represents one card on the board.
type Project struct {
	ID          int64
	Name        string
	Description string
	Path        string
	File        string
	Priority    int
	Status      Status
	Language    string
	// TodoCount is derived from live todo items and never persisted.
	TodoCount int
}

// ProjectInput holds the user-editable values for a new project.
type ProjectInput struct {
	Name        string
	Description string
	Path        string
	File        string
	Language    string
}

// ProjectField names a user-editable project field.
type ProjectField string

// ProjectField values.
const (
	FieldName        ProjectField = "name"
	FieldDescription ProjectField = "description"
	FieldPath        ProjectField = "path"
	FieldFile        ProjectField = "file"
	FieldLanguage    ProjectField = "language"
)

// ProjectFields returns the editable fields in prompt order.
func ProjectFields() []ProjectField {
	return []ProjectField{FieldName, FieldDescription, FieldPath, FieldFile, FieldLanguage}
}

// ParseProjectField parses a field name case-insensitively.
func ParseProjectField(raw string) (ProjectField, error) {
	field := ProjectField(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(ProjectFields(), field) {
		return field, nil
	}
	return "", ErrInvalidField
}

// Required reports whether the field rejects empty values.
func (f ProjectField) Required() bool {
	return f == FieldName || f == FieldPath
}

// NewProject validates input and returns a backlog project at priority zero.
func NewProject(in ProjectInput) (Project, error) {
	p := Project{Status: StatusBacklog, Priority: MinPriority}
	for _, field := range ProjectFields() {
		if err := p.SetField(field, in.Value(field)); err != nil {
			return Project{}, err
		}
	}
	return p, nil
}

// Value returns the input value for one field.
func (in ProjectInput) Value(field ProjectField) string {
	switch field {
	case FieldName:
		return in.Name
	case FieldDescription:
		return in.Description
	case FieldPath:
		return in.Path
	case FieldFile:
		return in.File
	case FieldLanguage:
		return in.Language
	default:
		return ""
	}
}

// Set assigns one field value without validating it.
func (in *ProjectInput) Set(field ProjectField, value string) {
	switch field {
	case FieldName:
		in.Name = value
	case FieldDescription:
		in.Description = value
	case FieldPath:
		in.Path = value
	case FieldFile:
		in.File = value
	case FieldLanguage:
		in.Language = value
	}
}

// SetField validates and assigns one editable field.
func (p *Project) SetField(field ProjectField, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		if value == "" {
			return ErrInvalidName
		}
		p.Name = value
	case FieldDescription:
		if utf8.RuneCountInString(value) > MaxDescriptionLen {
			return ErrDescriptionTooLong
		}
		p.Description = value
	case FieldPath:
		if value == "" {
			return ErrInvalidPath
		}
		p.Path = value
	case FieldFile:
		p.File = value
	case FieldLanguage:
		p.Language = value
	default:
		return ErrInvalidField
	}
	return nil
}

// FieldValue returns the current value of one editable field.
func (p Project) FieldValue(field ProjectField) string {
	switch field {
	case FieldName:
		return p.Name
	case FieldDescription:
		return p.Description
	case FieldPath:
		return p.Path
	case FieldFile:
		return p.File
	case FieldLanguage:
		return p.Language
	default:
		return ""
	}
}

// SetStatus moves the project to another column.
func (p *Project) SetStatus(status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	p.Status = status
	return nil
}

// AdjustPriority shifts priority by delta within bounds and reports whether it changed.
func (p *Project) AdjustPriority(delta int) bool {
	next := ClampPriority(p.Priority + delta)
	if next == p.Priority {
		return false
	}
	p.Priority = next
	return true
}

// ClampPriority bounds a priority to the supported range.
func ClampPriority(priority int) int {
	return min(max(priority, MinPriority), MaxPriority)
}

// ValidPriority reports whether a priority is in range.
func ValidPriority(priority int) bool {
	return priority >= MinPriority && priority <= MaxPriority
}

// CompareProjects orders cards by priority descending, then name case-insensitively.
func CompareProjects(a, b Project) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}
	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortProjects sorts cards into column order in place.
func SortProjects(projects []Project) {
	slices.SortStableFunc(projects, CompareProjects)
}
