package app

import "errors"

// ErrNotFound and related errors describe validation and runtime failures.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("project name already exists")
	ErrDuplicateTodo = errors.New("todo item already exists")
)
