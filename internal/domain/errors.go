package domain

import "errors"

var (
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPath        = errors.New("invalid path")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidField       = errors.New("invalid field")
)
