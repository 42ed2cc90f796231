package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoCurrentProject indicates an operation that needs an active project
	// ran without one.
	ErrNoCurrentProject = errors.New("no current project")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
)
