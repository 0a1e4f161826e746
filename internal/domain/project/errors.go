package project

import "errors"

var (
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrNoCurrentProject indicates a stats refresh outside of a project.
	ErrNoCurrentProject = errors.New("no current project")
)

const msgNameRequired = "Project name is required."
