package domain

import "errors"

// ErrPathEscape is returned when a tool path resolves outside its sandbox.
var ErrPathEscape = errors.New("path escapes sandbox")

// ErrTaskNotFound is returned when a task name is not present in the registry.
var ErrTaskNotFound = errors.New("task not found")
