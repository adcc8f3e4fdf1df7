package domain

import "go.trai.ch/zerr"

var (
	// ErrTemplateNotFound is returned when no file backs a template path.
	ErrTemplateNotFound = zerr.New("template not found")

	// ErrCompileFailed is returned when a template source cannot be compiled or preprocessed.
	ErrCompileFailed = zerr.New("template compile failed")

	// ErrRunFailed is returned when a compiled template fails while rendering a model.
	ErrRunFailed = zerr.New("template run failed")

	// ErrTemplateNotCached is returned when a run is requested for an identity that was never compiled.
	ErrTemplateNotCached = zerr.New("template not cached")

	// ErrCycleDetected is returned when include or layout expansion revisits a template.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrConfigInvalid is returned when the settings file cannot be decoded or names unknown components.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrCheckFailed is returned when at least one template under the folder fails to compile.
	ErrCheckFailed = zerr.New("template check failed")

	// ErrUnknownPlugin is returned when a plugin name has no registered constructor.
	ErrUnknownPlugin = zerr.New("unknown plugin")
)
